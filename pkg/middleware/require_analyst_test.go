package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricewatch/pricewatch/ent"
	"github.com/pricewatch/pricewatch/ent/enttest"
	"github.com/pricewatch/pricewatch/ent/user"

	_ "github.com/mattn/go-sqlite3"
)

func setupRoleTest(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	return client, func() { client.Close() }
}

func createRoleTestUser(t *testing.T, client *ent.Client, role user.Role) *ent.User {
	u, err := client.User.Create().
		SetEmail(string(role) + "@pricewatch.local").
		SetPasswordHash("irrelevant").
		SetName("Test User").
		SetRole(role).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func invokeWithUserID(t *testing.T, client *ent.Client, mw echo.MiddlewareFunc, userID interface{}) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != nil {
		c.Set("user_id", userID)
	}

	handler := mw(func(c echo.Context) error {
		return c.String(http.StatusOK, "success")
	})
	err := handler(c)
	require.NoError(t, err)
	return rec
}

func TestRequireAnalyst_AllowsAnalyst(t *testing.T) {
	client, cleanup := setupRoleTest(t)
	defer cleanup()

	u := createRoleTestUser(t, client, user.RoleMarketingAnalyst)
	rec := invokeWithUserID(t, client, RequireAnalyst(client), u.ID)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAnalyst_AllowsAdmin(t *testing.T) {
	client, cleanup := setupRoleTest(t)
	defer cleanup()

	u := createRoleTestUser(t, client, user.RoleAdmin)
	rec := invokeWithUserID(t, client, RequireAnalyst(client), u.ID)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAnalyst_RejectsViewer(t *testing.T) {
	client, cleanup := setupRoleTest(t)
	defer cleanup()

	u := createRoleTestUser(t, client, user.RoleViewer)
	rec := invokeWithUserID(t, client, RequireAnalyst(client), u.ID)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "insufficient_permissions")
}

func TestRequireAnalyst_MissingUserID(t *testing.T) {
	client, cleanup := setupRoleTest(t)
	defer cleanup()

	rec := invokeWithUserID(t, client, RequireAnalyst(client), nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAnalyst_UnknownUser(t *testing.T) {
	client, cleanup := setupRoleTest(t)
	defer cleanup()

	rec := invokeWithUserID(t, client, RequireAnalyst(client), 9999)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "user_not_found")
}

func TestRequireAdmin_RejectsAnalyst(t *testing.T) {
	client, cleanup := setupRoleTest(t)
	defer cleanup()

	u := createRoleTestUser(t, client, user.RoleMarketingAnalyst)
	rec := invokeWithUserID(t, client, RequireAdmin(client), u.ID)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
