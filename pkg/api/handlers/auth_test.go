package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/pricewatch/pricewatch/config"
	"github.com/pricewatch/pricewatch/ent"
	"github.com/pricewatch/pricewatch/ent/enttest"
	"github.com/pricewatch/pricewatch/ent/user"
	"github.com/pricewatch/pricewatch/pkg/auth"
	"github.com/pricewatch/pricewatch/pkg/cache"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

// setupAuthTest creates test database, miniredis-backed blacklist and handler
func setupAuthTest(t *testing.T) (*ent.Client, *AuthHandler, *auth.TokenBlacklist, func()) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	blacklist := auth.NewTokenBlacklist(cache.NewClientFromRedis(rdb))

	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 24,
	}
	handler := NewAuthHandler(client, cfg, blacklist, nil)

	cleanup := func() {
		client.Close()
		rdb.Close()
	}

	return client, handler, blacklist, cleanup
}

func postJSON(t *testing.T, handler echo.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, handler(c))
	return rec
}

func TestRegister_Success(t *testing.T) {
	_, handler, _, cleanup := setupAuthTest(t)
	defer cleanup()

	rec := postJSON(t, handler.Register, "/auth/register",
		`{"email":"new@example.com","password":"supersecret","name":"New User"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.NotEmpty(t, response["token"])

	userInfo := response["user"].(map[string]interface{})
	assert.Equal(t, "new@example.com", userInfo["email"])
	assert.Equal(t, "viewer", userInfo["role"])
}

func TestRegister_DuplicateEmail(t *testing.T) {
	_, handler, _, cleanup := setupAuthTest(t)
	defer cleanup()

	body := `{"email":"dup@example.com","password":"supersecret","name":"First"}`
	rec := postJSON(t, handler.Register, "/auth/register", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, handler.Register, "/auth/register", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegister_Validation(t *testing.T) {
	_, handler, _, cleanup := setupAuthTest(t)
	defer cleanup()

	cases := []struct {
		name string
		body string
	}{
		{"invalid email", `{"email":"not-an-email","password":"supersecret","name":"X Y"}`},
		{"short password", `{"email":"a@example.com","password":"short","name":"X Y"}`},
		{"missing name", `{"email":"a@example.com","password":"supersecret"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postJSON(t, handler.Register, "/auth/register", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func registerTestUser(t *testing.T, client *ent.Client, email, password string, role user.Role) *ent.User {
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	u, err := client.User.Create().
		SetEmail(email).
		SetPasswordHash(hash).
		SetName("Test User").
		SetRole(role).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func TestLogin_Success(t *testing.T) {
	client, handler, _, cleanup := setupAuthTest(t)
	defer cleanup()

	registerTestUser(t, client, "analyst@example.com", "supersecret", user.RoleMarketingAnalyst)

	rec := postJSON(t, handler.Login, "/auth/login",
		`{"email":"analyst@example.com","password":"supersecret"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.NotEmpty(t, response["token"])

	userInfo := response["user"].(map[string]interface{})
	assert.Equal(t, "marketing_analyst", userInfo["role"])
}

func TestLogin_WrongPassword(t *testing.T) {
	client, handler, _, cleanup := setupAuthTest(t)
	defer cleanup()

	registerTestUser(t, client, "analyst@example.com", "supersecret", user.RoleMarketingAnalyst)

	rec := postJSON(t, handler.Login, "/auth/login",
		`{"email":"analyst@example.com","password":"wrong-password"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_UnknownEmail(t *testing.T) {
	_, handler, _, cleanup := setupAuthTest(t)
	defer cleanup()

	rec := postJSON(t, handler.Login, "/auth/login",
		`{"email":"ghost@example.com","password":"whatever123"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_DisabledAccount(t *testing.T) {
	client, handler, _, cleanup := setupAuthTest(t)
	defer cleanup()

	u := registerTestUser(t, client, "gone@example.com", "supersecret", user.RoleViewer)
	_, err := client.User.UpdateOneID(u.ID).SetIsActive(false).Save(context.Background())
	require.NoError(t, err)

	rec := postJSON(t, handler.Login, "/auth/login",
		`{"email":"gone@example.com","password":"supersecret"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe(t *testing.T) {
	client, handler, _, cleanup := setupAuthTest(t)
	defer cleanup()

	u := registerTestUser(t, client, "me@example.com", "supersecret", user.RoleAdmin)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", u.ID)

	require.NoError(t, handler.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var info map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "me@example.com", info["email"])
	assert.Equal(t, "admin", info["role"])
}

func TestLogout_RevokesToken(t *testing.T) {
	client, handler, blacklist, cleanup := setupAuthTest(t)
	defer cleanup()

	u := registerTestUser(t, client, "out@example.com", "supersecret", user.RoleViewer)
	token, err := auth.GenerateJWT(u.ID, u.Email, u.Role.String(), "test-secret", 24)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("token", token)
	c.Set("user_id", u.ID)

	require.NoError(t, handler.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	revoked, err := blacklist.IsBlacklisted(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestLogout_MissingToken(t *testing.T) {
	_, handler, _, cleanup := setupAuthTest(t)
	defer cleanup()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Logout(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
