package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricewatch/pricewatch/pkg/auth"
)

const testSecret = "test-secret"

func invokeJWT(t *testing.T, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := JWTMiddleware(testSecret)(func(c echo.Context) error {
		return c.String(http.StatusOK, "success")
	})
	err := handler(c)
	require.NoError(t, err)
	return rec, c
}

func TestJWTMiddleware_ValidToken(t *testing.T) {
	token, err := auth.GenerateJWT(42, "analyst@pricewatch.local", "marketing_analyst", testSecret, 24)
	require.NoError(t, err)

	rec, c := invokeJWT(t, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 42, c.Get("user_id"))
	assert.Equal(t, "analyst@pricewatch.local", c.Get("user_email"))
	assert.Equal(t, "marketing_analyst", c.Get("user_role"))
	assert.Equal(t, token, c.Get("token"))
}

func TestJWTMiddleware_MissingHeader(t *testing.T) {
	rec, _ := invokeJWT(t, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing_token")
}

func TestJWTMiddleware_BadFormat(t *testing.T) {
	rec, _ := invokeJWT(t, "Basic abc123")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_token_format")
}

func TestJWTMiddleware_InvalidToken(t *testing.T) {
	rec, _ := invokeJWT(t, "Bearer not-a-jwt")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_token")
}

func TestJWTMiddleware_WrongSecret(t *testing.T) {
	token, err := auth.GenerateJWT(42, "analyst@pricewatch.local", "marketing_analyst", "other-secret", 24)
	require.NoError(t, err)

	rec, _ := invokeJWT(t, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
