package middleware

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fadilmartias/jobmatch/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSupabase struct {
	user *service.AuthUser
	err  error
}

func (s *stubSupabase) GetUser(token string) (*service.AuthUser, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func testApp(m *AuthMiddleware, extra ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers := append([]fiber.Handler{m.Protected()}, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"id":   c.Locals(LocalUserID),
			"role": c.Locals(LocalRole),
		})
	})
	app.Get("/private", handlers...)
	return app
}

func TestProtectedValidToken(t *testing.T) {
	m := &AuthMiddleware{jwtSecret: "secret"}
	app := testApp(m)

	token := signToken(t, "secret", jwt.MapClaims{
		"sub":   "user-123",
		"email": "u@example.com",
		"role":  "authenticated",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestProtectedMissingToken(t *testing.T) {
	m := &AuthMiddleware{jwtSecret: "secret"}
	app := testApp(m)

	resp, err := app.Test(httptest.NewRequest("GET", "/private", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedWrongSecret(t *testing.T) {
	m := &AuthMiddleware{jwtSecret: "secret"}
	app := testApp(m)

	token := signToken(t, "other-secret", jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedExpiredToken(t *testing.T) {
	m := &AuthMiddleware{jwtSecret: "secret"}
	app := testApp(m)

	token := signToken(t, "secret", jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedTokenWithoutSubject(t *testing.T) {
	m := &AuthMiddleware{jwtSecret: "secret"}
	app := testApp(m)

	token := signToken(t, "secret", jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRemoteFallback(t *testing.T) {
	m := &AuthMiddleware{supabase: &stubSupabase{
		user: &service.AuthUser{ID: "user-remote", Email: "r@example.com", Role: "authenticated"},
	}}
	app := testApp(m)

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer whatever")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestProtectedRemoteRejected(t *testing.T) {
	m := &AuthMiddleware{supabase: &stubSupabase{err: errors.New("nope")}}
	app := testApp(m)

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer whatever")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole(t *testing.T) {
	m := &AuthMiddleware{jwtSecret: "secret"}
	app := testApp(m, m.RequireRole("service_role"))

	plain := signToken(t, "secret", jwt.MapClaims{
		"sub":  "user-123",
		"role": "authenticated",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+plain)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	admin := signToken(t, "secret", jwt.MapClaims{
		"sub":  "svc",
		"role": "service_role",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	req = httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+admin)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestBearerTokenParsing(t *testing.T) {
	app := fiber.New()
	var got string
	app.Get("/", func(c *fiber.Ctx) error {
		got = bearerToken(c)
		return nil
	})

	cases := []struct {
		header string
		want   string
	}{
		{"", ""},
		{"Bearer abc", "abc"},
		{"bearer abc", "abc"},
		{"Basic abc", ""},
		{"Bearer", ""},
	}
	for _, tc := range cases {
		req := httptest.NewRequest("GET", "/", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		_, err := app.Test(req)
		require.NoError(t, err)
		assert.Equalf(t, tc.want, got, "header %q", tc.header)
	}
}
