package middleware

import (
	"strings"

	"github.com/fadilmartias/jobmatch/internal/config"
	"github.com/fadilmartias/jobmatch/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	LocalUserID = "auth_user_id"
	LocalEmail  = "auth_email"
	LocalRole   = "auth_role"
)

type AuthMiddleware struct {
	jwtSecret string
	supabase  service.SupabaseAuthServiceInterface
}

func NewAuthMiddleware(supabase service.SupabaseAuthServiceInterface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtSecret: config.LoadSupabaseConfig().JWTSecret,
		supabase:  supabase,
	}
}

// Protected verifies the bearer token. Kalau JWT secret tersedia verifikasi
// lokal (HS256, cara Supabase), kalau tidak fallback ke introspeksi GoTrue.
func (m *AuthMiddleware) Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		if m.jwtSecret != "" {
			return m.verifyLocal(c, token)
		}
		return m.verifyRemote(c, token)
	}
}

// RequireRole guards admin routes. Must run after Protected.
func (m *AuthMiddleware) RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		got, _ := c.Locals(LocalRole).(string)
		if got != role {
			return fiber.NewError(fiber.StatusForbidden, "insufficient role")
		}
		return c.Next()
	}
}

func (m *AuthMiddleware) verifyLocal(c *fiber.Ctx, tokenStr string) error {
	parsed, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return []byte(m.jwtSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid token claims")
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "token has no subject")
	}

	c.Locals(LocalUserID, sub)
	if email, ok := claims["email"].(string); ok {
		c.Locals(LocalEmail, email)
	}
	if role, ok := claims["role"].(string); ok {
		c.Locals(LocalRole, role)
	}
	return c.Next()
}

func (m *AuthMiddleware) verifyRemote(c *fiber.Ctx, token string) error {
	user, err := m.supabase.GetUser(token)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "token rejected by auth server")
	}
	c.Locals(LocalUserID, user.ID)
	c.Locals(LocalEmail, user.Email)
	c.Locals(LocalRole, user.Role)
	return c.Next()
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
