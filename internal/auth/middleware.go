package auth

import (
	"fmt"
	"strings"

	"supplierhub-backend/internal/config"
	"supplierhub-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	CtxUserIDKey  = "user_id"
	CtxEmailKey   = "email"
	CtxNameKey    = "name"
	CtxTokenIDKey = "token_id"
)

// SessionMiddleware validates the bearer token signature and then checks the
// session registry, so logged-out or expired tokens are rejected even while
// their JWT expiry claim is still valid.
func SessionMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization header missing")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization must be 'Bearer <token>'")
		}

		token, err := jwt.ParseWithClaims(parts[1], &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
		}

		claims, ok := token.Claims.(*SessionClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Token claims could not be read")
		}

		if _, err := store.Sessions.Get(claims.ID); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Session is no longer valid")
		}

		c.Locals(CtxUserIDKey, claims.UserID)
		c.Locals(CtxEmailKey, claims.Email)
		c.Locals(CtxNameKey, claims.Name)
		c.Locals(CtxTokenIDKey, claims.ID)

		return c.Next()
	}
}

// SessionUserID returns the authenticated user id, or "" outside the
// middleware (unit tests mount handlers bare).
func SessionUserID(c *fiber.Ctx) string {
	if v, ok := c.Locals(CtxUserIDKey).(string); ok {
		return v
	}
	return ""
}
