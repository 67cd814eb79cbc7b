package auth

import (
	"strings"

	"supplierhub-backend/internal/config"
	"supplierhub-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type LoginRequest struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	WalmartID string `json:"walmart_id"`
}

// POST /api/auth/login
func LoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		body.Name = strings.TrimSpace(body.Name)

		if body.Email == "" || !strings.Contains(body.Email, "@") {
			return fiber.NewError(fiber.StatusBadRequest, "A valid email is required")
		}
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name is required")
		}

		userID := strings.TrimSpace(body.WalmartID)
		if userID == "" {
			userID = "user_" + uuid.NewString()[:8]
		}

		token, tokenID, err := GenerateToken(cfg.JWTSecret, cfg.SessionTTL, userID, body.Email, body.Name)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token could not be created")
		}
		session := store.Sessions.Create(tokenID, userID, body.Email, body.Name, "email")

		return c.JSON(fiber.Map{
			"success": true,
			"token":   token,
			"user": fiber.Map{
				"id":    userID,
				"email": session.Email,
				"name":  session.Name,
			},
			"expires_at": session.ExpiresAt,
		})
	}
}

// POST /api/auth/sso/walmart?code=...
// Exchanges a Walmart OAuth authorization code for a session. The upstream
// code exchange is stubbed; a session is minted for the callback.
func WalmartSSOHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		code := c.Query("code")
		if code == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Authorization code is required")
		}

		sessionID := uuid.NewString()
		userID := "walmart_user_" + sessionID[:8]
		email := userID + "@walmart.com"

		token, err := generateTokenWithID(cfg.JWTSecret, cfg.SessionTTL, sessionID, userID, email, userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token could not be created")
		}
		store.Sessions.Create(sessionID, userID, email, userID, "walmart")

		return c.JSON(fiber.Map{
			"success":    true,
			"session_id": sessionID,
			"user_id":    userID,
			"token":      token,
			"message":    "Logged in via Walmart SSO",
		})
	}
}

// POST /api/auth/sso/check?session_id=...
func SSOCheckHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Query("session_id")
		if sessionID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "session_id is required")
		}

		session, err := store.Sessions.Get(sessionID)
		if err != nil {
			return c.JSON(fiber.Map{"valid": false})
		}
		return c.JSON(fiber.Map{
			"valid":    true,
			"user_id":  session.UserID,
			"email":    session.Email,
			"provider": session.Provider,
		})
	}
}

// POST /api/auth/logout
func LogoutHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenID, _ := c.Locals(CtxTokenIDKey).(string)
		if err := store.Sessions.Delete(tokenID); err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Session not found")
		}
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Logged out",
		})
	}
}

// GET /api/auth/me
func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": c.Locals(CtxUserIDKey),
			"email":   c.Locals(CtxEmailKey),
			"name":    c.Locals(CtxNameKey),
		})
	}
}
