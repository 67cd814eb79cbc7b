package chatbot

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

type MessageRequest struct {
	Message string `json:"message" form:"message"`
	UserID  string `json:"user_id" form:"user_id"`
}

// POST /api/chatbot/message
func MessageHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body MessageRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if strings.TrimSpace(body.Message) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "message is required")
		}

		reply := Respond(body.Message)
		return c.JSON(fiber.Map{
			"success":   true,
			"response":  reply,
			"timestamp": time.Now().Format("2006-01-02T15:04:05Z07:00"),
		})
	}
}
