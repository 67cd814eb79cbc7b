package audit

import (
	"github.com/gofiber/fiber/v2"
)

// GET /api/audit-logs
func ListAuditLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		logs := List()
		return c.JSON(fiber.Map{
			"count": len(logs),
			"logs":  logs,
		})
	}
}
