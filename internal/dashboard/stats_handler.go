package dashboard

import (
	"math"

	"supplierhub-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type StatsResponse struct {
	TotalSuppliers     int            `json:"total_suppliers"`
	WalmartVerified    int            `json:"walmart_verified"`
	VerifiedPercentage float64        `json:"verified_percentage"`
	AverageRating      float64        `json:"average_rating"`
	AverageAIScore     float64        `json:"average_ai_score"`
	Categories         map[string]int `json:"categories"`
}

// GET /api/dashboard/stats
func StatsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats := store.Suppliers.Stats()

		resp := StatsResponse{
			TotalSuppliers:  stats.Total,
			WalmartVerified: stats.Verified,
			Categories:      stats.Categories,
		}
		if stats.Total > 0 {
			resp.VerifiedPercentage = round(float64(stats.Verified)/float64(stats.Total)*100, 1)
			resp.AverageRating = round(stats.AverageRating, 2)
			resp.AverageAIScore = round(stats.AverageAIScore, 1)
		}

		return c.JSON(resp)
	}
}

func round(v float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(v*factor) / factor
}
