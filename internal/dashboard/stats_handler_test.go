package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"supplierhub-backend/internal/config"
	"supplierhub-backend/internal/models"
	"supplierhub-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getStats(t *testing.T, app *fiber.App) StatsResponse {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	var out StatsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestStatsHandler(t *testing.T) {
	store.Init(&config.Config{SessionTTL: time.Hour})
	app := fiber.New()
	app.Get("/api/dashboard/stats", StatsHandler())

	// empty store yields a zero-value shape, not an error
	out := getStats(t, app)
	assert.Zero(t, out.TotalSuppliers)
	assert.Zero(t, out.AverageRating)
	assert.NotNil(t, out.Categories)

	fixtures := []models.Supplier{
		{ID: 1, Name: "A", Category: "Steel & Metal", Rating: 5, AIScore: 90, WalmartVerified: true},
		{ID: 2, Name: "B", Category: "Steel & Metal", Rating: 4, AIScore: 70, WalmartVerified: true},
		{ID: 3, Name: "C", Category: "Concrete", Rating: 3, AIScore: 50},
	}
	for _, s := range fixtures {
		_, err := store.Suppliers.Create(s, "tester")
		require.NoError(t, err)
	}

	out = getStats(t, app)
	assert.Equal(t, 3, out.TotalSuppliers)
	assert.Equal(t, 2, out.WalmartVerified)
	assert.Equal(t, 66.7, out.VerifiedPercentage)
	assert.Equal(t, 4.0, out.AverageRating)
	assert.Equal(t, 70.0, out.AverageAIScore)
	assert.Equal(t, 2, out.Categories["Steel & Metal"])
}
