package favorites

import (
	"supplierhub-backend/internal/auth"
	"supplierhub-backend/internal/models"
	"supplierhub-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

// resolveUserID honors an explicit user_id query parameter and falls back to
// the session user.
func resolveUserID(c *fiber.Ctx) (string, error) {
	if userID := c.Query("user_id"); userID != "" {
		return userID, nil
	}
	if userID := auth.SessionUserID(c); userID != "" {
		return userID, nil
	}
	return "", fiber.NewError(fiber.StatusBadRequest, "user_id is required")
}

// GET /api/favorites?user_id=...
func ListFavoritesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := resolveUserID(c)
		if err != nil {
			return err
		}

		suppliers := make([]models.Supplier, 0)
		for _, id := range store.Favorites.List(userID) {
			// skip ids that no longer resolve to a live supplier
			if s, err := store.Suppliers.Get(id); err == nil {
				suppliers = append(suppliers, s)
			}
		}

		return c.JSON(fiber.Map{
			"count":     len(suppliers),
			"favorites": suppliers,
		})
	}
}

// POST /api/favorites/add?user_id=...&supplier_id=...
func AddFavoriteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := resolveUserID(c)
		if err != nil {
			return err
		}
		supplierID := c.QueryInt("supplier_id", 0)
		if supplierID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "supplier_id is required")
		}
		if !store.Suppliers.Exists(supplierID) {
			return fiber.NewError(fiber.StatusNotFound, "Supplier not found")
		}

		store.Favorites.Add(userID, supplierID)
		return c.JSON(fiber.Map{"success": true})
	}
}

// POST /api/favorites/remove?user_id=...&supplier_id=...
func RemoveFavoriteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := resolveUserID(c)
		if err != nil {
			return err
		}
		supplierID := c.QueryInt("supplier_id", 0)
		if supplierID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "supplier_id is required")
		}

		store.Favorites.Remove(userID, supplierID)
		return c.JSON(fiber.Map{"success": true})
	}
}
