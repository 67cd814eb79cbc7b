package supplier

import (
	"errors"
	"fmt"
	"strconv"

	"supplierhub-backend/internal/audit"
	"supplierhub-backend/internal/auth"
	"supplierhub-backend/internal/models"
	"supplierhub-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

// -------------------------
// Request/Response Types
// -------------------------

type CreateSupplierRequest struct {
	ID                int      `json:"id"`
	Name              string   `json:"name"`
	Category          string   `json:"category"`
	Location          string   `json:"location"`
	Region            string   `json:"region"`
	Rating            float64  `json:"rating"`
	AIScore           int      `json:"aiScore"`
	Products          []string `json:"products"`
	Certifications    []string `json:"certifications"`
	WalmartVerified   bool     `json:"walmartVerified"`
	YearsInBusiness   int      `json:"yearsInBusiness"`
	ProjectsCompleted int      `json:"projectsCompleted"`
}

type UpdateSupplierRequest struct {
	Name              *string   `json:"name"`
	Category          *string   `json:"category"`
	Location          *string   `json:"location"`
	Region            *string   `json:"region"`
	Rating            *float64  `json:"rating"`
	AIScore           *int      `json:"aiScore"`
	Products          *[]string `json:"products"`
	Certifications    *[]string `json:"certifications"`
	WalmartVerified   *bool     `json:"walmartVerified"`
	YearsInBusiness   *int      `json:"yearsInBusiness"`
	ProjectsCompleted *int      `json:"projectsCompleted"`
}

type ListSuppliersResponse struct {
	Total     int               `json:"total"`
	Skip      int               `json:"skip"`
	Limit     int               `json:"limit"`
	Count     int               `json:"count"`
	Suppliers []models.Supplier `json:"suppliers"`
}

// storeErr maps store sentinel errors to HTTP responses at the boundary.
func storeErr(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Supplier not found")
	case errors.Is(err, store.ErrDuplicateID):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, store.ErrValidation), errors.Is(err, store.ErrInvalidArgument):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		return err
	}
}

// -------------------------
// Supplier CRUD & Search
// -------------------------

// GET /api/suppliers?skip=&limit=&search=&category=&location=&min_rating=&verified_only=&fixtures_hardware=
func ListSuppliersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := store.SupplierFilter{
			Search:   c.Query("search"),
			Category: c.Query("category"),
			Location: c.Query("location"),
			Skip:     c.QueryInt("skip", 0),
			Limit:    c.QueryInt("limit", 100),
		}

		if v := c.Query("min_rating"); v != "" {
			minRating, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "min_rating must be a number")
			}
			filter.MinRating = &minRating
		}
		filter.VerifiedOnly = c.QueryBool("verified_only", false)
		filter.FixturesHardware = c.QueryBool("fixtures_hardware", false)

		if filter.Limit > 1000 {
			filter.Limit = 1000
		}

		suppliers, total, err := store.Suppliers.Query(filter)
		if err != nil {
			return storeErr(err)
		}

		return c.JSON(ListSuppliersResponse{
			Total:     total,
			Skip:      filter.Skip,
			Limit:     filter.Limit,
			Count:     len(suppliers),
			Suppliers: suppliers,
		})
	}
}

// GET /api/suppliers/:id
func GetSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Supplier id must be an integer")
		}

		s, err := store.Suppliers.Get(id)
		if err != nil {
			return storeErr(err)
		}
		return c.JSON(s)
	}
}

// POST /api/suppliers/add
func CreateSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateSupplierRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		userID := auth.SessionUserID(c)
		s, err := store.Suppliers.Create(models.Supplier{
			ID:                body.ID,
			Name:              body.Name,
			Category:          body.Category,
			Location:          body.Location,
			Region:            body.Region,
			Rating:            body.Rating,
			AIScore:           body.AIScore,
			Products:          body.Products,
			Certifications:    body.Certifications,
			WalmartVerified:   body.WalmartVerified,
			YearsInBusiness:   body.YearsInBusiness,
			ProjectsCompleted: body.ProjectsCompleted,
		}, userID)
		if err != nil {
			return storeErr(err)
		}

		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			EntityType:  "supplier",
			EntityID:    s.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Supplier added: %s", s.Name),
			After:       s,
		})

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success":     true,
			"supplier_id": s.ID,
			"supplier":    s,
			"message":     "Supplier added successfully",
		})
	}
}

// PUT /api/suppliers/:id
func UpdateSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Supplier id must be an integer")
		}

		var body UpdateSupplierRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		before, err := store.Suppliers.Get(id)
		if err != nil {
			return storeErr(err)
		}

		userID := auth.SessionUserID(c)
		s, err := store.Suppliers.Update(id, store.SupplierUpdate{
			Name:              body.Name,
			Category:          body.Category,
			Location:          body.Location,
			Region:            body.Region,
			Rating:            body.Rating,
			AIScore:           body.AIScore,
			Products:          body.Products,
			Certifications:    body.Certifications,
			WalmartVerified:   body.WalmartVerified,
			YearsInBusiness:   body.YearsInBusiness,
			ProjectsCompleted: body.ProjectsCompleted,
		}, userID)
		if err != nil {
			return storeErr(err)
		}

		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			EntityType:  "supplier",
			EntityID:    s.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Supplier updated: %s", s.Name),
			Before:      before,
			After:       s,
		})

		return c.JSON(fiber.Map{
			"success":     true,
			"supplier_id": s.ID,
			"supplier":    s,
			"message":     "Supplier updated successfully",
		})
	}
}

// DELETE /api/suppliers/:id
// Also removes the supplier from every user's favorites and notes so no
// dangling references are left behind.
func DeleteSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Supplier id must be an integer")
		}

		before, err := store.Suppliers.Get(id)
		if err != nil {
			return storeErr(err)
		}
		if err := store.Suppliers.Delete(id); err != nil {
			return storeErr(err)
		}
		store.Favorites.RemoveSupplier(id)
		store.Notes.RemoveSupplier(id)

		userID := auth.SessionUserID(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			EntityType:  "supplier",
			EntityID:    id,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Supplier deleted: %s", before.Name),
			Before:      before,
		})

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Supplier deleted",
		})
	}
}

// GET /api/suppliers/categories/all
func ListCategoriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		categories := store.Suppliers.Categories()
		return c.JSON(fiber.Map{
			"categories": categories,
			"count":      len(categories),
		})
	}
}
