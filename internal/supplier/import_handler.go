package supplier

import (
	"fmt"
	"log"
	"strings"

	"supplierhub-backend/internal/audit"
	"supplierhub-backend/internal/auth"
	"supplierhub-backend/internal/models"
	"supplierhub-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

// POST /api/suppliers/import
// Accepts a .csv or .xlsx upload. Rows fail individually; the batch never
// fails as a whole once the file itself is readable.
func ImportSuppliersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "File upload failed: "+err.Error())
		}

		name := strings.ToLower(fileHeader.Filename)
		if !strings.HasSuffix(name, ".csv") && !strings.HasSuffix(name, ".xlsx") {
			return fiber.NewError(fiber.StatusBadRequest, "Only .csv and .xlsx files can be imported")
		}

		file, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "File could not be opened: "+err.Error())
		}
		defer file.Close()

		var rows [][]string
		if strings.HasSuffix(name, ".xlsx") {
			rows, err = ReadXLSXRows(file)
		} else {
			rows, err = ReadCSVRows(file)
		}
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		result := ImportRows(rows)
		log.Printf("Import finished: %d imported, %d errors (%s)", result.Imported, len(result.Errors), fileHeader.Filename)

		userID := auth.SessionUserID(c)
		audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			EntityType:  "supplier",
			Action:      models.AuditActionImport,
			Description: fmt.Sprintf("Imported %d suppliers from %s (%d errors)", result.Imported, fileHeader.Filename, len(result.Errors)),
		})

		errs := result.Errors
		if errs == nil {
			errs = []string{}
		}
		return c.JSON(fiber.Map{
			"success":             true,
			"imported":            result.Imported,
			"errors":              errs,
			"total_suppliers_now": store.Suppliers.Count(),
			"message":             fmt.Sprintf("Imported %d suppliers", result.Imported),
		})
	}
}
