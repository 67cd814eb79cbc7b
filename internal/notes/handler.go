package notes

import (
	"errors"
	"fmt"
	"strings"

	"supplierhub-backend/internal/auth"
	"supplierhub-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type NoteResponse struct {
	ID           string `json:"id"`
	SupplierID   int    `json:"supplier_id"`
	SupplierName string `json:"supplier_name"`
	Content      string `json:"content"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

func resolveUserID(c *fiber.Ctx) (string, error) {
	if userID := c.Query("user_id"); userID != "" {
		return userID, nil
	}
	if userID := auth.SessionUserID(c); userID != "" {
		return userID, nil
	}
	return "", fiber.NewError(fiber.StatusBadRequest, "user_id is required")
}

func resolveSupplierID(c *fiber.Ctx) (int, error) {
	supplierID := c.QueryInt("supplier_id", 0)
	if supplierID <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "supplier_id is required")
	}
	return supplierID, nil
}

// GET /api/notes?user_id=...
func ListNotesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := resolveUserID(c)
		if err != nil {
			return err
		}

		resp := make([]NoteResponse, 0)
		for _, note := range store.Notes.List(userID) {
			// notes for deleted suppliers are not shown
			s, err := store.Suppliers.Get(note.SupplierID)
			if err != nil {
				continue
			}
			resp = append(resp, NoteResponse{
				ID:           fmt.Sprintf("%s_%d", userID, note.SupplierID),
				SupplierID:   note.SupplierID,
				SupplierName: s.Name,
				Content:      note.Content,
				CreatedAt:    note.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
				UpdatedAt:    note.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
			})
		}

		return c.JSON(fiber.Map{
			"count": len(resp),
			"notes": resp,
		})
	}
}

// POST /api/notes/add?user_id=...&supplier_id=...&content=...
// POST /api/notes/update — same write path, last write wins.
func SetNoteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := resolveUserID(c)
		if err != nil {
			return err
		}
		supplierID, err := resolveSupplierID(c)
		if err != nil {
			return err
		}
		content := strings.TrimSpace(c.Query("content"))
		if content == "" {
			return fiber.NewError(fiber.StatusBadRequest, "content is required")
		}
		if !store.Suppliers.Exists(supplierID) {
			return fiber.NewError(fiber.StatusNotFound, "Supplier not found")
		}

		store.Notes.Set(userID, supplierID, content)
		return c.JSON(fiber.Map{"success": true})
	}
}

// POST /api/notes/delete?user_id=...&supplier_id=...
func DeleteNoteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := resolveUserID(c)
		if err != nil {
			return err
		}
		supplierID, err := resolveSupplierID(c)
		if err != nil {
			return err
		}

		if err := store.Notes.Delete(userID, supplierID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Note not found")
			}
			return err
		}
		return c.JSON(fiber.Map{"success": true})
	}
}
