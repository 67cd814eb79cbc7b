package main

import (
	"log"
	"strings"

	"supplierhub-backend/internal/audit"
	"supplierhub-backend/internal/auth"
	"supplierhub-backend/internal/chatbot"
	"supplierhub-backend/internal/config"
	"supplierhub-backend/internal/dashboard"
	"supplierhub-backend/internal/favorites"
	"supplierhub-backend/internal/notes"
	"supplierhub-backend/internal/store"
	"supplierhub-backend/internal/supplier"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	store.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":           "healthy",
			"message":          "API is running",
			"suppliers_loaded": store.Suppliers.Count(),
		})
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"api":              "Supplier Hub",
			"status":           "running",
			"suppliers_loaded": store.Suppliers.Count(),
			"features": []string{
				"Supplier search & filtering",
				"Supplier management (add/edit/delete)",
				"CSV/XLSX import",
				"Favorites",
				"Notes",
				"Chatbot",
				"Walmart SSO",
			},
		})
	})

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/login", auth.LoginHandler(cfg))
	api.Post("/auth/sso/walmart", auth.WalmartSSOHandler(cfg))
	api.Post("/auth/sso/check", auth.SSOCheckHandler())

	// Protected
	protected := api.Group("")
	protected.Use(auth.SessionMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())
	protected.Post("/auth/logout", auth.LogoutHandler())

	// Suppliers
	protected.Get("/suppliers", supplier.ListSuppliersHandler())
	protected.Get("/suppliers/categories/all", supplier.ListCategoriesHandler())
	protected.Get("/suppliers/:id", supplier.GetSupplierHandler())
	protected.Post("/suppliers/add", supplier.CreateSupplierHandler())
	protected.Put("/suppliers/:id", supplier.UpdateSupplierHandler())
	protected.Delete("/suppliers/:id", supplier.DeleteSupplierHandler())
	protected.Post("/suppliers/import", supplier.ImportSuppliersHandler())

	// Favorites
	protected.Get("/favorites", favorites.ListFavoritesHandler())
	protected.Post("/favorites/add", favorites.AddFavoriteHandler())
	protected.Post("/favorites/remove", favorites.RemoveFavoriteHandler())

	// Notes
	protected.Get("/notes", notes.ListNotesHandler())
	protected.Post("/notes/add", notes.SetNoteHandler())
	protected.Post("/notes/update", notes.SetNoteHandler())
	protected.Post("/notes/delete", notes.DeleteNoteHandler())

	// Chatbot
	protected.Post("/chatbot/message", chatbot.MessageHandler())

	// Dashboard
	protected.Get("/dashboard/stats", dashboard.StatsHandler())

	// Audit logs
	protected.Get("/audit-logs", audit.ListAuditLogsHandler())

	log.Println("Server listening on port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
