package main

import (
	"log"
	"strings"

	"parts-backend/internal/audit"
	"parts-backend/internal/auth"
	"parts-backend/internal/config"
	"parts-backend/internal/database"
	"parts-backend/internal/inventory"
	"parts-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

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

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Snapshot ingestion and reporting
	protected.Post("/upload-csv", auth.RequireRole(models.RoleAdmin), inventory.UploadCSVHandler())
	protected.Get("/inventory-changes", inventory.InventoryChangesHandler())
	protected.Get("/inventory-changes/export", auth.RequireRole(models.RoleAdmin), inventory.ExportChangesHandler())

	// Snapshot history
	protected.Get("/uploads", inventory.ListUploadsHandler())
	protected.Get("/uploads/:id/parts", inventory.ListUploadPartsHandler())
	protected.Get("/items/:item_id/price-history", inventory.ItemPriceHistoryHandler())

	// Admin
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))
	adminRoutes.Post("/users", auth.CreateUserHandler())
	adminRoutes.Get("/audit-logs", audit.ListAuditLogsHandler())

	log.Println("Server listening on port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
