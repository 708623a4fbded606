package inventory

import (
	"errors"
	"log"
	"time"

	"parts-backend/internal/database"

	"github.com/gofiber/fiber/v2"
)

// GET /api/inventory-changes
func InventoryChangesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		changes, err := LatestChanges(database.DB, time.Now())
		if err != nil {
			if errors.Is(err, ErrNoUploads) {
				return fiber.NewError(fiber.StatusNotFound, "No inventory data found to calculate changes")
			}
			log.Printf("Inventory changes query failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Inventory changes could not be calculated")
		}

		return c.JSON(changes)
	}
}
