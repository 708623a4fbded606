package inventory

import (
	"time"

	"parts-backend/internal/database"
	"parts-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type PartResponse struct {
	ID           uint     `json:"id"`
	ItemID       string   `json:"item_id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Condition    string   `json:"condition"`
	Price        *float64 `json:"price"`
	UploadLogID  uint     `json:"upload_log_id"`
	RecordedDate string   `json:"recorded_date"`
}

type PricePointResponse struct {
	PartID       uint     `json:"part_id"`
	UploadLogID  uint     `json:"upload_log_id"`
	Price        *float64 `json:"price"`
	RecordedDate string   `json:"recorded_date"`
}

// GET /api/uploads
func ListUploadsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var uploads []models.UploadLog
		if err := database.DB.
			Order("upload_date DESC, id DESC").
			Find(&uploads).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Uploads could not be listed")
		}

		resp := make([]UploadLogResponse, 0, len(uploads))
		for i := range uploads {
			resp = append(resp, newUploadLogResponse(&uploads[i]))
		}

		return c.JSON(resp)
	}
}

// GET /api/uploads/:id/parts
// Lists the parts recorded in one snapshot together with their price.
func ListUploadPartsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		uploadID, err := c.ParamsInt("id")
		if err != nil || uploadID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid upload id")
		}

		var upload models.UploadLog
		if err := database.DB.First(&upload, "id = ?", uploadID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Upload not found")
		}

		var parts []models.Part
		if err := database.DB.
			Preload("PriceHistory").
			Where("upload_log_id = ?", upload.ID).
			Order("id ASC").
			Find(&parts).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Parts could not be listed")
		}

		resp := make([]PartResponse, 0, len(parts))
		for _, p := range parts {
			pr := PartResponse{
				ID:          p.ID,
				ItemID:      p.ItemID,
				Name:        p.Name,
				Description: p.Description,
				Condition:   p.Condition,
				UploadLogID: p.UploadLogID,
			}
			if len(p.PriceHistory) > 0 {
				pr.Price = p.PriceHistory[0].Price
				pr.RecordedDate = p.PriceHistory[0].RecordedDate.Format(time.RFC3339)
			}
			resp = append(resp, pr)
		}

		return c.JSON(resp)
	}
}

// GET /api/items/:item_id/price-history
// The recorded prices of one item across all snapshots, oldest first.
func ItemPriceHistoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		itemID := c.Params("item_id")
		if itemID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "item_id is required")
		}

		type historyRow struct {
			PartID       uint
			UploadLogID  uint
			Price        *float64
			RecordedDate time.Time
		}

		var rows []historyRow
		if err := database.DB.
			Model(&models.PriceHistory{}).
			Select("price_history.*, parts.upload_log_id").
			Joins("JOIN parts ON parts.id = price_history.part_id").
			Where("parts.item_id = ?", itemID).
			Order("price_history.recorded_date ASC, price_history.id ASC").
			Scan(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Price history could not be loaded")
		}

		if len(rows) == 0 {
			return fiber.NewError(fiber.StatusNotFound, "No price history for this item")
		}

		resp := make([]PricePointResponse, 0, len(rows))
		for _, r := range rows {
			resp = append(resp, PricePointResponse{
				PartID:       r.PartID,
				UploadLogID:  r.UploadLogID,
				Price:        r.Price,
				RecordedDate: r.RecordedDate.Format(time.RFC3339),
			})
		}

		return c.JSON(resp)
	}
}
