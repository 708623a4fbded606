package inventory

import (
	"errors"
	"fmt"
	"log"
	"time"

	"parts-backend/internal/database"
	"parts-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// GET /api/inventory-changes/export
// Writes the current changes report plus the full upload history as an
// XLSX workbook.
func ExportChangesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		changes, err := LatestChanges(database.DB, time.Now())
		if err != nil {
			if errors.Is(err, ErrNoUploads) {
				return fiber.NewError(fiber.StatusNotFound, "No inventory data found to export")
			}
			log.Printf("Export failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Report could not be generated")
		}

		var uploads []models.UploadLog
		if err := database.DB.
			Order("upload_date DESC, id DESC").
			Find(&uploads).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Report could not be generated")
		}

		f := excelize.NewFile()
		defer f.Close()

		summary := "Summary"
		if err := f.SetSheetName("Sheet1", summary); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Report could not be generated")
		}

		summaryRows := [][]interface{}{
			{"New items", changes.NewItemsCount},
			{"Sold items", changes.SoldItemsCount},
			{"Aging items (90+ days)", changes.AgingItemsCount},
			{"Unchanged items", changes.UnchangedItemsCount},
		}
		for i, row := range summaryRows {
			cell := fmt.Sprintf("A%d", i+1)
			if err := f.SetSheetRow(summary, cell, &row); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Report could not be generated")
			}
		}

		history := "Uploads"
		if _, err := f.NewSheet(history); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Report could not be generated")
		}

		header := []interface{}{"ID", "Filename", "Upload date", "New", "Removed", "Sold", "Unchanged"}
		if err := f.SetSheetRow(history, "A1", &header); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Report could not be generated")
		}
		for i, u := range uploads {
			row := []interface{}{
				u.ID,
				u.Filename,
				u.UploadDate.Format("2006-01-02 15:04:05"),
				u.NewItemsCount,
				u.RemovedItemsCount,
				u.SoldItemsCount,
				u.UnchangedItemsCount,
			}
			cell := fmt.Sprintf("A%d", i+2)
			if err := f.SetSheetRow(history, cell, &row); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Report could not be generated")
			}
		}

		buf, err := f.WriteToBuffer()
		if err != nil {
			log.Printf("XLSX export failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Report could not be generated")
		}

		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventory-changes.xlsx"`)
		return c.Send(buf.Bytes())
	}
}
