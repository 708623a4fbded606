package inventory

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"parts-backend/internal/audit"
	"parts-backend/internal/auth"
	"parts-backend/internal/database"
	"parts-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type UploadLogResponse struct {
	ID                  uint   `json:"id"`
	Filename            string `json:"filename"`
	UploadDate          string `json:"upload_date"`
	NewItemsCount       int    `json:"new_items_count"`
	RemovedItemsCount   int    `json:"removed_items_count"`
	SoldItemsCount      int    `json:"sold_items_count"`
	UnchangedItemsCount int    `json:"unchanged_items_count"`
}

func newUploadLogResponse(u *models.UploadLog) UploadLogResponse {
	return UploadLogResponse{
		ID:                  u.ID,
		Filename:            u.Filename,
		UploadDate:          u.UploadDate.Format(time.RFC3339),
		NewItemsCount:       u.NewItemsCount,
		RemovedItemsCount:   u.RemovedItemsCount,
		SoldItemsCount:      u.SoldItemsCount,
		UnchangedItemsCount: u.UnchangedItemsCount,
	}
}

// POST /api/upload-csv
// Ingests one CSV snapshot of the parts inventory.
func UploadCSVHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "A file upload is required")
		}

		if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".csv") {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid file type. Only CSV files are allowed")
		}

		file, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Uploaded file could not be opened")
		}
		defer file.Close()

		records, err := ParseCSV(file)
		if err != nil {
			if errors.Is(err, ErrMissingItemIDColumn) {
				return fiber.NewError(fiber.StatusBadRequest, "CSV must contain an item_id column")
			}
			return fiber.NewError(fiber.StatusBadRequest, "CSV could not be parsed: "+err.Error())
		}

		upload, err := ProcessUpload(database.DB, fileHeader.Filename, records, time.Now())
		if err != nil {
			log.Printf("Upload of %s failed: %v", fileHeader.Filename, err)
			return fiber.NewError(fiber.StatusInternalServerError, "Snapshot could not be stored")
		}

		if userID, userName, err := auth.CurrentUser(c); err == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "upload_log",
				EntityID:    upload.ID,
				Action:      models.AuditActionCreate,
				Description: fmt.Sprintf("CSV ingested: %s (%d rows)", upload.Filename, len(records)),
				Before:      nil,
				After:       upload,
			})
		}

		return c.Status(fiber.StatusCreated).JSON(newUploadLogResponse(upload))
	}
}
