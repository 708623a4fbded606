package inventory

import (
	"fmt"
	"time"

	"parts-backend/internal/models"

	"gorm.io/gorm"
)

// ProcessUpload persists one snapshot and finalizes its delta counters,
// all inside a single transaction. Every record becomes one Part plus one
// PriceHistory row sharing the upload timestamp as recorded_date. If
// anything fails, no part of the snapshot is visible afterwards.
//
// Duplicate item_ids in the input produce one Part per row on purpose;
// the counters still collapse them to one set membership each.
func ProcessUpload(db *gorm.DB, filename string, records []PartRecord, uploadedAt time.Time) (*models.UploadLog, error) {
	upload := models.UploadLog{
		Filename:   filename,
		UploadDate: uploadedAt,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&upload).Error; err != nil {
			return fmt.Errorf("create upload log: %w", err)
		}

		currentItems := make(map[string]struct{}, len(records))
		for _, rec := range records {
			part := models.Part{
				ItemID:      rec.ItemID,
				Name:        rec.Name,
				Description: rec.Description,
				Condition:   rec.Condition,
				UploadLogID: upload.ID,
			}
			if err := tx.Create(&part).Error; err != nil {
				return fmt.Errorf("create part %q: %w", rec.ItemID, err)
			}

			history := models.PriceHistory{
				PartID:       part.ID,
				Price:        rec.Price,
				RecordedDate: uploadedAt,
			}
			if err := tx.Create(&history).Error; err != nil {
				return fmt.Errorf("create price history for part %q: %w", rec.ItemID, err)
			}

			currentItems[rec.ItemID] = struct{}{}
		}

		if err := recordFirstSeen(tx, currentItems, uploadedAt); err != nil {
			return err
		}

		counts, err := computeDelta(tx, upload.ID, currentItems)
		if err != nil {
			return err
		}

		// Finalize the counters exactly once. They are never recomputed
		// for an existing upload.
		upload.NewItemsCount = counts.New
		upload.RemovedItemsCount = counts.Sold // removed and sold are synonymous here for now
		upload.SoldItemsCount = counts.Sold
		upload.UnchangedItemsCount = counts.Unchanged

		if err := tx.Model(&models.UploadLog{}).Where("id = ?", upload.ID).Updates(map[string]interface{}{
			"new_items_count":       upload.NewItemsCount,
			"removed_items_count":   upload.RemovedItemsCount,
			"sold_items_count":      upload.SoldItemsCount,
			"unchanged_items_count": upload.UnchangedItemsCount,
		}).Error; err != nil {
			return fmt.Errorf("finalize upload counters: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &upload, nil
}
