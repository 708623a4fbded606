package inventory

import (
	"errors"
	"fmt"
	"time"

	"parts-backend/internal/models"

	"gorm.io/gorm"
)

// ErrNoUploads signals that no snapshot has ever been ingested, as opposed
// to a snapshot whose counts are all zero.
var ErrNoUploads = errors.New("no uploads recorded")

// InventoryChanges describes the latest snapshot's relationship to
// history. The first three counters are read from the upload log; the
// aging count is computed fresh on every query.
type InventoryChanges struct {
	NewItemsCount       int `json:"new_items_count"`
	SoldItemsCount      int `json:"sold_items_count"`
	AgingItemsCount     int `json:"aging_items_count"`
	UnchangedItemsCount int `json:"unchanged_items_count"`
}

func LatestChanges(db *gorm.DB, now time.Time) (*InventoryChanges, error) {
	var latest models.UploadLog
	err := db.Order("upload_date DESC, id DESC").First(&latest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoUploads
		}
		return nil, fmt.Errorf("load latest upload: %w", err)
	}

	aging, err := countAgingItems(db, latest.ID, now)
	if err != nil {
		return nil, err
	}

	return &InventoryChanges{
		NewItemsCount:       latest.NewItemsCount,
		SoldItemsCount:      latest.SoldItemsCount,
		AgingItemsCount:     aging,
		UnchangedItemsCount: latest.UnchangedItemsCount,
	}, nil
}
