package inventory

import (
	"errors"
	"fmt"

	"parts-backend/internal/models"

	"gorm.io/gorm"
)

type deltaCounts struct {
	New       int
	Sold      int
	Unchanged int
}

// computeDelta diffs the current snapshot's item set against the snapshot
// immediately before it. The primary key breaks upload_date ties, so two
// uploads committed in the same instant still order deterministically.
// With no previous snapshot every count is zero.
func computeDelta(tx *gorm.DB, currentID uint, currentItems map[string]struct{}) (deltaCounts, error) {
	var previous models.UploadLog
	err := tx.
		Where("id <> ?", currentID).
		Order("upload_date DESC, id DESC").
		First(&previous).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return deltaCounts{}, nil
		}
		return deltaCounts{}, fmt.Errorf("load previous upload: %w", err)
	}

	previousItems, err := snapshotItemSet(tx, previous.ID)
	if err != nil {
		return deltaCounts{}, err
	}

	var counts deltaCounts
	for itemID := range currentItems {
		if _, ok := previousItems[itemID]; ok {
			counts.Unchanged++
		} else {
			counts.New++
		}
	}
	for itemID := range previousItems {
		if _, ok := currentItems[itemID]; !ok {
			counts.Sold++
		}
	}

	return counts, nil
}

// snapshotItemSet loads the distinct item_ids recorded in one upload.
func snapshotItemSet(tx *gorm.DB, uploadID uint) (map[string]struct{}, error) {
	var itemIDs []string
	if err := tx.Model(&models.Part{}).
		Where("upload_log_id = ?", uploadID).
		Distinct().
		Pluck("item_id", &itemIDs).Error; err != nil {
		return nil, fmt.Errorf("load items of upload %d: %w", uploadID, err)
	}

	set := make(map[string]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		set[id] = struct{}{}
	}
	return set, nil
}
