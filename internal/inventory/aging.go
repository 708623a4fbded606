package inventory

import (
	"fmt"
	"time"

	"parts-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// An item is aging once its first-seen date is at least this many days in
// the past. The boundary is inclusive: first seen exactly 90 days ago
// counts, 89 days does not.
const agingThresholdDays = 90

// recordFirstSeen inserts a first-seen date for every item_id this
// snapshot introduces. Items already on record keep their earlier date.
func recordFirstSeen(tx *gorm.DB, items map[string]struct{}, seenAt time.Time) error {
	if len(items) == 0 {
		return nil
	}

	rows := make([]models.ItemFirstSeen, 0, len(items))
	for itemID := range items {
		rows = append(rows, models.ItemFirstSeen{ItemID: itemID, FirstSeenDate: seenAt})
	}

	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "item_id"}},
		DoNothing: true,
	}).Create(&rows).Error; err != nil {
		return fmt.Errorf("record first-seen dates: %w", err)
	}

	return nil
}

// countAgingItems counts the items of the given snapshot that have been
// tracked for agingThresholdDays or longer.
func countAgingItems(db *gorm.DB, uploadID uint, now time.Time) (int, error) {
	cutoff := now.AddDate(0, 0, -agingThresholdDays)

	currentItems := db.Model(&models.Part{}).
		Select("item_id").
		Where("upload_log_id = ?", uploadID)

	var count int64
	if err := db.Model(&models.ItemFirstSeen{}).
		Where("item_id IN (?)", currentItems).
		Where("first_seen_date <= ?", cutoff).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count aging items: %w", err)
	}

	return int(count), nil
}
