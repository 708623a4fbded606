package models

import "time"

// ItemFirstSeen: earliest upload timestamp at which an item_id was ever
// recorded. Maintained insert-if-absent on every upload so the aging check
// does not have to scan the full part history.
type ItemFirstSeen struct {
	ItemID        string    `gorm:"primaryKey;size:255"`
	FirstSeenDate time.Time `gorm:"index;not null"`
}

func (ItemFirstSeen) TableName() string {
	return "item_first_seen"
}
