package models

import "time"

// UploadLog: one CSV ingestion event. The counters describe the snapshot's
// relationship to the one immediately before it and are finalized exactly
// once, inside the upload transaction.
type UploadLog struct {
	ID                  uint      `gorm:"primaryKey"`
	Filename            string    `gorm:"size:255;not null;index"`
	UploadDate          time.Time `gorm:"index;not null"`
	NewItemsCount       int       `gorm:"not null;default:0"`
	RemovedItemsCount   int       `gorm:"not null;default:0"` // currently always equal to SoldItemsCount
	SoldItemsCount      int       `gorm:"not null;default:0"`
	UnchangedItemsCount int       `gorm:"not null;default:0"`

	Parts []Part `gorm:"constraint:OnDelete:CASCADE"`
}
