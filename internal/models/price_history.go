package models

import "time"

// PriceHistory: one row per Part, created at ingestion time. Price is nil
// when the uploaded value was missing or unparsable.
type PriceHistory struct {
	ID           uint `gorm:"primaryKey"`
	PartID       uint `gorm:"index;not null"`
	Price        *float64
	RecordedDate time.Time `gorm:"not null"`
}

func (PriceHistory) TableName() string {
	return "price_history"
}
