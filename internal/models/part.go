package models

// Part: a point-in-time inventory record belonging to exactly one upload.
// ItemID repeats across (and may repeat within) snapshots; it is the key
// that correlates "the same physical item" over time.
type Part struct {
	ID          uint   `gorm:"primaryKey"`
	ItemID      string `gorm:"size:255;index;not null"`
	Name        string `gorm:"size:255"`
	Description string `gorm:"type:text"`
	Condition   string `gorm:"size:255"`
	UploadLogID uint   `gorm:"index;not null"`

	PriceHistory []PriceHistory `gorm:"constraint:OnDelete:CASCADE"`
}
