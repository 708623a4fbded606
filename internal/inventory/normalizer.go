package inventory

import (
	"strconv"
	"strings"
)

// Value stored when an optional field is missing from the upload.
const missingValue = "N/A"

// PartRecord: one cleaned inventory row, ready to be persisted.
type PartRecord struct {
	ItemID      string
	Name        string
	Description string
	Condition   string
	Price       *float64 // nil when missing or unparsable
}

// normalizeColumn folds a raw CSV header cell into the canonical column
// name: trimmed, lowercased, spaces replaced with underscores. A UTF-8 BOM
// on the first cell is stripped as well.
func normalizeColumn(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(name, " ", "_")
}

// NormalizeRecord cleans one raw row (canonical column name -> raw value).
// Returns false when the row has no usable item_id and must be dropped.
// Malformed non-identifier fields degrade to missing/default values rather
// than failing the row.
func NormalizeRecord(row map[string]string) (PartRecord, bool) {
	itemID := strings.TrimSpace(row["item_id"])
	if itemID == "" {
		return PartRecord{}, false
	}

	rec := PartRecord{
		ItemID:      itemID,
		Name:        textOrDefault(row["name"]),
		Description: textOrDefault(row["description"]),
		Condition:   missingValue,
	}

	if cond := strings.ToLower(strings.TrimSpace(row["condition"])); cond != "" {
		rec.Condition = cond
	}

	if p, err := strconv.ParseFloat(strings.TrimSpace(row["price"]), 64); err == nil {
		rec.Price = &p
	}

	return rec, true
}

func textOrDefault(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return missingValue
	}
	return v
}
