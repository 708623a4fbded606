package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeColumn(t *testing.T) {
	assert.Equal(t, "item_id", normalizeColumn("Item ID"))
	assert.Equal(t, "price", normalizeColumn("  Price "))
	assert.Equal(t, "condition", normalizeColumn("CONDITION"))
	assert.Equal(t, "item_id", normalizeColumn("\ufeffItem ID"))
	assert.Equal(t, "part_description", normalizeColumn("Part Description"))
}

func TestNormalizeRecordDefaults(t *testing.T) {
	rec, ok := NormalizeRecord(map[string]string{"item_id": "P100"})
	require.True(t, ok)

	assert.Equal(t, "P100", rec.ItemID)
	assert.Equal(t, "N/A", rec.Name)
	assert.Equal(t, "N/A", rec.Description)
	assert.Equal(t, "N/A", rec.Condition)
	assert.Nil(t, rec.Price)
}

func TestNormalizeRecordCleansFields(t *testing.T) {
	rec, ok := NormalizeRecord(map[string]string{
		"item_id":   " P200 ",
		"name":      "Brake caliper",
		"condition": "  USED ",
		"price":     " 149.90 ",
	})
	require.True(t, ok)

	assert.Equal(t, "P200", rec.ItemID)
	assert.Equal(t, "Brake caliper", rec.Name)
	assert.Equal(t, "used", rec.Condition)
	require.NotNil(t, rec.Price)
	assert.Equal(t, 149.90, *rec.Price)
}

func TestNormalizeRecordUnparsablePriceIsMissing(t *testing.T) {
	rec, ok := NormalizeRecord(map[string]string{
		"item_id": "P300",
		"price":   "abc",
	})
	require.True(t, ok)
	assert.Nil(t, rec.Price)
}

func TestNormalizeRecordDropsRowWithoutItemID(t *testing.T) {
	_, ok := NormalizeRecord(map[string]string{"name": "orphan row"})
	assert.False(t, ok)

	_, ok = NormalizeRecord(map[string]string{"item_id": "   "})
	assert.False(t, ok)
}
