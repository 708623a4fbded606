package inventory

import (
	"path/filepath"
	"testing"

	"parts-backend/internal/database"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway SQLite database with the full schema
// migrated, the same way the server prepares Postgres.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "parts.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return db
}

func records(itemIDs ...string) []PartRecord {
	recs := make([]PartRecord, 0, len(itemIDs))
	for _, id := range itemIDs {
		recs = append(recs, PartRecord{
			ItemID:      id,
			Name:        missingValue,
			Description: missingValue,
			Condition:   missingValue,
		})
	}
	return recs
}
