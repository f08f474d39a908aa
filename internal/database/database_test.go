package database_test

import (
	"context"
	"path/filepath"
	"testing"

	"inventory/internal/config"
	"inventory/internal/database"
	"inventory/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAndMigrate_SQLiteFile(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "inventory.db")
	cfg := &config.Config{DatabaseDriver: config.DriverSQLite, DatabaseDSN: dsn}

	db, err := database.Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, database.Migrate(db))
	assert.True(t, db.Migrator().HasTable(&models.Product{}))
	assert.True(t, db.Migrator().HasTable("products"))
	assert.NoError(t, database.Ping(context.Background(), db))

	// Running it again on an existing table is a no-op.
	assert.NoError(t, database.Migrate(db))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := database.Open(&config.Config{DatabaseDriver: config.DriverMemory})
	assert.Error(t, err)
}
