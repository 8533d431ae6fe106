package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

func TestNewSQLiteConnection(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver: DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "nested", "ledger.db"),
	}

	database, err := NewConnection(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	assert.True(t, database.HealthCheck())
	require.NoError(t, database.AutoMigrate(model.All()...))

	for _, m := range model.All() {
		assert.True(t, database.DB().Migrator().HasTable(m), "missing table for %T", m)
	}

	var foreignKeys int
	require.NoError(t, database.DB().Raw("PRAGMA foreign_keys").Scan(&foreignKeys).Error)
	assert.Equal(t, 1, foreignKeys)
}

func TestNewConnectionUnknownDriver(t *testing.T) {
	_, err := NewConnection(&config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}
