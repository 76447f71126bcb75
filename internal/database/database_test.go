package database

import (
	"path/filepath"
	"testing"

	"expense-bot/internal/config"
	"expense-bot/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialector(t *testing.T) {
	postgres, err := Dialector(&config.DatabaseConfig{Driver: config.DriverPostgres})
	require.NoError(t, err)
	assert.Equal(t, "postgres", postgres.Name())

	sqlite, err := Dialector(&config.DatabaseConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"})
	require.NoError(t, err)
	assert.Equal(t, "sqlite", sqlite.Name())

	_, err = Dialector(&config.DatabaseConfig{Driver: "oracle"})
	assert.ErrorIs(t, err, config.ErrUnsupportedDBDriver)
}

func TestInitialize_SQLite(t *testing.T) {
	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver:       config.DriverSQLite,
			SQLitePath:   filepath.Join(t.TempDir(), "bot.db"),
			MaxIdleConns: 2,
		},
	}

	db, err := Initialize(cfg)
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, db.HealthCheck())
	assert.True(t, db.Migrator().HasTable(&models.Expense{}))
	assert.True(t, db.Migrator().HasTable(&models.PendingAmount{}))
	assert.True(t, db.Migrator().HasIndex(&models.Expense{}, "idx_expenses_user_created"))
}

func TestSetupTestDB_Schema(t *testing.T) {
	db := SetupTestDB(t)

	expense := &models.Expense{UserID: 1, ChatID: 1, Amount: decimal.NewFromInt(10), CategoryID: "other"}
	require.NoError(t, db.Create(expense).Error)

	var count int64
	require.NoError(t, db.Model(&models.Expense{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
