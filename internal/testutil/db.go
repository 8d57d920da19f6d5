// Package testutil opens throwaway databases for package tests.
package testutil

import (
	"Go-Shopping-Inventory/entities"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB returns an in-memory sqlite database private to t with the purchase
// and task tables migrated. Foreign keys are enforced and driver errors are
// translated, as they are for the served database.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared&_foreign_keys=1"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entities.FoodPurchase{},
		&entities.CleaningPurchase{},
		&entities.MiscPurchase{},
		&entities.Task{},
	))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func IntPtr(n int) *int {
	return &n
}
