package config_test

import (
	"Go-Shopping-Inventory/cmd/config"
	"Go-Shopping-Inventory/internal/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
)

func TestSqliteDialectorEnforcesForeignKeys(t *testing.T) {
	utils.ResetConfig()
	t.Cleanup(utils.ResetConfig)

	for path, want := range map[string]string{
		"inventory.db":                      "inventory.db?_foreign_keys=1",
		"file:inventory.db?cache=shared":    "file:inventory.db?cache=shared&_foreign_keys=1",
		"file:inventory.db?_foreign_keys=0": "file:inventory.db?_foreign_keys=0",
	} {
		utils.SetConfig("DB_PATH", path)
		dialector, err := config.Dialector("sqlite")
		require.NoError(t, err)
		assert.Equal(t, want, dialector.(*sqlite.Dialector).DSN)
	}

	_, err := config.Dialector("oracle")
	assert.Error(t, err)
}
