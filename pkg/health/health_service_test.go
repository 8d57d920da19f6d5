package health_test

import (
	"Go-Shopping-Inventory/domain"
	"Go-Shopping-Inventory/internal/testutil"
	"Go-Shopping-Inventory/pkg/health"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckReachable(t *testing.T) {
	service := health.NewHealthService(testutil.OpenDB(t))
	assert.Equal(t, health.StatusUnchecked, service.Status())
	assert.Equal(t, domain.MessageDatabaseUnchecked, service.Status().String())

	require.NoError(t, service.Check(context.Background()))
	assert.Equal(t, health.StatusReachable, service.Status())
}

func TestCheckUnreachable(t *testing.T) {
	db := testutil.OpenDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	service := health.NewHealthService(db)
	assert.Error(t, service.Check(context.Background()))
	assert.Equal(t, health.StatusUnreachable, service.Status())
	assert.Equal(t, domain.MessageDatabaseUnreachable, service.Status().String())
}

func TestCheckInBackground(t *testing.T) {
	service := health.NewHealthService(testutil.OpenDB(t))
	service.CheckInBackground(context.Background())

	assert.Eventually(t, func() bool {
		return service.Status() == health.StatusReachable
	}, 2*time.Second, 10*time.Millisecond)
}

func TestCheckWithoutDatabase(t *testing.T) {
	service := health.NewHealthService(nil)
	assert.Error(t, service.Check(context.Background()))
	assert.Equal(t, health.StatusUnreachable, service.Status())
}
