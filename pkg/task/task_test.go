package task_test

import (
	"Go-Shopping-Inventory/domain"
	"Go-Shopping-Inventory/entities"
	"Go-Shopping-Inventory/internal/testutil"
	"Go-Shopping-Inventory/pkg/purchase"
	"Go-Shopping-Inventory/pkg/task"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTaskService(t *testing.T) {
	ctx := context.Background()
	db := testutil.OpenDB(t)
	service := task.NewTaskService(task.NewTaskRepository(db))

	rice, err := entities.NewFoodPurchase("Rice", "5kg bag", false, nil, 3, false)
	require.NoError(t, err)
	require.NoError(t, db.Create(rice).Error)
	mop, err := entities.NewCleaningPurchase("Mop", "Blue", false, nil, 1, false, "MartX")
	require.NoError(t, err)
	require.NoError(t, db.Create(mop).Error)

	both, err := service.CreateTask(ctx, domain.CreateTaskRequest{
		FoodPurchaseID:     &rice.ID,
		CleaningPurchaseID: &mop.ID,
	})
	require.NoError(t, err)
	assert.Positive(t, both.ID)
	assert.Equal(t, rice.ID, *both.FoodPurchaseID)
	assert.Nil(t, both.MiscPurchaseID)

	empty, err := service.CreateTask(ctx, domain.CreateTaskRequest{})
	require.NoError(t, err, "references are optional")

	_, err = service.CreateTask(ctx, domain.CreateTaskRequest{MiscPurchaseID: testutil.IntPtr(99)})
	assert.ErrorIs(t, err, domain.ErrPurchaseNotFound)

	tasks, err := service.GetTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, both.ID, tasks[0].ID)
	assert.Equal(t, empty.ID, tasks[1].ID)

	require.NoError(t, service.DeleteTask(ctx, both.ID))
	assert.ErrorIs(t, service.DeleteTask(ctx, both.ID), domain.ErrTaskNotFound)
	assert.ErrorIs(t, service.DeleteTask(ctx, 0), domain.ErrInvalidTaskID)

	tasks, err = service.GetTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestDeletingPurchaseClearsTaskLink(t *testing.T) {
	ctx := context.Background()
	db := testutil.OpenDB(t)
	service := task.NewTaskService(task.NewTaskRepository(db))
	foods := purchase.NewPurchaseRepository[entities.FoodPurchase](db)

	rice, err := entities.NewFoodPurchase("Rice", "5kg bag", false, nil, 3, false)
	require.NoError(t, err)
	require.NoError(t, foods.Create(ctx, rice))
	tape, err := entities.NewMiscPurchase("Tape", "Duct", false, nil, 1, false, "Hardware")
	require.NoError(t, err)
	require.NoError(t, db.Create(tape).Error)

	linked, err := service.CreateTask(ctx, domain.CreateTaskRequest{FoodPurchaseID: &rice.ID, MiscPurchaseID: &tape.ID})
	require.NoError(t, err)

	require.NoError(t, foods.Delete(ctx, rice.ID))

	tasks, err := service.GetTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, linked.ID, tasks[0].ID, "the task outlives the purchase")
	assert.Nil(t, tasks[0].FoodPurchaseID)
	require.NotNil(t, tasks[0].MiscPurchaseID)
	assert.Equal(t, tape.ID, *tasks[0].MiscPurchaseID)

	err = db.Create(&entities.Task{CleaningPurchaseID: testutil.IntPtr(404)}).Error
	assert.ErrorIs(t, err, gorm.ErrForeignKeyViolated)
}
