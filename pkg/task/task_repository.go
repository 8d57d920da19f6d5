package task

import (
	"Go-Shopping-Inventory/domain"
	"Go-Shopping-Inventory/entities"
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	TaskRepository interface {
		CreateTask(ctx context.Context, task *entities.Task) error
		GetTasks(ctx context.Context) ([]entities.Task, error)
		DeleteTask(ctx context.Context, id int) error
	}

	taskRepository struct {
		db *gorm.DB
	}
)

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{
		db: db,
	}
}

// CreateTask checks every non-nil reference before inserting.
func (r *taskRepository) CreateTask(ctx context.Context, task *entities.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		refs := []struct {
			id    *int
			model entities.Record
		}{
			{task.FoodPurchaseID, &entities.FoodPurchase{}},
			{task.CleaningPurchaseID, &entities.CleaningPurchase{}},
			{task.MiscPurchaseID, &entities.MiscPurchase{}},
		}
		for _, ref := range refs {
			if ref.id == nil {
				continue
			}
			var count int64
			cond := clause.Eq{Column: clause.Column{Name: "IdUnico"}, Value: *ref.id}
			if err := tx.Model(ref.model).Where(cond).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return fmt.Errorf("%w: %s %d", domain.ErrPurchaseNotFound, ref.model.TableName(), *ref.id)
			}
		}
		return tx.Create(task).Error
	})
}

func (r *taskRepository) GetTasks(ctx context.Context) ([]entities.Task, error) {
	var tasks []entities.Task
	if err := r.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "Id"}}).
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) DeleteTask(ctx context.Context, id int) error {
	if id <= 0 {
		return domain.ErrInvalidTaskID
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var task entities.Task
		if err := tx.First(&task, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Warnw("task not found", "id", id)
				return domain.ErrTaskNotFound
			}
			return err
		}
		return tx.Delete(&task).Error
	})
}
