package domain

import "errors"

var (
	MessageSuccessCreateTask = "task created successfully"
	MessageSuccessGetTasks   = "tasks retrieved successfully"
	MessageSuccessDeleteTask = "task deleted successfully"

	MessageFailedCreateTask = "failed to create task"
	MessageFailedGetTasks   = "failed to retrieve tasks"
	MessageFailedDeleteTask = "failed to delete task"

	ErrTaskNotFound  = errors.New("task not found")
	ErrInvalidTaskID = errors.New("task id must be greater than zero")
)

type (
	// CreateTaskRequest links a task to any subset of the three purchase tables.
	CreateTaskRequest struct {
		FoodPurchaseID     *int `json:"food_purchase_id" validate:"omitempty,min=1"`
		CleaningPurchaseID *int `json:"cleaning_purchase_id" validate:"omitempty,min=1"`
		MiscPurchaseID     *int `json:"misc_purchase_id" validate:"omitempty,min=1"`
	}

	TaskResponse struct {
		ID                 int  `json:"id"`
		FoodPurchaseID     *int `json:"food_purchase_id"`
		CleaningPurchaseID *int `json:"cleaning_purchase_id"`
		MiscPurchaseID     *int `json:"misc_purchase_id"`
	}
)
