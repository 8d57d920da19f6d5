package task

import (
	"Go-Shopping-Inventory/domain"
	"Go-Shopping-Inventory/entities"
	"context"

	"github.com/gofiber/fiber/v2/log"
)

type (
	TaskService interface {
		CreateTask(ctx context.Context, req domain.CreateTaskRequest) (domain.TaskResponse, error)
		GetTasks(ctx context.Context) ([]domain.TaskResponse, error)
		DeleteTask(ctx context.Context, id int) error
	}

	taskService struct {
		taskRepository TaskRepository
	}
)

func NewTaskService(taskRepository TaskRepository) TaskService {
	return &taskService{
		taskRepository: taskRepository,
	}
}

func (s *taskService) CreateTask(ctx context.Context, req domain.CreateTaskRequest) (domain.TaskResponse, error) {
	task := entities.Task{
		FoodPurchaseID:     req.FoodPurchaseID,
		CleaningPurchaseID: req.CleaningPurchaseID,
		MiscPurchaseID:     req.MiscPurchaseID,
	}

	if err := s.taskRepository.CreateTask(ctx, &task); err != nil {
		log.Warnw("failed to create task", "error", err)
		return domain.TaskResponse{}, err
	}

	log.Infow("task created", "id", task.ID)
	return toTaskResponse(task), nil
}

func (s *taskService) GetTasks(ctx context.Context) ([]domain.TaskResponse, error) {
	tasks, err := s.taskRepository.GetTasks(ctx)
	if err != nil {
		log.Errorw("failed to list tasks", "error", err)
		return nil, err
	}

	responses := make([]domain.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, toTaskResponse(task))
	}
	return responses, nil
}

func (s *taskService) DeleteTask(ctx context.Context, id int) error {
	if err := s.taskRepository.DeleteTask(ctx, id); err != nil {
		log.Warnw("failed to delete task", "id", id, "error", err)
		return err
	}
	return nil
}

func toTaskResponse(task entities.Task) domain.TaskResponse {
	return domain.TaskResponse{
		ID:                 task.ID,
		FoodPurchaseID:     task.FoodPurchaseID,
		CleaningPurchaseID: task.CleaningPurchaseID,
		MiscPurchaseID:     task.MiscPurchaseID,
	}
}
