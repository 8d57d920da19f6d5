package handlers

import (
	"Go-Shopping-Inventory/domain"
	"Go-Shopping-Inventory/internal/api/presenters"
	"Go-Shopping-Inventory/pkg/task"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	TaskHandler interface {
		CreateTask(c *fiber.Ctx) error
		GetTasks(c *fiber.Ctx) error
		DeleteTask(c *fiber.Ctx) error
	}

	taskHandler struct {
		taskService task.TaskService
		validator   *validator.Validate
	}
)

func NewTaskHandler(taskService task.TaskService, validator *validator.Validate) TaskHandler {
	return &taskHandler{
		taskService: taskService,
		validator:   validator,
	}
}

func (h *taskHandler) CreateTask(c *fiber.Ctx) error {
	req := new(domain.CreateTaskRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateTask, err)
	}

	res, err := h.taskService.CreateTask(c.UserContext(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrPurchaseNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedCreateTask, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateTask, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateTask)
}

func (h *taskHandler) GetTasks(c *fiber.Ctx) error {
	res, err := h.taskService.GetTasks(c.UserContext())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetTasks, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTasks)
}

func (h *taskHandler) DeleteTask(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteTask, domain.ErrInvalidTaskID)
	}

	if err := h.taskService.DeleteTask(c.UserContext(), id); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteTask, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteTask, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteTask)
}
