package handlers

import (
	"Go-Shopping-Inventory/domain"
	"Go-Shopping-Inventory/internal/api/presenters"
	"Go-Shopping-Inventory/pkg/tables"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	TableHandler interface {
		GetTables(c *fiber.Ctx) error
		CreateTable(c *fiber.Ctx) error
	}

	tableHandler struct {
		tablesService tables.TablesService
		validator     *validator.Validate
	}
)

func NewTableHandler(tablesService tables.TablesService, validator *validator.Validate) TableHandler {
	return &tableHandler{
		tablesService: tablesService,
		validator:     validator,
	}
}

func (h *tableHandler) GetTables(c *fiber.Ctx) error {
	names := h.tablesService.ListTables(c.UserContext())
	return presenters.SuccessResponse(c, domain.TablesResponse{Tables: names}, fiber.StatusOK, domain.MessageSuccessGetTables)
}

func (h *tableHandler) CreateTable(c *fiber.Ctx) error {
	req := new(domain.CreateTableRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateTable, err)
	}

	if err := h.tablesService.CreateListTable(c.UserContext(), req.Name); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidTableName):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateTable, err)
		case errors.Is(err, domain.ErrTableExists):
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedCreateTable, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateTable, err)
		}
	}

	return presenters.SuccessResponse(c, fiber.Map{"name": req.Name}, fiber.StatusCreated, domain.MessageSuccessCreateTable)
}
