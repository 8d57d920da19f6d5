package handlers

import (
	"Go-Shopping-Inventory/domain"
	"Go-Shopping-Inventory/internal/api/presenters"
	"Go-Shopping-Inventory/pkg/report"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReportHandler interface {
		SendShoppingList(c *fiber.Ctx) error
	}

	reportHandler struct {
		reportService report.ReportService
		validator     *validator.Validate
	}
)

func NewReportHandler(reportService report.ReportService, validator *validator.Validate) ReportHandler {
	return &reportHandler{
		reportService: reportService,
		validator:     validator,
	}
}

func (h *reportHandler) SendShoppingList(c *fiber.Ctx) error {
	req := new(domain.SendShoppingListRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendShoppingList, err)
	}

	sent, err := h.reportService.SendShoppingList(c.UserContext(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrNothingPending) {
			return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedSendShoppingList, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedSendShoppingList, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"items": sent}, fiber.StatusOK, domain.MessageSuccessSendShoppingList)
}
