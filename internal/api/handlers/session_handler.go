package handlers

import (
	"Go-Shopping-Inventory/domain"
	"Go-Shopping-Inventory/internal/api/presenters"
	"Go-Shopping-Inventory/pkg/session"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SessionHandler interface {
		Login(c *fiber.Ctx) error
	}

	sessionHandler struct {
		sessionService session.SessionService
		validator      *validator.Validate
	}
)

func NewSessionHandler(sessionService session.SessionService, validator *validator.Validate) SessionHandler {
	return &sessionHandler{
		sessionService: sessionService,
		validator:      validator,
	}
}

func (h *sessionHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
	}

	res, err := h.sessionService.Login(c.UserContext(), *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAuthDisabled):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedLogin, err)
		case errors.Is(err, domain.ErrInvalidPassword):
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedLogin, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedLogin, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLogin)
}
