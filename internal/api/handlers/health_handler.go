package handlers

import (
	"Go-Shopping-Inventory/pkg/health"

	"github.com/gofiber/fiber/v2"
)

type (
	HealthHandler interface {
		Ping(c *fiber.Ctx) error
	}

	healthHandler struct {
		healthService health.HealthService
	}
)

func NewHealthHandler(healthService health.HealthService) HealthHandler {
	return &healthHandler{
		healthService: healthService,
	}
}

func (h *healthHandler) Ping(c *fiber.Ctx) error {
	status := h.healthService.Status()
	code := fiber.StatusOK
	if status == health.StatusUnreachable {
		code = fiber.StatusServiceUnavailable
	}
	return c.Status(code).JSON(fiber.Map{
		"message":  "pong",
		"database": status.String(),
	})
}
