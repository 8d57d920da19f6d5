package handlers

import (
	"Go-Shopping-Inventory/domain"
	"Go-Shopping-Inventory/internal/api/presenters"
	"Go-Shopping-Inventory/internal/view"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type (
	ViewHandler interface {
		Menu(c *fiber.Ctx) error
		Category(c *fiber.Ctx) error
	}

	viewHandler struct {
		navigator *view.Navigator
	}
)

var categoryTitles = map[string]string{
	domain.CategoryFood:     "Food purchases",
	domain.CategoryCleaning: "Cleaning purchases",
	domain.CategoryMisc:     "Other purchases",
}

func NewViewHandler(navigator *view.Navigator) ViewHandler {
	return &viewHandler{
		navigator: navigator,
	}
}

func (h *viewHandler) Menu(c *fiber.Ctx) error {
	return h.switchTo(c, view.MenuView, "Shopping list", c.Query("stylesheet"))
}

func (h *viewHandler) Category(c *fiber.Ctx) error {
	category := c.Params("category")
	title, ok := categoryTitles[category]
	if !ok {
		title = strings.ToUpper(category[:1]) + category[1:]
	}
	return h.switchTo(c, view.CategoryView(category), title, c.Query("stylesheet"))
}

// switchTo surfaces a failed transition to the user instead of a blank page.
func (h *viewHandler) switchTo(c *fiber.Ctx, viewPath, title, stylesheet string) error {
	err := h.navigator.Switch(c, viewPath, title, stylesheet)
	if err == nil {
		return nil
	}

	var navErr *view.NavigationError
	if errors.As(err, &navErr) {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedRenderView, navErr)
	}
	return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedRenderView, err)
}
