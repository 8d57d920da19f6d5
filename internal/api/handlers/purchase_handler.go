package handlers

import (
	"Go-Shopping-Inventory/domain"
	"Go-Shopping-Inventory/internal/api/presenters"
	"Go-Shopping-Inventory/pkg/purchase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PurchaseHandler interface {
		AddPurchase(c *fiber.Ctx) error
		GetPurchases(c *fiber.Ctx) error
		GetPurchase(c *fiber.Ctx) error
		UpdatePurchase(c *fiber.Ctx) error
		SetCompleted(c *fiber.Ctx) error
		DeletePurchase(c *fiber.Ctx) error
		UploadPhoto(c *fiber.Ctx) error
	}

	purchaseHandler struct {
		registry  purchase.Registry
		validator *validator.Validate
	}
)

func NewPurchaseHandler(registry purchase.Registry, validator *validator.Validate) PurchaseHandler {
	return &purchaseHandler{
		registry:  registry,
		validator: validator,
	}
}

func purchaseID(c *fiber.Ctx) (int, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *purchaseHandler) AddPurchase(c *fiber.Ctx) error {
	service, err := h.registry.Lookup(c.Params("category"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageUnknownCategory, err)
	}

	req := new(domain.PurchaseRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPurchase, err)
	}

	res, ok := service.Add(c.UserContext(), *req)
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPurchase, nil)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddPurchase)
}

func (h *purchaseHandler) GetPurchases(c *fiber.Ctx) error {
	service, err := h.registry.Lookup(c.Params("category"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageUnknownCategory, err)
	}

	items := service.List(c.UserContext())
	if items == nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetPurchases, nil)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetPurchases)
}

func (h *purchaseHandler) GetPurchase(c *fiber.Ctx) error {
	service, err := h.registry.Lookup(c.Params("category"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageUnknownCategory, err)
	}

	id, ok := purchaseID(c)
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPurchase, domain.ErrInvalidPurchaseID)
	}

	res, ok := service.Get(c.UserContext(), id)
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetPurchase, domain.ErrPurchaseNotFound)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPurchase)
}

func (h *purchaseHandler) UpdatePurchase(c *fiber.Ctx) error {
	service, err := h.registry.Lookup(c.Params("category"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageUnknownCategory, err)
	}

	id, ok := purchaseID(c)
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePurchase, domain.ErrInvalidPurchaseID)
	}

	req := new(domain.PurchaseRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePurchase, err)
	}

	res, ok := service.Update(c.UserContext(), id, *req)
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePurchase, nil)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdatePurchase)
}

func (h *purchaseHandler) SetCompleted(c *fiber.Ctx) error {
	service, err := h.registry.Lookup(c.Params("category"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageUnknownCategory, err)
	}

	id, ok := purchaseID(c)
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCompletePurchase, domain.ErrInvalidPurchaseID)
	}

	req := new(domain.SetCompletedRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if !service.SetCompleted(c.UserContext(), id, req.Completed) {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCompletePurchase, nil)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCompletePurchase)
}

func (h *purchaseHandler) DeletePurchase(c *fiber.Ctx) error {
	service, err := h.registry.Lookup(c.Params("category"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageUnknownCategory, err)
	}

	id, ok := purchaseID(c)
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeletePurchase, domain.ErrInvalidPurchaseID)
	}

	if !service.Remove(c.UserContext(), id) {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeletePurchase, nil)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeletePurchase)
}

func (h *purchaseHandler) UploadPhoto(c *fiber.Ctx) error {
	service, err := h.registry.Lookup(c.Params("category"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageUnknownCategory, err)
	}

	id, ok := purchaseID(c)
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadPhoto, domain.ErrInvalidPurchaseID)
	}

	req := new(domain.UploadPhotoRequest)
	req.Photo, _ = c.FormFile("photo")

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadPhoto, err)
	}

	res, ok := service.AttachPhoto(c.UserContext(), id, req.Photo)
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadPhoto, nil)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadPhoto)
}
