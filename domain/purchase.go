package domain

import (
	"errors"
	"mime/multipart"
)

const (
	CategoryFood     = "food"
	CategoryCleaning = "cleaning"
	CategoryMisc     = "misc"
)

var (
	MessageSuccessAddPurchase      = "purchase added successfully"
	MessageSuccessUpdatePurchase   = "purchase updated successfully"
	MessageSuccessDeletePurchase   = "purchase deleted successfully"
	MessageSuccessGetPurchases     = "purchases retrieved successfully"
	MessageSuccessGetPurchase      = "purchase retrieved successfully"
	MessageSuccessCompletePurchase = "purchase completion updated"
	MessageSuccessUploadPhoto      = "photo uploaded successfully"

	MessageFailedAddPurchase      = "failed to add purchase"
	MessageFailedUpdatePurchase   = "failed to update purchase"
	MessageFailedDeletePurchase   = "failed to delete purchase"
	MessageFailedGetPurchases     = "failed to retrieve purchases"
	MessageFailedGetPurchase      = "failed to retrieve purchase"
	MessageFailedCompletePurchase = "failed to update purchase completion"
	MessageFailedUploadPhoto      = "failed to upload photo"
	MessageUnknownCategory        = "unknown purchase category"

	ErrPurchaseNotFound    = errors.New("purchase not found")
	ErrInvalidPurchaseID   = errors.New("purchase id must be greater than zero")
	ErrBlankProductName    = errors.New("product name must not be blank")
	ErrBlankDescription    = errors.New("description must not be blank")
	ErrBlankSupermarket    = errors.New("supermarket must not be blank")
	ErrInvalidQuantity     = errors.New("quantity must be positive")
	ErrInvalidPhotoNumber  = errors.New("photo number must be positive when a photo is attached")
	ErrPurchaseHasNoPhoto  = errors.New("purchase is not flagged as having a photo")
	ErrGatewayClosed       = errors.New("purchase gateway is closed")
	ErrUnknownCategory     = errors.New("unknown purchase category")
	ErrPhotoStorageMissing = errors.New("photo storage is not configured")
	ErrPhotoNumberTaken    = errors.New("photo number is already used by another purchase")
)

type (
	// PurchaseRequest carries the editable fields of every purchase category.
	// Supermarket is ignored by categories that do not store one.
	PurchaseRequest struct {
		ProductName string `json:"product_name" form:"product_name" validate:"required,max=255"`
		Description string `json:"description" form:"description" validate:"required,max=455"`
		HasPhoto    bool   `json:"has_photo" form:"has_photo"`
		PhotoNumber *int   `json:"photo_number,omitempty" form:"photo_number" validate:"omitempty,min=1"`
		Quantity    int    `json:"quantity" form:"quantity" validate:"required,min=1"`
		Completed   bool   `json:"completed" form:"completed"`
		Supermarket string `json:"supermarket,omitempty" form:"supermarket" validate:"max=255"`
	}

	SetCompletedRequest struct {
		Completed bool `json:"completed"`
	}

	UploadPhotoRequest struct {
		Photo *multipart.FileHeader `json:"photo" form:"photo" validate:"required"`
	}

	UploadPhotoResponse struct {
		PhotoNumber int    `json:"photo_number"`
		PhotoURL    string `json:"photo_url"`
	}

	PurchaseResponse struct {
		ID          int    `json:"id"`
		Category    string `json:"category"`
		ProductName string `json:"product_name"`
		Description string `json:"description"`
		HasPhoto    bool   `json:"has_photo"`
		PhotoNumber *int   `json:"photo_number"`
		Quantity    int    `json:"quantity"`
		Completed   bool   `json:"completed"`
		Supermarket string `json:"supermarket,omitempty"`
	}
)
