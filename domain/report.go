package domain

import "errors"

var (
	MessageSuccessSendShoppingList = "shopping list sent successfully"
	MessageFailedSendShoppingList  = "failed to send shopping list"

	ErrNothingPending = errors.New("no pending purchases to send")
)

type (
	SendShoppingListRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	// PendingItem is one line of the mailed shopping list.
	PendingItem struct {
		Category    string
		ProductName string
		Description string
		Quantity    int
		Supermarket string
	}
)
