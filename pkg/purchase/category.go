package purchase

import (
	"Go-Shopping-Inventory/domain"
	"Go-Shopping-Inventory/entities"
)

// Category describes one purchase table: its route name and how a request
// becomes a validated entity. The photo fields are applied by the service.
type Category[T any, PT Item[T]] struct {
	Name  string
	Build func(req domain.PurchaseRequest) (PT, error)
}

var (
	FoodCategory = Category[entities.FoodPurchase, *entities.FoodPurchase]{
		Name: domain.CategoryFood,
		Build: func(req domain.PurchaseRequest) (*entities.FoodPurchase, error) {
			return entities.NewFoodPurchase(req.ProductName, req.Description, false, nil, req.Quantity, req.Completed)
		},
	}

	CleaningCategory = Category[entities.CleaningPurchase, *entities.CleaningPurchase]{
		Name: domain.CategoryCleaning,
		Build: func(req domain.PurchaseRequest) (*entities.CleaningPurchase, error) {
			return entities.NewCleaningPurchase(req.ProductName, req.Description, false, nil, req.Quantity, req.Completed, req.Supermarket)
		},
	}

	MiscCategory = Category[entities.MiscPurchase, *entities.MiscPurchase]{
		Name: domain.CategoryMisc,
		Build: func(req domain.PurchaseRequest) (*entities.MiscPurchase, error) {
			return entities.NewMiscPurchase(req.ProductName, req.Description, false, nil, req.Quantity, req.Completed, req.Supermarket)
		},
	}
)

// ToResponse flattens any purchase entity into its API shape.
func ToResponse(category string, record entities.Record) domain.PurchaseResponse {
	base := record.Base()
	res := domain.PurchaseResponse{
		ID:          base.ID,
		Category:    category,
		ProductName: base.ProductName,
		Description: base.Description,
		HasPhoto:    base.HasPhoto,
		PhotoNumber: base.PhotoNumber,
		Quantity:    base.Quantity,
		Completed:   base.Completed,
	}
	if holder, ok := record.(entities.SupermarketHolder); ok {
		res.Supermarket = holder.GetSupermarket()
	}
	return res
}
