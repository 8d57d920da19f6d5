package purchase

import (
	"Go-Shopping-Inventory/domain"
	"context"
	"sort"
)

// Registry resolves a route category name to its service.
type Registry map[string]PurchaseService

func NewRegistry(services ...PurchaseService) Registry {
	r := make(Registry, len(services))
	for _, s := range services {
		r[s.Category()] = s
	}
	return r
}

func (r Registry) Lookup(category string) (PurchaseService, error) {
	s, ok := r[category]
	if !ok {
		return nil, domain.ErrUnknownCategory
	}
	return s, nil
}

func (r Registry) Categories() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Pending collects the not yet completed purchases of every category.
func (r Registry) Pending(ctx context.Context) []domain.PendingItem {
	var pending []domain.PendingItem
	for _, name := range r.Categories() {
		for _, p := range r[name].List(ctx) {
			if p.Completed {
				continue
			}
			pending = append(pending, domain.PendingItem{
				Category:    name,
				ProductName: p.ProductName,
				Description: p.Description,
				Quantity:    p.Quantity,
				Supermarket: p.Supermarket,
			})
		}
	}
	return pending
}

func (r Registry) Close() {
	for _, s := range r {
		s.Close()
	}
}
