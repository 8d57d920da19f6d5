package view

import (
	"Go-Shopping-Inventory/domain"
	"Go-Shopping-Inventory/pkg/health"
	"Go-Shopping-Inventory/pkg/purchase"
	"Go-Shopping-Inventory/pkg/tables"

	"github.com/gofiber/fiber/v2"
)

const MenuView = "menu.html"

// CategoryView is the view path of a purchase category list.
func CategoryView(category string) string {
	return category + ".html"
}

type (
	MenuScreen struct {
		navigator     *Navigator
		tablesService tables.TablesService
		healthService health.HealthService
		categories    []string
	}

	MenuData struct {
		Tables     []string
		Status     string
		Reachable  bool
		Categories []string
	}

	PurchasesScreen struct {
		navigator       *Navigator
		purchaseService purchase.PurchaseService
	}

	PurchasesData struct {
		Category       string
		Items          []domain.PurchaseResponse
		HasSupermarket bool
		Failed         bool
	}
)

var (
	_ Screen = (*MenuScreen)(nil)
	_ Screen = (*PurchasesScreen)(nil)
)

func NewMenuScreen(tablesService tables.TablesService, healthService health.HealthService, categories []string) *MenuScreen {
	return &MenuScreen{
		tablesService: tablesService,
		healthService: healthService,
		categories:    categories,
	}
}

func (s *MenuScreen) SetNavigator(n *Navigator) {
	s.navigator = n
}

// Load fills the table dropdown and the connectivity banner. Only categories
// with a registered screen are linked.
func (s *MenuScreen) Load(c *fiber.Ctx) (any, error) {
	data := MenuData{
		Tables:     s.tablesService.ListTables(c.UserContext()),
		Categories: make([]string, 0, len(s.categories)),
	}
	if s.healthService != nil {
		status := s.healthService.Status()
		data.Status = status.String()
		data.Reachable = status != health.StatusUnreachable
	}
	for _, category := range s.categories {
		if s.navigator != nil && s.navigator.Has(CategoryView(category)) {
			data.Categories = append(data.Categories, category)
		}
	}
	return data, nil
}

func NewPurchasesScreen(purchaseService purchase.PurchaseService) *PurchasesScreen {
	return &PurchasesScreen{
		purchaseService: purchaseService,
	}
}

func (s *PurchasesScreen) SetNavigator(n *Navigator) {
	s.navigator = n
}

func (s *PurchasesScreen) Load(c *fiber.Ctx) (any, error) {
	category := s.purchaseService.Category()
	items := s.purchaseService.List(c.UserContext())
	return PurchasesData{
		Category:       category,
		Items:          items,
		HasSupermarket: s.purchaseService.HasSupermarket(),
		Failed:         items == nil,
	}, nil
}
