package view_test

import (
	"Go-Shopping-Inventory/domain"
	"Go-Shopping-Inventory/internal/view"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubScreen struct {
	navigator *view.Navigator
	data      any
	err       error
}

func (s *stubScreen) SetNavigator(n *view.Navigator) {
	s.navigator = n
}

func (s *stubScreen) Load(c *fiber.Ctx) (any, error) {
	return s.data, s.err
}

func render(t *testing.T, navigator *view.Navigator, viewPath string, stylesheets ...string) (int, string, error) {
	t.Helper()

	var switchErr error
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		switchErr = navigator.Switch(c, viewPath, "Shopping list", stylesheets...)
		if switchErr != nil {
			return c.Status(fiber.StatusNotFound).SendString(switchErr.Error())
		}
		return nil
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body), switchErr
}

func TestRegisterInjectsNavigator(t *testing.T) {
	navigator := view.NewNavigator(view.Options{})
	screen := &stubScreen{}

	navigator.Register(view.MenuView, screen)
	assert.Same(t, navigator, screen.navigator)
	assert.True(t, navigator.Has(view.MenuView))
	assert.False(t, navigator.Has("food.html"))
}

func TestSwitchRendersLayout(t *testing.T) {
	navigator := view.NewNavigator(view.Options{Width: 640, Height: 480, Resizable: true})
	navigator.Register(view.MenuView, &stubScreen{data: view.MenuData{
		Tables:     []string{"CompraComida", "Tarea"},
		Status:     domain.MessageDatabaseReachable,
		Reachable:  true,
		Categories: []string{domain.CategoryFood},
	}})

	status, body, err := render(t, navigator, view.MenuView, "dark.css")
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "<title>Shopping list</title>")
	assert.Contains(t, body, `href="/static/styles.css"`)
	assert.Contains(t, body, `href="/static/dark.css"`)
	assert.Contains(t, body, `src="/static/logo.svg"`)
	assert.Contains(t, body, "width:640px;height:480px;resize:both")
	assert.Contains(t, body, `<option value="Tarea">Tarea</option>`)
	assert.Contains(t, body, `href="/views/food"`)
	assert.Contains(t, body, domain.MessageDatabaseReachable)
}

func TestSwitchCategoryView(t *testing.T) {
	navigator := view.NewNavigator(view.Options{})
	photo := 2
	navigator.Register(view.CategoryView(domain.CategoryCleaning), &stubScreen{data: view.PurchasesData{
		Category:       domain.CategoryCleaning,
		HasSupermarket: true,
		Items: []domain.PurchaseResponse{
			{ID: 1, ProductName: "Mop", Description: "Blue", Quantity: 1, Supermarket: "MartX", HasPhoto: true, PhotoNumber: &photo},
		},
	}})

	_, body, err := render(t, navigator, view.CategoryView(domain.CategoryCleaning))
	require.NoError(t, err)
	assert.Contains(t, body, "<td>MartX</td>")
	assert.Contains(t, body, "<td>2</td>")
	assert.Contains(t, body, "width:800px;height:600px;resize:none")
}

func TestSwitchMissingView(t *testing.T) {
	navigator := view.NewNavigator(view.Options{})

	status, _, err := render(t, navigator, "nowhere.html")
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, status)

	var navErr *view.NavigationError
	require.ErrorAs(t, err, &navErr)
	assert.Equal(t, "nowhere.html", navErr.View)

	_, _, err = render(t, navigator, "../navigator.go")
	assert.ErrorAs(t, err, &navErr)
}

func TestSwitchScreenFailure(t *testing.T) {
	navigator := view.NewNavigator(view.Options{})
	loadErr := errors.New("database gone")
	navigator.Register(view.MenuView, &stubScreen{err: loadErr})

	_, _, err := render(t, navigator, view.MenuView)
	var navErr *view.NavigationError
	require.ErrorAs(t, err, &navErr)
	assert.ErrorIs(t, err, loadErr)
}
