package routes

import (
	"Go-Shopping-Inventory/internal/api/handlers"
	"Go-Shopping-Inventory/internal/middleware"
	"Go-Shopping-Inventory/internal/view"
	"Go-Shopping-Inventory/pkg/jwt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

type Config struct {
	App             *fiber.App
	PurchaseHandler handlers.PurchaseHandler
	TableHandler    handlers.TableHandler
	TaskHandler     handlers.TaskHandler
	SessionHandler  handlers.SessionHandler
	ReportHandler   handlers.ReportHandler
	ViewHandler     handlers.ViewHandler
	HealthHandler   handlers.HealthHandler
	Navigator       *view.Navigator
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Session()
	c.Tables()
	c.Purchases()
	c.Tasks()
	c.ShoppingList()
	c.Views()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", c.HealthHandler.Ping)
}

func (c *Config) Session() {
	c.App.Post("/api/v1/session", c.SessionHandler.Login)
}

func (c *Config) Tables() {
	tables := c.App.Group("/api/v1/tables")
	tables.Get("", c.TableHandler.GetTables)
	tables.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.TableHandler.CreateTable)
}

func (c *Config) Purchases() {
	purchases := c.App.Group("/api/v1/purchases/:category")
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	// Basic CRUD operations
	purchases.Get("", c.PurchaseHandler.GetPurchases)
	purchases.Get("/:id", c.PurchaseHandler.GetPurchase)
	purchases.Post("", auth, c.PurchaseHandler.AddPurchase)
	purchases.Put("/:id", auth, c.PurchaseHandler.UpdatePurchase)
	purchases.Delete("/:id", auth, c.PurchaseHandler.DeletePurchase)

	// Special operations
	purchases.Patch("/:id/completed", auth, c.PurchaseHandler.SetCompleted)
	purchases.Post("/:id/photo", auth, c.PurchaseHandler.UploadPhoto)
}

func (c *Config) Tasks() {
	tasks := c.App.Group("/api/v1/tasks")
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	tasks.Get("", c.TaskHandler.GetTasks)
	tasks.Post("", auth, c.TaskHandler.CreateTask)
	tasks.Delete("/:id", auth, c.TaskHandler.DeleteTask)
}

func (c *Config) ShoppingList() {
	c.App.Post("/api/v1/shopping-list/send", c.Middleware.AuthMiddleware(c.JWTService), c.ReportHandler.SendShoppingList)
}

func (c *Config) Views() {
	c.App.Use(view.StaticPrefix, filesystem.New(filesystem.Config{
		Root: http.FS(c.Navigator.Static()),
	}))
	c.App.Get("/", c.ViewHandler.Menu)
	c.App.Get("/views/:category", c.ViewHandler.Category)
}
