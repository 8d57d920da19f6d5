package config

import (
	"Go-Shopping-Inventory/internal/api/handlers"
	"Go-Shopping-Inventory/internal/api/routes"
	"Go-Shopping-Inventory/internal/middleware"
	"Go-Shopping-Inventory/internal/utils"
	"Go-Shopping-Inventory/internal/view"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// NewApp builds the HTTP application. The returned closer releases the
// access log file.
func NewApp(services *Services) (*fiber.App, io.Closer, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName:   "shopping-inventory",
		BodyLimit: 8 * 1024 * 1024,
	})
	middlewares := middleware.NewMiddleware(services.Session)
	validator := utils.Validate

	// setting up logging and limiter
	logFile := utils.GetConfig("LOG_FILE")
	if err := os.MkdirAll(filepath.Dir(logFile), os.ModePerm); err != nil {
		return nil, nil, fmt.Errorf("create logs directory: %w", err)
	}
	file, err := os.OpenFile(
		logFile,
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format:     "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        utils.GetConfigInt("RATE_LIMIT", 20),
		Expiration: 1 * time.Second,
	}))

	// Views
	navigator := view.NewNavigator(view.Options{
		Width:     utils.GetConfigInt("VIEW_WIDTH", 800),
		Height:    utils.GetConfigInt("VIEW_HEIGHT", 600),
		Resizable: utils.GetConfigBool("VIEW_RESIZABLE", false),
	})
	RegisterScreens(navigator, services)

	// Handler
	purchaseHandler := handlers.NewPurchaseHandler(services.Registry, validator)
	tableHandler := handlers.NewTableHandler(services.Tables, validator)
	taskHandler := handlers.NewTaskHandler(services.Tasks, validator)
	sessionHandler := handlers.NewSessionHandler(services.Session, validator)
	reportHandler := handlers.NewReportHandler(services.Report, validator)
	viewHandler := handlers.NewViewHandler(navigator)
	healthHandler := handlers.NewHealthHandler(services.Health)

	// routes
	routesConfig := routes.Config{
		App:             app,
		PurchaseHandler: purchaseHandler,
		TableHandler:    tableHandler,
		TaskHandler:     taskHandler,
		SessionHandler:  sessionHandler,
		ReportHandler:   reportHandler,
		ViewHandler:     viewHandler,
		HealthHandler:   healthHandler,
		Navigator:       navigator,
		Middleware:      middlewares,
		JWTService:      services.JWT,
	}
	routesConfig.Setup()
	return app, file, nil
}

// RegisterScreens binds the menu and one list screen per purchase category.
func RegisterScreens(navigator *view.Navigator, services *Services) {
	categories := services.Registry.Categories()
	navigator.Register(view.MenuView, view.NewMenuScreen(services.Tables, services.Health, categories))
	for _, category := range categories {
		service, err := services.Registry.Lookup(category)
		if err != nil {
			continue
		}
		navigator.Register(view.CategoryView(category), view.NewPurchasesScreen(service))
	}
}
