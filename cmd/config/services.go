package config

import (
	"Go-Shopping-Inventory/domain"
	"Go-Shopping-Inventory/entities"
	"Go-Shopping-Inventory/internal/utils"
	"Go-Shopping-Inventory/internal/utils/mailing"
	"Go-Shopping-Inventory/internal/utils/storage"
	"Go-Shopping-Inventory/pkg/health"
	"Go-Shopping-Inventory/pkg/jwt"
	"Go-Shopping-Inventory/pkg/purchase"
	"Go-Shopping-Inventory/pkg/report"
	"Go-Shopping-Inventory/pkg/session"
	"Go-Shopping-Inventory/pkg/tables"
	"Go-Shopping-Inventory/pkg/task"
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

// Services holds everything built on top of the shared database handle.
type Services struct {
	Registry purchase.Registry
	Tables   tables.TablesService
	Tasks    task.TaskService
	Health   health.HealthService
	Session  session.SessionService
	Report   report.ReportService
	JWT      jwt.JWTService
}

// NewServices refuses password login without a token secret.
func NewServices(ctx context.Context, db *gorm.DB) (*Services, error) {
	passwordHash := utils.GetConfig("APP_PASSWORD_HASH")
	if passwordHash != "" && utils.GetConfig("JWT_SECRET") == "" {
		log.Errorw("password login needs JWT_SECRET", "error", domain.ErrTokenSecretMissing)
		return nil, fmt.Errorf("password login: %w", domain.ErrTokenSecretMissing)
	}

	// utils
	s3, err := storage.NewAwsS3(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrStorageNotConfigured) {
			log.Warnw("photo storage disabled", "error", err)
		}
		s3 = nil
	}
	mailer := mailing.NewMailer(mailing.LoadMailConfig())

	// Repository
	foodRepository := purchase.NewPurchaseRepository[entities.FoodPurchase](db)
	cleaningRepository := purchase.NewPurchaseRepository[entities.CleaningPurchase](db)
	miscRepository := purchase.NewPurchaseRepository[entities.MiscPurchase](db)
	tablesRepository := tables.NewTablesRepository(db, TableSchema())
	taskRepository := task.NewTaskRepository(db)

	// Service
	registry := purchase.NewRegistry(
		purchase.NewPurchaseService(purchase.FoodCategory, foodRepository, s3),
		purchase.NewPurchaseService(purchase.CleaningCategory, cleaningRepository, s3),
		purchase.NewPurchaseService(purchase.MiscCategory, miscRepository, s3),
	)
	jwtService := jwt.NewJWTService()

	return &Services{
		Registry: registry,
		Tables:   tables.NewTablesService(tablesRepository),
		Tasks:    task.NewTaskService(taskRepository),
		Health:   health.NewHealthService(db),
		Session:  session.NewSessionService(passwordHash, jwtService),
		Report:   report.NewReportService(registry, mailer),
		JWT:      jwtService,
	}, nil
}

// Close shuts every purchase gateway. The database handle stays open.
func (s *Services) Close() {
	s.Registry.Close()
}
