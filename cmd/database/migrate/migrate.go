package migration

import (
	"Go-Shopping-Inventory/entities"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.FoodPurchase{}); err != nil {
		log.Errorf("Error migrating food purchase table: %v", err)
		return fmt.Errorf("migrate %s: %w", entities.TableFoodPurchase, err)
	}
	if err := db.AutoMigrate(&entities.CleaningPurchase{}); err != nil {
		log.Errorf("Error migrating cleaning purchase table: %v", err)
		return fmt.Errorf("migrate %s: %w", entities.TableCleaningPurchase, err)
	}
	if err := db.AutoMigrate(&entities.MiscPurchase{}); err != nil {
		log.Errorf("Error migrating misc purchase table: %v", err)
		return fmt.Errorf("migrate %s: %w", entities.TableMiscPurchase, err)
	}
	if err := db.AutoMigrate(&entities.Task{}); err != nil {
		log.Errorf("Error migrating task table: %v", err)
		return fmt.Errorf("migrate %s: %w", entities.TableTask, err)
	}

	log.Info("Database migration complete")
	return nil
}
