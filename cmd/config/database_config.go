package config

import (
	"Go-Shopping-Inventory/internal/utils"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Dialector(driver string) (gorm.Dialector, error) {
	switch strings.ToLower(driver) {
	case "", "mysql":
		dsn := fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			utils.GetConfig("DB_USER"),
			utils.GetConfig("DB_PASSWORD"),
			utils.GetConfig("DB_HOST"),
			utils.GetConfig("DB_PORT"),
			utils.GetConfig("DB_NAME"),
		)
		return mysql.Open(dsn), nil
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			utils.GetConfig("DB_HOST"),
			utils.GetConfig("DB_USER"),
			utils.GetConfig("DB_PASSWORD"),
			utils.GetConfig("DB_NAME"),
			utils.GetConfig("DB_PORT"),
		)
		return postgres.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(sqliteDSN(utils.GetConfig("DB_PATH"))), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// sqliteDSN turns on foreign key enforcement, which sqlite leaves off for
// every new connection.
func sqliteDSN(path string) string {
	if strings.Contains(path, "_foreign_keys=") || strings.Contains(path, "_fk=") {
		return path
	}
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=1"
	}
	return path + "?_foreign_keys=1"
}

func logLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// ConnectDB opens the shared database handle. The caller owns it and must
// release it with CloseDB.
func ConnectDB() (*gorm.DB, error) {
	dialector, err := Dialector(utils.GetConfig("DB_DRIVER"))
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel(utils.GetConfig("DB_LOG_LEVEL"))),
		TranslateError: true,
	})
	if err != nil {
		log.Errorw("database connection failed", "driver", dialector.Name(), "error", err)
		return nil, err
	}

	log.Infow("database connected", "driver", dialector.Name())
	return db, nil
}

func CloseDB(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// TableSchema is the schema searched by table discovery. Postgres keeps its
// tables in public unless DB_SCHEMA says otherwise.
func TableSchema() string {
	if schema := utils.GetConfig("DB_SCHEMA"); schema != "" {
		return schema
	}
	switch strings.ToLower(utils.GetConfig("DB_DRIVER")) {
	case "", "mysql":
		return utils.GetConfig("DB_NAME")
	case "postgres":
		return "public"
	default:
		return ""
	}
}
