package tables

import (
	"Go-Shopping-Inventory/domain"
	"Go-Shopping-Inventory/entities"
	"context"
	"fmt"
	"regexp"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

type (
	TablesRepository interface {
		GetTables(ctx context.Context) ([]string, error)
		CreateListTable(ctx context.Context, name string) error
	}

	tablesRepository struct {
		db     *gorm.DB
		schema string
	}
)

// NewTablesRepository lists tables of schema when the dialect exposes
// information_schema. An empty schema falls back to the migrator listing.
func NewTablesRepository(db *gorm.DB, schema string) TablesRepository {
	return &tablesRepository{
		db:     db,
		schema: schema,
	}
}

func (r *tablesRepository) GetTables(ctx context.Context) ([]string, error) {
	var names []string

	switch r.db.Dialector.Name() {
	case "mysql", "postgres":
		if r.schema != "" {
			err := r.db.WithContext(ctx).
				Table("information_schema.tables").
				Where("table_schema = ?", r.schema).
				Order("table_name").
				Pluck("table_name", &names).Error
			if err != nil {
				return nil, fmt.Errorf("list tables of %s: %w", r.schema, err)
			}
			return names, nil
		}
	}

	names, err := r.db.WithContext(ctx).Migrator().GetTables()
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	return names, nil
}

// ValidTableName reports whether name is safe to use as a table identifier.
func ValidTableName(name string) bool {
	return tableNamePattern.MatchString(name)
}

// CreateListTable creates an extra list shaped like the food purchase table.
func (r *tablesRepository) CreateListTable(ctx context.Context, name string) error {
	if !ValidTableName(name) {
		return domain.ErrInvalidTableName
	}

	db := r.db.WithContext(ctx)
	if db.Migrator().HasTable(name) {
		return fmt.Errorf("%w: %s", domain.ErrTableExists, name)
	}

	if err := db.Table(name).Migrator().CreateTable(&entities.FoodPurchase{}); err != nil {
		log.Errorw("failed to create list table", "table", name, "error", err)
		return fmt.Errorf("create table %s: %w", name, err)
	}

	log.Infow("list table created", "table", name)
	return nil
}
