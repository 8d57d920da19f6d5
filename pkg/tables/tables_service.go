package tables

import (
	"context"

	"github.com/gofiber/fiber/v2/log"
)

type (
	TablesService interface {
		ListTables(ctx context.Context) []string
		CreateListTable(ctx context.Context, name string) error
	}

	tablesService struct {
		tablesRepository TablesRepository
	}
)

func NewTablesService(tablesRepository TablesRepository) TablesService {
	return &tablesService{
		tablesRepository: tablesRepository,
	}
}

// ListTables never fails: a discovery error yields an empty list.
func (s *tablesService) ListTables(ctx context.Context) []string {
	names, err := s.tablesRepository.GetTables(ctx)
	if err != nil {
		log.Errorw("failed to discover tables", "error", err)
		return []string{}
	}
	if names == nil {
		return []string{}
	}
	return names
}

func (s *tablesService) CreateListTable(ctx context.Context, name string) error {
	return s.tablesRepository.CreateListTable(ctx, name)
}
