package health

import (
	"Go-Shopping-Inventory/domain"
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

type Status int32

const (
	StatusUnchecked Status = iota
	StatusReachable
	StatusUnreachable
)

func (s Status) String() string {
	switch s {
	case StatusReachable:
		return domain.MessageDatabaseReachable
	case StatusUnreachable:
		return domain.MessageDatabaseUnreachable
	default:
		return domain.MessageDatabaseUnchecked
	}
}

const checkTimeout = 5 * time.Second

type (
	HealthService interface {
		Check(ctx context.Context) error
		CheckInBackground(ctx context.Context)
		Status() Status
	}

	healthService struct {
		db     *gorm.DB
		status atomic.Int32
	}
)

func NewHealthService(db *gorm.DB) HealthService {
	return &healthService{
		db: db,
	}
}

// Check pings the database once and records the outcome.
func (s *healthService) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	err := s.ping(ctx)
	if err != nil {
		s.status.Store(int32(StatusUnreachable))
		log.Errorw(domain.MessageDatabaseUnreachable, "error", err)
		return err
	}

	s.status.Store(int32(StatusReachable))
	log.Info(domain.MessageDatabaseReachable)
	return nil
}

func (s *healthService) ping(ctx context.Context) error {
	if s.db == nil {
		return fmt.Errorf("no database handle")
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

// CheckInBackground runs Check on its own goroutine and returns at once.
// The result is read through Status.
func (s *healthService) CheckInBackground(ctx context.Context) {
	go func() {
		_ = s.Check(ctx)
	}()
}

func (s *healthService) Status() Status {
	return Status(s.status.Load())
}
