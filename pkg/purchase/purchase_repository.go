package purchase

import (
	"Go-Shopping-Inventory/domain"
	"Go-Shopping-Inventory/entities"
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	columnID          = "IdUnico"
	columnPhotoNumber = "NumeroUnicoFoto"

	// photoNumberAttempts bounds the retries of a save whose automatically
	// assigned photo number lost a race against a concurrent save.
	photoNumberAttempts = 3
)

// Item ties a purchase entity type to its pointer, which carries the
// entities.Record methods.
type Item[T any] interface {
	*T
	entities.Record
}

type (
	PurchaseRepository[T any, PT Item[T]] interface {
		Create(ctx context.Context, item PT) error
		FetchAll(ctx context.Context) ([]T, error)
		FindByID(ctx context.Context, id int) (PT, error)
		Update(ctx context.Context, item PT) error
		Delete(ctx context.Context, id int) error
		LastPhotoNumber(ctx context.Context) int
		PhotoInUse(ctx context.Context, number int) (bool, error)
		TableName() string
		Close() error
	}

	purchaseRepository[T any, PT Item[T]] struct {
		db     *gorm.DB
		table  string
		closed atomic.Bool
	}
)

// NewPurchaseRepository returns the gateway for the table of T. The database
// handle is shared; closing the repository does not close it.
func NewPurchaseRepository[T any, PT Item[T]](db *gorm.DB) PurchaseRepository[T, PT] {
	return &purchaseRepository[T, PT]{
		db:    db,
		table: PT(new(T)).TableName(),
	}
}

func (r *purchaseRepository[T, PT]) TableName() string {
	return r.table
}

func (r *purchaseRepository[T, PT]) conn(ctx context.Context) (*gorm.DB, error) {
	if r.closed.Load() {
		return nil, domain.ErrGatewayClosed
	}
	return r.db.WithContext(ctx), nil
}

func (r *purchaseRepository[T, PT]) Create(ctx context.Context, item PT) error {
	if (*T)(item) == nil {
		return fmt.Errorf("create %s: nil purchase", r.table)
	}
	db, err := r.conn(ctx)
	if err != nil {
		return err
	}

	err = r.savePhoto(db, item.Base(), func(tx *gorm.DB) error {
		return tx.Create(item).Error
	})
	if err != nil {
		log.Errorw("failed to create purchase", "table", r.table, "error", err)
		return fmt.Errorf("create %s: %w", r.table, err)
	}

	log.Infow("purchase created", "table", r.table, "id", item.Base().ID)
	return nil
}

func (r *purchaseRepository[T, PT]) FetchAll(ctx context.Context) ([]T, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}

	var items []T
	if err := db.Order(clause.OrderByColumn{Column: clause.Column{Name: columnID}}).Find(&items).Error; err != nil {
		log.Errorw("failed to fetch purchases", "table", r.table, "error", err)
		return nil, fmt.Errorf("fetch %s: %w", r.table, err)
	}

	log.Debugw("purchases fetched", "table", r.table, "count", len(items))
	return items, nil
}

func (r *purchaseRepository[T, PT]) FindByID(ctx context.Context, id int) (PT, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidPurchaseID
	}
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}

	item := new(T)
	if err := db.First(item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPurchaseNotFound
		}
		return nil, fmt.Errorf("find %s %d: %w", r.table, id, err)
	}
	return PT(item), nil
}

func (r *purchaseRepository[T, PT]) Update(ctx context.Context, item PT) error {
	if (*T)(item) == nil || item.Base().ID <= 0 {
		return domain.ErrInvalidPurchaseID
	}
	db, err := r.conn(ctx)
	if err != nil {
		return err
	}

	id := item.Base().ID
	err = r.savePhoto(db, item.Base(), func(tx *gorm.DB) error {
		existing := new(T)
		if err := tx.First(existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrPurchaseNotFound
			}
			return err
		}
		return tx.Save(item).Error
	})
	if err != nil {
		log.Errorw("failed to update purchase", "table", r.table, "id", id, "error", err)
		return fmt.Errorf("update %s %d: %w", r.table, id, err)
	}

	log.Infow("purchase updated", "table", r.table, "id", id)
	return nil
}

func (r *purchaseRepository[T, PT]) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return domain.ErrInvalidPurchaseID
	}
	db, err := r.conn(ctx)
	if err != nil {
		return err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		existing := new(T)
		if err := tx.First(existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrPurchaseNotFound
			}
			return err
		}
		return tx.Delete(existing).Error
	})
	if err != nil {
		if errors.Is(err, domain.ErrPurchaseNotFound) {
			log.Warnw("purchase to delete not found", "table", r.table, "id", id)
		} else {
			log.Errorw("failed to delete purchase", "table", r.table, "id", id, "error", err)
		}
		return fmt.Errorf("delete %s %d: %w", r.table, id, err)
	}

	log.Infow("purchase deleted", "table", r.table, "id", id)
	return nil
}

// savePhoto runs save in a transaction after settling the photo number of
// base. A pending number is the highest in the table plus one; when a
// concurrent save takes it first the unique index rejects the row and the
// transaction is retried with a fresh number.
func (r *purchaseRepository[T, PT]) savePhoto(db *gorm.DB, base *entities.Purchase, save func(tx *gorm.DB) error) error {
	pending := base.PhotoPending()

	var err error
	for attempt := 1; attempt <= photoNumberAttempts; attempt++ {
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := r.reservePhoto(tx, base); err != nil {
				return err
			}
			return save(tx)
		})
		if !pending || !errors.Is(err, gorm.ErrDuplicatedKey) {
			break
		}
		log.Warnw("photo number taken concurrently", "table", r.table, "photo_number", *base.PhotoNumber, "attempt", attempt)
		base.MarkPhotoPending()
	}

	if base.HasPhoto && errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrPhotoNumberTaken
	}
	return err
}

func (r *purchaseRepository[T, PT]) reservePhoto(tx *gorm.DB, base *entities.Purchase) error {
	if !base.HasPhoto {
		return nil
	}

	if base.PhotoNumber == nil {
		last, err := r.lastPhotoNumber(tx)
		if err != nil {
			return err
		}
		next := last + 1
		base.PhotoNumber = &next
		log.Infow("assigned photo number", "table", r.table, "photo_number", next)
		return nil
	}

	var holders int64
	err := tx.Model(new(T)).
		Where(clause.Eq{Column: clause.Column{Name: columnPhotoNumber}, Value: *base.PhotoNumber}).
		Where(clause.Neq{Column: clause.Column{Name: columnID}, Value: base.ID}).
		Count(&holders).Error
	if err != nil {
		return err
	}
	if holders > 0 {
		return domain.ErrPhotoNumberTaken
	}
	return nil
}

// lastPhotoNumber is LastPhotoNumber on tx, with the error kept.
func (r *purchaseRepository[T, PT]) lastPhotoNumber(tx *gorm.DB) (int, error) {
	row := tx.Model(new(T)).Select("MAX(?)", clause.Column{Name: columnPhotoNumber}).Row()
	if row == nil {
		return 0, fmt.Errorf("last photo number of %s: no result row", r.table)
	}
	var last *int64
	if err := row.Scan(&last); err != nil {
		return 0, fmt.Errorf("last photo number of %s: %w", r.table, err)
	}
	if last == nil {
		return 0, nil
	}
	return int(*last), nil
}

// LastPhotoNumber returns the highest photo number in the table, or 0 when
// the table holds none or the query fails.
func (r *purchaseRepository[T, PT]) LastPhotoNumber(ctx context.Context) int {
	db, err := r.conn(ctx)
	if err != nil {
		log.Errorw("failed to read last photo number", "table", r.table, "error", err)
		return 0
	}

	last, err := r.lastPhotoNumber(db)
	if err != nil {
		log.Errorw("failed to read last photo number", "table", r.table, "error", err)
		return 0
	}
	return last
}

// PhotoInUse reports whether any row still holds the photo number.
func (r *purchaseRepository[T, PT]) PhotoInUse(ctx context.Context, number int) (bool, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return false, err
	}

	var holders int64
	err = db.Model(new(T)).
		Where(clause.Eq{Column: clause.Column{Name: columnPhotoNumber}, Value: number}).
		Count(&holders).Error
	if err != nil {
		return false, fmt.Errorf("photo number %d of %s: %w", number, r.table, err)
	}
	return holders > 0, nil
}

func (r *purchaseRepository[T, PT]) Close() error {
	if !r.closed.CompareAndSwap(false, true) {
		return nil
	}
	log.Infow("purchase gateway closed", "table", r.table)
	return nil
}
