package purchase

import (
	"Go-Shopping-Inventory/domain"
	"Go-Shopping-Inventory/entities"
	"Go-Shopping-Inventory/internal/utils/storage"
	"context"
	"errors"
	"mime/multipart"
	"path"
	"strconv"

	"github.com/gofiber/fiber/v2/log"
)

type (
	// PurchaseService coordinates one purchase category. Every operation
	// reports success as a bool; validation and persistence failures are
	// logged and not told apart.
	PurchaseService interface {
		Category() string
		HasSupermarket() bool
		Add(ctx context.Context, req domain.PurchaseRequest) (domain.PurchaseResponse, bool)
		List(ctx context.Context) []domain.PurchaseResponse
		Get(ctx context.Context, id int) (domain.PurchaseResponse, bool)
		Update(ctx context.Context, id int, req domain.PurchaseRequest) (domain.PurchaseResponse, bool)
		SetCompleted(ctx context.Context, id int, completed bool) bool
		Remove(ctx context.Context, id int) bool
		AttachPhoto(ctx context.Context, id int, photo *multipart.FileHeader) (domain.UploadPhotoResponse, bool)
		Close()
	}

	purchaseService[T any, PT Item[T]] struct {
		category           Category[T, PT]
		purchaseRepository PurchaseRepository[T, PT]
		s3                 storage.AwsS3
	}
)

// NewPurchaseService wires a category to its gateway. s3 may be nil, in
// which case photo uploads fail and deletes leave storage untouched.
func NewPurchaseService[T any, PT Item[T]](category Category[T, PT], purchaseRepository PurchaseRepository[T, PT], s3 storage.AwsS3) PurchaseService {
	return &purchaseService[T, PT]{
		category:           category,
		purchaseRepository: purchaseRepository,
		s3:                 s3,
	}
}

func (s *purchaseService[T, PT]) Category() string {
	return s.category.Name
}

// HasSupermarket reports whether rows of the category record where to buy.
func (s *purchaseService[T, PT]) HasSupermarket() bool {
	_, ok := any(PT(new(T))).(entities.SupermarketHolder)
	return ok
}

func (s *purchaseService[T, PT]) Add(ctx context.Context, req domain.PurchaseRequest) (domain.PurchaseResponse, bool) {
	item, err := s.category.Build(req)
	if err != nil {
		log.Warnw("purchase rejected", "category", s.category.Name, "reason", err)
		return domain.PurchaseResponse{}, false
	}

	if req.HasPhoto {
		if req.PhotoNumber == nil {
			item.Base().MarkPhotoPending()
		} else if err := item.Base().SetPhoto(true, req.PhotoNumber); err != nil {
			log.Warnw("purchase rejected", "category", s.category.Name, "reason", err)
			return domain.PurchaseResponse{}, false
		}
	}

	if err := s.purchaseRepository.Create(ctx, item); err != nil {
		return domain.PurchaseResponse{}, false
	}

	log.Infof("added %s purchase %d: %s", s.category.Name, item.Base().ID, item.Base())
	return ToResponse(s.category.Name, item), true
}

func (s *purchaseService[T, PT]) List(ctx context.Context) []domain.PurchaseResponse {
	items, err := s.purchaseRepository.FetchAll(ctx)
	if err != nil {
		return nil
	}

	responses := make([]domain.PurchaseResponse, 0, len(items))
	for i := range items {
		responses = append(responses, ToResponse(s.category.Name, PT(&items[i])))
	}

	log.Infof("retrieved %d %s purchases", len(responses), s.category.Name)
	return responses
}

func (s *purchaseService[T, PT]) Get(ctx context.Context, id int) (domain.PurchaseResponse, bool) {
	item, err := s.purchaseRepository.FindByID(ctx, id)
	if err != nil {
		log.Warnw("purchase lookup failed", "category", s.category.Name, "id", id, "reason", err)
		return domain.PurchaseResponse{}, false
	}
	return ToResponse(s.category.Name, item), true
}

func (s *purchaseService[T, PT]) Update(ctx context.Context, id int, req domain.PurchaseRequest) (domain.PurchaseResponse, bool) {
	if id <= 0 {
		log.Warnw("purchase update rejected", "category", s.category.Name, "reason", domain.ErrInvalidPurchaseID)
		return domain.PurchaseResponse{}, false
	}

	item, err := s.purchaseRepository.FindByID(ctx, id)
	if err != nil {
		log.Warnw("purchase update failed", "category", s.category.Name, "id", id, "reason", err)
		return domain.PurchaseResponse{}, false
	}

	if err := s.apply(item, req); err != nil {
		log.Warnw("purchase update rejected", "category", s.category.Name, "id", id, "reason", err)
		return domain.PurchaseResponse{}, false
	}

	if err := s.purchaseRepository.Update(ctx, item); err != nil {
		return domain.PurchaseResponse{}, false
	}

	log.Infof("updated %s purchase %d: %s", s.category.Name, id, item.Base())
	return ToResponse(s.category.Name, item), true
}

// apply copies req onto item through the validating setters. A photo flag
// turned on without a number keeps the current number or waits for the next
// free one.
func (s *purchaseService[T, PT]) apply(item PT, req domain.PurchaseRequest) error {
	base := item.Base()
	if err := base.SetProductName(req.ProductName); err != nil {
		return err
	}
	if err := base.SetDescription(req.Description); err != nil {
		return err
	}
	if err := base.SetQuantity(req.Quantity); err != nil {
		return err
	}
	if holder, ok := any(item).(entities.SupermarketHolder); ok {
		if err := holder.SetSupermarket(req.Supermarket); err != nil {
			return err
		}
	}

	switch {
	case req.HasPhoto && req.PhotoNumber == nil && base.PhotoNumber == nil:
		base.MarkPhotoPending()
	case req.HasPhoto && req.PhotoNumber == nil:
		base.HasPhoto = true
	default:
		if err := base.SetPhoto(req.HasPhoto, req.PhotoNumber); err != nil {
			return err
		}
	}

	base.SetCompleted(req.Completed)
	return nil
}

func (s *purchaseService[T, PT]) SetCompleted(ctx context.Context, id int, completed bool) bool {
	item, err := s.purchaseRepository.FindByID(ctx, id)
	if err != nil {
		log.Warnw("purchase completion failed", "category", s.category.Name, "id", id, "reason", err)
		return false
	}

	item.Base().SetCompleted(completed)
	if err := s.purchaseRepository.Update(ctx, item); err != nil {
		return false
	}

	log.Infof("%s purchase %d completed=%t", s.category.Name, id, completed)
	return true
}

func (s *purchaseService[T, PT]) Remove(ctx context.Context, id int) bool {
	if id <= 0 {
		log.Warnw("purchase removal rejected", "category", s.category.Name, "reason", domain.ErrInvalidPurchaseID)
		return false
	}

	var (
		photoKey    string
		photoNumber int
	)
	if s.s3 != nil {
		if item, err := s.purchaseRepository.FindByID(ctx, id); err == nil && item.Base().PhotoNumber != nil {
			photoNumber = *item.Base().PhotoNumber
			photoKey = s.photoKey(photoNumber)
		}
	}

	if err := s.purchaseRepository.Delete(ctx, id); err != nil {
		return false
	}

	if photoKey != "" && !s.photoInUse(ctx, photoNumber) {
		if err := s.s3.DeleteFile(ctx, photoKey); err != nil {
			log.Warnw("failed to delete purchase photo", "category", s.category.Name, "key", photoKey, "error", err)
		}
	}

	log.Infof("removed %s purchase %d", s.category.Name, id)
	return true
}

func (s *purchaseService[T, PT]) AttachPhoto(ctx context.Context, id int, photo *multipart.FileHeader) (domain.UploadPhotoResponse, bool) {
	if s.s3 == nil {
		log.Warnw("photo upload rejected", "category", s.category.Name, "reason", domain.ErrPhotoStorageMissing)
		return domain.UploadPhotoResponse{}, false
	}

	item, err := s.purchaseRepository.FindByID(ctx, id)
	if err != nil {
		log.Warnw("photo upload failed", "category", s.category.Name, "id", id, "reason", err)
		return domain.UploadPhotoResponse{}, false
	}

	base := item.Base()
	if !base.HasPhoto || base.PhotoNumber == nil {
		log.Warnw("photo upload rejected", "category", s.category.Name, "id", id, "reason", domain.ErrPurchaseHasNoPhoto)
		return domain.UploadPhotoResponse{}, false
	}

	objectKey, err := s.s3.UploadFile(ctx, strconv.Itoa(*base.PhotoNumber), photo, s.photoFolder(), storage.AllowImage...)
	if err != nil {
		if errors.Is(err, storage.ErrFileTypeNotAllowed) {
			log.Warnw("photo upload rejected", "category", s.category.Name, "id", id, "reason", err)
		} else {
			log.Errorw("photo upload failed", "category", s.category.Name, "id", id, "error", err)
		}
		return domain.UploadPhotoResponse{}, false
	}

	log.Infow("photo uploaded", "category", s.category.Name, "id", id, "key", objectKey)
	return domain.UploadPhotoResponse{
		PhotoNumber: *base.PhotoNumber,
		PhotoURL:    s.s3.GetPublicLinkKey(objectKey),
	}, true
}

// photoInUse reports whether another row still points at the photo. A failed
// lookup counts as in use so the object is kept.
func (s *purchaseService[T, PT]) photoInUse(ctx context.Context, number int) bool {
	inUse, err := s.purchaseRepository.PhotoInUse(ctx, number)
	if err != nil {
		log.Errorw("failed to check photo references", "category", s.category.Name, "photo_number", number, "error", err)
		return true
	}
	if inUse {
		log.Warnw("photo still referenced, keeping it", "category", s.category.Name, "photo_number", number)
	}
	return inUse
}

func (s *purchaseService[T, PT]) photoFolder() string {
	return path.Join("photos", s.purchaseRepository.TableName())
}

func (s *purchaseService[T, PT]) photoKey(number int) string {
	return path.Join(s.photoFolder(), strconv.Itoa(number))
}

func (s *purchaseService[T, PT]) Close() {
	if err := s.purchaseRepository.Close(); err != nil {
		log.Errorw("failed to close purchase gateway", "category", s.category.Name, "error", err)
	}
}
