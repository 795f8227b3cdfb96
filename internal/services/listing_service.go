package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Elmoustafi-22/HOMEstate/internal/models"
	"github.com/Elmoustafi-22/HOMEstate/internal/repository"
)

// ListingService определяет интерфейс для операций с объявлениями.
// Мутации доступны только владельцу объявления (user_ref).
type ListingService interface {
	CreateListing(ctx context.Context, userID int64, fields *models.ListingUpdate) (*models.Listing, error)
	GetListing(ctx context.Context, id int64) (*models.Listing, error)
	UpdateListing(ctx context.Context, callerID, id int64, update *models.ListingUpdate) (*models.Listing, error)
	DeleteListing(ctx context.Context, callerID, id int64) error
	SearchListings(ctx context.Context, criteria models.SearchCriteria) ([]models.Listing, error)
}

// Убедимся, что listingService удовлетворяет интерфейсу ListingService.
var _ ListingService = (*listingService)(nil)

type listingService struct {
	listingRepo repository.ListingRepository
}

// NewListingService создает новый экземпляр сервиса объявлений.
func NewListingService(listingRepo repository.ListingRepository) ListingService {
	return &listingService{listingRepo: listingRepo}
}

// validateListingFields проверяет поля объявления перед записью.
func validateListingFields(fields *models.ListingUpdate) error {
	if fields.Name == "" {
		return fmt.Errorf("%w: название объявления обязательно", ErrValidation)
	}
	if fields.Type != models.ListingTypeSale && fields.Type != models.ListingTypeRent {
		return fmt.Errorf("%w: тип объявления должен быть 'sale' или 'rent'", ErrValidation)
	}
	if fields.Bedrooms < 1 || fields.Bathrooms < 1 {
		return fmt.Errorf("%w: количество спален и ванных не может быть меньше 1", ErrValidation)
	}
	if len(fields.ImageURLs) < models.MinImageURLs || len(fields.ImageURLs) > models.MaxImageURLs {
		return fmt.Errorf("%w: объявление должно содержать от %d до %d изображений",
			ErrValidation, models.MinImageURLs, models.MaxImageURLs)
	}
	if fields.Offer && fields.DiscountPrice > fields.RegularPrice {
		return fmt.Errorf("%w: цена со скидкой не может превышать обычную цену", ErrValidation)
	}
	return nil
}

// CreateListing создает объявление от имени пользователя.
// Владелец фиксируется при создании и далее не меняется.
func (s *listingService) CreateListing(
	ctx context.Context,
	userID int64,
	fields *models.ListingUpdate,
) (*models.Listing, error) {
	if err := validateListingFields(fields); err != nil {
		return nil, err
	}

	listing := &models.Listing{
		Name:          fields.Name,
		Description:   fields.Description,
		Address:       fields.Address,
		Type:          fields.Type,
		Bedrooms:      fields.Bedrooms,
		Bathrooms:     fields.Bathrooms,
		RegularPrice:  fields.RegularPrice,
		DiscountPrice: fields.DiscountPrice,
		Offer:         fields.Offer,
		Parking:       fields.Parking,
		Furnished:     fields.Furnished,
		ImageURLs:     fields.ImageURLs,
		UserRef:       userID,
	}

	created, err := s.listingRepo.CreateListing(ctx, listing)
	if err != nil {
		log.Printf("[ListingService] Ошибка репозитория при создании объявления пользователем %d: %v", userID, err)
		return nil, errors.New("внутренняя ошибка сервера при создании объявления")
	}

	log.Printf("[ListingService] Пользователь %d создал объявление ID %d", userID, created.ID)
	return created, nil
}

// GetListing возвращает объявление по ID (публичная операция).
func (s *listingService) GetListing(ctx context.Context, id int64) (*models.Listing, error) {
	listing, err := s.listingRepo.GetListingByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, ErrListingNotFound
		}
		log.Printf("[ListingService] Ошибка репозитория при поиске объявления ID %d: %v", id, err)
		return nil, errors.New("внутренняя ошибка сервера при поиске объявления")
	}
	return listing, nil
}

// UpdateListing обновляет объявление. Сначала проверяется существование
// (404), затем владение (только владелец), затем валидность полей.
func (s *listingService) UpdateListing(
	ctx context.Context,
	callerID, id int64,
	update *models.ListingUpdate,
) (*models.Listing, error) {
	listing, err := s.listingRepo.GetListingByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, ErrListingNotFound
		}
		log.Printf("[ListingService] Ошибка репозитория при поиске объявления ID %d: %v", id, err)
		return nil, errors.New("внутренняя ошибка сервера при поиске объявления")
	}

	if err = authorize(callerID, listing.UserRef); err != nil {
		log.Printf("[ListingService] Пользователь %d пытался обновить чужое объявление ID %d", callerID, id)
		return nil, err
	}

	if err = validateListingFields(update); err != nil {
		return nil, err
	}

	updated, err := s.listingRepo.UpdateListing(ctx, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, ErrListingNotFound
		}
		log.Printf("[ListingService] Ошибка репозитория при обновлении объявления ID %d: %v", id, err)
		return nil, errors.New("внутренняя ошибка сервера при обновлении объявления")
	}

	log.Printf("[ListingService] Пользователь %d обновил объявление ID %d", callerID, id)
	return updated, nil
}

// DeleteListing удаляет объявление. Доступно только владельцу.
func (s *listingService) DeleteListing(ctx context.Context, callerID, id int64) error {
	listing, err := s.listingRepo.GetListingByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return ErrListingNotFound
		}
		log.Printf("[ListingService] Ошибка репозитория при поиске объявления ID %d: %v", id, err)
		return errors.New("внутренняя ошибка сервера при поиске объявления")
	}

	if err = authorize(callerID, listing.UserRef); err != nil {
		log.Printf("[ListingService] Пользователь %d пытался удалить чужое объявление ID %d", callerID, id)
		return err
	}

	if err = s.listingRepo.DeleteListing(ctx, id); err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return ErrListingNotFound
		}
		log.Printf("[ListingService] Ошибка репозитория при удалении объявления ID %d: %v", id, err)
		return errors.New("внутренняя ошибка сервера при удалении объявления")
	}

	log.Printf("[ListingService] Пользователь %d удалил объявление ID %d", callerID, id)
	return nil
}

// SearchListings выполняет поиск объявлений по критериям.
// Критерии уже нормализованы при разборе query-параметров,
// поэтому операция не возвращает ошибок валидации.
func (s *listingService) SearchListings(
	ctx context.Context,
	criteria models.SearchCriteria,
) ([]models.Listing, error) {
	listings, err := s.listingRepo.SearchListings(ctx, criteria)
	if err != nil {
		log.Printf("[ListingService] Ошибка репозитория при поиске объявлений: %v", err)
		return nil, errors.New("внутренняя ошибка сервера при поиске объявлений")
	}
	return listings, nil
}
