package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Elmoustafi-22/HOMEstate/internal/models"
	"github.com/Elmoustafi-22/HOMEstate/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserService определяет интерфейс для операций с профилем пользователя.
// Все мутации доступны только самому пользователю (callerID == targetID).
type UserService interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
	UpdateUser(ctx context.Context, callerID, targetID int64, update *models.UserUpdate) (*models.User, error)
	DeleteUser(ctx context.Context, callerID, targetID int64) error
	GetUserListings(ctx context.Context, callerID, targetID int64) ([]models.Listing, error)
}

// Убедимся, что userService удовлетворяет интерфейсу UserService.
var _ UserService = (*userService)(nil)

type userService struct {
	userRepo    repository.UserRepository
	listingRepo repository.ListingRepository
}

// NewUserService создает новый экземпляр сервиса пользователей.
func NewUserService(userRepo repository.UserRepository, listingRepo repository.ListingRepository) UserService {
	return &userService{userRepo: userRepo, listingRepo: listingRepo}
}

// GetUser возвращает пользователя по ID.
func (s *userService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		log.Printf("[UserService] Ошибка репозитория при поиске пользователя ID %d: %v", id, err)
		return nil, errors.New("внутренняя ошибка сервера при поиске пользователя")
	}
	return user, nil
}

// UpdateUser обновляет профиль пользователя. Изменяемые поля ограничены
// явным списком: username, email, password (с перехешированием), avatar.
// Пустые поля не меняются.
func (s *userService) UpdateUser(
	ctx context.Context,
	callerID, targetID int64,
	update *models.UserUpdate,
) (*models.User, error) {
	if err := authorize(callerID, targetID); err != nil {
		log.Printf("[UserService] Пользователь %d пытался обновить чужой профиль %d", callerID, targetID)
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		log.Printf("[UserService] Ошибка репозитория при поиске пользователя ID %d: %v", targetID, err)
		return nil, errors.New("внутренняя ошибка сервера при поиске пользователя")
	}

	if update.Username != "" {
		user.Username = update.Username
	}
	if update.Email != "" {
		user.Email = update.Email
	}
	if update.Avatar != "" {
		user.Avatar = update.Avatar
	}
	if update.Password != "" {
		// Новый пароль перехешируется перед сохранением
		hashedPassword, hashErr := bcrypt.GenerateFromPassword([]byte(update.Password), bcrypt.DefaultCost)
		if hashErr != nil {
			log.Printf("[UserService] Ошибка хеширования пароля для ID %d: %v", targetID, hashErr)
			return nil, errors.New("внутренняя ошибка сервера при хешировании пароля")
		}
		user.PasswordHash = string(hashedPassword)
	}

	updated, err := s.userRepo.UpdateUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, repository.ErrUsernameTaken):
			return nil, ErrUsernameTaken
		case errors.Is(err, repository.ErrEmailTaken):
			return nil, ErrEmailTaken
		}
		log.Printf("[UserService] Ошибка репозитория при обновлении пользователя ID %d: %v", targetID, err)
		return nil, errors.New("внутренняя ошибка сервера при обновлении пользователя")
	}

	log.Printf("[UserService] Профиль пользователя ID %d обновлён", targetID)
	return updated, nil
}

// DeleteUser удаляет учётную запись пользователя.
// Объявления пользователя намеренно не удаляются.
func (s *userService) DeleteUser(ctx context.Context, callerID, targetID int64) error {
	if err := authorize(callerID, targetID); err != nil {
		log.Printf("[UserService] Пользователь %d пытался удалить чужую учётную запись %d", callerID, targetID)
		return err
	}

	if err := s.userRepo.DeleteUser(ctx, targetID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		log.Printf("[UserService] Ошибка репозитория при удалении пользователя ID %d: %v", targetID, err)
		return errors.New("внутренняя ошибка сервера при удалении пользователя")
	}

	log.Printf("[UserService] Учётная запись пользователя ID %d удалена", targetID)
	return nil
}

// GetUserListings возвращает объявления пользователя (только свои).
func (s *userService) GetUserListings(ctx context.Context, callerID, targetID int64) ([]models.Listing, error) {
	if err := authorize(callerID, targetID); err != nil {
		log.Printf("[UserService] Пользователь %d запросил чужие объявления пользователя %d", callerID, targetID)
		return nil, err
	}

	listings, err := s.listingRepo.GetListingsByUserRef(ctx, targetID)
	if err != nil {
		log.Printf("[UserService] Ошибка репозитория при получении объявлений пользователя ID %d: %v", targetID, err)
		return nil, fmt.Errorf("внутренняя ошибка сервера при получении объявлений: %w", err)
	}
	return listings, nil
}
