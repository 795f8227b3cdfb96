package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"strings"

	"github.com/Elmoustafi-22/HOMEstate/internal/auth"
	"github.com/Elmoustafi-22/HOMEstate/internal/models"
	"github.com/Elmoustafi-22/HOMEstate/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// Длины генерируемых значений при федеративном входе.
const (
	generatedPasswordLength = 16
	usernameSuffixLength    = 4
)

// AuthService определяет интерфейс для сервиса аутентификации.
type AuthService interface {
	SignUp(ctx context.Context, username, email, password string) error
	SignIn(ctx context.Context, email, password string) (*models.User, string, error)
	// GoogleAuth находит пользователя по email или создает нового
	// со сгенерированным паролем. Возвращает пользователя и токен.
	GoogleAuth(ctx context.Context, name, email, photo string) (*models.User, string, error)
}

// Убедимся, что authService удовлетворяет интерфейсу AuthService.
var _ AuthService = (*authService)(nil)

type authService struct {
	userRepo  repository.UserRepository // Зависимость от репозитория пользователей
	jwtSecret []byte                    // Секрет для подписи токенов, задаётся при старте
}

// NewAuthService создает новый экземпляр сервиса аутентификации.
func NewAuthService(userRepo repository.UserRepository, jwtSecret []byte) AuthService {
	return &authService{userRepo: userRepo, jwtSecret: jwtSecret}
}

// SignUp регистрирует нового пользователя.
func (s *authService) SignUp(ctx context.Context, username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return fmt.Errorf("%w: имя пользователя, email и пароль обязательны", ErrValidation)
	}

	// Хешируем пароль
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[AuthService] Ошибка хеширования пароля для '%s': %v", username, err)
		return errors.New("внутренняя ошибка сервера при хешировании пароля")
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	// Создаем пользователя через репозиторий
	_, err = s.userRepo.CreateUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUsernameTaken):
			log.Printf("[AuthService] Попытка регистрации с занятым именем: %s", username)
			return ErrUsernameTaken
		case errors.Is(err, repository.ErrEmailTaken):
			log.Printf("[AuthService] Попытка регистрации с занятым email: %s", email)
			return ErrEmailTaken
		}
		log.Printf("[AuthService] Непредвиденная ошибка репозитория при регистрации '%s': %v", username, err)
		return errors.New("внутренняя ошибка сервера при создании пользователя")
	}

	log.Printf("[AuthService] Пользователь '%s' успешно зарегистрирован", username)
	return nil
}

// SignIn аутентифицирует пользователя и возвращает его вместе с JWT токеном.
// Порядок проверок важен: сначала существование email, потом пароль.
func (s *authService) SignIn(ctx context.Context, email, password string) (*models.User, string, error) {
	// Получаем пользователя по email
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			log.Printf("[AuthService] Попытка входа с неизвестным email: %s", email)
			return nil, "", ErrUserNotFound
		}
		log.Printf("[AuthService] Ошибка репозитория при поиске '%s': %v", email, err)
		return nil, "", errors.New("внутренняя ошибка сервера при поиске пользователя")
	}

	// Сравниваем предоставленный пароль с хешем из базы данных
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		log.Printf("[AuthService] Неверный пароль для пользователя: %s", email)
		return nil, "", ErrWrongPassword
	}

	// Генерируем JWT токен
	token, err := auth.IssueToken(user.ID, s.jwtSecret)
	if err != nil {
		log.Printf("[AuthService] Ошибка генерации JWT для '%s': %v", email, err)
		return nil, "", errors.New("внутренняя ошибка сервера при генерации токена")
	}

	log.Printf("[AuthService] Пользователь '%s' успешно аутентифицирован", email)
	return user, token, nil
}

// GoogleAuth выполняет федеративный вход: идентичность подтверждена
// внешним провайдером, локальная проверка пароля не выполняется.
func (s *authService) GoogleAuth(ctx context.Context, name, email, photo string) (*models.User, string, error) {
	if email == "" {
		return nil, "", fmt.Errorf("%w: email обязателен", ErrValidation)
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		// Пользователь уже существует, просто выдаём токен
	case errors.Is(err, repository.ErrUserNotFound):
		user, err = s.createFederatedUser(ctx, name, email, photo)
		if err != nil {
			return nil, "", err
		}
	default:
		log.Printf("[AuthService] Ошибка репозитория при федеративном входе '%s': %v", email, err)
		return nil, "", errors.New("внутренняя ошибка сервера при поиске пользователя")
	}

	token, err := auth.IssueToken(user.ID, s.jwtSecret)
	if err != nil {
		log.Printf("[AuthService] Ошибка генерации JWT для '%s': %v", email, err)
		return nil, "", errors.New("внутренняя ошибка сервера при генерации токена")
	}

	log.Printf("[AuthService] Федеративный вход пользователя '%s' выполнен", email)
	return user, token, nil
}

// createFederatedUser создает пользователя при первом федеративном входе:
// имя собирается из отображаемого имени со случайным суффиксом,
// пароль генерируется и хешируется (пользователь его не знает).
func (s *authService) createFederatedUser(ctx context.Context, name, email, photo string) (*models.User, error) {
	generatedPassword, err := randomString(generatedPasswordLength)
	if err != nil {
		log.Printf("[AuthService] Ошибка генерации пароля для '%s': %v", email, err)
		return nil, errors.New("внутренняя ошибка сервера при генерации пароля")
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(generatedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[AuthService] Ошибка хеширования пароля для '%s': %v", email, err)
		return nil, errors.New("внутренняя ошибка сервера при хешировании пароля")
	}

	suffix, err := randomString(usernameSuffixLength)
	if err != nil {
		log.Printf("[AuthService] Ошибка генерации суффикса имени для '%s': %v", email, err)
		return nil, errors.New("внутренняя ошибка сервера при генерации имени пользователя")
	}

	user := &models.User{
		Username:     strings.ToLower(strings.ReplaceAll(name, " ", "")) + suffix,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Avatar:       photo,
	}

	created, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		log.Printf("[AuthService] Ошибка создания федеративного пользователя '%s': %v", email, err)
		return nil, errors.New("внутренняя ошибка сервера при создании пользователя")
	}

	log.Printf("[AuthService] Федеративный пользователь '%s' создан с ID %d", created.Username, created.ID)
	return created, nil
}

// Алфавит для генерируемых значений (аналог base36).
const randomAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// randomString возвращает криптостойкую случайную строку заданной длины.
func randomString(length int) (string, error) {
	result := make([]byte, length)
	for i := range result {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(randomAlphabet))))
		if err != nil {
			return "", fmt.Errorf("ошибка генерации случайного числа: %w", err)
		}
		result[i] = randomAlphabet[n.Int64()]
	}
	return string(result), nil
}
