package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Elmoustafi-22/HOMEstate/internal/models"
)

// Коды ошибок PostgreSQL.
const (
	pgUniqueViolationCode = "23505"
)

// UserRepository определяет методы для работы с учётными записями в хранилище.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// postgresUserRepository реализует UserRepository для PostgreSQL.
type postgresUserRepository struct {
	db *sqlx.DB
}

// NewPostgresUserRepository создает новый экземпляр репозитория пользователей для PostgreSQL.
func NewPostgresUserRepository(db *sqlx.DB) UserRepository {
	return &postgresUserRepository{db: db}
}

// CreateUser создает нового пользователя в базе данных.
// Возвращает созданного пользователя или ошибку конфликта,
// если имя пользователя или email уже заняты.
func (r *postgresUserRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	// Пустой avatar заменяется значением по умолчанию на стороне БД
	query := `INSERT INTO users (username, email, password_hash)
	          VALUES ($1, $2, $3)
	          RETURNING id, username, email, password_hash, avatar, created_at, updated_at`
	args := []interface{}{user.Username, user.Email, user.PasswordHash}
	if user.Avatar != "" {
		query = `INSERT INTO users (username, email, password_hash, avatar)
		         VALUES ($1, $2, $3, $4)
		         RETURNING id, username, email, password_hash, avatar, created_at, updated_at`
		args = append(args, user.Avatar)
	}

	var created models.User
	err := r.db.GetContext(ctx, &created, query, args...)
	if err != nil {
		if conflictErr := mapUniqueViolation(err); conflictErr != nil {
			log.Printf("[UserRepo] Конфликт при создании пользователя '%s': %v", user.Username, conflictErr)
			return nil, conflictErr
		}
		log.Printf("[UserRepo] Непредвиденная ошибка при создании пользователя '%s': %v", user.Username, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на создание пользователя: %w", err)
	}

	log.Printf("[UserRepo] Пользователь '%s' успешно создан с ID %d", created.Username, created.ID)
	return &created, nil
}

// GetUserByEmail находит пользователя по email.
// Возвращает ErrUserNotFound, если пользователь не найден.
func (r *postgresUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT id, username, email, password_hash, avatar, created_at, updated_at
	          FROM users WHERE email=$1`
	var user models.User

	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("[UserRepo] Пользователь с email '%s' не найден", email)
			return nil, ErrUserNotFound
		}
		log.Printf("[UserRepo] Ошибка при поиске пользователя по email '%s': %v", email, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение пользователя: %w", err)
	}

	return &user, nil
}

// GetUserByID находит пользователя по его ID.
// Возвращает ErrUserNotFound, если пользователь не найден.
func (r *postgresUserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT id, username, email, password_hash, avatar, created_at, updated_at
	          FROM users WHERE id=$1`
	var user models.User

	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("[UserRepo] Пользователь с ID %d не найден", id)
			return nil, ErrUserNotFound
		}
		log.Printf("[UserRepo] Ошибка при поиске пользователя с ID %d: %v", id, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение пользователя: %w", err)
	}

	return &user, nil
}

// UpdateUser обновляет изменяемые поля пользователя (username, email,
// password_hash, avatar). Возвращает обновлённого пользователя.
func (r *postgresUserRepository) UpdateUser(ctx context.Context, user *models.User) (*models.User, error) {
	query := `UPDATE users
	          SET username=$1, email=$2, password_hash=$3, avatar=$4, updated_at=now()
	          WHERE id=$5
	          RETURNING id, username, email, password_hash, avatar, created_at, updated_at`
	var updated models.User

	err := r.db.GetContext(ctx, &updated, query,
		user.Username, user.Email, user.PasswordHash, user.Avatar, user.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("[UserRepo] Пользователь с ID %d не найден при обновлении", user.ID)
			return nil, ErrUserNotFound
		}
		if conflictErr := mapUniqueViolation(err); conflictErr != nil {
			log.Printf("[UserRepo] Конфликт при обновлении пользователя ID %d: %v", user.ID, conflictErr)
			return nil, conflictErr
		}
		log.Printf("[UserRepo] Ошибка при обновлении пользователя ID %d: %v", user.ID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на обновление пользователя: %w", err)
	}

	log.Printf("[UserRepo] Пользователь ID %d успешно обновлён", updated.ID)
	return &updated, nil
}

// DeleteUser удаляет пользователя по ID.
// Объявления пользователя при этом не удаляются (осиротевшие записи остаются).
func (r *postgresUserRepository) DeleteUser(ctx context.Context, id int64) error {
	query := `DELETE FROM users WHERE id=$1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Printf("[UserRepo] Ошибка при удалении пользователя ID %d: %v", id, err)
		return fmt.Errorf("ошибка выполнения запроса на удаление пользователя: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка получения количества удалённых строк: %w", err)
	}
	if rows == 0 {
		log.Printf("[UserRepo] Пользователь с ID %d не найден при удалении", id)
		return ErrUserNotFound
	}

	log.Printf("[UserRepo] Пользователь ID %d успешно удалён", id)
	return nil
}

// mapUniqueViolation преобразует ошибку нарушения уникальности PostgreSQL
// в доменную ошибку конфликта по имени нарушенного ограничения.
// Возвращает nil, если ошибка не является нарушением уникальности.
func mapUniqueViolation(err error) error {
	var pgErr *pq.Error
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolationCode {
		return nil
	}
	if strings.Contains(pgErr.Constraint, "email") {
		return ErrEmailTaken
	}
	return ErrUsernameTaken
}

// Кастомные ошибки репозитория.
var (
	ErrUserNotFound  = errors.New("пользователь не найден")
	ErrUsernameTaken = errors.New("имя пользователя уже занято")
	ErrEmailTaken    = errors.New("email уже занят")
)
