package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Elmoustafi-22/HOMEstate/internal/models"
)

// listingColumns — полный список колонок объявления для SELECT/RETURNING.
const listingColumns = `id, name, description, address, type, bedrooms, bathrooms,
	regular_price, discount_price, offer, parking, furnished, image_urls,
	user_ref, created_at, updated_at`

// ListingRepository определяет методы для работы с объявлениями в хранилище.
type ListingRepository interface {
	CreateListing(ctx context.Context, listing *models.Listing) (*models.Listing, error)
	GetListingByID(ctx context.Context, id int64) (*models.Listing, error)
	UpdateListing(ctx context.Context, id int64, update *models.ListingUpdate) (*models.Listing, error)
	DeleteListing(ctx context.Context, id int64) error
	GetListingsByUserRef(ctx context.Context, userRef int64) ([]models.Listing, error)
	SearchListings(ctx context.Context, criteria models.SearchCriteria) ([]models.Listing, error)
}

// postgresListingRepository реализует ListingRepository для PostgreSQL.
type postgresListingRepository struct {
	db *sqlx.DB
}

// NewPostgresListingRepository создает новый экземпляр репозитория объявлений.
func NewPostgresListingRepository(db *sqlx.DB) ListingRepository {
	return &postgresListingRepository{db: db}
}

// CreateListing создает новое объявление в базе данных.
func (r *postgresListingRepository) CreateListing(ctx context.Context, listing *models.Listing) (*models.Listing, error) {
	query := `INSERT INTO listings (name, description, address, type, bedrooms, bathrooms,
	              regular_price, discount_price, offer, parking, furnished, image_urls, user_ref)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	          RETURNING ` + listingColumns

	var created models.Listing
	err := r.db.GetContext(ctx, &created, query,
		listing.Name, listing.Description, listing.Address, listing.Type,
		listing.Bedrooms, listing.Bathrooms, listing.RegularPrice, listing.DiscountPrice,
		listing.Offer, listing.Parking, listing.Furnished,
		pq.Array([]string(listing.ImageURLs)), listing.UserRef)
	if err != nil {
		log.Printf("[ListingRepo] Ошибка при создании объявления '%s': %v", listing.Name, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на создание объявления: %w", err)
	}

	log.Printf("[ListingRepo] Объявление '%s' успешно создано с ID %d", created.Name, created.ID)
	return &created, nil
}

// GetListingByID находит объявление по его ID.
// Возвращает ErrListingNotFound, если объявление не найдено.
func (r *postgresListingRepository) GetListingByID(ctx context.Context, id int64) (*models.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id=$1`
	var listing models.Listing

	err := r.db.GetContext(ctx, &listing, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("[ListingRepo] Объявление с ID %d не найдено", id)
			return nil, ErrListingNotFound
		}
		log.Printf("[ListingRepo] Ошибка при поиске объявления с ID %d: %v", id, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение объявления: %w", err)
	}

	return &listing, nil
}

// UpdateListing обновляет изменяемые поля объявления.
// ID и user_ref неизменяемы: владелец задаётся один раз при создании.
func (r *postgresListingRepository) UpdateListing(
	ctx context.Context,
	id int64,
	update *models.ListingUpdate,
) (*models.Listing, error) {
	query := `UPDATE listings
	          SET name=$1, description=$2, address=$3, type=$4, bedrooms=$5, bathrooms=$6,
	              regular_price=$7, discount_price=$8, offer=$9, parking=$10, furnished=$11,
	              image_urls=$12, updated_at=now()
	          WHERE id=$13
	          RETURNING ` + listingColumns

	var updated models.Listing
	err := r.db.GetContext(ctx, &updated, query,
		update.Name, update.Description, update.Address, update.Type,
		update.Bedrooms, update.Bathrooms, update.RegularPrice, update.DiscountPrice,
		update.Offer, update.Parking, update.Furnished,
		pq.Array(update.ImageURLs), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("[ListingRepo] Объявление с ID %d не найдено при обновлении", id)
			return nil, ErrListingNotFound
		}
		log.Printf("[ListingRepo] Ошибка при обновлении объявления ID %d: %v", id, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на обновление объявления: %w", err)
	}

	log.Printf("[ListingRepo] Объявление ID %d успешно обновлено", updated.ID)
	return &updated, nil
}

// DeleteListing удаляет объявление по ID.
func (r *postgresListingRepository) DeleteListing(ctx context.Context, id int64) error {
	query := `DELETE FROM listings WHERE id=$1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Printf("[ListingRepo] Ошибка при удалении объявления ID %d: %v", id, err)
		return fmt.Errorf("ошибка выполнения запроса на удаление объявления: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка получения количества удалённых строк: %w", err)
	}
	if rows == 0 {
		log.Printf("[ListingRepo] Объявление с ID %d не найдено при удалении", id)
		return ErrListingNotFound
	}

	log.Printf("[ListingRepo] Объявление ID %d успешно удалено", id)
	return nil
}

// GetListingsByUserRef возвращает все объявления пользователя,
// свежие первыми.
func (r *postgresListingRepository) GetListingsByUserRef(ctx context.Context, userRef int64) ([]models.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings
	          WHERE user_ref=$1 ORDER BY created_at DESC, id DESC`

	listings := []models.Listing{}
	err := r.db.SelectContext(ctx, &listings, query, userRef)
	if err != nil {
		log.Printf("[ListingRepo] Ошибка при поиске объявлений пользователя ID %d: %v", userRef, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение объявлений пользователя: %w", err)
	}

	log.Printf("[ListingRepo] Найдено %d объявлений пользователя ID %d", len(listings), userRef)
	return listings, nil
}

// sortColumns — разрешённые поля сортировки (JSON-имя или имя колонки).
// Имя поля приходит из query-параметра, поэтому подставлять его в SQL
// можно только через этот словарь.
var sortColumns = map[string]string{
	"created_at":    "created_at",
	"createdAt":     "created_at",
	"updated_at":    "updated_at",
	"updatedAt":     "updated_at",
	"regular_price": "regular_price",
	"regularPrice":  "regular_price",
	"name":          "name",
}

// SearchListings выполняет поиск объявлений по критериям.
// Поиск по подстроке ведётся только по названию, без учёта регистра.
// Трёхзначные фильтры добавляют условие только в состоянии BoolTrue/BoolFalse.
func (r *postgresListingRepository) SearchListings(
	ctx context.Context,
	criteria models.SearchCriteria,
) ([]models.Listing, error) {
	var conditions []string
	var args []interface{}

	// Подстрочный поиск по названию (регистронезависимый)
	args = append(args, "%"+criteria.SearchTerm+"%")
	conditions = append(conditions, "name ILIKE $"+strconv.Itoa(len(args)))

	appendBoolCondition := func(column string, filter models.BoolFilter) {
		switch filter {
		case models.BoolTrue:
			args = append(args, true)
		case models.BoolFalse:
			args = append(args, false)
		default:
			return // BoolAny: фильтр не применяется
		}
		conditions = append(conditions, column+" = $"+strconv.Itoa(len(args)))
	}
	appendBoolCondition("offer", criteria.Offer)
	appendBoolCondition("furnished", criteria.Furnished)
	appendBoolCondition("parking", criteria.Parking)

	if criteria.Type != "" {
		args = append(args, criteria.Type)
		conditions = append(conditions, "type = $"+strconv.Itoa(len(args)))
	}

	sortColumn, ok := sortColumns[criteria.SortField]
	if !ok {
		sortColumn = models.DefaultSortField
	}
	direction := "DESC"
	if criteria.SortAsc {
		direction = "ASC"
	}

	limit := criteria.Limit
	if limit <= 0 {
		limit = models.DefaultSearchLimit
	}
	offset := criteria.StartIndex
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit, offset)

	// Вторичная сортировка по id делает порядок устойчивым при равных ключах
	query := fmt.Sprintf(`SELECT %s FROM listings WHERE %s ORDER BY %s %s, id %s LIMIT $%d OFFSET $%d`,
		listingColumns, strings.Join(conditions, " AND "),
		sortColumn, direction, direction, len(args)-1, len(args))

	listings := []models.Listing{}
	err := r.db.SelectContext(ctx, &listings, query, args...)
	if err != nil {
		log.Printf("[ListingRepo] Ошибка при поиске объявлений: %v", err)
		return nil, fmt.Errorf("ошибка выполнения запроса на поиск объявлений: %w", err)
	}

	log.Printf("[ListingRepo] Поиск объявлений: найдено %d (term=%q, limit=%d, offset=%d)",
		len(listings), criteria.SearchTerm, limit, offset)
	return listings, nil
}

// Кастомная ошибка репозитория.
var (
	ErrListingNotFound = errors.New("объявление не найдено")
)
