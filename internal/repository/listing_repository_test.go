package repository_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Elmoustafi-22/HOMEstate/internal/models"
	"github.com/Elmoustafi-22/HOMEstate/internal/repository"
)

// listingTestColumns — колонки, возвращаемые запросами к таблице listings.
var listingTestColumns = []string{
	"id", "name", "description", "address", "type", "bedrooms", "bathrooms",
	"regular_price", "discount_price", "offer", "parking", "furnished",
	"image_urls", "user_ref", "created_at", "updated_at",
}

func setupListingRepoMock(t *testing.T) (repository.ListingRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := repository.NewPostgresListingRepository(sqlxDB)
	return repo, mock
}

func listingRow(id int64, name string, listingType string, userRef int64) *sqlmock.Rows {
	now := time.Now()
	// pq.StringArray сканируется из текстового представления массива
	return sqlmock.NewRows(listingTestColumns).
		AddRow(id, name, "описание", "адрес", listingType, 2, 1,
			100000.0, 90000.0, true, false, true,
			"{https://img/1.png}", userRef, now, now)
}

func TestCreateListing(t *testing.T) {
	ctx := context.Background()
	listing := &models.Listing{
		Name:          "Квартира у моря",
		Description:   "описание",
		Address:       "адрес",
		Type:          models.ListingTypeSale,
		Bedrooms:      2,
		Bathrooms:     1,
		RegularPrice:  100000,
		DiscountPrice: 90000,
		Offer:         true,
		Furnished:     true,
		ImageURLs:     []string{"https://img/1.png"},
		UserRef:       10,
	}

	t.Run("Успешное создание", func(t *testing.T) {
		repo, mock := setupListingRepoMock(t)
		mock.ExpectQuery(`INSERT INTO listings`).
			WillReturnRows(listingRow(1, listing.Name, listing.Type, listing.UserRef))

		created, err := repo.CreateListing(ctx, listing)
		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
		assert.Equal(t, listing.UserRef, created.UserRef)
		assert.Equal(t, []string{"https://img/1.png"}, []string(created.ImageURLs))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка базы данных", func(t *testing.T) {
		repo, mock := setupListingRepoMock(t)
		mock.ExpectQuery(`INSERT INTO listings`).
			WillReturnError(errors.New("database error"))

		created, err := repo.CreateListing(ctx, listing)
		require.Error(t, err)
		assert.Nil(t, created)
	})
}

func TestGetListingByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Объявление найдено", func(t *testing.T) {
		repo, mock := setupListingRepoMock(t)
		mock.ExpectQuery(`(?s)SELECT (.+) FROM listings WHERE id=`).
			WithArgs(int64(1)).
			WillReturnRows(listingRow(1, "Квартира", "rent", 10))

		listing, err := repo.GetListingByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), listing.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Объявление не найдено", func(t *testing.T) {
		repo, mock := setupListingRepoMock(t)
		mock.ExpectQuery(`(?s)SELECT (.+) FROM listings WHERE id=`).
			WithArgs(int64(999)).
			WillReturnError(sql.ErrNoRows)

		listing, err := repo.GetListingByID(ctx, 999)
		require.ErrorIs(t, err, repository.ErrListingNotFound)
		assert.Nil(t, listing)
	})
}

func TestUpdateListing(t *testing.T) {
	ctx := context.Background()
	update := &models.ListingUpdate{
		Name:         "Обновлённая квартира",
		Description:  "описание",
		Address:      "адрес",
		Type:         models.ListingTypeRent,
		Bedrooms:     3,
		Bathrooms:    2,
		RegularPrice: 120000,
		ImageURLs:    []string{"https://img/1.png"},
	}

	t.Run("Успешное обновление", func(t *testing.T) {
		repo, mock := setupListingRepoMock(t)
		mock.ExpectQuery(`UPDATE listings`).
			WillReturnRows(listingRow(1, update.Name, update.Type, 10))

		updated, err := repo.UpdateListing(ctx, 1, update)
		require.NoError(t, err)
		assert.Equal(t, update.Name, updated.Name)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Объявление не найдено", func(t *testing.T) {
		repo, mock := setupListingRepoMock(t)
		mock.ExpectQuery(`UPDATE listings`).
			WillReturnError(sql.ErrNoRows)

		updated, err := repo.UpdateListing(ctx, 999, update)
		require.ErrorIs(t, err, repository.ErrListingNotFound)
		assert.Nil(t, updated)
	})
}

func TestDeleteListing(t *testing.T) {
	ctx := context.Background()

	t.Run("Успешное удаление", func(t *testing.T) {
		repo, mock := setupListingRepoMock(t)
		mock.ExpectExec(`DELETE FROM listings WHERE id=`).
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.DeleteListing(ctx, 1))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Объявление не найдено", func(t *testing.T) {
		repo, mock := setupListingRepoMock(t)
		mock.ExpectExec(`DELETE FROM listings WHERE id=`).
			WithArgs(int64(999)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.ErrorIs(t, repo.DeleteListing(ctx, 999), repository.ErrListingNotFound)
	})
}

func TestGetListingsByUserRef(t *testing.T) {
	ctx := context.Background()

	repo, mock := setupListingRepoMock(t)
	rows := sqlmock.NewRows(listingTestColumns)
	now := time.Now()
	rows.AddRow(int64(2), "Вторая", "описание", "адрес", "rent", 1, 1,
		50000.0, 0.0, false, false, false, "{https://img/2.png}", int64(10), now, now)
	rows.AddRow(int64(1), "Первая", "описание", "адрес", "sale", 2, 1,
		100000.0, 0.0, false, true, false, "{https://img/1.png}", int64(10), now, now)
	mock.ExpectQuery(`(?s)SELECT (.+) FROM listings\s+WHERE user_ref=`).
		WithArgs(int64(10)).
		WillReturnRows(rows)

	listings, err := repo.GetListingsByUserRef(ctx, 10)
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, int64(2), listings[0].ID) // Свежие первыми
	require.NoError(t, mock.ExpectationsWereMet())
}

// Проверяем, что трёхзначные фильтры и сортировка дают ожидаемый SQL.
func TestSearchListings(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		criteria      models.SearchCriteria
		expectedQuery string
		expectedArgs  []driver.Value
	}{
		{
			name:          "Критерии по умолчанию: только поиск по названию",
			criteria:      models.SearchCriteria{Limit: 9},
			expectedQuery: `WHERE name ILIKE \$1 ORDER BY created_at DESC, id DESC LIMIT \$2 OFFSET \$3`,
			expectedArgs:  []driver.Value{"%%", 9, 0},
		},
		{
			name:          "Фильтр offer=true добавляет условие",
			criteria:      models.SearchCriteria{Offer: models.BoolTrue, Limit: 9},
			expectedQuery: `WHERE name ILIKE \$1 AND offer = \$2 ORDER BY created_at DESC`,
			expectedArgs:  []driver.Value{"%%", true, 9, 0},
		},
		{
			name: "Все фильтры сразу",
			criteria: models.SearchCriteria{
				SearchTerm: "море",
				Offer:      models.BoolTrue,
				Furnished:  models.BoolTrue,
				Parking:    models.BoolTrue,
				Type:       models.ListingTypeRent,
				Limit:      9,
			},
			expectedQuery: `WHERE name ILIKE \$1 AND offer = \$2 AND furnished = \$3 AND parking = \$4 AND type = \$5`,
			expectedArgs:  []driver.Value{"%море%", true, true, true, "rent", 9, 0},
		},
		{
			name:          "Сортировка по цене по возрастанию",
			criteria:      models.SearchCriteria{SortField: "regularPrice", SortAsc: true, Limit: 9},
			expectedQuery: `ORDER BY regular_price ASC, id ASC`,
			expectedArgs:  []driver.Value{"%%", 9, 0},
		},
		{
			name:          "Неизвестное поле сортировки заменяется умолчанием",
			criteria:      models.SearchCriteria{SortField: "password_hash; DROP TABLE users", Limit: 9},
			expectedQuery: `ORDER BY created_at DESC, id DESC`,
			expectedArgs:  []driver.Value{"%%", 9, 0},
		},
		{
			name:          "Пагинация",
			criteria:      models.SearchCriteria{Limit: 2, StartIndex: 4},
			expectedQuery: `LIMIT \$2 OFFSET \$3`,
			expectedArgs:  []driver.Value{"%%", 2, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := setupListingRepoMock(t)

			mock.ExpectQuery(tt.expectedQuery).
				WithArgs(tt.expectedArgs...).
				WillReturnRows(sqlmock.NewRows(listingTestColumns))

			listings, err := repo.SearchListings(ctx, tt.criteria)
			require.NoError(t, err)
			assert.Empty(t, listings)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
