package models

import (
	"net/url"
	"strconv"
)

// BoolFilter — трёхзначный фильтр для булевых полей объявления.
// Исторически параметр "false" и отсутствующий параметр означают одно
// и то же: "не фильтровать". Ограничивает выборку только явное "true".
type BoolFilter int

const (
	BoolAny   BoolFilter = iota // Фильтр не применяется
	BoolTrue                    // Только значения true
	BoolFalse                   // Только значения false (через API не выражается)
)

// Значения по умолчанию для поиска объявлений.
const (
	DefaultSearchLimit = 9
	DefaultSortField   = "created_at"
)

// SearchCriteria описывает параметры поиска объявлений:
// фильтры, сортировку и пагинацию.
type SearchCriteria struct {
	SearchTerm string     // Подстрока для поиска по названию (без учёта регистра)
	Offer      BoolFilter
	Furnished  BoolFilter
	Parking    BoolFilter
	Type       string // "sale", "rent" или "" (оба типа)
	SortField  string // Имя поля сортировки (JSON-имя или имя колонки)
	SortAsc    bool   // true — по возрастанию, по умолчанию по убыванию
	Limit      int
	StartIndex int
}

// ParseBoolFilter разбирает строковое значение трёхзначного фильтра.
// Отсутствующее значение, "false" и любая некорректная строка дают
// BoolAny: фильтр открыт, а не закрыт (осознанная политика).
func ParseBoolFilter(value string) BoolFilter {
	if value == "true" {
		return BoolTrue
	}
	return BoolAny
}

// ParseSearchCriteria собирает критерии поиска из query-параметров запроса,
// подставляя значения по умолчанию. Никогда не возвращает ошибку:
// некорректные значения трактуются как отсутствующие.
func ParseSearchCriteria(query url.Values) SearchCriteria {
	criteria := SearchCriteria{
		SearchTerm: query.Get("searchTerm"),
		Offer:      ParseBoolFilter(query.Get("offer")),
		Furnished:  ParseBoolFilter(query.Get("furnished")),
		Parking:    ParseBoolFilter(query.Get("parking")),
		SortField:  query.Get("sort"),
		Limit:      DefaultSearchLimit,
		StartIndex: 0,
	}

	// Тип: отсутствие и "all" означают оба типа сразу
	if t := query.Get("type"); t == ListingTypeSale || t == ListingTypeRent {
		criteria.Type = t
	}

	if criteria.SortField == "" {
		criteria.SortField = DefaultSortField
	}
	// По умолчанию сортируем по убыванию (свежие объявления первыми)
	criteria.SortAsc = query.Get("order") == "asc"

	if limit, err := strconv.Atoi(query.Get("limit")); err == nil && limit > 0 {
		criteria.Limit = limit
	}
	if start, err := strconv.Atoi(query.Get("startIndex")); err == nil && start > 0 {
		criteria.StartIndex = start
	}

	return criteria
}
