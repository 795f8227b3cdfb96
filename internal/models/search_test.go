package models_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Elmoustafi-22/HOMEstate/internal/models"
)

func TestParseBoolFilter(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected models.BoolFilter
	}{
		{name: "Явное true ограничивает выборку", value: "true", expected: models.BoolTrue},
		{name: "Явное false не фильтрует", value: "false", expected: models.BoolAny},
		{name: "Пустая строка не фильтрует", value: "", expected: models.BoolAny},
		{name: "Мусорное значение не фильтрует", value: "banana", expected: models.BoolAny},
		{name: "TRUE в верхнем регистре не распознаётся", value: "TRUE", expected: models.BoolAny},
		{name: "Число не распознаётся", value: "1", expected: models.BoolAny},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, models.ParseBoolFilter(tt.value))
		})
	}
}

func TestParseSearchCriteria_Defaults(t *testing.T) {
	criteria := models.ParseSearchCriteria(url.Values{})

	assert.Equal(t, "", criteria.SearchTerm)
	assert.Equal(t, models.BoolAny, criteria.Offer)
	assert.Equal(t, models.BoolAny, criteria.Furnished)
	assert.Equal(t, models.BoolAny, criteria.Parking)
	assert.Equal(t, "", criteria.Type) // Оба типа
	assert.Equal(t, models.DefaultSortField, criteria.SortField)
	assert.False(t, criteria.SortAsc) // По умолчанию по убыванию
	assert.Equal(t, models.DefaultSearchLimit, criteria.Limit)
	assert.Equal(t, 0, criteria.StartIndex)
}

// Закон трёхзначного фильтра: отсутствующий параметр и "false"
// дают одинаковые критерии.
func TestParseSearchCriteria_TriStateLaw(t *testing.T) {
	absent := models.ParseSearchCriteria(url.Values{})
	explicitFalse := models.ParseSearchCriteria(url.Values{
		"offer":     {"false"},
		"furnished": {"false"},
		"parking":   {"false"},
	})

	assert.Equal(t, absent, explicitFalse)

	restricted := models.ParseSearchCriteria(url.Values{"offer": {"true"}})
	assert.Equal(t, models.BoolTrue, restricted.Offer)
	assert.Equal(t, models.BoolAny, restricted.Furnished)
}

func TestParseSearchCriteria_Type(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{name: "Продажа", value: "sale", expected: "sale"},
		{name: "Аренда", value: "rent", expected: "rent"},
		{name: "Оба типа при all", value: "all", expected: ""},
		{name: "Оба типа при мусорном значении", value: "castle", expected: ""},
		{name: "Оба типа при пустом значении", value: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria := models.ParseSearchCriteria(url.Values{"type": {tt.value}})
			assert.Equal(t, tt.expected, criteria.Type)
		})
	}
}

func TestParseSearchCriteria_Pagination(t *testing.T) {
	tests := []struct {
		name          string
		limit         string
		startIndex    string
		expectedLimit int
		expectedStart int
	}{
		{name: "Явные значения", limit: "20", startIndex: "40", expectedLimit: 20, expectedStart: 40},
		{name: "Мусорный limit заменяется умолчанием", limit: "abc", startIndex: "5", expectedLimit: 9, expectedStart: 5},
		{name: "Отрицательные значения игнорируются", limit: "-3", startIndex: "-7", expectedLimit: 9, expectedStart: 0},
		{name: "Ноль как limit игнорируется", limit: "0", startIndex: "0", expectedLimit: 9, expectedStart: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria := models.ParseSearchCriteria(url.Values{
				"limit":      {tt.limit},
				"startIndex": {tt.startIndex},
			})
			assert.Equal(t, tt.expectedLimit, criteria.Limit)
			assert.Equal(t, tt.expectedStart, criteria.StartIndex)
		})
	}
}

func TestParseSearchCriteria_Sort(t *testing.T) {
	criteria := models.ParseSearchCriteria(url.Values{
		"sort":  {"regularPrice"},
		"order": {"asc"},
	})
	assert.Equal(t, "regularPrice", criteria.SortField)
	assert.True(t, criteria.SortAsc)

	criteria = models.ParseSearchCriteria(url.Values{"order": {"desc"}})
	assert.False(t, criteria.SortAsc)
}
