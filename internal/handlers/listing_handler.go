package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/Elmoustafi-22/HOMEstate/internal/models"
	"github.com/Elmoustafi-22/HOMEstate/internal/services"
	"github.com/Elmoustafi-22/HOMEstate/internal/storage"
)

// ListingHandler обрабатывает HTTP-запросы, связанные с объявлениями.
type ListingHandler struct {
	listingService services.ListingService
	imageStorage   storage.FileStorage
}

// NewListingHandler создает новый экземпляр ListingHandler.
func NewListingHandler(ls services.ListingService, fs storage.FileStorage) *ListingHandler {
	return &ListingHandler{listingService: ls, imageStorage: fs}
}

// CreateListing обрабатывает POST запрос на создание объявления.
func (h *ListingHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var fields models.ListingUpdate
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		log.Printf("[ListingHandler] Ошибка декодирования запроса создания объявления: %v", err)
		writeError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	listing, err := h.listingService.CreateListing(r.Context(), userID, &fields)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, listing)
}

// GetListing обрабатывает GET запрос на получение объявления (публичный).
func (h *ListingHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Неверный ID объявления")
		return
	}

	listing, err := h.listingService.GetListing(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listing)
}

// UpdateListing обрабатывает POST запрос на обновление объявления (только владелец).
func (h *ListingHandler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Неверный ID объявления")
		return
	}

	var update models.ListingUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Printf("[ListingHandler] Ошибка декодирования запроса обновления объявления: %v", err)
		writeError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	listing, err := h.listingService.UpdateListing(r.Context(), userID, id, &update)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listing)
}

// DeleteListing обрабатывает DELETE запрос на удаление объявления (только владелец).
func (h *ListingHandler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Неверный ID объявления")
		return
	}

	if err = h.listingService.DeleteListing(r.Context(), userID, id); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Объявление удалено"})
}

// SearchListings обрабатывает GET запрос на поиск объявлений (публичный).
// Некорректные значения фильтров трактуются как отсутствующие,
// операция никогда не отвечает ошибкой валидации.
func (h *ListingHandler) SearchListings(w http.ResponseWriter, r *http.Request) {
	criteria := models.ParseSearchCriteria(r.URL.Query())

	listings, err := h.listingService.SearchListings(r.Context(), criteria)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listings)
}

// UploadImage обрабатывает POST запрос на загрузку изображения объявления.
// Тело запроса — сырые байты изображения; в ответе публичный URL объекта.
func (h *ListingHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	// Получаем размер файла из заголовка Content-Length
	size, err := strconv.ParseInt(r.Header.Get("Content-Length"), 10, 64)
	if err != nil || size <= 0 {
		log.Printf("[ListingHandler] Неверный или отсутствующий заголовок Content-Length")
		writeError(w, http.StatusBadRequest, "Неверный или отсутствующий заголовок Content-Length")
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		writeError(w, http.StatusBadRequest, "Поддерживаются только изображения")
		return
	}

	url, err := h.imageStorage.UploadImage(r.Context(), userID, r.Body, size, contentType)
	if err != nil {
		log.Printf("[ListingHandler] Ошибка загрузки изображения пользователя %d: %v", userID, err)
		writeError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера при загрузке изображения")
		return
	}

	log.Printf("[ListingHandler] Пользователь %d загрузил изображение: %s", userID, url)
	writeJSON(w, http.StatusCreated, models.ImageUploadResponse{URL: url})
}
