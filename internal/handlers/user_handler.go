package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Elmoustafi-22/HOMEstate/internal/models"
	"github.com/Elmoustafi-22/HOMEstate/internal/services"
)

// UserHandler обрабатывает HTTP-запросы, связанные с профилем пользователя.
type UserHandler struct {
	userService services.UserService
}

// NewUserHandler создает новый экземпляр UserHandler.
func NewUserHandler(us services.UserService) *UserHandler {
	return &UserHandler{userService: us}
}

// parseIDParam разбирает URL-параметр "id".
func parseIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// GetUser обрабатывает GET запрос на получение профиля пользователя.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Неверный ID пользователя")
		return
	}

	user, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// UpdateUser обрабатывает POST запрос на обновление профиля.
// Разрешено только самому пользователю.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	targetID, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Неверный ID пользователя")
		return
	}

	var update models.UserUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Printf("[UserHandler] Ошибка декодирования запроса обновления профиля: %v", err)
		writeError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), userID, targetID, &update)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// DeleteUser обрабатывает DELETE запрос на удаление учётной записи.
// Разрешено только самому пользователю; cookie сессии очищается.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	targetID, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Неверный ID пользователя")
		return
	}

	if err = h.userService.DeleteUser(r.Context(), userID, targetID); err != nil {
		writeServiceError(w, err)
		return
	}

	clearSessionCookie(w)
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Учётная запись удалена"})
}

// GetUserListings обрабатывает GET запрос на получение объявлений пользователя.
// Разрешено только самому пользователю.
func (h *UserHandler) GetUserListings(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	targetID, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Неверный ID пользователя")
		return
	}

	listings, err := h.userService.GetUserListings(r.Context(), userID, targetID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listings)
}
