package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Elmoustafi-22/HOMEstate/internal/middleware"
	"github.com/Elmoustafi-22/HOMEstate/internal/models"
	"github.com/Elmoustafi-22/HOMEstate/internal/services"
)

// writeJSON отправляет успешный ответ с JSON-телом.
func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[Handlers] Ошибка кодирования JSON-ответа: %v", err)
	}
}

// writeError отправляет ошибку в едином формате
// {success:false, statusCode, message}.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, models.NewErrorResponse(statusCode, message))
}

// writeServiceError сопоставляет ошибку сервисного слоя со статус-кодом.
// Владельческие ошибки отдаются как 401 (унаследовано от исходного API).
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrListingNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrUsernameTaken), errors.Is(err, services.ErrEmailTaken):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrWrongPassword):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrNotOwner):
		writeError(w, http.StatusUnauthorized, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
	}
}

// callerID достает ID аутентифицированного пользователя из контекста.
// Отсутствие ID после middleware — внутренняя ошибка, а не 401.
func callerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		log.Printf("[Handlers] Не удалось получить userID из контекста")
		writeError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return 0, false
	}
	return userID, true
}
