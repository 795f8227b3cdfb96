package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Elmoustafi-22/HOMEstate/internal/middleware"
	"github.com/Elmoustafi-22/HOMEstate/internal/models"
	"github.com/Elmoustafi-22/HOMEstate/internal/services"
)

// AuthHandler обрабатывает HTTP-запросы, связанные с аутентификацией.
type AuthHandler struct {
	service services.AuthService // Зависимость от интерфейса, а не конкретной реализации
}

// NewAuthHandler создает новый экземпляр AuthHandler.
func NewAuthHandler(s services.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// SignUp обрабатывает запрос на регистрацию нового пользователя.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[AuthHandler] Ошибка декодирования запроса регистрации: %v", err)
		writeError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	log.Printf("[AuthHandler] Попытка регистрации пользователя: %s", req.Username)

	if err := h.service.SignUp(r.Context(), req.Username, req.Email, req.Password); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, models.MessageResponse{Message: "Пользователь успешно зарегистрирован"})
}

// SignIn обрабатывает запрос на вход пользователя.
// При успехе устанавливает HTTP-only cookie с токеном сессии
// и возвращает пользователя (без хеша пароля).
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[AuthHandler] Ошибка декодирования запроса входа: %v", err)
		writeError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email и пароль не могут быть пустыми")
		return
	}

	log.Printf("[AuthHandler] Попытка входа пользователя: %s", req.Email)

	user, token, err := h.service.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	setSessionCookie(w, token)
	writeJSON(w, http.StatusOK, user)
}

// GoogleAuth обрабатывает федеративный вход через внешнего провайдера.
func (h *AuthHandler) GoogleAuth(w http.ResponseWriter, r *http.Request) {
	var req models.GoogleAuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[AuthHandler] Ошибка декодирования запроса федеративного входа: %v", err)
		writeError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	log.Printf("[AuthHandler] Федеративный вход: %s", req.Email)

	user, token, err := h.service.GoogleAuth(r.Context(), req.Name, req.Email, req.Photo)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	setSessionCookie(w, token)
	writeJSON(w, http.StatusOK, user)
}

// SignOut завершает сессию, очищая cookie с токеном.
func (h *AuthHandler) SignOut(w http.ResponseWriter, _ *http.Request) {
	clearSessionCookie(w)
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Выход выполнен"})
}

// setSessionCookie устанавливает HTTP-only cookie с токеном сессии.
func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
}

// clearSessionCookie удаляет cookie с токеном сессии.
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
