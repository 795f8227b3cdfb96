package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/Elmoustafi-22/HOMEstate/internal/auth"
	"github.com/Elmoustafi-22/HOMEstate/internal/models"
)

// Тип для ключа контекста.
type contextKey string

// Ключ для хранения ID пользователя в контексте.
const UserIDKey contextKey = "userID"

// AccessTokenCookie — имя HTTP-only cookie с токеном сессии.
const AccessTokenCookie = "access_token"

// Authenticator возвращает middleware, проверяющий токен сессии.
// Токен ищется сначала в cookie, затем в заголовке Authorization.
// Отсутствующий токен — 401, невалидный (подпись/формат/срок) — 403:
// клиент различает эти случаи (предложить вход или сбросить сессию).
func Authenticator(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := extractToken(r)
			if tokenString == "" {
				log.Println("[AuthMiddleware] Токен сессии отсутствует")
				writeError(w, http.StatusUnauthorized, "Требуется аутентификация")
				return
			}

			userID, err := auth.VerifyToken(tokenString, secret)
			if err != nil {
				log.Printf("[AuthMiddleware] Ошибка проверки токена: %v", err)
				writeError(w, http.StatusForbidden, "Невалидный токен")
				return
			}

			// Добавляем UserID в контекст запроса
			ctx := context.WithValue(r.Context(), UserIDKey, userID)

			log.Printf("[AuthMiddleware] Пользователь %d успешно аутентифицирован", userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken достает токен сессии из cookie или заголовка Authorization.
func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	headerParts := strings.Split(authHeader, " ")
	if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
		return ""
	}
	return headerParts[1]
}

// GetUserIDFromContext извлекает UserID из контекста запроса.
// Возвращает ID пользователя и true, если ID найден, иначе 0 и false.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDKey).(int64)
	return userID, ok
}

// writeError отправляет ошибку в едином JSON-формате.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(models.NewErrorResponse(statusCode, message)); err != nil {
		log.Printf("[AuthMiddleware] Ошибка кодирования ответа об ошибке: %v", err)
	}
}
