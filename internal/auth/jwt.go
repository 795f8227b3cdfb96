// Package auth выпускает и проверяет подписанные токены сессии.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL — время жизни токена сессии.
// Исходная версия не ограничивала срок действия токена; явный exp
// добавлен осознанно, просроченный токен отклоняется как невалидный.
const TokenTTL = 24 * time.Hour

// Claims — полезная нагрузка токена: ID пользователя плюс
// стандартные утверждения (exp, iat, nbf).
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// ErrInvalidToken возвращается при любой проблеме с токеном:
// неверная подпись, неверный формат, истёкший срок действия.
var ErrInvalidToken = errors.New("невалидный токен")

// IssueToken создает и подписывает токен сессии для пользователя.
func IssueToken(userID int64, secret []byte) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "homestate-server",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("ошибка подписи JWT: %w", err)
	}

	return signedToken, nil
}

// VerifyToken проверяет подпись и срок действия токена,
// возвращает ID пользователя из claims.
func VerifyToken(tokenString string, secret []byte) (int64, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Убеждаемся, что метод подписи - HS256
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}
