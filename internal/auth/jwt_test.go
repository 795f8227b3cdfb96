package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Elmoustafi-22/HOMEstate/internal/auth"
)

var testSecret = []byte("test-secret-key")

func TestIssueAndVerifyToken(t *testing.T) {
	userID := int64(42)

	token, err := auth.IssueToken(userID, testSecret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	gotID, err := auth.VerifyToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	token, err := auth.IssueToken(1, testSecret)
	require.NoError(t, err)

	_, err = auth.VerifyToken(token, []byte("another-secret"))
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerifyToken_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "Пустая строка", token: ""},
		{name: "Не JWT", token: "not-a-jwt-at-all"},
		{name: "Обрезанный токен", token: "eyJhbGciOiJIUzI1NiJ9.eyJ1c2VyX2lkIjo0Mn0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.VerifyToken(tt.token, testSecret)
			require.ErrorIs(t, err, auth.ErrInvalidToken)
		})
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	// Собираем токен с истекшим сроком действия вручную
	claims := auth.Claims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	_, err = auth.VerifyToken(expired, testSecret)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerifyToken_WrongSigningMethod(t *testing.T) {
	// Токен с alg=none должен отклоняться
	claims := auth.Claims{UserID: 42}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	unsigned, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = auth.VerifyToken(unsigned, testSecret)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}
