package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Elmoustafi-22/HOMEstate/internal/handlers"
	"github.com/Elmoustafi-22/HOMEstate/internal/middleware"
	"github.com/Elmoustafi-22/HOMEstate/internal/models"
	"github.com/Elmoustafi-22/HOMEstate/internal/services"
)

// --- Mock AuthService --- //

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) SignUp(ctx context.Context, username, email, password string) error {
	args := m.Called(ctx, username, email, password)
	return args.Error(0)
}

func (m *MockAuthService) SignIn(ctx context.Context, email, password string) (*models.User, string, error) {
	args := m.Called(ctx, email, password)
	user, _ := args.Get(0).(*models.User)
	return user, args.String(1), args.Error(2)
}

func (m *MockAuthService) GoogleAuth(ctx context.Context, name, email, photo string) (*models.User, string, error) {
	args := m.Called(ctx, name, email, photo)
	user, _ := args.Get(0).(*models.User)
	return user, args.String(1), args.Error(2)
}

// --- Tests --- //

func TestNewAuthHandler(t *testing.T) {
	mockService := new(MockAuthService)
	h := handlers.NewAuthHandler(mockService)
	assert.NotNil(t, h)
}

// Вспомогательная функция для создания роутера с обработчиком.
func setupAuthRouter(h *handlers.AuthHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/signup", h.SignUp)
	r.Post("/signin", h.SignIn)
	r.Post("/google", h.GoogleAuth)
	r.Get("/signout", h.SignOut)
	return r
}

// sessionCookie возвращает cookie сессии из ответа, если она установлена.
func sessionCookie(rr *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == middleware.AccessTokenCookie {
			return cookie
		}
	}
	return nil
}

func TestAuthHandler_SignUp(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		mockExpected    bool
		mockReturnError error
		expectedStatus  int
		expectedBody    string // Проверяем подстроку в теле ответа
	}{
		{
			name:            "Успешная регистрация",
			body:            `{"username": "testuser", "email": "test@example.com", "password": "password123"}`,
			mockExpected:    true,
			mockReturnError: nil,
			expectedStatus:  http.StatusCreated,
			expectedBody:    "Пользователь успешно зарегистрирован",
		},
		{
			name:           "Невалидный JSON",
			body:           `{"username": "testuser"`, // Сломанный JSON
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Неверный формат запроса",
		},
		{
			name:            "Пустые поля",
			body:            `{"username": "", "email": "", "password": ""}`,
			mockExpected:    true,
			mockReturnError: services.ErrValidation,
			expectedStatus:  http.StatusBadRequest,
			expectedBody:    services.ErrValidation.Error(),
		},
		{
			name:            "Имя пользователя занято",
			body:            `{"username": "existinguser", "email": "new@example.com", "password": "password123"}`,
			mockExpected:    true,
			mockReturnError: services.ErrUsernameTaken,
			expectedStatus:  http.StatusConflict,
			expectedBody:    services.ErrUsernameTaken.Error(),
		},
		{
			name:            "Email занят",
			body:            `{"username": "newuser", "email": "existing@example.com", "password": "password123"}`,
			mockExpected:    true,
			mockReturnError: services.ErrEmailTaken,
			expectedStatus:  http.StatusConflict,
			expectedBody:    services.ErrEmailTaken.Error(),
		},
		{
			name:            "Внутренняя ошибка сервера",
			body:            `{"username": "erroruser", "email": "err@example.com", "password": "password123"}`,
			mockExpected:    true,
			mockReturnError: errors.New("some internal error"),
			expectedStatus:  http.StatusInternalServerError,
			expectedBody:    "Внутренняя ошибка сервера",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockAuthService)
			h := handlers.NewAuthHandler(mockService)
			r := setupAuthRouter(h)

			// Настраиваем мок только если ожидается вызов сервиса
			if tt.mockExpected {
				mockService.On("SignUp", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(tt.mockReturnError).Once()
			}

			req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_SignIn(t *testing.T) {
	authedUser := &models.User{
		ID:           1,
		Username:     "testuser",
		Email:        "test@example.com",
		PasswordHash: "secret-hash",
	}

	tests := []struct {
		name            string
		body            string
		mockExpected    bool
		mockReturnUser  *models.User
		mockReturnToken string
		mockReturnError error
		expectedStatus  int
		expectedBody    string
		expectCookie    bool
	}{
		{
			name:            "Успешный вход",
			body:            `{"email": "test@example.com", "password": "password123"}`,
			mockExpected:    true,
			mockReturnUser:  authedUser,
			mockReturnToken: "fake-jwt-token",
			expectedStatus:  http.StatusOK,
			expectedBody:    "testuser",
			expectCookie:    true,
		},
		{
			name:           "Невалидный JSON",
			body:           `{"email": "test@example.com"`, // Сломанный JSON
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Неверный формат запроса",
		},
		{
			name:           "Пустой email",
			body:           `{"email": "", "password": "password123"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Email и пароль не могут быть пустыми",
		},
		{
			name:           "Пустой пароль",
			body:           `{"email": "test@example.com", "password": ""}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Email и пароль не могут быть пустыми",
		},
		{
			name:            "Неизвестный email",
			body:            `{"email": "missing@example.com", "password": "password123"}`,
			mockExpected:    true,
			mockReturnError: services.ErrUserNotFound,
			expectedStatus:  http.StatusNotFound,
			expectedBody:    services.ErrUserNotFound.Error(),
		},
		{
			name:            "Неверный пароль",
			body:            `{"email": "test@example.com", "password": "wrongpassword"}`,
			mockExpected:    true,
			mockReturnError: services.ErrWrongPassword,
			expectedStatus:  http.StatusUnauthorized,
			expectedBody:    services.ErrWrongPassword.Error(),
		},
		{
			name:            "Внутренняя ошибка сервера",
			body:            `{"email": "err@example.com", "password": "password123"}`,
			mockExpected:    true,
			mockReturnError: errors.New("some internal error"),
			expectedStatus:  http.StatusInternalServerError,
			expectedBody:    "Внутренняя ошибка сервера",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockAuthService)
			h := handlers.NewAuthHandler(mockService)
			r := setupAuthRouter(h)

			if tt.mockExpected {
				mockService.On("SignIn", mock.Anything, mock.Anything, mock.Anything).
					Return(tt.mockReturnUser, tt.mockReturnToken, tt.mockReturnError).Once()
			}

			req := httptest.NewRequest(http.MethodPost, "/signin", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)

			// Хеш пароля никогда не попадает в ответ
			assert.NotContains(t, rr.Body.String(), "secret-hash")
			assert.NotContains(t, rr.Body.String(), "passwordHash")

			if tt.expectCookie {
				cookie := sessionCookie(rr)
				require.NotNil(t, cookie, "Ожидалась cookie сессии")
				assert.Equal(t, "fake-jwt-token", cookie.Value)
				assert.True(t, cookie.HttpOnly)
			} else {
				assert.Nil(t, sessionCookie(rr))
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_GoogleAuth(t *testing.T) {
	t.Run("Успешный федеративный вход", func(t *testing.T) {
		mockService := new(MockAuthService)
		h := handlers.NewAuthHandler(mockService)
		r := setupAuthRouter(h)

		user := &models.User{ID: 3, Username: "johndoe1a2b", Email: "john@example.com"}
		mockService.On("GoogleAuth", mock.Anything, "John Doe", "john@example.com", "https://img/photo.png").
			Return(user, "google-jwt-token", nil).Once()

		body := `{"name": "John Doe", "email": "john@example.com", "photo": "https://img/photo.png"}`
		req := httptest.NewRequest(http.MethodPost, "/google", strings.NewReader(body))
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp models.User
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, user.Username, resp.Username)

		cookie := sessionCookie(rr)
		require.NotNil(t, cookie)
		assert.Equal(t, "google-jwt-token", cookie.Value)

		mockService.AssertExpectations(t)
	})

	t.Run("Невалидный JSON", func(t *testing.T) {
		mockService := new(MockAuthService)
		h := handlers.NewAuthHandler(mockService)
		r := setupAuthRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/google", strings.NewReader(`{"name":`))
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Неверный формат запроса")
	})
}

func TestAuthHandler_SignOut(t *testing.T) {
	mockService := new(MockAuthService)
	h := handlers.NewAuthHandler(mockService)
	r := setupAuthRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/signout", nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Выход выполнен")

	// Cookie сессии сбрасывается
	cookie := sessionCookie(rr)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
