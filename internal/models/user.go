package models

import "time"

// DefaultAvatarURL — аватар по умолчанию для пользователей,
// зарегистрированных без фото (как при обычной регистрации).
const DefaultAvatarURL = "https://cdn-icons-png.flaticon.com/512/149/149071.png"

// User представляет пользователя системы.
// Тэги `db` используются для маппинга с полями БД с помощью sqlx.
// Тэги `json` используются для (де)сериализации JSON.
type User struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"` // Не отправляем хеш пароля в JSON
	Avatar       string    `db:"avatar" json:"avatar"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// SignUpRequest представляет тело запроса на регистрацию.
type SignUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInRequest представляет тело запроса на вход.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GoogleAuthRequest представляет тело запроса на федеративный вход
// (данные приходят от внешнего провайдера идентификации).
type GoogleAuthRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Photo string `json:"photo"`
}

// UserUpdate содержит разрешённый набор изменяемых полей профиля.
// Пустые строки означают "поле не менять".
type UserUpdate struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"` // Открытый пароль, будет захеширован сервисом
	Avatar   string `json:"avatar"`
}
