package services

import "errors"

// Кастомные ошибки сервисного слоя. Обработчики HTTP сопоставляют их
// со статус-кодами через errors.Is.
var (
	ErrUserNotFound    = errors.New("пользователь не найден")
	ErrWrongPassword   = errors.New("неверный пароль")
	ErrUsernameTaken   = errors.New("имя пользователя уже занято")
	ErrEmailTaken      = errors.New("email уже занят")
	ErrListingNotFound = errors.New("объявление не найдено")
	// ErrNotOwner — вызывающий не владеет ресурсом. Исторически
	// отдаётся как 401, а не 403 (унаследовано от исходного API).
	ErrNotOwner = errors.New("операция доступна только владельцу")
	// ErrValidation оборачивает ошибки проверки входных данных (400).
	ErrValidation = errors.New("некорректные данные")
)

// authorize проверяет, что вызывающий владеет ресурсом.
// Точное равенство идентификаторов, без ролей и административных обходов.
func authorize(callerID, ownerID int64) error {
	if callerID != ownerID {
		return ErrNotOwner
	}
	return nil
}
