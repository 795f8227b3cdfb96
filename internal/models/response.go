package models

// ErrorResponse — единый формат тела ответа при ошибке.
type ErrorResponse struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// NewErrorResponse создает тело ответа об ошибке.
func NewErrorResponse(statusCode int, message string) ErrorResponse {
	return ErrorResponse{
		Success:    false,
		StatusCode: statusCode,
		Message:    message,
	}
}

// MessageResponse — тело ответа с одним информационным сообщением.
type MessageResponse struct {
	Message string `json:"message"`
}

// ImageUploadResponse — тело ответа на загрузку изображения объявления.
type ImageUploadResponse struct {
	URL string `json:"url"`
}
