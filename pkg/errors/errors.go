package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Таксономия ошибок портала. Ошибки бэкенда-коллаборатора приводятся
// к этим значениям в internal/backend, дальше по коду сравнение только
// через errors.Is.
var (
	// Аутентификация и сессия
	ErrInvalidCredentials = fmt.Errorf("неверные учётные данные")
	ErrUnauthorized       = fmt.Errorf("неавторизован")
	ErrForbidden          = fmt.Errorf("доступ запрещён")
	ErrTokenExpired       = fmt.Errorf("срок действия токена истёк")
	ErrSessionNotFound    = fmt.Errorf("сессия не найдена")
	ErrAmbiguousAccount   = fmt.Errorf("не удалось определить тип учётной записи")

	// Домен
	ErrNotFound   = fmt.Errorf("запись не найдена")
	ErrValidation = fmt.Errorf("некорректные данные запроса")

	// Транспорт
	ErrNetwork = fmt.Errorf("сервис временно недоступен")
	ErrServer  = fmt.Errorf("внутренняя ошибка сервера")
)

// HttpError несёт статус ответа вместе с сообщением для пользователя.
type HttpError struct {
	Code    int
	Message string
	Err     error
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err}
}

func NewBadRequestError(message string) *HttpError {
	return NewHttpError(http.StatusBadRequest, message, ErrValidation)
}

func NewNotFoundError(message string) *HttpError {
	return NewHttpError(http.StatusNotFound, message, ErrNotFound)
}

func NewUnauthorizedError(message string) *HttpError {
	return NewHttpError(http.StatusUnauthorized, message, ErrUnauthorized)
}

var statusByError = map[error]int{
	ErrInvalidCredentials: http.StatusUnauthorized,
	ErrUnauthorized:       http.StatusUnauthorized,
	ErrTokenExpired:       http.StatusUnauthorized,
	ErrSessionNotFound:    http.StatusUnauthorized,
	ErrForbidden:          http.StatusForbidden,
	ErrAmbiguousAccount:   http.StatusBadGateway,
	ErrNotFound:           http.StatusNotFound,
	ErrValidation:         http.StatusBadRequest,
	ErrNetwork:            http.StatusBadGateway,
	ErrServer:             http.StatusBadGateway,
}

// Status возвращает HTTP-статус, соответствующий ошибке.
func Status(err error) int {
	var httpErr *HttpError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	for sentinel, code := range statusByError {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return http.StatusInternalServerError
}
