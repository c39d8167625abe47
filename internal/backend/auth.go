package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"business-portal/internal/dto"
	apperrors "business-portal/pkg/errors"
)

// LoginResult — сырой ответ логина. Форма записи user гетерогенна
// (клиент либо сотрудник), поэтому классификация отдана Auth Gateway,
// клиент отдаёт необработанный JSON.
type LoginResult struct {
	Token string          `json:"token"`
	User  json.RawMessage `json:"user"`
}

// Login обменивает пару email/пароль на токен. 401 бэкенда означает
// именно неверные учётные данные и приводится к ErrInvalidCredentials.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var result LoginResult
	err := c.do(ctx, http.MethodPost, "/pub/auth/login", dto.LoginDTO{
		Email:    email,
		Password: password,
	}, &result)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			return nil, fmt.Errorf("%w", apperrors.ErrInvalidCredentials)
		}
		return nil, err
	}
	if result.Token == "" {
		return nil, fmt.Errorf("%w: бэкенд вернул пустой токен", apperrors.ErrServer)
	}
	return &result, nil
}

// SignupUser регистрирует клиентскую учётную запись.
func (c *Client) SignupUser(ctx context.Context, payload dto.UserSignupDTO) error {
	return c.do(ctx, http.MethodPost, "/pub/users/signup", payload, nil)
}

// SignupEmployee регистрирует учётную запись сотрудника.
func (c *Client) SignupEmployee(ctx context.Context, payload dto.EmployeeSignupDTO) error {
	return c.do(ctx, http.MethodPost, "/pub/employee/signup", payload, nil)
}
