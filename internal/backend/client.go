package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	apperrors "business-portal/pkg/errors"
)

// Client — типизированный клиент REST-бэкенда документов.
//
// Бэкенд — внешний коллаборатор: клиент не несёт доменной логики,
// только прикрепляет bearer-токен, сериализует тела и приводит
// не-2xx ответы к таксономии ошибок портала.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
	token   string
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// WithToken возвращает копию клиента, привязанную к токену сессии.
// Пустой токен означает анонимный вызов: заголовок Authorization
// не отправляется, отказ — забота сервера.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// apiError — форма тела ошибки бэкенда.
type apiError struct {
	Error     string `json:"error"`
	Timestamp string `json:"timestamp,omitempty"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("сериализация тела запроса: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("построение запроса: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("Бэкенд недоступен",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %v", apperrors.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapError(resp, method, path)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	// 201 без тела — нормальный ответ на signup
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: чтение ответа: %v", apperrors.ErrNetwork, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("декодирование ответа %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) mapError(resp *http.Response, method, path string) error {
	var body apiError
	// тело ошибки может отсутствовать или быть не JSON — это не фатально
	_ = json.NewDecoder(resp.Body).Decode(&body)
	message := body.Error
	if message == "" {
		message = fmt.Sprintf("HTTP %d", resp.StatusCode)
	}

	c.logger.Debug("Бэкенд вернул ошибку",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("code", resp.StatusCode),
		zap.String("error", message),
	)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", apperrors.ErrUnauthorized, message)
	case resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", apperrors.ErrForbidden, message)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, message)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, message)
	default:
		return fmt.Errorf("%w: %s", apperrors.ErrServer, message)
	}
}
