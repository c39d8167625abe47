package backend

import (
	"context"
	"fmt"
	"net/http"

	"business-portal/internal/entities"
)

// Справочники и списки учётных записей.
// Пути повторяют фактическую маршрутизацию бэкенда, включая
// завершающие слэши у services и tariffs.

func (c *Client) Services(ctx context.Context) ([]entities.Service, error) {
	var items []entities.Service
	if err := c.do(ctx, http.MethodGet, "/prot/services/", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) Roles(ctx context.Context) ([]entities.Role, error) {
	var items []entities.Role
	if err := c.do(ctx, http.MethodGet, "/prot/roles", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) Tariffs(ctx context.Context) ([]entities.Tariff, error) {
	var items []entities.Tariff
	if err := c.do(ctx, http.MethodGet, "/prot/tariffs/", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) Users(ctx context.Context) ([]entities.User, error) {
	var items []entities.User
	if err := c.do(ctx, http.MethodGet, "/prot/users", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) Employees(ctx context.Context) ([]entities.Employee, error) {
	var items []entities.Employee
	if err := c.do(ctx, http.MethodGet, "/prot/employee", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) Employee(ctx context.Context, id int64) (*entities.Employee, error) {
	var item entities.Employee
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/prot/employee/%d", id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
