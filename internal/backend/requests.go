package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/aarondl/null/v8"

	"business-portal/internal/entities"
)

// RequestFilter — серверные параметры выборки заявок. Нулевые значения
// опускаются; фильтрация сверх этого делается проекцией на стороне портала.
type RequestFilter struct {
	OwnerID    int64
	EmployeeID int64
	ServiceID  int64
	Status     *entities.Status
}

func (f RequestFilter) query() string {
	params := url.Values{}
	if f.OwnerID > 0 {
		params.Set("owner_id", strconv.FormatInt(f.OwnerID, 10))
	}
	if f.EmployeeID > 0 {
		params.Set("employee_id", strconv.FormatInt(f.EmployeeID, 10))
	}
	if f.ServiceID > 0 {
		params.Set("service_id", strconv.FormatInt(f.ServiceID, 10))
	}
	if f.Status != nil {
		params.Set("status", strconv.Itoa(int(f.Status.Wire())))
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}

func (c *Client) Requests(ctx context.Context, filter RequestFilter) ([]entities.Request, error) {
	var items []entities.Request
	if err := c.do(ctx, http.MethodGet, "/prot/request"+filter.query(), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) Request(ctx context.Context, id int64) (*entities.Request, error) {
	var item entities.Request
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/prot/request/%d", id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

type createRequestBody struct {
	ServiceID int64     `json:"service_id"`
	DesiredAt null.Time `json:"desired_at,omitempty"`
}

func (c *Client) CreateRequest(ctx context.Context, serviceID int64, desiredAt null.Time) (*entities.Request, error) {
	var item entities.Request
	body := createRequestBody{ServiceID: serviceID, DesiredAt: desiredAt}
	if err := c.do(ctx, http.MethodPost, "/prot/request", body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) UpdateRequestStatus(ctx context.Context, id int64, status entities.Status) (*entities.Request, error) {
	var item entities.Request
	body := map[string]int16{"status": status.Wire()}
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/prot/request/%d/status", id), body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// AssignEmployee закрепляет заявку за сотрудником. Невалидный employeeID
// снимает закрепление.
func (c *Client) AssignEmployee(ctx context.Context, id int64, employeeID null.Int64) (*entities.Request, error) {
	var item entities.Request
	body := map[string]null.Int64{"employee_id": employeeID}
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/prot/request/%d/employee", id), body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteRequest — возможность бэкенда, в жизненный цикл портала не входит.
func (c *Client) DeleteRequest(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/prot/request/%d", id), nil, nil)
}
