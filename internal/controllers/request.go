package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"business-portal/internal/backend"
	"business-portal/internal/dto"
	"business-portal/internal/entities"
	"business-portal/internal/projection"
	"business-portal/internal/requests"
	apperrors "business-portal/pkg/errors"
	"business-portal/pkg/utils"
)

type RequestController struct {
	service requests.ServiceInterface
	logger  *zap.Logger
}

func NewRequestController(service requests.ServiceInterface, logger *zap.Logger) *RequestController {
	return &RequestController{service: service, logger: logger}
}

func (ctrl *RequestController) errorResponse(c echo.Context, err error) error {
	return utils.ErrorResponse(c, err, ctrl.logger)
}

// requestFields — словарь проекции списка заявок: что ищется, что
// фильтруется, по чему сортируется.
func requestFields() projection.Fields[entities.Request] {
	clientName := func(r entities.Request) string {
		if r.User == nil {
			return ""
		}
		return r.User.FullName()
	}
	clientEmail := func(r entities.Request) string {
		if r.User == nil {
			return ""
		}
		return r.User.Email
	}
	serviceName := func(r entities.Request) string {
		if r.Service == nil {
			return ""
		}
		return r.Service.Name
	}

	return projection.Fields[entities.Request]{
		Search: []func(entities.Request) string{clientName, clientEmail, serviceName},
		Filter: map[string]func(entities.Request) string{
			"status": func(r entities.Request) string { return r.Status.String() },
			"service_id": func(r entities.Request) string {
				return strconv.FormatInt(r.ServiceID, 10)
			},
			"assigned": func(r entities.Request) string {
				if r.Assigned() {
					return "assigned"
				}
				return "unassigned"
			},
		},
		SortText: map[string]func(entities.Request) string{
			"client":  clientName,
			"service": serviceName,
			"status":  func(r entities.Request) string { return r.Status.String() },
		},
		SortTime: map[string]func(entities.Request) time.Time{
			"created_at": func(r entities.Request) time.Time { return r.CreatedAt },
			"desired_at": func(r entities.Request) time.Time { return r.DesiredAt.Time },
		},
	}
}

// List отдаёт страницу заявок в области видимости текущей учётной
// записи. Коллекция перечитывается у бэкенда целиком, проекция
// считается на портале.
func (ctrl *RequestController) List(c echo.Context) error {
	ctx := c.Request().Context()
	identity := utils.IdentityFromContext(ctx)
	token := utils.TokenFromContext(ctx)

	items, err := ctrl.service.List(ctx, token, identity, backend.RequestFilter{})
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	filter := utils.ParseFilter(c.QueryParams())
	result := projection.Project(items, filter, requestFields())

	return utils.SuccessResponse(c, map[string]interface{}{
		"items":      result.PageItems,
		"pagination": result.Pagination(filter),
	}, "", http.StatusOK)
}

func (ctrl *RequestController) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("Некорректный идентификатор заявки"))
	}

	ctx := c.Request().Context()
	item, err := ctrl.service.Get(ctx, utils.TokenFromContext(ctx), id)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, item, "", http.StatusOK)
}

func (ctrl *RequestController) Create(c echo.Context) error {
	var payload dto.CreateRequestDTO
	if err := c.Bind(&payload); err != nil {
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("Неверный формат данных заявки"))
	}

	ctx := c.Request().Context()
	created, err := ctrl.service.Create(ctx, utils.TokenFromContext(ctx), payload)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, created, "Заявка создана", http.StatusCreated)
}

func (ctrl *RequestController) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("Некорректный идентификатор заявки"))
	}

	var payload dto.UpdateStatusDTO
	if err := c.Bind(&payload); err != nil {
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("Неверный формат данных статуса"))
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	status, err := entities.ParseStatus(payload.Status)
	if err != nil {
		return ctrl.errorResponse(c, apperrors.NewBadRequestError(err.Error()))
	}

	ctx := c.Request().Context()
	updated, err := ctrl.service.SetStatus(ctx, utils.TokenFromContext(ctx), id, status)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, updated, "Статус заявки обновлён", http.StatusOK)
}

func (ctrl *RequestController) Assign(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("Некорректный идентификатор заявки"))
	}

	var payload dto.AssignEmployeeDTO
	if err := c.Bind(&payload); err != nil {
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("Неверный формат данных закрепления"))
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	ctx := c.Request().Context()
	updated, err := ctrl.service.Assign(ctx, utils.TokenFromContext(ctx), id, payload.EmployeeID)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, updated, "Закрепление заявки обновлено", http.StatusOK)
}
