package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"business-portal/internal/backend"
	"business-portal/internal/requests"
	apperrors "business-portal/pkg/errors"
	"business-portal/pkg/utils"
)

// CatalogController отдаёт справочники и списки учётных записей,
// прокидывая их с бэкенда как есть.
type CatalogController struct {
	api     *backend.Client
	service requests.ServiceInterface
	logger  *zap.Logger
}

func NewCatalogController(api *backend.Client, service requests.ServiceInterface, logger *zap.Logger) *CatalogController {
	return &CatalogController{api: api, service: service, logger: logger}
}

func (ctrl *CatalogController) errorResponse(c echo.Context, err error) error {
	return utils.ErrorResponse(c, err, ctrl.logger)
}

func (ctrl *CatalogController) Services(c echo.Context) error {
	ctx := c.Request().Context()
	items, err := ctrl.api.WithToken(utils.TokenFromContext(ctx)).Services(ctx)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, items, "", http.StatusOK)
}

func (ctrl *CatalogController) Roles(c echo.Context) error {
	ctx := c.Request().Context()
	items, err := ctrl.api.WithToken(utils.TokenFromContext(ctx)).Roles(ctx)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, items, "", http.StatusOK)
}

func (ctrl *CatalogController) Tariffs(c echo.Context) error {
	ctx := c.Request().Context()
	items, err := ctrl.api.WithToken(utils.TokenFromContext(ctx)).Tariffs(ctx)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, items, "", http.StatusOK)
}

func (ctrl *CatalogController) Employees(c echo.Context) error {
	ctx := c.Request().Context()
	items, err := ctrl.api.WithToken(utils.TokenFromContext(ctx)).Employees(ctx)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, items, "", http.StatusOK)
}

// EmployeeStats — сводка по заявкам сотрудника для панели менеджера.
// Считается по полной коллекции заявок, без скрытого состояния.
func (ctrl *CatalogController) EmployeeStats(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("Некорректный идентификатор сотрудника"))
	}

	ctx := c.Request().Context()
	token := utils.TokenFromContext(ctx)

	if _, err := ctrl.api.WithToken(token).Employee(ctx, id); err != nil {
		return ctrl.errorResponse(c, err)
	}

	items, err := ctrl.service.List(ctx, token, utils.IdentityFromContext(ctx), backend.RequestFilter{EmployeeID: id})
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, requests.ComputeStaffStats(items, id), "", http.StatusOK)
}
