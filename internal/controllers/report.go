package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"business-portal/internal/backend"
	"business-portal/internal/reports"
	"business-portal/internal/requests"
	"business-portal/pkg/utils"
)

type ReportController struct {
	api     *backend.Client
	service requests.ServiceInterface
	logger  *zap.Logger
}

func NewReportController(api *backend.Client, service requests.ServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{api: api, service: service, logger: logger}
}

// StaffPerformance выгружает XLSX-отчёт по эффективности сотрудников.
// Маршрут доступен только менеджеру, поэтому список заявок приходит
// без ограничений области видимости.
func (ctrl *ReportController) StaffPerformance(c echo.Context) error {
	ctx := c.Request().Context()
	token := utils.TokenFromContext(ctx)
	identity := utils.IdentityFromContext(ctx)

	employees, err := ctrl.api.WithToken(token).Employees(ctx)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	items, err := ctrl.service.List(ctx, token, identity, backend.RequestFilter{})
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	f, err := reports.StaffPerformanceXLSX(employees, items)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	fileName := fmt.Sprintf("staff_report_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response().Writer)
}
