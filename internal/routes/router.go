package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"business-portal/internal/auth"
	"business-portal/internal/backend"
	"business-portal/internal/controllers"
	"business-portal/internal/entities"
	"business-portal/internal/requests"
	"business-portal/pkg/config"
	"business-portal/pkg/middleware"
)

// InitRouter собирает маршруты портала. Разделение повторяет бэкенд:
// /auth — публичная зона, /api — за восстановленной сессией.
func InitRouter(
	e *echo.Echo,
	api *backend.Client,
	gateway auth.GatewayInterface,
	requestService requests.ServiceInterface,
	cfg *config.Config,
	logger *zap.Logger,
) {
	sessionMW := middleware.NewSessionMiddleware(gateway, cfg.Session.CookieName, logger)
	e.Use(sessionMW.Load)

	authCtrl := controllers.NewAuthController(gateway, cfg.Session.CookieName, cfg.Session.TTL, logger)
	requestCtrl := controllers.NewRequestController(requestService, logger)
	catalogCtrl := controllers.NewCatalogController(api, requestService, logger)
	reportCtrl := controllers.NewReportController(api, requestService, logger)

	authGroup := e.Group("/auth")
	authGroup.POST("/login", authCtrl.Login)
	authGroup.POST("/logout", authCtrl.Logout)
	authGroup.POST("/signup", authCtrl.SignupUser)
	authGroup.POST("/signup-employee", authCtrl.SignupEmployee)
	authGroup.GET("/me", authCtrl.Me, sessionMW.Require(""))

	apiGroup := e.Group("/api", sessionMW.Require(""))

	apiGroup.GET("/requests", requestCtrl.List)
	apiGroup.GET("/requests/:id", requestCtrl.Get)
	apiGroup.POST("/requests", requestCtrl.Create, sessionMW.Require(entities.TypeCustomer))
	apiGroup.PATCH("/requests/:id/status", requestCtrl.UpdateStatus)
	apiGroup.PATCH("/requests/:id/employee", requestCtrl.Assign, sessionMW.Require(entities.TypeManager))

	apiGroup.GET("/services", catalogCtrl.Services)
	apiGroup.GET("/roles", catalogCtrl.Roles)
	apiGroup.GET("/tariffs", catalogCtrl.Tariffs)
	apiGroup.GET("/employees", catalogCtrl.Employees, sessionMW.Require(entities.TypeManager))
	apiGroup.GET("/employees/:id/stats", catalogCtrl.EmployeeStats, sessionMW.Require(entities.TypeManager))

	apiGroup.GET("/reports/staff.xlsx", reportCtrl.StaffPerformance, sessionMW.Require(entities.TypeManager))
}
