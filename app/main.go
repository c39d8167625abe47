package main

import (
	"context"
	"net/http"

	validator "github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"business-portal/internal/auth"
	"business-portal/internal/backend"
	"business-portal/internal/requests"
	"business-portal/internal/routes"
	"business-portal/internal/session"
	"business-portal/pkg/config"
	apperrors "business-portal/pkg/errors"
	applogger "business-portal/pkg/logger"
	"business-portal/pkg/utils"
)

func main() {
	e := echo.New()
	logger := applogger.NewLogger()
	defer logger.Sync()

	cfg := config.New()

	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("Паника при обработке запроса",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Внутренняя ошибка сервера", err)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
		ExposeHeaders:    []string{"Content-Disposition"},
	}))

	v := validator.New()
	e.Validator = utils.NewValidator(v)

	// Хранилище сессий: Redis, если доступен, иначе файловый снимок
	// (dev-режим одного пользователя).
	var store session.Store
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logger.Warn("Redis недоступен, сессии хранятся в файле",
			zap.String("address", cfg.Redis.Address),
			zap.Error(err),
		)
		store = session.NewFileStore(cfg.Session.FilePath)
	} else {
		store = session.NewRedisStore(redisClient, cfg.Session.TTL)
	}

	api := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, logger)
	gateway := auth.NewGateway(api, store, logger)
	requestService := requests.NewService(api, v, cfg.Requests.StrictStatus, logger)

	routes.InitRouter(e, api, gateway, requestService, cfg, logger)

	logger.Info("Портал запущен",
		zap.String("addr", cfg.Server.Addr),
		zap.String("backend", cfg.Backend.BaseURL),
	)
	if err := e.Start(cfg.Server.Addr); err != nil {
		logger.Fatal("Ошибка запуска сервера", zap.Error(err))
	}
}
