package utils

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "business-portal/pkg/errors"
)

type HttpResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HttpResponse{
		Status:  true,
		Body:    body,
		Message: message,
	})
}

func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	code := apperrors.Status(err)
	if code >= 500 {
		logger.Error("Ошибка обработки запроса",
			zap.String("uri", ctx.Request().RequestURI),
			zap.Error(err),
		)
	}

	return ctx.JSON(code, &HttpResponse{
		Status:  false,
		Message: err.Error(),
	})
}
