package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"business-portal/internal/auth"
	"business-portal/internal/dto"
	"business-portal/internal/session"
	apperrors "business-portal/pkg/errors"
	"business-portal/pkg/utils"
)

type AuthController struct {
	gateway    auth.GatewayInterface
	cookieName string
	sessionTTL time.Duration
	logger     *zap.Logger
}

func NewAuthController(gateway auth.GatewayInterface, cookieName string, sessionTTL time.Duration, logger *zap.Logger) *AuthController {
	return &AuthController{
		gateway:    gateway,
		cookieName: cookieName,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

func (ctrl *AuthController) errorResponse(c echo.Context, err error) error {
	return utils.ErrorResponse(c, err, ctrl.logger)
}

func (ctrl *AuthController) Login(c echo.Context) error {
	var payload dto.LoginDTO
	if err := c.Bind(&payload); err != nil {
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("Неверный формат данных для входа"))
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	// Идентификатор сессии всегда выдаётся заново: вход не должен
	// продлевать чужую или старую сессию.
	sessionID := session.NewSessionID()
	identity, err := ctrl.gateway.Login(c.Request().Context(), sessionID, payload)
	if err != nil {
		ctrl.logger.Warn("Login: вход не выполнен", zap.String("email", payload.Email), zap.Error(err))
		return ctrl.errorResponse(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     ctrl.cookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(ctrl.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return utils.SuccessResponse(c, identity, "Авторизация прошла успешно", http.StatusOK)
}

func (ctrl *AuthController) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(ctrl.cookieName); err == nil && cookie.Value != "" {
		if err := ctrl.gateway.Logout(c.Request().Context(), cookie.Value); err != nil {
			return ctrl.errorResponse(c, err)
		}
	}

	// выход идемпотентен: cookie гасится в любом случае
	c.SetCookie(&http.Cookie{
		Name:     ctrl.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return utils.SuccessResponse(c, nil, "Вы успешно вышли из системы", http.StatusOK)
}

// Me возвращает учётную запись текущей сессии. Маршрут стоит за
// охранником, поэтому отсутствие записи здесь невозможно.
func (ctrl *AuthController) Me(c echo.Context) error {
	identity := utils.IdentityFromContext(c.Request().Context())
	return utils.SuccessResponse(c, identity, "", http.StatusOK)
}

func (ctrl *AuthController) SignupUser(c echo.Context) error {
	var payload dto.UserSignupDTO
	if err := c.Bind(&payload); err != nil {
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("Неверный формат данных регистрации"))
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	if err := ctrl.gateway.SignupUser(c.Request().Context(), payload); err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, nil, "Учётная запись создана", http.StatusCreated)
}

func (ctrl *AuthController) SignupEmployee(c echo.Context) error {
	var payload dto.EmployeeSignupDTO
	if err := c.Bind(&payload); err != nil {
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("Неверный формат данных регистрации"))
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	if err := ctrl.gateway.SignupEmployee(c.Request().Context(), payload); err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, nil, "Учётная запись сотрудника создана", http.StatusCreated)
}
