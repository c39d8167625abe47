package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"business-portal/internal/access"
	"business-portal/internal/auth"
	"business-portal/internal/entities"
	"business-portal/pkg/utils"
)

// SessionMiddleware восстанавливает сессию по cookie и прогоняет
// защищённые маршруты через политику доступа.
type SessionMiddleware struct {
	gateway    auth.GatewayInterface
	cookieName string
	logger     *zap.Logger
}

func NewSessionMiddleware(gateway auth.GatewayInterface, cookieName string, logger *zap.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		gateway:    gateway,
		cookieName: cookieName,
		logger:     logger,
	}
}

// Load кладёт идентификатор сессии, токен и учётную запись в контекст
// запроса. Отсутствие cookie или сессии не ошибка: запрос продолжается
// неаутентифицированным, решение принимает охранник маршрута.
func (m *SessionMiddleware) Load(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			return next(c)
		}

		snap, err := m.gateway.Resolve(c.Request().Context(), cookie.Value)
		if err != nil {
			m.logger.Error("SessionMiddleware: не удалось восстановить сессию", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}
		if snap == nil {
			return next(c)
		}

		ctx := utils.ContextWithSession(c.Request().Context(), cookie.Value, snap.Token, snap.Identity)
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// Require пропускает дальше только при вердикте Allow. Редирект
// отдаётся данными: фронт сам выполняет навигацию.
//
// required == "" требует лишь аутентификации.
func (m *SessionMiddleware) Require(required entities.UserType) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := utils.IdentityFromContext(c.Request().Context())

			state := access.StateAuthenticated
			if identity == nil {
				state = access.StateUnauthenticated
			}

			decision := access.Authorize(state, identity, required, c.Request().RequestURI)
			if decision.Kind == access.Allow {
				return next(c)
			}

			code := http.StatusForbidden
			if decision.Path == access.LoginPath {
				code = http.StatusUnauthorized
			}
			m.logger.Warn("Доступ отклонён",
				zap.String("uri", c.Request().RequestURI),
				zap.String("redirect", decision.Path),
			)
			return c.JSON(code, map[string]interface{}{
				"status":   false,
				"message":  "доступ запрещён",
				"redirect": decision.Path,
				"from":     decision.From,
			})
		}
	}
}
