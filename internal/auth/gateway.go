package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"business-portal/internal/backend"
	"business-portal/internal/dto"
	"business-portal/internal/entities"
	"business-portal/internal/session"
	apperrors "business-portal/pkg/errors"
)

type GatewayInterface interface {
	Login(ctx context.Context, sessionID string, payload dto.LoginDTO) (*entities.Identity, error)
	Logout(ctx context.Context, sessionID string) error
	Resolve(ctx context.Context, sessionID string) (*session.Snapshot, error)
	SignupUser(ctx context.Context, payload dto.UserSignupDTO) error
	SignupEmployee(ctx context.Context, payload dto.EmployeeSignupDTO) error
}

// Gateway обменивает учётные данные на токен бэкенда, нормализует
// гетерогенный ответ логина в Identity и сопровождает сессию.
type Gateway struct {
	api    *backend.Client
	store  session.Store
	logger *zap.Logger
	now    func() time.Time
}

func NewGateway(api *backend.Client, store session.Store, logger *zap.Logger) GatewayInterface {
	return &Gateway{
		api:    api,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Login выполняет вход. Снимок сессии записывается только после
// успешной классификации ответа: при любой ошибке состояние сессии
// остаётся прежним.
func (g *Gateway) Login(ctx context.Context, sessionID string, payload dto.LoginDTO) (*entities.Identity, error) {
	result, err := g.api.Login(ctx, payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			g.logger.Warn("Login: отказ бэкенда, неверные учётные данные", zap.String("email", payload.Email))
		} else {
			g.logger.Error("Login: обращение к бэкенду не удалось", zap.Error(err))
		}
		return nil, err
	}

	identity, err := ClassifyAccount(result.User)
	if err != nil {
		g.logger.Error("Login: не удалось классифицировать учётную запись", zap.Error(err))
		return nil, err
	}

	if identity.Type == entities.TypeEmployee {
		identity.Type = g.resolveStaffType(ctx, result.Token, identity)
	}

	if err := g.store.Set(ctx, sessionID, session.Snapshot{
		Token:    result.Token,
		Identity: identity,
	}); err != nil {
		return nil, err
	}

	g.logger.Info("Login: вход выполнен",
		zap.Int64("id", identity.ID),
		zap.String("type", string(identity.Type)),
	)
	return identity, nil
}

// resolveStaffType уточняет сотрудника до менеджера по справочнику
// ролей. Справочник недоступен — остаёмся сотрудником: различие
// разрешается по role_id вызывающей стороной, когда ей это нужно.
func (g *Gateway) resolveStaffType(ctx context.Context, token string, identity *entities.Identity) entities.UserType {
	if !identity.RoleID.Valid {
		return entities.TypeEmployee
	}
	roles, err := g.api.WithToken(token).Roles(ctx)
	if err != nil {
		g.logger.Warn("Login: справочник ролей недоступен, тип оставлен employee", zap.Error(err))
		return entities.TypeEmployee
	}
	return StaffTypeByRole(identity.RoleID.Int64, roles)
}

// StaffTypeByRole разрешает role_id сотрудника против справочника ролей.
func StaffTypeByRole(roleID int64, roles []entities.Role) entities.UserType {
	for _, role := range roles {
		if role.ID != roleID {
			continue
		}
		name := strings.ToLower(strings.TrimSpace(role.Name))
		if name == "менеджер" || name == "manager" {
			return entities.TypeManager
		}
		break
	}
	return entities.TypeEmployee
}

// Logout сбрасывает сессию. Идемпотентен: выход из несуществующей
// сессии — не ошибка.
func (g *Gateway) Logout(ctx context.Context, sessionID string) error {
	if err := g.store.Clear(ctx, sessionID); err != nil && !errors.Is(err, apperrors.ErrSessionNotFound) {
		return err
	}
	return nil
}

// Resolve восстанавливает снимок по идентификатору сессии.
// Отсутствующая сессия возвращается как (nil, nil) — это обычное
// неаутентифицированное состояние, не ошибка. Сессия с истёкшим
// токеном сбрасывается и тоже считается отсутствующей.
func (g *Gateway) Resolve(ctx context.Context, sessionID string) (*session.Snapshot, error) {
	if sessionID == "" {
		return nil, nil
	}
	snap, err := g.store.Get(ctx, sessionID)
	if errors.Is(err, apperrors.ErrSessionNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if !tokenAlive(snap.Token, g.now()) {
		g.logger.Info("Resolve: токен сессии истёк, сессия сброшена")
		_ = g.store.Clear(ctx, sessionID)
		return nil, nil
	}
	return snap, nil
}

func (g *Gateway) SignupUser(ctx context.Context, payload dto.UserSignupDTO) error {
	return g.api.SignupUser(ctx, payload)
}

func (g *Gateway) SignupEmployee(ctx context.Context, payload dto.EmployeeSignupDTO) error {
	return g.api.SignupEmployee(ctx, payload)
}

// ClassifyAccount структурно различает две непересекающиеся формы
// записи логина. Дискриминант — обязательные служебные поля (role_id),
// клиентскую форму выдают phone/inn/snils/tariff_id. Запись, подходящая
// под обе формы или ни под одну, — ошибка декодирования: портал не
// угадывает роль.
func ClassifyAccount(raw json.RawMessage) (*entities.Identity, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrAmbiguousAccount, err)
	}

	_, hasRole := probe["role_id"]
	hasCustomerField := false
	for _, field := range []string{"phone", "inn", "snils", "tariff_id"} {
		if _, ok := probe[field]; ok {
			hasCustomerField = true
			break
		}
	}

	switch {
	case hasRole && hasCustomerField:
		return nil, fmt.Errorf("%w: запись содержит и служебные, и клиентские поля", apperrors.ErrAmbiguousAccount)
	case hasRole:
		var emp entities.Employee
		if err := json.Unmarshal(raw, &emp); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrAmbiguousAccount, err)
		}
		return identityFromEmployee(emp), nil
	case hasCustomerField:
		var user entities.User
		if err := json.Unmarshal(raw, &user); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrAmbiguousAccount, err)
		}
		return identityFromUser(user), nil
	default:
		return nil, fmt.Errorf("%w: в записи нет ни служебных, ни клиентских полей", apperrors.ErrAmbiguousAccount)
	}
}

func identityFromUser(u entities.User) *entities.Identity {
	return &entities.Identity{
		ID:         u.ID,
		Name:       u.Name,
		LastName:   u.LastName,
		MiddleName: u.MiddleName,
		Email:      u.Email,
		Type:       entities.TypeCustomer,
		Phone:      u.Phone,
		Inn:        u.Inn,
		Snils:      u.Snils,
		TariffID:   u.TariffID,
	}
}

func identityFromEmployee(e entities.Employee) *entities.Identity {
	ident := &entities.Identity{
		ID:         e.ID,
		Name:       e.Name,
		LastName:   e.LastName,
		MiddleName: e.MiddleName,
		Email:      e.Email,
		Type:       entities.TypeEmployee,
	}
	ident.Active.SetValid(e.Active)
	ident.RoleID.SetValid(e.RoleID)
	return ident
}
