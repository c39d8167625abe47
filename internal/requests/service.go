package requests

import (
	"context"
	"fmt"
	"sync"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"business-portal/internal/backend"
	"business-portal/internal/dto"
	"business-portal/internal/entities"
	apperrors "business-portal/pkg/errors"
)

type ServiceInterface interface {
	Create(ctx context.Context, token string, payload dto.CreateRequestDTO) (*entities.Request, error)
	List(ctx context.Context, token string, identity *entities.Identity, filter backend.RequestFilter) ([]entities.Request, error)
	Get(ctx context.Context, token string, id int64) (*entities.Request, error)
	SetStatus(ctx context.Context, token string, id int64, status entities.Status) (*entities.Request, error)
	Assign(ctx context.Context, token string, id, employeeID int64) (*entities.Request, error)
}

// Service — машина жизненного цикла заявки поверх бэкенда.
//
// Кэш заявок сервис не держит: коллекции вызывающей стороны заменяются
// целиком при перечитывании. Единственное состояние здесь — пометки
// "на проверке", которым нет места в трёхзначном кодировании провода.
type Service struct {
	api    *backend.Client
	valid  *validator.Validate
	logger *zap.Logger

	// strict включает монотонную таблицу переходов. Выключено по
	// умолчанию: исходная система разрешала любой переход.
	strict bool

	mu     sync.Mutex
	review map[int64]struct{}
}

func NewService(api *backend.Client, valid *validator.Validate, strict bool, logger *zap.Logger) ServiceInterface {
	return &Service{
		api:    api,
		valid:  valid,
		logger: logger,
		strict: strict,
		review: make(map[int64]struct{}),
	}
}

// Create создаёт заявку. Невыбранная услуга — ошибка валидации до
// какого-либо сетевого вызова.
func (s *Service) Create(ctx context.Context, token string, payload dto.CreateRequestDTO) (*entities.Request, error) {
	if err := s.valid.Struct(payload); err != nil {
		return nil, fmt.Errorf("%w: не выбрана услуга", apperrors.ErrValidation)
	}

	desiredAt := null.TimeFromPtr(payload.DesiredAt)
	created, err := s.api.WithToken(token).CreateRequest(ctx, payload.ServiceID, desiredAt)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Создана заявка",
		zap.Int64("id", created.ID),
		zap.Int64("service_id", created.ServiceID),
	)
	return created, nil
}

// List возвращает заявки в области видимости учётной записи: клиент —
// свои, сотрудник — закреплённые за ним, менеджер — все. Поверх этого
// применяются явные серверные фильтры из filter.
func (s *Service) List(ctx context.Context, token string, identity *entities.Identity, filter backend.RequestFilter) ([]entities.Request, error) {
	if identity == nil {
		return nil, apperrors.ErrUnauthorized
	}

	switch identity.Type {
	case entities.TypeCustomer:
		filter.OwnerID = identity.ID
	case entities.TypeEmployee:
		filter.EmployeeID = identity.ID
	case entities.TypeManager:
		// без ограничений
	}

	items, err := s.api.WithToken(token).Requests(ctx, filter)
	if err != nil {
		return nil, err
	}
	return s.annotateReview(items), nil
}

func (s *Service) Get(ctx context.Context, token string, id int64) (*entities.Request, error) {
	item, err := s.api.WithToken(token).Request(ctx, id)
	if err != nil {
		return nil, err
	}
	s.annotateOne(item)
	return item, nil
}

// StrictTransitions — монотонная таблица переходов для строгого режима.
var StrictTransitions = map[entities.Status][]entities.Status{
	entities.StatusNew:        {entities.StatusInProgress},
	entities.StatusInProgress: {entities.StatusReview, entities.StatusCompleted},
	entities.StatusReview:     {entities.StatusCompleted},
	entities.StatusCompleted:  {},
}

// SetStatus переводит заявку в новый статус. Закрепление не меняет.
func (s *Service) SetStatus(ctx context.Context, token string, id int64, status entities.Status) (*entities.Request, error) {
	api := s.api.WithToken(token)

	if s.strict {
		current, err := api.Request(ctx, id)
		if err != nil {
			return nil, err
		}
		s.annotateOne(current)
		if !transitionAllowed(current.Status, status) {
			return nil, fmt.Errorf("%w: переход %s → %s запрещён",
				apperrors.ErrValidation, current.Status, status)
		}
	}

	updated, err := api.UpdateRequestStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	// Пометка "на проверке" живёт только на портале: на проводе этот
	// статус неотличим от "в работе".
	s.mu.Lock()
	if status == entities.StatusReview {
		s.review[id] = struct{}{}
	} else {
		delete(s.review, id)
	}
	s.mu.Unlock()

	s.annotateOne(updated)
	s.logger.Info("Статус заявки изменён",
		zap.Int64("id", id),
		zap.String("status", status.String()),
	)
	return updated, nil
}

func transitionAllowed(from, to entities.Status) bool {
	if from == to {
		return true
	}
	for _, allowed := range StrictTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Assign закрепляет заявку за сотрудником; нулевой employeeID снимает
// закрепление. Статус при этом не меняется.
func (s *Service) Assign(ctx context.Context, token string, id, employeeID int64) (*entities.Request, error) {
	var assignee null.Int64
	if employeeID > 0 {
		assignee.SetValid(employeeID)
	}

	updated, err := s.api.WithToken(token).AssignEmployee(ctx, id, assignee)
	if err != nil {
		return nil, err
	}

	s.annotateOne(updated)
	s.logger.Info("Закрепление заявки изменено",
		zap.Int64("id", id),
		zap.Int64("employee_id", employeeID),
	)
	return updated, nil
}

func (s *Service) annotateReview(items []entities.Request) []entities.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range items {
		if _, marked := s.review[items[i].ID]; marked && items[i].Status == entities.StatusInProgress {
			items[i].Status = entities.StatusReview
		}
	}
	return items
}

func (s *Service) annotateOne(item *entities.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, marked := s.review[item.ID]; marked && item.Status == entities.StatusInProgress {
		item.Status = entities.StatusReview
	}
}
