package session

import (
	"context"

	"github.com/google/uuid"

	"business-portal/internal/entities"
)

// Snapshot — состояние сессии: bearer-токен бэкенда и разрешённая
// по нему учётная запись. Токен и Identity выставляются и сбрасываются
// только вместе; токен без Identity — переходное состояние внутри
// логина, в хранилище оно не попадает.
type Snapshot struct {
	Token    string             `json:"token"`
	Identity *entities.Identity `json:"identity,omitempty"`
}

// Store — долговременное хранилище сессий портала.
//
// Get для отсутствующей сессии возвращает ErrSessionNotFound.
// Set записывает снимок атомарно. Clear идемпотентен.
type Store interface {
	Get(ctx context.Context, sessionID string) (*Snapshot, error)
	Set(ctx context.Context, sessionID string, snap Snapshot) error
	Clear(ctx context.Context, sessionID string) error
}

// NewSessionID выдаёт идентификатор новой браузерной сессии.
func NewSessionID() string {
	return uuid.NewString()
}
