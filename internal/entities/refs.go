package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Справочники бэкенда: услуги, роли сотрудников, тарифы.
// Самостоятельной логики у них нет, только идентификатор и имя.

type Service struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt null.Time `json:"updated_at,omitempty"`
}

type Role struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt null.Time `json:"updated_at,omitempty"`
}

type Tariff struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt null.Time `json:"updated_at,omitempty"`
}
