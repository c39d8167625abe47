package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// User — клиентская учётная запись (физическое или юридическое лицо).
type User struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	LastName   string      `json:"last_name"`
	MiddleName null.String `json:"middle_name,omitempty"`
	Email      string      `json:"email"`
	Phone      null.String `json:"phone,omitempty"`

	Inn   null.String `json:"inn,omitempty"`
	Snils null.String `json:"snils,omitempty"`

	TariffID null.Int64 `json:"tariff_id,omitempty"`
	Tariff   *Tariff    `json:"tariff,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt null.Time `json:"updated_at,omitempty"`
}

// Employee — учётная запись сотрудника. Отличается от клиентской
// обязательной ссылкой на роль и флагом активности.
type Employee struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	LastName   string      `json:"last_name"`
	MiddleName null.String `json:"middle_name,omitempty"`
	Email      string      `json:"email"`

	Active bool  `json:"active"`
	RoleID int64 `json:"role_id"`
	Role   *Role `json:"role,omitempty"`

	Services []Service `json:"services,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt null.Time `json:"updated_at,omitempty"`
}

// FullName — "Фамилия Имя Отчество" для таблиц и отчётов.
func (e Employee) FullName() string {
	name := e.LastName + " " + e.Name
	if e.MiddleName.Valid && e.MiddleName.String != "" {
		name += " " + e.MiddleName.String
	}
	return name
}

func (u User) FullName() string {
	name := u.LastName + " " + u.Name
	if u.MiddleName.Valid && u.MiddleName.String != "" {
		name += " " + u.MiddleName.String
	}
	return name
}
