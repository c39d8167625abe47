package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Request — заявка клиента на выполнение услуги.
//
// Инварианты: непривязанная заявка не ссылается на сотрудника;
// у завершённой заявки, если бэкенд отслеживает закрытие, выставлен
// closed_at. Заявки из интерфейса не удаляются — удаление существует
// как возможность бэкенда и в жизненный цикл не входит.
type Request struct {
	ID int64 `json:"id"`

	OwnerID int64 `json:"owner_id"`
	User    *User `json:"user,omitempty"`

	ServiceID int64    `json:"service_id"`
	Service   *Service `json:"service,omitempty"`

	EmployeeID null.Int64 `json:"employee_id,omitempty"`
	Employee   *Employee  `json:"employee,omitempty"`

	Status Status `json:"status"`

	DesiredAt null.Time `json:"desired_at,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt null.Time `json:"updated_at,omitempty"`
	ClosedAt  null.Time `json:"closed_at,omitempty"`
}

// Assigned сообщает, закреплена ли заявка за сотрудником.
func (r Request) Assigned() bool {
	return r.EmployeeID.Valid && r.EmployeeID.Int64 > 0
}

// AssignedTo проверяет закрепление за конкретным сотрудником.
func (r Request) AssignedTo(employeeID int64) bool {
	return r.Assigned() && r.EmployeeID.Int64 == employeeID
}
