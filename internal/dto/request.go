package dto

import "time"

type CreateRequestDTO struct {
	ServiceID int64      `json:"service_id" validate:"required,gt=0"`
	DesiredAt *time.Time `json:"desired_at,omitempty"`
}

type UpdateStatusDTO struct {
	// Статус приходит именем из четырёхзначной модели интерфейса
	// (new/in-progress/review/completed), не кодом провода.
	Status string `json:"status" validate:"required"`
}

type AssignEmployeeDTO struct {
	// Нулевое значение снимает закрепление.
	EmployeeID int64 `json:"employee_id" validate:"gte=0"`
}
