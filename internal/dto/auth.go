package dto

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserSignupDTO struct {
	Name       string `json:"name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	MiddleName string `json:"middle_name,omitempty"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone,omitempty"`
	Password   string `json:"password" validate:"required,min=6"`
	Inn        string `json:"inn,omitempty" validate:"omitempty,numeric"`
	Snils      string `json:"snils,omitempty" validate:"omitempty,numeric"`
	TariffID   int64  `json:"tariff_id,omitempty" validate:"omitempty,gt=0"`
}

type EmployeeSignupDTO struct {
	Name       string `json:"name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	MiddleName string `json:"middle_name,omitempty"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	Active     bool   `json:"active,omitempty"`
	RoleID     int64  `json:"role_id" validate:"required,gt=0"`
}
