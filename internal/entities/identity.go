package entities

import "github.com/aarondl/null/v8"

// UserType — роль аутентифицированного принципала.
// Тип выводится из формы записи, которую вернул бэкенд при входе,
// и нигде отдельно не хранится: наличие служебных полей (role_id,
// active) означает сотрудника, клиентских (phone/inn/snils/tariff_id) —
// клиента. Менеджер среди сотрудников определяется по справочнику ролей.
type UserType string

const (
	TypeCustomer UserType = "user"
	TypeEmployee UserType = "employee"
	TypeManager  UserType = "manager"
)

// Identity — единая форма учётной записи после нормализации
// гетерогенного ответа логина.
type Identity struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	LastName   string      `json:"last_name"`
	MiddleName null.String `json:"middle_name,omitempty"`
	Email      string      `json:"email"`
	Type       UserType    `json:"type"`

	// Поля клиента
	Phone    null.String `json:"phone,omitempty"`
	Inn      null.String `json:"inn,omitempty"`
	Snils    null.String `json:"snils,omitempty"`
	TariffID null.Int64  `json:"tariff_id,omitempty"`

	// Поля сотрудника
	Active null.Bool  `json:"active,omitempty"`
	RoleID null.Int64 `json:"role_id,omitempty"`
}

func (i Identity) IsStaff() bool {
	return i.Type == TypeEmployee || i.Type == TypeManager
}

func (i Identity) FullName() string {
	name := i.LastName + " " + i.Name
	if i.MiddleName.Valid && i.MiddleName.String != "" {
		name += " " + i.MiddleName.String
	}
	return name
}
