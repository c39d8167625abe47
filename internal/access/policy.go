package access

import "business-portal/internal/entities"

// Пути навигации портала. Фиксированы контрактом с фронтом.
const (
	LoginPath    = "/login"
	CustomerHome = "/dashboard"
	EmployeeHome = "/employee"
	ManagerHome  = "/manager"
)

// State — состояние аутентификации, видимое охраннику маршрутов.
// loading переходит в authenticated либо unauthenticated по завершении
// восстановления сессии; authenticated в unauthenticated — по выходу.
type State int

const (
	StateLoading State = iota
	StateUnauthenticated
	StateAuthenticated
)

type DecisionKind int

const (
	// Pending: решение ещё не принято, вызывающий рисует индикатор
	// загрузки, а не редирект.
	Pending DecisionKind = iota
	Allow
	Redirect
)

// Decision — вердикт охранника. Для Redirect заполнен Path;
// From несёт исходно запрошенный адрес как данные — автоматического
// возврата после входа ядро не делает.
type Decision struct {
	Kind DecisionKind
	Path string
	From string
}

// Authorize решает, пускать ли учётную запись на защищённый экран.
//
// required == "" означает "достаточно аутентификации". При несовпадении
// ролей сотрудник уходит на свой кабинет, все остальные — на клиентский
// дашборд; асимметрия (менеджер, не пущенный на экран сотрудника, тоже
// попадает на клиентский дашборд) сохранена из исходной системы.
func Authorize(state State, identity *entities.Identity, required entities.UserType, from string) Decision {
	if state == StateLoading {
		return Decision{Kind: Pending, From: from}
	}

	if state == StateUnauthenticated || identity == nil {
		return Decision{Kind: Redirect, Path: LoginPath, From: from}
	}

	if required == "" || identity.Type == required {
		return Decision{Kind: Allow, From: from}
	}

	fallback := CustomerHome
	if identity.Type == entities.TypeEmployee {
		fallback = EmployeeHome
	}
	return Decision{Kind: Redirect, Path: fallback, From: from}
}
