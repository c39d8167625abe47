package entities

import (
	"encoding/json"
	"fmt"
)

// Status — жизненный цикл заявки, как его видят сотрудники и менеджеры.
//
// Бэкенд хранит компактный порядковый код {0,1,2}; состояние "на проверке"
// существует только на стороне портала и на проводе кодируется как
// "в работе". Обратное преобразование "на проверке" не порождает никогда —
// пометка восстанавливается аннотацией в lifecycle-менеджере.
type Status int

const (
	StatusNew Status = iota
	StatusInProgress
	StatusReview
	StatusCompleted
)

const (
	wireNew        int16 = 0
	wireInProgress int16 = 1
	wireCompleted  int16 = 2
)

var statusNames = map[Status]string{
	StatusNew:        "new",
	StatusInProgress: "in-progress",
	StatusReview:     "review",
	StatusCompleted:  "completed",
}

var statusLabels = map[Status]string{
	StatusNew:        "Новая",
	StatusInProgress: "В работе",
	StatusReview:     "На проверке",
	StatusCompleted:  "Завершена",
}

func (s Status) String() string { return statusNames[s] }

// Label — подпись статуса для отчётов.
func (s Status) Label() string { return statusLabels[s] }

func ParseStatus(name string) (Status, error) {
	for st, n := range statusNames {
		if n == name {
			return st, nil
		}
	}
	return 0, fmt.Errorf("неизвестный статус заявки: %q", name)
}

// Wire возвращает код статуса для бэкенда.
func (s Status) Wire() int16 {
	switch s {
	case StatusNew:
		return wireNew
	case StatusCompleted:
		return wireCompleted
	default:
		// in-progress и review неразличимы на проводе
		return wireInProgress
	}
}

// StatusFromWire декодирует код бэкенда. Неизвестный код — ошибка
// декодирования, а не догадка.
func StatusFromWire(code int16) (Status, error) {
	switch code {
	case wireNew:
		return StatusNew, nil
	case wireInProgress:
		return StatusInProgress, nil
	case wireCompleted:
		return StatusCompleted, nil
	default:
		return 0, fmt.Errorf("неизвестный код статуса заявки: %d", code)
	}
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Wire())
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var code int16
	if err := json.Unmarshal(data, &code); err != nil {
		return err
	}
	decoded, err := StatusFromWire(code)
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}
