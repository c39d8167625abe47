package requests

import (
	"math"

	"business-portal/internal/entities"
)

// StaffStats — сводка по заявкам одного сотрудника.
// Эффективность — доля завершённых заявок в процентах,
// округлённая до целого; 0 при пустой выборке.
type StaffStats struct {
	TotalCount      int `json:"total_count"`
	NewCount        int `json:"new_count"`
	InProgressCount int `json:"in_progress_count"`
	CompletedCount  int `json:"completed_count"`
	Efficiency      int `json:"efficiency"`
}

// ComputeStaffStats — чистая проекция: пересчитывается из коллекции
// заявок без скрытого состояния. "На проверке" учитывается как
// "в работе" — так же, как на проводе.
func ComputeStaffStats(items []entities.Request, employeeID int64) StaffStats {
	var stats StaffStats
	for _, item := range items {
		if !item.AssignedTo(employeeID) {
			continue
		}
		stats.TotalCount++
		switch item.Status {
		case entities.StatusNew:
			stats.NewCount++
		case entities.StatusInProgress, entities.StatusReview:
			stats.InProgressCount++
		case entities.StatusCompleted:
			stats.CompletedCount++
		}
	}

	if stats.TotalCount > 0 {
		stats.Efficiency = int(math.Round(float64(stats.CompletedCount) / float64(stats.TotalCount) * 100))
	}
	return stats
}
