package reports

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"business-portal/internal/entities"
	"business-portal/internal/requests"
)

var staffReportHeaders = []interface{}{
	"Сотрудник", "Email", "Роль", "Активен",
	"Всего заявок", "Новые", "В работе", "Завершено", "Эффективность, %",
}

// StaffPerformanceXLSX собирает отчёт по эффективности сотрудников:
// строка на сотрудника, сводка считается проекцией по общей коллекции
// заявок.
func StaffPerformanceXLSX(employees []entities.Employee, items []entities.Request) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Сотрудники"
	f.SetSheetName("Sheet1", sheet)
	if err := f.SetSheetRow(sheet, "A1", &staffReportHeaders); err != nil {
		return nil, fmt.Errorf("запись заголовков отчёта: %w", err)
	}

	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "I1", style)

	for i, emp := range employees {
		stats := requests.ComputeStaffStats(items, emp.ID)
		roleName := ""
		if emp.Role != nil {
			roleName = emp.Role.Name
		}
		active := "нет"
		if emp.Active {
			active = "да"
		}

		row := []interface{}{
			emp.FullName(), emp.Email, roleName, active,
			stats.TotalCount, stats.NewCount, stats.InProgressCount,
			stats.CompletedCount, stats.Efficiency,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("запись строки отчёта: %w", err)
		}
	}

	f.SetColWidth(sheet, "A", "A", 35)
	f.SetColWidth(sheet, "B", "C", 25)
	f.SetColWidth(sheet, "E", "I", 16)

	return f, nil
}
