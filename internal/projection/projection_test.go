package projection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"business-portal/pkg/types"
)

type row struct {
	Name    string
	Email   string
	Status  string
	Created time.Time
}

func rowFields() Fields[row] {
	return Fields[row]{
		Search: []func(row) string{
			func(r row) string { return r.Name },
			func(r row) string { return r.Email },
		},
		Filter: map[string]func(row) string{
			"status": func(r row) string { return r.Status },
		},
		SortText: map[string]func(row) string{
			"name": func(r row) string { return r.Name },
		},
		SortTime: map[string]func(row) time.Time{
			"created_at": func(r row) time.Time { return r.Created },
		},
	}
}

func sampleRows() []row {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return []row{
		{Name: "Иванов Иван", Email: "ivanov@example.com", Status: "new", Created: base},
		{Name: "Петров Пётр", Email: "petrov@example.com", Status: "in-progress", Created: base.Add(24 * time.Hour)},
		{Name: "Сидорова Анна", Email: "sidorova@example.com", Status: "new", Created: base.Add(48 * time.Hour)},
		{Name: "Иванова Мария", Email: "m.ivanova@example.com", Status: "completed", Created: base.Add(72 * time.Hour)},
	}
}

func TestProject_SearchCaseInsensitive(t *testing.T) {
	result := Project(sampleRows(), types.Filter{Search: "ИВАН", Page: 1, PageSize: 10}, rowFields())

	require.Len(t, result.PageItems, 2)
	assert.Equal(t, "Иванов Иван", result.PageItems[0].Name)
	assert.Equal(t, "Иванова Мария", result.PageItems[1].Name)
}

func TestProject_FilterAllSentinel(t *testing.T) {
	// "all" означает отсутствие ограничения
	result := Project(sampleRows(), types.Filter{
		Filters:  map[string]string{"status": types.FilterAll},
		Page:     1,
		PageSize: 10,
	}, rowFields())

	assert.Equal(t, 4, result.TotalCount)
}

func TestProject_FiltersAreANDed(t *testing.T) {
	result := Project(sampleRows(), types.Filter{
		Search:   "иван",
		Filters:  map[string]string{"status": "new"},
		Page:     1,
		PageSize: 10,
	}, rowFields())

	require.Len(t, result.PageItems, 1)
	assert.Equal(t, "Иванов Иван", result.PageItems[0].Name)
}

func TestProject_SortByDateDesc(t *testing.T) {
	result := Project(sampleRows(), types.Filter{
		SortField:     "created_at",
		SortDirection: "desc",
		Page:          1,
		PageSize:      10,
	}, rowFields())

	require.Len(t, result.PageItems, 4)
	assert.Equal(t, "Иванова Мария", result.PageItems[0].Name)
	assert.Equal(t, "Иванов Иван", result.PageItems[3].Name)
}

func TestProject_StableSortKeepsInputOrder(t *testing.T) {
	items := []row{
		{Name: "Б", Status: "new", Created: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{Name: "А", Status: "new", Created: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	// одинаковые даты: исходный порядок не меняется
	result := Project(items, types.Filter{
		SortField:     "created_at",
		SortDirection: "asc",
		Page:          1,
		PageSize:      10,
	}, rowFields())

	require.Len(t, result.PageItems, 2)
	assert.Equal(t, "Б", result.PageItems[0].Name)
	assert.Equal(t, "А", result.PageItems[1].Name)
}

func TestProject_Idempotent(t *testing.T) {
	filter := types.Filter{
		Search:        "иван",
		SortField:     "created_at",
		SortDirection: "desc",
		Page:          1,
		PageSize:      10,
	}

	first := Project(sampleRows(), filter, rowFields())
	second := Project(sampleRows(), filter, rowFields())

	assert.Equal(t, first.PageItems, second.PageItems)
	assert.Equal(t, first.TotalCount, second.TotalCount)
}

func TestProject_PaginationInvariant(t *testing.T) {
	// сумма элементов по всем страницам равна числу подошедших
	filter := types.Filter{Filters: map[string]string{"status": "new"}, PageSize: 1}

	probe := Project(sampleRows(), filter, rowFields())
	total := 0
	for page := 1; page <= probe.TotalPages; page++ {
		filter.Page = page
		total += len(Project(sampleRows(), filter, rowFields()).PageItems)
	}

	assert.Equal(t, probe.TotalCount, total)
	assert.Equal(t, 2, total)
}

func TestProject_PageClamping(t *testing.T) {
	result := Project(sampleRows(), types.Filter{Page: 99, PageSize: 10}, rowFields())
	require.Len(t, result.PageItems, 4)

	result = Project(sampleRows(), types.Filter{Page: -5, PageSize: 10}, rowFields())
	require.Len(t, result.PageItems, 4)
}

func TestProject_EmptyInput(t *testing.T) {
	result := Project(nil, types.Filter{Page: 1, PageSize: 10}, rowFields())

	assert.Empty(t, result.PageItems)
	assert.Equal(t, 0, result.TotalCount)
	assert.Equal(t, 1, result.TotalPages)
}

func TestProject_NewestMatchFirstOnSmallPage(t *testing.T) {
	// две подходящие записи с разными датами, страница в один элемент:
	// первой приходит более новая
	result := Project(sampleRows(), types.Filter{
		Search:        "Иван",
		Filters:       map[string]string{"status": types.FilterAll},
		SortField:     "created_at",
		SortDirection: "desc",
		Page:          1,
		PageSize:      1,
	}, rowFields())

	require.Len(t, result.PageItems, 1)
	assert.Equal(t, "Иванова Мария", result.PageItems[0].Name)
	assert.Equal(t, 2, result.TotalCount)
	assert.Equal(t, 2, result.TotalPages)
}
