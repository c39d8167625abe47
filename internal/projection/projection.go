// Package projection — общий движок фильтрации, сортировки и пагинации
// списков в памяти. Коллекции портала (заявки, сотрудники) невелики и
// перечитываются целиком, поэтому проекция — чистая функция над срезом,
// без какого-либо собственного состояния.
package projection

import (
	"sort"
	"strings"
	"time"

	"business-portal/pkg/types"
)

// Fields описывает, как движок читает элемент: какие поля ищутся
// текстовым поиском, какие фильтруются по точному значению и по каким
// можно сортировать. Поле может состоять в нескольких ролях.
type Fields[T any] struct {
	Search   []func(T) string
	Filter   map[string]func(T) string
	SortText map[string]func(T) string
	SortTime map[string]func(T) time.Time
}

// Result — страница проекции.
type Result[T any] struct {
	PageItems  []T
	TotalCount int
	TotalPages int
}

// Pagination — метаданные результата в форме ответа API.
func (r Result[T]) Pagination(f types.Filter) types.Pagination {
	page := clampPage(f.Page, r.TotalPages)
	return types.Pagination{
		TotalCount: r.TotalCount,
		Page:       page,
		Limit:      pageSize(f.PageSize),
		TotalPages: r.TotalPages,
	}
}

// Project применяет поиск, фильтры, сортировку и страничное окно.
// Поиск регистронезависим, фильтры соединяются по И, значение
// types.FilterAll (или пустое) снимает ограничение. Сортировка
// стабильна: равные элементы сохраняют исходный порядок. Страницы
// нумеруются с единицы, выход за диапазон прижимается к границе.
func Project[T any](items []T, f types.Filter, fields Fields[T]) Result[T] {
	matched := make([]T, 0, len(items))
	for _, item := range items {
		if matches(item, f, fields) {
			matched = append(matched, item)
		}
	}

	sortItems(matched, f, fields)

	size := pageSize(f.PageSize)
	totalCount := len(matched)
	totalPages := (totalCount + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}

	page := clampPage(f.Page, totalPages)
	start := (page - 1) * size
	end := start + size
	if start > totalCount {
		start = totalCount
	}
	if end > totalCount {
		end = totalCount
	}

	return Result[T]{
		PageItems:  matched[start:end],
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}

func matches[T any](item T, f types.Filter, fields Fields[T]) bool {
	if search := strings.ToLower(strings.TrimSpace(f.Search)); search != "" {
		found := false
		for _, get := range fields.Search {
			if strings.Contains(strings.ToLower(get(item)), search) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	for field, want := range f.Filters {
		if want == "" || want == types.FilterAll {
			continue
		}
		get, ok := fields.Filter[field]
		if !ok {
			// неизвестное поле фильтра не отсекает ничего
			continue
		}
		if get(item) != want {
			return false
		}
	}
	return true
}

func sortItems[T any](items []T, f types.Filter, fields Fields[T]) {
	if f.SortField == "" {
		return
	}
	desc := f.SortDirection == "desc"

	if get, ok := fields.SortTime[f.SortField]; ok {
		sort.SliceStable(items, func(i, j int) bool {
			a, b := get(items[i]), get(items[j])
			if desc {
				return a.After(b)
			}
			return a.Before(b)
		})
		return
	}

	if get, ok := fields.SortText[f.SortField]; ok {
		sort.SliceStable(items, func(i, j int) bool {
			a, b := strings.ToLower(get(items[i])), strings.ToLower(get(items[j]))
			if desc {
				return a > b
			}
			return a < b
		})
	}
}

func pageSize(size int) int {
	if size <= 0 {
		return 10
	}
	return size
}

func clampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
