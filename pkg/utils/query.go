package utils

import (
	"net/url"
	"strconv"
	"strings"

	"business-portal/pkg/types"
)

const DefaultPageSize = 10

// Размеры страниц, которые отдаёт интерфейс таблиц.
var allowedPageSizes = map[int]struct{}{10: {}, 25: {}, 50: {}, 100: {}, 200: {}}

// ParseFilter разбирает query-параметры списка в types.Filter.
// Неизвестные значения молча заменяются значениями по умолчанию:
// ошибаться в параметрах пагинации не считается ошибкой запроса.
func ParseFilter(values url.Values) types.Filter {
	f := types.Filter{
		Search:        strings.TrimSpace(values.Get("search")),
		SortField:     values.Get("sort"),
		SortDirection: values.Get("dir"),
		Page:          1,
		PageSize:      DefaultPageSize,
		Filters:       map[string]string{},
	}

	if f.SortDirection != "asc" && f.SortDirection != "desc" {
		f.SortDirection = "asc"
	}

	if pageStr := values.Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			f.Page = p
		}
	}

	if limitStr := values.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil {
			if _, ok := allowedPageSizes[l]; ok {
				f.PageSize = l
			}
		}
	}

	// filter[field]=value
	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}
		if strings.HasPrefix(key, "filter[") && strings.HasSuffix(key, "]") {
			field := key[len("filter[") : len(key)-1]
			if field != "" {
				f.Filters[field] = vals[0]
			}
		}
	}

	return f
}
