package types

// Filter описывает параметры проекции списка: поиск, категориальные
// фильтры, сортировка и страница.
//
// /api/requests?search=Иван&filter[status]=new&sort=created_at&dir=desc&page=1&limit=25
type Filter struct {
	Search        string            `json:"search,omitempty"`
	Filters       map[string]string `json:"filter,omitempty"`
	SortField     string            `json:"sort,omitempty"`
	SortDirection string            `json:"dir,omitempty"`
	Page          int               `json:"page"`
	PageSize      int               `json:"limit"`
}

// FilterAll — значение-заглушка "фильтр не задан".
const FilterAll = "all"

// Pagination — метаданные страницы в ответах списков.
type Pagination struct {
	TotalCount int `json:"total_count"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"total_pages"`
}
