package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilter_Defaults(t *testing.T) {
	f := ParseFilter(url.Values{})

	assert.Equal(t, 1, f.Page)
	assert.Equal(t, DefaultPageSize, f.PageSize)
	assert.Equal(t, "asc", f.SortDirection)
	assert.Empty(t, f.Filters)
}

func TestParseFilter_FullQuery(t *testing.T) {
	values, err := url.ParseQuery("search=Иван&sort=created_at&dir=desc&page=3&limit=50&filter[status]=new&filter[assigned]=unassigned")
	assert.NoError(t, err)

	f := ParseFilter(values)

	assert.Equal(t, "Иван", f.Search)
	assert.Equal(t, "created_at", f.SortField)
	assert.Equal(t, "desc", f.SortDirection)
	assert.Equal(t, 3, f.Page)
	assert.Equal(t, 50, f.PageSize)
	assert.Equal(t, "new", f.Filters["status"])
	assert.Equal(t, "unassigned", f.Filters["assigned"])
}

func TestParseFilter_RejectsUnknownPageSize(t *testing.T) {
	f := ParseFilter(url.Values{"limit": {"37"}, "page": {"-1"}})

	// неразрешённый размер страницы и отрицательная страница
	// заменяются значениями по умолчанию
	assert.Equal(t, DefaultPageSize, f.PageSize)
	assert.Equal(t, 1, f.Page)
}
