package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageFilter(t *testing.T) {
	assert.Equal(t, 0, PageFilter{Page: 1, PageSize: 10}.Offset())
	assert.Equal(t, 20, PageFilter{Page: 3, PageSize: 10}.Offset())
	assert.Equal(t, 20, PageFilter{}.Limit())
	assert.Equal(t, 100, PageFilter{PageSize: 1000}.Limit())
}

func TestSortFilter_OrderClause(t *testing.T) {
	allowed := map[string]string{"name": "name", "created_at": "created_at"}

	assert.Equal(t, "name ASC", SortFilter{SortBy: "name", SortOrder: "asc"}.OrderClause(allowed, "id DESC"))
	assert.Equal(t, "created_at DESC", SortFilter{SortBy: "created_at", SortOrder: "DESC"}.OrderClause(allowed, "id DESC"))
	assert.Equal(t, "id DESC", SortFilter{SortBy: "name; DROP TABLE"}.OrderClause(allowed, "id DESC"))
}

func TestNewBaseFilter(t *testing.T) {
	f := NewBaseFilter(WithPage(2, 5), WithSearch("  kraft "), WithSort("name", "asc"))

	assert.Equal(t, 2, f.Page)
	assert.Equal(t, 5, f.PageSize)
	assert.Equal(t, "kraft", f.Search)
	assert.False(t, f.IsDescending())
}
