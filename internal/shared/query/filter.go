// Package query holds list filters shared by repositories.
package query

import "strings"

type PageFilter struct {
	Page     int
	PageSize int
}

func (f PageFilter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (f.Page - 1) * f.Limit()
}

func (f PageFilter) Limit() int {
	if f.PageSize <= 0 {
		return 20
	}
	if f.PageSize > 100 {
		return 100
	}
	return f.PageSize
}

type SortFilter struct {
	SortBy    string
	SortOrder string
}

func (f SortFilter) IsDescending() bool {
	return strings.EqualFold(f.SortOrder, "desc")
}

// OrderClause builds "column ASC|DESC" when SortBy is one of allowed.
// Falls back to fallback for unknown or empty columns.
func (f SortFilter) OrderClause(allowed map[string]string, fallback string) string {
	column, ok := allowed[f.SortBy]
	if !ok {
		return fallback
	}
	if f.IsDescending() {
		return column + " DESC"
	}
	return column + " ASC"
}

type BaseFilter struct {
	PageFilter
	SortFilter
	Search string
}

type FilterOption func(*BaseFilter)

func WithPage(page, pageSize int) FilterOption {
	return func(f *BaseFilter) {
		f.Page = page
		f.PageSize = pageSize
	}
}

func WithSort(sortBy, sortOrder string) FilterOption {
	return func(f *BaseFilter) {
		f.SortBy = sortBy
		f.SortOrder = sortOrder
	}
}

func WithSearch(search string) FilterOption {
	return func(f *BaseFilter) {
		f.Search = strings.TrimSpace(search)
	}
}

func NewBaseFilter(opts ...FilterOption) BaseFilter {
	f := BaseFilter{
		PageFilter: PageFilter{
			Page:     1,
			PageSize: 20,
		},
		SortFilter: SortFilter{
			SortOrder: "desc",
		},
	}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}
