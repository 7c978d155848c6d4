// Package view derives searchable, paginated table views from an immutable
// list snapshot. Filtering and pagination are pure functions; nothing here
// mutates the snapshot in place.
package view

import "strings"

const DefaultPageSize = 10

// State is the table control state taken from the request. A changed query
// is expected to arrive with Page reset to 1 by the caller.
type State struct {
	Query    string
	Page     int
	PageSize int
}

// Filter keeps the rows whose searchable fields contain term,
// case-insensitively. An empty term keeps the snapshot as is.
func Filter[T any](items []T, term string, fields func(T) []string) []T {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		for _, f := range fields(it) {
			if strings.Contains(strings.ToLower(f), term) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// Paginate slices a filtered list: start = (page-1)*pageSize, end =
// start+pageSize. Page is clamped to [1, ceil(len/pageSize)].
func Paginate[T any](items []T, page, pageSize int) (rows []T, currentPage, totalPages int) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	totalPages = (len(items) + pageSize - 1) / pageSize
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], page, totalPages
}

// Table is what a page template renders: the current rows plus the pager
// bookkeeping ("showing From to To of TotalRows").
type Table[T any] struct {
	Rows       []T
	Query      string
	Page       int
	PageSize   int
	TotalPages int
	TotalRows  int
	From       int
	To         int
}

func NewTable[T any](snapshot []T, st State, fields func(T) []string) Table[T] {
	filtered := Filter(snapshot, st.Query, fields)
	rows, page, totalPages := Paginate(filtered, st.Page, st.PageSize)
	pageSize := st.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	t := Table[T]{
		Rows:       rows,
		Query:      st.Query,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalRows:  len(filtered),
	}
	if len(rows) > 0 {
		t.From = (page-1)*pageSize + 1
		t.To = t.From + len(rows) - 1
	}
	return t
}

func (t Table[T]) Empty() bool    { return t.TotalRows == 0 }
func (t Table[T]) HasPrev() bool  { return t.Page > 1 }
func (t Table[T]) HasNext() bool  { return t.Page < t.TotalPages }
func (t Table[T]) PrevPage() int  { return t.Page - 1 }
func (t Table[T]) NextPage() int  { return t.Page + 1 }
