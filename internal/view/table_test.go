package view

import (
	"fmt"
	"testing"

	"github.com/avelar/printdesk/internal/domain"
)

func numbered(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginate(t *testing.T) {
	items := numbered(23)

	rows, page, total := Paginate(items, 1, 10)
	if total != 3 || page != 1 || len(rows) != 10 || rows[0] != 1 || rows[9] != 10 {
		t.Fatalf("page 1: rows=%v page=%d total=%d", rows, page, total)
	}

	rows, page, _ = Paginate(items, 3, 10)
	if page != 3 || len(rows) != 3 || rows[0] != 21 || rows[2] != 23 {
		t.Fatalf("page 3: rows=%v page=%d", rows, page)
	}

	// past the end clamps to the last valid page
	rows, page, _ = Paginate(items, 4, 10)
	if page != 3 || len(rows) != 3 || rows[0] != 21 {
		t.Fatalf("clamp: rows=%v page=%d", rows, page)
	}

	// below the start clamps to 1
	_, page, _ = Paginate(items, 0, 10)
	if page != 1 {
		t.Fatalf("page = %d", page)
	}

	rows, page, total = Paginate([]int{}, 5, 10)
	if len(rows) != 0 || page != 1 || total != 0 {
		t.Fatalf("empty: rows=%v page=%d total=%d", rows, page, total)
	}
}

func TestFilterCaseInsensitive(t *testing.T) {
	products := []domain.Product{
		{Category: "Apparel", Service: "T-Shirt", Size: "L"},
		{Category: "Signage", Service: "Banner", Size: "2x6", Notes: "outdoor vinyl"},
		{Category: "Paper", Service: "Flyer", TurnaroundTime: "1 day"},
	}

	got := Filter(products, "VINYL", ProductFields)
	if len(got) != 1 || got[0].Service != "Banner" {
		t.Fatalf("filter VINYL = %+v", got)
	}

	got = Filter(products, "  ", ProductFields)
	if len(got) != 3 {
		t.Fatalf("blank term should keep the snapshot, got %d rows", len(got))
	}

	got = Filter(products, "zebra", ProductFields)
	if len(got) != 0 {
		t.Fatalf("no-match term should return empty, got %+v", got)
	}
}

func TestNewTableBookkeeping(t *testing.T) {
	items := make([]domain.Product, 23)
	for i := range items {
		items[i].Service = fmt.Sprintf("svc-%02d", i+1)
	}

	tbl := NewTable(items, State{Page: 3, PageSize: 10}, ProductFields)
	if tbl.From != 21 || tbl.To != 23 || tbl.TotalRows != 23 || tbl.TotalPages != 3 {
		t.Fatalf("table = %+v", tbl)
	}
	if tbl.HasNext() || !tbl.HasPrev() {
		t.Fatalf("pager flags wrong on last page")
	}

	empty := NewTable(items, State{Query: "no-such-service", Page: 1, PageSize: 10}, ProductFields)
	if !empty.Empty() || empty.TotalRows != 0 {
		t.Fatalf("expected empty table, got %+v", empty)
	}
}
