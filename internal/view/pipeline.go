// Package view derives what the table renders: a pure
// filter, sort, paginate pipeline over the committed records, composed
// with the edit-buffer shadow lookup at the rendering edge.
package view

import (
	"fmt"
	"sort"
	"strings"

	"github.com/inovacc/tablr/internal/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Query is the full input of one derivation.
type Query struct {
	Search   string
	Sort     *model.SortSpec
	Page     int
	PageSize int
}

// Result is the derivation output. Page is the clamped page actually in
// effect; callers write it back so the selection stays in range after
// deletes and searches shrink the set.
type Result struct {
	Records  []model.Record
	Total    int
	Page     int
	PageSize int
}

// collator gives locale-aware string ordering, case folded, matching
// what a user expects from alphabetical sort ("apple" before "Banana").
var collator = collate.New(language.Und, collate.Loose)

// Derive runs filter, sort, paginate over the committed records. It is a
// pure function of its inputs and recomputes from scratch every time; no
// cached pipeline state can go stale.
func Derive(records []model.Record, columns []model.Column, q Query) Result {
	filtered := FilterSort(records, columns, q.Search, q.Sort)

	total := len(filtered)
	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = model.DefaultPageSize
	}

	page := clampPage(q.Page, total, pageSize)

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}

	end := start + pageSize
	if end > total {
		end = total
	}

	return Result{
		Records:  filtered[start:end],
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}

// FilterSort runs the filter and sort stages over the full set. Export
// uses it directly: the file carries every filtered row, not one page.
func FilterSort(records []model.Record, columns []model.Column, search string, spec *model.SortSpec) []model.Record {
	filtered := filterRecords(records, VisibleColumns(columns), search)

	if spec != nil {
		sortRecords(filtered, *spec)
	}

	return filtered
}

// VisibleColumns returns the columns with the visible flag set, in
// display order. The set defines both search scope and render scope.
func VisibleColumns(columns []model.Column) []model.Column {
	out := make([]model.Column, 0, len(columns))
	for _, c := range columns {
		if c.Visible {
			out = append(out, c)
		}
	}

	return out
}

// filterRecords keeps a record iff any visible column's value contains
// the search term, case-insensitive. Absent values never match. The
// returned slice is always a fresh copy so sorting cannot disturb the
// store's order.
func filterRecords(records []model.Record, visible []model.Column, term string) []model.Record {
	if term == "" {
		return append([]model.Record(nil), records...)
	}

	needle := strings.ToLower(term)

	out := make([]model.Record, 0, len(records))
	for _, r := range records {
		for _, c := range visible {
			v := r.Get(c.Key)
			if v.IsAbsent() {
				continue
			}

			if strings.Contains(strings.ToLower(v.Render()), needle) {
				out = append(out, r)

				break
			}
		}
	}

	return out
}

// sortRecords stably sorts in place. Records lacking the sort key go
// last regardless of direction; the direction flips only the comparison
// of present values. Two numbers compare numerically, anything else
// compares as collated strings.
func sortRecords(records []model.Record, spec model.SortSpec) {
	sort.SliceStable(records, func(i, j int) bool {
		return compareRecords(records[i], records[j], spec) < 0
	})
}

func compareRecords(a, b model.Record, spec model.SortSpec) int {
	av, bv := a.Get(spec.Key), b.Get(spec.Key)

	switch {
	case av.IsAbsent() && bv.IsAbsent():
		return 0
	case av.IsAbsent():
		return 1
	case bv.IsAbsent():
		return -1
	}

	var cmp int
	if av.Kind == model.KindNumber && bv.Kind == model.KindNumber {
		switch {
		case av.Num < bv.Num:
			cmp = -1
		case av.Num > bv.Num:
			cmp = 1
		}
	} else {
		cmp = collator.CompareString(av.Render(), bv.Render())
	}

	if spec.Direction == model.Descending {
		cmp = -cmp
	}

	return cmp
}

// clampPage corrects the requested 1-based page into range for the
// current total. An empty set stays on page 1 and renders no rows.
func clampPage(page, total, pageSize int) int {
	if page < 1 {
		page = 1
	}

	if total == 0 {
		return 1
	}

	last := (total + pageSize - 1) / pageSize
	if page > last {
		page = last
	}

	return page
}

// RangeText is the pagination caption: "Showing 1 to 10 of 12".
func RangeText(res Result) string {
	if res.Total == 0 {
		return "No entries"
	}

	first := (res.Page-1)*res.PageSize + 1

	last := res.Page * res.PageSize
	if last > res.Total {
		last = res.Total
	}

	return fmt.Sprintf("Showing %d to %d of %d", first, last, res.Total)
}
