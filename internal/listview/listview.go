package listview

import "strings"

// Predicate decides whether a record matches a search query.
// Implementations have to be deterministic and side-effect-free as they are re-evaluated on every view computation.
type Predicate[T any] func(record T, query string) bool

// Page represents the page settings requested by the caller
type Page struct {
	// Current is the 1-based requested page number
	Current int
	// Size is the amount of records per page (> 0)
	Size int
}

// View represents the computed result of a list view calculation
type View[T any] struct {
	// Visible contains the records of the effective page, in collection order
	Visible []T
	// TotalPages is the amount of pages the filtered set spans (>= 1, even for an empty set)
	TotalPages int
	// EffectivePage is the requested page clamped into [1, TotalPages]
	EffectivePage int
	// TotalFiltered is the size of the whole filtered set
	TotalFiltered int
}

// Compute calculates the visible page slice and pagination metadata out of a full collection,
// a search query and the requested page settings.
// An empty or whitespace-only query passes the collection through unfiltered; otherwise the
// predicate is applied to every record, preserving relative order.
// The function is pure: it never mutates the collection and equal inputs yield equal views.
func Compute[T any](collection []T, query string, page Page, predicate Predicate[T]) View[T] {
	filtered := collection
	if strings.TrimSpace(query) != "" && predicate != nil {
		filtered = make([]T, 0, len(collection))
		for _, record := range collection {
			if predicate(record, query) {
				filtered = append(filtered, record)
			}
		}
	}

	size := page.Size
	if size <= 0 {
		size = 1
	}

	totalPages := (len(filtered) + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}

	effective := page.Current
	if effective < 1 {
		effective = 1
	}
	if effective > totalPages {
		effective = totalPages
	}

	start := (effective - 1) * size
	end := start + size
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return View[T]{
		Visible:       filtered[start:end],
		TotalPages:    totalPages,
		EffectivePage: effective,
		TotalFiltered: len(filtered),
	}
}

// Filter applies the predicate to the whole collection the same way Compute does, without paginating.
// This is what exports operate on as they always cover the full filtered set rather than a single page.
func Filter[T any](collection []T, query string, predicate Predicate[T]) []T {
	view := Compute(collection, query, Page{Current: 1, Size: maxInt(len(collection), 1)}, predicate)
	return view.Visible
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
