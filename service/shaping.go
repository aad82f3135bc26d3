package service

import (
	"cmp"
	"slices"
)

// Page is one slice of a shaped listing.
type Page[T any] struct {
	Items      []T
	Total      int
	Page       int
	TotalPages int
}

// Filter returns the items keep accepts, in input order. A nil keep retains everything.
func Filter[T any](items []T, keep func(T) bool) []T {
	if keep == nil {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// SortDesc orders items in place by descending key. Ties keep input order.
// A nil key leaves items untouched.
func SortDesc[T any](items []T, key func(T) float64) {
	if key == nil {
		return
	}
	slices.SortStableFunc(items, func(a, b T) int {
		return cmp.Compare(key(b), key(a))
	})
}

// Paginate slices the 1-based page of size limit out of items.
func Paginate[T any](items []T, page, limit int) Page[T] {
	total := len(items)
	start, n := pageWindow(total, page, limit)
	return Page[T]{
		Items:      slices.Clip(items[start : start+n]),
		Total:      total,
		Page:       page,
		TotalPages: totalPages(total, limit),
	}
}

// pageWindow returns the offset and row count of a 1-based page over total
// rows. Pages past the last one are empty; the page is checked against the
// page count before multiplying so huge pages cannot wrap.
func pageWindow(total, page, limit int) (start, n int) {
	if limit <= 0 || page < 1 || page-1 >= totalPages(total, limit) {
		return total, 0
	}
	start = (page - 1) * limit
	return start, min(limit, total-start)
}

// Map converts each item to its display shape.
func Map[T, V any](items []T, f func(T) V) []V {
	out := make([]V, len(items))
	for i, it := range items {
		out[i] = f(it)
	}
	return out
}

func totalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
