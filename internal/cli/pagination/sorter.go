package pagination

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Sorter sorts slices of T by named fields.
type Sorter[T any] struct {
	less map[string]func(a, b T) bool
}

// NewSorter creates a Sorter from field names and their ascending
// comparisons.
func NewSorter[T any](fields map[string]func(a, b T) bool) *Sorter[T] {
	return &Sorter[T]{less: fields}
}

// IsValidField checks if the field is valid for sorting.
func (s *Sorter[T]) IsValidField(field string) bool {
	_, ok := s.less[field]
	return ok
}

// ValidFields returns all valid sort fields in alphabetical order.
func (s *Sorter[T]) ValidFields() []string {
	fields := make([]string, 0, len(s.less))
	for field := range s.less {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Sort returns a stably sorted copy of items. An empty field returns items
// unchanged; an unknown field is an error naming the valid ones.
func (s *Sorter[T]) Sort(items []T, field, order string) ([]T, error) {
	if field == "" {
		return items, nil
	}
	less, ok := s.less[field]
	if !ok {
		return nil, fmt.Errorf("%w %q (valid: %s)", ErrInvalidSortField, field, strings.Join(s.ValidFields(), ", "))
	}

	sorted := slices.Clone(items)
	sort.SliceStable(sorted, func(i, j int) bool {
		// Swapping keeps equal elements in their original order.
		if order == SortOrderDesc {
			i, j = j, i
		}
		return less(sorted[i], sorted[j])
	})
	return sorted, nil
}
