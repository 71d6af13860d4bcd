package pagination

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"
)

// Sort orders.
const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// Common validation errors.
var (
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'co2:desc')")
	ErrEmptySortField    = errors.New("sort field cannot be empty")
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortField  = errors.New("invalid sort field")
)

// Params holds the list flags of one command. Offset-based (Limit and
// Offset) and page-based (Page and PageSize) windows are mutually
// exclusive. A zero Limit means no limit.
type Params struct {
	Limit    int
	Offset   int
	Page     int
	PageSize int
	Sort     string
}

// AddFlags registers the list flags on cmd, bound to p.
func (p *Params) AddFlags(cmd *cobra.Command, sortHelp string) {
	cmd.Flags().IntVar(&p.Limit, "limit", 0, "maximum number of results (0 = all)")
	cmd.Flags().IntVar(&p.Offset, "offset", 0, "number of results to skip")
	cmd.Flags().IntVar(&p.Page, "page", 0, "1-based page number (requires --page-size)")
	cmd.Flags().IntVar(&p.PageSize, "page-size", 0, "results per page")
	cmd.Flags().StringVar(&p.Sort, "sort", "", sortHelp)
}

// Validate checks if the parameters are valid and consistent.
func (p Params) Validate() error {
	switch {
	case p.Limit < 0:
		return errors.New("limit cannot be negative")
	case p.Offset < 0:
		return errors.New("offset cannot be negative")
	case p.Page < 0:
		return errors.New("page cannot be negative")
	case p.PageSize < 0:
		return errors.New("page-size cannot be negative")
	case p.Page > 0 && p.Offset > 0:
		return errors.New("page and offset parameters are mutually exclusive")
	case p.Page == 0 && p.PageSize > 0:
		return errors.New("page must be specified when using page-size")
	case p.PageSize == 0 && p.Page > 0:
		return errors.New("page-size must be specified when using page")
	}
	return nil
}

// IsPageBased returns true if page-based pagination is active.
func (p Params) IsPageBased() bool {
	return p.Page > 0
}

// CalculateOffsetLimit returns the effective offset and limit.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func (p Params) CalculateOffsetLimit() (offset, limit int) {
	if p.IsPageBased() {
		return (p.Page - 1) * p.PageSize, p.PageSize
	}
	return p.Offset, p.Limit
}

// Apply returns the window of items selected by p. Pages past the end are
// capped to the last page; offsets past the end yield an empty slice.
func Apply[T any](p Params, items []T) []T {
	if len(items) == 0 {
		return items
	}

	offset, limit := p.CalculateOffsetLimit()
	if p.IsPageBased() && offset >= len(items) {
		offset = ((len(items) - 1) / p.PageSize) * p.PageSize
	}
	if offset >= len(items) {
		return []T{}
	}

	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}

// Meta describes the window returned for a list.
type Meta struct {
	CurrentPage int  `json:"current_page"`
	PageSize    int  `json:"page_size"`
	TotalPages  int  `json:"total_pages"`
	TotalItems  int  `json:"total_items"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
}

// NewMeta creates page metadata from p and the unpaginated item count.
func NewMeta(p Params, totalCount int) Meta {
	pageSize := p.PageSize
	if pageSize == 0 && p.Limit > 0 {
		pageSize = p.Limit
	}
	if pageSize == 0 {
		pageSize = totalCount
	}

	currentPage := p.Page
	if currentPage == 0 && p.Offset > 0 && pageSize > 0 {
		currentPage = (p.Offset / pageSize) + 1
	}
	if currentPage == 0 {
		currentPage = 1
	}

	totalPages := 0
	if pageSize > 0 {
		totalPages = int(math.Ceil(float64(totalCount) / float64(pageSize)))
	}

	return Meta{
		CurrentPage: currentPage,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalItems:  totalCount,
		HasPrevious: currentPage > 1,
		HasNext:     currentPage < totalPages,
	}
}

// ParseSort parses a sort string in the format "field" or "field:order".
// The order defaults to defaultOrder. An empty string yields an empty field.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(sortStr, defaultOrder string) (field, order string, err error) {
	if sortStr == "" {
		return "", defaultOrder, nil
	}

	parts := strings.Split(sortStr, ":")
	switch len(parts) {
	case 1:
		field = strings.TrimSpace(parts[0])
		order = defaultOrder
	case sortPartsMax:
		field = strings.TrimSpace(parts[0])
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, sortStr)
	}

	if field == "" {
		return "", "", ErrEmptySortField
	}
	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}
	return field, order, nil
}
