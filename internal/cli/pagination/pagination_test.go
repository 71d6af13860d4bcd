package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr bool
		errMsg  string
	}{
		{name: "zero value", params: Params{}},
		{name: "valid offset mode", params: Params{Limit: 10, Offset: 20}},
		{name: "valid page mode", params: Params{Page: 2, PageSize: 10}},
		{name: "negative limit", params: Params{Limit: -1}, wantErr: true, errMsg: "limit cannot be negative"},
		{name: "negative offset", params: Params{Offset: -1}, wantErr: true, errMsg: "offset cannot be negative"},
		{name: "negative page", params: Params{Page: -1}, wantErr: true, errMsg: "page cannot be negative"},
		{
			name:    "negative page size",
			params:  Params{PageSize: -1},
			wantErr: true,
			errMsg:  "page-size cannot be negative",
		},
		{
			name:    "page and offset",
			params:  Params{Page: 1, PageSize: 5, Offset: 3},
			wantErr: true,
			errMsg:  "mutually exclusive",
		},
		{
			name:    "page size without page",
			params:  Params{PageSize: 5},
			wantErr: true,
			errMsg:  "page must be specified",
		},
		{
			name:    "page without page size",
			params:  Params{Page: 2},
			wantErr: true,
			errMsg:  "page-size must be specified",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestApply(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name   string
		params Params
		want   []int
	}{
		{name: "no window", params: Params{}, want: items},
		{name: "limit", params: Params{Limit: 3}, want: []int{1, 2, 3}},
		{name: "offset and limit", params: Params{Offset: 2, Limit: 2}, want: []int{3, 4}},
		{name: "offset only", params: Params{Offset: 5}, want: []int{6, 7}},
		{name: "offset past end", params: Params{Offset: 10}, want: []int{}},
		{name: "limit past end", params: Params{Offset: 5, Limit: 10}, want: []int{6, 7}},
		{name: "first page", params: Params{Page: 1, PageSize: 3}, want: []int{1, 2, 3}},
		{name: "last partial page", params: Params{Page: 3, PageSize: 3}, want: []int{7}},
		{name: "page past end capped", params: Params{Page: 9, PageSize: 3}, want: []int{7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Apply(tt.params, items))
		})
	}
}

func TestApply_Empty(t *testing.T) {
	assert.Empty(t, Apply(Params{Limit: 5}, []string{}))
}

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		total  int
		want   Meta
	}{
		{
			name:   "no window is one page",
			params: Params{},
			total:  12,
			want:   Meta{CurrentPage: 1, PageSize: 12, TotalPages: 1, TotalItems: 12},
		},
		{
			name:   "middle page",
			params: Params{Page: 2, PageSize: 5},
			total:  12,
			want:   Meta{CurrentPage: 2, PageSize: 5, TotalPages: 3, TotalItems: 12, HasPrevious: true, HasNext: true},
		},
		{
			name:   "offset converted to page",
			params: Params{Offset: 10, Limit: 5},
			total:  12,
			want:   Meta{CurrentPage: 3, PageSize: 5, TotalPages: 3, TotalItems: 12, HasPrevious: true},
		},
		{
			name:   "empty",
			params: Params{Limit: 5},
			total:  0,
			want:   Meta{CurrentPage: 1, PageSize: 5, TotalItems: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewMeta(tt.params, tt.total))
		})
	}
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantField string
		wantOrder string
		wantErr   error
	}{
		{name: "empty", input: "", wantField: "", wantOrder: SortOrderAsc},
		{name: "field only", input: "co2", wantField: "co2", wantOrder: SortOrderAsc},
		{name: "explicit desc", input: "co2:desc", wantField: "co2", wantOrder: SortOrderDesc},
		{name: "order case folded", input: "name:ASC", wantField: "name", wantOrder: SortOrderAsc},
		{name: "spaces trimmed", input: " name : desc ", wantField: "name", wantOrder: SortOrderDesc},
		{name: "too many colons", input: "a:b:c", wantErr: ErrInvalidSortFormat},
		{name: "empty field", input: ":asc", wantErr: ErrEmptySortField},
		{name: "bad order", input: "co2:up", wantErr: ErrInvalidSortOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, order, err := ParseSort(tt.input, SortOrderAsc)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantOrder, order)
		})
	}
}

type row struct {
	name  string
	score int
}

func newRowSorter() *Sorter[row] {
	return NewSorter(map[string]func(a, b row) bool{
		"name":  func(a, b row) bool { return a.name < b.name },
		"score": func(a, b row) bool { return a.score < b.score },
	})
}

func TestSorter_Sort(t *testing.T) {
	rows := []row{{"c", 2}, {"a", 1}, {"b", 2}}
	s := newRowSorter()

	asc, err := s.Sort(rows, "name", SortOrderAsc)
	require.NoError(t, err)
	assert.Equal(t, []row{{"a", 1}, {"b", 2}, {"c", 2}}, asc)

	desc, err := s.Sort(rows, "score", SortOrderDesc)
	require.NoError(t, err)
	assert.Equal(t, []row{{"c", 2}, {"b", 2}, {"a", 1}}, desc, "ties keep input order")

	assert.Equal(t, []row{{"c", 2}, {"a", 1}, {"b", 2}}, rows, "input is not modified")
}

func TestSorter_UnknownField(t *testing.T) {
	s := newRowSorter()

	_, err := s.Sort([]row{{"a", 1}}, "size", SortOrderAsc)
	require.ErrorIs(t, err, ErrInvalidSortField)
	assert.Contains(t, err.Error(), "name, score")

	assert.True(t, s.IsValidField("name"))
	assert.False(t, s.IsValidField("size"))
}

func TestSorter_EmptyField(t *testing.T) {
	rows := []row{{"b", 1}, {"a", 2}}
	got, err := newRowSorter().Sort(rows, "", SortOrderAsc)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}
