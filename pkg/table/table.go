// Package table turns a record list into one filtered, sorted page.
package table

import (
	"cmp"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/doodlesbykumbi/artrights/pkg/model"
)

// DefaultPageSizes are the page sizes offered when none are configured.
var DefaultPageSizes = []int{10, 20, 30, 40, 50}

var (
	ErrUnknownColumn = errors.New("unknown column")
	ErrPageSize      = errors.New("unsupported page size")
	ErrOrder         = errors.New("order must be asc or desc")
)

// Options describe how a collection is presented.
type Options struct {
	FilterField string
	PageSize    int
	PageSizes   []int
}

// Query is a single table request.
type Query struct {
	Filter      string
	FilterField string
	SortBy      string
	Desc        bool
	Page        int
	PageSize    int
}

// Page is one page of rows plus the numbers needed to render a pager.
type Page[T any] struct {
	Items     []T `json:"items"`
	Page      int `json:"page"`
	PageSize  int `json:"page_size"`
	PageCount int `json:"page_count"`
	Total     int `json:"total"`
}

// Parse reads q, sort, order, page and page_size.
func Parse(values url.Values, opts Options) (Query, error) {
	sizes := opts.PageSizes
	if len(sizes) == 0 {
		sizes = DefaultPageSizes
	}
	q := Query{
		Filter:      strings.TrimSpace(values.Get("q")),
		FilterField: opts.FilterField,
		SortBy:      values.Get("sort"),
		Page:        1,
		PageSize:    opts.PageSize,
	}
	if q.PageSize == 0 {
		q.PageSize = sizes[0]
	}

	switch strings.ToLower(values.Get("order")) {
	case "", "asc":
	case "desc":
		q.Desc = true
	default:
		return q, ErrOrder
	}

	if v := values.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return q, fmt.Errorf("page: %w", err)
		}
		q.Page = n
	}
	if q.Page < 1 {
		q.Page = 1
	}

	if v := values.Get("page_size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return q, fmt.Errorf("page_size: %w", err)
		}
		if !slices.Contains(sizes, n) {
			return q, fmt.Errorf("%w: %d", ErrPageSize, n)
		}
		q.PageSize = n
	}
	return q, nil
}

// Apply filters, sorts and pages rows. rows is not modified.
// The requested page is clamped to the last page.
func Apply[T model.Record](rows []T, q Query) (Page[T], error) {
	var zero T
	if q.SortBy != "" {
		if _, ok := zero.Attr(q.SortBy); !ok {
			return Page[T]{}, fmt.Errorf("%w: %s", ErrUnknownColumn, q.SortBy)
		}
	}
	if q.Filter != "" && q.FilterField != "" {
		if _, ok := zero.Attr(q.FilterField); !ok {
			return Page[T]{}, fmt.Errorf("%w: %s", ErrUnknownColumn, q.FilterField)
		}
	}

	out := Filter(rows, q.FilterField, q.Filter)
	if q.SortBy != "" {
		Sort(out, q.SortBy, q.Desc)
	}
	return Paginate(out, q.Page, q.PageSize), nil
}

// Filter keeps the rows whose field contains needle, ignoring case.
// It always returns a new slice.
func Filter[T model.Record](rows []T, field, needle string) []T {
	out := make([]T, 0, len(rows))
	needle = strings.ToLower(needle)
	for _, r := range rows {
		if needle == "" || field == "" {
			out = append(out, r)
			continue
		}
		v, _ := r.Attr(field)
		if strings.Contains(strings.ToLower(text(v)), needle) {
			out = append(out, r)
		}
	}
	return out
}

// Sort orders rows in place by column. Equal keys keep their order.
func Sort[T model.Record](rows []T, column string, desc bool) {
	slices.SortStableFunc(rows, func(a, b T) int {
		av, _ := a.Attr(column)
		bv, _ := b.Attr(column)
		c := compare(av, bv)
		if desc {
			return -c
		}
		return c
	})
}

// Paginate slices out page (1-based), clamped to [1, PageCount].
func Paginate[T any](rows []T, page, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSizes[0]
	}
	count := (len(rows) + size - 1) / size
	if count == 0 {
		count = 1
	}
	page = min(max(page, 1), count)

	start := min((page-1)*size, len(rows))
	end := min(start+size, len(rows))
	return Page[T]{
		Items:     rows[start:end],
		Page:      page,
		PageSize:  size,
		PageCount: count,
		Total:     len(rows),
	}
}

func compare(a, b any) int {
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			if c := cmp.Compare(strings.ToLower(av), strings.ToLower(bv)); c != 0 {
				return c
			}
			return cmp.Compare(av, bv)
		}
	case float64:
		if bv, ok := b.(float64); ok {
			return cmp.Compare(av, bv)
		}
	case int:
		if bv, ok := b.(int); ok {
			return cmp.Compare(av, bv)
		}
	case bool:
		if bv, ok := b.(bool); ok {
			return cmp.Compare(boolRank(av), boolRank(bv))
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv)
		}
	case model.Date:
		if bv, ok := b.(model.Date); ok {
			return av.Compare(bv.Time)
		}
	}
	return cmp.Compare(text(a), text(b))
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprint(v)
}
