package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/doodlesbykumbi/artrights/pkg/model"
	"github.com/doodlesbykumbi/artrights/pkg/server/store"
)

// Repository keeps records in a slice in insertion order.
type Repository[T model.Record] struct {
	mu      sync.RWMutex
	rows    []T
	latency time.Duration
}

var _ store.Repository[model.Artwork] = (*Repository[model.Artwork])(nil)

// NewRepository creates an empty repository. Every call sleeps for latency
// before touching the data, or returns early if the context ends first.
func NewRepository[T model.Record](latency time.Duration) *Repository[T] {
	return &Repository[T]{latency: latency}
}

func (r *Repository[T]) wait(ctx context.Context) error {
	if r.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(r.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]T, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

func (r *Repository[T]) Get(ctx context.Context, id string) (*T, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(id); i >= 0 {
		row := r.rows[i]
		return &row, nil
	}
	return nil, nil
}

func (r *Repository[T]) Create(ctx context.Context, record T) (T, error) {
	if err := r.wait(ctx); err != nil {
		return record, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(record.Key()) >= 0 {
		return record, fmt.Errorf("%w: %s", store.ErrDuplicateID, record.Key())
	}
	r.rows = append(r.rows, record)
	return record, nil
}

func (r *Repository[T]) Update(ctx context.Context, id string, patch model.Patch[T]) (*T, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	r.rows[i] = patch.Apply(r.rows[i])
	row := r.rows[i]
	return &row, nil
}

func (r *Repository[T]) Delete(ctx context.Context, id string) (bool, error) {
	if err := r.wait(ctx); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	r.rows = append(r.rows[:i], r.rows[i+1:]...)
	return true, nil
}

func (r *Repository[T]) ListWhere(ctx context.Context, criteria store.Criteria) ([]T, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []T
	for _, row := range r.rows {
		if matches(row, criteria) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *Repository[T]) DeleteWhere(ctx context.Context, criteria store.Criteria) (int, error) {
	if err := r.wait(ctx); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.rows[:0]
	removed := 0
	for _, row := range r.rows {
		if matches(row, criteria) {
			removed++
			continue
		}
		kept = append(kept, row)
	}
	var zero T
	for i := len(kept); i < len(r.rows); i++ {
		r.rows[i] = zero
	}
	r.rows = kept
	return removed, nil
}

func (r *Repository[T]) Count(ctx context.Context, criteria store.Criteria) (int, error) {
	rows, err := r.ListWhere(ctx, criteria)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (r *Repository[T]) CreateIfAbsent(ctx context.Context, criteria store.Criteria, record T) (T, bool, error) {
	if err := r.wait(ctx); err != nil {
		return record, false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if matches(row, criteria) {
			return row, false, nil
		}
	}
	if r.indexOf(record.Key()) >= 0 {
		return record, false, fmt.Errorf("%w: %s", store.ErrDuplicateID, record.Key())
	}
	r.rows = append(r.rows, record)
	return record, true, nil
}

func (r *Repository[T]) indexOf(id string) int {
	for i, row := range r.rows {
		if row.Key() == id {
			return i
		}
	}
	return -1
}

func matches(row model.Record, criteria store.Criteria) bool {
	for column, want := range criteria {
		got, ok := row.Attr(column)
		if !ok {
			return false
		}
		if got != want && fmt.Sprint(got) != fmt.Sprint(want) {
			return false
		}
	}
	return true
}
