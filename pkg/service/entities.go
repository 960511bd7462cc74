package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/doodlesbykumbi/artrights/pkg/audit"
	"github.com/doodlesbykumbi/artrights/pkg/model"
	"github.com/doodlesbykumbi/artrights/pkg/query"
	"github.com/doodlesbykumbi/artrights/pkg/server/store"
)

// Entities implements CRUD for one collection.
type Entities[T model.Entity[T]] struct {
	name  string
	repo  store.Repository[T]
	cache *query.Client

	// related lists cache prefixes of read models that embed T.
	related []string
}

var _ CRUD[model.Media] = (*Entities[model.Media])(nil)

// NewEntities returns the service for repo. name is both the cache prefix
// and the entity name used in audit records.
func NewEntities[T model.Entity[T]](name string, repo store.Repository[T], cache *query.Client, related ...string) *Entities[T] {
	return &Entities[T]{name: name, repo: repo, cache: cache, related: related}
}

// Name returns the collection name.
func (s *Entities[T]) Name() string {
	return s.name
}

func (s *Entities[T]) List(ctx context.Context) ([]T, error) {
	return query.Get(ctx, s.cache, s.name, func(ctx context.Context) ([]T, error) {
		rows, err := s.repo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", s.name, err)
		}
		return rows, nil
	})
}

func (s *Entities[T]) Get(ctx context.Context, id string) (*T, error) {
	return query.Get(ctx, s.cache, query.Key(s.name, id), func(ctx context.Context) (*T, error) {
		v, err := s.repo.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get %s %s: %w", s.name, id, err)
		}
		return v, nil
	})
}

// Where lists the records matching criteria. It is not cached.
func (s *Entities[T]) Where(ctx context.Context, criteria store.Criteria) ([]T, error) {
	rows, err := s.repo.ListWhere(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.name, err)
	}
	return rows, nil
}

// Create validates v, gives it a new id and creation time and stores it.
// Any id or timestamp already set on v is discarded.
func (s *Entities[T]) Create(ctx context.Context, v T) (T, error) {
	var zero T
	v = v.WithBase(model.NewBase(userPtr(ctx)))
	if err := model.Validate(v); err != nil {
		return zero, err
	}
	return s.insert(ctx, v)
}

func (s *Entities[T]) insert(ctx context.Context, v T) (T, error) {
	created, err := s.repo.Create(ctx, v)
	s.record(ctx, audit.ActionCreate, v.Key(), "", err)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("create %s: %w", s.name, err)
	}
	s.invalidate(ctx)
	return created, nil
}

// Update applies patch to the record with id. The patched record must pass
// validation. A nil record is returned when id is unknown.
func (s *Entities[T]) Update(ctx context.Context, id string, patch model.Patch[T]) (*T, error) {
	_, updated, err := s.update(ctx, id, patch)
	return updated, err
}

func (s *Entities[T]) update(ctx context.Context, id string, patch model.Patch[T]) (*T, *T, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("get %s %s: %w", s.name, id, err)
	}
	if current == nil {
		return nil, nil, nil
	}
	if err := model.Validate(patch.Apply(*current)); err != nil {
		return nil, nil, err
	}

	updated, err := s.repo.Update(ctx, id, patch)
	s.record(ctx, audit.ActionUpdate, id, "", err)
	if err != nil {
		return nil, nil, fmt.Errorf("update %s %s: %w", s.name, id, err)
	}
	s.invalidate(ctx)
	return current, updated, nil
}

// Delete removes the record with id and reports whether it existed.
func (s *Entities[T]) Delete(ctx context.Context, id string) (bool, error) {
	return s.remove(ctx, id)
}

// remove deletes the record and also invalidates the extra prefixes.
func (s *Entities[T]) remove(ctx context.Context, id string, extra ...string) (bool, error) {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.record(ctx, audit.ActionDelete, id, "", err)
		return false, fmt.Errorf("delete %s %s: %w", s.name, id, err)
	}
	if ok {
		s.record(ctx, audit.ActionDelete, id, "", nil)
		s.invalidate(ctx, extra...)
	}
	return ok, nil
}

func (s *Entities[T]) record(ctx context.Context, action audit.Action, id, related string, err error) {
	event := audit.MutationEvent{
		Action:   action,
		Entity:   s.name,
		EntityID: id,
		UserID:   UserFrom(ctx),
		Related:  related,
		Success:  err == nil,
	}
	if err != nil {
		event.ErrorMessage = err.Error()
	}
	audit.Log(event)
}

func (s *Entities[T]) invalidate(ctx context.Context, extra ...string) {
	prefixes := append([]string{s.name}, s.related...)
	prefixes = append(prefixes, extra...)
	if err := s.cache.Invalidate(ctx, prefixes...); err != nil {
		slog.Warn("cache invalidation failed", "entity", s.name, "error", err)
	}
}
