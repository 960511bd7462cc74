package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/doodlesbykumbi/artrights/pkg/model"
	"github.com/doodlesbykumbi/artrights/pkg/query"
	"github.com/doodlesbykumbi/artrights/pkg/server/store"
)

// Artworks manages artworks. Every update is recorded field by field in the
// artwork history.
type Artworks struct {
	*Entities[model.Artwork]
	stores *store.Stores
	rights *Rights
	now    func() time.Time
}

var _ ArtworkService = (*Artworks)(nil)

// NewArtworks returns the artwork service.
func NewArtworks(stores *store.Stores, rights *Rights, cache *query.Client) *Artworks {
	return &Artworks{
		Entities: NewEntities(query.Artworks, stores.Artworks, cache, query.Projects),
		stores:   stores,
		rights:   rights,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *Artworks) ByStatus(ctx context.Context, status model.ArtworkStatus) ([]model.Artwork, error) {
	return query.Get(ctx, s.cache, query.Key(query.Artworks, "status", status.String()), func(ctx context.Context) ([]model.Artwork, error) {
		return s.Where(ctx, store.Criteria{"status": status})
	})
}

func (s *Artworks) ByProject(ctx context.Context, projectID string) ([]model.Artwork, error) {
	return query.Get(ctx, s.cache, query.Key(query.Artworks, "project", projectID), func(ctx context.Context) ([]model.Artwork, error) {
		return s.Where(ctx, store.Criteria{"project_id": projectID})
	})
}

// Create stores a new artwork. A non-empty project id must resolve.
func (s *Artworks) Create(ctx context.Context, a model.Artwork) (model.Artwork, error) {
	if err := s.requireProject(ctx, a.ProjectID); err != nil {
		return model.Artwork{}, err
	}
	return s.Entities.Create(ctx, a)
}

// Update applies patch and appends one history row per changed field.
func (s *Artworks) Update(ctx context.Context, id string, patch model.Patch[model.Artwork]) (*model.Artwork, error) {
	if p, ok := patch.(model.ArtworkPatch); ok && p.ProjectID != nil {
		if err := s.requireProject(ctx, *p.ProjectID); err != nil {
			return nil, err
		}
	}
	before, after, err := s.update(ctx, id, patch)
	if err != nil || after == nil {
		return after, err
	}

	by := userPtr(ctx)
	for _, row := range model.DiffArtworks(*before, *after, by, s.now()) {
		if _, err := s.stores.History.Create(ctx, row.WithBase(model.NewBase(by))); err != nil {
			slog.Warn("artwork history not recorded", "artwork", id, "field", row.ModifiedField, "error", err)
		}
	}
	return after, nil
}

// Delete removes the artwork together with its rights holders, tasks and
// history.
func (s *Artworks) Delete(ctx context.Context, id string) (bool, error) {
	a, err := s.stores.Artworks.Get(ctx, id)
	if err != nil {
		return false, fmt.Errorf("get artwork %s: %w", id, err)
	}
	if a == nil {
		return false, nil
	}
	if err := s.rights.deleteByArtwork(ctx, id); err != nil {
		return false, err
	}
	if _, err := s.stores.Tasks.DeleteWhere(ctx, store.Criteria{"artwork_id": id}); err != nil {
		return false, fmt.Errorf("delete tasks of artwork %s: %w", id, err)
	}
	if _, err := s.stores.History.DeleteWhere(ctx, store.Criteria{"artwork_id": id}); err != nil {
		return false, fmt.Errorf("delete history of artwork %s: %w", id, err)
	}
	return s.remove(ctx, id, query.Tasks)
}

// View returns the artwork with its project, category and rights totals, or nil.
func (s *Artworks) View(ctx context.Context, id string) (*model.ArtworkView, error) {
	return query.Get(ctx, s.cache, query.Key(query.Artworks, id, "view"), func(ctx context.Context) (*model.ArtworkView, error) {
		a, err := s.stores.Artworks.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get artwork %s: %w", id, err)
		}
		if a == nil {
			return nil, nil
		}
		v := &model.ArtworkView{Artwork: *a}

		if a.ProjectID != "" {
			if v.Project, err = s.stores.Projects.Get(ctx, a.ProjectID); err != nil {
				return nil, fmt.Errorf("get project %s: %w", a.ProjectID, err)
			}
		}
		category, err := s.stores.ArtworkCategories.Get(ctx, a.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("get artwork category %s: %w", a.CategoryID, err)
		}
		v.Category = model.ResolveCategory(a.CategoryID, category)

		if v.Rights, err = s.rights.Totals(ctx, id); err != nil {
			return nil, err
		}
		return v, nil
	})
}

func (s *Artworks) requireProject(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	p, err := s.stores.Projects.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get project %s: %w", id, err)
	}
	if p == nil {
		return fmt.Errorf("%w: project %s", ErrInvalidReference, id)
	}
	return nil
}
