package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/doodlesbykumbi/artrights/pkg/model"
	"github.com/doodlesbykumbi/artrights/pkg/query"
	"github.com/doodlesbykumbi/artrights/pkg/render"
	"github.com/doodlesbykumbi/artrights/pkg/server/store"
)

// Projects manages projects and their budget summaries.
type Projects struct {
	*Entities[model.Project]
	stores *store.Stores
	rights *Rights
}

var _ ProjectService = (*Projects)(nil)

// NewProjects returns the project service.
func NewProjects(stores *store.Stores, rights *Rights, cache *query.Client) *Projects {
	return &Projects{
		Entities: NewEntities(query.Projects, stores.Projects, cache, query.Artworks),
		stores:   stores,
		rights:   rights,
	}
}

func (s *Projects) ByStatus(ctx context.Context, status model.ProjectStatus) ([]model.Project, error) {
	return query.Get(ctx, s.cache, query.Key(query.Projects, "status", status.String()), func(ctx context.Context) ([]model.Project, error) {
		return s.Where(ctx, store.Criteria{"status": status})
	})
}

// View returns the project with its category and budget summary, or nil.
// The amount spent is the total rights cost of the project's artworks.
func (s *Projects) View(ctx context.Context, id string) (*model.ProjectView, error) {
	return query.Get(ctx, s.cache, query.Key(query.Projects, id, "view"), func(ctx context.Context) (*model.ProjectView, error) {
		p, err := s.stores.Projects.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get project %s: %w", id, err)
		}
		if p == nil {
			return nil, nil
		}

		category, err := s.stores.ProjectCategories.Get(ctx, p.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("get project category %s: %w", p.CategoryID, err)
		}

		artworks, err := s.stores.Artworks.ListWhere(ctx, store.Criteria{"project_id": id})
		if err != nil {
			return nil, fmt.Errorf("list artworks of project %s: %w", id, err)
		}
		var spent float64
		for _, a := range artworks {
			cost, err := s.rights.TotalCost(ctx, a.ID)
			if err != nil {
				return nil, err
			}
			spent += cost
		}

		html, err := render.Markdown(p.Description)
		if err != nil {
			return nil, fmt.Errorf("render description of project %s: %w", id, err)
		}

		return &model.ProjectView{
			Project:         *p,
			Category:        model.ResolveCategory(p.CategoryID, category),
			Budget:          model.NewBudget(p.Budget, spent),
			DescriptionHTML: html,
			ArtworkCount:    len(artworks),
		}, nil
	})
}

// Delete removes the project and detaches its artworks.
func (s *Projects) Delete(ctx context.Context, id string) (bool, error) {
	artworks, err := s.stores.Artworks.ListWhere(ctx, store.Criteria{"project_id": id})
	if err != nil {
		return false, fmt.Errorf("list artworks of project %s: %w", id, err)
	}
	none := ""
	for _, a := range artworks {
		if _, err := s.stores.Artworks.Update(ctx, a.ID, model.ArtworkPatch{ProjectID: &none}); err != nil {
			return false, fmt.Errorf("detach artwork %s from project %s: %w", a.ID, id, err)
		}
	}
	if len(artworks) > 0 {
		slog.Debug("detached artworks from deleted project", "project", id, "count", len(artworks))
	}
	return s.Entities.Delete(ctx, id)
}
