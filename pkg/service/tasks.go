package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/doodlesbykumbi/artrights/pkg/model"
	"github.com/doodlesbykumbi/artrights/pkg/query"
	"github.com/doodlesbykumbi/artrights/pkg/server/store"
)

// Tasks manages follow-up items on artworks.
type Tasks struct {
	*Entities[model.Task]
}

var _ TaskService = (*Tasks)(nil)

func NewTasks(repo store.Repository[model.Task], cache *query.Client) *Tasks {
	return &Tasks{Entities: NewEntities(query.Tasks, repo, cache)}
}

func (s *Tasks) ByArtwork(ctx context.Context, artworkID string) ([]model.Task, error) {
	return query.Get(ctx, s.cache, query.Key(query.Tasks, "artwork", artworkID), func(ctx context.Context) ([]model.Task, error) {
		return s.Where(ctx, store.Criteria{"artwork_id": artworkID})
	})
}

// History reads the change log of artworks.
type History struct {
	repo store.Repository[model.ArtworkHistory]
}

var _ HistoryService = (*History)(nil)

func NewHistory(repo store.Repository[model.ArtworkHistory]) *History {
	return &History{repo: repo}
}

// ByArtwork lists the changes of one artwork, newest first.
func (s *History) ByArtwork(ctx context.Context, artworkID string) ([]model.ArtworkHistory, error) {
	rows, err := s.repo.ListWhere(ctx, store.Criteria{"artwork_id": artworkID})
	if err != nil {
		return nil, fmt.Errorf("list history of artwork %s: %w", artworkID, err)
	}
	slices.Reverse(rows)
	slices.SortStableFunc(rows, func(a, b model.ArtworkHistory) int {
		return b.ModifiedAt.Compare(a.ModifiedAt)
	})
	return rows, nil
}
