package service

import (
	"context"
	"fmt"

	"github.com/doodlesbykumbi/artrights/pkg/model"
	"github.com/doodlesbykumbi/artrights/pkg/query"
	"github.com/doodlesbykumbi/artrights/pkg/server/store"
)

// Media manages licensing channels.
type Media struct {
	*Entities[model.Media]
	stores *store.Stores
}

// NewMedia returns the media service.
func NewMedia(stores *store.Stores, cache *query.Client) *Media {
	return &Media{
		Entities: NewEntities(query.Media, stores.Media, cache, query.RightsHolders),
		stores:   stores,
	}
}

// Delete removes the media and every rights association naming it.
func (s *Media) Delete(ctx context.Context, id string) (bool, error) {
	if _, err := s.stores.RightsMedia.DeleteWhere(ctx, store.Criteria{"media_id": id}); err != nil {
		return false, fmt.Errorf("delete rights of media %s: %w", id, err)
	}
	return s.Entities.Delete(ctx, id)
}
