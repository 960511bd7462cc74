package memory

import (
	"time"

	"github.com/doodlesbykumbi/artrights/pkg/model"
	"github.com/doodlesbykumbi/artrights/pkg/server/store"
)

// HealthStore always reports the in-memory backend as reachable.
type HealthStore struct{}

func (HealthStore) CheckConnectivity() error {
	return nil
}

// NewStores builds an empty in-memory backend. latency is applied to every
// repository call to mimic a remote database.
func NewStores(latency time.Duration) *store.Stores {
	return &store.Stores{
		Users:             NewRepository[model.User](latency),
		ProjectCategories: NewRepository[model.Category](latency),
		ArtworkCategories: NewRepository[model.Category](latency),
		ContactCategories: NewRepository[model.Category](latency),
		WorkStatuses:      NewRepository[model.Category](latency),
		Projects:          NewRepository[model.Project](latency),
		Artworks:          NewRepository[model.Artwork](latency),
		Contacts:          NewRepository[model.Contact](latency),
		Media:             NewRepository[model.Media](latency),
		RightsHolders:     NewRepository[model.RightsHolder](latency),
		RightsMedia:       NewRepository[model.RightsMedia](latency),
		Tasks:             NewRepository[model.Task](latency),
		History:           NewRepository[model.ArtworkHistory](latency),
		Health:            HealthStore{},
	}
}
