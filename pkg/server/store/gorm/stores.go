package gorm

import (
	"gorm.io/gorm"

	"github.com/doodlesbykumbi/artrights/pkg/model"
	"github.com/doodlesbykumbi/artrights/pkg/server/store"
)

// NewStores builds the PostgreSQL backend on top of db.
func NewStores(db *gorm.DB) *store.Stores {
	return &store.Stores{
		Users:             NewRepository[model.User](db, "users"),
		ProjectCategories: NewRepository[model.Category](db, model.CategoryKindProject.Table()),
		ArtworkCategories: NewRepository[model.Category](db, model.CategoryKindArtwork.Table()),
		ContactCategories: NewRepository[model.Category](db, model.CategoryKindContact.Table()),
		WorkStatuses:      NewRepository[model.Category](db, model.CategoryKindWorkStatus.Table()),
		Projects:          NewRepository[model.Project](db, "projects"),
		Artworks:          NewRepository[model.Artwork](db, "artworks"),
		Contacts:          NewRepository[model.Contact](db, "contacts"),
		Media:             NewRepository[model.Media](db, ""),
		RightsHolders:     NewRepository[model.RightsHolder](db, ""),
		RightsMedia:       NewRepository[model.RightsMedia](db, ""),
		Tasks:             NewRepository[model.Task](db, "tasks"),
		History:           NewRepository[model.ArtworkHistory](db, ""),
		Health:            NewHealthStore(db),
	}
}
