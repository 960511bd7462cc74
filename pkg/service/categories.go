package service

import (
	"github.com/doodlesbykumbi/artrights/pkg/model"
	"github.com/doodlesbykumbi/artrights/pkg/query"
	"github.com/doodlesbykumbi/artrights/pkg/server/store"
)

// NewCategories returns the service for one kind of category. Deleting a
// category leaves its references dangling; views then show it as
// model.UnknownCategoryName.
func NewCategories(kind model.CategoryKind, repo store.Repository[model.Category], cache *query.Client) *Entities[model.Category] {
	return NewEntities(query.Key(query.Categories, string(kind)), repo, cache,
		query.Projects, query.Artworks, query.Contacts)
}
