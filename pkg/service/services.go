package service

import (
	"github.com/doodlesbykumbi/artrights/pkg/model"
	"github.com/doodlesbykumbi/artrights/pkg/query"
	"github.com/doodlesbykumbi/artrights/pkg/server/store"
)

// New wires the concrete services over stores. cache may be nil.
func New(stores *store.Stores, cache *query.Client) *Services {
	rights := NewRights(stores, cache)
	categories := make(map[model.CategoryKind]CRUD[model.Category], len(model.CategoryKinds()))
	for _, kind := range model.CategoryKinds() {
		categories[kind] = NewCategories(kind, stores.Categories(kind), cache)
	}
	return &Services{
		Users:      NewUsers(stores.Users, cache),
		Categories: categories,
		Projects:   NewProjects(stores, rights, cache),
		Artworks:   NewArtworks(stores, rights, cache),
		Contacts:   NewContacts(stores, cache),
		Media:      NewMedia(stores, cache),
		Rights:     rights,
		Tasks:      NewTasks(stores.Tasks, cache),
		History:    NewHistory(stores.History),
		Health:     stores.Health,
	}
}
