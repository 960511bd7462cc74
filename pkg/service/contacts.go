package service

import (
	"context"
	"fmt"

	"github.com/doodlesbykumbi/artrights/pkg/model"
	"github.com/doodlesbykumbi/artrights/pkg/query"
	"github.com/doodlesbykumbi/artrights/pkg/render"
	"github.com/doodlesbykumbi/artrights/pkg/server/store"
)

// Contacts manages contacts.
type Contacts struct {
	*Entities[model.Contact]
	stores *store.Stores
}

var _ ContactService = (*Contacts)(nil)

// NewContacts returns the contact service.
func NewContacts(stores *store.Stores, cache *query.Client) *Contacts {
	return &Contacts{
		Entities: NewEntities(query.Contacts, stores.Contacts, cache, query.RightsHolders),
		stores:   stores,
	}
}

// View returns the contact with its category and rendered notes, or nil.
func (s *Contacts) View(ctx context.Context, id string) (*model.ContactView, error) {
	return query.Get(ctx, s.cache, query.Key(query.Contacts, id, "view"), func(ctx context.Context) (*model.ContactView, error) {
		c, err := s.stores.Contacts.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get contact %s: %w", id, err)
		}
		if c == nil {
			return nil, nil
		}
		category, err := s.stores.ContactCategories.Get(ctx, c.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("get contact category %s: %w", c.CategoryID, err)
		}
		notes, err := render.Markdown(c.Notes)
		if err != nil {
			return nil, fmt.Errorf("render notes of contact %s: %w", id, err)
		}
		return &model.ContactView{
			Contact:   *c,
			Category:  model.ResolveCategory(c.CategoryID, category),
			NotesHTML: notes,
		}, nil
	})
}

// Delete refuses to remove a contact that still holds rights.
func (s *Contacts) Delete(ctx context.Context, id string) (bool, error) {
	n, err := s.stores.RightsHolders.Count(ctx, store.Criteria{"contact_id": id})
	if err != nil {
		return false, fmt.Errorf("count rights holders of contact %s: %w", id, err)
	}
	if n > 0 {
		return false, fmt.Errorf("%w: contact %s holds %d rights", ErrInUse, id, n)
	}
	return s.Entities.Delete(ctx, id)
}
