package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/doodlesbykumbi/artrights/pkg/audit"
	"github.com/doodlesbykumbi/artrights/pkg/model"
	"github.com/doodlesbykumbi/artrights/pkg/query"
	"github.com/doodlesbykumbi/artrights/pkg/server/store"
)

const rightsEntity = "rights-holders"

// Rights manages rights holders, their media associations and the cost
// figures derived from them.
type Rights struct {
	stores *store.Stores
	cache  *query.Client
}

var _ RightsService = (*Rights)(nil)

// NewRights returns a Rights service over stores.
func NewRights(stores *store.Stores, cache *query.Client) *Rights {
	return &Rights{stores: stores, cache: cache}
}

// ReconcileInput is a submitted rights holder form. An empty HolderID
// creates a new holder on ArtworkID; otherwise the holder is updated and
// ArtworkID is ignored.
type ReconcileInput struct {
	HolderID  string   `json:"-"`
	ArtworkID string   `json:"artwork_id,omitempty"`
	ContactID string   `json:"contact_id"`
	Price     float64  `json:"price"`
	MediaIDs  []string `json:"media_ids"`
}

// ReconcileStep identifies the operation a reconciliation stopped at.
type ReconcileStep struct {
	Op      string `json:"op"`
	MediaID string `json:"media_id,omitempty"`
	Error   string `json:"error"`
}

func (s ReconcileStep) String() string {
	if s.MediaID == "" {
		return s.Op
	}
	return s.Op + " " + s.MediaID
}

// ReconcileReport lists the association changes that were applied.
// Operations run one by one and are not rolled back, so when Failed is set
// the changes listed before it remain in place.
type ReconcileReport struct {
	Created   bool           `json:"created"`
	Updated   bool           `json:"updated"`
	Added     []string       `json:"added"`
	Removed   []string       `json:"removed"`
	Unchanged []string       `json:"unchanged"`
	Failed    *ReconcileStep `json:"failed,omitempty"`
}

// Applied reports whether any step changed stored data.
func (r ReconcileReport) Applied() bool {
	return r.Created || r.Updated || len(r.Added) > 0 || len(r.Removed) > 0
}

// ReconcileResult is the holder as stored after reconciliation.
type ReconcileResult struct {
	Holder *model.RightsHolderView `json:"rights_holder"`
	Report ReconcileReport         `json:"report"`
}

func (s *Rights) Get(ctx context.Context, id string) (*model.RightsHolder, error) {
	h, err := s.stores.RightsHolders.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get rights holder %s: %w", id, err)
	}
	return h, nil
}

// TotalCost sums the price of every rights holder of artworkID.
func (s *Rights) TotalCost(ctx context.Context, artworkID string) (float64, error) {
	t, err := s.Totals(ctx, artworkID)
	return t.TotalCost, err
}

// Count returns the number of rights holders of artworkID.
func (s *Rights) Count(ctx context.Context, artworkID string) (int, error) {
	t, err := s.Totals(ctx, artworkID)
	return t.Count, err
}

// Totals returns TotalCost and Count computed from one read of the store.
// They are never cached.
func (s *Rights) Totals(ctx context.Context, artworkID string) (model.RightsTotals, error) {
	holders, err := s.stores.RightsHolders.ListWhere(ctx, store.Criteria{"artwork_id": artworkID})
	if err != nil {
		return model.RightsTotals{}, fmt.Errorf("list rights holders of %s: %w", artworkID, err)
	}
	totals := model.RightsTotals{Count: len(holders)}
	for _, h := range holders {
		totals.TotalCost += h.Price
	}
	return totals, nil
}

// ByArtwork lists the rights holders of artworkID with contact and media resolved.
func (s *Rights) ByArtwork(ctx context.Context, artworkID string) ([]model.RightsHolderView, error) {
	return query.Get(ctx, s.cache, query.RightsByArtworkKey(artworkID), func(ctx context.Context) ([]model.RightsHolderView, error) {
		holders, err := s.stores.RightsHolders.ListWhere(ctx, store.Criteria{"artwork_id": artworkID})
		if err != nil {
			return nil, fmt.Errorf("list rights holders of %s: %w", artworkID, err)
		}
		views := make([]model.RightsHolderView, 0, len(holders))
		for _, h := range holders {
			v, err := s.view(ctx, h)
			if err != nil {
				return nil, err
			}
			views = append(views, v)
		}
		return views, nil
	})
}

// View returns one rights holder with contact and media resolved, or nil.
func (s *Rights) View(ctx context.Context, id string) (*model.RightsHolderView, error) {
	return query.Get(ctx, s.cache, query.Key(query.RightsHolders, id), func(ctx context.Context) (*model.RightsHolderView, error) {
		h, err := s.Get(ctx, id)
		if err != nil || h == nil {
			return nil, err
		}
		v, err := s.view(ctx, *h)
		if err != nil {
			return nil, err
		}
		return &v, nil
	})
}

func (s *Rights) view(ctx context.Context, h model.RightsHolder) (model.RightsHolderView, error) {
	v := model.RightsHolderView{RightsHolder: h, MediaRights: []model.MediaRight{}}

	contact, err := s.stores.Contacts.Get(ctx, h.ContactID)
	if err != nil {
		return v, fmt.Errorf("get contact %s: %w", h.ContactID, err)
	}
	v.Contact = contact

	rows, err := s.stores.RightsMedia.ListWhere(ctx, store.Criteria{"artwork_rights_holder_id": h.ID})
	if err != nil {
		return v, fmt.Errorf("list media of rights holder %s: %w", h.ID, err)
	}
	for _, row := range rows {
		m, err := s.stores.Media.Get(ctx, row.MediaID)
		if err != nil {
			return v, fmt.Errorf("get media %s: %w", row.MediaID, err)
		}
		v.MediaRights = append(v.MediaRights, model.MediaRight{RightsMedia: row, Media: m})
	}
	return v, nil
}

// Create stores a new rights holder. The artwork and the contact must exist.
func (s *Rights) Create(ctx context.Context, h model.RightsHolder) (model.RightsHolder, error) {
	h = h.WithBase(model.NewBase(userPtr(ctx)))
	if err := model.Validate(h); err != nil {
		return model.RightsHolder{}, err
	}
	if err := s.requireArtwork(ctx, h.ArtworkID); err != nil {
		return model.RightsHolder{}, err
	}
	if err := s.requireContact(ctx, h.ContactID); err != nil {
		return model.RightsHolder{}, err
	}
	created, err := s.create(ctx, h)
	if err != nil {
		return model.RightsHolder{}, err
	}
	s.invalidate(ctx, created.ID, created.ArtworkID)
	return created, nil
}

func (s *Rights) create(ctx context.Context, h model.RightsHolder) (model.RightsHolder, error) {
	created, err := s.stores.RightsHolders.Create(ctx, h)
	s.record(ctx, audit.ActionCreate, h.ID, "", err)
	if err != nil {
		return model.RightsHolder{}, fmt.Errorf("create rights holder: %w", err)
	}
	return created, nil
}

// AddMedia associates mediaID with the holder. Both must exist. An existing
// association is returned as is.
func (s *Rights) AddMedia(ctx context.Context, holderID, mediaID string) (model.RightsMedia, error) {
	h, err := s.Get(ctx, holderID)
	if err != nil {
		return model.RightsMedia{}, err
	}
	if h == nil {
		return model.RightsMedia{}, fmt.Errorf("%w: rights holder %s", ErrInvalidReference, holderID)
	}
	if err := s.requireMedia(ctx, mediaID); err != nil {
		return model.RightsMedia{}, err
	}
	row, err := s.addMedia(ctx, holderID, mediaID)
	if err != nil {
		return model.RightsMedia{}, err
	}
	s.invalidate(ctx, h.ID, h.ArtworkID)
	return row, nil
}

func (s *Rights) addMedia(ctx context.Context, holderID, mediaID string) (model.RightsMedia, error) {
	row := model.RightsMedia{RightsHolderID: holderID, MediaID: mediaID}.WithBase(model.NewBase(userPtr(ctx)))
	stored, created, err := s.stores.RightsMedia.CreateIfAbsent(ctx, store.Criteria{
		"artwork_rights_holder_id": holderID,
		"media_id":                 mediaID,
	}, row)
	if err != nil {
		s.record(ctx, audit.ActionAddMedia, holderID, mediaID, err)
		return model.RightsMedia{}, fmt.Errorf("add media %s to rights holder %s: %w", mediaID, holderID, err)
	}
	if created {
		s.record(ctx, audit.ActionAddMedia, holderID, mediaID, nil)
	}
	return stored, nil
}

// RemoveMedia drops the association and reports whether it existed.
func (s *Rights) RemoveMedia(ctx context.Context, holderID, mediaID string) (bool, error) {
	h, err := s.Get(ctx, holderID)
	if err != nil || h == nil {
		return false, err
	}
	ok, err := s.removeMedia(ctx, holderID, mediaID)
	if err != nil {
		return false, err
	}
	if ok {
		s.invalidate(ctx, h.ID, h.ArtworkID)
	}
	return ok, nil
}

func (s *Rights) removeMedia(ctx context.Context, holderID, mediaID string) (bool, error) {
	n, err := s.stores.RightsMedia.DeleteWhere(ctx, store.Criteria{
		"artwork_rights_holder_id": holderID,
		"media_id":                 mediaID,
	})
	if err != nil {
		s.record(ctx, audit.ActionRemoveMedia, holderID, mediaID, err)
		return false, fmt.Errorf("remove media %s from rights holder %s: %w", mediaID, holderID, err)
	}
	if n > 0 {
		s.record(ctx, audit.ActionRemoveMedia, holderID, mediaID, nil)
	}
	return n > 0, nil
}

// Delete removes the holder and every media association it has.
func (s *Rights) Delete(ctx context.Context, id string) (bool, error) {
	h, err := s.Get(ctx, id)
	if err != nil || h == nil {
		return false, err
	}
	if _, err := s.stores.RightsMedia.DeleteWhere(ctx, store.Criteria{"artwork_rights_holder_id": id}); err != nil {
		s.record(ctx, audit.ActionDelete, id, "", err)
		return false, fmt.Errorf("delete media of rights holder %s: %w", id, err)
	}
	ok, err := s.stores.RightsHolders.Delete(ctx, id)
	s.invalidate(ctx, h.ID, h.ArtworkID)
	if err != nil {
		s.record(ctx, audit.ActionDelete, id, "", err)
		return false, fmt.Errorf("delete rights holder %s: %w", id, err)
	}
	if ok {
		s.record(ctx, audit.ActionDelete, id, "", nil)
	}
	return ok, nil
}

// deleteByArtwork removes every rights holder of artworkID.
func (s *Rights) deleteByArtwork(ctx context.Context, artworkID string) error {
	holders, err := s.stores.RightsHolders.ListWhere(ctx, store.Criteria{"artwork_id": artworkID})
	if err != nil {
		return fmt.Errorf("list rights holders of %s: %w", artworkID, err)
	}
	for _, h := range holders {
		if _, err := s.Delete(ctx, h.ID); err != nil {
			return err
		}
	}
	return nil
}

// Reconcile saves a rights holder form.
//
// On create, the holder is stored and one association is created per
// selected media. On update, contact and price are written, then the
// associations no longer selected are removed and the newly selected ones
// are added, each in id order. Associations selected before and after are
// left alone, so submitting an unchanged selection writes no association.
//
// Every step is its own repository call. If one fails, the steps before it
// stay applied; the returned result is non-nil and its report names the
// failed step.
//
// A nil result and nil error mean HolderID does not exist.
func (s *Rights) Reconcile(ctx context.Context, in ReconcileInput) (*ReconcileResult, error) {
	selected := uniqueSorted(in.MediaIDs)

	var current *model.RightsHolder
	if in.HolderID != "" {
		var err error
		if current, err = s.Get(ctx, in.HolderID); err != nil || current == nil {
			return nil, err
		}
	}

	holder := model.RightsHolder{ArtworkID: in.ArtworkID, ContactID: in.ContactID, Price: in.Price}
	if current != nil {
		holder.Base = current.Base
		holder.ArtworkID = current.ArtworkID
	}
	if err := model.Validate(holder); err != nil {
		return nil, err
	}
	if current == nil {
		if err := s.requireArtwork(ctx, holder.ArtworkID); err != nil {
			return nil, err
		}
	}
	if err := s.requireContact(ctx, holder.ContactID); err != nil {
		return nil, err
	}
	for _, id := range selected {
		if err := s.requireMedia(ctx, id); err != nil {
			return nil, err
		}
	}

	result := &ReconcileResult{Report: ReconcileReport{
		Added:     []string{},
		Removed:   []string{},
		Unchanged: []string{},
	}}
	holderID, err := s.reconcile(ctx, current, holder, selected, &result.Report)

	event := audit.ReconcileEvent{
		HolderID:  holderID,
		ArtworkID: holder.ArtworkID,
		UserID:    UserFrom(ctx),
		Added:     result.Report.Added,
		Removed:   result.Report.Removed,
	}
	if f := result.Report.Failed; f != nil {
		event.FailedStep = f.String()
		event.ErrorMessage = f.Error
	}
	audit.Log(event)

	if holderID != "" {
		s.invalidate(ctx, holderID, holder.ArtworkID)
		view, viewErr := s.View(ctx, holderID)
		if viewErr != nil && err == nil {
			return result, viewErr
		}
		result.Holder = view
	}
	return result, err
}

// reconcile applies the steps and returns the holder id, which is empty
// only when creating the holder failed.
func (s *Rights) reconcile(ctx context.Context, current *model.RightsHolder, holder model.RightsHolder, selected []string, report *ReconcileReport) (string, error) {
	var holderID string
	fail := func(op, mediaID string, err error) (string, error) {
		report.Failed = &ReconcileStep{Op: op, MediaID: mediaID, Error: err.Error()}
		return holderID, err
	}

	var have []string
	if current == nil {
		created, err := s.create(ctx, holder.WithBase(model.NewBase(userPtr(ctx))))
		if err != nil {
			return fail("create", "", err)
		}
		report.Created = true
		holderID = created.ID
	} else {
		holderID = current.ID
		patch := model.RightsHolderPatch{}
		if holder.ContactID != current.ContactID {
			patch.ContactID = &holder.ContactID
		}
		if holder.Price != current.Price {
			patch.Price = &holder.Price
		}
		if len(patch.Columns()) > 0 {
			_, err := s.stores.RightsHolders.Update(ctx, holderID, patch)
			s.record(ctx, audit.ActionUpdate, holderID, "", err)
			if err != nil {
				return fail("update", "", fmt.Errorf("update rights holder %s: %w", current.ID, err))
			}
			report.Updated = true
		}

		rows, err := s.stores.RightsMedia.ListWhere(ctx, store.Criteria{"artwork_rights_holder_id": holderID})
		if err != nil {
			return fail("list", "", fmt.Errorf("list media of rights holder %s: %w", holderID, err))
		}
		for _, row := range rows {
			have = append(have, row.MediaID)
		}
		have = uniqueSorted(have)
	}

	toAdd, toRemove, unchanged := diff(have, selected)
	report.Unchanged = append(report.Unchanged, unchanged...)

	for _, id := range toRemove {
		if _, err := s.removeMedia(ctx, holderID, id); err != nil {
			return fail("remove", id, err)
		}
		report.Removed = append(report.Removed, id)
	}
	for _, id := range toAdd {
		if _, err := s.addMedia(ctx, holderID, id); err != nil {
			return fail("add", id, err)
		}
		report.Added = append(report.Added, id)
	}
	return holderID, nil
}

func (s *Rights) requireArtwork(ctx context.Context, id string) error {
	a, err := s.stores.Artworks.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get artwork %s: %w", id, err)
	}
	if a == nil {
		return fmt.Errorf("%w: artwork %s", ErrInvalidReference, id)
	}
	return nil
}

func (s *Rights) requireContact(ctx context.Context, id string) error {
	c, err := s.stores.Contacts.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get contact %s: %w", id, err)
	}
	if c == nil {
		return fmt.Errorf("%w: contact %s", ErrInvalidReference, id)
	}
	return nil
}

func (s *Rights) requireMedia(ctx context.Context, id string) error {
	m, err := s.stores.Media.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get media %s: %w", id, err)
	}
	if m == nil {
		return fmt.Errorf("%w: media %s", ErrInvalidReference, id)
	}
	return nil
}

func (s *Rights) record(ctx context.Context, action audit.Action, id, related string, err error) {
	event := audit.MutationEvent{
		Action:   action,
		Entity:   rightsEntity,
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

func (s *Rights) invalidate(ctx context.Context, holderID, artworkID string) {
	if err := s.cache.Invalidate(ctx, query.RightsHolderInvalidation(holderID, artworkID)...); err != nil {
		slog.Warn("cache invalidation failed", "entity", rightsEntity, "id", holderID, "error", err)
	}
}

// diff splits two sorted id sets into the ids only in want, only in have,
// and in both.
func diff(have, want []string) (toAdd, toRemove, both []string) {
	i, j := 0, 0
	for i < len(have) && j < len(want) {
		switch {
		case have[i] == want[j]:
			both = append(both, have[i])
			i++
			j++
		case have[i] < want[j]:
			toRemove = append(toRemove, have[i])
			i++
		default:
			toAdd = append(toAdd, want[j])
			j++
		}
	}
	toRemove = append(toRemove, have[i:]...)
	toAdd = append(toAdd, want[j:]...)
	return toAdd, toRemove, both
}

func uniqueSorted(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
