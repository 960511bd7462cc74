package store

import (
	"context"
	"errors"

	"github.com/doodlesbykumbi/artrights/pkg/model"
)

// ErrDuplicateID is returned by Create when a record with the same id exists.
var ErrDuplicateID = errors.New("duplicate id")

// Criteria matches records whose columns equal every given value.
type Criteria map[string]any

// Repository abstracts storage of one entity collection.
//
// Get and Update return a nil record, not an error, when the id is unknown.
// Delete reports false in the same case. Create stores the record exactly as
// given; assigning ids and timestamps is the caller's job.
type Repository[T model.Record] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, record T) (T, error)
	Update(ctx context.Context, id string, patch model.Patch[T]) (*T, error)
	Delete(ctx context.Context, id string) (bool, error)

	// ListWhere returns the records matching criteria in insertion order.
	ListWhere(ctx context.Context, criteria Criteria) ([]T, error)
	// DeleteWhere removes the records matching criteria and returns how many.
	DeleteWhere(ctx context.Context, criteria Criteria) (int, error)
	// Count returns the number of records matching criteria.
	Count(ctx context.Context, criteria Criteria) (int, error)
	// CreateIfAbsent stores record unless a record matching criteria exists.
	// The check and the insert are atomic. When a match exists it is
	// returned with created set to false.
	CreateIfAbsent(ctx context.Context, criteria Criteria, record T) (row T, created bool, err error)
}

// Stores bundles one repository per collection.
type Stores struct {
	Users             Repository[model.User]
	ProjectCategories Repository[model.Category]
	ArtworkCategories Repository[model.Category]
	ContactCategories Repository[model.Category]
	WorkStatuses      Repository[model.Category]
	Projects          Repository[model.Project]
	Artworks          Repository[model.Artwork]
	Contacts          Repository[model.Contact]
	Media             Repository[model.Media]
	RightsHolders     Repository[model.RightsHolder]
	RightsMedia       Repository[model.RightsMedia]
	Tasks             Repository[model.Task]
	History           Repository[model.ArtworkHistory]
	Health            HealthStore
}

// Categories returns the repository for the given kind.
func (s *Stores) Categories(kind model.CategoryKind) Repository[model.Category] {
	switch kind {
	case model.CategoryKindProject:
		return s.ProjectCategories
	case model.CategoryKindArtwork:
		return s.ArtworkCategories
	case model.CategoryKindContact:
		return s.ContactCategories
	case model.CategoryKindWorkStatus:
		return s.WorkStatuses
	}
	return nil
}
