package service

import (
	"context"

	"github.com/doodlesbykumbi/artrights/pkg/model"
	"github.com/doodlesbykumbi/artrights/pkg/server/store"
)

// CRUD is the uniform contract every collection satisfies.
type CRUD[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, v T) (T, error)
	Update(ctx context.Context, id string, patch model.Patch[T]) (*T, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ProjectService manages projects.
type ProjectService interface {
	CRUD[model.Project]
	ByStatus(ctx context.Context, status model.ProjectStatus) ([]model.Project, error)
	View(ctx context.Context, id string) (*model.ProjectView, error)
}

// ArtworkService manages artworks.
type ArtworkService interface {
	CRUD[model.Artwork]
	ByStatus(ctx context.Context, status model.ArtworkStatus) ([]model.Artwork, error)
	ByProject(ctx context.Context, projectID string) ([]model.Artwork, error)
	View(ctx context.Context, id string) (*model.ArtworkView, error)
}

// ContactService manages contacts.
type ContactService interface {
	CRUD[model.Contact]
	View(ctx context.Context, id string) (*model.ContactView, error)
}

// TaskService manages artwork tasks.
type TaskService interface {
	CRUD[model.Task]
	ByArtwork(ctx context.Context, artworkID string) ([]model.Task, error)
}

// HistoryService reads artwork change history.
type HistoryService interface {
	ByArtwork(ctx context.Context, artworkID string) ([]model.ArtworkHistory, error)
}

// RightsService manages rights holders and their media.
type RightsService interface {
	Get(ctx context.Context, id string) (*model.RightsHolder, error)
	View(ctx context.Context, id string) (*model.RightsHolderView, error)
	ByArtwork(ctx context.Context, artworkID string) ([]model.RightsHolderView, error)
	Totals(ctx context.Context, artworkID string) (model.RightsTotals, error)
	AddMedia(ctx context.Context, holderID, mediaID string) (model.RightsMedia, error)
	RemoveMedia(ctx context.Context, holderID, mediaID string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Reconcile(ctx context.Context, in ReconcileInput) (*ReconcileResult, error)
}

// Services bundles every service the API exposes.
type Services struct {
	Users      CRUD[model.User]
	Categories map[model.CategoryKind]CRUD[model.Category]
	Projects   ProjectService
	Artworks   ArtworkService
	Contacts   ContactService
	Media      CRUD[model.Media]
	Rights     RightsService
	Tasks      TaskService
	History    HistoryService
	Health     store.HealthStore
}
