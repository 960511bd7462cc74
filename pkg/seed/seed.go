// Package seed loads and exports YAML fixtures covering every collection.
//
// Fixtures keep their ids so references between records hold. A record
// without an id gets a fresh one; a record without created_at gets the load
// time. A user fixture may carry a plaintext password, which is hashed on
// load.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/doodlesbykumbi/artrights/pkg/model"
	"github.com/doodlesbykumbi/artrights/pkg/server/store"
)

//go:embed demo.yml
var demo []byte

// Fixtures is the content of one fixture file.
type Fixtures struct {
	Users             []model.User           `yaml:"users,omitempty"`
	ProjectCategories []model.Category       `yaml:"project_categories,omitempty"`
	ArtworkCategories []model.Category       `yaml:"artwork_categories,omitempty"`
	ContactCategories []model.Category       `yaml:"contact_categories,omitempty"`
	WorkStatuses      []model.Category       `yaml:"work_statuses,omitempty"`
	Projects          []model.Project        `yaml:"projects,omitempty"`
	Artworks          []model.Artwork        `yaml:"artworks,omitempty"`
	Contacts          []model.Contact        `yaml:"contacts,omitempty"`
	Media             []model.Media          `yaml:"media,omitempty"`
	RightsHolders     []model.RightsHolder   `yaml:"rights_holders,omitempty"`
	RightsMedia       []model.RightsMedia    `yaml:"rights_media,omitempty"`
	Tasks             []model.Task           `yaml:"tasks,omitempty"`
	History           []model.ArtworkHistory `yaml:"history,omitempty"`
}

// Summary counts the records loaded per collection.
type Summary map[string]int

// Total is the number of records across collections.
func (s Summary) Total() int {
	n := 0
	for _, c := range s {
		n += c
	}
	return n
}

// Parse reads fixtures. Unknown keys are rejected.
func Parse(r io.Reader) (*Fixtures, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f Fixtures
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return &f, nil
}

// Demo returns the built-in demo data set.
func Demo() (*Fixtures, error) {
	return Parse(bytes.NewReader(demo))
}

// Load parses r and inserts the fixtures into stores.
func Load(ctx context.Context, stores *store.Stores, r io.Reader) (Summary, error) {
	f, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return f.Apply(ctx, stores)
}

// Apply inserts every fixture, parents before children. It stops at the
// first failure; records inserted before it remain.
func (f *Fixtures) Apply(ctx context.Context, stores *store.Stores) (Summary, error) {
	now := time.Now().UTC()
	summary := Summary{}

	users := make([]model.User, 0, len(f.Users))
	for _, u := range f.Users {
		hashed, err := u.HashPassword()
		if err != nil {
			return summary, fmt.Errorf("hash password of user %s: %w", u.Email, err)
		}
		users = append(users, hashed)
	}

	steps := []func() error{
		func() error { return insert(ctx, "users", stores.Users, users, now, summary) },
		func() error {
			return insert(ctx, "project_categories", stores.ProjectCategories, f.ProjectCategories, now, summary)
		},
		func() error {
			return insert(ctx, "artwork_categories", stores.ArtworkCategories, f.ArtworkCategories, now, summary)
		},
		func() error {
			return insert(ctx, "contact_categories", stores.ContactCategories, f.ContactCategories, now, summary)
		},
		func() error { return insert(ctx, "work_statuses", stores.WorkStatuses, f.WorkStatuses, now, summary) },
		func() error { return insert(ctx, "projects", stores.Projects, f.Projects, now, summary) },
		func() error { return insert(ctx, "artworks", stores.Artworks, f.Artworks, now, summary) },
		func() error { return insert(ctx, "contacts", stores.Contacts, f.Contacts, now, summary) },
		func() error { return insert(ctx, "media", stores.Media, f.Media, now, summary) },
		func() error {
			return insert(ctx, "rights_holders", stores.RightsHolders, f.RightsHolders, now, summary)
		},
		func() error { return insert(ctx, "rights_media", stores.RightsMedia, f.RightsMedia, now, summary) },
		func() error { return insert(ctx, "tasks", stores.Tasks, f.Tasks, now, summary) },
		func() error { return insert(ctx, "history", stores.History, f.History, now, summary) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return summary, err
		}
	}
	return summary, nil
}

func insert[T model.Entity[T]](ctx context.Context, name string, repo store.Repository[T], rows []T, now time.Time, summary Summary) error {
	for i, row := range rows {
		base := baseOf(row, now)
		row = row.WithBase(base)
		if err := model.Validate(row); err != nil {
			return fmt.Errorf("%s[%d]: %w", name, i, err)
		}
		if _, err := repo.Create(ctx, row); err != nil {
			return fmt.Errorf("%s[%d]: %w", name, i, err)
		}
		summary[name]++
	}
	return nil
}

// baseOf completes the Base of a fixture row.
func baseOf(row model.Record, now time.Time) model.Base {
	var b model.Base
	if v, ok := row.Attr("id"); ok {
		b.ID, _ = v.(string)
	}
	if v, ok := row.Attr("created_at"); ok {
		b.CreatedAt, _ = v.(time.Time)
	}
	if v, ok := row.Attr("created_by"); ok {
		if by, _ := v.(string); by != "" {
			b.CreatedBy = &by
		}
	}
	if b.ID == "" {
		b = model.NewBase(b.CreatedBy)
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	return b
}

// Export writes the current content of stores as fixtures.
func Export(ctx context.Context, stores *store.Stores, w io.Writer) error {
	var f Fixtures
	var err error
	if f.Users, err = stores.Users.List(ctx); err != nil {
		return fmt.Errorf("export users: %w", err)
	}
	if f.ProjectCategories, err = stores.ProjectCategories.List(ctx); err != nil {
		return fmt.Errorf("export project categories: %w", err)
	}
	if f.ArtworkCategories, err = stores.ArtworkCategories.List(ctx); err != nil {
		return fmt.Errorf("export artwork categories: %w", err)
	}
	if f.ContactCategories, err = stores.ContactCategories.List(ctx); err != nil {
		return fmt.Errorf("export contact categories: %w", err)
	}
	if f.WorkStatuses, err = stores.WorkStatuses.List(ctx); err != nil {
		return fmt.Errorf("export work statuses: %w", err)
	}
	if f.Projects, err = stores.Projects.List(ctx); err != nil {
		return fmt.Errorf("export projects: %w", err)
	}
	if f.Artworks, err = stores.Artworks.List(ctx); err != nil {
		return fmt.Errorf("export artworks: %w", err)
	}
	if f.Contacts, err = stores.Contacts.List(ctx); err != nil {
		return fmt.Errorf("export contacts: %w", err)
	}
	if f.Media, err = stores.Media.List(ctx); err != nil {
		return fmt.Errorf("export media: %w", err)
	}
	if f.RightsHolders, err = stores.RightsHolders.List(ctx); err != nil {
		return fmt.Errorf("export rights holders: %w", err)
	}
	if f.RightsMedia, err = stores.RightsMedia.List(ctx); err != nil {
		return fmt.Errorf("export rights media: %w", err)
	}
	if f.Tasks, err = stores.Tasks.List(ctx); err != nil {
		return fmt.Errorf("export tasks: %w", err)
	}
	if f.History, err = stores.History.List(ctx); err != nil {
		return fmt.Errorf("export history: %w", err)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&f); err != nil {
		return fmt.Errorf("encode fixtures: %w", err)
	}
	return enc.Close()
}

// Reset deletes every record from stores, children before parents.
func Reset(ctx context.Context, stores *store.Stores) error {
	steps := []func() error{
		func() error { return truncate(ctx, "tasks", stores.Tasks) },
		func() error { return truncate(ctx, "history", stores.History) },
		func() error { return truncate(ctx, "rights_media", stores.RightsMedia) },
		func() error { return truncate(ctx, "rights_holders", stores.RightsHolders) },
		func() error { return truncate(ctx, "media", stores.Media) },
		func() error { return truncate(ctx, "contacts", stores.Contacts) },
		func() error { return truncate(ctx, "artworks", stores.Artworks) },
		func() error { return truncate(ctx, "projects", stores.Projects) },
		func() error { return truncate(ctx, "work_statuses", stores.WorkStatuses) },
		func() error { return truncate(ctx, "contact_categories", stores.ContactCategories) },
		func() error { return truncate(ctx, "artwork_categories", stores.ArtworkCategories) },
		func() error { return truncate(ctx, "project_categories", stores.ProjectCategories) },
		func() error { return truncate(ctx, "users", stores.Users) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func truncate[T model.Record](ctx context.Context, name string, repo store.Repository[T]) error {
	rows, err := repo.List(ctx)
	if err != nil {
		return fmt.Errorf("reset %s: %w", name, err)
	}
	for _, row := range rows {
		if _, err := repo.Delete(ctx, row.Key()); err != nil {
			return fmt.Errorf("reset %s: %w", name, err)
		}
	}
	return nil
}
