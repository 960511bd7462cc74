package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/artrights/pkg/model"
	"github.com/doodlesbykumbi/artrights/pkg/server/store"
)

func artwork(id, title string, status model.ArtworkStatus) model.Artwork {
	return model.Artwork{Base: model.Base{ID: id}, Title: title, Author: "Anon", CategoryID: "c1", Status: status}
}

func TestRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[model.Artwork](0)

	_, err := repo.Create(ctx, artwork("a1", "First", model.ArtworkStatusStored))
	require.NoError(t, err)
	_, err = repo.Create(ctx, artwork("a2", "Second", model.ArtworkStatusOnLoan))
	require.NoError(t, err)

	t.Run("list keeps insertion order", func(t *testing.T) {
		rows, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "a1", rows[0].ID)
		assert.Equal(t, "a2", rows[1].ID)
	})

	t.Run("get unknown id returns nil", func(t *testing.T) {
		got, err := repo.Get(ctx, "missing")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		_, err := repo.Create(ctx, artwork("a1", "Again", model.ArtworkStatusStored))
		assert.True(t, errors.Is(err, store.ErrDuplicateID))
	})

	t.Run("update applies only set fields", func(t *testing.T) {
		title := "Renamed"
		got, err := repo.Update(ctx, "a1", model.ArtworkPatch{Title: &title})
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Renamed", got.Title)
		assert.Equal(t, "Anon", got.Author)
	})

	t.Run("update unknown id returns nil", func(t *testing.T) {
		title := "x"
		got, err := repo.Update(ctx, "missing", model.ArtworkPatch{Title: &title})
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("list where matches typed enum", func(t *testing.T) {
		rows, err := repo.ListWhere(ctx, store.Criteria{"status": model.ArtworkStatusOnLoan})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "a2", rows[0].ID)

		n, err := repo.Count(ctx, store.Criteria{"category_id": "c1"})
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("delete reports false for unknown id", func(t *testing.T) {
		ok, err := repo.Delete(ctx, "missing")
		assert.NoError(t, err)
		assert.False(t, ok)

		ok, err = repo.Delete(ctx, "a2")
		assert.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestRepositoryDeleteWhere(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[model.RightsMedia](0)
	for _, row := range []model.RightsMedia{
		{Base: model.Base{ID: "m1"}, RightsHolderID: "h1", MediaID: "print"},
		{Base: model.Base{ID: "m2"}, RightsHolderID: "h2", MediaID: "print"},
		{Base: model.Base{ID: "m3"}, RightsHolderID: "h1", MediaID: "web"},
	} {
		_, err := repo.Create(ctx, row)
		require.NoError(t, err)
	}

	n, err := repo.DeleteWhere(ctx, store.Criteria{"artwork_rights_holder_id": "h1"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "m2", rows[0].ID)
}

func TestRepositoryLatencyHonorsContext(t *testing.T) {
	repo := NewRepository[model.Media](time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := repo.List(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRepositoryConcurrentWriters(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[model.Media](0)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Create(ctx, model.Media{Base: model.NewBase(nil), Name: "web"})
		}()
	}
	wg.Wait()

	n, err := repo.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 50, n)
}

func TestRepositoryCreateIfAbsent(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[model.RightsMedia](2 * time.Millisecond)
	criteria := store.Criteria{"artwork_rights_holder_id": "rh1", "media_id": "m1"}

	var wg sync.WaitGroup
	var mu sync.Mutex
	created := 0
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			row := model.RightsMedia{Base: model.NewBase(nil), RightsHolderID: "rh1", MediaID: "m1"}
			_, ok, err := repo.CreateIfAbsent(ctx, criteria, row)
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	n, err := repo.Count(ctx, criteria)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	other, ok, err := repo.CreateIfAbsent(ctx, store.Criteria{"artwork_rights_holder_id": "rh1", "media_id": "m2"},
		model.RightsMedia{Base: model.Base{ID: "rm2"}, RightsHolderID: "rh1", MediaID: "m2"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "rm2", other.ID)
}
