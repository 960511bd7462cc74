package seed

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/doodlesbykumbi/artrights/pkg/model"
	"github.com/doodlesbykumbi/artrights/pkg/server/store"
	"github.com/doodlesbykumbi/artrights/pkg/server/store/memory"
)

func TestDemoLoads(t *testing.T) {
	ctx := context.Background()
	stores := memory.NewStores(0)

	f, err := Demo()
	require.NoError(t, err)
	summary, err := f.Apply(ctx, stores)
	require.NoError(t, err)

	assert.Equal(t, 3, summary["users"])
	assert.Equal(t, 4, summary["artworks"])
	assert.Equal(t, 6, summary["rights_media"])
	assert.Equal(t, 4, summary["work_statuses"])

	lilies, err := stores.Artworks.Get(ctx, "art-lilies")
	require.NoError(t, err)
	require.NotNil(t, lilies)
	assert.Equal(t, model.ArtworkStatusOnDisplay, lilies.Status)
	assert.Equal(t, "1906", lilies.Period)

	project, err := stores.Projects.Get(ctx, "prj-impressions")
	require.NoError(t, err)
	require.NotNil(t, project)
	assert.Equal(t, model.NewDate(2024, 3, 1), project.StartDate)
	require.NotNil(t, project.EndDate)

	admin, err := stores.Users.Get(ctx, "usr-admin")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Empty(t, admin.Password)
	assert.True(t, admin.CheckPassword("changeme"))

	rows, err := stores.RightsMedia.ListWhere(ctx, store.Criteria{"artwork_rights_holder_id": "rh-lilies-orsay"})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.NotEmpty(t, rows[0].ID)
	assert.False(t, rows[0].CreatedAt.IsZero())
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse(strings.NewReader("artworks:\n  - titel: Typo\n"))
	assert.Error(t, err)
}

func TestParseEmpty(t *testing.T) {
	f, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, f.Artworks)
}

func TestApplyValidates(t *testing.T) {
	ctx := context.Background()
	stores := memory.NewStores(0)

	_, err := Load(ctx, stores, strings.NewReader(`
media:
  - id: m1
    name: Print
  - id: m2
`))
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, err.Error(), "media[1]")

	n, err := stores.Media.Count(ctx, store.Criteria{})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestApplyRejectsDuplicateIDs(t *testing.T) {
	ctx := context.Background()
	stores := memory.NewStores(0)

	_, err := Load(ctx, stores, strings.NewReader(`
media:
  - id: m1
    name: Print
  - id: m1
    name: Web
`))
	assert.ErrorIs(t, err, store.ErrDuplicateID)
}

func TestExportRoundTrip(t *testing.T) {
	ctx := context.Background()
	source := memory.NewStores(0)
	f, err := Demo()
	require.NoError(t, err)
	loaded, err := f.Apply(ctx, source)
	require.NoError(t, err)
	by := "usr-admin"
	_, err = source.History.Create(ctx, model.ArtworkHistory{
		Base:          model.NewBase(&by),
		ArtworkID:     "art-lilies",
		ModifiedBy:    &by,
		ModifiedAt:    time.Now().UTC(),
		ModifiedField: "period",
		OldValue:      datatypes.JSON(`"1905"`),
		NewValue:      datatypes.JSON(`"1906"`),
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Export(ctx, source, &buf))
	assert.Contains(t, buf.String(), "password_hash:")
	assert.NotContains(t, buf.String(), "password: changeme")

	target := memory.NewStores(0)
	reloaded, err := Load(ctx, target, &buf)
	require.NoError(t, err)
	assert.Equal(t, loaded.Total()+1, reloaded.Total())
	assert.Equal(t, 1, reloaded["history"])
	assert.Equal(t, 4, reloaded["work_statuses"])

	history, err := target.History.ListWhere(ctx, store.Criteria{"artwork_id": "art-lilies"})
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "period", history[0].ModifiedField)
	assert.JSONEq(t, `"1906"`, string(history[0].NewValue))

	admin, err := target.Users.Get(ctx, "usr-admin")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.True(t, admin.CheckPassword("changeme"))

	holder, err := target.RightsHolders.Get(ctx, "rh-lilies-orsay")
	require.NoError(t, err)
	require.NotNil(t, holder)
	assert.Equal(t, 1200.0, holder.Price)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	stores := memory.NewStores(0)
	f, err := Demo()
	require.NoError(t, err)
	_, err = f.Apply(ctx, stores)
	require.NoError(t, err)

	require.NoError(t, Reset(ctx, stores))

	for name, count := range map[string]func() (int, error){
		"artworks":     func() (int, error) { return stores.Artworks.Count(ctx, store.Criteria{}) },
		"rights_media": func() (int, error) { return stores.RightsMedia.Count(ctx, store.Criteria{}) },
		"users":        func() (int, error) { return stores.Users.Count(ctx, store.Criteria{}) },
	} {
		n, err := count()
		require.NoError(t, err)
		assert.Zero(t, n, name)
	}

	_, err = f.Apply(ctx, stores)
	assert.NoError(t, err)
}
