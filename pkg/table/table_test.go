package table

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/artrights/pkg/model"
)

func artworks(titles ...string) []model.Artwork {
	out := make([]model.Artwork, 0, len(titles))
	for i, title := range titles {
		out = append(out, model.Artwork{
			Base:  model.Base{ID: string(rune('a' + i))},
			Title: title,
		})
	}
	return out
}

func ids(rows []model.Artwork) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}

func TestParse(t *testing.T) {
	opts := Options{FilterField: "title", PageSize: 10}

	tests := []struct {
		name    string
		query   string
		want    Query
		wantErr error
	}{
		{
			name:  "defaults",
			query: "",
			want:  Query{FilterField: "title", Page: 1, PageSize: 10},
		},
		{
			name:  "all params",
			query: "q=+Mona+&sort=author&order=DESC&page=3&page_size=20",
			want:  Query{Filter: "Mona", FilterField: "title", SortBy: "author", Desc: true, Page: 3, PageSize: 20},
		},
		{
			name:  "page below one",
			query: "page=-4",
			want:  Query{FilterField: "title", Page: 1, PageSize: 10},
		},
		{
			name:    "page size not offered",
			query:   "page_size=25",
			wantErr: ErrPageSize,
		},
		{
			name:    "bad order",
			query:   "order=sideways",
			wantErr: ErrOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			got, err := Parse(values, opts)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterIsCaseInsensitiveSubstring(t *testing.T) {
	rows := artworks("Mona Lisa", "The Scream", "Lisa's Garden")

	assert.Equal(t, []string{"a", "c"}, ids(Filter(rows, "title", "LISA")))
	assert.Equal(t, []string{"a", "b", "c"}, ids(Filter(rows, "title", "")))
	assert.Empty(t, Filter(rows, "title", "guernica"))
}

func TestSortIsStable(t *testing.T) {
	rows := artworks("b", "a", "b", "a")

	Sort(rows, "title", false)
	assert.Equal(t, []string{"b", "d", "a", "c"}, ids(rows))

	rows = artworks("b", "a", "b", "a")
	Sort(rows, "title", true)
	assert.Equal(t, []string{"a", "c", "b", "d"}, ids(rows))
}

func TestSortNumbersAndDates(t *testing.T) {
	projects := []model.Project{
		{Base: model.Base{ID: "p1"}, Budget: 1000, StartDate: model.NewDate(2024, 3, 1)},
		{Base: model.Base{ID: "p2"}, Budget: 200, StartDate: model.NewDate(2023, 1, 1)},
		{Base: model.Base{ID: "p3"}, Budget: 30, StartDate: model.NewDate(2025, 6, 1)},
	}

	Sort(projects, "budget", false)
	assert.Equal(t, "p3", projects[0].ID)
	assert.Equal(t, "p1", projects[2].ID)

	Sort(projects, "start_date", true)
	assert.Equal(t, "p3", projects[0].ID)
	assert.Equal(t, "p2", projects[2].ID)
}

func TestPaginateClampsPage(t *testing.T) {
	rows := artworks("1", "2", "3", "4", "5")

	p := Paginate(rows, 2, 2)
	assert.Equal(t, []string{"c", "d"}, ids(p.Items))
	assert.Equal(t, 3, p.PageCount)
	assert.Equal(t, 5, p.Total)

	p = Paginate(rows, 9, 2)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, []string{"e"}, ids(p.Items))

	empty := Paginate([]model.Artwork{}, 4, 10)
	assert.Equal(t, 1, empty.Page)
	assert.Equal(t, 1, empty.PageCount)
	assert.Empty(t, empty.Items)
}

func TestApply(t *testing.T) {
	rows := artworks("Sunflowers", "Starry Night", "Water Lilies", "Self Portrait")

	page, err := Apply(rows, Query{Filter: "s", FilterField: "title", SortBy: "title", Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 4, page.Total)
	assert.Equal(t, []string{"d", "b"}, ids(page.Items))
	assert.Equal(t, "Sunflowers", rows[0].Title, "input must not be reordered")

	_, err = Apply(rows, Query{SortBy: "nope", Page: 1, PageSize: 10})
	assert.ErrorIs(t, err, ErrUnknownColumn)
}
