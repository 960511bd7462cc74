package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
)

func TestNewBudget(t *testing.T) {
	tests := []struct {
		name          string
		total, spent  float64
		wantSpentPct  int
		wantRemaining float64
		wantHealth    string
	}{
		{"unspent", 1000, 0, 0, 1000, "healthy"},
		{"rounds half up", 8, 1, 13, 7, "healthy"},
		{"warning band", 1000, 600, 60, 400, "warning"},
		{"critical band", 1000, 850, 85, 150, "critical"},
		{"overspent", 100, 150, 150, -50, "critical"},
		{"zero budget", 0, 300, 0, -300, "critical"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBudget(tt.total, tt.spent)
			assert.Equal(t, tt.wantSpentPct, b.SpentPercent)
			assert.Equal(t, tt.wantRemaining, b.Remaining)
			assert.Equal(t, tt.wantHealth, b.Health)
			if tt.total > 0 {
				assert.Equal(t, 100-tt.wantSpentPct, b.RemainingPercent)
			} else {
				assert.Zero(t, b.RemainingPercent)
			}
		})
	}
}

func TestResolveCategory(t *testing.T) {
	found := &Category{Base: Base{ID: "c1"}, Name: "Paintings"}
	assert.Equal(t, "Paintings", ResolveCategory("c1", found).Name)

	missing := ResolveCategory("gone", nil)
	assert.Equal(t, UnknownCategoryName, missing.Name)
	assert.Equal(t, "gone", missing.ID)
}

func TestDiffArtworks(t *testing.T) {
	before := Artwork{Base: Base{ID: "a1"}, Title: "Old", Author: "Anon", Status: ArtworkStatusStored}
	after := ArtworkPatch{
		Title:  strPtr("New"),
		Status: statusPtr(ArtworkStatusOnLoan),
		Author: strPtr("Anon"),
	}.Apply(before)

	rows := DiffArtworks(before, after, nil, time.Unix(0, 0))
	require.Len(t, rows, 2)
	assert.Equal(t, "title", rows[0].ModifiedField)
	assert.JSONEq(t, `"Old"`, string(rows[0].OldValue))
	assert.JSONEq(t, `"New"`, string(rows[0].NewValue))
	assert.Equal(t, "status", rows[1].ModifiedField)
	assert.JSONEq(t, `"on_loan"`, string(rows[1].NewValue))
}

func TestDateJSON(t *testing.T) {
	var p Project
	require.NoError(t, json.Unmarshal([]byte(`{"start_date":"2024-03-05","end_date":null,"status":"active"}`), &p))
	assert.Equal(t, "2024-03-05", p.StartDate.String())
	assert.Nil(t, p.EndDate)
	assert.Equal(t, ProjectStatusActive, p.Status)

	out, err := json.Marshal(p.StartDate)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-05"`, string(out))

	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"05/03/2024"`), &d))
}

func strPtr(s string) *string { return &s }

func statusPtr(s ArtworkStatus) *ArtworkStatus { return &s }

func TestCategoryKinds(t *testing.T) {
	for kind, table := range map[string]string{
		"project":     "project_categories",
		"artwork":     "artwork_categories",
		"contact":     "contact_categories",
		"work-status": "work_statuses",
	} {
		k, err := ParseCategoryKind(kind)
		require.NoError(t, err)
		assert.Equal(t, table, k.Table())
	}

	_, err := ParseCategoryKind("work_status")
	assert.Error(t, err)
}

func TestHistoryYAML(t *testing.T) {
	by := "u1"
	h := ArtworkHistory{
		Base:          Base{ID: "h1", CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
		ArtworkID:     "a1",
		ModifiedBy:    &by,
		ModifiedAt:    time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		ModifiedField: "title",
		OldValue:      datatypes.JSON(`"Lilies"`),
		NewValue:      datatypes.JSON(`"Water Lilies"`),
	}

	out, err := yaml.Marshal([]ArtworkHistory{h})
	require.NoError(t, err)
	assert.Contains(t, string(out), "modified_field: title")

	var back []ArtworkHistory
	require.NoError(t, yaml.Unmarshal(out, &back))
	require.Len(t, back, 1)
	assert.Equal(t, h.ID, back[0].ID)
	assert.Equal(t, "u1", *back[0].ModifiedBy)
	assert.JSONEq(t, `"Water Lilies"`, string(back[0].NewValue))
	assert.JSONEq(t, `"Lilies"`, string(back[0].OldValue))
}
