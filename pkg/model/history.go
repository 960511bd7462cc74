package model

import (
	"encoding/json"
	"time"

	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
)

// ArtworkHistory records one changed field of one artwork update.
type ArtworkHistory struct {
	Base          `yaml:",inline"`
	ArtworkID     string         `json:"artwork_id" yaml:"artwork_id"`
	ModifiedBy    *string        `json:"modified_by,omitempty" yaml:"modified_by,omitempty"`
	ModifiedAt    time.Time      `json:"modified_at" yaml:"modified_at"`
	ModifiedField string         `json:"modified_field" yaml:"modified_field"`
	OldValue      datatypes.JSON `json:"old_value" yaml:"old_value"`
	NewValue      datatypes.JSON `json:"new_value" yaml:"new_value"`
}

// historyYAML is the fixture form of ArtworkHistory. Values stay JSON text.
type historyYAML struct {
	Base          `yaml:",inline"`
	ArtworkID     string    `yaml:"artwork_id"`
	ModifiedBy    *string   `yaml:"modified_by,omitempty"`
	ModifiedAt    time.Time `yaml:"modified_at"`
	ModifiedField string    `yaml:"modified_field"`
	OldValue      string    `yaml:"old_value,omitempty"`
	NewValue      string    `yaml:"new_value,omitempty"`
}

func (h ArtworkHistory) MarshalYAML() (interface{}, error) {
	return historyYAML{
		Base:          h.Base,
		ArtworkID:     h.ArtworkID,
		ModifiedBy:    h.ModifiedBy,
		ModifiedAt:    h.ModifiedAt,
		ModifiedField: h.ModifiedField,
		OldValue:      string(h.OldValue),
		NewValue:      string(h.NewValue),
	}, nil
}

func (h *ArtworkHistory) UnmarshalYAML(node *yaml.Node) error {
	var v historyYAML
	if err := node.Decode(&v); err != nil {
		return err
	}
	*h = ArtworkHistory{
		Base:          v.Base,
		ArtworkID:     v.ArtworkID,
		ModifiedBy:    v.ModifiedBy,
		ModifiedAt:    v.ModifiedAt,
		ModifiedField: v.ModifiedField,
	}
	if v.OldValue != "" {
		h.OldValue = datatypes.JSON(v.OldValue)
	}
	if v.NewValue != "" {
		h.NewValue = datatypes.JSON(v.NewValue)
	}
	return nil
}

func (ArtworkHistory) TableName() string {
	return "artworks_history"
}

func (h ArtworkHistory) WithBase(b Base) ArtworkHistory {
	h.Base = b
	return h
}

func (h ArtworkHistory) Attr(column string) (any, bool) {
	switch column {
	case "artwork_id":
		return h.ArtworkID, true
	case "modified_at":
		return h.ModifiedAt, true
	case "modified_field":
		return h.ModifiedField, true
	}
	return h.Base.attr(column)
}

// ArtworkHistoryPatch is empty; history rows are append-only.
type ArtworkHistoryPatch struct{}

func (ArtworkHistoryPatch) Apply(h ArtworkHistory) ArtworkHistory { return h }
func (ArtworkHistoryPatch) Columns() map[string]any               { return map[string]any{} }

// DiffArtworks returns one history row per column that differs between
// before and after, in column order.
func DiffArtworks(before, after Artwork, modifiedBy *string, at time.Time) []ArtworkHistory {
	var rows []ArtworkHistory
	for _, column := range artworkHistoryColumns {
		old, _ := before.Attr(column)
		cur, _ := after.Attr(column)
		oldJSON, _ := json.Marshal(old)
		curJSON, _ := json.Marshal(cur)
		if string(oldJSON) == string(curJSON) {
			continue
		}
		rows = append(rows, ArtworkHistory{
			ArtworkID:     before.ID,
			ModifiedBy:    modifiedBy,
			ModifiedAt:    at,
			ModifiedField: column,
			OldValue:      datatypes.JSON(oldJSON),
			NewValue:      datatypes.JSON(curJSON),
		})
	}
	return rows
}

var artworkHistoryColumns = []string{
	"title", "author", "period", "origin", "exhibition_number",
	"reference", "image_url", "project_id", "category_id", "status",
}
