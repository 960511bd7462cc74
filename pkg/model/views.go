package model

import "math"

// RightsTotals is the cost and count of rights holders of one artwork.
type RightsTotals struct {
	TotalCost float64 `json:"total_cost"`
	Count     int     `json:"count"`
}

// MediaRight is an association row with its media resolved.
type MediaRight struct {
	RightsMedia
	Media *Media `json:"media,omitempty"`
}

// RightsHolderView is a rights holder joined with its contact and media.
type RightsHolderView struct {
	RightsHolder
	Contact     *Contact     `json:"contact,omitempty"`
	MediaRights []MediaRight `json:"media_rights"`
}

// MediaIDs lists the ids of the associated media in association order.
func (v RightsHolderView) MediaIDs() []string {
	ids := make([]string, 0, len(v.MediaRights))
	for _, mr := range v.MediaRights {
		ids = append(ids, mr.MediaID)
	}
	return ids
}

// ArtworkView is an artwork joined with its project, category and rights totals.
type ArtworkView struct {
	Artwork
	Project  *Project     `json:"project,omitempty"`
	Category Category     `json:"category"`
	Rights   RightsTotals `json:"rights"`
}

// Budget summarises how much of a project budget has been committed.
type Budget struct {
	Total            float64 `json:"total"`
	Spent            float64 `json:"spent"`
	Remaining        float64 `json:"remaining"`
	SpentPercent     int     `json:"spent_percent"`
	RemainingPercent int     `json:"remaining_percent"`
	Health           string  `json:"health"`
}

// NewBudget derives the summary for a total budget and the amount spent.
// Percentages are rounded to the nearest integer and are 0 when the total is 0.
func NewBudget(total, spent float64) Budget {
	b := Budget{
		Total:     total,
		Spent:     spent,
		Remaining: total - spent,
	}
	if total > 0 {
		b.SpentPercent = int(math.Floor(spent/total*100 + 0.5))
		b.RemainingPercent = 100 - b.SpentPercent
	}
	switch {
	case b.RemainingPercent > 50:
		b.Health = "healthy"
	case b.RemainingPercent > 20:
		b.Health = "warning"
	default:
		b.Health = "critical"
	}
	return b
}

// ProjectView is a project joined with its category and budget summary.
type ProjectView struct {
	Project
	Category        Category `json:"category"`
	Budget          Budget   `json:"budget_summary"`
	DescriptionHTML string   `json:"description_html"`
	ArtworkCount    int      `json:"artwork_count"`
}

// ContactView is a contact joined with its category and rendered notes.
type ContactView struct {
	Contact
	Category  Category `json:"category"`
	NotesHTML string   `json:"notes_html"`
}

// ResolveCategory returns found, or a placeholder named UnknownCategoryName
// carrying id when the reference does not resolve.
func ResolveCategory(id string, found *Category) Category {
	if found != nil {
		return *found
	}
	return Category{Base: Base{ID: id}, Name: UnknownCategoryName}
}
