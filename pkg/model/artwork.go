package model

// Artwork is a single licensable work.
type Artwork struct {
	Base             `yaml:",inline"`
	Title            string        `json:"title" yaml:"title" validate:"required"`
	Author           string        `json:"author" yaml:"author" validate:"required"`
	Period           string        `json:"period" yaml:"period,omitempty"`
	Origin           string        `json:"origin" yaml:"origin,omitempty"`
	ExhibitionNumber string        `json:"exhibition_number" yaml:"exhibition_number,omitempty"`
	Reference        string        `json:"reference" yaml:"reference,omitempty"`
	ImageURL         string        `json:"image_url" yaml:"image_url,omitempty" gorm:"column:image_url" validate:"omitempty,url"`
	ProjectID        string        `json:"project_id" yaml:"project_id"`
	CategoryID       string        `json:"category_id" yaml:"category_id" validate:"required"`
	Status           ArtworkStatus `json:"status" yaml:"status" validate:"enum"`
}

func (a Artwork) WithBase(b Base) Artwork {
	a.Base = b
	return a
}

func (a Artwork) Attr(column string) (any, bool) {
	switch column {
	case "title":
		return a.Title, true
	case "author":
		return a.Author, true
	case "period":
		return a.Period, true
	case "origin":
		return a.Origin, true
	case "exhibition_number":
		return a.ExhibitionNumber, true
	case "reference":
		return a.Reference, true
	case "image_url":
		return a.ImageURL, true
	case "project_id":
		return a.ProjectID, true
	case "category_id":
		return a.CategoryID, true
	case "status":
		return a.Status, true
	}
	return a.Base.attr(column)
}

// ArtworkPatch is a partial update of an Artwork.
type ArtworkPatch struct {
	Title            *string        `json:"title,omitempty"`
	Author           *string        `json:"author,omitempty"`
	Period           *string        `json:"period,omitempty"`
	Origin           *string        `json:"origin,omitempty"`
	ExhibitionNumber *string        `json:"exhibition_number,omitempty"`
	Reference        *string        `json:"reference,omitempty"`
	ImageURL         *string        `json:"image_url,omitempty"`
	ProjectID        *string        `json:"project_id,omitempty"`
	CategoryID       *string        `json:"category_id,omitempty"`
	Status           *ArtworkStatus `json:"status,omitempty"`
}

func (p ArtworkPatch) Apply(a Artwork) Artwork {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Author != nil {
		a.Author = *p.Author
	}
	if p.Period != nil {
		a.Period = *p.Period
	}
	if p.Origin != nil {
		a.Origin = *p.Origin
	}
	if p.ExhibitionNumber != nil {
		a.ExhibitionNumber = *p.ExhibitionNumber
	}
	if p.Reference != nil {
		a.Reference = *p.Reference
	}
	if p.ImageURL != nil {
		a.ImageURL = *p.ImageURL
	}
	if p.ProjectID != nil {
		a.ProjectID = *p.ProjectID
	}
	if p.CategoryID != nil {
		a.CategoryID = *p.CategoryID
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	return a
}

func (p ArtworkPatch) Columns() map[string]any {
	cols := map[string]any{}
	if p.Title != nil {
		cols["title"] = *p.Title
	}
	if p.Author != nil {
		cols["author"] = *p.Author
	}
	if p.Period != nil {
		cols["period"] = *p.Period
	}
	if p.Origin != nil {
		cols["origin"] = *p.Origin
	}
	if p.ExhibitionNumber != nil {
		cols["exhibition_number"] = *p.ExhibitionNumber
	}
	if p.Reference != nil {
		cols["reference"] = *p.Reference
	}
	if p.ImageURL != nil {
		cols["image_url"] = *p.ImageURL
	}
	if p.ProjectID != nil {
		cols["project_id"] = *p.ProjectID
	}
	if p.CategoryID != nil {
		cols["category_id"] = *p.CategoryID
	}
	if p.Status != nil {
		cols["status"] = *p.Status
	}
	return cols
}
