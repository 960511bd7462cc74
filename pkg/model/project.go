package model

// Project groups artworks under a budget.
type Project struct {
	Base        `yaml:",inline"`
	Title       string        `json:"title" yaml:"title" validate:"required,min=2"`
	Description string        `json:"description" yaml:"description,omitempty"`
	StartDate   Date          `json:"start_date" yaml:"start_date" validate:"required"`
	EndDate     *Date         `json:"end_date,omitempty" yaml:"end_date,omitempty"`
	CategoryID  string        `json:"category_id" yaml:"category_id" validate:"required"`
	Budget      float64       `json:"budget" yaml:"budget" validate:"gte=0"`
	Status      ProjectStatus `json:"status" yaml:"status" validate:"enum"`
}

func (p Project) WithBase(b Base) Project {
	p.Base = b
	return p
}

func (p Project) Attr(column string) (any, bool) {
	switch column {
	case "title":
		return p.Title, true
	case "description":
		return p.Description, true
	case "start_date":
		return p.StartDate, true
	case "end_date":
		if p.EndDate == nil {
			return Date{}, true
		}
		return *p.EndDate, true
	case "category_id":
		return p.CategoryID, true
	case "budget":
		return p.Budget, true
	case "status":
		return p.Status, true
	}
	return p.Base.attr(column)
}

// ProjectPatch is a partial update of a Project.
type ProjectPatch struct {
	Title       *string        `json:"title,omitempty"`
	Description *string        `json:"description,omitempty"`
	StartDate   *Date          `json:"start_date,omitempty"`
	EndDate     *Date          `json:"end_date,omitempty"`
	CategoryID  *string        `json:"category_id,omitempty"`
	Budget      *float64       `json:"budget,omitempty"`
	Status      *ProjectStatus `json:"status,omitempty"`
}

func (p ProjectPatch) Apply(v Project) Project {
	if p.Title != nil {
		v.Title = *p.Title
	}
	if p.Description != nil {
		v.Description = *p.Description
	}
	if p.StartDate != nil {
		v.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		end := *p.EndDate
		v.EndDate = &end
	}
	if p.CategoryID != nil {
		v.CategoryID = *p.CategoryID
	}
	if p.Budget != nil {
		v.Budget = *p.Budget
	}
	if p.Status != nil {
		v.Status = *p.Status
	}
	return v
}

func (p ProjectPatch) Columns() map[string]any {
	cols := map[string]any{}
	if p.Title != nil {
		cols["title"] = *p.Title
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	if p.StartDate != nil {
		cols["start_date"] = *p.StartDate
	}
	if p.EndDate != nil {
		cols["end_date"] = *p.EndDate
	}
	if p.CategoryID != nil {
		cols["category_id"] = *p.CategoryID
	}
	if p.Budget != nil {
		cols["budget"] = *p.Budget
	}
	if p.Status != nil {
		cols["status"] = *p.Status
	}
	return cols
}
