package model

// Task is a follow-up item attached to an artwork.
type Task struct {
	Base        `yaml:",inline"`
	ArtworkID   string `json:"artwork_id" yaml:"artwork_id" validate:"required"`
	Description string `json:"description" yaml:"description" validate:"required"`
	DueDate     *Date  `json:"due_date,omitempty" yaml:"due_date,omitempty"`
}

func (t Task) WithBase(b Base) Task {
	t.Base = b
	return t
}

func (t Task) Attr(column string) (any, bool) {
	switch column {
	case "artwork_id":
		return t.ArtworkID, true
	case "description":
		return t.Description, true
	case "due_date":
		if t.DueDate == nil {
			return Date{}, true
		}
		return *t.DueDate, true
	}
	return t.Base.attr(column)
}

// TaskPatch is a partial update of a Task.
type TaskPatch struct {
	Description *string `json:"description,omitempty"`
	DueDate     *Date   `json:"due_date,omitempty"`
}

func (p TaskPatch) Apply(t Task) Task {
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.DueDate != nil {
		due := *p.DueDate
		t.DueDate = &due
	}
	return t
}

func (p TaskPatch) Columns() map[string]any {
	cols := map[string]any{}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	if p.DueDate != nil {
		cols["due_date"] = *p.DueDate
	}
	return cols
}
