package model

import "fmt"

// CategoryKind selects which category collection a Category belongs to.
type CategoryKind string

const (
	CategoryKindProject CategoryKind = "project"
	CategoryKindArtwork CategoryKind = "artwork"
	CategoryKindContact CategoryKind = "contact"
	// CategoryKindWorkStatus labels the artwork statuses shown to users.
	CategoryKindWorkStatus CategoryKind = "work-status"
)

// UnknownCategoryName is shown for a category reference that does not resolve.
const UnknownCategoryName = "Unknown category"

// CategoryKinds lists every supported kind.
func CategoryKinds() []CategoryKind {
	return []CategoryKind{CategoryKindProject, CategoryKindArtwork, CategoryKindContact, CategoryKindWorkStatus}
}

// ParseCategoryKind validates a kind taken from user input.
func ParseCategoryKind(s string) (CategoryKind, error) {
	for _, k := range CategoryKinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown category kind %q", s)
}

// Table is the table holding categories of this kind.
func (k CategoryKind) Table() string {
	if k == CategoryKindWorkStatus {
		return "work_statuses"
	}
	return string(k) + "_categories"
}

// Category is a user-defined grouping label.
type Category struct {
	Base        `yaml:",inline"`
	Name        string `json:"name" yaml:"name" validate:"required,min=2"`
	Description string `json:"description" yaml:"description,omitempty"`
}

func (c Category) WithBase(b Base) Category {
	c.Base = b
	return c
}

func (c Category) Attr(column string) (any, bool) {
	switch column {
	case "name":
		return c.Name, true
	case "description":
		return c.Description, true
	}
	return c.Base.attr(column)
}

// CategoryPatch is a partial update of a Category.
type CategoryPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (p CategoryPatch) Apply(c Category) Category {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	return c
}

func (p CategoryPatch) Columns() map[string]any {
	cols := map[string]any{}
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	return cols
}
