package model

// Media is a licensing channel such as print or web. It is not a file.
type Media struct {
	Base `yaml:",inline"`
	Name string `json:"name" yaml:"name" validate:"required"`
}

func (Media) TableName() string {
	return "media"
}

func (m Media) WithBase(b Base) Media {
	m.Base = b
	return m
}

func (m Media) Attr(column string) (any, bool) {
	if column == "name" {
		return m.Name, true
	}
	return m.Base.attr(column)
}

// MediaPatch is a partial update of a Media.
type MediaPatch struct {
	Name *string `json:"name,omitempty"`
}

func (p MediaPatch) Apply(m Media) Media {
	if p.Name != nil {
		m.Name = *p.Name
	}
	return m
}

func (p MediaPatch) Columns() map[string]any {
	cols := map[string]any{}
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	return cols
}
