package model

// RightsHolder is one licensing agreement between an artwork and a contact.
type RightsHolder struct {
	Base      `yaml:",inline"`
	ArtworkID string  `json:"artwork_id" yaml:"artwork_id" validate:"required"`
	ContactID string  `json:"contact_id" yaml:"contact_id" validate:"required"`
	Price     float64 `json:"price" yaml:"price" validate:"gte=0"`
}

func (RightsHolder) TableName() string {
	return "artwork_rights_holders"
}

func (r RightsHolder) WithBase(b Base) RightsHolder {
	r.Base = b
	return r
}

func (r RightsHolder) Attr(column string) (any, bool) {
	switch column {
	case "artwork_id":
		return r.ArtworkID, true
	case "contact_id":
		return r.ContactID, true
	case "price":
		return r.Price, true
	}
	return r.Base.attr(column)
}

// RightsHolderPatch is a partial update of a RightsHolder.
type RightsHolderPatch struct {
	ContactID *string  `json:"contact_id,omitempty"`
	Price     *float64 `json:"price,omitempty"`
}

func (p RightsHolderPatch) Apply(r RightsHolder) RightsHolder {
	if p.ContactID != nil {
		r.ContactID = *p.ContactID
	}
	if p.Price != nil {
		r.Price = *p.Price
	}
	return r
}

func (p RightsHolderPatch) Columns() map[string]any {
	cols := map[string]any{}
	if p.ContactID != nil {
		cols["contact_id"] = *p.ContactID
	}
	if p.Price != nil {
		cols["price"] = *p.Price
	}
	return cols
}

// RightsMedia links a RightsHolder to one Media it licenses.
type RightsMedia struct {
	Base           `yaml:",inline"`
	RightsHolderID string `json:"artwork_rights_holder_id" yaml:"artwork_rights_holder_id" gorm:"column:artwork_rights_holder_id"`
	MediaID        string `json:"media_id" yaml:"media_id"`
}

func (RightsMedia) TableName() string {
	return "artwork_rights_media"
}

func (m RightsMedia) WithBase(b Base) RightsMedia {
	m.Base = b
	return m
}

func (m RightsMedia) Attr(column string) (any, bool) {
	switch column {
	case "artwork_rights_holder_id":
		return m.RightsHolderID, true
	case "media_id":
		return m.MediaID, true
	}
	return m.Base.attr(column)
}

// RightsMediaPatch is a partial update of a RightsMedia. Associations are
// only ever created or deleted, so it carries no fields.
type RightsMediaPatch struct{}

func (RightsMediaPatch) Apply(m RightsMedia) RightsMedia { return m }
func (RightsMediaPatch) Columns() map[string]any         { return map[string]any{} }
