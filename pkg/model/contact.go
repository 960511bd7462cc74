package model

// Contact is an organisation or person that can hold rights.
type Contact struct {
	Base          `yaml:",inline"`
	Name          string `json:"name" yaml:"name" validate:"required,min=2"`
	ContactPerson string `json:"contact_person" yaml:"contact_person" validate:"required,min=2"`
	Email         string `json:"email" yaml:"email" validate:"required,email"`
	Address       string `json:"address" yaml:"address,omitempty"`
	Phone         string `json:"phone" yaml:"phone,omitempty"`
	Notes         string `json:"notes" yaml:"notes,omitempty"`
	CategoryID    string `json:"category_id" yaml:"category_id" validate:"required"`
}

func (c Contact) WithBase(b Base) Contact {
	c.Base = b
	return c
}

func (c Contact) Attr(column string) (any, bool) {
	switch column {
	case "name":
		return c.Name, true
	case "contact_person":
		return c.ContactPerson, true
	case "email":
		return c.Email, true
	case "address":
		return c.Address, true
	case "phone":
		return c.Phone, true
	case "notes":
		return c.Notes, true
	case "category_id":
		return c.CategoryID, true
	}
	return c.Base.attr(column)
}

// ContactPatch is a partial update of a Contact.
type ContactPatch struct {
	Name          *string `json:"name,omitempty"`
	ContactPerson *string `json:"contact_person,omitempty"`
	Email         *string `json:"email,omitempty"`
	Address       *string `json:"address,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	CategoryID    *string `json:"category_id,omitempty"`
}

func (p ContactPatch) Apply(c Contact) Contact {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.ContactPerson != nil {
		c.ContactPerson = *p.ContactPerson
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
	if p.CategoryID != nil {
		c.CategoryID = *p.CategoryID
	}
	return c
}

func (p ContactPatch) Columns() map[string]any {
	cols := map[string]any{}
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.ContactPerson != nil {
		cols["contact_person"] = *p.ContactPerson
	}
	if p.Email != nil {
		cols["email"] = *p.Email
	}
	if p.Address != nil {
		cols["address"] = *p.Address
	}
	if p.Phone != nil {
		cols["phone"] = *p.Phone
	}
	if p.Notes != nil {
		cols["notes"] = *p.Notes
	}
	if p.CategoryID != nil {
		cols["category_id"] = *p.CategoryID
	}
	return cols
}
