package model

import (
	"time"

	"github.com/google/uuid"
)

// Base carries the identity and creation metadata shared by every record.
type Base struct {
	ID        string    `json:"id" yaml:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	CreatedBy *string   `json:"created_by,omitempty" yaml:"created_by,omitempty"`
}

// NewBase returns a Base with a fresh id and the current time.
func NewBase(createdBy *string) Base {
	return Base{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		CreatedBy: createdBy,
	}
}

// Key returns the record id.
func (b Base) Key() string {
	return b.ID
}

func (b Base) attr(column string) (any, bool) {
	switch column {
	case "id":
		return b.ID, true
	case "created_at":
		return b.CreatedAt, true
	case "created_by":
		if b.CreatedBy == nil {
			return "", true
		}
		return *b.CreatedBy, true
	}
	return nil, false
}

// Record is implemented by every stored entity. Attr exposes a column value by
// its database name so repositories and tables can filter and sort without
// knowing the concrete type.
type Record interface {
	Key() string
	Attr(column string) (any, bool)
}

// Entity is a Record that can be re-stamped with a new Base.
type Entity[T any] interface {
	Record
	WithBase(Base) T
}

// Patch is a partial update. Apply returns a copy of the record with the set
// fields replaced; Columns lists the same fields by column name.
type Patch[T any] interface {
	Apply(T) T
	Columns() map[string]any
}
