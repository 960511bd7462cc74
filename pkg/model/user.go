package model

import "golang.org/x/crypto/bcrypt"

// User is a back-office account. Password is only ever set on input; the
// stored value is PasswordHash.
type User struct {
	Base         `yaml:",inline"`
	Name         string   `json:"name" yaml:"name" validate:"required,min=2"`
	Email        string   `json:"email" yaml:"email" validate:"required,email"`
	Password     string   `json:"password,omitempty" yaml:"password,omitempty" gorm:"-" validate:"omitempty,min=6"`
	PasswordHash string   `json:"-" yaml:"password_hash,omitempty" gorm:"column:password"`
	Role         UserRole `json:"role" yaml:"role" validate:"enum"`
	Department   string   `json:"department" yaml:"department" validate:"required,min=2"`
	Active       bool     `json:"active" yaml:"active"`
}

func (u User) WithBase(b Base) User {
	u.Base = b
	return u
}

func (u User) Attr(column string) (any, bool) {
	switch column {
	case "name":
		return u.Name, true
	case "email":
		return u.Email, true
	case "role":
		return u.Role, true
	case "department":
		return u.Department, true
	case "active":
		return u.Active, true
	}
	return u.Base.attr(column)
}

// HashPassword moves a plaintext Password into PasswordHash.
func (u User) HashPassword() (User, error) {
	if u.Password == "" {
		return u, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return u, err
	}
	u.PasswordHash = string(hash)
	u.Password = ""
	return u, nil
}

// CheckPassword reports whether plain matches the stored hash.
func (u User) CheckPassword(plain string) bool {
	if u.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}

// UserPatch is a partial update of a User.
type UserPatch struct {
	Name       *string   `json:"name,omitempty"`
	Email      *string   `json:"email,omitempty"`
	Password   *string   `json:"password,omitempty"`
	Role       *UserRole `json:"role,omitempty"`
	Department *string   `json:"department,omitempty"`
	Active     *bool     `json:"active,omitempty"`

	// passwordHash is filled in by the service once Password is hashed.
	passwordHash string
}

// WithPasswordHash records the hash to store in place of Password.
func (p UserPatch) WithPasswordHash(hash string) UserPatch {
	p.passwordHash = hash
	p.Password = nil
	return p
}

func (p UserPatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.passwordHash != "" {
		u.PasswordHash = p.passwordHash
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Department != nil {
		u.Department = *p.Department
	}
	if p.Active != nil {
		u.Active = *p.Active
	}
	return u
}

func (p UserPatch) Columns() map[string]any {
	cols := map[string]any{}
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Email != nil {
		cols["email"] = *p.Email
	}
	if p.passwordHash != "" {
		cols["password"] = p.passwordHash
	}
	if p.Role != nil {
		cols["role"] = *p.Role
	}
	if p.Department != nil {
		cols["department"] = *p.Department
	}
	if p.Active != nil {
		cols["active"] = *p.Active
	}
	return cols
}
