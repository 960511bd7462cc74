package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/doodlesbykumbi/artrights/pkg/model"
	"github.com/doodlesbykumbi/artrights/pkg/query"
	"github.com/doodlesbykumbi/artrights/pkg/server/store"
)

const minPasswordLength = 6

// Users manages back-office accounts. Passwords are stored as bcrypt hashes.
type Users struct {
	*Entities[model.User]
}

// NewUsers returns the user service over repo.
func NewUsers(repo store.Repository[model.User], cache *query.Client) *Users {
	return &Users{Entities: NewEntities(query.Users, repo, cache)}
}

// Create requires a password and stores its hash.
func (s *Users) Create(ctx context.Context, u model.User) (model.User, error) {
	if u.Password == "" {
		return model.User{}, &model.ValidationError{Fields: map[string]string{"password": "is required"}}
	}
	u = u.WithBase(model.NewBase(userPtr(ctx)))
	if err := model.Validate(u); err != nil {
		return model.User{}, err
	}
	u, err := u.HashPassword()
	if err != nil {
		return model.User{}, fmt.Errorf("hash password: %w", err)
	}
	return s.insert(ctx, u)
}

// Update hashes a new password before it reaches the repository.
func (s *Users) Update(ctx context.Context, id string, patch model.Patch[model.User]) (*model.User, error) {
	if p, ok := patch.(model.UserPatch); ok && p.Password != nil {
		if len(*p.Password) < minPasswordLength {
			return nil, &model.ValidationError{Fields: map[string]string{
				"password": fmt.Sprintf("must be at least %d characters", minPasswordLength),
			}}
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*p.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		patch = p.WithPasswordHash(string(hash))
	}
	return s.Entities.Update(ctx, id, patch)
}
