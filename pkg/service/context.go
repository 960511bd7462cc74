package service

import "context"

type userKey struct{}

// WithUser returns a context carrying the id of the acting user.
func WithUser(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userKey{}, userID)
}

// UserFrom returns the acting user id, or "" when none is set.
func UserFrom(ctx context.Context) string {
	id, _ := ctx.Value(userKey{}).(string)
	return id
}

func userPtr(ctx context.Context) *string {
	if id := UserFrom(ctx); id != "" {
		return &id
	}
	return nil
}
