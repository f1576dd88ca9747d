package context

import (
	"context"

	"github.com/wpangestu/contacts-api/model"
)

type contextKey string

// UserKey holds the authenticated user resolved by the auth middleware.
const UserKey contextKey = "auth-user"

func WithUser(ctx context.Context, user *model.UserEntity) context.Context {
	return context.WithValue(ctx, UserKey, user)
}

func GetUser(ctx context.Context) (*model.UserEntity, bool) {
	v := ctx.Value(UserKey)
	if v == nil {
		return nil, false
	}
	user, ok := v.(*model.UserEntity)
	return user, ok
}
