package repository

import (
	"context"

	chat "github.com/duvarakeshss/mini-chat/internal/pkg/chat/application/domain"
)

// UserRepository is the persistence contract for user records keyed by mobile.
type UserRepository interface {
	// Upsert inserts the user or updates the existing record in place.
	Upsert(ctx context.Context, u chat.User) error

	// Get returns the user for the mobile key, or chat.ErrUserNotFound.
	Get(ctx context.Context, mobile string) (*chat.User, error)

	// Exists reports whether a record for the mobile key is present.
	Exists(ctx context.Context, mobile string) (bool, error)
}
