package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	cacheport "github.com/duvarakeshss/mini-chat/internal/infrastructure/cache/port"
	chat "github.com/duvarakeshss/mini-chat/internal/pkg/chat/application/domain"
	repository "github.com/duvarakeshss/mini-chat/internal/pkg/chat/persistence/repository/port"
)

// userCacheTTL bounds staleness of cached profiles; registration is rare enough
// that a short TTL beats explicit invalidation fan-out.
const userCacheTTL = 5 * time.Minute

// GetUserInput wraps the mobile key to look up.
type GetUserInput struct {
	Mobile string
}

// GetUserUseCase returns a user's profile, reading through an optional cache.
// Unknown mobiles are not an error: a placeholder profile is synthesized with
// username = mobile and an empty bio. This asymmetry with login is deliberate
// and matches the behavior clients depend on.
type GetUserUseCase struct {
	Users repository.UserRepository
	Cache cacheport.Cache // optional; nil disables caching
}

func NewGetUserUseCase(users repository.UserRepository, cache cacheport.Cache) *GetUserUseCase {
	return &GetUserUseCase{Users: users, Cache: cache}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, in GetUserInput) (*chat.User, error) {
	if in.Mobile == "" {
		return nil, chat.ErrEmptyMobile
	}

	if uc.Cache != nil {
		if raw, err := uc.Cache.Get(ctx, chat.UserCacheKey(in.Mobile)); err == nil {
			var u chat.User
			if json.Unmarshal([]byte(raw), &u) == nil {
				return &u, nil
			}
		}
	}

	u, err := uc.Users.Get(ctx, in.Mobile)
	if errors.Is(err, chat.ErrUserNotFound) {
		placeholder := chat.PlaceholderUser(in.Mobile)
		return &placeholder, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if uc.Cache != nil {
		if raw, err := json.Marshal(u); err == nil {
			// Best effort; a failed cache write must not fail the lookup.
			_ = uc.Cache.Set(ctx, chat.UserCacheKey(in.Mobile), string(raw), userCacheTTL)
		}
	}
	return u, nil
}
