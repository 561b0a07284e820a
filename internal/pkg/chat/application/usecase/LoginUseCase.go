package usecase

import (
	"context"
	"errors"
	"fmt"

	chat "github.com/duvarakeshss/mini-chat/internal/pkg/chat/application/domain"
	repository "github.com/duvarakeshss/mini-chat/internal/pkg/chat/persistence/repository/port"
)

// LoginInput wraps the mobile key presented at login.
type LoginInput struct {
	Mobile string
}

// LoginUseCase resolves an existing user. Unlike profile lookup, an unknown
// mobile is an error here (chat.ErrUserNotFound).
type LoginUseCase struct {
	Users repository.UserRepository
}

func NewLoginUseCase(users repository.UserRepository) *LoginUseCase {
	return &LoginUseCase{Users: users}
}

func (uc *LoginUseCase) Execute(ctx context.Context, in LoginInput) (*chat.User, error) {
	if in.Mobile == "" {
		return nil, chat.ErrEmptyMobile
	}
	u, err := uc.Users.Get(ctx, in.Mobile)
	if errors.Is(err, chat.ErrUserNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return u, nil
}
