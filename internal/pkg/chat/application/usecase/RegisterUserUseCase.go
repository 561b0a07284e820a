package usecase

import (
	"context"
	"fmt"

	chat "github.com/duvarakeshss/mini-chat/internal/pkg/chat/application/domain"
	repository "github.com/duvarakeshss/mini-chat/internal/pkg/chat/persistence/repository/port"
)

// RegisterUserInput carries the registration fields. Username and About are
// optional; defaults are applied by the domain (chat.NewUser).
type RegisterUserInput struct {
	Mobile   string
	Username string
	About    string
}

// RegisterUserUseCase upserts a user record. Registering an existing mobile is
// not an error: the record is updated in place.
type RegisterUserUseCase struct {
	Users repository.UserRepository
}

func NewRegisterUserUseCase(users repository.UserRepository) *RegisterUserUseCase {
	return &RegisterUserUseCase{Users: users}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, in RegisterUserInput) (*chat.User, error) {
	u, err := chat.NewUser(in.Mobile, in.Username, in.About)
	if err != nil {
		return nil, err
	}
	if err := uc.Users.Upsert(ctx, *u); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return u, nil
}
