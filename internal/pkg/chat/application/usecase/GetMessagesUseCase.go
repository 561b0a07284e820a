package usecase

import (
	"context"
	"fmt"

	chat "github.com/duvarakeshss/mini-chat/internal/pkg/chat/application/domain"
	repository "github.com/duvarakeshss/mini-chat/internal/pkg/chat/persistence/repository/port"
)

// GetMessagesInput wraps the mobile whose history is requested.
type GetMessagesInput struct {
	Mobile string
}

// GetMessagesUseCase returns all messages sent or received by a user, ordered
// by creation time ascending.
type GetMessagesUseCase struct {
	Messages repository.MessageRepository
}

func NewGetMessagesUseCase(messages repository.MessageRepository) *GetMessagesUseCase {
	return &GetMessagesUseCase{Messages: messages}
}

func (uc *GetMessagesUseCase) Execute(ctx context.Context, in GetMessagesInput) ([]chat.Message, error) {
	if in.Mobile == "" {
		return nil, chat.ErrEmptyMobile
	}
	msgs, err := uc.Messages.ListByParticipant(ctx, in.Mobile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return msgs, nil
}
