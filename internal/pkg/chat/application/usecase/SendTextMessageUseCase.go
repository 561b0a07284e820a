package usecase

import (
	"context"
	"fmt"

	chat "github.com/duvarakeshss/mini-chat/internal/pkg/chat/application/domain"
	repository "github.com/duvarakeshss/mini-chat/internal/pkg/chat/persistence/repository/port"
)

// SendTextMessageInput carries the data needed to persist one text message.
type SendTextMessageInput struct {
	SenderMobile   string
	ReceiverMobile string
	Content        string
}

// SendTextMessageUseCase validates both parties against the store and records
// the message with exactly one durable write. The store assigns id and
// timestamp; the returned message carries both.
type SendTextMessageUseCase struct {
	Users    repository.UserRepository
	Messages repository.MessageRepository
}

func NewSendTextMessageUseCase(users repository.UserRepository, messages repository.MessageRepository) *SendTextMessageUseCase {
	return &SendTextMessageUseCase{Users: users, Messages: messages}
}

func (uc *SendTextMessageUseCase) Execute(ctx context.Context, in SendTextMessageInput) (*chat.Message, error) {
	msg, err := chat.NewTextMessage(in.SenderMobile, in.ReceiverMobile, in.Content)
	if err != nil {
		return nil, err
	}
	if err := requireBothUsers(ctx, uc.Users, msg.SenderMobile, msg.ReceiverMobile); err != nil {
		return nil, err
	}
	saved, err := uc.Messages.Save(ctx, *msg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return saved, nil
}

// requireBothUsers fails with chat.ErrUserNotFound unless sender and receiver
// both exist in the store.
func requireBothUsers(ctx context.Context, users repository.UserRepository, sender, receiver string) error {
	for _, mobile := range []string{sender, receiver} {
		ok, err := users.Exists(ctx, mobile)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		if !ok {
			return chat.ErrUserNotFound
		}
	}
	return nil
}
