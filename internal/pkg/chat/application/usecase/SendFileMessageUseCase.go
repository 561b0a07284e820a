package usecase

import (
	"context"
	"fmt"

	chat "github.com/duvarakeshss/mini-chat/internal/pkg/chat/application/domain"
	repository "github.com/duvarakeshss/mini-chat/internal/pkg/chat/persistence/repository/port"
)

// SendFileMessageInput carries a file attachment: the name plus the payload as
// base64 text. The payload is stored verbatim with no size limit, so callers
// bear the cost of large files inflating the message row.
type SendFileMessageInput struct {
	SenderMobile   string
	ReceiverMobile string
	FileName       string
	FileData       string
}

// SendFileMessageUseCase persists a file message with the same existence
// validation as text sends; content becomes an attachment label derived from
// the file name.
type SendFileMessageUseCase struct {
	Users    repository.UserRepository
	Messages repository.MessageRepository
}

func NewSendFileMessageUseCase(users repository.UserRepository, messages repository.MessageRepository) *SendFileMessageUseCase {
	return &SendFileMessageUseCase{Users: users, Messages: messages}
}

func (uc *SendFileMessageUseCase) Execute(ctx context.Context, in SendFileMessageInput) (*chat.Message, error) {
	msg, err := chat.NewFileMessage(in.SenderMobile, in.ReceiverMobile, in.FileName, in.FileData)
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
