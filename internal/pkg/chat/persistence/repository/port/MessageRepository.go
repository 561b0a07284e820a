package repository

import (
	"context"

	chat "github.com/duvarakeshss/mini-chat/internal/pkg/chat/application/domain"
)

// MessageRepository is the append-only message log. Messages are never updated
// or deleted; the store assigns id and created_at on save.
type MessageRepository interface {
	// Save persists the message with exactly one durable write and returns it
	// with the store-assigned ID and CreatedAt filled in.
	Save(ctx context.Context, m chat.Message) (*chat.Message, error)

	// ListByParticipant returns every message where mobile is sender or
	// receiver, ordered by CreatedAt ascending.
	ListByParticipant(ctx context.Context, mobile string) ([]chat.Message, error)
}
