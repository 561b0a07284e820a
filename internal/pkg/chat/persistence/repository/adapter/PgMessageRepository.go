package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	chat "github.com/duvarakeshss/mini-chat/internal/pkg/chat/application/domain"
)

type PgMessageRepository struct {
	pool *pgxpool.Pool
}

func NewPgMessageRepository(pool *pgxpool.Pool) *PgMessageRepository {
	return &PgMessageRepository{pool: pool}
}

func (r *PgMessageRepository) Save(ctx context.Context, m chat.Message) (*chat.Message, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgMessageRepository: nil pool")
	}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO chat.message (
			sender_mobile, receiver_mobile, content, file_name, file_data, is_file
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id::text, created_at
	`, m.SenderMobile, m.ReceiverMobile, m.Content, m.FileName, m.FileData, m.IsFile).
		Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgMessageRepository) ListByParticipant(ctx context.Context, mobile string) ([]chat.Message, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgMessageRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, sender_mobile, receiver_mobile, content, file_name, file_data, is_file, created_at
		FROM chat.message
		WHERE sender_mobile = $1 OR receiver_mobile = $1
		ORDER BY created_at ASC
	`, mobile)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []chat.Message
	for rows.Next() {
		var msg chat.Message
		if err := rows.Scan(&msg.ID, &msg.SenderMobile, &msg.ReceiverMobile, &msg.Content,
			&msg.FileName, &msg.FileData, &msg.IsFile, &msg.CreatedAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, msg)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return msgs, nil
}
