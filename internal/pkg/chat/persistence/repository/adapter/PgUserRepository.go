package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	chat "github.com/duvarakeshss/mini-chat/internal/pkg/chat/application/domain"
)

type PgUserRepository struct {
	pool *pgxpool.Pool
}

func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

func (r *PgUserRepository) Upsert(ctx context.Context, u chat.User) error {
	if r == nil || r.pool == nil {
		return errors.New("PgUserRepository: nil pool")
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO chat.app_user (mobile, username, about)
		VALUES ($1, $2, $3)
		ON CONFLICT (mobile)
		DO UPDATE SET username = EXCLUDED.username,
		              about = EXCLUDED.about
	`, u.Mobile, u.Username, u.About)
	return err
}

func (r *PgUserRepository) Get(ctx context.Context, mobile string) (*chat.User, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgUserRepository: nil pool")
	}
	var u chat.User
	err := r.pool.QueryRow(ctx,
		"SELECT mobile, username, about FROM chat.app_user WHERE mobile = $1",
		mobile,
	).Scan(&u.Mobile, &u.Username, &u.About)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, chat.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PgUserRepository) Exists(ctx context.Context, mobile string) (bool, error) {
	if r == nil || r.pool == nil {
		return false, errors.New("PgUserRepository: nil pool")
	}
	var exists bool
	err := r.pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM chat.app_user WHERE mobile = $1)",
		mobile,
	).Scan(&exists)
	return exists, err
}
