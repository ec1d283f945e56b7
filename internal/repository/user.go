package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/corecord/corecord-backend/internal/database"
	"github.com/corecord/corecord-backend/internal/model"
)

const userColumns = `id, provider_id, nick_name, status, tmp_memo, tmp_chat, created_at, updated_at`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	err := database.Conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO users (provider_id, nick_name, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`,
		user.ProviderID, user.NickName, user.Status,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *UserRepository) findOne(ctx context.Context, where string, arg any) (*model.User, error) {
	rows, err := database.Conn(ctx, r.pool).Query(ctx, `SELECT `+userColumns+` FROM users WHERE `+where, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	user, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.User])
	if err != nil {
		return nil, wrapRow("users", err)
	}
	return user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	return r.findOne(ctx, "id = $1", id)
}

func (r *UserRepository) FindByProviderID(ctx context.Context, providerID string) (*model.User, error) {
	return r.findOne(ctx, "provider_id = $1", providerID)
}

func (r *UserRepository) ExistsByProviderID(ctx context.Context, providerID string) (bool, error) {
	var exists bool
	err := database.Conn(ctx, r.pool).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE provider_id = $1)`, providerID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

// Update persists nickname, status and both temporary record slots.
func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	err := database.Conn(ctx, r.pool).QueryRow(ctx, `
		UPDATE users
		SET nick_name = $2, status = $3, tmp_memo = $4, tmp_chat = $5, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`,
		user.ID, user.NickName, user.Status, user.TmpMemo, user.TmpChat,
	).Scan(&user.UpdatedAt)
	if err != nil {
		return wrapRow("users", fmt.Errorf("failed to update user: %w", err))
	}
	return nil
}

// Delete removes the user; folders, records, analyses and abilities cascade.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	if _, err := database.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
