package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/corecord/corecord-backend/internal/database"
	"github.com/corecord/corecord-backend/internal/model"
)

type FolderRepository struct {
	pool *pgxpool.Pool
}

func NewFolderRepository(pool *pgxpool.Pool) *FolderRepository {
	return &FolderRepository{pool: pool}
}

func (r *FolderRepository) Create(ctx context.Context, folder *model.Folder) error {
	err := database.Conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO folders (title, user_id)
		VALUES ($1, $2)
		RETURNING id, created_at`,
		folder.Title, folder.UserID,
	).Scan(&folder.ID, &folder.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create folder: %w", err)
	}
	return nil
}

func (r *FolderRepository) FindByID(ctx context.Context, id int64) (*model.Folder, error) {
	rows, err := database.Conn(ctx, r.pool).Query(ctx,
		`SELECT id, title, user_id, created_at FROM folders WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query folder: %w", err)
	}
	folder, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.Folder])
	if err != nil {
		return nil, wrapRow("folders", err)
	}
	return folder, nil
}

// ListByUserID returns the user's folders in creation order.
func (r *FolderRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Folder, error) {
	rows, err := database.Conn(ctx, r.pool).Query(ctx, `
		SELECT id, title, user_id, created_at
		FROM folders
		WHERE user_id = $1
		ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[model.Folder])
}

func (r *FolderRepository) ExistsByUserIDAndTitle(ctx context.Context, userID int64, title string) (bool, error) {
	var exists bool
	err := database.Conn(ctx, r.pool).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM folders WHERE user_id = $1 AND title = $2)`, userID, title,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check folder title: %w", err)
	}
	return exists, nil
}

func (r *FolderRepository) UpdateTitle(ctx context.Context, id int64, title string) error {
	tag, err := database.Conn(ctx, r.pool).Exec(ctx, `UPDATE folders SET title = $2 WHERE id = $1`, id, title)
	if err != nil {
		return fmt.Errorf("failed to rename folder: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("folders", pgx.ErrNoRows)
	}
	return nil
}

// Delete removes the folder together with its records.
func (r *FolderRepository) Delete(ctx context.Context, id int64) error {
	if _, err := database.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM folders WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete folder: %w", err)
	}
	return nil
}
