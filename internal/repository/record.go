package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/corecord/corecord-backend/internal/database"
	"github.com/corecord/corecord-backend/internal/model"
)

const recordColumns = `id, title, content, type, user_id, folder_id, created_at`

type RecordRepository struct {
	pool *pgxpool.Pool
}

func NewRecordRepository(pool *pgxpool.Pool) *RecordRepository {
	return &RecordRepository{pool: pool}
}

func (r *RecordRepository) Create(ctx context.Context, record *model.Record) error {
	err := database.Conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO records (title, content, type, user_id, folder_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		record.Title, record.Content, record.Type, record.UserID, record.FolderID,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create record: %w", err)
	}
	return nil
}

func (r *RecordRepository) FindByID(ctx context.Context, id int64) (*model.Record, error) {
	rows, err := database.Conn(ctx, r.pool).Query(ctx,
		`SELECT `+recordColumns+` FROM records WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query record: %w", err)
	}
	record, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.Record])
	if err != nil {
		return nil, wrapRow("records", err)
	}
	return record, nil
}

// ListByUserID returns the user's filed records, newest first. Temporary
// records have no folder and are never listed. A nil folderID lists every
// folder.
func (r *RecordRepository) ListByUserID(ctx context.Context, userID int64, folderID *int64) ([]model.Record, error) {
	rows, err := database.Conn(ctx, r.pool).Query(ctx, `
		SELECT `+recordColumns+`
		FROM records
		WHERE user_id = $1
		  AND folder_id IS NOT NULL
		  AND ($2::bigint IS NULL OR folder_id = $2)
		ORDER BY created_at DESC, id DESC`, userID, folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[model.Record])
}

// CountByUserID counts every record of the user, temporary ones included.
func (r *RecordRepository) CountByUserID(ctx context.Context, userID int64) (int, error) {
	var count int
	err := database.Conn(ctx, r.pool).QueryRow(ctx,
		`SELECT COUNT(*) FROM records WHERE user_id = $1`, userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

func (r *RecordRepository) UpdateFolder(ctx context.Context, id, folderID int64) error {
	tag, err := database.Conn(ctx, r.pool).Exec(ctx, `UPDATE records SET folder_id = $2 WHERE id = $1`, id, folderID)
	if err != nil {
		return fmt.Errorf("failed to move record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("records", pgx.ErrNoRows)
	}
	return nil
}

func (r *RecordRepository) Delete(ctx context.Context, id int64) error {
	if _, err := database.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM records WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}
