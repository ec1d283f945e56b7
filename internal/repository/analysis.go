package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/corecord/corecord-backend/internal/database"
	"github.com/corecord/corecord-backend/internal/model"
)

const analysisColumns = `id, record_id, content, comment, created_at, updated_at`

type AnalysisRepository struct {
	pool *pgxpool.Pool
}

func NewAnalysisRepository(pool *pgxpool.Pool) *AnalysisRepository {
	return &AnalysisRepository{pool: pool}
}

// Create inserts the analysis row only; abilities are saved separately.
func (r *AnalysisRepository) Create(ctx context.Context, analysis *model.Analysis) error {
	err := database.Conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO analyses (record_id, content, comment)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`,
		analysis.RecordID, analysis.Content, analysis.Comment,
	).Scan(&analysis.ID, &analysis.CreatedAt, &analysis.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create analysis: %w", err)
	}
	return nil
}

func (r *AnalysisRepository) FindByID(ctx context.Context, id int64) (*model.Analysis, error) {
	return r.findOne(ctx, "id = $1", id)
}

func (r *AnalysisRepository) FindByRecordID(ctx context.Context, recordID int64) (*model.Analysis, error) {
	return r.findOne(ctx, "record_id = $1", recordID)
}

// findOne loads the analysis with its abilities in save order.
func (r *AnalysisRepository) findOne(ctx context.Context, where string, arg any) (*model.Analysis, error) {
	conn := database.Conn(ctx, r.pool)

	rows, err := conn.Query(ctx, `SELECT `+analysisColumns+` FROM analyses WHERE `+where, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query analysis: %w", err)
	}
	analysis, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.Analysis])
	if err != nil {
		return nil, wrapRow("analyses", err)
	}

	rows, err = conn.Query(ctx, `
		SELECT `+abilityColumns+`
		FROM abilities
		WHERE analysis_id = $1
		ORDER BY id`, analysis.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to query abilities: %w", err)
	}
	analysis.Abilities, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Ability])
	if err != nil {
		return nil, fmt.Errorf("failed to scan abilities: %w", err)
	}
	return analysis, nil
}

func (r *AnalysisRepository) Update(ctx context.Context, analysis *model.Analysis) error {
	err := database.Conn(ctx, r.pool).QueryRow(ctx, `
		UPDATE analyses
		SET content = $2, comment = $3, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`,
		analysis.ID, analysis.Content, analysis.Comment,
	).Scan(&analysis.UpdatedAt)
	if err != nil {
		return wrapRow("analyses", fmt.Errorf("failed to update analysis: %w", err))
	}
	return nil
}

// Delete removes the analysis and, by cascade, its abilities.
func (r *AnalysisRepository) Delete(ctx context.Context, id int64) error {
	if _, err := database.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	return nil
}
