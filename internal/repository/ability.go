package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/corecord/corecord-backend/internal/database"
	"github.com/corecord/corecord-backend/internal/model"
)

const abilityColumns = `id, keyword, content, analysis_id, user_id, created_at`

type AbilityRepository struct {
	pool *pgxpool.Pool
}

func NewAbilityRepository(pool *pgxpool.Pool) *AbilityRepository {
	return &AbilityRepository{pool: pool}
}

func (r *AbilityRepository) Save(ctx context.Context, ability *model.Ability) error {
	err := database.Conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO abilities (keyword, content, analysis_id, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		ability.Keyword, ability.Content, ability.AnalysisID, ability.UserID,
	).Scan(&ability.ID, &ability.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save ability: %w", err)
	}
	return nil
}

func (r *AbilityRepository) Delete(ctx context.Context, id int64) error {
	if _, err := database.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM abilities WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete ability: %w", err)
	}
	return nil
}

func keywordOrder() []string {
	keywords := model.Keywords()
	names := make([]string, len(keywords))
	for i, k := range keywords {
		names[i] = string(k)
	}
	return names
}

// CountByUserID returns how many abilities the user holds per keyword,
// most frequent first and ties in keyword registration order.
func (r *AbilityRepository) CountByUserID(ctx context.Context, userID int64) ([]model.KeywordCount, error) {
	rows, err := database.Conn(ctx, r.pool).Query(ctx, `
		SELECT keyword, COUNT(*)::int AS count
		FROM abilities
		WHERE user_id = $1
		GROUP BY keyword
		ORDER BY count DESC, array_position($2::text[], keyword)`,
		userID, keywordOrder())
	if err != nil {
		return nil, fmt.Errorf("failed to count abilities: %w", err)
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[model.KeywordCount])
}

// FindKeywordsByUserID returns the distinct keywords of the user's
// abilities in the same order as CountByUserID.
func (r *AbilityRepository) FindKeywordsByUserID(ctx context.Context, userID int64) ([]model.Keyword, error) {
	counts, err := r.CountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	keywords := make([]model.Keyword, 0, len(counts))
	for _, c := range counts {
		keywords = append(keywords, c.Keyword)
	}
	return keywords, nil
}
