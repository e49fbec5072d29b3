// File: internal/infra/db/postgres/postgres_coach_repo.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"coachpro-coaching/internal/domain"
	"coachpro-coaching/internal/domain/model"
	"coachpro-coaching/internal/domain/ports/adapter"
)

var _ adapter.CoachMetaProvider = (*CoachRepo)(nil)

// CoachRepo resolves coach persona metadata from the coaches table.
// Specialty and personality are nullable; callers apply model defaults.
type CoachRepo struct {
	pool *pgxpool.Pool
}

func NewCoachRepo(pool *pgxpool.Pool) *CoachRepo {
	return &CoachRepo{pool: pool}
}

func (r *CoachRepo) CoachMeta(ctx context.Context, coachID int64) (model.CoachMeta, error) {
	const q = `SELECT id, name, specialty, personality FROM coaches WHERE id=$1;`
	var c model.CoachMeta
	var specialty, personality sql.NullString
	if err := r.pool.QueryRow(ctx, q, coachID).Scan(&c.ID, &c.Name, &specialty, &personality); err != nil {
		if err == pgx.ErrNoRows {
			return model.CoachMeta{}, domain.ErrNotFound
		}
		return model.CoachMeta{}, fmt.Errorf("scan coach: %w", err)
	}
	c.Specialty = specialty.String
	c.Personality = personality.String
	return c, nil
}
