// File: internal/infra/db/postgres/postgres_recommendation_repo.go
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"coachpro-coaching/internal/domain"
	"coachpro-coaching/internal/domain/model"
	"coachpro-coaching/internal/domain/ports/repository"
)

var _ repository.RecommendationRepository = (*RecommendationRepo)(nil)

type RecommendationRepo struct {
	pool *pgxpool.Pool
}

func NewRecommendationRepo(pool *pgxpool.Pool) *RecommendationRepo {
	return &RecommendationRepo{pool: pool}
}

func (r *RecommendationRepo) Save(ctx context.Context, qx any, rec *model.Recommendation) error {
	const q = `
INSERT INTO coaching_recommendations (id, student_id, rec_type, content, confidence_score, priority_level, status, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,COALESCE($8,NOW()));`
	_, err := execQx(ctx, r.pool, qx, q,
		rec.ID, rec.StudentID, string(rec.Type), rec.Text, rec.Confidence, rec.Priority, string(rec.Status), rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("save recommendation: %w", err)
	}
	return nil
}

func (r *RecommendationRepo) FindPendingByStudent(ctx context.Context, qx any, studentID int64, limit int) ([]*model.Recommendation, error) {
	const q = `
SELECT id, student_id, rec_type, content, confidence_score, priority_level, status, created_at
FROM coaching_recommendations
WHERE student_id=$1 AND status='pending'
ORDER BY priority_level DESC, created_at DESC
LIMIT $2;`
	rows, err := queryRows(ctx, r.pool, qx, q, studentID, limit)
	if err != nil {
		return nil, fmt.Errorf("query recommendations: %w", err)
	}
	defer rows.Close()

	var out []*model.Recommendation
	for rows.Next() {
		var rec model.Recommendation
		var recType, status string
		if err := rows.Scan(&rec.ID, &rec.StudentID, &recType, &rec.Text, &rec.Confidence, &rec.Priority, &status, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan recommendation: %w", err)
		}
		rec.Type = model.RecommendationType(recType)
		rec.Status = model.RecommendationStatus(status)
		out = append(out, &rec)
	}
	return out, rows.Err()
}

func (r *RecommendationRepo) UpdateStatus(ctx context.Context, qx any, id string, status model.RecommendationStatus) error {
	const q = `UPDATE coaching_recommendations SET status=$2 WHERE id=$1;`
	n, err := execQx(ctx, r.pool, qx, q, id, string(status))
	if err != nil {
		return fmt.Errorf("update recommendation status: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *RecommendationRepo) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	const q = `DELETE FROM coaching_recommendations WHERE created_at < $1;`
	n, err := execQx(ctx, r.pool, nil, q, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete old recommendations: %w", err)
	}
	return n, nil
}
