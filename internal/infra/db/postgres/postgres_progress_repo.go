// File: internal/infra/db/postgres/postgres_progress_repo.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"coachpro-coaching/internal/domain/model"
	"coachpro-coaching/internal/domain/ports/repository"
)

var _ repository.ProgressRepository = (*ProgressRepo)(nil)

type ProgressRepo struct {
	pool *pgxpool.Pool
}

func NewProgressRepo(pool *pgxpool.Pool) *ProgressRepo {
	return &ProgressRepo{pool: pool}
}

func (r *ProgressRepo) Save(ctx context.Context, qx any, e *model.ProgressEntry) error {
	const q = `
INSERT INTO learning_progress (id, student_id, activity_id, activity_type, progress_percentage, time_spent_minutes, completion_score, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,COALESCE($8,NOW()));`
	_, err := execQx(ctx, r.pool, qx, q,
		e.ID, e.StudentID, e.ActivityID, e.ActivityType, e.Percentage, e.TimeSpentMinutes, e.CompletionScore, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

func (r *ProgressRepo) AverageSince(ctx context.Context, qx any, studentID int64, since time.Time) (float64, bool, error) {
	const q = `
SELECT AVG(progress_percentage) FROM learning_progress
WHERE student_id=$1 AND created_at >= $2;`
	var avg sql.NullFloat64
	if err := pickRow(ctx, r.pool, qx, q, studentID, since).Scan(&avg); err != nil {
		return 0, false, fmt.Errorf("average progress: %w", err)
	}
	if !avg.Valid {
		return 0, false, nil
	}
	return avg.Float64, true, nil
}

func (r *ProgressRepo) FindByStudent(ctx context.Context, qx any, studentID int64, limit int) ([]*model.ProgressEntry, error) {
	const q = `
SELECT id, student_id, activity_id, activity_type, progress_percentage, time_spent_minutes, completion_score, created_at
FROM learning_progress WHERE student_id=$1 ORDER BY created_at DESC LIMIT $2;`
	rows, err := queryRows(ctx, r.pool, qx, q, studentID, limit)
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}
	defer rows.Close()

	var out []*model.ProgressEntry
	for rows.Next() {
		var e model.ProgressEntry
		if err := rows.Scan(&e.ID, &e.StudentID, &e.ActivityID, &e.ActivityType, &e.Percentage, &e.TimeSpentMinutes, &e.CompletionScore, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan progress: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}
