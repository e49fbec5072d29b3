// File: internal/infra/db/postgres/postgres_session_repo.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"coachpro-coaching/internal/domain"
	"coachpro-coaching/internal/domain/model"
	"coachpro-coaching/internal/domain/ports/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo persists coaching sessions and their append-only message
// log. Messages live in their own table and are deleted together with
// the session on retention cleanup.
type SessionRepo struct {
	pool *pgxpool.Pool
}

func NewSessionRepo(pool *pgxpool.Pool) *SessionRepo {
	return &SessionRepo{pool: pool}
}

func (r *SessionRepo) Save(ctx context.Context, qx any, s *model.CoachingSession) error {
	const q = `
INSERT INTO coaching_sessions (id, student_id, coach_id, session_type, status, started_at, ended_at, duration_minutes, sentiment_score, rating)
VALUES ($1,$2,$3,$4,$5,COALESCE($6,NOW()),$7,$8,$9,$10)
ON CONFLICT (id) DO UPDATE SET
  status = EXCLUDED.status,
  ended_at = EXCLUDED.ended_at,
  duration_minutes = EXCLUDED.duration_minutes,
  sentiment_score = EXCLUDED.sentiment_score,
  rating = EXCLUDED.rating;`
	_, err := execQx(ctx, r.pool, qx, q,
		s.ID, s.StudentID, s.CoachID, string(s.Type), string(s.Status),
		s.StartedAt, s.EndedAt, s.DurationMinutes, s.SentimentScore, s.Rating)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *SessionRepo) SaveMessage(ctx context.Context, qx any, m *model.Message) error {
	const q = `
INSERT INTO coaching_messages (session_id, sender, content, created_at)
VALUES ($1,$2,$3,COALESCE($4,NOW()));`
	if _, err := execQx(ctx, r.pool, qx, q, m.SessionID, string(m.Sender), m.Text, m.Timestamp); err != nil {
		return fmt.Errorf("save message: %w", err)
	}
	return nil
}

func (r *SessionRepo) FindByID(ctx context.Context, qx any, id string) (*model.CoachingSession, error) {
	const qs = `
SELECT id, student_id, coach_id, session_type, status, started_at, ended_at, duration_minutes, sentiment_score, rating
FROM coaching_sessions WHERE id=$1;`
	s, err := r.scanSession(pickRow(ctx, r.pool, qx, qs, id))
	if err != nil {
		return nil, err
	}

	const qm = `SELECT sender, content, created_at FROM coaching_messages WHERE session_id=$1 ORDER BY created_at ASC;`
	rows, err := queryRows(ctx, r.pool, qx, qm, id)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var sender, content string
		var ts time.Time
		if err := rows.Scan(&sender, &content, &ts); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		s.Messages = append(s.Messages, model.Message{
			SessionID: s.ID,
			Sender:    model.Sender(sender),
			Text:      content,
			Timestamp: ts,
		})
	}
	return s, rows.Err()
}

func (r *SessionRepo) FindAllByStudent(ctx context.Context, qx any, studentID int64, limit int) ([]*model.CoachingSession, error) {
	const q = `
SELECT id, student_id, coach_id, session_type, status, started_at, ended_at, duration_minutes, sentiment_score, rating
FROM coaching_sessions WHERE student_id=$1 ORDER BY started_at DESC LIMIT $2;`
	rows, err := queryRows(ctx, r.pool, qx, q, studentID, limit)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []*model.CoachingSession
	for rows.Next() {
		s, err := r.scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SessionRepo) UpdateStatus(ctx context.Context, qx any, sessionID string, status model.SessionStatus) error {
	q := `UPDATE coaching_sessions SET status=$2 WHERE id=$1;`
	if status == model.SessionClosed {
		q = `UPDATE coaching_sessions SET status=$2, ended_at=NOW() WHERE id=$1;`
	}
	n, err := execQx(ctx, r.pool, qx, q, sessionID, string(status))
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SessionRepo) UpdateDuration(ctx context.Context, qx any, sessionID string, minutes int) error {
	const q = `UPDATE coaching_sessions SET duration_minutes=$2 WHERE id=$1;`
	n, err := execQx(ctx, r.pool, qx, q, sessionID, minutes)
	if err != nil {
		return fmt.Errorf("update duration: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SessionRepo) DeleteStartedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	// Messages first; sessions rows define the count reported.
	const qm = `
DELETE FROM coaching_messages WHERE session_id IN
  (SELECT id FROM coaching_sessions WHERE started_at < $1);`
	if _, err := execQx(ctx, r.pool, nil, qm, cutoff); err != nil {
		return 0, fmt.Errorf("delete old messages: %w", err)
	}
	const qs = `DELETE FROM coaching_sessions WHERE started_at < $1;`
	n, err := execQx(ctx, r.pool, nil, qs, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete old sessions: %w", err)
	}
	return n, nil
}

func (r *SessionRepo) scanSession(row pgx.Row) (*model.CoachingSession, error) {
	var s model.CoachingSession
	var sessionType, status string
	var endedAt sql.NullTime
	var sentiment sql.NullFloat64
	var rating sql.NullInt32
	err := row.Scan(&s.ID, &s.StudentID, &s.CoachID, &sessionType, &status,
		&s.StartedAt, &endedAt, &s.DurationMinutes, &sentiment, &rating)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}
	s.Type = model.SessionType(sessionType)
	s.Status = model.SessionStatus(status)
	if endedAt.Valid {
		t := endedAt.Time
		s.EndedAt = &t
	}
	if sentiment.Valid {
		v := sentiment.Float64
		s.SentimentScore = &v
	}
	if rating.Valid {
		v := int(rating.Int32)
		s.Rating = &v
	}
	return &s, nil
}
