// File: internal/usecase/mocks_test.go
package usecase

import (
	"context"
	"sync"
	"time"

	"coachpro-coaching/internal/domain"
	"coachpro-coaching/internal/domain/model"
	"coachpro-coaching/internal/domain/ports/adapter"
	"coachpro-coaching/internal/domain/ports/repository"
)

// ---- In-memory repositories used by unit tests ----

type memProfileRepo struct {
	mu      sync.Mutex
	byPair  map[[2]int64]*model.Profile
	saveErr error // simulate save failures
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{byPair: map[[2]int64]*model.Profile{}}
}

func (m *memProfileRepo) Save(ctx context.Context, qx any, p *model.Profile) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	m.byPair[[2]int64{p.StudentID, p.ProgramID}] = &cp
	return nil
}

func (m *memProfileRepo) Find(ctx context.Context, qx any, studentID, programID int64) (*model.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.byPair[[2]int64{studentID, programID}]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (m *memProfileRepo) FindAllByStudent(ctx context.Context, qx any, studentID int64) ([]*model.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.Profile
	for k, p := range m.byPair {
		if k[0] == studentID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memProfileRepo) Delete(ctx context.Context, qx any, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, p := range m.byPair {
		if p.ID == id {
			delete(m.byPair, k)
			return nil
		}
	}
	return domain.ErrNotFound
}

type memSessionRepo struct {
	mu       sync.Mutex
	byID     map[string]*model.CoachingSession
	messages map[string][]model.Message
	saveErr  error
	msgErr   error
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{
		byID:     map[string]*model.CoachingSession{},
		messages: map[string][]model.Message{},
	}
}

func (m *memSessionRepo) Save(ctx context.Context, qx any, s *model.CoachingSession) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *s
	cp.Messages = nil
	m.byID[s.ID] = &cp
	return nil
}

func (m *memSessionRepo) SaveMessage(ctx context.Context, qx any, msg *model.Message) error {
	if m.msgErr != nil {
		return m.msgErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[msg.SessionID]; !ok {
		return domain.ErrNotFound
	}
	m.messages[msg.SessionID] = append(m.messages[msg.SessionID], *msg)
	return nil
}

func (m *memSessionRepo) FindByID(ctx context.Context, qx any, id string) (*model.CoachingSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *s
	cp.Messages = append([]model.Message(nil), m.messages[id]...)
	return &cp, nil
}

func (m *memSessionRepo) FindAllByStudent(ctx context.Context, qx any, studentID int64, limit int) ([]*model.CoachingSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.CoachingSession
	for _, s := range m.byID {
		if s.StudentID == studentID && len(out) < limit {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memSessionRepo) UpdateStatus(ctx context.Context, qx any, sessionID string, status model.SessionStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.byID[sessionID]
	if !ok {
		return domain.ErrNotFound
	}
	s.Status = status
	return nil
}

func (m *memSessionRepo) UpdateDuration(ctx context.Context, qx any, sessionID string, minutes int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.byID[sessionID]
	if !ok {
		return domain.ErrNotFound
	}
	s.DurationMinutes = minutes
	return nil
}

func (m *memSessionRepo) DeleteStartedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, s := range m.byID {
		if s.StartedAt.Before(cutoff) {
			delete(m.byID, id)
			delete(m.messages, id)
			n++
		}
	}
	return n, nil
}

type memRecRepo struct {
	mu      sync.Mutex
	recs    []*model.Recommendation
	saveErr error
}

func newMemRecRepo() *memRecRepo { return &memRecRepo{} }

func (m *memRecRepo) Save(ctx context.Context, qx any, rec *model.Recommendation) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *rec
	m.recs = append(m.recs, &cp)
	return nil
}

func (m *memRecRepo) FindPendingByStudent(ctx context.Context, qx any, studentID int64, limit int) ([]*model.Recommendation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.Recommendation
	for _, r := range m.recs {
		if r.StudentID == studentID && r.Status == model.RecommendationPending {
			cp := *r
			out = append(out, &cp)
		}
	}
	// priority DESC, then created_at DESC
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].Priority > out[i].Priority ||
				(out[j].Priority == out[i].Priority && out[j].CreatedAt.After(out[i].CreatedAt)) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memRecRepo) UpdateStatus(ctx context.Context, qx any, id string, status model.RecommendationStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.recs {
		if r.ID == id {
			r.Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memRecRepo) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var kept []*model.Recommendation
	var n int64
	for _, r := range m.recs {
		if r.CreatedAt.Before(cutoff) {
			n++
			continue
		}
		kept = append(kept, r)
	}
	m.recs = kept
	return n, nil
}

type memProgressRepo struct {
	mu      sync.Mutex
	entries []*model.ProgressEntry
	avgErr  error
}

func newMemProgressRepo() *memProgressRepo { return &memProgressRepo{} }

func (m *memProgressRepo) Save(ctx context.Context, qx any, e *model.ProgressEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *e
	m.entries = append(m.entries, &cp)
	return nil
}

func (m *memProgressRepo) AverageSince(ctx context.Context, qx any, studentID int64, since time.Time) (float64, bool, error) {
	if m.avgErr != nil {
		return 0, false, m.avgErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	sum, n := 0.0, 0
	for _, e := range m.entries {
		if e.StudentID == studentID && !e.CreatedAt.Before(since) {
			sum += e.Percentage
			n++
		}
	}
	if n == 0 {
		return 0, false, nil
	}
	return sum / float64(n), true, nil
}

func (m *memProgressRepo) FindByStudent(ctx context.Context, qx any, studentID int64, limit int) ([]*model.ProgressEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.ProgressEntry
	for _, e := range m.entries {
		if e.StudentID == studentID && len(out) < limit {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ---- Fakes for ports ----

// fakeCache records appends and serves a canned context.
type fakeCache struct {
	mu      sync.Mutex
	appends map[string][]repository.CacheEntry
	cctx    repository.ConversationContext
	err     error
}

func newFakeCache() *fakeCache {
	return &fakeCache{appends: map[string][]repository.CacheEntry{}}
}

func (f *fakeCache) Append(ctx context.Context, sessionID string, sender model.Sender, text string) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appends[sessionID] = append(f.appends[sessionID], repository.CacheEntry{
		Sender: sender, Text: text, Timestamp: time.Now(),
	})
	return nil
}

func (f *fakeCache) Context(ctx context.Context, sessionID string) (repository.ConversationContext, error) {
	if f.err != nil {
		return repository.ConversationContext{}, f.err
	}
	return f.cctx, nil
}

func (f *fakeCache) Clear(ctx context.Context, sessionID string) error { return nil }

type fakeCoachProvider struct {
	meta model.CoachMeta
	err  error
}

func (f *fakeCoachProvider) CoachMeta(ctx context.Context, coachID int64) (model.CoachMeta, error) {
	if f.err != nil {
		return model.CoachMeta{}, f.err
	}
	return f.meta, nil
}

type fakeCompletion struct {
	reply string
	err   error
	calls int
	spec  adapter.PromptSpec
}

func (f *fakeCompletion) Complete(ctx context.Context, spec adapter.PromptSpec) (string, error) {
	f.calls++
	f.spec = spec
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}
