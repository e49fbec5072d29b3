package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"coachpro-coaching/internal/domain"
	"coachpro-coaching/internal/domain/model"
	"coachpro-coaching/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidArgument):
		http.Error(w, "invalid argument", http.StatusBadRequest)
	case errors.Is(err, domain.ErrSessionClosed):
		http.Error(w, "session is not active", http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

type enrollRequest struct {
	ProgramID int64 `json:"program_id"`
	StudentID int64 `json:"student_id"`
}

func (s *Server) handleEnroll(w http.ResponseWriter, r *http.Request) {
	var req enrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	p, err := s.profileUC.Initialize(r.Context(), req.ProgramID, req.StudentID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"profile_id":     p.ID,
		"learning_style": p.LearningStyle,
	})
}

type startSessionRequest struct {
	StudentID   int64  `json:"student_id"`
	CoachID     int64  `json:"coach_id"`
	SessionType string `json:"session_type"`
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	session, err := s.coachingUC.StartSession(r.Context(), req.StudentID, req.CoachID, req.SessionType)
	if err != nil {
		writeError(w, err)
		return
	}
	welcome := ""
	if len(session.Messages) > 0 {
		welcome = session.Messages[0].Text
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"session_id":   session.ID,
		"session_type": session.Type,
		"welcome":      welcome,
	})
}

type sendMessageRequest struct {
	Message string `json:"message"`
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	reply, err := s.coachingUC.ProcessMessage(r.Context(), sessionID, req.Message)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"response":  reply,
		"timestamp": time.Now().UTC(),
	})
}

func (s *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	if err := s.coachingUC.EndSession(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	studentID, err := strconv.ParseInt(chi.URLParam(r, "studentID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid student id", http.StatusBadRequest)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	sessions, err := s.coachingUC.ListSessions(r.Context(), studentID, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	type sessionView struct {
		ID              string            `json:"id"`
		Type            model.SessionType `json:"session_type"`
		Status          string            `json:"status"`
		StartedAt       time.Time         `json:"started_at"`
		DurationMinutes int               `json:"duration_minutes"`
	}
	out := make([]sessionView, 0, len(sessions))
	for _, sess := range sessions {
		out = append(out, sessionView{
			ID:              sess.ID,
			Type:            sess.Type,
			Status:          string(sess.Status),
			StartedAt:       sess.StartedAt,
			DurationMinutes: sess.DurationMinutes,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleListRecommendations(w http.ResponseWriter, r *http.Request) {
	studentID, err := strconv.ParseInt(chi.URLParam(r, "studentID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid student id", http.StatusBadRequest)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	recs, err := s.recUC.ListPending(r.Context(), studentID, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recommendationViews(recs))
}

type updateRecommendationRequest struct {
	Status string `json:"status"`
}

func (s *Server) handleUpdateRecommendation(w http.ResponseWriter, r *http.Request) {
	var req updateRecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	status := model.RecommendationStatus(req.Status)
	if status != model.RecommendationDismissed && status != model.RecommendationApplied {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}
	if err := s.recUC.UpdateStatus(r.Context(), chi.URLParam(r, "recID"), status); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type assessmentRequest struct {
	StudentID int64     `json:"student_id"`
	Responses []float64 `json:"responses"`
}

func (s *Server) handleSubmitAssessment(w http.ResponseWriter, r *http.Request) {
	var req assessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	analysis, err := usecase.AnalyzeAssessment(req.Responses)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.profileUC.RecordAssessment(r.Context(), req.StudentID, analysis); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"personality_score":     analysis.PersonalityScore,
		"learning_style":        analysis.LearningStyle,
		"strengths":             analysis.Strengths,
		"areas_for_improvement": analysis.AreasForImprovement,
	})
}

type progressRequest struct {
	StudentID        int64   `json:"student_id"`
	ActivityID       int64   `json:"activity_id"`
	ActivityType     string  `json:"activity_type"`
	Percentage       float64 `json:"percentage"`
	TimeSpentMinutes int     `json:"time_spent_minutes"`
	CompletionScore  float64 `json:"completion_score"`
}

func (s *Server) handleRecordProgress(w http.ResponseWriter, r *http.Request) {
	var req progressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	entry := &model.ProgressEntry{
		StudentID:        req.StudentID,
		ActivityID:       req.ActivityID,
		ActivityType:     req.ActivityType,
		Percentage:       req.Percentage,
		TimeSpentMinutes: req.TimeSpentMinutes,
		CompletionScore:  req.CompletionScore,
	}
	if err := s.progressUC.Record(r.Context(), entry); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": entry.ID})
}

// ===== Dashboard surface =====

type dashboardLoginRequest struct {
	StudentID int64 `json:"student_id"`
}

// handleDashboardLogin mints a session cookie. Identity verification
// happens upstream (the LMS front door); this service only binds the
// asserted student to a signed cookie.
func (s *Server) handleDashboardLogin(w http.ResponseWriter, r *http.Request) {
	var req dashboardLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.StudentID <= 0 {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if _, err := s.auth.Mint(w, req.StudentID); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDashboardRecommendations(w http.ResponseWriter, r *http.Request) {
	studentID, err := s.auth.Verify(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	recs, err := s.recUC.ListPending(r.Context(), studentID, 10)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recommendationViews(recs))
}

type recommendationView struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Text       string    `json:"text"`
	Confidence float64   `json:"confidence_score"`
	Priority   int       `json:"priority"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func recommendationViews(recs []*model.Recommendation) []recommendationView {
	out := make([]recommendationView, 0, len(recs))
	for _, rec := range recs {
		out = append(out, recommendationView{
			ID:         rec.ID,
			Type:       string(rec.Type),
			Text:       rec.Text,
			Confidence: rec.Confidence,
			Priority:   rec.Priority,
			Status:     string(rec.Status),
			CreatedAt:  rec.CreatedAt,
		})
	}
	return out
}
