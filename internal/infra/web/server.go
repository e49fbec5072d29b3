package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"coachpro-coaching/internal/usecase"
)

// Server exposes the coaching API: enrollment, sessions, messages,
// recommendations, assessments, and progress tracking. Service routes
// sit behind a bearer key; the dashboard surface uses a JWT cookie.
type Server struct {
	coachingUC usecase.CoachingUseCase
	profileUC  usecase.ProfileUseCase
	recUC      usecase.RecommendationUseCase
	progressUC usecase.ProgressUseCase
	auth       *AuthManager
	apiKey     string
	log        *zerolog.Logger

	srv *http.Server
}

func NewServer(
	coachingUC usecase.CoachingUseCase,
	profileUC usecase.ProfileUseCase,
	recUC usecase.RecommendationUseCase,
	progressUC usecase.ProgressUseCase,
	auth *AuthManager,
	apiKey string,
	logger *zerolog.Logger,
) *Server {
	l := logger.With().Str("component", "WebServer").Logger()
	return &Server{
		coachingUC: coachingUC,
		profileUC:  profileUC,
		recUC:      recUC,
		progressUC: progressUC,
		auth:       auth,
		apiKey:     apiKey,
		log:        &l,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// Service API, bearer-key guarded.
		r.Group(func(r chi.Router) {
			r.Use(func(next http.Handler) http.Handler { return bearerAuth(s.apiKey, next) })

			r.Post("/enrollments", s.handleEnroll)
			r.Post("/sessions", s.handleStartSession)
			r.Post("/sessions/{sessionID}/messages", s.handleSendMessage)
			r.Post("/sessions/{sessionID}/end", s.handleEndSession)
			r.Get("/students/{studentID}/sessions", s.handleListSessions)
			r.Get("/students/{studentID}/recommendations", s.handleListRecommendations)
			r.Patch("/recommendations/{recID}", s.handleUpdateRecommendation)
			r.Post("/assessments", s.handleSubmitAssessment)
			r.Post("/progress", s.handleRecordProgress)
		})

		// Dashboard surface, cookie-session guarded.
		r.Route("/dashboard", func(r chi.Router) {
			r.Post("/login", s.handleDashboardLogin)
			r.Get("/recommendations", s.handleDashboardRecommendations)
		})
	})
	return r
}

func (s *Server) Start(port int) error {
	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: s.Router(),
	}
	s.log.Info().Int("port", port).Msg("coaching API listening")
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
