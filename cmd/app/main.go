// File: cmd/app/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coachpro-coaching/internal/config"
	"coachpro-coaching/internal/domain/ports/adapter"
	aiAdapters "coachpro-coaching/internal/infra/adapters/ai"
	pg "coachpro-coaching/internal/infra/db/postgres"
	"coachpro-coaching/internal/infra/logging"
	"coachpro-coaching/internal/infra/metrics"
	red "coachpro-coaching/internal/infra/redis"
	"coachpro-coaching/internal/infra/sched"
	"coachpro-coaching/internal/infra/web"
	"coachpro-coaching/internal/usecase"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "enable developer mode (noop AI, console logs)")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	if cfg.Runtime.Dev {
		logger.Info().Msg("developer mode enabled")
	}

	metrics.MustRegister()

	// ---- Postgres ----
	pool, err := pg.NewPgxPool(ctx, cfg.Database.URL, 10)
	if err != nil {
		logger.Fatal().Err(err).Msg("postgres")
	}
	defer pool.Close()

	// ---- Redis ----
	redisClient, err := red.NewClient(ctx, &cfg.Redis)
	if err != nil {
		logger.Fatal().Err(err).Msg("redis")
	}
	defer redisClient.Close()
	conversationCache := red.NewConversationCache(redisClient, cfg.Redis.TTL)

	// ---- Repositories ----
	profileRepo := pg.NewProfileRepo(pool)
	sessionRepo := pg.NewSessionRepo(pool)
	recRepo := pg.NewRecommendationRepo(pool)
	progressRepo := pg.NewProgressRepo(pool)
	coachRepo := pg.NewCoachRepo(pool)

	// ---- Completion adapter (OpenAI -> Gemini -> none) ----
	// With no credential configured the orchestrator serves the
	// rule-based fallback directly.
	var ai adapter.CompletionAdapter
	provider := "none"
	switch {
	case cfg.Runtime.Dev:
		ai = aiAdapters.NewNoopAdapter()
		provider = "noop"
	case cfg.AI.OpenAIKey != "":
		ai, err = aiAdapters.NewOpenAIAdapter(cfg.AI.OpenAIKey, cfg.AI.Timeout, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("openai adapter")
		}
		provider = "openai"
	case cfg.AI.GeminiKey != "":
		ai, err = aiAdapters.NewGeminiAdapter(ctx, cfg.AI.GeminiKey, cfg.AI.GeminiURL, cfg.AI.Timeout, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("gemini adapter")
		}
		provider = "gemini"
	default:
		logger.Warn().Msg("no completion credential configured; replies use the rule-based fallback")
	}
	logger.Info().Str("provider", provider).Str("model", cfg.AI.DefaultModel).Msg("completion provider")

	// ---- Use cases ----
	profileUC := usecase.NewProfileUseCase(profileRepo, logger)
	progressUC := usecase.NewProgressUseCase(progressRepo, logger)
	recUC := usecase.NewRecommendationUseCase(recRepo, sessionRepo, logger)
	coachingUC := usecase.NewCoachingUseCase(sessionRepo, conversationCache, progressRepo, coachRepo, ai, recUC, provider, cfg.AI.DefaultModel, logger)
	cleanupUC := usecase.NewCleanupUseCase(sessionRepo, recRepo, cfg.Retention.SessionDays, cfg.Retention.RecommendationDays, logger)

	// ---- Cleanup worker ----
	worker := sched.NewCleanupWorker(cfg.Retention.Interval, cleanupUC, logger)
	go func() {
		if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error().Err(err).Msg("cleanup worker stopped")
		}
	}()

	// ---- Web server ----
	auth := web.NewAuthManager(cfg.Web.SessionKey, cfg.Web.SecureCookie, cfg.Web.SessionTTL)
	server := web.NewServer(coachingUC, profileUC, recUC, progressUC, auth, cfg.Web.APIKey, logger)
	go func() {
		if err := server.Start(cfg.Web.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("web server")
		}
	}()

	// ---- Shutdown ----
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	logger.Info().Msg("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("web shutdown")
	}
}
