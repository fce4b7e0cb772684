package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/rs/cors"

	"github.com/spacesedan/tubepulse/config"
	"github.com/spacesedan/tubepulse/internal/analysis"
	"github.com/spacesedan/tubepulse/internal/api"
	"github.com/spacesedan/tubepulse/internal/clients"
	"github.com/spacesedan/tubepulse/internal/logging"
	"github.com/spacesedan/tubepulse/internal/monitoring"
	"github.com/spacesedan/tubepulse/internal/processing"
	"github.com/spacesedan/tubepulse/internal/sentiment"
)

// @title           TubePulse API
// @version         1.0
// @description     REST API for YouTube comment sentiment and topic analytics
// @BasePath        /
func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	scorer := buildScorer(cfg.Sentiment)
	if closer, ok := scorer.(interface{ Close() }); ok {
		defer closer.Close()
	}

	classifier := sentiment.NewClassifier(scorer, sentiment.Config{
		PositiveThreshold: cfg.Sentiment.PositiveThreshold,
		NegativeThreshold: cfg.Sentiment.NegativeThreshold,
		KeywordDelta:      cfg.Sentiment.KeywordDelta,
		PositiveKeywords:  cfg.Sentiment.PositiveKeywords,
		NegativeKeywords:  cfg.Sentiment.NegativeKeywords,
		BatchSize:         cfg.Sentiment.BatchSize,
	})

	analyzer := analysis.NewAnalyzer(classifier, analysis.Config{
		TopCommentsPerLabel: cfg.Analysis.TopCommentsPerLabel,
		TopKeywords:         cfg.Analysis.TopKeywords,
		TopOverall:          cfg.Analysis.TopOverall,
		MaxContentIdeas:     cfg.Analysis.MaxContentIdeas,
		Stopwords:           stopwords(cfg.Analysis.ExtraStopwords),
	})

	svc := api.NewService(clients.GetYouTubeClient(), analyzer)

	if cache := clients.InitValkey(time.Duration(cfg.Cache.TTLMinutes) * time.Minute); cache != nil {
		svc.WithCache(cache)
		defer clients.CloseValkey()
	}

	if enabled, err := clients.InitKafka(); err != nil {
		slog.Warn("[Main] Kafka init failed, analysis events disabled",
			slog.String("error", err.Error()))
	} else if enabled {
		svc.WithEvents(clients.KafkaEventPublisher{Topic: cfg.Events.Topic})
		defer clients.CloseKafka()
	}

	if ai := clients.GetAIClient(); ai != nil {
		enricherHealthy := &atomic.Bool{}
		enricherHealthy.Store(true)
		go monitoring.MonitorEnricherHealth(ctx, ai, enricherHealthy)

		svc.WithEnricher(processing.NewIdeaEnricher(ai, cfg.Analysis.MaxContentIdeas).
			WithHealthGate(enricherHealthy))
	}

	addr := ":" + strconv.Itoa(cfg.Server.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: cors.AllowAll().Handler(api.NewRouter(svc)),
	}

	go func() {
		slog.Info("[Main] API server listening", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[Main] Server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	slog.Info("[Main] Shutting down...")
	cancel() // stops background monitors

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("[Main] Graceful shutdown failed", slog.String("error", err.Error()))
	}
}

// buildScorer picks the configured backend. The transformer needs a local
// ONNX runtime and a downloaded model, so any setup failure drops back to
// the lexicon scorer instead of refusing to start.
func buildScorer(cfg config.SentimentConfig) sentiment.Scorer {
	if cfg.Backend == "transformer" {
		scorer, err := sentiment.NewTransformerScorer(cfg.Model, cfg.ModelDir)
		if err == nil {
			return scorer
		}
		slog.Warn("[Main] Transformer backend unavailable, falling back to vader",
			slog.String("error", err.Error()))
	}
	return sentiment.NewVaderScorer()
}

func stopwords(extra []string) []string {
	if len(extra) == 0 {
		return nil // analyzer falls back to the built-in lists
	}
	return append(analysis.DefaultStopwords(), extra...)
}
