// newsd is the crypto news intelligence server: it ingests feeds, enriches
// articles through the LLM extractor, maintains narratives and signal
// scores in the background, and serves the read API.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/api"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/cache"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/config"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/database"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/extractor"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/ingest"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/llm"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/pipeline"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/scheduler"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/services"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/version"
)

const shutdownTimeout = 30 * time.Second

func main() {
	ctx := context.Background()

	// 1. Load configuration (.env honored in development)
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	slog.Info("Starting newsd",
		"version", version.Full(),
		"http_port", cfg.HTTPPort,
		"feeds", len(cfg.Feeds))

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Initialize the listing cache (redis tier optional)
	var remote *redis.Client
	if cfg.Cache.URL != "" {
		opts, err := redis.ParseURL(cfg.Cache.URL)
		if err != nil {
			slog.Error("Failed to parse cache URL", "error", err)
			os.Exit(1)
		}
		remote = redis.NewClient(opts)
		defer func() {
			if err := remote.Close(); err != nil {
				slog.Error("Error closing redis client", "error", err)
			}
		}()
	}
	listingCache, err := cache.New(cfg.Cache.LocalSize, remote, logger)
	if err != nil {
		slog.Error("Failed to initialize cache", "error", err)
		os.Exit(1)
	}

	// 4. Domain services
	articleService := services.NewArticleService(dbClient.Client)
	mentionService := services.NewMentionService(dbClient.Client)
	narrativeService := services.NewNarrativeService(dbClient.Client,
		services.NarrativeThresholds{
			MergeRecent: cfg.Pipeline.MergeThresholdRecent,
			MergeOld:    cfg.Pipeline.MergeThresholdOld,
			DormantDays: cfg.Pipeline.DormantAfterDays,
			ArchiveDays: cfg.Pipeline.ArchiveAfterDays,
		}, logger)
	signalService := services.NewSignalService(dbClient.Client, mentionService, narrativeService, logger)
	costService := services.NewCostService(dbClient.Client)
	slog.Info("Services initialized")

	// 5. LLM client and extractor. A missing API key is a permanent
	// configuration error; the process refuses to start half-enabled.
	budget := llm.NewTokenBudget(cfg.LLM.TokensPerMinute, cfg.LLM.SafetyMargin)
	llmClient, err := llm.NewGeminiClient(ctx, cfg.LLM.APIKey(), budget,
		llm.Options{MaxConcurrent: cfg.LLM.MaxConcurrent})
	if err != nil {
		slog.Error("Failed to initialize LLM client", "error", err)
		os.Exit(1)
	}
	promptCache := llm.NewPromptCache(15 * time.Minute)
	entityExtractor := extractor.New(llmClient, cfg.LLM.ModelEntity, promptCache, costService, logger)
	entityExtractor.SetRetryDelay(cfg.Pipeline.ArticleDelay)
	summarizer := extractor.NewSummarizer(llmClient, cfg.LLM.ModelNarrative, costService, logger)
	slog.Info("LLM client initialized",
		"entity_model", cfg.LLM.ModelEntity, "narrative_model", cfg.LLM.ModelNarrative)

	// 6. Ingestion runner (nil when no feeds are configured)
	var runner *ingest.Runner
	if len(cfg.Feeds) > 0 {
		sources := make([]ingest.Source, 0, len(cfg.Feeds))
		for _, feed := range cfg.Feeds {
			sources = append(sources, ingest.NewFeedSource(feed.Name, feed.URL))
		}
		runner = ingest.NewRunner(sources, articleService, logger)
	}

	jobs := pipeline.New(cfg.Pipeline, runner, articleService, mentionService,
		narrativeService, signalService, entityExtractor, summarizer, listingCache, logger)

	// 7. Background schedule
	briefingLoc, err := time.LoadLocation(cfg.Scheduler.BriefingTimezone)
	if err != nil {
		slog.Error("Failed to load briefing timezone", "error", err)
		os.Exit(1)
	}

	jobCtx, cancelJobs := context.WithCancel(ctx)
	defer cancelJobs()

	sched := scheduler.New(cfg.Scheduler.JitterFraction)
	sched.Add(scheduler.Job{Name: "ingest", Interval: cfg.Scheduler.IngestInterval, Run: jobs.RunIngest})
	sched.Add(scheduler.Job{Name: "extract", Interval: cfg.Scheduler.ExtractInterval, Run: jobs.RunExtraction})
	sched.Add(scheduler.Job{Name: "cluster", Interval: cfg.Scheduler.ClusterInterval, Run: jobs.RunClustering})
	sched.Add(scheduler.Job{Name: "score", Interval: cfg.Scheduler.ScoreInterval, Run: jobs.RunScoring})
	sched.Add(scheduler.Job{Name: "lifecycle_sweep", Interval: cfg.Scheduler.LifecycleInterval, Run: jobs.RunLifecycle})
	sched.AddDaily(scheduler.DailyJob{
		Name:     "briefing",
		Slots:    cfg.Scheduler.BriefingTimes,
		Location: briefingLoc,
		Run:      jobs.RunBriefing,
	})
	sched.Start(jobCtx)

	// 7a. Startup catch-up: interval jobs first fire after one interval,
	// so drain the backlog once now instead of waiting.
	go func() {
		catchup := []struct {
			name string
			run  func(context.Context) error
		}{
			{"ingest", jobs.RunIngest},
			{"extract", jobs.RunExtraction},
			{"cluster", jobs.RunClustering},
			{"score", jobs.RunScoring},
		}
		for _, job := range catchup {
			if err := job.run(jobCtx); err != nil && jobCtx.Err() == nil {
				slog.Error("Startup catch-up job failed", "job", job.name, "error", err)
			}
		}
	}()

	// 8. Start HTTP server (non-blocking)
	httpServer := api.NewServer(dbClient, signalService, narrativeService,
		articleService, costService, listingCache, cfg.Cache)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + strconv.Itoa(cfg.HTTPPort)
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("newsd started successfully")

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: stop scheduling, let in-flight jobs finish
	// within the timeout, then drain HTTP.
	shutdownCtx, cancelShutdown := context.WithTimeout(ctx, shutdownTimeout)
	defer cancelShutdown()

	done := make(chan struct{})
	go func() {
		sched.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Scheduler stopped gracefully")
	case <-shutdownCtx.Done():
		cancelJobs()
		<-done
		slog.Warn("Scheduler shutdown timeout exceeded, jobs cancelled")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
