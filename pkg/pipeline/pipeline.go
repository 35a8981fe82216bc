// Package pipeline holds the bodies of the scheduled background jobs:
// ingestion, extraction, clustering, signal scoring, and the lifecycle
// sweep. Each method is one full job cycle; the scheduler decides when
// cycles run.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mikechavez/crypto-news-aggregator-sub003/ent"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/cache"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/config"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/extractor"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/ingest"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/models"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/narrative"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/services"
)

// Pipeline wires the services layer into job bodies. All writes happen
// here; the HTTP surface only reads.
type Pipeline struct {
	cfg        config.PipelineConfig
	runner     *ingest.Runner
	articles   *services.ArticleService
	mentions   *services.MentionService
	narratives *services.NarrativeService
	signals    *services.SignalService
	extractor  *extractor.Extractor
	summarizer *extractor.Summarizer
	cache      cache.Cache
	logger     *slog.Logger
}

// New creates a pipeline. runner may be nil when no feeds are
// configured; extractor and summarizer may be nil when LLM work is
// disabled.
func New(
	cfg config.PipelineConfig,
	runner *ingest.Runner,
	articles *services.ArticleService,
	mentions *services.MentionService,
	narratives *services.NarrativeService,
	signals *services.SignalService,
	ex *extractor.Extractor,
	sum *extractor.Summarizer,
	c cache.Cache,
	logger *slog.Logger,
) *Pipeline {
	return &Pipeline{
		cfg:        cfg,
		runner:     runner,
		articles:   articles,
		mentions:   mentions,
		narratives: narratives,
		signals:    signals,
		extractor:  ex,
		summarizer: sum,
		cache:      c,
		logger:     logger,
	}
}

// RunIngest drains every configured feed once.
func (p *Pipeline) RunIngest(ctx context.Context) error {
	if p.runner == nil {
		p.logger.Debug("no feeds configured, skipping ingestion cycle")
		return nil
	}
	_, err := p.runner.RunOnce(ctx)
	return err
}

// RunExtraction enriches unenriched articles in LLM batches until the
// backlog is drained. Consecutive batches are paced by BatchDelay so a
// large backlog doesn't burn the token budget in one burst.
func (p *Pipeline) RunExtraction(ctx context.Context) error {
	if p.extractor == nil {
		p.logger.Debug("extraction disabled, skipping cycle")
		return nil
	}

	for {
		batch, err := p.articles.ListUnenriched(ctx, p.cfg.BatchSizeExtraction)
		if err != nil {
			return err
		}
		if len(batch) == 0 {
			return nil
		}

		applied, err := p.extractBatch(ctx, batch)
		if err != nil {
			return err
		}
		// No progress means every article in the batch failed; leave the
		// backlog for the next cycle instead of spinning on it.
		if applied == 0 || len(batch) < p.cfg.BatchSizeExtraction {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.cfg.BatchDelay):
		}
	}
}

func (p *Pipeline) extractBatch(ctx context.Context, batch []*ent.Article) (int, error) {
	inputs := make([]extractor.Input, 0, len(batch))
	byID := make(map[string]*ent.Article, len(batch))
	for _, a := range batch {
		inputs = append(inputs, extractor.Input{ID: a.ID, Title: a.Title, Text: a.Text})
		byID[a.ID] = a
	}

	result, err := p.extractor.ExtractBatch(ctx, inputs)
	if err != nil {
		return 0, fmt.Errorf("extraction batch failed: %w", err)
	}

	// Per-article writes fan out bounded by FanOut; a failed write is
	// logged and the article stays unenriched for the next cycle.
	sem := make(chan struct{}, max(1, p.cfg.FanOut))
	var wg sync.WaitGroup
	var mu sync.Mutex
	applied := 0
	for _, ext := range result.Articles {
		a, ok := byID[ext.ArticleID]
		if !ok {
			continue
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(a *ent.Article, ext models.ArticleExtraction) {
			defer wg.Done()
			defer func() { <-sem }()

			// Mentions first; the hash written by ApplyExtraction is the
			// completion marker, so a failure or crash in between leaves
			// the article hash-null and it is retried next cycle (mention
			// upserts are idempotent).
			if _, err := p.mentions.UpsertMentions(ctx, a, ext.Entities, ext.Sentiment); err != nil {
				p.logger.Error("failed to upsert mentions", "article_id", a.ID, "error", err)
				return
			}
			if err := p.articles.ApplyExtraction(ctx, a.ID, ext, a.Title, a.Text); err != nil {
				p.logger.Error("failed to apply extraction", "article_id", a.ID, "error", err)
				return
			}
			mu.Lock()
			applied++
			mu.Unlock()
		}(a, ext)
	}
	wg.Wait()

	p.logger.Info("extraction batch complete",
		"batch_size", len(batch), "applied", applied, "skipped", result.Skipped,
		"cached", result.Usage.Cached, "cost_usd", result.Usage.CostUSD)
	return applied, nil
}

// RunClustering rebuilds clusters from the lookback window, assigns
// them to narratives, and runs a merge pass over the survivors.
func (p *Pipeline) RunClustering(ctx context.Context) error {
	now := time.Now().UTC()

	articles, err := p.articles.ListForClustering(ctx, p.cfg.LookbackCluster, now)
	if err != nil {
		return err
	}
	clusters := narrative.BuildClusters(services.ClusterInputs(articles), p.cfg.MinClusterSize)

	if err := p.narratives.AssignClusters(ctx, clusters, now); err != nil {
		return err
	}
	merged, err := p.narratives.MergePass(ctx, now)
	if err != nil {
		return err
	}

	p.refineSummaries(ctx, now)

	p.cache.InvalidatePrefix(ctx, cache.PrefixNarratives)
	p.logger.Info("clustering cycle complete",
		"articles", len(articles), "clusters", len(clusters), "merged", merged)
	return nil
}

// refineSummaries rewrites the summaries of narratives touched this
// cycle using the higher-quality model. Failures keep the previous
// summary; the next clustering cycle retries.
func (p *Pipeline) refineSummaries(ctx context.Context, cycleStart time.Time) {
	if p.summarizer == nil {
		return
	}

	touched, err := p.narratives.ListActive(ctx, models.NarrativeFilters{Since: &cycleStart})
	if err != nil {
		p.logger.Error("failed to list narratives for summary refinement", "error", err)
		return
	}

	refined := 0
	for _, n := range touched {
		if ctx.Err() != nil {
			return
		}
		points, err := p.narratives.MemberSummaries(ctx, n)
		if err != nil {
			p.logger.Error("failed to load member summaries", "narrative_id", n.ID, "error", err)
			continue
		}
		// A single-member narrative's summary is its article's summary;
		// refinement only pays off once there is something to merge.
		if len(points) < 2 {
			continue
		}
		summary, err := p.summarizer.Summarize(ctx, n.Fingerprint.NucleusEntity, points)
		if err != nil {
			p.logger.Warn("summary refinement failed, keeping previous summary",
				"narrative_id", n.ID, "error", err)
			continue
		}
		if err := p.narratives.UpdateSummary(ctx, n.ID, summary); err != nil {
			p.logger.Error("failed to store refined summary", "narrative_id", n.ID, "error", err)
			continue
		}
		refined++
	}
	if refined > 0 {
		p.logger.Info("narrative summaries refined", "count", refined)
	}
}

// RunScoring recomputes per-entity signal scores over the lookback
// window and invalidates cached signal listings.
func (p *Pipeline) RunScoring(ctx context.Context) error {
	now := time.Now().UTC()

	scored, err := p.signals.RecomputeSignals(ctx, p.cfg.LookbackSignal, p.cfg.EmergingScoreFloor, now)
	if err != nil {
		return err
	}

	p.cache.InvalidatePrefix(ctx, cache.PrefixSignals)
	p.logger.Info("signal scoring complete", "entities", scored)
	return nil
}

// RunLifecycle sweeps narrative lifecycle states against the staleness
// cutoffs.
func (p *Pipeline) RunLifecycle(ctx context.Context) error {
	if err := p.narratives.LifecycleSweep(ctx, time.Now().UTC()); err != nil {
		return err
	}
	p.cache.InvalidatePrefix(ctx, cache.PrefixNarratives)
	return nil
}

// RunBriefing fires at the configured wall-clock slots. Briefing
// content generation lives outside this service; the slot logs a
// snapshot so operators can see the schedule firing.
func (p *Pipeline) RunBriefing(ctx context.Context) error {
	active, err := p.narratives.ActiveEntityIndex(ctx)
	if err != nil {
		return err
	}
	p.logger.Info("briefing slot reached", "active_entities", len(active))
	return nil
}
