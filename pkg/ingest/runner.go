package ingest

import (
	"context"
	"log/slog"

	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/services"
)

// Stats summarizes one ingestion cycle.
type Stats struct {
	Fetched    int
	Inserted   int
	Duplicates int
	Rejected   int
}

// Runner drives one ingestion cycle across all configured sources. A
// failing source is logged and skipped; the cycle continues.
type Runner struct {
	sources  []Source
	articles *services.ArticleService
	logger   *slog.Logger
}

// NewRunner creates an ingestion runner.
func NewRunner(sources []Source, articles *services.ArticleService, logger *slog.Logger) *Runner {
	return &Runner{sources: sources, articles: articles, logger: logger}
}

// RunOnce fetches every source and upserts its articles. Known URLs
// count as duplicates, invalid articles as rejected.
func (r *Runner) RunOnce(ctx context.Context) (Stats, error) {
	var stats Stats
	for _, src := range r.sources {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		articles, err := src.Fetch(ctx)
		if err != nil {
			r.logger.Error("feed fetch failed", "source", src.Name(), "error", err)
			continue
		}
		stats.Fetched += len(articles)

		for _, in := range articles {
			_, isNew, err := r.articles.UpsertArticle(ctx, in)
			if err != nil {
				if services.IsValidationError(err) {
					stats.Rejected++
					r.logger.Warn("rejected article from feed",
						"source", src.Name(), "url", in.URL, "error", err)
					continue
				}
				r.logger.Error("article upsert failed",
					"source", src.Name(), "url", in.URL, "error", err)
				continue
			}
			if isNew {
				stats.Inserted++
			} else {
				stats.Duplicates++
			}
		}
	}

	r.logger.Info("ingestion cycle complete",
		"fetched", stats.Fetched, "inserted", stats.Inserted,
		"duplicates", stats.Duplicates, "rejected", stats.Rejected)
	return stats, nil
}
