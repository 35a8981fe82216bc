package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mikechavez/crypto-news-aggregator-sub003/ent"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/article"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/entitymention"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/extractor"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/models"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/relevance"
)

// dbTimeout bounds every database operation.
const dbTimeout = 5 * time.Second

// ArticleService owns article ingestion and enrichment writes. The
// relevance tier is assigned at ingestion; extraction fields are
// written once per content hash.
type ArticleService struct {
	client *ent.Client
}

// NewArticleService creates a new ArticleService.
func NewArticleService(client *ent.Client) *ArticleService {
	return &ArticleService{client: client}
}

// UpsertArticle inserts an article if its URL is new and reports
// novelty. Existing URLs are left untouched (articles are immutable
// after ingestion). Timestamps are normalized to UTC here, at the
// boundary.
func (s *ArticleService) UpsertArticle(ctx context.Context, in models.IncomingArticle) (*ent.Article, bool, error) {
	if strings.TrimSpace(in.URL) == "" {
		return nil, false, NewValidationError("url", "required")
	}
	if _, err := url.ParseRequestURI(in.URL); err != nil {
		return nil, false, NewValidationError("url", "malformed")
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, false, NewValidationError("title", "required")
	}
	if strings.TrimSpace(in.Source) == "" {
		return nil, false, NewValidationError("source", "required")
	}
	if in.PublishedAt.IsZero() {
		return nil, false, NewValidationError("published_at", "required")
	}

	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	existing, err := s.client.Article.Query().
		Where(article.URL(in.URL)).
		Only(ctx)
	if err == nil {
		return existing, false, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, fmt.Errorf("failed to query article by url: %w", err)
	}

	tier := relevance.Classify(in.Title, in.Text)

	created, err := s.client.Article.Create().
		SetID(uuid.NewString()).
		SetURL(in.URL).
		SetTitle(in.Title).
		SetText(in.Text).
		SetSource(in.Source).
		SetPublishedAt(in.PublishedAt.UTC()).
		SetCreatedAt(time.Now().UTC()).
		SetRelevanceTier(tier.Tier).
		SetRelevanceReason(tier.Reason).
		Save(ctx)
	if err != nil {
		// Lost a race with a concurrent ingest of the same URL.
		if ent.IsConstraintError(err) {
			existing, qErr := s.client.Article.Query().
				Where(article.URL(in.URL)).
				Only(ctx)
			if qErr != nil {
				return nil, false, fmt.Errorf("failed to re-read article after conflict: %w", qErr)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("failed to create article: %w", err)
	}
	return created, true, nil
}

// ListUnenriched returns articles needing extraction, oldest first:
// those without a narrative hash and those whose hash carries an older
// extractor version (a version bump re-enriches the corpus). Tier-3
// articles are still extracted (tiering only excludes them from signal
// scoring).
func (s *ArticleService) ListUnenriched(ctx context.Context, limit int) ([]*ent.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	q := s.client.Article.Query().
		Where(article.Or(
			article.NarrativeHashIsNil(),
			article.Not(article.NarrativeHashHasPrefix(extractor.HashPrefix)),
		)).
		Order(ent.Asc(article.FieldPublishedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	articles, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unenriched articles: %w", err)
	}
	return articles, nil
}

// ListForClustering returns enriched non-tier-3 articles published
// within the lookback window.
func (s *ArticleService) ListForClustering(ctx context.Context, lookback time.Duration, now time.Time) ([]*ent.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	articles, err := s.client.Article.Query().
		Where(
			article.PublishedAtGTE(now.Add(-lookback)),
			article.NucleusEntityNotNil(),
			article.RelevanceTierNEQ(models.TierLow),
		).
		Order(ent.Asc(article.FieldPublishedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles for clustering: %w", err)
	}
	return articles, nil
}

// NeedsExtraction reports whether the article must go to the LLM: false
// when its stored hash matches the current content hash and mentions
// already exist (the extraction already happened).
func (s *ArticleService) NeedsExtraction(ctx context.Context, a *ent.Article) (bool, error) {
	hash := extractor.ContentHash(a.Title, a.Text)
	if a.NarrativeHash == nil || *a.NarrativeHash != hash {
		return true, nil
	}

	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	exists, err := s.client.EntityMention.Query().
		Where(entitymention.ArticleID(a.ID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check mentions for article %s: %w", a.ID, err)
	}
	return !exists, nil
}

// ApplyExtraction writes the extractor's narrative fields onto the
// article along with the content hash that makes re-extraction a no-op.
func (s *ArticleService) ApplyExtraction(ctx context.Context, articleID string, ext models.ArticleExtraction, title, text string) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	err := s.client.Article.UpdateOneID(articleID).
		SetSentimentLabel(article.SentimentLabel(ext.Sentiment)).
		SetNucleusEntity(ext.NucleusEntity).
		SetActors(ext.Actors).
		SetActorSalience(ext.ActorSalience).
		SetKeyActions(ext.KeyActions).
		SetNarrativeSummary(ext.NarrativeSummary).
		SetNarrativeHash(extractor.ContentHash(title, text)).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("article %s: %w", articleID, ErrNotFound)
		}
		return fmt.Errorf("failed to apply extraction to article %s: %w", articleID, err)
	}
	return nil
}

// SetNarrativeID records the clusterer's back-reference on member
// articles.
func (s *ArticleService) SetNarrativeID(ctx context.Context, articleIDs []string, narrativeID string) error {
	if len(articleIDs) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	_, err := s.client.Article.Update().
		Where(article.IDIn(articleIDs...)).
		SetNarrativeID(narrativeID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to set narrative id on articles: %w", err)
	}
	return nil
}

// GetByIDs loads articles by id, preserving no particular order.
func (s *ArticleService) GetByIDs(ctx context.Context, ids []string) ([]*ent.Article, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	articles, err := s.client.Article.Query().
		Where(article.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load articles by id: %w", err)
	}
	return articles, nil
}
