package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mikechavez/crypto-news-aggregator-sub003/ent"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/article"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/entitymention"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/models"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/signals"
)

// MentionService owns entity_mentions: one row per (article, entity),
// written idempotently by the extraction job.
type MentionService struct {
	client *ent.Client
}

// NewMentionService creates a new MentionService.
func NewMentionService(client *ent.Client) *MentionService {
	return &MentionService{client: client}
}

// UpsertMentions inserts one mention per extracted entity. Existing
// (article, entity) pairs are left as-is, so re-running extraction on
// the same article changes nothing. Returns the number of new rows.
func (s *MentionService) UpsertMentions(ctx context.Context, a *ent.Article, entities []models.ExtractedEntity, sentiment string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	existing, err := s.client.EntityMention.Query().
		Where(entitymention.ArticleID(a.ID)).
		Select(entitymention.FieldEntity).
		Strings(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load existing mentions: %w", err)
	}
	seen := make(map[string]struct{}, len(existing))
	for _, e := range existing {
		seen[e] = struct{}{}
	}

	inserted := 0
	for _, m := range entities {
		if _, ok := seen[m.Value]; ok {
			continue
		}
		seen[m.Value] = struct{}{}

		err := s.client.EntityMention.Create().
			SetID(uuid.NewString()).
			SetArticleID(a.ID).
			SetEntity(m.Value).
			SetEntityType(entitymention.EntityType(m.Type)).
			SetIsPrimary(m.IsPrimary).
			SetSentiment(entitymention.Sentiment(sentiment)).
			SetConfidence(m.Confidence).
			SetSource(a.Source).
			SetCreatedAt(a.PublishedAt).
			Exec(ctx)
		if err != nil {
			// Another extraction cycle inserted the pair first.
			if ent.IsConstraintError(err) {
				continue
			}
			return inserted, fmt.Errorf("failed to insert mention %q for article %s: %w", m.Value, a.ID, err)
		}
		inserted++
	}
	return inserted, nil
}

// CountForArticle returns the number of stored mentions for an article.
func (s *MentionService) CountForArticle(ctx context.Context, articleID string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	n, err := s.client.EntityMention.Query().
		Where(entitymention.ArticleID(articleID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count mentions: %w", err)
	}
	return n, nil
}

// PrimaryEntitiesSince returns the canonical names of primary entities
// mentioned within the lookback window.
func (s *MentionService) PrimaryEntitiesSince(ctx context.Context, since time.Time) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	entities, err := s.client.EntityMention.Query().
		Where(
			entitymention.IsPrimary(true),
			entitymention.CreatedAtGTE(since),
			entitymention.HasArticleWith(article.RelevanceTierNEQ(models.TierLow)),
		).
		Unique(true).
		Select(entitymention.FieldEntity).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list primary entities: %w", err)
	}
	return entities, nil
}

// MentionsForEntity loads stored mentions of one canonical entity
// since the cutoff, shaped for the signal scorer. Mentions from tier-3
// articles are excluded via the article join.
func (s *MentionService) MentionsForEntity(ctx context.Context, entityName string, since time.Time) ([]signals.Mention, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	rows, err := s.client.EntityMention.Query().
		Where(
			entitymention.Entity(entityName),
			entitymention.CreatedAtGTE(since),
			entitymention.HasArticleWith(article.RelevanceTierNEQ(models.TierLow)),
		).
		Order(ent.Asc(entitymention.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load mentions for %q: %w", entityName, err)
	}

	out := make([]signals.Mention, 0, len(rows))
	for _, m := range rows {
		out = append(out, signals.Mention{
			Entity:     m.Entity,
			EntityType: string(m.EntityType),
			Source:     m.Source,
			Sentiment:  string(m.Sentiment),
			CreatedAt:  m.CreatedAt,
		})
	}
	return out, nil
}
