package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mikechavez/crypto-news-aggregator-sub003/ent"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/signalscore"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/models"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/signals"
)

// defaultTrendingLimit bounds trending queries without an explicit
// limit.
const defaultTrendingLimit = 20

// SignalService owns signal_scores: one row per canonical entity,
// recomputed in bulk by the scoring job with per-timeframe partial
// updates.
type SignalService struct {
	client     *ent.Client
	mentions   *MentionService
	narratives *NarrativeService
	logger     *slog.Logger
}

// NewSignalService creates a new SignalService.
func NewSignalService(client *ent.Client, mentions *MentionService, narratives *NarrativeService, logger *slog.Logger) *SignalService {
	return &SignalService{client: client, mentions: mentions, narratives: narratives, logger: logger}
}

// RecomputeSignals scores every primary entity mentioned within the
// lookback window and upserts the results. A failure on one entity is
// logged and does not abort the batch. Returns the number of entities
// scored.
func (s *SignalService) RecomputeSignals(ctx context.Context, lookback time.Duration, floor float64, now time.Time) (int, error) {
	entities, err := s.mentions.PrimaryEntitiesSince(ctx, now.Add(-lookback))
	if err != nil {
		return 0, err
	}
	if len(entities) == 0 {
		return 0, nil
	}

	index, err := s.narratives.ActiveEntityIndex(ctx)
	if err != nil {
		return 0, err
	}

	weights := signals.DefaultWeights()
	scored := 0
	for _, name := range entities {
		select {
		case <-ctx.Done():
			return scored, ctx.Err()
		default:
		}

		// Mentions beyond the scoring lookback still feed the 30d
		// timeframe's prior window, so load twice the widest window.
		since := now.Add(-2 * 720 * time.Hour)
		mentions, err := s.mentions.MentionsForEntity(ctx, name, since)
		if err != nil {
			s.logger.Error("failed to load mentions for scoring", "entity", name, "error", err)
			continue
		}
		if len(mentions) == 0 {
			continue
		}

		sig := signals.Compute(name, mentions[0].EntityType, mentions, lookback, now, weights)
		sig.NarrativeIDs = index[name]
		sig.IsEmerging = signals.IsEmerging(sig, sig.NarrativeIDs, floor)

		if err := s.Upsert(ctx, sig, models.Timeframe24h, models.Timeframe7d, models.Timeframe30d); err != nil {
			s.logger.Error("failed to upsert signal", "entity", name, "error", err)
			continue
		}
		scored++
	}
	return scored, nil
}

// Upsert writes a computed signal, updating only the columns of the
// named timeframes so a partial recompute leaves the others intact.
// Sentiment, sources, narrative membership, and the emerging flag are
// always refreshed.
func (s *SignalService) Upsert(ctx context.Context, sig models.EntitySignal, timeframes ...string) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	existing, err := s.client.SignalScore.Query().
		Where(signalscore.Entity(sig.Entity)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to query signal for %q: %w", sig.Entity, err)
	}

	if ent.IsNotFound(err) {
		create := s.client.SignalScore.Create().
			SetID(uuid.NewString()).
			SetEntity(sig.Entity).
			SetEntityType(sig.EntityType).
			SetFirstSeen(sig.FirstSeen.UTC()).
			SetSentimentAvg(sig.Sentiment.Avg).
			SetSentimentMin(sig.Sentiment.Min).
			SetSentimentMax(sig.Sentiment.Max).
			SetSentimentDivergence(sig.Sentiment.Divergence).
			SetSourceCount(sig.SourceCount).
			SetNarrativeIds(sig.NarrativeIDs).
			SetIsEmerging(sig.IsEmerging)
		for _, tf := range timeframes {
			score, ok := sig.Timeframes[tf]
			if !ok {
				continue
			}
			switch tf {
			case models.Timeframe24h:
				create = create.SetScore24h(score.Score).
					SetVelocity24h(score.Velocity).
					SetMentions24h(score.Mentions).
					SetRecency24h(score.Recency)
			case models.Timeframe7d:
				create = create.SetScore7d(score.Score).
					SetVelocity7d(score.Velocity).
					SetMentions7d(score.Mentions).
					SetRecency7d(score.Recency)
			case models.Timeframe30d:
				create = create.SetScore30d(score.Score).
					SetVelocity30d(score.Velocity).
					SetMentions30d(score.Mentions).
					SetRecency30d(score.Recency)
			}
		}
		if err := create.Exec(ctx); err != nil {
			if ent.IsConstraintError(err) {
				// Raced with a concurrent scorer; fall through to update.
				return s.Upsert(ctx, sig, timeframes...)
			}
			return fmt.Errorf("failed to create signal for %q: %w", sig.Entity, err)
		}
		return nil
	}

	update := existing.Update().
		SetEntityType(sig.EntityType).
		SetSentimentAvg(sig.Sentiment.Avg).
		SetSentimentMin(sig.Sentiment.Min).
		SetSentimentMax(sig.Sentiment.Max).
		SetSentimentDivergence(sig.Sentiment.Divergence).
		SetSourceCount(sig.SourceCount).
		SetNarrativeIds(sig.NarrativeIDs).
		SetIsEmerging(sig.IsEmerging).
		SetUpdatedAt(time.Now().UTC())
	for _, tf := range timeframes {
		score, ok := sig.Timeframes[tf]
		if !ok {
			continue
		}
		switch tf {
		case models.Timeframe24h:
			update = update.SetScore24h(score.Score).
				SetVelocity24h(score.Velocity).
				SetMentions24h(score.Mentions).
				SetRecency24h(score.Recency)
		case models.Timeframe7d:
			update = update.SetScore7d(score.Score).
				SetVelocity7d(score.Velocity).
				SetMentions7d(score.Mentions).
				SetRecency7d(score.Recency)
		case models.Timeframe30d:
			update = update.SetScore30d(score.Score).
				SetVelocity30d(score.Velocity).
				SetMentions30d(score.Mentions).
				SetRecency30d(score.Recency)
		}
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update signal for %q: %w", sig.Entity, err)
	}
	return nil
}

// ListTrending returns signals ranked by the requested timeframe's
// score, optionally filtered by entity type.
func (s *SignalService) ListTrending(ctx context.Context, filters models.SignalFilters) ([]*ent.SignalScore, error) {
	scoreField, err := scoreFieldFor(filters.Timeframe)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	limit := filters.Limit
	if limit <= 0 {
		limit = defaultTrendingLimit
	}

	q := s.client.SignalScore.Query().
		Order(ent.Desc(scoreField), ent.Asc(signalscore.FieldEntity)).
		Limit(limit)
	if filters.EntityType != "" {
		q = q.Where(signalscore.EntityType(filters.EntityType))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list trending signals: %w", err)
	}
	return rows, nil
}

// GetByEntity returns the signal row for one canonical entity.
func (s *SignalService) GetByEntity(ctx context.Context, entityName string) (*ent.SignalScore, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	row, err := s.client.SignalScore.Query().
		Where(signalscore.Entity(entityName)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("signal for %q: %w", entityName, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get signal for %q: %w", entityName, err)
	}
	return row, nil
}

func scoreFieldFor(timeframe string) (string, error) {
	switch timeframe {
	case "", models.Timeframe7d:
		return signalscore.FieldScore7d, nil
	case models.Timeframe24h:
		return signalscore.FieldScore24h, nil
	case models.Timeframe30d:
		return signalscore.FieldScore30d, nil
	}
	return "", NewValidationError("timeframe", "must be one of 24h, 7d, 30d")
}
