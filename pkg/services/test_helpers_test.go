package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mikechavez/crypto-news-aggregator-sub003/ent"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/extractor"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testThresholds() NarrativeThresholds {
	return NarrativeThresholds{MergeRecent: 0.5, MergeOld: 0.6}
}

// seedArticle inserts an enriched article directly, bypassing the
// ingestion/extraction pipeline.
func seedArticle(t *testing.T, client *ent.Client, nucleus, source string, tier int, publishedAt time.Time, actors []string, actions []string) *ent.Article {
	t.Helper()

	salience := make(map[string]int, len(actors))
	for i, a := range actors {
		salience[a] = 5 - i
		if salience[a] < 1 {
			salience[a] = 1
		}
	}

	id := uuid.NewString()
	title := nucleus + " update"
	text := "body about " + nucleus
	a, err := client.Article.Create().
		SetID(id).
		SetURL("https://example.com/" + id).
		SetTitle(title).
		SetText(text).
		SetSource(source).
		SetPublishedAt(publishedAt.UTC()).
		SetRelevanceTier(tier).
		SetSentimentLabel("neutral").
		SetNucleusEntity(nucleus).
		SetActors(actors).
		SetActorSalience(salience).
		SetKeyActions(actions).
		SetNarrativeSummary(nucleus + " is moving").
		SetNarrativeHash(extractor.ContentHash(title, text)).
		Save(context.Background())
	require.NoError(t, err)
	return a
}
