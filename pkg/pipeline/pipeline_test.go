package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikechavez/crypto-news-aggregator-sub003/ent"
	entarticle "github.com/mikechavez/crypto-news-aggregator-sub003/ent/article"
	entnarrative "github.com/mikechavez/crypto-news-aggregator-sub003/ent/narrative"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/cache"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/config"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/database"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/extractor"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/llm"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/models"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/services"
	testdb "github.com/mikechavez/crypto-news-aggregator-sub003/test/database"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeLLM answers every prompt with one canned response.
type fakeLLM struct {
	respond func(prompt string) (*llm.GenerateResponse, error)
	calls   int
}

func (f *fakeLLM) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	f.calls++
	return f.respond(req.Prompt)
}

func newTestPipeline(t *testing.T, client *database.Client, ex *extractor.Extractor, sum *extractor.Summarizer, c cache.Cache, cfg config.PipelineConfig) *Pipeline {
	t.Helper()
	articles := services.NewArticleService(client.Client)
	mentions := services.NewMentionService(client.Client)
	narratives := services.NewNarrativeService(client.Client,
		services.NarrativeThresholds{
			MergeRecent: cfg.MergeThresholdRecent,
			MergeOld:    cfg.MergeThresholdOld,
			DormantDays: cfg.DormantAfterDays,
			ArchiveDays: cfg.ArchiveAfterDays,
		},
		testLogger())
	signals := services.NewSignalService(client.Client, mentions, narratives, testLogger())
	return New(cfg, nil, articles, mentions, narratives, signals, ex, sum, c, testLogger())
}

func ingestArticle(t *testing.T, articles *services.ArticleService, title string) string {
	t.Helper()
	a, isNew, err := articles.UpsertArticle(context.Background(), models.IncomingArticle{
		URL:         "https://example.com/" + uuid.NewString(),
		Title:       title,
		Text:        title + " with fresh exchange volume data.",
		Source:      "coindesk",
		PublishedAt: time.Now().UTC().Add(-time.Hour),
	})
	require.NoError(t, err)
	require.True(t, isNew)
	return a.ID
}

func extractionJSON(id string) string {
	return fmt.Sprintf(`{
		"article_id": %q,
		"entities": [{"type": "cryptocurrency", "value": "Bitcoin", "confidence": 0.95}],
		"sentiment": "positive",
		"nucleus_entity": "Bitcoin",
		"actors": ["Bitcoin", "BlackRock"],
		"actor_salience": {"Bitcoin": 5, "BlackRock": 4},
		"key_actions": ["approved etf"],
		"narrative_summary": "Bitcoin ETF flows accelerate."
	}`, id)
}

func TestRunExtraction(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	cfg := config.DefaultPipelineConfig()
	cfg.BatchDelay = 10 * time.Millisecond

	articles := services.NewArticleService(client.Client)
	id1 := ingestArticle(t, articles, "Bitcoin ETF inflows surge")
	id2 := ingestArticle(t, articles, "Bitcoin miners expand capacity")

	fake := &fakeLLM{respond: func(string) (*llm.GenerateResponse, error) {
		return &llm.GenerateResponse{
			Text:         fmt.Sprintf(`{"articles":[%s,%s]}`, extractionJSON(id1), extractionJSON(id2)),
			InputTokens:  1000,
			OutputTokens: 200,
		}, nil
	}}
	ex := extractor.New(fake, "gemini-2.5-flash", nil, nil, testLogger())

	p := newTestPipeline(t, client, ex, nil, cache.Noop{}, cfg)
	require.NoError(t, p.RunExtraction(ctx))
	assert.Equal(t, 1, fake.calls)

	for _, id := range []string{id1, id2} {
		a, err := client.Article.Get(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, a.NucleusEntity)
		assert.Equal(t, "Bitcoin", *a.NucleusEntity)
		require.NotNil(t, a.NarrativeHash)
	}

	mentions := services.NewMentionService(client.Client)
	n, err := mentions.CountForArticle(ctx, id1)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Backlog drained: the next cycle makes no LLM calls.
	require.NoError(t, p.RunExtraction(ctx))
	assert.Equal(t, 1, fake.calls)
}

// A crash between the mention write and the hash write must leave the
// article on the backlog; the rerun completes it without duplicating
// mentions.
func TestRunExtractionRecoversPartialWrite(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	articles := services.NewArticleService(client.Client)
	mentions := services.NewMentionService(client.Client)
	id := ingestArticle(t, articles, "Bitcoin ETF inflows surge")

	a, err := client.Article.Get(ctx, id)
	require.NoError(t, err)
	_, err = mentions.UpsertMentions(ctx, a, []models.ExtractedEntity{
		{Type: models.EntityCryptocurrency, Value: "Bitcoin", Confidence: 0.95, IsPrimary: true},
	}, models.SentimentPositive)
	require.NoError(t, err)

	fake := &fakeLLM{respond: func(string) (*llm.GenerateResponse, error) {
		return &llm.GenerateResponse{Text: fmt.Sprintf(`{"articles":[%s]}`, extractionJSON(id))}, nil
	}}
	ex := extractor.New(fake, "gemini-2.5-flash", nil, nil, testLogger())
	p := newTestPipeline(t, client, ex, nil, cache.Noop{}, config.DefaultPipelineConfig())

	require.NoError(t, p.RunExtraction(ctx))
	assert.Equal(t, 1, fake.calls)

	reloaded, err := client.Article.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, reloaded.NarrativeHash)

	count, err := mentions.CountForArticle(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

// Bumping the extractor version puts previously enriched articles back
// on the backlog.
func TestRunExtractionReenrichesOlderVersion(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	articles := services.NewArticleService(client.Client)
	id := ingestArticle(t, articles, "Bitcoin ETF inflows surge")
	require.NoError(t, client.Article.UpdateOneID(id).
		SetNarrativeHash("v0:"+strings.Repeat("0", 64)).
		Exec(ctx))

	fake := &fakeLLM{respond: func(string) (*llm.GenerateResponse, error) {
		return &llm.GenerateResponse{Text: fmt.Sprintf(`{"articles":[%s]}`, extractionJSON(id))}, nil
	}}
	ex := extractor.New(fake, "gemini-2.5-flash", nil, nil, testLogger())
	p := newTestPipeline(t, client, ex, nil, cache.Noop{}, config.DefaultPipelineConfig())

	require.NoError(t, p.RunExtraction(ctx))
	assert.Equal(t, 1, fake.calls)

	reloaded, err := client.Article.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, reloaded.NarrativeHash)
	assert.True(t, strings.HasPrefix(*reloaded.NarrativeHash, extractor.HashPrefix))
}

func TestRunClusteringAndScoring(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	cfg := config.DefaultPipelineConfig()
	tiered, err := cache.New(16, nil, testLogger())
	require.NoError(t, err)
	p := newTestPipeline(t, client, nil, nil, tiered, cfg)

	now := time.Now().UTC()
	mentions := services.NewMentionService(client.Client)
	for i := 0; i < 3; i++ {
		a := seedEnriched(t, client.Client, "Bitcoin", now.Add(-time.Duration(i+1)*time.Hour))
		_, err := mentions.UpsertMentions(ctx, a, []models.ExtractedEntity{
			{Type: models.EntityCryptocurrency, Value: "Bitcoin", Confidence: 0.9, IsPrimary: true},
		}, models.SentimentPositive)
		require.NoError(t, err)
	}

	tiered.Set(ctx, cache.PrefixNarratives+"probe", []byte("x"), time.Minute)
	tiered.Set(ctx, cache.PrefixSignals+"probe", []byte("x"), time.Minute)

	require.NoError(t, p.RunClustering(ctx))

	narratives, err := client.Narrative.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, narratives, 1)
	assert.Equal(t, "Bitcoin", narratives[0].NucleusEntity)

	_, ok := tiered.Get(ctx, cache.PrefixNarratives+"probe")
	assert.False(t, ok, "clustering should invalidate narrative listings")

	require.NoError(t, p.RunScoring(ctx))

	scores, err := client.SignalScore.Query().All(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, scores)

	_, ok = tiered.Get(ctx, cache.PrefixSignals+"probe")
	assert.False(t, ok, "scoring should invalidate signal listings")
}

func TestRunClusteringRefinesSummaries(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	fake := &fakeLLM{respond: func(string) (*llm.GenerateResponse, error) {
		return &llm.GenerateResponse{Text: "Bitcoin ETF inflows keep climbing.", InputTokens: 500, OutputTokens: 30}, nil
	}}
	sum := extractor.NewSummarizer(fake, "gemini-2.5-pro", nil, testLogger())

	cfg := config.DefaultPipelineConfig()
	p := newTestPipeline(t, client, nil, sum, cache.Noop{}, cfg)

	now := time.Now().UTC()
	for i := 0; i < 3; i++ {
		seedEnriched(t, client.Client, "Bitcoin", now.Add(-time.Duration(i+1)*time.Hour))
	}

	require.NoError(t, p.RunClustering(ctx))
	assert.Equal(t, 1, fake.calls)

	narratives, err := client.Narrative.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, narratives, 1)
	assert.Equal(t, "Bitcoin ETF inflows keep climbing.", narratives[0].Summary)
}

func TestRunLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	p := newTestPipeline(t, client, nil, nil, cache.Noop{}, config.DefaultPipelineConfig())

	stale := time.Now().UTC().Add(-10 * 24 * time.Hour)
	id := uuid.NewString()
	require.NoError(t, client.Narrative.Create().
		SetID(id).
		SetTitle("Bitcoin").
		SetNucleusEntity("Bitcoin").
		SetEntities([]string{"Bitcoin"}).
		SetArticleIds([]string{}).
		SetFingerprint(models.Fingerprint{NucleusEntity: "Bitcoin", Timestamp: stale}).
		SetLifecycleState(entnarrative.LifecycleState(models.StateHot)).
		SetLifecycleHistory([]models.LifecycleEntry{{State: models.StateHot, Timestamp: stale}}).
		SetLastUpdated(stale).
		Exec(ctx))

	require.NoError(t, p.RunLifecycle(ctx))

	n, err := client.Narrative.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entnarrative.LifecycleState(models.StateDormant), n.LifecycleState)
}

// seedEnriched inserts an already-extracted article so the clustering
// job has input without running the LLM path.
func seedEnriched(t *testing.T, client *ent.Client, nucleus string, publishedAt time.Time) *ent.Article {
	t.Helper()
	id := uuid.NewString()
	title := nucleus + " update"
	text := "body about " + nucleus
	a, err := client.Article.Create().
		SetID(id).
		SetURL("https://example.com/" + id).
		SetTitle(title).
		SetText(text).
		SetSource("coindesk").
		SetPublishedAt(publishedAt.UTC()).
		SetRelevanceTier(models.TierHigh).
		SetSentimentLabel(entarticle.SentimentLabel(models.SentimentPositive)).
		SetNucleusEntity(nucleus).
		SetActors([]string{nucleus, "BlackRock"}).
		SetActorSalience(map[string]int{nucleus: 5, "BlackRock": 4}).
		SetKeyActions([]string{"approved etf"}).
		SetNarrativeSummary(nucleus + " is moving").
		SetNarrativeHash(extractor.ContentHash(title, text)).
		Save(context.Background())
	require.NoError(t, err)
	return a
}
