// Package extractor runs batched LLM entity extraction: one request
// carries a delimited batch of articles, the structured response is
// validated per article, and every call is cost-tracked. Articles whose
// output fails validation are retried individually once, then skipped.
package extractor

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/entity"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/llm"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/models"
)

// Version participates in the content hash so that a prompt or schema
// change re-extracts previously processed articles.
const Version = "v3"

// Operation label used on cost records.
const operationExtract = "entity_extraction"

// Input is one article to extract from.
type Input struct {
	ID    string
	Title string
	Text  string
}

// CostRecord is one LLM call's accounting, including cache hits
// recorded at zero cost.
type CostRecord struct {
	Timestamp    time.Time
	Operation    string
	Model        string
	InputTokens  int
	OutputTokens int
	CostUSD      float64
	Cached       bool
	CacheKey     string
}

// CostRecorder persists cost records. The services layer provides the
// database-backed implementation.
type CostRecorder interface {
	RecordCost(ctx context.Context, rec CostRecord) error
}

// Extractor drives batched extraction against an LLM client.
type Extractor struct {
	client      llm.Client
	model       string
	promptCache *llm.PromptCache
	costs       CostRecorder
	logger      *slog.Logger
	maxTokens   int32
	retryDelay  time.Duration
}

// New creates an extractor. promptCache may be nil to disable prompt
// caching; costs may be nil to disable cost tracking (tests only).
func New(client llm.Client, model string, promptCache *llm.PromptCache, costs CostRecorder, logger *slog.Logger) *Extractor {
	return &Extractor{
		client:      client,
		model:       model,
		promptCache: promptCache,
		costs:       costs,
		logger:      logger,
		maxTokens:   8192,
	}
}

// SetRetryDelay paces the individual retry call after a failed batch
// member. Zero disables pacing.
func (e *Extractor) SetRetryDelay(d time.Duration) {
	e.retryDelay = d
}

// ContentHash keys extraction idempotence: identical title, text, and
// extractor version always hash the same. The version prefix lets the
// backlog query pick up rows hashed by an older extractor without
// recomputing hashes row by row.
func ContentHash(title, text string) string {
	h := sha256.New()
	h.Write([]byte(title))
	h.Write([]byte{0})
	h.Write([]byte(text))
	return Version + ":" + hex.EncodeToString(h.Sum(nil))
}

// HashPrefix is the stored-hash prefix of the current extractor
// version, for backlog queries.
const HashPrefix = Version + ":"

// ExtractBatch extracts entities and narrative fields for a batch of
// articles in one LLM call. Invalid per-article outputs are retried
// individually once; articles that fail twice are skipped and counted.
func (e *Extractor) ExtractBatch(ctx context.Context, articles []Input) (*models.ExtractionResult, error) {
	if len(articles) == 0 {
		return &models.ExtractionResult{Usage: models.BatchUsage{Model: e.model}}, nil
	}

	prompt := buildBatchPrompt(articles)
	resp, usage, err := e.generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("extraction batch failed: %w", err)
	}

	parsed, parseErr := parseBatchResponse(resp.Text, articles)
	if parseErr != nil {
		// The whole payload was unusable; retry every article solo.
		e.logger.Warn("batch response unparseable, retrying articles individually",
			"batch_size", len(articles), "error", parseErr)
		parsed = make(map[string]models.ArticleExtraction)
	}

	result := &models.ExtractionResult{Usage: usage}
	for _, a := range articles {
		ext, ok := parsed[a.ID]
		var vErr error
		if ok {
			vErr = validate(ext)
		} else {
			vErr = fmt.Errorf("article %s missing from batch response", a.ID)
		}

		if vErr != nil {
			retried, retryErr := e.extractSingle(ctx, a)
			if retryErr != nil {
				e.logger.Error("article skipped after failed retry",
					"article_id", a.ID, "first_error", vErr, "retry_error", retryErr)
				result.Skipped++
				continue
			}
			ext = *retried
		}

		canonicalize(&ext)
		ext.ArticleID = a.ID
		result.Articles = append(result.Articles, ext)
	}

	return result, nil
}

// extractSingle reprocesses one article whose batched output failed
// validation. A second validation failure is permanent for this cycle.
func (e *Extractor) extractSingle(ctx context.Context, a Input) (*models.ArticleExtraction, error) {
	if e.retryDelay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(e.retryDelay):
		}
	}

	prompt := buildBatchPrompt([]Input{a})
	resp, _, err := e.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	parsed, err := parseBatchResponse(resp.Text, []Input{a})
	if err != nil {
		return nil, err
	}
	ext, ok := parsed[a.ID]
	if !ok {
		return nil, fmt.Errorf("article %s missing from retry response", a.ID)
	}
	if err := validate(ext); err != nil {
		return nil, err
	}
	return &ext, nil
}

// generate runs one prompt through the cache and the LLM client, and
// records a cost record either way. Cache hits cost zero and are
// flagged so hit rates stay observable.
func (e *Extractor) generate(ctx context.Context, prompt string) (*llm.GenerateResponse, models.BatchUsage, error) {
	key := llm.CacheKey(e.model, prompt)

	if e.promptCache != nil {
		if cached, ok := e.promptCache.Get(key); ok {
			usage := models.BatchUsage{Model: e.model, Cached: true}
			e.recordCost(ctx, usage, key)
			return cached, usage, nil
		}
	}

	resp, err := e.client.Generate(ctx, llm.GenerateRequest{
		Model:     e.model,
		System:    systemPrompt,
		Prompt:    prompt,
		MaxTokens: e.maxTokens,
	})
	if err != nil {
		return nil, models.BatchUsage{}, err
	}

	usage := models.BatchUsage{
		Model:        e.model,
		InputTokens:  resp.InputTokens,
		OutputTokens: resp.OutputTokens,
		CostUSD:      llm.Cost(e.model, resp.InputTokens, resp.OutputTokens),
	}
	e.recordCost(ctx, usage, key)

	if e.promptCache != nil {
		e.promptCache.Set(key, *resp)
	}
	return resp, usage, nil
}

func (e *Extractor) recordCost(ctx context.Context, usage models.BatchUsage, cacheKey string) {
	if e.costs == nil {
		return
	}
	rec := CostRecord{
		Timestamp:    time.Now().UTC(),
		Operation:    operationExtract,
		Model:        usage.Model,
		InputTokens:  usage.InputTokens,
		OutputTokens: usage.OutputTokens,
		CostUSD:      usage.CostUSD,
		Cached:       usage.Cached,
		CacheKey:     cacheKey,
	}
	if err := e.costs.RecordCost(ctx, rec); err != nil {
		e.logger.Error("failed to record LLM cost", "operation", rec.Operation, "error", err)
	}
}

// canonicalize normalizes every entity surface form in an extraction
// and derives is_primary from the entity type.
func canonicalize(ext *models.ArticleExtraction) {
	for i := range ext.Entities {
		ext.Entities[i].Value = entity.Normalize(ext.Entities[i].Value)
		ext.Entities[i].IsPrimary = models.IsPrimaryEntityType(ext.Entities[i].Type)
	}
	ext.NucleusEntity = entity.Normalize(ext.NucleusEntity)
	ext.Actors = entity.NormalizeAll(ext.Actors)

	if len(ext.ActorSalience) > 0 {
		salience := make(map[string]int, len(ext.ActorSalience))
		for actor, s := range ext.ActorSalience {
			canonical := entity.Normalize(actor)
			if existing, ok := salience[canonical]; !ok || s > existing {
				salience[canonical] = s
			}
		}
		ext.ActorSalience = salience
	}
}
