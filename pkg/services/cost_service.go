package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mikechavez/crypto-news-aggregator-sub003/ent"
	"github.com/mikechavez/crypto-news-aggregator-sub003/ent/apicost"
	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/extractor"
)

// CostService owns the append-only api_costs ledger. It satisfies
// extractor.CostRecorder so every LLM call, cached or not, lands here.
type CostService struct {
	client *ent.Client
}

// NewCostService creates a new CostService.
func NewCostService(client *ent.Client) *CostService {
	return &CostService{client: client}
}

// RecordCost appends one ledger row. Cache hits arrive with cost 0 and
// Cached=true; they are kept for hit-rate analytics.
func (s *CostService) RecordCost(ctx context.Context, rec extractor.CostRecord) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	create := s.client.APICost.Create().
		SetID(uuid.NewString()).
		SetTimestamp(rec.Timestamp.UTC()).
		SetOperation(rec.Operation).
		SetModel(rec.Model).
		SetInputTokens(rec.InputTokens).
		SetOutputTokens(rec.OutputTokens).
		SetCostUsd(rec.CostUSD).
		SetCached(rec.Cached)
	if rec.CacheKey != "" {
		create = create.SetCacheKey(rec.CacheKey)
	}
	if err := create.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record api cost: %w", err)
	}
	return nil
}

// DailyCost is one day's spend.
type DailyCost struct {
	Date    string  `json:"date"`
	Calls   int     `json:"calls"`
	CostUSD float64 `json:"cost_usd"`
}

// CostSummary aggregates the ledger over a window.
type CostSummary struct {
	Since        time.Time          `json:"since"`
	TotalCalls   int                `json:"total_calls"`
	CachedCalls  int                `json:"cached_calls"`
	TotalCostUSD float64            `json:"total_cost_usd"`
	InputTokens  int                `json:"input_tokens"`
	OutputTokens int                `json:"output_tokens"`
	ByOperation  map[string]float64 `json:"by_operation"`
	ByModel      map[string]float64 `json:"by_model"`
	Daily        []DailyCost        `json:"daily"`
	Monthly      []DailyCost        `json:"monthly"`
}

// Summary aggregates spend since the cutoff, with per-day, per-model,
// and per-operation breakdowns.
func (s *CostService) Summary(ctx context.Context, since time.Time) (*CostSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	rows, err := s.client.APICost.Query().
		Where(apicost.TimestampGTE(since)).
		Order(ent.Asc(apicost.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load api costs: %w", err)
	}

	summary := &CostSummary{
		Since:       since,
		ByOperation: make(map[string]float64),
		ByModel:     make(map[string]float64),
	}
	daily := make(map[string]*DailyCost)
	monthly := make(map[string]*DailyCost)
	var days, months []string

	for _, row := range rows {
		summary.TotalCalls++
		if row.Cached {
			summary.CachedCalls++
		}
		summary.TotalCostUSD += row.CostUsd
		summary.InputTokens += row.InputTokens
		summary.OutputTokens += row.OutputTokens
		summary.ByOperation[row.Operation] += row.CostUsd
		summary.ByModel[row.Model] += row.CostUsd

		day := row.Timestamp.UTC().Format("2006-01-02")
		d, ok := daily[day]
		if !ok {
			d = &DailyCost{Date: day}
			daily[day] = d
			days = append(days, day)
		}
		d.Calls++
		d.CostUSD += row.CostUsd

		month := row.Timestamp.UTC().Format("2006-01")
		m, ok := monthly[month]
		if !ok {
			m = &DailyCost{Date: month}
			monthly[month] = m
			months = append(months, month)
		}
		m.Calls++
		m.CostUSD += row.CostUsd
	}

	for _, day := range days {
		summary.Daily = append(summary.Daily, *daily[day])
	}
	for _, month := range months {
		summary.Monthly = append(summary.Monthly, *monthly[month])
	}
	return summary, nil
}
