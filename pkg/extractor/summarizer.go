package extractor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/llm"
)

// Operation label used on summarization cost records.
const operationSummarize = "narrative_summary"

// maxSummaryPoints caps how many member summaries go into one
// summarization prompt; the newest ones carry the story.
const maxSummaryPoints = 12

const summarySystemPrompt = `You write concise summaries of evolving crypto news
narratives. Given the entity a narrative centers on and one-sentence summaries
of its member articles (oldest first), respond with a single plain-text
paragraph of one or two sentences capturing where the narrative stands now.
No preamble, no markdown.`

// Summarizer refines narrative summaries with the high-quality model
// once a narrative has accumulated enough members to outgrow its
// latest-article summary.
type Summarizer struct {
	client llm.Client
	model  string
	costs  CostRecorder
	logger *slog.Logger
}

// NewSummarizer creates a summarizer. costs may be nil to disable cost
// tracking (tests only).
func NewSummarizer(client llm.Client, model string, costs CostRecorder, logger *slog.Logger) *Summarizer {
	return &Summarizer{client: client, model: model, costs: costs, logger: logger}
}

// Summarize produces a refined summary for one narrative from its
// member article summaries. Empty model output is an error; callers
// keep the previous summary on failure.
func (s *Summarizer) Summarize(ctx context.Context, nucleus string, points []string) (string, error) {
	if len(points) > maxSummaryPoints {
		points = points[len(points)-maxSummaryPoints:]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Narrative about: %s\n\nMember article summaries:\n", nucleus)
	for _, p := range points {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		fmt.Fprintf(&b, "- %s\n", p)
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Model:     s.model,
		System:    summarySystemPrompt,
		Prompt:    b.String(),
		MaxTokens: 256,
		PlainText: true,
	})
	if err != nil {
		return "", fmt.Errorf("narrative summarization failed: %w", err)
	}

	if s.costs != nil {
		rec := CostRecord{
			Timestamp:    time.Now().UTC(),
			Operation:    operationSummarize,
			Model:        s.model,
			InputTokens:  resp.InputTokens,
			OutputTokens: resp.OutputTokens,
			CostUSD:      llm.Cost(s.model, resp.InputTokens, resp.OutputTokens),
		}
		if err := s.costs.RecordCost(ctx, rec); err != nil {
			s.logger.Error("failed to record LLM cost", "operation", rec.Operation, "error", err)
		}
	}

	summary := strings.TrimSpace(resp.Text)
	if summary == "" {
		return "", fmt.Errorf("empty summary from model")
	}
	return summary, nil
}
