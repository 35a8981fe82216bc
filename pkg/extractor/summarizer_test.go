package extractor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikechavez/crypto-news-aggregator-sub003/pkg/llm"
)

func newTestSummarizer(client llm.Client, costs CostRecorder) *Summarizer {
	return NewSummarizer(client, "gemini-2.5-pro", costs, slog.Default())
}

func TestSummarizeBuildsPromptAndRecordsCost(t *testing.T) {
	fake := &fakeLLM{responses: []llm.GenerateResponse{{
		Text:         "  Bitcoin's ETF inflows keep accelerating.\n",
		InputTokens:  800,
		OutputTokens: 40,
	}}}
	costs := &fakeCosts{}
	s := newTestSummarizer(fake, costs)

	summary, err := s.Summarize(context.Background(), "Bitcoin",
		[]string{"ETF approved.", " ", "Inflows hit a record."})
	require.NoError(t, err)
	assert.Equal(t, "Bitcoin's ETF inflows keep accelerating.", summary)

	require.Len(t, fake.prompts, 1)
	assert.Contains(t, fake.prompts[0], "Narrative about: Bitcoin")
	assert.Contains(t, fake.prompts[0], "- ETF approved.")
	assert.Contains(t, fake.prompts[0], "- Inflows hit a record.")
	assert.NotContains(t, fake.prompts[0], "- \n")

	require.Len(t, costs.records, 1)
	rec := costs.records[0]
	assert.Equal(t, "narrative_summary", rec.Operation)
	assert.Equal(t, "gemini-2.5-pro", rec.Model)
	assert.Equal(t, 800, rec.InputTokens)
	assert.Equal(t, 40, rec.OutputTokens)
	assert.Greater(t, rec.CostUSD, 0.0)
}

func TestSummarizeKeepsOnlyNewestPoints(t *testing.T) {
	fake := &fakeLLM{responses: []llm.GenerateResponse{{Text: "ok"}}}
	s := newTestSummarizer(fake, nil)

	points := make([]string, 0, maxSummaryPoints+5)
	for i := 0; i < maxSummaryPoints+5; i++ {
		points = append(points, fmt.Sprintf("update %d", i))
	}

	_, err := s.Summarize(context.Background(), "Ethereum", points)
	require.NoError(t, err)

	require.Len(t, fake.prompts, 1)
	assert.NotContains(t, fake.prompts[0], "update 0\n")
	assert.Contains(t, fake.prompts[0], fmt.Sprintf("update %d", maxSummaryPoints+4))
	assert.Equal(t, maxSummaryPoints, strings.Count(fake.prompts[0], "- update"))
}

func TestSummarizeErrors(t *testing.T) {
	t.Run("generation failure", func(t *testing.T) {
		fake := &fakeLLM{errs: []error{fmt.Errorf("quota exhausted")}}
		_, err := newTestSummarizer(fake, nil).Summarize(context.Background(), "Solana", []string{"outage"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quota exhausted")
	})

	t.Run("empty output", func(t *testing.T) {
		fake := &fakeLLM{responses: []llm.GenerateResponse{{Text: "   \n"}}}
		_, err := newTestSummarizer(fake, nil).Summarize(context.Background(), "Solana", []string{"outage"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty summary")
	})
}
