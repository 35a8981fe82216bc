// Package llm provides the Gemini client used for entity extraction and
// narrative summarization, with retry, rate limiting, pricing, and a
// prompt-level cache.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"google.golang.org/genai"
)

// GenerateRequest is a single non-streaming generation call.
type GenerateRequest struct {
	Model       string
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int32

	// PlainText disables the structured-JSON response mode used by
	// extraction; summarization wants prose.
	PlainText bool
}

// GenerateResponse carries the model output and token accounting.
type GenerateResponse struct {
	Text         string
	InputTokens  int
	OutputTokens int
}

// Client is the minimal interface the pipeline uses to call an LLM.
// The extractor and narrative summarizer depend on this, not on the
// Gemini client, so tests can substitute a fake.
type Client interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// GeminiClient calls the Gemini API with a hard per-call timeout,
// exponential backoff for transient errors, and a shared token budget.
type GeminiClient struct {
	client      *genai.Client
	budget      *TokenBudget
	callTimeout time.Duration
	maxAttempts uint64
	sem         chan struct{}
}

// Options tunes the Gemini client. Zero values take defaults.
type Options struct {
	CallTimeout   time.Duration // default 30s
	MaxAttempts   uint64        // default 5
	MaxConcurrent int           // in-flight call bound; 0 means unbounded
}

// NewGeminiClient creates a Gemini client. The API key is required;
// its absence is a permanent configuration error.
func NewGeminiClient(ctx context.Context, apiKey string, budget *TokenBudget, opts Options) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if opts.CallTimeout <= 0 {
		opts.CallTimeout = 30 * time.Second
	}
	if opts.MaxAttempts == 0 {
		opts.MaxAttempts = 5
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	c := &GeminiClient{
		client:      client,
		budget:      budget,
		callTimeout: opts.CallTimeout,
		maxAttempts: opts.MaxAttempts,
	}
	if opts.MaxConcurrent > 0 {
		c.sem = make(chan struct{}, opts.MaxConcurrent)
	}
	return c, nil
}

// Generate performs one generation call. Transient errors are retried
// with exponential backoff (base 1s, cap 60s, jitter); rate-limit
// errors sleep the provider's Retry-After before counting as a retry.
func (c *GeminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if c.sem != nil {
		select {
		case c.sem <- struct{}{}:
			defer func() { <-c.sem }()
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if c.budget != nil {
		estimate := EstimateTokens(req.Prompt) + int(req.MaxTokens)
		if err := c.budget.Wait(ctx, estimate); err != nil {
			return nil, err
		}
	}

	var resp *GenerateResponse
	operation := func() error {
		var err error
		resp, err = c.generateOnce(ctx, req)
		if err == nil {
			return nil
		}
		var rle *RateLimitError
		if errors.As(err, &rle) {
			slog.Warn("LLM rate limited, honoring Retry-After",
				"model", req.Model, "retry_after", rle.RetryAfter)
			if sleepErr := SleepRetryAfter(ctx, rle.RetryAfter); sleepErr != nil {
				return backoff.Permanent(sleepErr)
			}
			return err
		}
		if IsTransient(err) {
			return err
		}
		return backoff.Permanent(err)
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 1 * time.Second
	policy.MaxInterval = 60 * time.Second
	policy.MaxElapsedTime = 0

	err := backoff.Retry(operation,
		backoff.WithContext(backoff.WithMaxRetries(policy, c.maxAttempts-1), ctx))
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// generateOnce performs a single attempt with the hard call timeout.
func (c *GeminiClient) generateOnce(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	mime := "application/json"
	if req.PlainText {
		mime = "text/plain"
	}
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: mime,
		Temperature:      genai.Ptr(req.Temperature),
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = req.MaxTokens
	}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	result, err := c.client.Models.GenerateContent(callCtx, req.Model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return nil, classifyProviderError(callCtx, err)
	}

	text := result.Text()
	if text == "" {
		return nil, ErrEmptyResponse
	}

	resp := &GenerateResponse{Text: text}
	if result.UsageMetadata != nil {
		resp.InputTokens = int(result.UsageMetadata.PromptTokenCount)
		resp.OutputTokens = int(result.UsageMetadata.CandidatesTokenCount)
	}
	return resp, nil
}

// classifyProviderError maps provider failures onto the error taxonomy:
// 429 → RateLimitError, 5xx and timeouts → TransientError, everything
// else is permanent.
func classifyProviderError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &TransientError{Err: fmt.Errorf("call timed out: %w", err)}
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == 429:
			return &RateLimitError{RetryAfter: 30 * time.Second, Err: err}
		case apiErr.Code >= 500:
			return &TransientError{Err: err}
		}
		return err
	}

	// Network-level failures surface as plain errors; treat as transient.
	return &TransientError{Err: err}
}
