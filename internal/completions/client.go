// Package completions turns an idea into a product requirements document
// through an OpenAI-compatible chat completion API.
package completions

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/sync/semaphore"
)

// Renderer converts markdown to HTML.
type Renderer interface {
	Render(markdown string) (string, error)
}

// System defines the public contract for completion operations.
type System interface {
	Handler() *Handler

	// Generate returns the PRD markdown for idea. A single upstream attempt
	// is made; the call is bounded by the configured timeout.
	Generate(ctx context.Context, idea string) (string, error)
}

type client struct {
	api       *openai.Client
	hasKey    bool
	model     string
	temp      float32
	maxTokens int
	timeout   time.Duration
	sem       *semaphore.Weighted
	renderer  Renderer
	logger    *slog.Logger
}

// New creates a completion System from cfg. renderer may be nil, in which
// case HTML output is unavailable.
func New(cfg *Config, renderer Renderer, logger *slog.Logger) System {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}

	return &client{
		api:       openai.NewClientWithConfig(oc),
		hasKey:    cfg.APIKey != "",
		model:     cfg.Model,
		temp:      float32(cfg.Temperature),
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.TimeoutDuration(),
		sem:       semaphore.NewWeighted(int64(cfg.MaxConcurrent)),
		renderer:  renderer,
		logger:    logger.With("system", "completions"),
	}
}

func (c *client) Handler() *Handler {
	return NewHandler(c, c.renderer, c.logger)
}

func (c *client) Generate(ctx context.Context, idea string) (string, error) {
	if strings.TrimSpace(idea) == "" {
		return "", ErrInvalidInput
	}
	if !c.hasKey {
		return "", ErrUpstreamUnavailable
	}

	if err := c.sem.Acquire(ctx, 1); err != nil {
		return "", &UpstreamError{Message: "waiting for completion capacity: " + err.Error(), Err: err}
	}
	defer c.sem.Release(1)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    Messages(idea),
		Temperature: c.temp,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", upstreamError(err)
	}
	if len(resp.Choices) == 0 {
		return "", &UpstreamError{Message: "completion returned no choices"}
	}

	c.logger.Info(
		"prd generated",
		"model", resp.Model,
		"total_tokens", resp.Usage.TotalTokens,
		"duration", time.Since(start),
	)

	return resp.Choices[0].Message.Content, nil
}

func upstreamError(err error) *UpstreamError {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &UpstreamError{Status: apiErr.HTTPStatusCode, Message: apiErr.Message, Err: err}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &UpstreamError{Status: reqErr.HTTPStatusCode, Message: reqErr.Error(), Err: err}
	}

	return &UpstreamError{Message: err.Error(), Err: err}
}
