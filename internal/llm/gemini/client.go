package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"github.com/sugarloafbakes/orderpipe/internal/llm"
)

const providerName = "gemini"

// Config for the Gemini client. The API key is injected by the composition
// root; this package never reads the environment.
type Config struct {
	APIKey      string
	Model       string // e.g. "gemini-2.0-flash"
	Temperature float32
	Timeout     time.Duration
}

type Client struct {
	cfg    Config
	client *genai.Client
	log    *slog.Logger
}

func NewClient(ctx context.Context, cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Client{cfg: cfg, client: gc, log: logger}, nil
}

// Complete implements llm.Completer with a single GenerateContent call
// constrained to a JSON response.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.complete.start",
		"req_id", rid,
		"provider", providerName,
		"model", c.cfg.Model,
		"prompt_chars", len(prompt),
	)

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	temp := c.cfg.Temperature
	resp, err := c.client.Models.GenerateContent(ctx, c.cfg.Model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:      &temp,
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		c.log.Error("llm.complete.call_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", &llm.CallError{Provider: providerName, Cause: err}
	}

	content := strings.TrimSpace(resp.Text())
	if content == "" {
		c.log.Error("llm.complete.empty_content",
			"req_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", &llm.CallError{Provider: providerName, Cause: llm.ErrEmptyContent}
	}

	c.log.Info("llm.complete.ok",
		"req_id", rid,
		"reply_chars", len(content),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return content, nil
}
