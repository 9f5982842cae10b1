package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sugarloafbakes/orderpipe/internal/llm"
)

const providerName = "openai"

// Complete implements llm.Completer over text-only chat/completions with a
// JSON response format. One round trip, no tool use, no retries here.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.complete.start",
		"req_id", rid,
		"provider", providerName,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"prompt_chars", len(prompt),
	)

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "user", "content": prompt},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, status, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.log.Error("llm.complete.http_error",
			"req_id", rid, "status", status, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", &llm.CallError{Provider: providerName, StatusCode: status, Cause: err}
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("llm.complete.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", &llm.CallError{Provider: providerName, Cause: fmt.Errorf("decode response: %w", err)}
	}
	if len(cc.Choices) == 0 {
		c.log.Error("llm.complete.no_choices",
			"req_id", rid, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", &llm.CallError{Provider: providerName, Cause: llm.ErrNoChoices}
	}
	content := strings.TrimSpace(cc.Choices[0].Message.Content)
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

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, int, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, 0, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.log.Warn("llm.complete.body_close_error", "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		return nil, resp.StatusCode, fmt.Errorf("%w: %s", llm.ErrStatusNon2xx, strings.TrimSpace(string(raw)))
	}
	return raw, resp.StatusCode, nil
}
