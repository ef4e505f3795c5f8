// Package mistral implements the text-oriented extraction provider on the
// Mistral chat completions API. It consumes the text layer probed out of
// machine-readable PDFs; it cannot consume images.
package mistral

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pcaldeira/contractdraft/internal/provider"
)

// Extract implements provider.Extractor with a single round trip.
func (c *Client) Extract(ctx context.Context, req provider.Request) (provider.RawResult, error) {
	rid := uuid.New().String()
	start := time.Now()

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return provider.RawResult{Provider: provider.TextProvider}, fmt.Errorf("text request carries no text")
	}

	c.logger.Info("text.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"role", req.Role,
		"text_len", len(text),
	)

	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"messages": []map[string]any{
			{"role": "system", "content": provider.SystemPrompt(req.Role)},
			{"role": "user", "content": provider.UserTextPrompt(text)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, _, err := provider.SendJSON(ctx, c.http, endpoint, body, map[string]string{
		"Authorization": "Bearer " + c.cfg.APIKey,
	}, c.logger)
	if err != nil {
		c.logger.Error("text.extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return provider.RawResult{Provider: provider.TextProvider}, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return provider.RawResult{Provider: provider.TextProvider}, fmt.Errorf("decode mistral response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return provider.RawResult{Provider: provider.TextProvider}, fmt.Errorf("no choices in mistral response")
	}

	obj, err := provider.ExtractJSONObject(cc.Choices[0].Message.Content)
	if err != nil {
		c.logger.Error("text.extract.payload_error", "req_id", rid, "error", err)
		return provider.RawResult{Provider: provider.TextProvider}, err
	}
	payload, _, err := provider.SanitizePayload(obj)
	if err != nil {
		return provider.RawResult{Provider: provider.TextProvider}, err
	}
	cleaned, err := json.Marshal(payload)
	if err != nil {
		return provider.RawResult{Provider: provider.TextProvider}, fmt.Errorf("encode sanitized payload: %w", err)
	}
	if err := provider.ValidateJSONAgainstSchema(provider.BuildRoleJSONSchema(req.Role), cleaned); err != nil {
		c.logger.Error("text.extract.schema_validation_failed", "req_id", rid, "error", err)
		return provider.RawResult{Provider: provider.TextProvider}, fmt.Errorf("schema validation failed: %w", err)
	}

	c.logger.Info("text.extract.ok",
		"req_id", rid,
		"fields", len(payload),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return provider.RawResult{
		Provider: provider.TextProvider,
		Model:    c.cfg.Model,
		Payload:  payload,
	}, nil
}
