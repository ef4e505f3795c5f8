// Package openai implements the vision-oriented extraction provider on the
// OpenAI chat completions API. It consumes rasterized PDF pages or native
// image bytes as data URLs.
package openai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pcaldeira/contractdraft/internal/provider"
)

// Extract implements provider.Extractor with a single round trip. The
// request must carry rasterized pages or a native image; this provider
// cannot consume bare text.
func (c *Client) Extract(ctx context.Context, req provider.Request) (provider.RawResult, error) {
	rid := uuid.New().String()
	start := time.Now()

	content, err := buildImageContent(req)
	if err != nil {
		return provider.RawResult{Provider: provider.VisionProvider}, err
	}

	c.logger.Info("vision.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"role", req.Role,
		"class", req.Class,
		"images", len(content)-1,
	)

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"max_tokens":      c.cfg.MaxTokens,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "user", "content": content},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, _, err := provider.SendJSON(ctx, c.http, endpoint, body, map[string]string{
		"Authorization": "Bearer " + c.cfg.APIKey,
	}, c.logger)
	if err != nil {
		c.logger.Error("vision.extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return provider.RawResult{Provider: provider.VisionProvider}, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return provider.RawResult{Provider: provider.VisionProvider}, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return provider.RawResult{Provider: provider.VisionProvider}, fmt.Errorf("no choices in openai response")
	}

	payload, err := decodePayload(cc.Choices[0].Message.Content, req)
	if err != nil {
		c.logger.Error("vision.extract.payload_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return provider.RawResult{Provider: provider.VisionProvider}, err
	}

	c.logger.Info("vision.extract.ok",
		"req_id", rid,
		"fields", len(payload),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return provider.RawResult{
		Provider: provider.VisionProvider,
		Model:    c.cfg.Model,
		Payload:  payload,
	}, nil
}

func decodePayload(content string, req provider.Request) (map[string]any, error) {
	obj, err := provider.ExtractJSONObject(content)
	if err != nil {
		return nil, err
	}
	payload, _, err := provider.SanitizePayload(obj)
	if err != nil {
		return nil, err
	}
	cleaned, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode sanitized payload: %w", err)
	}
	schema := provider.BuildRoleJSONSchema(req.Role)
	if err := provider.ValidateJSONAgainstSchema(schema, cleaned); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}
	return payload, nil
}

// buildImageContent assembles the multimodal user message: the role prompt
// followed by one image_url part per page.
func buildImageContent(req provider.Request) ([]map[string]any, error) {
	content := []map[string]any{
		{"type": "text", "text": provider.SystemPrompt(req.Role)},
	}
	appendImage := func(data []byte, mime string) {
		u := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
		content = append(content, map[string]any{
			"type": "image_url",
			"image_url": map[string]any{
				"url":    u,
				"detail": "high", // small print on IDs needs the full-resolution pass
			},
		})
	}

	switch {
	case len(req.Pages) > 0:
		for _, p := range req.Pages {
			appendImage(p.PNG, "image/png")
		}
	case len(req.Image) > 0:
		appendImage(req.Image, mimeForExt(req.ImageExt))
	default:
		return nil, fmt.Errorf("vision request carries no images")
	}
	return content, nil
}

func mimeForExt(ext string) string {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "png":
		return "image/png"
	case "jpg", "jpeg":
		return "image/jpeg"
	default:
		return "image/jpeg"
	}
}
