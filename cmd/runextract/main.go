// runextract runs classification, provider selection and normalization on
// one local file and prints the canonical fields, without touching the
// database or any draft.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/pcaldeira/contractdraft/constants"
	"github.com/pcaldeira/contractdraft/internal/classify"
	"github.com/pcaldeira/contractdraft/internal/common"
	"github.com/pcaldeira/contractdraft/internal/extract"
	"github.com/pcaldeira/contractdraft/internal/normalize"
	"github.com/pcaldeira/contractdraft/internal/provider"
	"github.com/pcaldeira/contractdraft/internal/provider/mistral"
	"github.com/pcaldeira/contractdraft/internal/provider/openai"
	"github.com/pcaldeira/contractdraft/internal/raster"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 3 {
		logger.Error("usage", "cmd", "runextract <role> <file>")
		os.Exit(2)
	}
	role, ok := constants.ParseRole(os.Args[1])
	if !ok {
		logger.Error("invalid role", "arg", os.Args[1], "valid", constants.RolesAsStrings())
		os.Exit(2)
	}
	path := os.Args[2]
	if _, err := os.Stat(path); err != nil {
		logger.Error("cannot read file", "path", path, "error", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()

	classifier := classify.NewClassifier(classify.Config{
		Pdftotext:          cfg.Classify.Pdftotext,
		TextProbeThreshold: cfg.Classify.TextProbeThreshold,
	}, logger)
	rasterizer := raster.NewRasterizer(raster.Config{
		Pdftoppm: cfg.Raster.Pdftoppm,
		DPI:      cfg.Raster.DPI,
		MaxPages: cfg.Raster.MaxPages,
	}, logger)

	var textProvider, visionProvider provider.Extractor
	if cfg.Providers.TextAPIKey != "" {
		textProvider = mistral.NewClient(mistral.Config{
			APIKey:  cfg.Providers.TextAPIKey,
			BaseURL: cfg.Providers.TextBaseURL,
			Model:   cfg.Providers.TextModel,
			Timeout: cfg.Providers.Timeout,
		}, logger)
	}
	if cfg.Providers.VisionAPIKey != "" {
		visionProvider = openai.NewClient(openai.Config{
			APIKey:  cfg.Providers.VisionAPIKey,
			BaseURL: cfg.Providers.VisionBaseURL,
			Model:   cfg.Providers.VisionModel,
			Timeout: cfg.Providers.Timeout,
		}, logger)
	}

	selector := extract.NewSelector(classifier, rasterizer, textProvider, visionProvider,
		extract.Config{MinFields: cfg.Pipeline.MinFields}, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	start := time.Now()
	outcome, err := selector.Extract(ctx, extract.Document{Path: path, Role: role})
	if err != nil {
		logger.Error("extraction failed",
			"path", path,
			"class", outcome.Class,
			"attempts", outcome.Attempts,
			"elapsed_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
		os.Exit(1)
	}

	fields := normalize.Normalize(outcome.Raw, role)
	logger.Info("extraction done",
		"path", path,
		"class", outcome.Class,
		"provider", outcome.Raw.Provider,
		"attempts", outcome.Attempts,
		"fields", len(fields.PresentKeys()),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fields); err != nil {
		logger.Error("encode output", "error", err)
		os.Exit(1)
	}
}
