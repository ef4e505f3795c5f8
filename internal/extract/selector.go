// Package extract chooses which provider reads a document first and falls
// back to the alternate on failure or a near-empty result.
package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pcaldeira/contractdraft/constants"
	"github.com/pcaldeira/contractdraft/internal/classify"
	"github.com/pcaldeira/contractdraft/internal/common"
	"github.com/pcaldeira/contractdraft/internal/provider"
	"github.com/pcaldeira/contractdraft/internal/raster"
)

// Document is one uploaded file queued for extraction.
type Document struct {
	Path string
	Role constants.DocumentRole
}

// Outcome reports one document's extraction: the raw provider payload, the
// class the document resolved to, and how many provider calls were made.
type Outcome struct {
	Raw      provider.RawResult
	Class    classify.DocumentClass
	Attempts int
}

// DocumentClassifier decides the extraction path for a file.
type DocumentClassifier interface {
	Classify(ctx context.Context, path string) classify.Classification
}

// Rasterizer renders scanned PDF pages for the vision path.
type Rasterizer interface {
	Rasterize(ctx context.Context, path string) ([]raster.Page, error)
}

type Config struct {
	// MinFields is the smallest payload accepted without falling back.
	MinFields int
}

// Selector routes documents to providers. A nil provider is disabled and
// behaves exactly like a hard failure of that provider.
type Selector struct {
	classifier DocumentClassifier
	rasterizer Rasterizer
	text       provider.Extractor
	vision     provider.Extractor
	cfg        Config
	logger     *slog.Logger
}

func NewSelector(cl DocumentClassifier, rz Rasterizer, text, vision provider.Extractor, cfg Config, logger *slog.Logger) *Selector {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MinFields <= 0 {
		cfg.MinFields = 1
	}
	return &Selector{
		classifier: cl,
		rasterizer: rz,
		text:       text,
		vision:     vision,
		cfg:        cfg,
		logger:     logger,
	}
}

// Extract runs at most two provider calls for one document.
//
// TEXT_PDF goes to the text provider first; any failure — including a
// disabled provider — or a payload below MinFields keys triggers one
// vision retry over a fresh rasterization. IMAGE_PDF and IMAGE_RASTER go
// straight to the vision provider, which has no text fallback. A
// rasterization failure is terminal for the document.
func (s *Selector) Extract(ctx context.Context, doc Document) (Outcome, error) {
	cls := s.classifier.Classify(ctx, doc.Path)
	out := Outcome{Class: cls.Class}

	switch cls.Class {
	case classify.ClassTextPDF:
		res, err := s.callText(ctx, doc, cls.Text)
		out.Attempts++
		if err == nil && res.FieldCount() >= s.cfg.MinFields {
			out.Raw = res
			return out, nil
		}
		if err != nil {
			s.logger.Warn("text provider failed, trying vision fallback",
				"path", doc.Path, "role", doc.Role, "error", err)
		} else {
			s.logger.Warn("text provider returned near-empty payload, trying vision fallback",
				"path", doc.Path, "role", doc.Role, "fields", res.FieldCount())
		}

		fres, ferr := s.visionFromPDF(ctx, doc, &out.Attempts)
		if ferr == nil {
			out.Raw = fres
			return out, nil
		}
		if err == nil {
			// near-empty beats nothing when the fallback also fails
			out.Raw = res
			return out, nil
		}
		return out, ferr

	case classify.ClassImagePDF:
		res, err := s.visionFromPDF(ctx, doc, &out.Attempts)
		if err != nil {
			return out, err
		}
		out.Raw = res
		return out, nil

	default: // ClassImageRaster
		img, err := os.ReadFile(doc.Path)
		if err != nil {
			return out, fmt.Errorf("read image: %w", err)
		}
		res, err := s.callVision(ctx, provider.Request{
			Class:    cls.Class,
			Role:     doc.Role,
			Image:    img,
			ImageExt: filepath.Ext(doc.Path),
		})
		out.Attempts++
		if err != nil {
			return out, err
		}
		out.Raw = res
		return out, nil
	}
}

func (s *Selector) callText(ctx context.Context, doc Document, text string) (provider.RawResult, error) {
	if s.text == nil {
		return provider.RawResult{}, common.ErrProviderDisabled
	}
	return s.text.Extract(ctx, provider.Request{
		Class: classify.ClassTextPDF,
		Role:  doc.Role,
		Text:  text,
	})
}

func (s *Selector) callVision(ctx context.Context, req provider.Request) (provider.RawResult, error) {
	if s.vision == nil {
		return provider.RawResult{}, common.ErrProviderDisabled
	}
	return s.vision.Extract(ctx, req)
}

// visionFromPDF rasterizes then calls the vision provider. The attempt
// counter only advances when a provider call is actually made.
func (s *Selector) visionFromPDF(ctx context.Context, doc Document, attempts *int) (provider.RawResult, error) {
	if s.vision == nil {
		return provider.RawResult{}, common.ErrProviderDisabled
	}
	pages, err := s.rasterizer.Rasterize(ctx, doc.Path)
	if err != nil {
		if !errors.Is(err, common.ErrRasterization) {
			err = fmt.Errorf("%w: %v", common.ErrRasterization, err)
		}
		return provider.RawResult{}, err
	}
	*attempts++
	return s.vision.Extract(ctx, provider.Request{
		Class: classify.ClassImagePDF,
		Role:  doc.Role,
		Pages: pages,
	})
}
