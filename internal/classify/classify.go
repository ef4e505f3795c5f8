// Package classify decides how an uploaded document should be extracted:
// straight from its text layer, or through the vision path after
// rasterization.
package classify

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/pcaldeira/contractdraft/constants"
	"github.com/pcaldeira/contractdraft/internal/execrun"
)

// DocumentClass is derived deterministically from a document's bytes and
// extension.
type DocumentClass string

const (
	ClassTextPDF     DocumentClass = "TEXT_PDF"     // machine-readable text layer
	ClassImagePDF    DocumentClass = "IMAGE_PDF"    // scanned, needs rasterization
	ClassImageRaster DocumentClass = "IMAGE_RASTER" // native JPG/PNG
)

// Classification is the classifier verdict. For TEXT_PDF documents Text
// carries the probe output so the text provider never re-runs pdftotext.
type Classification struct {
	Class DocumentClass
	Text  string
	Pages int
}

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"

	// TextProbeThreshold is the average extractable characters per page
	// above which a PDF counts as text-bearing. Default 500.
	TextProbeThreshold int
}

type Classifier struct {
	cfg    Config
	runner execrun.Runner
	logger *slog.Logger
}

func NewClassifier(cfg Config, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.TextProbeThreshold <= 0 {
		cfg.TextProbeThreshold = 500
	}
	return &Classifier{cfg: cfg, runner: execrun.Exec{}, logger: logger}
}

// Classify is total: it always returns a class and never fails. Anything
// it cannot probe falls back to the image path, which can attempt to read
// any input.
func (c *Classifier) Classify(ctx context.Context, path string) Classification {
	ext := constants.NormalizeExt(filepath.Ext(path))
	if constants.MapExtToFormat(ext) != constants.PDF {
		c.logger.Debug("classified as native raster", "path", path, "ext", ext)
		return Classification{Class: ClassImageRaster, Pages: 1}
	}

	text, pages, err := c.probeText(ctx, path)
	if err != nil {
		c.logger.Warn("text probe failed, assuming scanned pdf", "path", path, "error", err)
		return Classification{Class: ClassImagePDF, Pages: pages}
	}

	trimmed := strings.TrimSpace(text)
	if pages < 1 {
		pages = 1
	}
	avg := len(trimmed) / pages
	if avg > c.cfg.TextProbeThreshold {
		c.logger.Debug("classified as text pdf", "path", path, "pages", pages, "chars_per_page", avg)
		return Classification{Class: ClassTextPDF, Text: text, Pages: pages}
	}
	c.logger.Debug("classified as image pdf", "path", path, "pages", pages, "chars_per_page", avg)
	return Classification{Class: ClassImagePDF, Pages: pages}
}

func (c *Classifier) probeText(ctx context.Context, path string) (text string, pages int, err error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, _, err := c.runner.Run(ctx, c.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", 0, err
	}
	text = string(out)
	// A form-feed \f is used as page separator by default
	pages = 1 + strings.Count(text, "\f")
	return text, pages, nil
}
