// Package raster converts scanned PDF pages into standalone PNG images for
// the vision extraction path.
package raster

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/pcaldeira/contractdraft/internal/common"
	"github.com/pcaldeira/contractdraft/internal/execrun"
)

// Page is one rasterized PDF page. Pages exist only for the duration of a
// single extraction call and are never persisted.
type Page struct {
	Index int
	PNG   []byte
}

type Config struct {
	Pdftoppm string // binary name or absolute path; if empty -> "pdftoppm"
	DPI      int    // target resolution, default 200, floor 100
	MaxPages int    // 0 = no limit
}

type Rasterizer struct {
	cfg    Config
	runner execrun.Runner
	logger *slog.Logger
}

func NewRasterizer(cfg Config, logger *slog.Logger) *Rasterizer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.DPI < 100 {
		cfg.DPI = 200
	}
	return &Rasterizer{cfg: cfg, runner: execrun.Exec{}, logger: logger}
}

// Rasterize renders one PNG per page. A document that produces no pages is
// treated as corrupt; the returned error wraps common.ErrRasterization and
// is terminal for that document.
func (r *Rasterizer) Rasterize(ctx context.Context, path string) ([]Page, error) {
	tmpDir, err := os.MkdirTemp("", "cd-pp-*")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrRasterization, err)
	}
	defer func(dir string) {
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			r.logger.Warn("failed to remove raster temp dir", "dir", dir, "error", rmErr)
		}
	}(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r <dpi> -png <in.pdf> <tmp/page>
	_, errb, err := r.runner.Run(ctx, r.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", r.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return nil, fmt.Errorf("%w: pdftoppm: %v: %s", common.ErrRasterization, err, errb)
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if r.cfg.MaxPages > 0 && len(matches) > r.cfg.MaxPages {
		matches = matches[:r.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no pages rendered", common.ErrRasterization)
	}

	pages := make([]Page, 0, len(matches))
	for i, img := range matches {
		b, err := os.ReadFile(img)
		if err != nil {
			return nil, fmt.Errorf("%w: read page %d: %v", common.ErrRasterization, i+1, err)
		}
		pages = append(pages, Page{Index: i + 1, PNG: b})
	}
	r.logger.Debug("rasterized pdf", "path", path, "pages", len(pages), "dpi", r.cfg.DPI)
	return pages, nil
}
