package raster

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/pcaldeira/contractdraft/internal/common"
)

// pageWriter emulates pdftoppm: it writes <prefix>-N.png files.
type pageWriter struct {
	pages int
	err   error
}

func (w *pageWriter) Run(_ context.Context, _ string, args ...string) ([]byte, []byte, error) {
	if w.err != nil {
		return nil, []byte("pdftoppm: boom"), w.err
	}
	prefix := args[len(args)-1]
	for i := 1; i <= w.pages; i++ {
		name := fmt.Sprintf("%s-%d.png", prefix, i)
		if err := os.WriteFile(name, []byte(fmt.Sprintf("png-%d", i)), 0o644); err != nil {
			return nil, nil, err
		}
	}
	return nil, nil, nil
}

func newTestRasterizer(cfg Config, w *pageWriter) *Rasterizer {
	r := NewRasterizer(cfg, slog.New(slog.DiscardHandler))
	r.runner = w
	return r
}

func TestRasterizeCollectsPagesInOrder(t *testing.T) {
	r := newTestRasterizer(Config{}, &pageWriter{pages: 3})

	pages, err := r.Rasterize(context.Background(), "scan.pdf")
	if err != nil {
		t.Fatalf("Rasterize: %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("got %d pages, want 3", len(pages))
	}
	for i, p := range pages {
		if p.Index != i+1 {
			t.Errorf("page %d has index %d", i, p.Index)
		}
		if want := fmt.Sprintf("png-%d", i+1); string(p.PNG) != want {
			t.Errorf("page %d content = %q, want %q", i, p.PNG, want)
		}
	}
}

func TestRasterizeMaxPages(t *testing.T) {
	r := newTestRasterizer(Config{MaxPages: 2}, &pageWriter{pages: 5})

	pages, err := r.Rasterize(context.Background(), "long.pdf")
	if err != nil {
		t.Fatalf("Rasterize: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(pages))
	}
}

func TestRasterizeCommandFailure(t *testing.T) {
	r := newTestRasterizer(Config{}, &pageWriter{err: errors.New("exit status 1")})

	_, err := r.Rasterize(context.Background(), "bad.pdf")
	if !errors.Is(err, common.ErrRasterization) {
		t.Fatalf("error = %v, want ErrRasterization", err)
	}
}

func TestRasterizeNoPagesIsCorrupt(t *testing.T) {
	r := newTestRasterizer(Config{}, &pageWriter{pages: 0})

	_, err := r.Rasterize(context.Background(), "empty.pdf")
	if !errors.Is(err, common.ErrRasterization) {
		t.Fatalf("error = %v, want ErrRasterization", err)
	}
}

func TestNewRasterizerDefaults(t *testing.T) {
	r := NewRasterizer(Config{DPI: 50}, nil)
	if r.cfg.Pdftoppm != "pdftoppm" {
		t.Errorf("Pdftoppm = %q, want pdftoppm", r.cfg.Pdftoppm)
	}
	if r.cfg.DPI != 200 {
		t.Errorf("DPI = %d, want 200 for sub-floor input", r.cfg.DPI)
	}
}
