package classify

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

type fakeRunner struct {
	stdout string
	err    error
	calls  int
}

func (f *fakeRunner) Run(_ context.Context, _ string, _ ...string) ([]byte, []byte, error) {
	f.calls++
	return []byte(f.stdout), nil, f.err
}

func newTestClassifier(r *fakeRunner) *Classifier {
	c := NewClassifier(Config{}, slog.New(slog.DiscardHandler))
	c.runner = r
	return c
}

func TestClassifyNativeRaster(t *testing.T) {
	runner := &fakeRunner{}
	c := newTestClassifier(runner)

	for _, path := range []string{"scan.jpg", "scan.JPEG", "scan.png"} {
		got := c.Classify(context.Background(), path)
		if got.Class != ClassImageRaster {
			t.Errorf("Classify(%q) class = %s, want %s", path, got.Class, ClassImageRaster)
		}
		if got.Pages != 1 {
			t.Errorf("Classify(%q) pages = %d, want 1", path, got.Pages)
		}
	}
	if runner.calls != 0 {
		t.Errorf("probe ran %d times for raster inputs, want 0", runner.calls)
	}
}

func TestClassifyTextPDF(t *testing.T) {
	text := strings.Repeat("contrato social da empresa ", 40) // ~1000 chars, one page
	runner := &fakeRunner{stdout: text}
	c := newTestClassifier(runner)

	got := c.Classify(context.Background(), "doc.pdf")
	if got.Class != ClassTextPDF {
		t.Fatalf("class = %s, want %s", got.Class, ClassTextPDF)
	}
	if got.Text != text {
		t.Error("probe text was not carried on the classification")
	}
	if got.Pages != 1 {
		t.Errorf("pages = %d, want 1", got.Pages)
	}
}

func TestClassifyScannedPDF(t *testing.T) {
	// Three pages separated by form feeds, almost no extractable text.
	runner := &fakeRunner{stdout: "p1\fp2\fp3"}
	c := newTestClassifier(runner)

	got := c.Classify(context.Background(), "scan.pdf")
	if got.Class != ClassImagePDF {
		t.Fatalf("class = %s, want %s", got.Class, ClassImagePDF)
	}
	if got.Pages != 3 {
		t.Errorf("pages = %d, want 3", got.Pages)
	}
}

func TestClassifyThresholdIsPerPage(t *testing.T) {
	// 1200 chars over two pages averages 600/page, above the default 500.
	page := strings.Repeat("x", 600)
	runner := &fakeRunner{stdout: page + "\f" + page}
	c := newTestClassifier(runner)

	if got := c.Classify(context.Background(), "doc.pdf"); got.Class != ClassTextPDF {
		t.Errorf("class = %s, want %s", got.Class, ClassTextPDF)
	}

	// Same total over four pages drops below the threshold.
	runner = &fakeRunner{stdout: strings.Repeat("x", 300) + "\f" + strings.Repeat("x", 300) + "\f" + strings.Repeat("x", 300) + "\f" + strings.Repeat("x", 300)}
	c = newTestClassifier(runner)

	if got := c.Classify(context.Background(), "doc.pdf"); got.Class != ClassImagePDF {
		t.Errorf("class = %s, want %s", got.Class, ClassImagePDF)
	}
}

func TestClassifyProbeFailureFallsBackToImage(t *testing.T) {
	runner := &fakeRunner{err: errors.New("exit status 1")}
	c := newTestClassifier(runner)

	got := c.Classify(context.Background(), "broken.pdf")
	if got.Class != ClassImagePDF {
		t.Fatalf("class = %s, want %s", got.Class, ClassImagePDF)
	}
}

func TestNewClassifierDefaults(t *testing.T) {
	c := NewClassifier(Config{}, nil)
	if c.cfg.Pdftotext != "pdftotext" {
		t.Errorf("Pdftotext = %q, want pdftotext", c.cfg.Pdftotext)
	}
	if c.cfg.TextProbeThreshold != 500 {
		t.Errorf("TextProbeThreshold = %d, want 500", c.cfg.TextProbeThreshold)
	}
}
