package extract

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/pcaldeira/contractdraft/constants"
	"github.com/pcaldeira/contractdraft/internal/classify"
	"github.com/pcaldeira/contractdraft/internal/common"
	"github.com/pcaldeira/contractdraft/internal/provider"
	"github.com/pcaldeira/contractdraft/internal/raster"
)

type fixedClassifier struct {
	cls classify.Classification
}

func (f fixedClassifier) Classify(context.Context, string) classify.Classification {
	return f.cls
}

type fakeRasterizer struct {
	pages []raster.Page
	err   error
	calls int
}

func (f *fakeRasterizer) Rasterize(context.Context, string) ([]raster.Page, error) {
	f.calls++
	return f.pages, f.err
}

type fakeProvider struct {
	id      provider.ID
	payload map[string]any
	err     error
	calls   int
	lastReq provider.Request
}

func (f *fakeProvider) Extract(_ context.Context, req provider.Request) (provider.RawResult, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return provider.RawResult{Provider: f.id}, f.err
	}
	return provider.RawResult{Provider: f.id, Payload: f.payload}, nil
}

func discard() *slog.Logger { return slog.New(slog.DiscardHandler) }

func textClassification() classify.Classification {
	return classify.Classification{Class: classify.ClassTextPDF, Text: "probed text", Pages: 2}
}

func onePage() []raster.Page {
	return []raster.Page{{Index: 1, PNG: []byte{0x89, 'P', 'N', 'G'}}}
}

func TestTextPDFGoesToTextProvider(t *testing.T) {
	text := &fakeProvider{id: provider.TextProvider, payload: map[string]any{"name": "Maria Silva"}}
	vision := &fakeProvider{id: provider.VisionProvider}
	rz := &fakeRasterizer{pages: onePage()}
	s := NewSelector(fixedClassifier{textClassification()}, rz, text, vision, Config{}, discard())

	out, err := s.Extract(context.Background(), Document{Path: "doc.pdf", Role: constants.RoleIdentity})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if out.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", out.Attempts)
	}
	if out.Raw.Provider != provider.TextProvider {
		t.Errorf("provider = %s, want %s", out.Raw.Provider, provider.TextProvider)
	}
	if text.lastReq.Text != "probed text" {
		t.Errorf("text provider got %q, want probe output", text.lastReq.Text)
	}
	if vision.calls != 0 {
		t.Errorf("vision called %d times on text success, want 0", vision.calls)
	}
	if rz.calls != 0 {
		t.Errorf("rasterizer called %d times on text success, want 0", rz.calls)
	}
}

func TestTextFailureFallsBackToVisionOnce(t *testing.T) {
	text := &fakeProvider{id: provider.TextProvider, err: errors.New("upstream 503")}
	vision := &fakeProvider{id: provider.VisionProvider, payload: map[string]any{"name": "Maria Silva"}}
	rz := &fakeRasterizer{pages: onePage()}
	s := NewSelector(fixedClassifier{textClassification()}, rz, text, vision, Config{}, discard())

	out, err := s.Extract(context.Background(), Document{Path: "doc.pdf", Role: constants.RoleIdentity})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if out.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", out.Attempts)
	}
	if out.Raw.Provider != provider.VisionProvider {
		t.Errorf("provider = %s, want %s", out.Raw.Provider, provider.VisionProvider)
	}
	if len(vision.lastReq.Pages) != 1 {
		t.Errorf("vision got %d pages, want 1 from fallback rasterization", len(vision.lastReq.Pages))
	}
}

func TestNearEmptyTextTriggersFallback(t *testing.T) {
	text := &fakeProvider{id: provider.TextProvider, payload: map[string]any{}}
	vision := &fakeProvider{id: provider.VisionProvider, payload: map[string]any{"name": "Maria Silva"}}
	s := NewSelector(fixedClassifier{textClassification()}, &fakeRasterizer{pages: onePage()}, text, vision, Config{}, discard())

	out, err := s.Extract(context.Background(), Document{Path: "doc.pdf", Role: constants.RoleIdentity})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if out.Raw.Provider != provider.VisionProvider {
		t.Errorf("provider = %s, want vision after near-empty text result", out.Raw.Provider)
	}
	if out.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", out.Attempts)
	}
}

func TestNearEmptyBeatsFailedFallback(t *testing.T) {
	text := &fakeProvider{id: provider.TextProvider, payload: map[string]any{}}
	vision := &fakeProvider{id: provider.VisionProvider, err: errors.New("upstream 500")}
	s := NewSelector(fixedClassifier{textClassification()}, &fakeRasterizer{pages: onePage()}, text, vision, Config{}, discard())

	out, err := s.Extract(context.Background(), Document{Path: "doc.pdf", Role: constants.RoleIdentity})
	if err != nil {
		t.Fatalf("Extract: near-empty first result should not surface fallback error, got %v", err)
	}
	if out.Raw.Provider != provider.TextProvider {
		t.Errorf("provider = %s, want the near-empty text result", out.Raw.Provider)
	}
}

func TestBothAttemptsFailing(t *testing.T) {
	text := &fakeProvider{id: provider.TextProvider, err: errors.New("text down")}
	vision := &fakeProvider{id: provider.VisionProvider, err: errors.New("vision down")}
	s := NewSelector(fixedClassifier{textClassification()}, &fakeRasterizer{pages: onePage()}, text, vision, Config{}, discard())

	out, err := s.Extract(context.Background(), Document{Path: "doc.pdf", Role: constants.RoleIdentity})
	if err == nil {
		t.Fatal("want error when both providers fail")
	}
	if out.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", out.Attempts)
	}
	if text.calls != 1 || vision.calls != 1 {
		t.Errorf("calls = text %d / vision %d, want exactly one each", text.calls, vision.calls)
	}
}

func TestDisabledTextProviderFallsBack(t *testing.T) {
	vision := &fakeProvider{id: provider.VisionProvider, payload: map[string]any{"name": "Maria Silva"}}
	s := NewSelector(fixedClassifier{textClassification()}, &fakeRasterizer{pages: onePage()}, nil, vision, Config{}, discard())

	out, err := s.Extract(context.Background(), Document{Path: "doc.pdf", Role: constants.RoleIdentity})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if out.Raw.Provider != provider.VisionProvider {
		t.Errorf("provider = %s, want vision when text is disabled", out.Raw.Provider)
	}
}

func TestDisabledVisionProviderIsHardFailure(t *testing.T) {
	cls := classify.Classification{Class: classify.ClassImagePDF, Pages: 1}
	rz := &fakeRasterizer{pages: onePage()}
	s := NewSelector(fixedClassifier{cls}, rz, &fakeProvider{id: provider.TextProvider}, nil, Config{}, discard())

	_, err := s.Extract(context.Background(), Document{Path: "scan.pdf", Role: constants.RoleIdentity})
	if !errors.Is(err, common.ErrProviderDisabled) {
		t.Fatalf("error = %v, want ErrProviderDisabled", err)
	}
	if rz.calls != 0 {
		t.Errorf("rasterizer ran %d times for a disabled vision provider, want 0", rz.calls)
	}
}

func TestVisionHasNoTextFallback(t *testing.T) {
	cls := classify.Classification{Class: classify.ClassImagePDF, Pages: 1}
	text := &fakeProvider{id: provider.TextProvider, payload: map[string]any{"name": "x"}}
	vision := &fakeProvider{id: provider.VisionProvider, err: errors.New("vision down")}
	s := NewSelector(fixedClassifier{cls}, &fakeRasterizer{pages: onePage()}, text, vision, Config{}, discard())

	out, err := s.Extract(context.Background(), Document{Path: "scan.pdf", Role: constants.RoleIdentity})
	if err == nil {
		t.Fatal("want error from vision failure")
	}
	if text.calls != 0 {
		t.Errorf("text provider called %d times on the vision path, want 0", text.calls)
	}
	if out.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", out.Attempts)
	}
}

func TestRasterizationFailureIsTerminal(t *testing.T) {
	cls := classify.Classification{Class: classify.ClassImagePDF, Pages: 1}
	vision := &fakeProvider{id: provider.VisionProvider, payload: map[string]any{"name": "x"}}
	rz := &fakeRasterizer{err: errors.New("no pages rendered")}
	s := NewSelector(fixedClassifier{cls}, rz, nil, vision, Config{}, discard())

	out, err := s.Extract(context.Background(), Document{Path: "corrupt.pdf", Role: constants.RoleIdentity})
	if !errors.Is(err, common.ErrRasterization) {
		t.Fatalf("error = %v, want ErrRasterization", err)
	}
	if vision.calls != 0 {
		t.Errorf("vision called %d times after rasterization failure, want 0", vision.calls)
	}
	if out.Attempts != 0 {
		t.Errorf("attempts = %d, want 0 when no provider call was made", out.Attempts)
	}
}

func TestNativeRasterGoesStraightToVision(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "id.jpg")
	if err := os.WriteFile(path, []byte("jpeg-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	cls := classify.Classification{Class: classify.ClassImageRaster, Pages: 1}
	vision := &fakeProvider{id: provider.VisionProvider, payload: map[string]any{"name": "Maria Silva"}}
	s := NewSelector(fixedClassifier{cls}, &fakeRasterizer{}, nil, vision, Config{}, discard())

	out, err := s.Extract(context.Background(), Document{Path: path, Role: constants.RoleIdentity})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if out.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", out.Attempts)
	}
	if string(vision.lastReq.Image) != "jpeg-bytes" {
		t.Errorf("vision got image %q, want file contents", vision.lastReq.Image)
	}
	if vision.lastReq.ImageExt != ".jpg" {
		t.Errorf("image ext = %q, want .jpg", vision.lastReq.ImageExt)
	}
}
