package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pcaldeira/contractdraft/constants"
	"github.com/pcaldeira/contractdraft/internal/classify"
	"github.com/pcaldeira/contractdraft/internal/draft"
	"github.com/pcaldeira/contractdraft/internal/extract"
	"github.com/pcaldeira/contractdraft/internal/provider"
)

type fakeExtractor struct {
	mu       sync.Mutex
	outcomes map[string]extract.Outcome
	errs     map[string]error
	calls    []string
}

func (f *fakeExtractor) Extract(_ context.Context, doc extract.Document) (extract.Outcome, error) {
	f.mu.Lock()
	f.calls = append(f.calls, doc.Path)
	f.mu.Unlock()
	if err, ok := f.errs[doc.Path]; ok {
		return extract.Outcome{Class: classify.ClassImagePDF, Attempts: 1}, err
	}
	return f.outcomes[doc.Path], nil
}

type mergeCall struct {
	partner int
	fields  draft.CanonicalFields
}

type fakeMerger struct {
	mu      sync.Mutex
	partner []mergeCall
	company []draft.CanonicalFields
	accept  bool
}

func (f *fakeMerger) MergePartner(_ uuid.UUID, idx int, fields draft.CanonicalFields) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.partner = append(f.partner, mergeCall{partner: idx, fields: fields})
	return f.accept
}

func (f *fakeMerger) MergeCompany(_ uuid.UUID, fields draft.CanonicalFields) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.company = append(f.company, fields)
	return f.accept
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func identityOutcome(name string) extract.Outcome {
	return extract.Outcome{
		Raw: provider.RawResult{
			Provider: provider.TextProvider,
			Payload:  map[string]any{"name": name},
		},
		Class:    classify.ClassTextPDF,
		Attempts: 1,
	}
}

func TestProcessBatchIsolatesFailures(t *testing.T) {
	draftID := uuid.New()
	ext := &fakeExtractor{
		outcomes: map[string]extract.Outcome{
			"b.pdf": identityOutcome("Ana Lima"),
		},
		errs: map[string]error{
			"a.pdf": errors.New("provider unavailable"),
		},
	}
	merger := &fakeMerger{accept: true}
	p := NewProcessor(discard(), ext, merger, nil, nil)

	docs := []Document{
		{DraftID: draftID, Path: "a.pdf", Role: constants.RoleIdentity, Partner: 0},
		{DraftID: draftID, Path: "b.pdf", Role: constants.RoleIdentity, Partner: 1},
	}
	results := p.ProcessBatch(context.Background(), docs)

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Err == nil {
		t.Error("a.pdf should have failed")
	}
	if results[1].Err != nil {
		t.Errorf("b.pdf should have succeeded: %v", results[1].Err)
	}
	if len(merger.partner) != 1 {
		t.Fatalf("got %d partner merges, want 1 (failed doc must not merge)", len(merger.partner))
	}
	if merger.partner[0].partner != 1 {
		t.Errorf("merged into partner %d, want 1", merger.partner[0].partner)
	}
	if got := merger.partner[0].fields.Get(draft.KeyFullName); got != "Ana Lima" {
		t.Errorf("full_name = %q", got)
	}
}

func TestProcessDocumentRoutesCompany(t *testing.T) {
	ext := &fakeExtractor{
		outcomes: map[string]extract.Outcome{
			"c.pdf": {
				Raw: provider.RawResult{
					Provider: provider.TextProvider,
					Payload:  map[string]any{"company_name": "Acme LTDA"},
				},
				Class:    classify.ClassTextPDF,
				Attempts: 1,
			},
		},
	}
	merger := &fakeMerger{accept: true}
	p := NewProcessor(discard(), ext, merger, nil, nil)

	res := p.ProcessDocument(context.Background(), Document{
		DraftID: uuid.New(),
		Path:    "c.pdf",
		Role:    constants.RoleCompany,
		Partner: CompanyDocument,
	})

	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if len(merger.company) != 1 || len(merger.partner) != 0 {
		t.Fatalf("company doc routed wrong: company=%d partner=%d", len(merger.company), len(merger.partner))
	}
	if !res.Accepted {
		t.Error("merge should have been accepted")
	}
}

func TestProcessDocumentReportsRejectedMerge(t *testing.T) {
	// A closed draft rejects merges; the pipeline surfaces that without
	// treating it as an error.
	ext := &fakeExtractor{
		outcomes: map[string]extract.Outcome{"a.pdf": identityOutcome("Ana")},
	}
	merger := &fakeMerger{accept: false}
	p := NewProcessor(discard(), ext, merger, nil, nil)

	res := p.ProcessDocument(context.Background(), Document{
		DraftID: uuid.New(), Path: "a.pdf", Role: constants.RoleIdentity,
	})
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.Accepted {
		t.Error("accepted should be false when the draft is closed")
	}
}

type recorded struct {
	id       uuid.UUID
	provider string
	err      error
}

type fakeRecorder struct {
	mu    sync.Mutex
	calls []recorded
}

func (f *fakeRecorder) MarkProcessed(_ context.Context, id uuid.UUID, _, providerName string, _ int, procErr error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, recorded{id: id, provider: providerName, err: procErr})
	return nil
}

func TestProcessDocumentRecordsOutcome(t *testing.T) {
	docID := uuid.New()
	ext := &fakeExtractor{
		errs: map[string]error{"a.pdf": errors.New("boom")},
	}
	rec := &fakeRecorder{}
	p := NewProcessor(discard(), ext, &fakeMerger{}, rec, nil)

	p.ProcessDocument(context.Background(), Document{
		DraftID:    uuid.New(),
		DocumentID: docID,
		Path:       "a.pdf",
		Role:       constants.RoleIdentity,
	})

	if len(rec.calls) != 1 {
		t.Fatalf("got %d recorder calls, want 1", len(rec.calls))
	}
	if rec.calls[0].id != docID || rec.calls[0].err == nil {
		t.Errorf("recorded = %+v, want failed outcome for %s", rec.calls[0], docID)
	}
}

func TestQueueProcessesJobsAndDrains(t *testing.T) {
	draftID := uuid.New()
	ext := &fakeExtractor{
		outcomes: map[string]extract.Outcome{
			"a.pdf": identityOutcome("Ana"),
			"b.pdf": identityOutcome("Bia"),
		},
	}
	merger := &fakeMerger{accept: true}
	p := NewProcessor(discard(), ext, merger, nil, nil)

	q := NewProcessorQueue(p, discard(), WithWorkers(2), WithQueueSize(4), WithJobTimeout(time.Second))
	for _, path := range []string{"a.pdf", "b.pdf"} {
		err := q.Enqueue(context.Background(), Job{
			Document:    Document{DraftID: draftID, Path: path, Role: constants.RoleIdentity},
			SubmittedAt: time.Now(),
		})
		if err != nil {
			t.Fatalf("enqueue: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	merger.mu.Lock()
	defer merger.mu.Unlock()
	if len(merger.partner) != 2 {
		t.Fatalf("got %d merges after drain, want 2", len(merger.partner))
	}
}

func TestQueueEnqueueAfterShutdownIsNoop(t *testing.T) {
	p := NewProcessor(discard(), &fakeExtractor{}, &fakeMerger{}, nil, nil)
	q := NewProcessorQueue(p, discard(), WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	if err := q.Enqueue(context.Background(), Job{}); err != nil {
		t.Fatalf("enqueue after shutdown: %v", err)
	}
}
