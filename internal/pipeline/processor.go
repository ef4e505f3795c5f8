// Package pipeline chains classification, extraction, normalization and
// draft merging for uploaded documents, and runs that chain on a bounded
// worker queue.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pcaldeira/contractdraft/constants"
	"github.com/pcaldeira/contractdraft/internal/draft"
	"github.com/pcaldeira/contractdraft/internal/extract"
	"github.com/pcaldeira/contractdraft/internal/normalize"
	"github.com/pcaldeira/contractdraft/internal/provider"
)

// CompanyDocument marks a document as belonging to the company section of
// a draft rather than to an indexed partner.
const CompanyDocument = -1

// Document is one uploaded file bound to a draft section.
type Document struct {
	DraftID uuid.UUID
	// DocumentID is the stored document row, zero when the document is
	// not tracked in storage (one-shot CLI runs).
	DocumentID uuid.UUID
	Path       string
	Role       constants.DocumentRole
	// Partner is the zero-based partner index, or CompanyDocument for
	// company registration records.
	Partner int
}

// DocumentResult reports what happened to a single document. Err is set
// when extraction failed; the surrounding batch keeps going regardless.
type DocumentResult struct {
	Path     string
	Role     constants.DocumentRole
	Class    string
	Provider provider.ID
	Attempts int
	Merged   []draft.FieldKey
	Accepted bool
	Err      error
}

// DocumentExtractor runs classification, provider selection and fallback
// for one document.
type DocumentExtractor interface {
	Extract(ctx context.Context, doc extract.Document) (extract.Outcome, error)
}

// DraftMerger receives normalized fields for an open draft.
type DraftMerger interface {
	MergePartner(id uuid.UUID, partnerIndex int, fields draft.CanonicalFields) bool
	MergeCompany(id uuid.UUID, fields draft.CanonicalFields) bool
}

// DocumentRecorder stores the per-document extraction outcome. Nil is
// fine for untracked runs.
type DocumentRecorder interface {
	MarkProcessed(ctx context.Context, id uuid.UUID, class, providerName string, attempts int, procErr error) error
}

// SnapshotSaver persists the draft after an accepted merge. Nil skips
// persistence.
type SnapshotSaver interface {
	SaveSnapshot(ctx context.Context, draftID uuid.UUID) error
}

// Processor coordinates extract then normalize then merge for each
// document of a draft.
type Processor struct {
	logger    *slog.Logger
	extractor DocumentExtractor
	drafts    DraftMerger
	recorder  DocumentRecorder
	snapshots SnapshotSaver
}

func NewProcessor(logger *slog.Logger, extractor DocumentExtractor, drafts DraftMerger, recorder DocumentRecorder, snapshots SnapshotSaver) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:    logger,
		extractor: extractor,
		drafts:    drafts,
		recorder:  recorder,
		snapshots: snapshots,
	}
}

// ProcessDocument runs the full chain for one document.
func (p *Processor) ProcessDocument(ctx context.Context, doc Document) DocumentResult {
	res := DocumentResult{Path: doc.Path, Role: doc.Role}

	outcome, err := p.extractor.Extract(ctx, extract.Document{Path: doc.Path, Role: doc.Role})
	res.Class = string(outcome.Class)
	res.Attempts = outcome.Attempts
	if err != nil {
		res.Err = err
		p.logger.Error("pipeline.extract.failed",
			"draft_id", doc.DraftID,
			"path", doc.Path,
			"role", doc.Role,
			"class", res.Class,
			"attempts", res.Attempts,
			"err", err,
		)
		p.record(ctx, doc, res)
		return res
	}
	res.Provider = outcome.Raw.Provider

	fields := normalize.Normalize(outcome.Raw, doc.Role)
	res.Merged = fields.PresentKeys()

	if doc.Partner == CompanyDocument || doc.Role == constants.RoleCompany {
		res.Accepted = p.drafts.MergeCompany(doc.DraftID, fields)
	} else {
		res.Accepted = p.drafts.MergePartner(doc.DraftID, doc.Partner, fields)
	}

	p.record(ctx, doc, res)
	if res.Accepted && p.snapshots != nil {
		if err := p.snapshots.SaveSnapshot(ctx, doc.DraftID); err != nil {
			p.logger.Error("pipeline.snapshot.failed", "draft_id", doc.DraftID, "err", err)
		}
	}

	p.logger.Info("pipeline.document.done",
		"draft_id", doc.DraftID,
		"path", doc.Path,
		"role", doc.Role,
		"class", res.Class,
		"provider", res.Provider,
		"attempts", res.Attempts,
		"fields", len(res.Merged),
		"accepted", res.Accepted,
	)
	return res
}

func (p *Processor) record(ctx context.Context, doc Document, res DocumentResult) {
	if p.recorder == nil || doc.DocumentID == uuid.Nil {
		return
	}
	err := p.recorder.MarkProcessed(ctx, doc.DocumentID, res.Class, string(res.Provider), res.Attempts, res.Err)
	if err != nil {
		p.logger.Error("pipeline.record.failed", "document_id", doc.DocumentID, "err", err)
	}
}

// ProcessBatch runs every document of a draft, isolating failures: a
// document that fails leaves its section untouched while the rest of the
// batch proceeds.
func (p *Processor) ProcessBatch(ctx context.Context, docs []Document) []DocumentResult {
	results := make([]DocumentResult, 0, len(docs))
	var failed int
	for _, doc := range docs {
		res := p.ProcessDocument(ctx, doc)
		if res.Err != nil {
			failed++
		}
		results = append(results, res)
	}
	if failed > 0 {
		p.logger.Warn("pipeline.batch.partial", "total", len(docs), "failed", failed)
	}
	return results
}
