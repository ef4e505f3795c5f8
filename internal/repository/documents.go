package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pcaldeira/contractdraft/gen/ent"
	entdoc "github.com/pcaldeira/contractdraft/gen/ent/draftdocument"
	"github.com/pcaldeira/contractdraft/internal/common"
)

const (
	DocumentStatusPending = "PENDING"
	DocumentStatusDone    = "DONE"
	DocumentStatusFailed  = "FAILED"
)

// ExtractionOutcome is what the pipeline reports back for a stored
// document once extraction finishes.
type ExtractionOutcome struct {
	Class    string
	Provider string
	Attempts int
	Err      error
}

type DocumentRepository interface {
	Create(ctx context.Context, draftID uuid.UUID, partnerPosition int, role, filename, sourcePath, ext string, hash []byte) (*ent.DraftDocument, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.DraftDocument, error)
	GetByDraftAndHash(ctx context.Context, draftID uuid.UUID, hash []byte) (*ent.DraftDocument, error)
	ListByDraft(ctx context.Context, draftID uuid.UUID) ([]*ent.DraftDocument, error)
	MarkProcessed(ctx context.Context, id uuid.UUID, outcome ExtractionOutcome) error
}

type documentRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepo{ent: entc, logger: logger}
}

func (r *documentRepo) Create(ctx context.Context, draftID uuid.UUID, partnerPosition int, role, filename, sourcePath, ext string, hash []byte) (*ent.DraftDocument, error) {
	row, err := r.ent.DraftDocument.Create().
		SetDraftID(draftID).
		SetPartnerPosition(partnerPosition).
		SetRole(role).
		SetFilename(filename).
		SetSourcePath(sourcePath).
		SetFileExt(ext).
		SetContentHash(hash).
		SetStatus(DocumentStatusPending).
		SetUploadedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to record document", "draft_id", draftID, "filename", filename, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *documentRepo) GetByDraftAndHash(ctx context.Context, draftID uuid.UUID, hash []byte) (*ent.DraftDocument, error) {
	row, err := r.ent.DraftDocument.Query().
		Where(
			entdoc.DraftID(draftID),
			entdoc.ContentHash(hash),
		).First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("document: %w", common.ErrNotFound)
		}
		return nil, err
	}
	return row, nil
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.DraftDocument, error) {
	row, err := r.ent.DraftDocument.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("document %s: %w", id, common.ErrNotFound)
		}
		return nil, err
	}
	return row, nil
}

func (r *documentRepo) ListByDraft(ctx context.Context, draftID uuid.UUID) ([]*ent.DraftDocument, error) {
	rows, err := r.ent.DraftDocument.Query().
		Where(entdoc.DraftID(draftID)).
		Order(ent.Asc(entdoc.FieldUploadedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "draft_id", draftID, "error", err)
		return nil, err
	}
	return rows, nil
}

func (r *documentRepo) MarkProcessed(ctx context.Context, id uuid.UUID, outcome ExtractionOutcome) error {
	upd := r.ent.DraftDocument.UpdateOneID(id).
		SetAttempts(outcome.Attempts).
		SetProcessedAt(time.Now().UTC())
	if outcome.Class != "" {
		upd.SetDocumentClass(outcome.Class)
	}
	if outcome.Provider != "" {
		upd.SetProvider(outcome.Provider)
	}
	if outcome.Err != nil {
		upd.SetStatus(DocumentStatusFailed)
		upd.SetErrorMessage(outcome.Err.Error())
	} else {
		upd.SetStatus(DocumentStatusDone)
	}
	if err := upd.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("document %s: %w", id, common.ErrNotFound)
		}
		r.logger.Error("failed to mark document processed", "document_id", id, "error", err)
		return err
	}
	return nil
}
