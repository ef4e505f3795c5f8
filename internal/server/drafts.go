package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/pcaldeira/contractdraft/constants"
	contractspb "github.com/pcaldeira/contractdraft/gen/proto/contracts/v1"
	"github.com/pcaldeira/contractdraft/internal/common"
	"github.com/pcaldeira/contractdraft/internal/draft"
	"github.com/pcaldeira/contractdraft/internal/export"
	"github.com/pcaldeira/contractdraft/internal/repository"
	"github.com/pcaldeira/contractdraft/internal/utils"
)

type DraftsService struct {
	contractspb.UnimplementedDraftsServiceServer
	store    *DraftStore
	repo     repository.DraftRepository
	renderer export.Renderer
	logger   *slog.Logger
}

func NewDraftsService(store *DraftStore, repo repository.DraftRepository, renderer export.Renderer, logger *slog.Logger) *DraftsService {
	return &DraftsService{
		store:    store,
		repo:     repo,
		renderer: renderer,
		logger:   logger,
	}
}

func (s *DraftsService) CreateDraft(ctx context.Context, req *contractspb.CreateDraftRequest) (*contractspb.CreateDraftResponse, error) {
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		s.logger.Error("create draft request missing name")
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}
	partnerCount := int(req.GetPartnerCount())
	if partnerCount < 1 {
		partnerCount = 2
	}

	d, err := s.repo.Create(ctx, name, partnerCount)
	if err != nil {
		s.logger.Error("failed to create draft", "name", name, "error", err)
		return nil, status.Errorf(codes.Internal, "create draft: %v", err)
	}
	s.store.Accumulator().Open(d)

	s.logger.Info("draft created", "draft_id", d.ID, "name", name, "partners", partnerCount)
	return &contractspb.CreateDraftResponse{Draft: utils.ToPBDraft(d)}, nil
}

func (s *DraftsService) GetDraft(ctx context.Context, req *contractspb.GetDraftRequest) (*contractspb.GetDraftResponse, error) {
	id, err := parseDraftID(req.GetDraftId())
	if err != nil {
		return nil, err
	}
	d, err := s.store.Ensure(ctx, id)
	if err != nil {
		return nil, draftError(s.logger, "get draft", id, err)
	}
	return &contractspb.GetDraftResponse{Draft: utils.ToPBDraft(d)}, nil
}

func (s *DraftsService) ListDrafts(ctx context.Context, _ *contractspb.ListDraftsRequest) (*contractspb.ListDraftsResponse, error) {
	drafts, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list drafts", "error", err)
		return nil, status.Errorf(codes.Internal, "list drafts: %v", err)
	}
	out := make([]*contractspb.Draft, 0, len(drafts))
	for _, d := range drafts {
		// Prefer the live copy when the draft is open in memory.
		if live, ok := s.store.Accumulator().Snapshot(d.ID); ok {
			d = live
		}
		out = append(out, utils.ToPBDraft(d))
	}
	return &contractspb.ListDraftsResponse{Drafts: out}, nil
}

func (s *DraftsService) UpdateField(ctx context.Context, req *contractspb.UpdateFieldRequest) (*contractspb.UpdateFieldResponse, error) {
	id, err := parseDraftID(req.GetDraftId())
	if err != nil {
		return nil, err
	}
	key := draft.FieldKey(strings.TrimSpace(req.GetKey()))
	if !draft.IsCanonical(key) {
		s.logger.Error("update field with unknown key", "draft_id", id, "key", req.GetKey())
		return nil, status.Errorf(codes.InvalidArgument, "unknown field key %q", req.GetKey())
	}

	d, err := s.store.Ensure(ctx, id)
	if err != nil {
		return nil, draftError(s.logger, "update field", id, err)
	}
	if d.Status == constants.DraftStatusFinalized {
		return nil, status.Error(codes.FailedPrecondition, "draft is finalized")
	}

	idx := int(req.GetPartnerIndex())
	acc := s.store.Accumulator()
	var ok bool
	if idx < 0 {
		ok = acc.SetManualCompany(id, key, req.GetValue())
	} else {
		if idx >= len(d.Partners) {
			return nil, status.Errorf(codes.InvalidArgument, "partner index %d out of range", idx)
		}
		ok = acc.SetManualPartner(id, idx, key, req.GetValue())
	}
	if !ok {
		return nil, status.Error(codes.FailedPrecondition, "draft is not open for editing")
	}

	if err := s.store.SaveSnapshot(ctx, id); err != nil {
		s.logger.Error("failed to persist manual edit", "draft_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "save draft: %v", err)
	}

	s.logger.Info("field updated", "draft_id", id, "partner", idx, "key", key)
	d, ok = acc.Snapshot(id)
	if !ok {
		// The draft was closed (deleted or finalized) after the edit landed.
		return nil, status.Errorf(codes.NotFound, "draft %s is no longer open", id)
	}
	return &contractspb.UpdateFieldResponse{Draft: utils.ToPBDraft(d)}, nil
}

func (s *DraftsService) FinalizeDraft(ctx context.Context, req *contractspb.FinalizeDraftRequest) (*contractspb.FinalizeDraftResponse, error) {
	id, err := parseDraftID(req.GetDraftId())
	if err != nil {
		return nil, err
	}
	d, err := s.store.Ensure(ctx, id)
	if err != nil {
		return nil, draftError(s.logger, "finalize draft", id, err)
	}
	if d.Status == constants.DraftStatusFinalized {
		return &contractspb.FinalizeDraftResponse{Draft: utils.ToPBDraft(d)}, nil
	}
	if missing := d.MissingFields(); len(missing) > 0 {
		s.logger.Info("finalize rejected, draft incomplete", "draft_id", id, "missing", len(missing))
		return nil, status.Errorf(codes.FailedPrecondition, "draft incomplete: missing %s", strings.Join(missing, ", "))
	}

	d.Status = constants.DraftStatusFinalized
	if err := s.repo.Save(ctx, d); err != nil {
		s.logger.Error("failed to finalize draft", "draft_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "save draft: %v", err)
	}
	// Once finalized, in-flight extraction merges must become no-ops.
	s.store.Accumulator().Close(id)

	s.logger.Info("draft finalized", "draft_id", id)
	return &contractspb.FinalizeDraftResponse{Draft: utils.ToPBDraft(d)}, nil
}

func (s *DraftsService) ExportDraft(ctx context.Context, req *contractspb.ExportDraftRequest) (*contractspb.ExportDraftResponse, error) {
	id, err := parseDraftID(req.GetDraftId())
	if err != nil {
		return nil, err
	}
	d, err := s.store.Ensure(ctx, id)
	if err != nil {
		return nil, draftError(s.logger, "export draft", id, err)
	}
	out, err := s.renderer.Render(ctx, d)
	if err != nil {
		s.logger.Error("failed to render draft", "draft_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "render draft: %v", err)
	}
	return &contractspb.ExportDraftResponse{
		Workbook: out,
		Filename: d.Name + ".xlsx",
	}, nil
}

func (s *DraftsService) DeleteDraft(ctx context.Context, req *contractspb.DeleteDraftRequest) (*contractspb.DeleteDraftResponse, error) {
	id, err := parseDraftID(req.GetDraftId())
	if err != nil {
		return nil, err
	}
	s.store.Accumulator().Close(id)
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, draftError(s.logger, "delete draft", id, err)
	}
	s.logger.Info("draft deleted", "draft_id", id)
	return &contractspb.DeleteDraftResponse{}, nil
}

func parseDraftID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "draft_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "draft_id must be a UUID")
	}
	return id, nil
}

func draftError(logger *slog.Logger, op string, id uuid.UUID, err error) error {
	if errors.Is(err, common.ErrNotFound) {
		return status.Errorf(codes.NotFound, "draft %s not found", id)
	}
	logger.Error("draft operation failed", "op", op, "draft_id", id, "error", err)
	return status.Errorf(codes.Internal, "%s: %v", op, err)
}
