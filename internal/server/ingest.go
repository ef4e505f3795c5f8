package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/pcaldeira/contractdraft/constants"
	contractspb "github.com/pcaldeira/contractdraft/gen/proto/contracts/v1"
	"github.com/pcaldeira/contractdraft/internal/common"
	"github.com/pcaldeira/contractdraft/internal/ingest"
	"github.com/pcaldeira/contractdraft/internal/pipeline"
)

type IngestionService struct {
	contractspb.UnimplementedIngestionServiceServer
	uploader ingest.Uploader
	store    *DraftStore
	queue    pipeline.Queue
	logger   *slog.Logger
}

func NewIngestionService(uploader ingest.Uploader, store *DraftStore, queue pipeline.Queue, logger *slog.Logger) *IngestionService {
	return &IngestionService{
		uploader: uploader,
		store:    store,
		queue:    queue,
		logger:   logger,
	}
}

func (s *IngestionService) UploadDocument(ctx context.Context, req *contractspb.UploadDocumentRequest) (*contractspb.UploadDocumentResponse, error) {
	draftID, err := parseDraftID(req.GetDraftId())
	if err != nil {
		return nil, err
	}
	role, ok := constants.ParseRole(req.GetRole())
	if !ok {
		s.logger.Error("upload with invalid role", "draft_id", draftID, "role", req.GetRole())
		return nil, status.Errorf(codes.InvalidArgument, "role must be one of %s", strings.Join(constants.RolesAsStrings(), ", "))
	}

	d, err := s.store.Ensure(ctx, draftID)
	if err != nil {
		return nil, draftError(s.logger, "upload document", draftID, err)
	}
	if d.Status == constants.DraftStatusFinalized {
		return nil, status.Error(codes.FailedPrecondition, "draft is finalized")
	}

	idx := int(req.GetPartnerIndex())
	if role == constants.RoleCompany {
		idx = pipeline.CompanyDocument
	} else if idx < 0 || idx >= len(d.Partners) {
		return nil, status.Errorf(codes.InvalidArgument, "partner index %d out of range", idx)
	}

	var res ingest.UploadResult
	switch {
	case len(req.GetContent()) > 0:
		filename := strings.TrimSpace(req.GetFilename())
		if filename == "" {
			return nil, status.Error(codes.InvalidArgument, "filename is required with inline content")
		}
		res, err = s.uploader.SaveUpload(ctx, draftID, idx, role, filename, req.GetContent())
	case strings.TrimSpace(req.GetSourcePath()) != "":
		res, err = s.uploader.IngestPath(ctx, draftID, idx, role, strings.TrimSpace(req.GetSourcePath()))
	default:
		return nil, status.Error(codes.InvalidArgument, "either content or source_path is required")
	}
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			return nil, status.Errorf(codes.InvalidArgument, "upload: %v", err)
		}
		s.logger.Error("upload failed", "draft_id", draftID, "error", err)
		return nil, status.Errorf(codes.Internal, "upload: %v", err)
	}

	job := pipeline.Job{
		Document: pipeline.Document{
			DraftID:    draftID,
			DocumentID: res.DocumentID,
			Path:       res.StoredPath,
			Role:       role,
			Partner:    idx,
		},
		SubmittedAt: time.Now().UTC(),
		RequestID:   common.RequestIDFromContext(ctx),
	}
	if err := s.queue.Enqueue(ctx, job); err != nil {
		s.logger.Error("failed to enqueue document", "draft_id", draftID, "document_id", res.DocumentID, "error", err)
		return nil, status.Errorf(codes.Internal, "enqueue: %v", err)
	}

	return &contractspb.UploadDocumentResponse{
		DocumentId:     res.DocumentID.String(),
		FileExt:        res.FileExt,
		ContentHashHex: res.HashHex,
		Deduplicated:   res.Deduplicated,
		UploadedAt:     res.UploadedAt.UTC().Format(time.RFC3339),
		Queued:         true,
	}, nil
}
