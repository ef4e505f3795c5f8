package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/pcaldeira/contractdraft/constants"
	"github.com/pcaldeira/contractdraft/internal/common"
	"github.com/pcaldeira/contractdraft/internal/repository"
)

// FSStore writes uploads to a local directory, one subdirectory per
// draft, named by content hash so re-uploads collapse to one file.
type FSStore struct {
	uploadDir string
	documents repository.DocumentRepository
	logger    *slog.Logger
}

func NewFSStore(uploadDir string, documents repository.DocumentRepository, logger *slog.Logger) *FSStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSStore{uploadDir: uploadDir, documents: documents, logger: logger}
}

var _ Uploader = (*FSStore)(nil)

func (s *FSStore) SaveUpload(ctx context.Context, draftID uuid.UUID, partnerIndex int, role constants.DocumentRole, filename string, content []byte) (UploadResult, error) {
	var out UploadResult
	if len(content) == 0 {
		return out, fmt.Errorf("%w: empty document content", common.ErrInvalidInput)
	}
	ext := constants.NormalizeExt(filepath.Ext(filename))
	if !constants.AllowedExt(ext) {
		return out, fmt.Errorf("%w: unsupported extension %q", common.ErrInvalidInput, ext)
	}

	sum := sha256.Sum256(content)
	if existing, err := s.documents.GetByDraftAndHash(ctx, draftID, sum[:]); err == nil {
		s.logger.Info("upload deduplicated", "draft_id", draftID, "document_id", existing.ID, "filename", filename)
		return UploadResult{
			DocumentID:   existing.ID,
			StoredPath:   existing.SourcePath,
			FileExt:      existing.FileExt,
			HashHex:      hex.EncodeToString(sum[:]),
			Deduplicated: true,
			UploadedAt:   existing.UploadedAt,
		}, nil
	} else if !errors.Is(err, common.ErrNotFound) {
		return out, err
	}

	dir := filepath.Join(s.uploadDir, draftID.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return out, fmt.Errorf("create upload dir: %w", err)
	}
	dest := filepath.Join(dir, hex.EncodeToString(sum[:])+"."+ext)
	if err := os.WriteFile(dest, content, 0o644); err != nil {
		return out, fmt.Errorf("write upload: %w", err)
	}

	return s.record(ctx, draftID, partnerIndex, role, filename, dest, ext, sum[:])
}

func (s *FSStore) IngestPath(ctx context.Context, draftID uuid.UUID, partnerIndex int, role constants.DocumentRole, path string) (UploadResult, error) {
	var out UploadResult

	abs, err := filepath.Abs(path)
	if err != nil {
		return out, fmt.Errorf("abs path: %w", err)
	}
	ext := constants.NormalizeExt(filepath.Ext(abs))
	if !constants.AllowedExt(ext) {
		return out, fmt.Errorf("%w: unsupported extension %q", common.ErrInvalidInput, ext)
	}

	f, err := os.Open(abs)
	if err != nil {
		return out, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return out, fmt.Errorf("hash: %w", err)
	}
	sum := h.Sum(nil)

	if existing, err := s.documents.GetByDraftAndHash(ctx, draftID, sum); err == nil {
		return UploadResult{
			DocumentID:   existing.ID,
			StoredPath:   existing.SourcePath,
			FileExt:      existing.FileExt,
			HashHex:      hex.EncodeToString(sum),
			Deduplicated: true,
			UploadedAt:   existing.UploadedAt,
		}, nil
	} else if !errors.Is(err, common.ErrNotFound) {
		return out, err
	}

	return s.record(ctx, draftID, partnerIndex, role, filepath.Base(abs), abs, ext, sum)
}

func (s *FSStore) record(ctx context.Context, draftID uuid.UUID, partnerIndex int, role constants.DocumentRole, filename, storedPath, ext string, hash []byte) (UploadResult, error) {
	row, err := s.documents.Create(ctx, draftID, partnerIndex, string(role), filename, storedPath, ext, hash)
	if err != nil {
		return UploadResult{}, err
	}
	s.logger.Info("document stored",
		"draft_id", draftID,
		"document_id", row.ID,
		"filename", filename,
		"ext", ext,
		"partner", partnerIndex,
		"role", role,
	)
	return UploadResult{
		DocumentID: row.ID,
		StoredPath: storedPath,
		FileExt:    ext,
		HashHex:    hex.EncodeToString(hash),
		UploadedAt: row.UploadedAt,
	}, nil
}

// IsHidden reports whether a path component starts with '.'.
func IsHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
