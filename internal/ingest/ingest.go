// Package ingest stores uploaded documents under the upload directory,
// deduplicates them by content hash, and records them against a draft.
package ingest

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pcaldeira/contractdraft/constants"
)

// UploadResult is the per-document upload outcome.
type UploadResult struct {
	DocumentID   uuid.UUID
	StoredPath   string
	FileExt      string
	HashHex      string
	Deduplicated bool
	UploadedAt   time.Time
}

// Uploader is the behavior the API layer depends on.
type Uploader interface {
	// SaveUpload stores inline document bytes for a draft section.
	SaveUpload(ctx context.Context, draftID uuid.UUID, partnerIndex int, role constants.DocumentRole, filename string, content []byte) (UploadResult, error)
	// IngestPath registers a file already on local disk.
	IngestPath(ctx context.Context, draftID uuid.UUID, partnerIndex int, role constants.DocumentRole, path string) (UploadResult, error)
}
