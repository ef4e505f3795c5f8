package ingest

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/pcaldeira/contractdraft/constants"
	"github.com/pcaldeira/contractdraft/gen/ent"
	"github.com/pcaldeira/contractdraft/internal/common"
	"github.com/pcaldeira/contractdraft/internal/repository"
)

// memDocuments is an in-memory DocumentRepository keyed by content hash.
type memDocuments struct {
	rows    map[string]*ent.DraftDocument
	creates int
}

func newMemDocuments() *memDocuments {
	return &memDocuments{rows: make(map[string]*ent.DraftDocument)}
}

func (m *memDocuments) key(draftID uuid.UUID, hash []byte) string {
	return draftID.String() + "/" + fmt.Sprintf("%x", hash)
}

func (m *memDocuments) Create(_ context.Context, draftID uuid.UUID, partnerPosition int, role, filename, sourcePath, ext string, hash []byte) (*ent.DraftDocument, error) {
	m.creates++
	row := &ent.DraftDocument{
		ID:              uuid.New(),
		DraftID:         draftID,
		PartnerPosition: partnerPosition,
		Role:            role,
		Filename:        filename,
		SourcePath:      sourcePath,
		FileExt:         ext,
		ContentHash:     hash,
		Status:          repository.DocumentStatusPending,
	}
	m.rows[m.key(draftID, hash)] = row
	return row, nil
}

func (m *memDocuments) GetByID(context.Context, uuid.UUID) (*ent.DraftDocument, error) {
	return nil, common.ErrNotFound
}

func (m *memDocuments) GetByDraftAndHash(_ context.Context, draftID uuid.UUID, hash []byte) (*ent.DraftDocument, error) {
	if row, ok := m.rows[m.key(draftID, hash)]; ok {
		return row, nil
	}
	return nil, fmt.Errorf("document: %w", common.ErrNotFound)
}

func (m *memDocuments) ListByDraft(context.Context, uuid.UUID) ([]*ent.DraftDocument, error) {
	return nil, nil
}

func (m *memDocuments) MarkProcessed(context.Context, uuid.UUID, repository.ExtractionOutcome) error {
	return nil
}

var _ repository.DocumentRepository = (*memDocuments)(nil)

func newTestStore(t *testing.T) (*FSStore, *memDocuments) {
	t.Helper()
	docs := newMemDocuments()
	return NewFSStore(t.TempDir(), docs, slog.New(slog.DiscardHandler)), docs
}

func TestSaveUploadStoresByContentHash(t *testing.T) {
	store, docs := newTestStore(t)
	draftID := uuid.New()

	res, err := store.SaveUpload(context.Background(), draftID, 0, constants.RoleIdentity, "rg.pdf", []byte("pdf-bytes"))
	if err != nil {
		t.Fatalf("SaveUpload: %v", err)
	}
	if res.Deduplicated {
		t.Error("first upload flagged as duplicate")
	}
	if got, err := os.ReadFile(res.StoredPath); err != nil || string(got) != "pdf-bytes" {
		t.Fatalf("stored file = %q, err %v", got, err)
	}
	if filepath.Base(res.StoredPath) != res.HashHex+".pdf" {
		t.Errorf("stored name %q not derived from hash %q", filepath.Base(res.StoredPath), res.HashHex)
	}
	if docs.creates != 1 {
		t.Errorf("creates = %d, want 1", docs.creates)
	}

	row, err := docs.GetByDraftAndHash(context.Background(), draftID, mustHexDecode(t, res.HashHex))
	if err != nil {
		t.Fatalf("GetByDraftAndHash: %v", err)
	}
	if row.Status != repository.DocumentStatusPending {
		t.Errorf("status = %q, want %q", row.Status, repository.DocumentStatusPending)
	}
}

func mustHexDecode(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestSaveUploadDeduplicates(t *testing.T) {
	store, docs := newTestStore(t)
	draftID := uuid.New()
	content := []byte("same bytes")

	first, err := store.SaveUpload(context.Background(), draftID, 0, constants.RoleIdentity, "rg.pdf", content)
	if err != nil {
		t.Fatalf("first SaveUpload: %v", err)
	}
	second, err := store.SaveUpload(context.Background(), draftID, 0, constants.RoleIdentity, "rg-copy.pdf", content)
	if err != nil {
		t.Fatalf("second SaveUpload: %v", err)
	}
	if !second.Deduplicated {
		t.Error("re-upload of identical content not flagged as duplicate")
	}
	if second.DocumentID != first.DocumentID {
		t.Error("duplicate upload produced a new document ID")
	}
	if docs.creates != 1 {
		t.Errorf("creates = %d, want 1", docs.creates)
	}

	// Same content under a different draft is a distinct document.
	other, err := store.SaveUpload(context.Background(), uuid.New(), 0, constants.RoleIdentity, "rg.pdf", content)
	if err != nil {
		t.Fatalf("other-draft SaveUpload: %v", err)
	}
	if other.Deduplicated {
		t.Error("dedup leaked across drafts")
	}
}

func TestSaveUploadRejectsBadInput(t *testing.T) {
	store, _ := newTestStore(t)
	draftID := uuid.New()

	_, err := store.SaveUpload(context.Background(), draftID, 0, constants.RoleIdentity, "rg.pdf", nil)
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Errorf("empty content: err = %v, want ErrInvalidInput", err)
	}

	_, err = store.SaveUpload(context.Background(), draftID, 0, constants.RoleIdentity, "notes.txt", []byte("x"))
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Errorf("bad extension: err = %v, want ErrInvalidInput", err)
	}
}

func TestIngestPathRecordsWithoutCopying(t *testing.T) {
	store, _ := newTestStore(t)
	draftID := uuid.New()

	dir := t.TempDir()
	src := filepath.Join(dir, "conta-luz.jpg")
	if err := os.WriteFile(src, []byte("jpeg-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := store.IngestPath(context.Background(), draftID, 1, constants.RoleAddressProof, src)
	if err != nil {
		t.Fatalf("IngestPath: %v", err)
	}
	if res.StoredPath != src {
		t.Errorf("stored path = %q, want source path %q", res.StoredPath, src)
	}
	if res.FileExt != "jpg" {
		t.Errorf("ext = %q, want jpg", res.FileExt)
	}

	again, err := store.IngestPath(context.Background(), draftID, 1, constants.RoleAddressProof, src)
	if err != nil {
		t.Fatalf("second IngestPath: %v", err)
	}
	if !again.Deduplicated {
		t.Error("re-ingest of same file not deduplicated")
	}
}

func TestIsHidden(t *testing.T) {
	if !IsHidden("/srv/intake/.DS_Store") {
		t.Error(".DS_Store not hidden")
	}
	if IsHidden("/srv/intake/rg.pdf") {
		t.Error("rg.pdf flagged hidden")
	}
}
