package server

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	contractspb "github.com/pcaldeira/contractdraft/gen/proto/contracts/v1"
	"github.com/pcaldeira/contractdraft/internal/common"
	"github.com/pcaldeira/contractdraft/internal/draft"
)

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// fakeDraftRepo backs the store with an optional Save hook so tests can
// interleave work between the persist and the response snapshot.
type fakeDraftRepo struct {
	drafts map[uuid.UUID]*draft.ContractDraft
	onSave func(d *draft.ContractDraft)
}

func newFakeDraftRepo() *fakeDraftRepo {
	return &fakeDraftRepo{drafts: make(map[uuid.UUID]*draft.ContractDraft)}
}

func (r *fakeDraftRepo) Create(_ context.Context, name string, partnerCount int) (*draft.ContractDraft, error) {
	d := draft.NewContractDraft(name, partnerCount)
	r.drafts[d.ID] = d
	return d, nil
}

func (r *fakeDraftRepo) GetByID(_ context.Context, id uuid.UUID) (*draft.ContractDraft, error) {
	d, ok := r.drafts[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return d, nil
}

func (r *fakeDraftRepo) List(_ context.Context) ([]*draft.ContractDraft, error) {
	out := make([]*draft.ContractDraft, 0, len(r.drafts))
	for _, d := range r.drafts {
		out = append(out, d)
	}
	return out, nil
}

func (r *fakeDraftRepo) Save(_ context.Context, d *draft.ContractDraft) error {
	r.drafts[d.ID] = d
	if r.onSave != nil {
		r.onSave(d)
	}
	return nil
}

func (r *fakeDraftRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.drafts[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.drafts, id)
	return nil
}

func newTestDraftsService(repo *fakeDraftRepo) (*DraftsService, *DraftStore) {
	store := NewDraftStore(draft.NewAccumulator(discard()), repo)
	return NewDraftsService(store, repo, nil, discard()), store
}

func TestUpdateFieldReturnsUpdatedDraft(t *testing.T) {
	repo := newFakeDraftRepo()
	svc, store := newTestDraftsService(repo)

	d, err := repo.Create(context.Background(), "acme", 2)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	store.Accumulator().Open(d)

	resp, err := svc.UpdateField(context.Background(), &contractspb.UpdateFieldRequest{
		DraftId:      d.ID.String(),
		PartnerIndex: 0,
		Key:          string(draft.KeyFullName),
		Value:        "Maria Silva",
	})
	if err != nil {
		t.Fatalf("UpdateField: %v", err)
	}
	var got string
	for _, entry := range resp.GetDraft().GetPartners()[0].GetFields() {
		if entry.GetKey() == string(draft.KeyFullName) {
			got = entry.GetValue()
		}
	}
	if got != "Maria Silva" {
		t.Errorf("full_name = %q, want %q", got, "Maria Silva")
	}
}

func TestUpdateFieldDraftClosedDuringPersist(t *testing.T) {
	repo := newFakeDraftRepo()
	svc, store := newTestDraftsService(repo)

	d, err := repo.Create(context.Background(), "acme", 2)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	store.Accumulator().Open(d)

	// A delete racing the edit closes the draft after the snapshot is
	// persisted but before the response snapshot is taken.
	repo.onSave = func(saved *draft.ContractDraft) {
		store.Accumulator().Close(saved.ID)
		delete(repo.drafts, saved.ID)
	}

	_, err = svc.UpdateField(context.Background(), &contractspb.UpdateFieldRequest{
		DraftId:      d.ID.String(),
		PartnerIndex: 0,
		Key:          string(draft.KeyFullName),
		Value:        "Maria Silva",
	})
	if err == nil {
		t.Fatal("expected error for draft closed mid-request")
	}
	if status.Code(err) != codes.NotFound {
		t.Errorf("code = %v, want %v", status.Code(err), codes.NotFound)
	}
}

func TestUpdateFieldRejectsUnknownKey(t *testing.T) {
	repo := newFakeDraftRepo()
	svc, store := newTestDraftsService(repo)

	d, _ := repo.Create(context.Background(), "acme", 2)
	store.Accumulator().Open(d)

	_, err := svc.UpdateField(context.Background(), &contractspb.UpdateFieldRequest{
		DraftId:      d.ID.String(),
		PartnerIndex: 0,
		Key:          "favorite_color",
		Value:        "blue",
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}
}
