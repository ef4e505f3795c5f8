package server

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/pcaldeira/contractdraft/internal/draft"
	"github.com/pcaldeira/contractdraft/internal/repository"
)

// DraftStore pairs the in-memory accumulator with durable storage. Reads
// prefer the accumulator; a draft untouched since startup is loaded from
// the repository and opened on first use.
type DraftStore struct {
	acc  *draft.Accumulator
	repo repository.DraftRepository

	// openMu serializes the load-then-open race on first access.
	openMu sync.Mutex
}

func NewDraftStore(acc *draft.Accumulator, repo repository.DraftRepository) *DraftStore {
	return &DraftStore{acc: acc, repo: repo}
}

func (s *DraftStore) Accumulator() *draft.Accumulator { return s.acc }

// Ensure returns the live snapshot for the draft, opening it from storage
// when it is not yet in memory.
func (s *DraftStore) Ensure(ctx context.Context, id uuid.UUID) (*draft.ContractDraft, error) {
	if d, ok := s.acc.Snapshot(id); ok {
		return d, nil
	}

	s.openMu.Lock()
	defer s.openMu.Unlock()
	if d, ok := s.acc.Snapshot(id); ok {
		return d, nil
	}
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.acc.Open(d)
	snap, _ := s.acc.Snapshot(id)
	return snap, nil
}

// SaveSnapshot persists the current in-memory state of the draft.
func (s *DraftStore) SaveSnapshot(ctx context.Context, id uuid.UUID) error {
	d, ok := s.acc.Snapshot(id)
	if !ok {
		return nil // nothing in memory to persist
	}
	return s.repo.Save(ctx, d)
}
