package draft

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/pcaldeira/contractdraft/constants"
)

// Accumulator holds the drafts that currently accept extraction merges.
// Merges for one partner are serialized with that partner's own lock, so
// unrelated partners never contend; the company fields have their own
// lock. Merging into a draft that was never opened, or was closed while
// extractions were in flight, is a deliberate no-op.
type Accumulator struct {
	mu     sync.RWMutex
	active map[uuid.UUID]*draftState
	logger *slog.Logger
}

type draftState struct {
	draft     *ContractDraft
	partnerMu []sync.Mutex
	companyMu sync.Mutex
}

func NewAccumulator(logger *slog.Logger) *Accumulator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Accumulator{
		active: make(map[uuid.UUID]*draftState),
		logger: logger,
	}
}

// Open registers a draft for merging. Re-opening the same id replaces the
// working copy (load-from-storage wins).
func (a *Accumulator) Open(d *ContractDraft) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.active[d.ID] = &draftState{
		draft:     d,
		partnerMu: make([]sync.Mutex, len(d.Partners)),
	}
}

// Close discards the working copy. In-flight extractions for this draft
// will finish but their merges become no-ops.
func (a *Accumulator) Close(id uuid.UUID) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.active, id)
}

// MergePartner merges extraction output into one partner's fields.
// Reports whether the draft accepted the merge.
func (a *Accumulator) MergePartner(id uuid.UUID, partnerIndex int, fields CanonicalFields) bool {
	st := a.state(id)
	if st == nil {
		a.logger.Debug("merge into absent draft dropped", "draft_id", id, "partner", partnerIndex)
		return false
	}
	if partnerIndex < 0 || partnerIndex >= len(st.partnerMu) {
		a.logger.Warn("merge for unknown partner dropped", "draft_id", id, "partner", partnerIndex)
		return false
	}
	st.partnerMu[partnerIndex].Lock()
	defer st.partnerMu[partnerIndex].Unlock()
	if st.draft.Status == constants.DraftStatusFinalized {
		a.logger.Debug("merge into finalized draft dropped", "draft_id", id, "partner", partnerIndex)
		return false
	}
	st.draft.Partners[partnerIndex].Merge(fields)
	return true
}

// MergeCompany merges extraction output into the company fields.
func (a *Accumulator) MergeCompany(id uuid.UUID, fields CanonicalFields) bool {
	st := a.state(id)
	if st == nil {
		a.logger.Debug("company merge into absent draft dropped", "draft_id", id)
		return false
	}
	st.companyMu.Lock()
	defer st.companyMu.Unlock()
	if st.draft.Status == constants.DraftStatusFinalized {
		a.logger.Debug("company merge into finalized draft dropped", "draft_id", id)
		return false
	}
	st.draft.Company.Merge(fields)
	return true
}

// SetManualPartner records a user edit on one partner field.
func (a *Accumulator) SetManualPartner(id uuid.UUID, partnerIndex int, key FieldKey, value string) bool {
	st := a.state(id)
	if st == nil || partnerIndex < 0 || partnerIndex >= len(st.partnerMu) {
		return false
	}
	st.partnerMu[partnerIndex].Lock()
	defer st.partnerMu[partnerIndex].Unlock()
	if st.draft.Status == constants.DraftStatusFinalized {
		return false
	}
	st.draft.Partners[partnerIndex].SetManual(key, value)
	return true
}

// SetManualCompany records a user edit on one company field.
func (a *Accumulator) SetManualCompany(id uuid.UUID, key FieldKey, value string) bool {
	st := a.state(id)
	if st == nil {
		return false
	}
	st.companyMu.Lock()
	defer st.companyMu.Unlock()
	if st.draft.Status == constants.DraftStatusFinalized {
		return false
	}
	st.draft.Company.SetManual(key, value)
	return true
}

// Snapshot deep-copies the current draft state for persistence or
// rendering, without holding any partner lock afterwards.
func (a *Accumulator) Snapshot(id uuid.UUID) (*ContractDraft, bool) {
	st := a.state(id)
	if st == nil {
		return nil, false
	}
	for i := range st.partnerMu {
		st.partnerMu[i].Lock()
	}
	st.companyMu.Lock()
	clone := st.draft.Clone()
	st.companyMu.Unlock()
	for i := range st.partnerMu {
		st.partnerMu[i].Unlock()
	}
	return clone, true
}

func (a *Accumulator) state(id uuid.UUID) *draftState {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.active[id]
}
