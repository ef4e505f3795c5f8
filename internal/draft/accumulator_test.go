package draft

import (
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/pcaldeira/contractdraft/constants"
)

func newTestAccumulator() *Accumulator {
	return NewAccumulator(slog.New(slog.DiscardHandler))
}

func TestAccumulatorMergeAndSnapshot(t *testing.T) {
	acc := newTestAccumulator()
	d := NewContractDraft("acme", 2)
	acc.Open(d)

	if !acc.MergePartner(d.ID, 0, CanonicalFields{FullName: "Maria Silva"}) {
		t.Fatal("merge into open draft rejected")
	}
	if !acc.MergeCompany(d.ID, CanonicalFields{LegalName: "Acme Ltda"}) {
		t.Fatal("company merge into open draft rejected")
	}

	snap, ok := acc.Snapshot(d.ID)
	if !ok {
		t.Fatal("snapshot of open draft missing")
	}
	if got := snap.Partner(0).Value(KeyFullName); got != "Maria Silva" {
		t.Errorf("partner 0 full_name = %q", got)
	}
	if got := snap.Company.Value(KeyLegalName); got != "Acme Ltda" {
		t.Errorf("company legal_name = %q", got)
	}

	// The snapshot must be detached from the working copy.
	snap.Partner(0).SetManual(KeyFullName, "changed")
	again, _ := acc.Snapshot(d.ID)
	if got := again.Partner(0).Value(KeyFullName); got != "Maria Silva" {
		t.Errorf("snapshot aliases accumulator state: %q", got)
	}
}

func TestAccumulatorMergeIntoAbsentDraft(t *testing.T) {
	acc := newTestAccumulator()
	id := uuid.New()

	if acc.MergePartner(id, 0, CanonicalFields{FullName: "x"}) {
		t.Error("merge into never-opened draft accepted")
	}
	if acc.MergeCompany(id, CanonicalFields{LegalName: "x"}) {
		t.Error("company merge into never-opened draft accepted")
	}
	if _, ok := acc.Snapshot(id); ok {
		t.Error("snapshot of never-opened draft exists")
	}
}

func TestAccumulatorCloseDropsInFlightMerges(t *testing.T) {
	acc := newTestAccumulator()
	d := NewContractDraft("acme", 1)
	acc.Open(d)
	acc.Close(d.ID)

	if acc.MergePartner(d.ID, 0, CanonicalFields{FullName: "x"}) {
		t.Error("merge into closed draft accepted")
	}
	if acc.SetManualPartner(d.ID, 0, KeyFullName, "x") {
		t.Error("edit on closed draft accepted")
	}
}

func TestAccumulatorRejectsUnknownPartner(t *testing.T) {
	acc := newTestAccumulator()
	d := NewContractDraft("acme", 2)
	acc.Open(d)

	if acc.MergePartner(d.ID, 5, CanonicalFields{FullName: "x"}) {
		t.Error("merge for out-of-range partner accepted")
	}
	if acc.MergePartner(d.ID, -1, CanonicalFields{FullName: "x"}) {
		t.Error("merge for negative partner accepted")
	}
}

func TestFinalizedDraftRejectsMutation(t *testing.T) {
	acc := newTestAccumulator()
	d := NewContractDraft("acme", 1)
	d.Status = constants.DraftStatusFinalized
	acc.Open(d)

	if acc.MergePartner(d.ID, 0, CanonicalFields{FullName: "x"}) {
		t.Error("merge into finalized draft accepted")
	}
	if acc.MergeCompany(d.ID, CanonicalFields{LegalName: "x"}) {
		t.Error("company merge into finalized draft accepted")
	}
	if acc.SetManualPartner(d.ID, 0, KeyFullName, "x") {
		t.Error("partner edit on finalized draft accepted")
	}
	if acc.SetManualCompany(d.ID, KeyLegalName, "x") {
		t.Error("company edit on finalized draft accepted")
	}

	snap, ok := acc.Snapshot(d.ID)
	if !ok {
		t.Fatal("finalized draft should still snapshot for reads")
	}
	if got := snap.Partner(0).Value(KeyFullName); got != "" {
		t.Errorf("finalized draft mutated: %q", got)
	}
}

func TestAccumulatorConcurrentMerges(t *testing.T) {
	acc := newTestAccumulator()
	d := NewContractDraft("acme", 4)
	acc.Open(d)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		for g := 0; g < 8; g++ {
			wg.Add(1)
			go func(partner, n int) {
				defer wg.Done()
				acc.MergePartner(d.ID, partner, CanonicalFields{
					FullName: fmt.Sprintf("partner-%d", partner),
					City:     "Florianópolis",
				})
			}(i, g)
		}
	}
	wg.Wait()

	snap, _ := acc.Snapshot(d.ID)
	for i := 0; i < 4; i++ {
		want := fmt.Sprintf("partner-%d", i)
		if got := snap.Partner(i).Value(KeyFullName); got != want {
			t.Errorf("partner %d full_name = %q, want %q", i, got, want)
		}
	}
}

func TestReopenReplacesWorkingCopy(t *testing.T) {
	acc := newTestAccumulator()
	d := NewContractDraft("acme", 1)
	acc.Open(d)
	acc.MergePartner(d.ID, 0, CanonicalFields{FullName: "stale"})

	fresh := d.Clone()
	fresh.Partner(0).SetManual(KeyFullName, "from storage")
	acc.Open(fresh)

	snap, _ := acc.Snapshot(d.ID)
	if got := snap.Partner(0).Value(KeyFullName); got != "from storage" {
		t.Errorf("re-open did not replace working copy: %q", got)
	}
}
