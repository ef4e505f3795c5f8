package draft

import (
	"reflect"
	"testing"
)

func TestMergeFillsEmptyFields(t *testing.T) {
	var fs FieldSet
	changed := fs.Merge(CanonicalFields{FullName: "Maria Silva", City: "Florianópolis"})
	if !changed {
		t.Fatal("merge into empty set should report a change")
	}
	if got := fs.Value(KeyFullName); got != "Maria Silva" {
		t.Errorf("full_name = %q", got)
	}
	if fs.Provenance[KeyFullName] != SourceExtraction {
		t.Errorf("provenance = %q, want extraction", fs.Provenance[KeyFullName])
	}
}

func TestMergeIsIdempotent(t *testing.T) {
	var fs FieldSet
	in := CanonicalFields{FullName: "Maria Silva", BirthDate: "1990-05-01"}
	fs.Merge(in)
	before := fs.clone()

	if changed := fs.Merge(in); changed {
		t.Error("re-merging identical fields reported a change")
	}
	if !reflect.DeepEqual(fs.Fields, before.Fields) {
		t.Error("re-merge mutated the field values")
	}
	if !reflect.DeepEqual(fs.Provenance, before.Provenance) {
		t.Error("re-merge mutated the provenance")
	}
}

func TestMergeNeverOverwritesManual(t *testing.T) {
	var fs FieldSet
	fs.SetManual(KeyFullName, "Maria de Souza Silva")

	fs.Merge(CanonicalFields{FullName: "MARIA SILVA", City: "Florianópolis"})
	if got := fs.Value(KeyFullName); got != "Maria de Souza Silva" {
		t.Errorf("manual value lost to extraction: %q", got)
	}
	if fs.Provenance[KeyFullName] != SourceManual {
		t.Error("manual provenance was downgraded")
	}
	if got := fs.Value(KeyCity); got != "Florianópolis" {
		t.Errorf("untouched field did not merge: city = %q", got)
	}
}

func TestMergeSkipsEmptyIncoming(t *testing.T) {
	var fs FieldSet
	fs.Merge(CanonicalFields{FullName: "Maria Silva"})

	// A later extraction with no value for the key must not clear it.
	fs.Merge(CanonicalFields{City: "Florianópolis"})
	if got := fs.Value(KeyFullName); got != "Maria Silva" {
		t.Errorf("empty incoming value cleared the field: %q", got)
	}
}

func TestSetManualClearReopensField(t *testing.T) {
	var fs FieldSet
	fs.SetManual(KeyProfession, "engenheira")
	fs.SetManual(KeyProfession, "")

	if got := fs.Value(KeyProfession); got != "" {
		t.Fatalf("cleared field still has %q", got)
	}
	if _, ok := fs.Provenance[KeyProfession]; ok {
		t.Fatal("cleared field kept its provenance entry")
	}

	// Extraction may now fill it again.
	fs.Merge(CanonicalFields{Profession: "empresária"})
	if got := fs.Value(KeyProfession); got != "empresária" {
		t.Errorf("profession = %q after re-merge", got)
	}
}

func TestSetManualRejectsUnknownKey(t *testing.T) {
	var fs FieldSet
	fs.SetManual(FieldKey("favorite_color"), "blue")
	if fs.Provenance != nil {
		t.Error("unknown key produced a provenance entry")
	}
}

func TestNewContractDraftPartnerFloor(t *testing.T) {
	d := NewContractDraft("acme", 0)
	if len(d.Partners) != 1 {
		t.Fatalf("partner count = %d, want floor of 1", len(d.Partners))
	}
	if d.Partner(0) == nil || d.Partner(1) != nil || d.Partner(-1) != nil {
		t.Error("Partner() bounds checks are off")
	}
}

func TestMissingFieldsAndCompletion(t *testing.T) {
	d := NewContractDraft("acme", 1)
	if d.IsComplete() {
		t.Fatal("empty draft reported complete")
	}

	missing := d.MissingFields()
	found := map[string]bool{}
	for _, m := range missing {
		found[m] = true
	}
	if !found["partner_0_full_name"] {
		t.Errorf("missing list lacks partner_0_full_name: %v", missing)
	}
	if !found["company_legal_name"] {
		t.Errorf("missing list lacks company_legal_name: %v", missing)
	}

	p := d.Partner(0)
	for _, key := range requiredPartnerKeys {
		p.SetManual(key, "x")
	}
	for _, key := range requiredCompanyKeys {
		d.Company.SetManual(key, "x")
	}
	if !d.IsComplete() {
		t.Fatalf("draft with all required fields still missing %v", d.MissingFields())
	}
}

func TestCloneIsDeep(t *testing.T) {
	d := NewContractDraft("acme", 2)
	d.Partner(0).SetManual(KeyFullName, "Maria Silva")
	d.Company.SetManual(KeyLegalName, "Acme Ltda")

	c := d.Clone()
	c.Partner(0).SetManual(KeyFullName, "changed")
	c.Company.SetManual(KeyLegalName, "changed")

	if got := d.Partner(0).Value(KeyFullName); got != "Maria Silva" {
		t.Errorf("clone shares partner state: %q", got)
	}
	if got := d.Company.Value(KeyLegalName); got != "Acme Ltda" {
		t.Errorf("clone shares company state: %q", got)
	}
}
