package draft

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/pcaldeira/contractdraft/constants"
)

// Source tags where a field's current value came from.
type Source string

const (
	SourceExtraction Source = "extraction"
	SourceManual     Source = "manual"
)

// FieldSet pairs canonical fields with per-field provenance. The manual
// flag is what makes the merge invariant structurally enforceable: a
// manual-sourced field is never overwritten by extraction.
type FieldSet struct {
	Fields     CanonicalFields     `json:"fields"`
	Provenance map[FieldKey]Source `json:"provenance,omitempty"`
}

// Merge applies extraction output. Only fields that are absent or still
// extraction-sourced are overwritten; applying the same fields twice is a
// no-op after the first application. Returns whether anything changed.
func (fs *FieldSet) Merge(incoming CanonicalFields) bool {
	changed := false
	for _, key := range AllKeys() {
		val := incoming.Get(key)
		if val == "" {
			continue
		}
		if fs.Provenance[key] == SourceManual {
			continue
		}
		if fs.Fields.Get(key) != val {
			fs.Fields.Set(key, val)
			changed = true
		}
		fs.setProvenance(key, SourceExtraction)
	}
	return changed
}

// SetManual records a user edit. An empty value clears the field entirely,
// returning it to "not yet known" so a later extraction may fill it again.
func (fs *FieldSet) SetManual(key FieldKey, value string) {
	if !IsCanonical(key) {
		return
	}
	fs.Fields.Set(key, value)
	if value == "" {
		delete(fs.Provenance, key)
		return
	}
	fs.setProvenance(key, SourceManual)
}

// Value returns the current value for a key.
func (fs *FieldSet) Value(key FieldKey) string {
	return fs.Fields.Get(key)
}

func (fs *FieldSet) setProvenance(key FieldKey, src Source) {
	if fs.Provenance == nil {
		fs.Provenance = make(map[FieldKey]Source)
	}
	fs.Provenance[key] = src
}

func (fs *FieldSet) clone() FieldSet {
	out := FieldSet{Fields: fs.Fields}
	if fs.Provenance != nil {
		out.Provenance = make(map[FieldKey]Source, len(fs.Provenance))
		for k, v := range fs.Provenance {
			out.Provenance[k] = v
		}
	}
	return out
}

// PartnerDraft is one participant's working data.
type PartnerDraft struct {
	Index int `json:"index"`
	FieldSet
}

// ContractDraft is the accumulating, editable record of one contract prior
// to document generation. The pipeline never deletes drafts; that is a
// storage-layer concern.
type ContractDraft struct {
	ID        uuid.UUID             `json:"id"`
	Name      string                `json:"name"`
	Status    constants.DraftStatus `json:"status"`
	Partners  []*PartnerDraft       `json:"partners"`
	Company   FieldSet              `json:"company"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// NewContractDraft creates an empty draft with the given partner slots.
func NewContractDraft(name string, partnerCount int) *ContractDraft {
	if partnerCount < 1 {
		partnerCount = 1
	}
	partners := make([]*PartnerDraft, partnerCount)
	for i := range partners {
		partners[i] = &PartnerDraft{Index: i}
	}
	now := time.Now().UTC()
	return &ContractDraft{
		ID:        uuid.New(),
		Name:      name,
		Status:    constants.DraftStatusDraft,
		Partners:  partners,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Partner returns the partner at index, or nil if out of range.
func (d *ContractDraft) Partner(index int) *PartnerDraft {
	if index < 0 || index >= len(d.Partners) {
		return nil
	}
	return d.Partners[index]
}

// Clone deep-copies the draft so snapshots can leave the accumulator's
// locks behind.
func (d *ContractDraft) Clone() *ContractDraft {
	out := &ContractDraft{
		ID:        d.ID,
		Name:      d.Name,
		Status:    d.Status,
		Company:   d.Company.clone(),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	out.Partners = make([]*PartnerDraft, len(d.Partners))
	for i, p := range d.Partners {
		out.Partners[i] = &PartnerDraft{Index: p.Index, FieldSet: p.clone()}
	}
	return out
}

var requiredPartnerKeys = []FieldKey{
	KeyFullName, KeyNationality, KeyMaritalStatus, KeyProfession,
	KeyBirthDate, KeyDocumentNumber, KeyStreet, KeyCity, KeyPostalCode,
}

var requiredCompanyKeys = []FieldKey{
	KeyLegalName, KeyBusinessObject, KeyCNAEList,
	KeyIncorporationDate, KeyCapital, KeyStreet, KeyCity,
}

// MissingFields lists what still blocks finalization, as
// "partner_<i>_<key>" and "company_<key>" labels.
func (d *ContractDraft) MissingFields() []string {
	var missing []string
	if len(d.Partners) == 0 {
		missing = append(missing, "no_partners_added")
	}
	for _, p := range d.Partners {
		for _, key := range requiredPartnerKeys {
			if p.Value(key) == "" {
				missing = append(missing, "partner_"+strconv.Itoa(p.Index)+"_"+string(key))
			}
		}
	}
	for _, key := range requiredCompanyKeys {
		if d.Company.Value(key) == "" {
			missing = append(missing, "company_"+string(key))
		}
	}
	return missing
}

// IsComplete reports whether the draft can be finalized.
func (d *ContractDraft) IsComplete() bool {
	return len(d.MissingFields()) == 0
}
