package constants

// DraftStatus is the canonical status for rows in contract_draft.
type DraftStatus string

// Stable values (store these exact strings in DB).
const (
	DraftStatusDraft     DraftStatus = "DRAFT"     // editable, extraction may still run
	DraftStatusFinalized DraftStatus = "FINALIZED" // document generated
)

// DraftStatuses holds the allowed values for the status field.
var DraftStatuses = []string{string(DraftStatusDraft), string(DraftStatusFinalized)}
