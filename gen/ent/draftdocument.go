// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/pcaldeira/contractdraft/gen/ent/contractdraft"
	"github.com/pcaldeira/contractdraft/gen/ent/draftdocument"
)

// DraftDocument is the model entity for the DraftDocument schema.
type DraftDocument struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DraftID holds the value of the "draft_id" field.
	DraftID uuid.UUID `json:"draft_id,omitempty"`
	// PartnerPosition holds the value of the "partner_position" field.
	PartnerPosition int `json:"partner_position,omitempty"`
	// Role holds the value of the "role" field.
	Role string `json:"role,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// SourcePath holds the value of the "source_path" field.
	SourcePath string `json:"source_path,omitempty"`
	// FileExt holds the value of the "file_ext" field.
	FileExt string `json:"file_ext,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash []byte `json:"content_hash,omitempty"`
	// DocumentClass holds the value of the "document_class" field.
	DocumentClass *string `json:"document_class,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider *string `json:"provider,omitempty"`
	// Attempts holds the value of the "attempts" field.
	Attempts int `json:"attempts,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// ProcessedAt holds the value of the "processed_at" field.
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DraftDocumentQuery when eager-loading is set.
	Edges        DraftDocumentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DraftDocumentEdges holds the relations/edges for other nodes in the graph.
type DraftDocumentEdges struct {
	// Draft holds the value of the draft edge.
	Draft *ContractDraft `json:"draft,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DraftOrErr returns the Draft value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DraftDocumentEdges) DraftOrErr() (*ContractDraft, error) {
	if e.Draft != nil {
		return e.Draft, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: contractdraft.Label}
	}
	return nil, &NotLoadedError{edge: "draft"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DraftDocument) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case draftdocument.FieldContentHash:
			values[i] = new([]byte)
		case draftdocument.FieldPartnerPosition, draftdocument.FieldAttempts:
			values[i] = new(sql.NullInt64)
		case draftdocument.FieldRole, draftdocument.FieldFilename, draftdocument.FieldSourcePath, draftdocument.FieldFileExt, draftdocument.FieldDocumentClass, draftdocument.FieldProvider, draftdocument.FieldStatus, draftdocument.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case draftdocument.FieldUploadedAt, draftdocument.FieldProcessedAt:
			values[i] = new(sql.NullTime)
		case draftdocument.FieldID, draftdocument.FieldDraftID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DraftDocument fields.
func (_m *DraftDocument) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case draftdocument.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case draftdocument.FieldDraftID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field draft_id", values[i])
			} else if value != nil {
				_m.DraftID = *value
			}
		case draftdocument.FieldPartnerPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field partner_position", values[i])
			} else if value.Valid {
				_m.PartnerPosition = int(value.Int64)
			}
		case draftdocument.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = value.String
			}
		case draftdocument.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case draftdocument.FieldSourcePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_path", values[i])
			} else if value.Valid {
				_m.SourcePath = value.String
			}
		case draftdocument.FieldFileExt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_ext", values[i])
			} else if value.Valid {
				_m.FileExt = value.String
			}
		case draftdocument.FieldContentHash:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value != nil {
				_m.ContentHash = *value
			}
		case draftdocument.FieldDocumentClass:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_class", values[i])
			} else if value.Valid {
				_m.DocumentClass = new(string)
				*_m.DocumentClass = value.String
			}
		case draftdocument.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = new(string)
				*_m.Provider = value.String
			}
		case draftdocument.FieldAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value.Valid {
				_m.Attempts = int(value.Int64)
			}
		case draftdocument.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case draftdocument.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case draftdocument.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		case draftdocument.FieldProcessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field processed_at", values[i])
			} else if value.Valid {
				_m.ProcessedAt = new(time.Time)
				*_m.ProcessedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DraftDocument.
// This includes values selected through modifiers, order, etc.
func (_m *DraftDocument) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDraft queries the "draft" edge of the DraftDocument entity.
func (_m *DraftDocument) QueryDraft() *ContractDraftQuery {
	return NewDraftDocumentClient(_m.config).QueryDraft(_m)
}

// Update returns a builder for updating this DraftDocument.
// Note that you need to call DraftDocument.Unwrap() before calling this method if this DraftDocument
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DraftDocument) Update() *DraftDocumentUpdateOne {
	return NewDraftDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DraftDocument entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DraftDocument) Unwrap() *DraftDocument {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DraftDocument is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DraftDocument) String() string {
	var builder strings.Builder
	builder.WriteString("DraftDocument(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("draft_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DraftID))
	builder.WriteString(", ")
	builder.WriteString("partner_position=")
	builder.WriteString(fmt.Sprintf("%v", _m.PartnerPosition))
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(_m.Role)
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("source_path=")
	builder.WriteString(_m.SourcePath)
	builder.WriteString(", ")
	builder.WriteString("file_ext=")
	builder.WriteString(_m.FileExt)
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentHash))
	builder.WriteString(", ")
	if v := _m.DocumentClass; v != nil {
		builder.WriteString("document_class=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Provider; v != nil {
		builder.WriteString("provider=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ProcessedAt; v != nil {
		builder.WriteString("processed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// DraftDocuments is a parsable slice of DraftDocument.
type DraftDocuments []*DraftDocument
