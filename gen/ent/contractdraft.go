// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/pcaldeira/contractdraft/gen/ent/contractdraft"
)

// ContractDraft is the model entity for the ContractDraft schema.
type ContractDraft struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// CompanyFields holds the value of the "company_fields" field.
	CompanyFields map[string]string `json:"company_fields,omitempty"`
	// CompanyProvenance holds the value of the "company_provenance" field.
	CompanyProvenance map[string]string `json:"company_provenance,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ContractDraftQuery when eager-loading is set.
	Edges        ContractDraftEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ContractDraftEdges holds the relations/edges for other nodes in the graph.
type ContractDraftEdges struct {
	// Partners holds the value of the partners edge.
	Partners []*Partner `json:"partners,omitempty"`
	// Documents holds the value of the documents edge.
	Documents []*DraftDocument `json:"documents,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PartnersOrErr returns the Partners value or an error if the edge
// was not loaded in eager-loading.
func (e ContractDraftEdges) PartnersOrErr() ([]*Partner, error) {
	if e.loadedTypes[0] {
		return e.Partners, nil
	}
	return nil, &NotLoadedError{edge: "partners"}
}

// DocumentsOrErr returns the Documents value or an error if the edge
// was not loaded in eager-loading.
func (e ContractDraftEdges) DocumentsOrErr() ([]*DraftDocument, error) {
	if e.loadedTypes[1] {
		return e.Documents, nil
	}
	return nil, &NotLoadedError{edge: "documents"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ContractDraft) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contractdraft.FieldCompanyFields, contractdraft.FieldCompanyProvenance:
			values[i] = new([]byte)
		case contractdraft.FieldName, contractdraft.FieldStatus:
			values[i] = new(sql.NullString)
		case contractdraft.FieldCreatedAt, contractdraft.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case contractdraft.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ContractDraft fields.
func (_m *ContractDraft) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contractdraft.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case contractdraft.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case contractdraft.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case contractdraft.FieldCompanyFields:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field company_fields", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CompanyFields); err != nil {
					return fmt.Errorf("unmarshal field company_fields: %w", err)
				}
			}
		case contractdraft.FieldCompanyProvenance:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field company_provenance", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CompanyProvenance); err != nil {
					return fmt.Errorf("unmarshal field company_provenance: %w", err)
				}
			}
		case contractdraft.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case contractdraft.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ContractDraft.
// This includes values selected through modifiers, order, etc.
func (_m *ContractDraft) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPartners queries the "partners" edge of the ContractDraft entity.
func (_m *ContractDraft) QueryPartners() *PartnerQuery {
	return NewContractDraftClient(_m.config).QueryPartners(_m)
}

// QueryDocuments queries the "documents" edge of the ContractDraft entity.
func (_m *ContractDraft) QueryDocuments() *DraftDocumentQuery {
	return NewContractDraftClient(_m.config).QueryDocuments(_m)
}

// Update returns a builder for updating this ContractDraft.
// Note that you need to call ContractDraft.Unwrap() before calling this method if this ContractDraft
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ContractDraft) Update() *ContractDraftUpdateOne {
	return NewContractDraftClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ContractDraft entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ContractDraft) Unwrap() *ContractDraft {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ContractDraft is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ContractDraft) String() string {
	var builder strings.Builder
	builder.WriteString("ContractDraft(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("company_fields=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompanyFields))
	builder.WriteString(", ")
	builder.WriteString("company_provenance=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompanyProvenance))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ContractDrafts is a parsable slice of ContractDraft.
type ContractDrafts []*ContractDraft
