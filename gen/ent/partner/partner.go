// Code generated by ent, DO NOT EDIT.

package partner

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the partner type in the database.
	Label = "partner"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDraftID holds the string denoting the draft_id field in the database.
	FieldDraftID = "draft_id"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldFields holds the string denoting the fields field in the database.
	FieldFields = "fields"
	// FieldProvenance holds the string denoting the provenance field in the database.
	FieldProvenance = "provenance"
	// EdgeDraft holds the string denoting the draft edge name in mutations.
	EdgeDraft = "draft"
	// Table holds the table name of the partner in the database.
	Table = "draft_partners"
	// DraftTable is the table that holds the draft relation/edge.
	DraftTable = "draft_partners"
	// DraftInverseTable is the table name for the ContractDraft entity.
	// It exists in this package in order to avoid circular dependency with the "contractdraft" package.
	DraftInverseTable = "contract_drafts"
	// DraftColumn is the table column denoting the draft relation/edge.
	DraftColumn = "draft_id"
)

// Columns holds all SQL columns for partner fields.
var Columns = []string{
	FieldID,
	FieldDraftID,
	FieldPosition,
	FieldFields,
	FieldProvenance,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// PositionValidator is a validator for the "position" field. It is called by the builders before save.
	PositionValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Partner queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDraftID orders the results by the draft_id field.
func ByDraftID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDraftID, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByDraftField orders the results by draft field.
func ByDraftField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDraftStep(), sql.OrderByField(field, opts...))
	}
}
func newDraftStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DraftInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DraftTable, DraftColumn),
	)
}
