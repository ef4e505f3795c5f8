// Code generated by ent, DO NOT EDIT.

package draftdocument

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the draftdocument type in the database.
	Label = "draft_document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDraftID holds the string denoting the draft_id field in the database.
	FieldDraftID = "draft_id"
	// FieldPartnerPosition holds the string denoting the partner_position field in the database.
	FieldPartnerPosition = "partner_position"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldSourcePath holds the string denoting the source_path field in the database.
	FieldSourcePath = "source_path"
	// FieldFileExt holds the string denoting the file_ext field in the database.
	FieldFileExt = "file_ext"
	// FieldContentHash holds the string denoting the content_hash field in the database.
	FieldContentHash = "content_hash"
	// FieldDocumentClass holds the string denoting the document_class field in the database.
	FieldDocumentClass = "document_class"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldUploadedAt holds the string denoting the uploaded_at field in the database.
	FieldUploadedAt = "uploaded_at"
	// FieldProcessedAt holds the string denoting the processed_at field in the database.
	FieldProcessedAt = "processed_at"
	// EdgeDraft holds the string denoting the draft edge name in mutations.
	EdgeDraft = "draft"
	// Table holds the table name of the draftdocument in the database.
	Table = "draft_documents"
	// DraftTable is the table that holds the draft relation/edge.
	DraftTable = "draft_documents"
	// DraftInverseTable is the table name for the ContractDraft entity.
	// It exists in this package in order to avoid circular dependency with the "contractdraft" package.
	DraftInverseTable = "contract_drafts"
	// DraftColumn is the table column denoting the draft relation/edge.
	DraftColumn = "draft_id"
)

// Columns holds all SQL columns for draftdocument fields.
var Columns = []string{
	FieldID,
	FieldDraftID,
	FieldPartnerPosition,
	FieldRole,
	FieldFilename,
	FieldSourcePath,
	FieldFileExt,
	FieldContentHash,
	FieldDocumentClass,
	FieldProvider,
	FieldAttempts,
	FieldStatus,
	FieldErrorMessage,
	FieldUploadedAt,
	FieldProcessedAt,
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
	// DefaultPartnerPosition holds the default value on creation for the "partner_position" field.
	DefaultPartnerPosition int
	// RoleValidator is a validator for the "role" field. It is called by the builders before save.
	RoleValidator func(string) error
	// FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	FilenameValidator func(string) error
	// SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	SourcePathValidator func(string) error
	// FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	FileExtValidator func(string) error
	// ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	ContentHashValidator func([]byte) error
	// DefaultAttempts holds the default value on creation for the "attempts" field.
	DefaultAttempts int
	// DefaultUploadedAt holds the default value on creation for the "uploaded_at" field.
	DefaultUploadedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the DraftDocument queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDraftID orders the results by the draft_id field.
func ByDraftID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDraftID, opts...).ToFunc()
}

// ByPartnerPosition orders the results by the partner_position field.
func ByPartnerPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPartnerPosition, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByFilename orders the results by the filename field.
func ByFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilename, opts...).ToFunc()
}

// BySourcePath orders the results by the source_path field.
func BySourcePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourcePath, opts...).ToFunc()
}

// ByFileExt orders the results by the file_ext field.
func ByFileExt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileExt, opts...).ToFunc()
}

// ByDocumentClass orders the results by the document_class field.
func ByDocumentClass(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentClass, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByUploadedAt orders the results by the uploaded_at field.
func ByUploadedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadedAt, opts...).ToFunc()
}

// ByProcessedAt orders the results by the processed_at field.
func ByProcessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedAt, opts...).ToFunc()
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
