// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/pcaldeira/contractdraft/gen/ent/contractdraft"
	"github.com/pcaldeira/contractdraft/gen/ent/draftdocument"
	"github.com/pcaldeira/contractdraft/gen/ent/predicate"
)

// DraftDocumentUpdate is the builder for updating DraftDocument entities.
type DraftDocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DraftDocumentMutation
}

// Where appends a list predicates to the DraftDocumentUpdate builder.
func (_u *DraftDocumentUpdate) Where(ps ...predicate.DraftDocument) *DraftDocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDraftID sets the "draft_id" field.
func (_u *DraftDocumentUpdate) SetDraftID(v uuid.UUID) *DraftDocumentUpdate {
	_u.mutation.SetDraftID(v)
	return _u
}

// SetNillableDraftID sets the "draft_id" field if the given value is not nil.
func (_u *DraftDocumentUpdate) SetNillableDraftID(v *uuid.UUID) *DraftDocumentUpdate {
	if v != nil {
		_u.SetDraftID(*v)
	}
	return _u
}

// SetPartnerPosition sets the "partner_position" field.
func (_u *DraftDocumentUpdate) SetPartnerPosition(v int) *DraftDocumentUpdate {
	_u.mutation.ResetPartnerPosition()
	_u.mutation.SetPartnerPosition(v)
	return _u
}

// SetNillablePartnerPosition sets the "partner_position" field if the given value is not nil.
func (_u *DraftDocumentUpdate) SetNillablePartnerPosition(v *int) *DraftDocumentUpdate {
	if v != nil {
		_u.SetPartnerPosition(*v)
	}
	return _u
}

// AddPartnerPosition adds value to the "partner_position" field.
func (_u *DraftDocumentUpdate) AddPartnerPosition(v int) *DraftDocumentUpdate {
	_u.mutation.AddPartnerPosition(v)
	return _u
}

// SetRole sets the "role" field.
func (_u *DraftDocumentUpdate) SetRole(v string) *DraftDocumentUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *DraftDocumentUpdate) SetNillableRole(v *string) *DraftDocumentUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *DraftDocumentUpdate) SetFilename(v string) *DraftDocumentUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DraftDocumentUpdate) SetNillableFilename(v *string) *DraftDocumentUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *DraftDocumentUpdate) SetSourcePath(v string) *DraftDocumentUpdate {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *DraftDocumentUpdate) SetNillableSourcePath(v *string) *DraftDocumentUpdate {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *DraftDocumentUpdate) SetFileExt(v string) *DraftDocumentUpdate {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *DraftDocumentUpdate) SetNillableFileExt(v *string) *DraftDocumentUpdate {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *DraftDocumentUpdate) SetContentHash(v []byte) *DraftDocumentUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetDocumentClass sets the "document_class" field.
func (_u *DraftDocumentUpdate) SetDocumentClass(v string) *DraftDocumentUpdate {
	_u.mutation.SetDocumentClass(v)
	return _u
}

// SetNillableDocumentClass sets the "document_class" field if the given value is not nil.
func (_u *DraftDocumentUpdate) SetNillableDocumentClass(v *string) *DraftDocumentUpdate {
	if v != nil {
		_u.SetDocumentClass(*v)
	}
	return _u
}

// ClearDocumentClass clears the value of the "document_class" field.
func (_u *DraftDocumentUpdate) ClearDocumentClass() *DraftDocumentUpdate {
	_u.mutation.ClearDocumentClass()
	return _u
}

// SetProvider sets the "provider" field.
func (_u *DraftDocumentUpdate) SetProvider(v string) *DraftDocumentUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *DraftDocumentUpdate) SetNillableProvider(v *string) *DraftDocumentUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// ClearProvider clears the value of the "provider" field.
func (_u *DraftDocumentUpdate) ClearProvider() *DraftDocumentUpdate {
	_u.mutation.ClearProvider()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *DraftDocumentUpdate) SetAttempts(v int) *DraftDocumentUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *DraftDocumentUpdate) SetNillableAttempts(v *int) *DraftDocumentUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *DraftDocumentUpdate) AddAttempts(v int) *DraftDocumentUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *DraftDocumentUpdate) SetStatus(v string) *DraftDocumentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DraftDocumentUpdate) SetNillableStatus(v *string) *DraftDocumentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *DraftDocumentUpdate) ClearStatus() *DraftDocumentUpdate {
	_u.mutation.ClearStatus()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DraftDocumentUpdate) SetErrorMessage(v string) *DraftDocumentUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DraftDocumentUpdate) SetNillableErrorMessage(v *string) *DraftDocumentUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DraftDocumentUpdate) ClearErrorMessage() *DraftDocumentUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *DraftDocumentUpdate) SetUploadedAt(v time.Time) *DraftDocumentUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *DraftDocumentUpdate) SetNillableUploadedAt(v *time.Time) *DraftDocumentUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *DraftDocumentUpdate) SetProcessedAt(v time.Time) *DraftDocumentUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *DraftDocumentUpdate) SetNillableProcessedAt(v *time.Time) *DraftDocumentUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *DraftDocumentUpdate) ClearProcessedAt() *DraftDocumentUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetDraft sets the "draft" edge to the ContractDraft entity.
func (_u *DraftDocumentUpdate) SetDraft(v *ContractDraft) *DraftDocumentUpdate {
	return _u.SetDraftID(v.ID)
}

// Mutation returns the DraftDocumentMutation object of the builder.
func (_u *DraftDocumentUpdate) Mutation() *DraftDocumentMutation {
	return _u.mutation
}

// ClearDraft clears the "draft" edge to the ContractDraft entity.
func (_u *DraftDocumentUpdate) ClearDraft() *DraftDocumentUpdate {
	_u.mutation.ClearDraft()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DraftDocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DraftDocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DraftDocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DraftDocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DraftDocumentUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := draftdocument.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "DraftDocument.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := draftdocument.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "DraftDocument.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := draftdocument.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "DraftDocument.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := draftdocument.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "DraftDocument.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := draftdocument.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "DraftDocument.content_hash": %w`, err)}
		}
	}
	if _u.mutation.DraftCleared() && len(_u.mutation.DraftIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DraftDocument.draft"`)
	}
	return nil
}

func (_u *DraftDocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(draftdocument.Table, draftdocument.Columns, sqlgraph.NewFieldSpec(draftdocument.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PartnerPosition(); ok {
		_spec.SetField(draftdocument.FieldPartnerPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPartnerPosition(); ok {
		_spec.AddField(draftdocument.FieldPartnerPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(draftdocument.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(draftdocument.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(draftdocument.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(draftdocument.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(draftdocument.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.DocumentClass(); ok {
		_spec.SetField(draftdocument.FieldDocumentClass, field.TypeString, value)
	}
	if _u.mutation.DocumentClassCleared() {
		_spec.ClearField(draftdocument.FieldDocumentClass, field.TypeString)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(draftdocument.FieldProvider, field.TypeString, value)
	}
	if _u.mutation.ProviderCleared() {
		_spec.ClearField(draftdocument.FieldProvider, field.TypeString)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(draftdocument.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(draftdocument.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(draftdocument.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(draftdocument.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(draftdocument.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(draftdocument.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(draftdocument.FieldUploadedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(draftdocument.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(draftdocument.FieldProcessedAt, field.TypeTime)
	}
	if _u.mutation.DraftCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   draftdocument.DraftTable,
			Columns: []string{draftdocument.DraftColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contractdraft.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DraftIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   draftdocument.DraftTable,
			Columns: []string{draftdocument.DraftColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contractdraft.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{draftdocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DraftDocumentUpdateOne is the builder for updating a single DraftDocument entity.
type DraftDocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DraftDocumentMutation
}

// SetDraftID sets the "draft_id" field.
func (_u *DraftDocumentUpdateOne) SetDraftID(v uuid.UUID) *DraftDocumentUpdateOne {
	_u.mutation.SetDraftID(v)
	return _u
}

// SetNillableDraftID sets the "draft_id" field if the given value is not nil.
func (_u *DraftDocumentUpdateOne) SetNillableDraftID(v *uuid.UUID) *DraftDocumentUpdateOne {
	if v != nil {
		_u.SetDraftID(*v)
	}
	return _u
}

// SetPartnerPosition sets the "partner_position" field.
func (_u *DraftDocumentUpdateOne) SetPartnerPosition(v int) *DraftDocumentUpdateOne {
	_u.mutation.ResetPartnerPosition()
	_u.mutation.SetPartnerPosition(v)
	return _u
}

// SetNillablePartnerPosition sets the "partner_position" field if the given value is not nil.
func (_u *DraftDocumentUpdateOne) SetNillablePartnerPosition(v *int) *DraftDocumentUpdateOne {
	if v != nil {
		_u.SetPartnerPosition(*v)
	}
	return _u
}

// AddPartnerPosition adds value to the "partner_position" field.
func (_u *DraftDocumentUpdateOne) AddPartnerPosition(v int) *DraftDocumentUpdateOne {
	_u.mutation.AddPartnerPosition(v)
	return _u
}

// SetRole sets the "role" field.
func (_u *DraftDocumentUpdateOne) SetRole(v string) *DraftDocumentUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *DraftDocumentUpdateOne) SetNillableRole(v *string) *DraftDocumentUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *DraftDocumentUpdateOne) SetFilename(v string) *DraftDocumentUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DraftDocumentUpdateOne) SetNillableFilename(v *string) *DraftDocumentUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *DraftDocumentUpdateOne) SetSourcePath(v string) *DraftDocumentUpdateOne {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *DraftDocumentUpdateOne) SetNillableSourcePath(v *string) *DraftDocumentUpdateOne {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *DraftDocumentUpdateOne) SetFileExt(v string) *DraftDocumentUpdateOne {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *DraftDocumentUpdateOne) SetNillableFileExt(v *string) *DraftDocumentUpdateOne {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *DraftDocumentUpdateOne) SetContentHash(v []byte) *DraftDocumentUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetDocumentClass sets the "document_class" field.
func (_u *DraftDocumentUpdateOne) SetDocumentClass(v string) *DraftDocumentUpdateOne {
	_u.mutation.SetDocumentClass(v)
	return _u
}

// SetNillableDocumentClass sets the "document_class" field if the given value is not nil.
func (_u *DraftDocumentUpdateOne) SetNillableDocumentClass(v *string) *DraftDocumentUpdateOne {
	if v != nil {
		_u.SetDocumentClass(*v)
	}
	return _u
}

// ClearDocumentClass clears the value of the "document_class" field.
func (_u *DraftDocumentUpdateOne) ClearDocumentClass() *DraftDocumentUpdateOne {
	_u.mutation.ClearDocumentClass()
	return _u
}

// SetProvider sets the "provider" field.
func (_u *DraftDocumentUpdateOne) SetProvider(v string) *DraftDocumentUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *DraftDocumentUpdateOne) SetNillableProvider(v *string) *DraftDocumentUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// ClearProvider clears the value of the "provider" field.
func (_u *DraftDocumentUpdateOne) ClearProvider() *DraftDocumentUpdateOne {
	_u.mutation.ClearProvider()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *DraftDocumentUpdateOne) SetAttempts(v int) *DraftDocumentUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *DraftDocumentUpdateOne) SetNillableAttempts(v *int) *DraftDocumentUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *DraftDocumentUpdateOne) AddAttempts(v int) *DraftDocumentUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *DraftDocumentUpdateOne) SetStatus(v string) *DraftDocumentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DraftDocumentUpdateOne) SetNillableStatus(v *string) *DraftDocumentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *DraftDocumentUpdateOne) ClearStatus() *DraftDocumentUpdateOne {
	_u.mutation.ClearStatus()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DraftDocumentUpdateOne) SetErrorMessage(v string) *DraftDocumentUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DraftDocumentUpdateOne) SetNillableErrorMessage(v *string) *DraftDocumentUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DraftDocumentUpdateOne) ClearErrorMessage() *DraftDocumentUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *DraftDocumentUpdateOne) SetUploadedAt(v time.Time) *DraftDocumentUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *DraftDocumentUpdateOne) SetNillableUploadedAt(v *time.Time) *DraftDocumentUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *DraftDocumentUpdateOne) SetProcessedAt(v time.Time) *DraftDocumentUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *DraftDocumentUpdateOne) SetNillableProcessedAt(v *time.Time) *DraftDocumentUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *DraftDocumentUpdateOne) ClearProcessedAt() *DraftDocumentUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetDraft sets the "draft" edge to the ContractDraft entity.
func (_u *DraftDocumentUpdateOne) SetDraft(v *ContractDraft) *DraftDocumentUpdateOne {
	return _u.SetDraftID(v.ID)
}

// Mutation returns the DraftDocumentMutation object of the builder.
func (_u *DraftDocumentUpdateOne) Mutation() *DraftDocumentMutation {
	return _u.mutation
}

// ClearDraft clears the "draft" edge to the ContractDraft entity.
func (_u *DraftDocumentUpdateOne) ClearDraft() *DraftDocumentUpdateOne {
	_u.mutation.ClearDraft()
	return _u
}

// Where appends a list predicates to the DraftDocumentUpdate builder.
func (_u *DraftDocumentUpdateOne) Where(ps ...predicate.DraftDocument) *DraftDocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DraftDocumentUpdateOne) Select(field string, fields ...string) *DraftDocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DraftDocument entity.
func (_u *DraftDocumentUpdateOne) Save(ctx context.Context) (*DraftDocument, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DraftDocumentUpdateOne) SaveX(ctx context.Context) *DraftDocument {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DraftDocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DraftDocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DraftDocumentUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := draftdocument.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "DraftDocument.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := draftdocument.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "DraftDocument.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := draftdocument.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "DraftDocument.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := draftdocument.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "DraftDocument.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := draftdocument.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "DraftDocument.content_hash": %w`, err)}
		}
	}
	if _u.mutation.DraftCleared() && len(_u.mutation.DraftIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DraftDocument.draft"`)
	}
	return nil
}

func (_u *DraftDocumentUpdateOne) sqlSave(ctx context.Context) (_node *DraftDocument, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(draftdocument.Table, draftdocument.Columns, sqlgraph.NewFieldSpec(draftdocument.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DraftDocument.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, draftdocument.FieldID)
		for _, f := range fields {
			if !draftdocument.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != draftdocument.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PartnerPosition(); ok {
		_spec.SetField(draftdocument.FieldPartnerPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPartnerPosition(); ok {
		_spec.AddField(draftdocument.FieldPartnerPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(draftdocument.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(draftdocument.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(draftdocument.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(draftdocument.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(draftdocument.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.DocumentClass(); ok {
		_spec.SetField(draftdocument.FieldDocumentClass, field.TypeString, value)
	}
	if _u.mutation.DocumentClassCleared() {
		_spec.ClearField(draftdocument.FieldDocumentClass, field.TypeString)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(draftdocument.FieldProvider, field.TypeString, value)
	}
	if _u.mutation.ProviderCleared() {
		_spec.ClearField(draftdocument.FieldProvider, field.TypeString)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(draftdocument.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(draftdocument.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(draftdocument.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(draftdocument.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(draftdocument.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(draftdocument.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(draftdocument.FieldUploadedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(draftdocument.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(draftdocument.FieldProcessedAt, field.TypeTime)
	}
	if _u.mutation.DraftCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   draftdocument.DraftTable,
			Columns: []string{draftdocument.DraftColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contractdraft.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DraftIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   draftdocument.DraftTable,
			Columns: []string{draftdocument.DraftColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contractdraft.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DraftDocument{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{draftdocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
