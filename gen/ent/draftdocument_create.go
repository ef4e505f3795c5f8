// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/pcaldeira/contractdraft/gen/ent/contractdraft"
	"github.com/pcaldeira/contractdraft/gen/ent/draftdocument"
)

// DraftDocumentCreate is the builder for creating a DraftDocument entity.
type DraftDocumentCreate struct {
	config
	mutation *DraftDocumentMutation
	hooks    []Hook
}

// SetDraftID sets the "draft_id" field.
func (_c *DraftDocumentCreate) SetDraftID(v uuid.UUID) *DraftDocumentCreate {
	_c.mutation.SetDraftID(v)
	return _c
}

// SetPartnerPosition sets the "partner_position" field.
func (_c *DraftDocumentCreate) SetPartnerPosition(v int) *DraftDocumentCreate {
	_c.mutation.SetPartnerPosition(v)
	return _c
}

// SetNillablePartnerPosition sets the "partner_position" field if the given value is not nil.
func (_c *DraftDocumentCreate) SetNillablePartnerPosition(v *int) *DraftDocumentCreate {
	if v != nil {
		_c.SetPartnerPosition(*v)
	}
	return _c
}

// SetRole sets the "role" field.
func (_c *DraftDocumentCreate) SetRole(v string) *DraftDocumentCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *DraftDocumentCreate) SetFilename(v string) *DraftDocumentCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetSourcePath sets the "source_path" field.
func (_c *DraftDocumentCreate) SetSourcePath(v string) *DraftDocumentCreate {
	_c.mutation.SetSourcePath(v)
	return _c
}

// SetFileExt sets the "file_ext" field.
func (_c *DraftDocumentCreate) SetFileExt(v string) *DraftDocumentCreate {
	_c.mutation.SetFileExt(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *DraftDocumentCreate) SetContentHash(v []byte) *DraftDocumentCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetDocumentClass sets the "document_class" field.
func (_c *DraftDocumentCreate) SetDocumentClass(v string) *DraftDocumentCreate {
	_c.mutation.SetDocumentClass(v)
	return _c
}

// SetNillableDocumentClass sets the "document_class" field if the given value is not nil.
func (_c *DraftDocumentCreate) SetNillableDocumentClass(v *string) *DraftDocumentCreate {
	if v != nil {
		_c.SetDocumentClass(*v)
	}
	return _c
}

// SetProvider sets the "provider" field.
func (_c *DraftDocumentCreate) SetProvider(v string) *DraftDocumentCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_c *DraftDocumentCreate) SetNillableProvider(v *string) *DraftDocumentCreate {
	if v != nil {
		_c.SetProvider(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *DraftDocumentCreate) SetAttempts(v int) *DraftDocumentCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *DraftDocumentCreate) SetNillableAttempts(v *int) *DraftDocumentCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *DraftDocumentCreate) SetStatus(v string) *DraftDocumentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DraftDocumentCreate) SetNillableStatus(v *string) *DraftDocumentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *DraftDocumentCreate) SetErrorMessage(v string) *DraftDocumentCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *DraftDocumentCreate) SetNillableErrorMessage(v *string) *DraftDocumentCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *DraftDocumentCreate) SetUploadedAt(v time.Time) *DraftDocumentCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *DraftDocumentCreate) SetNillableUploadedAt(v *time.Time) *DraftDocumentCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *DraftDocumentCreate) SetProcessedAt(v time.Time) *DraftDocumentCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *DraftDocumentCreate) SetNillableProcessedAt(v *time.Time) *DraftDocumentCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DraftDocumentCreate) SetID(v uuid.UUID) *DraftDocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DraftDocumentCreate) SetNillableID(v *uuid.UUID) *DraftDocumentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDraft sets the "draft" edge to the ContractDraft entity.
func (_c *DraftDocumentCreate) SetDraft(v *ContractDraft) *DraftDocumentCreate {
	return _c.SetDraftID(v.ID)
}

// Mutation returns the DraftDocumentMutation object of the builder.
func (_c *DraftDocumentCreate) Mutation() *DraftDocumentMutation {
	return _c.mutation
}

// Save creates the DraftDocument in the database.
func (_c *DraftDocumentCreate) Save(ctx context.Context) (*DraftDocument, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DraftDocumentCreate) SaveX(ctx context.Context) *DraftDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DraftDocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DraftDocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DraftDocumentCreate) defaults() {
	if _, ok := _c.mutation.PartnerPosition(); !ok {
		v := draftdocument.DefaultPartnerPosition
		_c.mutation.SetPartnerPosition(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := draftdocument.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := draftdocument.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := draftdocument.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DraftDocumentCreate) check() error {
	if _, ok := _c.mutation.DraftID(); !ok {
		return &ValidationError{Name: "draft_id", err: errors.New(`ent: missing required field "DraftDocument.draft_id"`)}
	}
	if _, ok := _c.mutation.PartnerPosition(); !ok {
		return &ValidationError{Name: "partner_position", err: errors.New(`ent: missing required field "DraftDocument.partner_position"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "DraftDocument.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := draftdocument.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "DraftDocument.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "DraftDocument.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := draftdocument.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "DraftDocument.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourcePath(); !ok {
		return &ValidationError{Name: "source_path", err: errors.New(`ent: missing required field "DraftDocument.source_path"`)}
	}
	if v, ok := _c.mutation.SourcePath(); ok {
		if err := draftdocument.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "DraftDocument.source_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileExt(); !ok {
		return &ValidationError{Name: "file_ext", err: errors.New(`ent: missing required field "DraftDocument.file_ext"`)}
	}
	if v, ok := _c.mutation.FileExt(); ok {
		if err := draftdocument.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "DraftDocument.file_ext": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "DraftDocument.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := draftdocument.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "DraftDocument.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "DraftDocument.attempts"`)}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "DraftDocument.uploaded_at"`)}
	}
	if len(_c.mutation.DraftIDs()) == 0 {
		return &ValidationError{Name: "draft", err: errors.New(`ent: missing required edge "DraftDocument.draft"`)}
	}
	return nil
}

func (_c *DraftDocumentCreate) sqlSave(ctx context.Context) (*DraftDocument, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DraftDocumentCreate) createSpec() (*DraftDocument, *sqlgraph.CreateSpec) {
	var (
		_node = &DraftDocument{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(draftdocument.Table, sqlgraph.NewFieldSpec(draftdocument.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.PartnerPosition(); ok {
		_spec.SetField(draftdocument.FieldPartnerPosition, field.TypeInt, value)
		_node.PartnerPosition = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(draftdocument.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(draftdocument.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.SourcePath(); ok {
		_spec.SetField(draftdocument.FieldSourcePath, field.TypeString, value)
		_node.SourcePath = value
	}
	if value, ok := _c.mutation.FileExt(); ok {
		_spec.SetField(draftdocument.FieldFileExt, field.TypeString, value)
		_node.FileExt = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(draftdocument.FieldContentHash, field.TypeBytes, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.DocumentClass(); ok {
		_spec.SetField(draftdocument.FieldDocumentClass, field.TypeString, value)
		_node.DocumentClass = &value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(draftdocument.FieldProvider, field.TypeString, value)
		_node.Provider = &value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(draftdocument.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(draftdocument.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(draftdocument.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(draftdocument.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(draftdocument.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	if nodes := _c.mutation.DraftIDs(); len(nodes) > 0 {
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
		_node.DraftID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DraftDocumentCreateBulk is the builder for creating many DraftDocument entities in bulk.
type DraftDocumentCreateBulk struct {
	config
	err      error
	builders []*DraftDocumentCreate
}

// Save creates the DraftDocument entities in the database.
func (_c *DraftDocumentCreateBulk) Save(ctx context.Context) ([]*DraftDocument, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DraftDocument, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DraftDocumentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DraftDocumentCreateBulk) SaveX(ctx context.Context) []*DraftDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DraftDocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DraftDocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
