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
	"github.com/pcaldeira/contractdraft/gen/ent/partner"
)

// ContractDraftCreate is the builder for creating a ContractDraft entity.
type ContractDraftCreate struct {
	config
	mutation *ContractDraftMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *ContractDraftCreate) SetName(v string) *ContractDraftCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ContractDraftCreate) SetStatus(v string) *ContractDraftCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ContractDraftCreate) SetNillableStatus(v *string) *ContractDraftCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCompanyFields sets the "company_fields" field.
func (_c *ContractDraftCreate) SetCompanyFields(v map[string]string) *ContractDraftCreate {
	_c.mutation.SetCompanyFields(v)
	return _c
}

// SetCompanyProvenance sets the "company_provenance" field.
func (_c *ContractDraftCreate) SetCompanyProvenance(v map[string]string) *ContractDraftCreate {
	_c.mutation.SetCompanyProvenance(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContractDraftCreate) SetCreatedAt(v time.Time) *ContractDraftCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContractDraftCreate) SetNillableCreatedAt(v *time.Time) *ContractDraftCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ContractDraftCreate) SetUpdatedAt(v time.Time) *ContractDraftCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ContractDraftCreate) SetNillableUpdatedAt(v *time.Time) *ContractDraftCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContractDraftCreate) SetID(v uuid.UUID) *ContractDraftCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ContractDraftCreate) SetNillableID(v *uuid.UUID) *ContractDraftCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddPartnerIDs adds the "partners" edge to the Partner entity by IDs.
func (_c *ContractDraftCreate) AddPartnerIDs(ids ...uuid.UUID) *ContractDraftCreate {
	_c.mutation.AddPartnerIDs(ids...)
	return _c
}

// AddPartners adds the "partners" edges to the Partner entity.
func (_c *ContractDraftCreate) AddPartners(v ...*Partner) *ContractDraftCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPartnerIDs(ids...)
}

// AddDocumentIDs adds the "documents" edge to the DraftDocument entity by IDs.
func (_c *ContractDraftCreate) AddDocumentIDs(ids ...uuid.UUID) *ContractDraftCreate {
	_c.mutation.AddDocumentIDs(ids...)
	return _c
}

// AddDocuments adds the "documents" edges to the DraftDocument entity.
func (_c *ContractDraftCreate) AddDocuments(v ...*DraftDocument) *ContractDraftCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDocumentIDs(ids...)
}

// Mutation returns the ContractDraftMutation object of the builder.
func (_c *ContractDraftCreate) Mutation() *ContractDraftMutation {
	return _c.mutation
}

// Save creates the ContractDraft in the database.
func (_c *ContractDraftCreate) Save(ctx context.Context) (*ContractDraft, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContractDraftCreate) SaveX(ctx context.Context) *ContractDraft {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContractDraftCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContractDraftCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContractDraftCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := contractdraft.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contractdraft.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := contractdraft.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := contractdraft.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContractDraftCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ContractDraft.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := contractdraft.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ContractDraft.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ContractDraft.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := contractdraft.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ContractDraft.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ContractDraft.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ContractDraft.updated_at"`)}
	}
	return nil
}

func (_c *ContractDraftCreate) sqlSave(ctx context.Context) (*ContractDraft, error) {
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

func (_c *ContractDraftCreate) createSpec() (*ContractDraft, *sqlgraph.CreateSpec) {
	var (
		_node = &ContractDraft{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contractdraft.Table, sqlgraph.NewFieldSpec(contractdraft.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(contractdraft.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(contractdraft.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CompanyFields(); ok {
		_spec.SetField(contractdraft.FieldCompanyFields, field.TypeJSON, value)
		_node.CompanyFields = value
	}
	if value, ok := _c.mutation.CompanyProvenance(); ok {
		_spec.SetField(contractdraft.FieldCompanyProvenance, field.TypeJSON, value)
		_node.CompanyProvenance = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contractdraft.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(contractdraft.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.PartnersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contractdraft.PartnersTable,
			Columns: []string{contractdraft.PartnersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(partner.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contractdraft.DocumentsTable,
			Columns: []string{contractdraft.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(draftdocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ContractDraftCreateBulk is the builder for creating many ContractDraft entities in bulk.
type ContractDraftCreateBulk struct {
	config
	err      error
	builders []*ContractDraftCreate
}

// Save creates the ContractDraft entities in the database.
func (_c *ContractDraftCreateBulk) Save(ctx context.Context) ([]*ContractDraft, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ContractDraft, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContractDraftMutation)
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
func (_c *ContractDraftCreateBulk) SaveX(ctx context.Context) []*ContractDraft {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContractDraftCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContractDraftCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
