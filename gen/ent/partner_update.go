// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/pcaldeira/contractdraft/gen/ent/contractdraft"
	"github.com/pcaldeira/contractdraft/gen/ent/partner"
	"github.com/pcaldeira/contractdraft/gen/ent/predicate"
)

// PartnerUpdate is the builder for updating Partner entities.
type PartnerUpdate struct {
	config
	hooks    []Hook
	mutation *PartnerMutation
}

// Where appends a list predicates to the PartnerUpdate builder.
func (_u *PartnerUpdate) Where(ps ...predicate.Partner) *PartnerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDraftID sets the "draft_id" field.
func (_u *PartnerUpdate) SetDraftID(v uuid.UUID) *PartnerUpdate {
	_u.mutation.SetDraftID(v)
	return _u
}

// SetNillableDraftID sets the "draft_id" field if the given value is not nil.
func (_u *PartnerUpdate) SetNillableDraftID(v *uuid.UUID) *PartnerUpdate {
	if v != nil {
		_u.SetDraftID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *PartnerUpdate) SetPosition(v int) *PartnerUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *PartnerUpdate) SetNillablePosition(v *int) *PartnerUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *PartnerUpdate) AddPosition(v int) *PartnerUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetFields sets the "fields" field.
func (_u *PartnerUpdate) SetFields(v map[string]string) *PartnerUpdate {
	_u.mutation.SetFields(v)
	return _u
}

// ClearFields clears the value of the "fields" field.
func (_u *PartnerUpdate) ClearFields() *PartnerUpdate {
	_u.mutation.ClearFields()
	return _u
}

// SetProvenance sets the "provenance" field.
func (_u *PartnerUpdate) SetProvenance(v map[string]string) *PartnerUpdate {
	_u.mutation.SetProvenance(v)
	return _u
}

// ClearProvenance clears the value of the "provenance" field.
func (_u *PartnerUpdate) ClearProvenance() *PartnerUpdate {
	_u.mutation.ClearProvenance()
	return _u
}

// SetDraft sets the "draft" edge to the ContractDraft entity.
func (_u *PartnerUpdate) SetDraft(v *ContractDraft) *PartnerUpdate {
	return _u.SetDraftID(v.ID)
}

// Mutation returns the PartnerMutation object of the builder.
func (_u *PartnerUpdate) Mutation() *PartnerMutation {
	return _u.mutation
}

// ClearDraft clears the "draft" edge to the ContractDraft entity.
func (_u *PartnerUpdate) ClearDraft() *PartnerUpdate {
	_u.mutation.ClearDraft()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PartnerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PartnerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PartnerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PartnerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PartnerUpdate) check() error {
	if v, ok := _u.mutation.Position(); ok {
		if err := partner.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Partner.position": %w`, err)}
		}
	}
	if _u.mutation.DraftCleared() && len(_u.mutation.DraftIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Partner.draft"`)
	}
	return nil
}

func (_u *PartnerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(partner.Table, partner.Columns, sqlgraph.NewFieldSpec(partner.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(partner.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(partner.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(partner.FieldFields, field.TypeJSON, value)
	}
	if _u.mutation.FieldsCleared() {
		_spec.ClearField(partner.FieldFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.Provenance(); ok {
		_spec.SetField(partner.FieldProvenance, field.TypeJSON, value)
	}
	if _u.mutation.ProvenanceCleared() {
		_spec.ClearField(partner.FieldProvenance, field.TypeJSON)
	}
	if _u.mutation.DraftCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   partner.DraftTable,
			Columns: []string{partner.DraftColumn},
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
			Table:   partner.DraftTable,
			Columns: []string{partner.DraftColumn},
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
			err = &NotFoundError{partner.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PartnerUpdateOne is the builder for updating a single Partner entity.
type PartnerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PartnerMutation
}

// SetDraftID sets the "draft_id" field.
func (_u *PartnerUpdateOne) SetDraftID(v uuid.UUID) *PartnerUpdateOne {
	_u.mutation.SetDraftID(v)
	return _u
}

// SetNillableDraftID sets the "draft_id" field if the given value is not nil.
func (_u *PartnerUpdateOne) SetNillableDraftID(v *uuid.UUID) *PartnerUpdateOne {
	if v != nil {
		_u.SetDraftID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *PartnerUpdateOne) SetPosition(v int) *PartnerUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *PartnerUpdateOne) SetNillablePosition(v *int) *PartnerUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *PartnerUpdateOne) AddPosition(v int) *PartnerUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetFields sets the "fields" field.
func (_u *PartnerUpdateOne) SetFields(v map[string]string) *PartnerUpdateOne {
	_u.mutation.SetFields(v)
	return _u
}

// ClearFields clears the value of the "fields" field.
func (_u *PartnerUpdateOne) ClearFields() *PartnerUpdateOne {
	_u.mutation.ClearFields()
	return _u
}

// SetProvenance sets the "provenance" field.
func (_u *PartnerUpdateOne) SetProvenance(v map[string]string) *PartnerUpdateOne {
	_u.mutation.SetProvenance(v)
	return _u
}

// ClearProvenance clears the value of the "provenance" field.
func (_u *PartnerUpdateOne) ClearProvenance() *PartnerUpdateOne {
	_u.mutation.ClearProvenance()
	return _u
}

// SetDraft sets the "draft" edge to the ContractDraft entity.
func (_u *PartnerUpdateOne) SetDraft(v *ContractDraft) *PartnerUpdateOne {
	return _u.SetDraftID(v.ID)
}

// Mutation returns the PartnerMutation object of the builder.
func (_u *PartnerUpdateOne) Mutation() *PartnerMutation {
	return _u.mutation
}

// ClearDraft clears the "draft" edge to the ContractDraft entity.
func (_u *PartnerUpdateOne) ClearDraft() *PartnerUpdateOne {
	_u.mutation.ClearDraft()
	return _u
}

// Where appends a list predicates to the PartnerUpdate builder.
func (_u *PartnerUpdateOne) Where(ps ...predicate.Partner) *PartnerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PartnerUpdateOne) Select(field string, fields ...string) *PartnerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Partner entity.
func (_u *PartnerUpdateOne) Save(ctx context.Context) (*Partner, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PartnerUpdateOne) SaveX(ctx context.Context) *Partner {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PartnerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PartnerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PartnerUpdateOne) check() error {
	if v, ok := _u.mutation.Position(); ok {
		if err := partner.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Partner.position": %w`, err)}
		}
	}
	if _u.mutation.DraftCleared() && len(_u.mutation.DraftIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Partner.draft"`)
	}
	return nil
}

func (_u *PartnerUpdateOne) sqlSave(ctx context.Context) (_node *Partner, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(partner.Table, partner.Columns, sqlgraph.NewFieldSpec(partner.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Partner.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, partner.FieldID)
		for _, f := range fields {
			if !partner.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != partner.FieldID {
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
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(partner.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(partner.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(partner.FieldFields, field.TypeJSON, value)
	}
	if _u.mutation.FieldsCleared() {
		_spec.ClearField(partner.FieldFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.Provenance(); ok {
		_spec.SetField(partner.FieldProvenance, field.TypeJSON, value)
	}
	if _u.mutation.ProvenanceCleared() {
		_spec.ClearField(partner.FieldProvenance, field.TypeJSON)
	}
	if _u.mutation.DraftCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   partner.DraftTable,
			Columns: []string{partner.DraftColumn},
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
			Table:   partner.DraftTable,
			Columns: []string{partner.DraftColumn},
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
	_node = &Partner{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{partner.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
