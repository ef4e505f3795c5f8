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
	"github.com/pcaldeira/contractdraft/gen/ent/partner"
	"github.com/pcaldeira/contractdraft/gen/ent/predicate"
)

// ContractDraftUpdate is the builder for updating ContractDraft entities.
type ContractDraftUpdate struct {
	config
	hooks    []Hook
	mutation *ContractDraftMutation
}

// Where appends a list predicates to the ContractDraftUpdate builder.
func (_u *ContractDraftUpdate) Where(ps ...predicate.ContractDraft) *ContractDraftUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ContractDraftUpdate) SetName(v string) *ContractDraftUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ContractDraftUpdate) SetNillableName(v *string) *ContractDraftUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ContractDraftUpdate) SetStatus(v string) *ContractDraftUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ContractDraftUpdate) SetNillableStatus(v *string) *ContractDraftUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompanyFields sets the "company_fields" field.
func (_u *ContractDraftUpdate) SetCompanyFields(v map[string]string) *ContractDraftUpdate {
	_u.mutation.SetCompanyFields(v)
	return _u
}

// ClearCompanyFields clears the value of the "company_fields" field.
func (_u *ContractDraftUpdate) ClearCompanyFields() *ContractDraftUpdate {
	_u.mutation.ClearCompanyFields()
	return _u
}

// SetCompanyProvenance sets the "company_provenance" field.
func (_u *ContractDraftUpdate) SetCompanyProvenance(v map[string]string) *ContractDraftUpdate {
	_u.mutation.SetCompanyProvenance(v)
	return _u
}

// ClearCompanyProvenance clears the value of the "company_provenance" field.
func (_u *ContractDraftUpdate) ClearCompanyProvenance() *ContractDraftUpdate {
	_u.mutation.ClearCompanyProvenance()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ContractDraftUpdate) SetCreatedAt(v time.Time) *ContractDraftUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ContractDraftUpdate) SetNillableCreatedAt(v *time.Time) *ContractDraftUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContractDraftUpdate) SetUpdatedAt(v time.Time) *ContractDraftUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddPartnerIDs adds the "partners" edge to the Partner entity by IDs.
func (_u *ContractDraftUpdate) AddPartnerIDs(ids ...uuid.UUID) *ContractDraftUpdate {
	_u.mutation.AddPartnerIDs(ids...)
	return _u
}

// AddPartners adds the "partners" edges to the Partner entity.
func (_u *ContractDraftUpdate) AddPartners(v ...*Partner) *ContractDraftUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPartnerIDs(ids...)
}

// AddDocumentIDs adds the "documents" edge to the DraftDocument entity by IDs.
func (_u *ContractDraftUpdate) AddDocumentIDs(ids ...uuid.UUID) *ContractDraftUpdate {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the DraftDocument entity.
func (_u *ContractDraftUpdate) AddDocuments(v ...*DraftDocument) *ContractDraftUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// Mutation returns the ContractDraftMutation object of the builder.
func (_u *ContractDraftUpdate) Mutation() *ContractDraftMutation {
	return _u.mutation
}

// ClearPartners clears all "partners" edges to the Partner entity.
func (_u *ContractDraftUpdate) ClearPartners() *ContractDraftUpdate {
	_u.mutation.ClearPartners()
	return _u
}

// RemovePartnerIDs removes the "partners" edge to Partner entities by IDs.
func (_u *ContractDraftUpdate) RemovePartnerIDs(ids ...uuid.UUID) *ContractDraftUpdate {
	_u.mutation.RemovePartnerIDs(ids...)
	return _u
}

// RemovePartners removes "partners" edges to Partner entities.
func (_u *ContractDraftUpdate) RemovePartners(v ...*Partner) *ContractDraftUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePartnerIDs(ids...)
}

// ClearDocuments clears all "documents" edges to the DraftDocument entity.
func (_u *ContractDraftUpdate) ClearDocuments() *ContractDraftUpdate {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to DraftDocument entities by IDs.
func (_u *ContractDraftUpdate) RemoveDocumentIDs(ids ...uuid.UUID) *ContractDraftUpdate {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to DraftDocument entities.
func (_u *ContractDraftUpdate) RemoveDocuments(v ...*DraftDocument) *ContractDraftUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContractDraftUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractDraftUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContractDraftUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractDraftUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContractDraftUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contractdraft.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContractDraftUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := contractdraft.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ContractDraft.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := contractdraft.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ContractDraft.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ContractDraftUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contractdraft.Table, contractdraft.Columns, sqlgraph.NewFieldSpec(contractdraft.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(contractdraft.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(contractdraft.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyFields(); ok {
		_spec.SetField(contractdraft.FieldCompanyFields, field.TypeJSON, value)
	}
	if _u.mutation.CompanyFieldsCleared() {
		_spec.ClearField(contractdraft.FieldCompanyFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompanyProvenance(); ok {
		_spec.SetField(contractdraft.FieldCompanyProvenance, field.TypeJSON, value)
	}
	if _u.mutation.CompanyProvenanceCleared() {
		_spec.ClearField(contractdraft.FieldCompanyProvenance, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(contractdraft.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contractdraft.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PartnersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPartnersIDs(); len(nodes) > 0 && !_u.mutation.PartnersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PartnersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contractdraft.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContractDraftUpdateOne is the builder for updating a single ContractDraft entity.
type ContractDraftUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContractDraftMutation
}

// SetName sets the "name" field.
func (_u *ContractDraftUpdateOne) SetName(v string) *ContractDraftUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ContractDraftUpdateOne) SetNillableName(v *string) *ContractDraftUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ContractDraftUpdateOne) SetStatus(v string) *ContractDraftUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ContractDraftUpdateOne) SetNillableStatus(v *string) *ContractDraftUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompanyFields sets the "company_fields" field.
func (_u *ContractDraftUpdateOne) SetCompanyFields(v map[string]string) *ContractDraftUpdateOne {
	_u.mutation.SetCompanyFields(v)
	return _u
}

// ClearCompanyFields clears the value of the "company_fields" field.
func (_u *ContractDraftUpdateOne) ClearCompanyFields() *ContractDraftUpdateOne {
	_u.mutation.ClearCompanyFields()
	return _u
}

// SetCompanyProvenance sets the "company_provenance" field.
func (_u *ContractDraftUpdateOne) SetCompanyProvenance(v map[string]string) *ContractDraftUpdateOne {
	_u.mutation.SetCompanyProvenance(v)
	return _u
}

// ClearCompanyProvenance clears the value of the "company_provenance" field.
func (_u *ContractDraftUpdateOne) ClearCompanyProvenance() *ContractDraftUpdateOne {
	_u.mutation.ClearCompanyProvenance()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ContractDraftUpdateOne) SetCreatedAt(v time.Time) *ContractDraftUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ContractDraftUpdateOne) SetNillableCreatedAt(v *time.Time) *ContractDraftUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContractDraftUpdateOne) SetUpdatedAt(v time.Time) *ContractDraftUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddPartnerIDs adds the "partners" edge to the Partner entity by IDs.
func (_u *ContractDraftUpdateOne) AddPartnerIDs(ids ...uuid.UUID) *ContractDraftUpdateOne {
	_u.mutation.AddPartnerIDs(ids...)
	return _u
}

// AddPartners adds the "partners" edges to the Partner entity.
func (_u *ContractDraftUpdateOne) AddPartners(v ...*Partner) *ContractDraftUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPartnerIDs(ids...)
}

// AddDocumentIDs adds the "documents" edge to the DraftDocument entity by IDs.
func (_u *ContractDraftUpdateOne) AddDocumentIDs(ids ...uuid.UUID) *ContractDraftUpdateOne {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the DraftDocument entity.
func (_u *ContractDraftUpdateOne) AddDocuments(v ...*DraftDocument) *ContractDraftUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// Mutation returns the ContractDraftMutation object of the builder.
func (_u *ContractDraftUpdateOne) Mutation() *ContractDraftMutation {
	return _u.mutation
}

// ClearPartners clears all "partners" edges to the Partner entity.
func (_u *ContractDraftUpdateOne) ClearPartners() *ContractDraftUpdateOne {
	_u.mutation.ClearPartners()
	return _u
}

// RemovePartnerIDs removes the "partners" edge to Partner entities by IDs.
func (_u *ContractDraftUpdateOne) RemovePartnerIDs(ids ...uuid.UUID) *ContractDraftUpdateOne {
	_u.mutation.RemovePartnerIDs(ids...)
	return _u
}

// RemovePartners removes "partners" edges to Partner entities.
func (_u *ContractDraftUpdateOne) RemovePartners(v ...*Partner) *ContractDraftUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePartnerIDs(ids...)
}

// ClearDocuments clears all "documents" edges to the DraftDocument entity.
func (_u *ContractDraftUpdateOne) ClearDocuments() *ContractDraftUpdateOne {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to DraftDocument entities by IDs.
func (_u *ContractDraftUpdateOne) RemoveDocumentIDs(ids ...uuid.UUID) *ContractDraftUpdateOne {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to DraftDocument entities.
func (_u *ContractDraftUpdateOne) RemoveDocuments(v ...*DraftDocument) *ContractDraftUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// Where appends a list predicates to the ContractDraftUpdate builder.
func (_u *ContractDraftUpdateOne) Where(ps ...predicate.ContractDraft) *ContractDraftUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContractDraftUpdateOne) Select(field string, fields ...string) *ContractDraftUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ContractDraft entity.
func (_u *ContractDraftUpdateOne) Save(ctx context.Context) (*ContractDraft, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractDraftUpdateOne) SaveX(ctx context.Context) *ContractDraft {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContractDraftUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractDraftUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContractDraftUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contractdraft.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContractDraftUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := contractdraft.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ContractDraft.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := contractdraft.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ContractDraft.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ContractDraftUpdateOne) sqlSave(ctx context.Context) (_node *ContractDraft, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contractdraft.Table, contractdraft.Columns, sqlgraph.NewFieldSpec(contractdraft.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContractDraft.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contractdraft.FieldID)
		for _, f := range fields {
			if !contractdraft.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contractdraft.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(contractdraft.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(contractdraft.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyFields(); ok {
		_spec.SetField(contractdraft.FieldCompanyFields, field.TypeJSON, value)
	}
	if _u.mutation.CompanyFieldsCleared() {
		_spec.ClearField(contractdraft.FieldCompanyFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompanyProvenance(); ok {
		_spec.SetField(contractdraft.FieldCompanyProvenance, field.TypeJSON, value)
	}
	if _u.mutation.CompanyProvenanceCleared() {
		_spec.ClearField(contractdraft.FieldCompanyProvenance, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(contractdraft.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contractdraft.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PartnersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPartnersIDs(); len(nodes) > 0 && !_u.mutation.PartnersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PartnersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ContractDraft{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contractdraft.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
