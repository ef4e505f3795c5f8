// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/pcaldeira/contractdraft/gen/ent/contractdraft"
	"github.com/pcaldeira/contractdraft/gen/ent/draftdocument"
	"github.com/pcaldeira/contractdraft/gen/ent/partner"
	"github.com/pcaldeira/contractdraft/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeContractDraft = "ContractDraft"
	TypeDraftDocument = "DraftDocument"
	TypePartner       = "Partner"
)

// ContractDraftMutation represents an operation that mutates the ContractDraft nodes in the graph.
type ContractDraftMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	name               *string
	status             *string
	company_fields     *map[string]string
	company_provenance *map[string]string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	partners           map[uuid.UUID]struct{}
	removedpartners    map[uuid.UUID]struct{}
	clearedpartners    bool
	documents          map[uuid.UUID]struct{}
	removeddocuments   map[uuid.UUID]struct{}
	cleareddocuments   bool
	done               bool
	oldValue           func(context.Context) (*ContractDraft, error)
	predicates         []predicate.ContractDraft
}

var _ ent.Mutation = (*ContractDraftMutation)(nil)

// contractdraftOption allows management of the mutation configuration using functional options.
type contractdraftOption func(*ContractDraftMutation)

// newContractDraftMutation creates new mutation for the ContractDraft entity.
func newContractDraftMutation(c config, op Op, opts ...contractdraftOption) *ContractDraftMutation {
	m := &ContractDraftMutation{
		config:        c,
		op:            op,
		typ:           TypeContractDraft,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContractDraftID sets the ID field of the mutation.
func withContractDraftID(id uuid.UUID) contractdraftOption {
	return func(m *ContractDraftMutation) {
		var (
			err   error
			once  sync.Once
			value *ContractDraft
		)
		m.oldValue = func(ctx context.Context) (*ContractDraft, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ContractDraft.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContractDraft sets the old ContractDraft of the mutation.
func withContractDraft(node *ContractDraft) contractdraftOption {
	return func(m *ContractDraftMutation) {
		m.oldValue = func(context.Context) (*ContractDraft, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContractDraftMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContractDraftMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ContractDraft entities.
func (m *ContractDraftMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContractDraftMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContractDraftMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ContractDraft.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ContractDraftMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ContractDraftMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ContractDraft entity.
// If the ContractDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractDraftMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ContractDraftMutation) ResetName() {
	m.name = nil
}

// SetStatus sets the "status" field.
func (m *ContractDraftMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ContractDraftMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ContractDraft entity.
// If the ContractDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractDraftMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ContractDraftMutation) ResetStatus() {
	m.status = nil
}

// SetCompanyFields sets the "company_fields" field.
func (m *ContractDraftMutation) SetCompanyFields(value map[string]string) {
	m.company_fields = &value
}

// CompanyFields returns the value of the "company_fields" field in the mutation.
func (m *ContractDraftMutation) CompanyFields() (r map[string]string, exists bool) {
	v := m.company_fields
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyFields returns the old "company_fields" field's value of the ContractDraft entity.
// If the ContractDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractDraftMutation) OldCompanyFields(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyFields: %w", err)
	}
	return oldValue.CompanyFields, nil
}

// ClearCompanyFields clears the value of the "company_fields" field.
func (m *ContractDraftMutation) ClearCompanyFields() {
	m.company_fields = nil
	m.clearedFields[contractdraft.FieldCompanyFields] = struct{}{}
}

// CompanyFieldsCleared returns if the "company_fields" field was cleared in this mutation.
func (m *ContractDraftMutation) CompanyFieldsCleared() bool {
	_, ok := m.clearedFields[contractdraft.FieldCompanyFields]
	return ok
}

// ResetCompanyFields resets all changes to the "company_fields" field.
func (m *ContractDraftMutation) ResetCompanyFields() {
	m.company_fields = nil
	delete(m.clearedFields, contractdraft.FieldCompanyFields)
}

// SetCompanyProvenance sets the "company_provenance" field.
func (m *ContractDraftMutation) SetCompanyProvenance(value map[string]string) {
	m.company_provenance = &value
}

// CompanyProvenance returns the value of the "company_provenance" field in the mutation.
func (m *ContractDraftMutation) CompanyProvenance() (r map[string]string, exists bool) {
	v := m.company_provenance
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyProvenance returns the old "company_provenance" field's value of the ContractDraft entity.
// If the ContractDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractDraftMutation) OldCompanyProvenance(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyProvenance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyProvenance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyProvenance: %w", err)
	}
	return oldValue.CompanyProvenance, nil
}

// ClearCompanyProvenance clears the value of the "company_provenance" field.
func (m *ContractDraftMutation) ClearCompanyProvenance() {
	m.company_provenance = nil
	m.clearedFields[contractdraft.FieldCompanyProvenance] = struct{}{}
}

// CompanyProvenanceCleared returns if the "company_provenance" field was cleared in this mutation.
func (m *ContractDraftMutation) CompanyProvenanceCleared() bool {
	_, ok := m.clearedFields[contractdraft.FieldCompanyProvenance]
	return ok
}

// ResetCompanyProvenance resets all changes to the "company_provenance" field.
func (m *ContractDraftMutation) ResetCompanyProvenance() {
	m.company_provenance = nil
	delete(m.clearedFields, contractdraft.FieldCompanyProvenance)
}

// SetCreatedAt sets the "created_at" field.
func (m *ContractDraftMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContractDraftMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ContractDraft entity.
// If the ContractDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractDraftMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContractDraftMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ContractDraftMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ContractDraftMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ContractDraft entity.
// If the ContractDraft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractDraftMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ContractDraftMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddPartnerIDs adds the "partners" edge to the Partner entity by ids.
func (m *ContractDraftMutation) AddPartnerIDs(ids ...uuid.UUID) {
	if m.partners == nil {
		m.partners = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.partners[ids[i]] = struct{}{}
	}
}

// ClearPartners clears the "partners" edge to the Partner entity.
func (m *ContractDraftMutation) ClearPartners() {
	m.clearedpartners = true
}

// PartnersCleared reports if the "partners" edge to the Partner entity was cleared.
func (m *ContractDraftMutation) PartnersCleared() bool {
	return m.clearedpartners
}

// RemovePartnerIDs removes the "partners" edge to the Partner entity by IDs.
func (m *ContractDraftMutation) RemovePartnerIDs(ids ...uuid.UUID) {
	if m.removedpartners == nil {
		m.removedpartners = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.partners, ids[i])
		m.removedpartners[ids[i]] = struct{}{}
	}
}

// RemovedPartners returns the removed IDs of the "partners" edge to the Partner entity.
func (m *ContractDraftMutation) RemovedPartnersIDs() (ids []uuid.UUID) {
	for id := range m.removedpartners {
		ids = append(ids, id)
	}
	return
}

// PartnersIDs returns the "partners" edge IDs in the mutation.
func (m *ContractDraftMutation) PartnersIDs() (ids []uuid.UUID) {
	for id := range m.partners {
		ids = append(ids, id)
	}
	return
}

// ResetPartners resets all changes to the "partners" edge.
func (m *ContractDraftMutation) ResetPartners() {
	m.partners = nil
	m.clearedpartners = false
	m.removedpartners = nil
}

// AddDocumentIDs adds the "documents" edge to the DraftDocument entity by ids.
func (m *ContractDraftMutation) AddDocumentIDs(ids ...uuid.UUID) {
	if m.documents == nil {
		m.documents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the DraftDocument entity.
func (m *ContractDraftMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the DraftDocument entity was cleared.
func (m *ContractDraftMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the DraftDocument entity by IDs.
func (m *ContractDraftMutation) RemoveDocumentIDs(ids ...uuid.UUID) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the DraftDocument entity.
func (m *ContractDraftMutation) RemovedDocumentsIDs() (ids []uuid.UUID) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *ContractDraftMutation) DocumentsIDs() (ids []uuid.UUID) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *ContractDraftMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// Where appends a list predicates to the ContractDraftMutation builder.
func (m *ContractDraftMutation) Where(ps ...predicate.ContractDraft) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContractDraftMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContractDraftMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ContractDraft, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContractDraftMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContractDraftMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ContractDraft).
func (m *ContractDraftMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContractDraftMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, contractdraft.FieldName)
	}
	if m.status != nil {
		fields = append(fields, contractdraft.FieldStatus)
	}
	if m.company_fields != nil {
		fields = append(fields, contractdraft.FieldCompanyFields)
	}
	if m.company_provenance != nil {
		fields = append(fields, contractdraft.FieldCompanyProvenance)
	}
	if m.created_at != nil {
		fields = append(fields, contractdraft.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, contractdraft.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContractDraftMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contractdraft.FieldName:
		return m.Name()
	case contractdraft.FieldStatus:
		return m.Status()
	case contractdraft.FieldCompanyFields:
		return m.CompanyFields()
	case contractdraft.FieldCompanyProvenance:
		return m.CompanyProvenance()
	case contractdraft.FieldCreatedAt:
		return m.CreatedAt()
	case contractdraft.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContractDraftMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contractdraft.FieldName:
		return m.OldName(ctx)
	case contractdraft.FieldStatus:
		return m.OldStatus(ctx)
	case contractdraft.FieldCompanyFields:
		return m.OldCompanyFields(ctx)
	case contractdraft.FieldCompanyProvenance:
		return m.OldCompanyProvenance(ctx)
	case contractdraft.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case contractdraft.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ContractDraft field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContractDraftMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contractdraft.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case contractdraft.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case contractdraft.FieldCompanyFields:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyFields(v)
		return nil
	case contractdraft.FieldCompanyProvenance:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyProvenance(v)
		return nil
	case contractdraft.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case contractdraft.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ContractDraft field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContractDraftMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContractDraftMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContractDraftMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ContractDraft numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContractDraftMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contractdraft.FieldCompanyFields) {
		fields = append(fields, contractdraft.FieldCompanyFields)
	}
	if m.FieldCleared(contractdraft.FieldCompanyProvenance) {
		fields = append(fields, contractdraft.FieldCompanyProvenance)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContractDraftMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContractDraftMutation) ClearField(name string) error {
	switch name {
	case contractdraft.FieldCompanyFields:
		m.ClearCompanyFields()
		return nil
	case contractdraft.FieldCompanyProvenance:
		m.ClearCompanyProvenance()
		return nil
	}
	return fmt.Errorf("unknown ContractDraft nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContractDraftMutation) ResetField(name string) error {
	switch name {
	case contractdraft.FieldName:
		m.ResetName()
		return nil
	case contractdraft.FieldStatus:
		m.ResetStatus()
		return nil
	case contractdraft.FieldCompanyFields:
		m.ResetCompanyFields()
		return nil
	case contractdraft.FieldCompanyProvenance:
		m.ResetCompanyProvenance()
		return nil
	case contractdraft.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case contractdraft.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ContractDraft field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContractDraftMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.partners != nil {
		edges = append(edges, contractdraft.EdgePartners)
	}
	if m.documents != nil {
		edges = append(edges, contractdraft.EdgeDocuments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContractDraftMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case contractdraft.EdgePartners:
		ids := make([]ent.Value, 0, len(m.partners))
		for id := range m.partners {
			ids = append(ids, id)
		}
		return ids
	case contractdraft.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContractDraftMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedpartners != nil {
		edges = append(edges, contractdraft.EdgePartners)
	}
	if m.removeddocuments != nil {
		edges = append(edges, contractdraft.EdgeDocuments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContractDraftMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case contractdraft.EdgePartners:
		ids := make([]ent.Value, 0, len(m.removedpartners))
		for id := range m.removedpartners {
			ids = append(ids, id)
		}
		return ids
	case contractdraft.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContractDraftMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedpartners {
		edges = append(edges, contractdraft.EdgePartners)
	}
	if m.cleareddocuments {
		edges = append(edges, contractdraft.EdgeDocuments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContractDraftMutation) EdgeCleared(name string) bool {
	switch name {
	case contractdraft.EdgePartners:
		return m.clearedpartners
	case contractdraft.EdgeDocuments:
		return m.cleareddocuments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContractDraftMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ContractDraft unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContractDraftMutation) ResetEdge(name string) error {
	switch name {
	case contractdraft.EdgePartners:
		m.ResetPartners()
		return nil
	case contractdraft.EdgeDocuments:
		m.ResetDocuments()
		return nil
	}
	return fmt.Errorf("unknown ContractDraft edge %s", name)
}

// DraftDocumentMutation represents an operation that mutates the DraftDocument nodes in the graph.
type DraftDocumentMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	partner_position    *int
	addpartner_position *int
	role                *string
	filename            *string
	source_path         *string
	file_ext            *string
	content_hash        *[]byte
	document_class      *string
	provider            *string
	attempts            *int
	addattempts         *int
	status              *string
	error_message       *string
	uploaded_at         *time.Time
	processed_at        *time.Time
	clearedFields       map[string]struct{}
	draft               *uuid.UUID
	cleareddraft        bool
	done                bool
	oldValue            func(context.Context) (*DraftDocument, error)
	predicates          []predicate.DraftDocument
}

var _ ent.Mutation = (*DraftDocumentMutation)(nil)

// draftdocumentOption allows management of the mutation configuration using functional options.
type draftdocumentOption func(*DraftDocumentMutation)

// newDraftDocumentMutation creates new mutation for the DraftDocument entity.
func newDraftDocumentMutation(c config, op Op, opts ...draftdocumentOption) *DraftDocumentMutation {
	m := &DraftDocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDraftDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDraftDocumentID sets the ID field of the mutation.
func withDraftDocumentID(id uuid.UUID) draftdocumentOption {
	return func(m *DraftDocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *DraftDocument
		)
		m.oldValue = func(ctx context.Context) (*DraftDocument, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DraftDocument.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDraftDocument sets the old DraftDocument of the mutation.
func withDraftDocument(node *DraftDocument) draftdocumentOption {
	return func(m *DraftDocumentMutation) {
		m.oldValue = func(context.Context) (*DraftDocument, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DraftDocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DraftDocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DraftDocument entities.
func (m *DraftDocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DraftDocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DraftDocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DraftDocument.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDraftID sets the "draft_id" field.
func (m *DraftDocumentMutation) SetDraftID(u uuid.UUID) {
	m.draft = &u
}

// DraftID returns the value of the "draft_id" field in the mutation.
func (m *DraftDocumentMutation) DraftID() (r uuid.UUID, exists bool) {
	v := m.draft
	if v == nil {
		return
	}
	return *v, true
}

// OldDraftID returns the old "draft_id" field's value of the DraftDocument entity.
// If the DraftDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DraftDocumentMutation) OldDraftID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDraftID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDraftID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDraftID: %w", err)
	}
	return oldValue.DraftID, nil
}

// ResetDraftID resets all changes to the "draft_id" field.
func (m *DraftDocumentMutation) ResetDraftID() {
	m.draft = nil
}

// SetPartnerPosition sets the "partner_position" field.
func (m *DraftDocumentMutation) SetPartnerPosition(i int) {
	m.partner_position = &i
	m.addpartner_position = nil
}

// PartnerPosition returns the value of the "partner_position" field in the mutation.
func (m *DraftDocumentMutation) PartnerPosition() (r int, exists bool) {
	v := m.partner_position
	if v == nil {
		return
	}
	return *v, true
}

// OldPartnerPosition returns the old "partner_position" field's value of the DraftDocument entity.
// If the DraftDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DraftDocumentMutation) OldPartnerPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPartnerPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPartnerPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPartnerPosition: %w", err)
	}
	return oldValue.PartnerPosition, nil
}

// AddPartnerPosition adds i to the "partner_position" field.
func (m *DraftDocumentMutation) AddPartnerPosition(i int) {
	if m.addpartner_position != nil {
		*m.addpartner_position += i
	} else {
		m.addpartner_position = &i
	}
}

// AddedPartnerPosition returns the value that was added to the "partner_position" field in this mutation.
func (m *DraftDocumentMutation) AddedPartnerPosition() (r int, exists bool) {
	v := m.addpartner_position
	if v == nil {
		return
	}
	return *v, true
}

// ResetPartnerPosition resets all changes to the "partner_position" field.
func (m *DraftDocumentMutation) ResetPartnerPosition() {
	m.partner_position = nil
	m.addpartner_position = nil
}

// SetRole sets the "role" field.
func (m *DraftDocumentMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *DraftDocumentMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the DraftDocument entity.
// If the DraftDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DraftDocumentMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *DraftDocumentMutation) ResetRole() {
	m.role = nil
}

// SetFilename sets the "filename" field.
func (m *DraftDocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *DraftDocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the DraftDocument entity.
// If the DraftDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DraftDocumentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *DraftDocumentMutation) ResetFilename() {
	m.filename = nil
}

// SetSourcePath sets the "source_path" field.
func (m *DraftDocumentMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *DraftDocumentMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the DraftDocument entity.
// If the DraftDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DraftDocumentMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *DraftDocumentMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetFileExt sets the "file_ext" field.
func (m *DraftDocumentMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *DraftDocumentMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the DraftDocument entity.
// If the DraftDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DraftDocumentMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *DraftDocumentMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetContentHash sets the "content_hash" field.
func (m *DraftDocumentMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *DraftDocumentMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the DraftDocument entity.
// If the DraftDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DraftDocumentMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *DraftDocumentMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetDocumentClass sets the "document_class" field.
func (m *DraftDocumentMutation) SetDocumentClass(s string) {
	m.document_class = &s
}

// DocumentClass returns the value of the "document_class" field in the mutation.
func (m *DraftDocumentMutation) DocumentClass() (r string, exists bool) {
	v := m.document_class
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentClass returns the old "document_class" field's value of the DraftDocument entity.
// If the DraftDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DraftDocumentMutation) OldDocumentClass(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentClass is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentClass requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentClass: %w", err)
	}
	return oldValue.DocumentClass, nil
}

// ClearDocumentClass clears the value of the "document_class" field.
func (m *DraftDocumentMutation) ClearDocumentClass() {
	m.document_class = nil
	m.clearedFields[draftdocument.FieldDocumentClass] = struct{}{}
}

// DocumentClassCleared returns if the "document_class" field was cleared in this mutation.
func (m *DraftDocumentMutation) DocumentClassCleared() bool {
	_, ok := m.clearedFields[draftdocument.FieldDocumentClass]
	return ok
}

// ResetDocumentClass resets all changes to the "document_class" field.
func (m *DraftDocumentMutation) ResetDocumentClass() {
	m.document_class = nil
	delete(m.clearedFields, draftdocument.FieldDocumentClass)
}

// SetProvider sets the "provider" field.
func (m *DraftDocumentMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *DraftDocumentMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the DraftDocument entity.
// If the DraftDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DraftDocumentMutation) OldProvider(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ClearProvider clears the value of the "provider" field.
func (m *DraftDocumentMutation) ClearProvider() {
	m.provider = nil
	m.clearedFields[draftdocument.FieldProvider] = struct{}{}
}

// ProviderCleared returns if the "provider" field was cleared in this mutation.
func (m *DraftDocumentMutation) ProviderCleared() bool {
	_, ok := m.clearedFields[draftdocument.FieldProvider]
	return ok
}

// ResetProvider resets all changes to the "provider" field.
func (m *DraftDocumentMutation) ResetProvider() {
	m.provider = nil
	delete(m.clearedFields, draftdocument.FieldProvider)
}

// SetAttempts sets the "attempts" field.
func (m *DraftDocumentMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *DraftDocumentMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the DraftDocument entity.
// If the DraftDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DraftDocumentMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *DraftDocumentMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *DraftDocumentMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *DraftDocumentMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetStatus sets the "status" field.
func (m *DraftDocumentMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DraftDocumentMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DraftDocument entity.
// If the DraftDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DraftDocumentMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *DraftDocumentMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[draftdocument.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *DraftDocumentMutation) StatusCleared() bool {
	_, ok := m.clearedFields[draftdocument.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *DraftDocumentMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, draftdocument.FieldStatus)
}

// SetErrorMessage sets the "error_message" field.
func (m *DraftDocumentMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *DraftDocumentMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the DraftDocument entity.
// If the DraftDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DraftDocumentMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *DraftDocumentMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[draftdocument.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *DraftDocumentMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[draftdocument.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *DraftDocumentMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, draftdocument.FieldErrorMessage)
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *DraftDocumentMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *DraftDocumentMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the DraftDocument entity.
// If the DraftDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DraftDocumentMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *DraftDocumentMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// SetProcessedAt sets the "processed_at" field.
func (m *DraftDocumentMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *DraftDocumentMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the DraftDocument entity.
// If the DraftDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DraftDocumentMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *DraftDocumentMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[draftdocument.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *DraftDocumentMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[draftdocument.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *DraftDocumentMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, draftdocument.FieldProcessedAt)
}

// ClearDraft clears the "draft" edge to the ContractDraft entity.
func (m *DraftDocumentMutation) ClearDraft() {
	m.cleareddraft = true
	m.clearedFields[draftdocument.FieldDraftID] = struct{}{}
}

// DraftCleared reports if the "draft" edge to the ContractDraft entity was cleared.
func (m *DraftDocumentMutation) DraftCleared() bool {
	return m.cleareddraft
}

// DraftIDs returns the "draft" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DraftID instead. It exists only for internal usage by the builders.
func (m *DraftDocumentMutation) DraftIDs() (ids []uuid.UUID) {
	if id := m.draft; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDraft resets all changes to the "draft" edge.
func (m *DraftDocumentMutation) ResetDraft() {
	m.draft = nil
	m.cleareddraft = false
}

// Where appends a list predicates to the DraftDocumentMutation builder.
func (m *DraftDocumentMutation) Where(ps ...predicate.DraftDocument) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DraftDocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DraftDocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DraftDocument, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DraftDocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DraftDocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DraftDocument).
func (m *DraftDocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DraftDocumentMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.draft != nil {
		fields = append(fields, draftdocument.FieldDraftID)
	}
	if m.partner_position != nil {
		fields = append(fields, draftdocument.FieldPartnerPosition)
	}
	if m.role != nil {
		fields = append(fields, draftdocument.FieldRole)
	}
	if m.filename != nil {
		fields = append(fields, draftdocument.FieldFilename)
	}
	if m.source_path != nil {
		fields = append(fields, draftdocument.FieldSourcePath)
	}
	if m.file_ext != nil {
		fields = append(fields, draftdocument.FieldFileExt)
	}
	if m.content_hash != nil {
		fields = append(fields, draftdocument.FieldContentHash)
	}
	if m.document_class != nil {
		fields = append(fields, draftdocument.FieldDocumentClass)
	}
	if m.provider != nil {
		fields = append(fields, draftdocument.FieldProvider)
	}
	if m.attempts != nil {
		fields = append(fields, draftdocument.FieldAttempts)
	}
	if m.status != nil {
		fields = append(fields, draftdocument.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, draftdocument.FieldErrorMessage)
	}
	if m.uploaded_at != nil {
		fields = append(fields, draftdocument.FieldUploadedAt)
	}
	if m.processed_at != nil {
		fields = append(fields, draftdocument.FieldProcessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DraftDocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case draftdocument.FieldDraftID:
		return m.DraftID()
	case draftdocument.FieldPartnerPosition:
		return m.PartnerPosition()
	case draftdocument.FieldRole:
		return m.Role()
	case draftdocument.FieldFilename:
		return m.Filename()
	case draftdocument.FieldSourcePath:
		return m.SourcePath()
	case draftdocument.FieldFileExt:
		return m.FileExt()
	case draftdocument.FieldContentHash:
		return m.ContentHash()
	case draftdocument.FieldDocumentClass:
		return m.DocumentClass()
	case draftdocument.FieldProvider:
		return m.Provider()
	case draftdocument.FieldAttempts:
		return m.Attempts()
	case draftdocument.FieldStatus:
		return m.Status()
	case draftdocument.FieldErrorMessage:
		return m.ErrorMessage()
	case draftdocument.FieldUploadedAt:
		return m.UploadedAt()
	case draftdocument.FieldProcessedAt:
		return m.ProcessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DraftDocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case draftdocument.FieldDraftID:
		return m.OldDraftID(ctx)
	case draftdocument.FieldPartnerPosition:
		return m.OldPartnerPosition(ctx)
	case draftdocument.FieldRole:
		return m.OldRole(ctx)
	case draftdocument.FieldFilename:
		return m.OldFilename(ctx)
	case draftdocument.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case draftdocument.FieldFileExt:
		return m.OldFileExt(ctx)
	case draftdocument.FieldContentHash:
		return m.OldContentHash(ctx)
	case draftdocument.FieldDocumentClass:
		return m.OldDocumentClass(ctx)
	case draftdocument.FieldProvider:
		return m.OldProvider(ctx)
	case draftdocument.FieldAttempts:
		return m.OldAttempts(ctx)
	case draftdocument.FieldStatus:
		return m.OldStatus(ctx)
	case draftdocument.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case draftdocument.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	case draftdocument.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DraftDocument field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DraftDocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case draftdocument.FieldDraftID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDraftID(v)
		return nil
	case draftdocument.FieldPartnerPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPartnerPosition(v)
		return nil
	case draftdocument.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case draftdocument.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case draftdocument.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case draftdocument.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case draftdocument.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case draftdocument.FieldDocumentClass:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentClass(v)
		return nil
	case draftdocument.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case draftdocument.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case draftdocument.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case draftdocument.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case draftdocument.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	case draftdocument.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DraftDocument field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DraftDocumentMutation) AddedFields() []string {
	var fields []string
	if m.addpartner_position != nil {
		fields = append(fields, draftdocument.FieldPartnerPosition)
	}
	if m.addattempts != nil {
		fields = append(fields, draftdocument.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DraftDocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case draftdocument.FieldPartnerPosition:
		return m.AddedPartnerPosition()
	case draftdocument.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DraftDocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case draftdocument.FieldPartnerPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPartnerPosition(v)
		return nil
	case draftdocument.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown DraftDocument numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DraftDocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(draftdocument.FieldDocumentClass) {
		fields = append(fields, draftdocument.FieldDocumentClass)
	}
	if m.FieldCleared(draftdocument.FieldProvider) {
		fields = append(fields, draftdocument.FieldProvider)
	}
	if m.FieldCleared(draftdocument.FieldStatus) {
		fields = append(fields, draftdocument.FieldStatus)
	}
	if m.FieldCleared(draftdocument.FieldErrorMessage) {
		fields = append(fields, draftdocument.FieldErrorMessage)
	}
	if m.FieldCleared(draftdocument.FieldProcessedAt) {
		fields = append(fields, draftdocument.FieldProcessedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DraftDocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DraftDocumentMutation) ClearField(name string) error {
	switch name {
	case draftdocument.FieldDocumentClass:
		m.ClearDocumentClass()
		return nil
	case draftdocument.FieldProvider:
		m.ClearProvider()
		return nil
	case draftdocument.FieldStatus:
		m.ClearStatus()
		return nil
	case draftdocument.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case draftdocument.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown DraftDocument nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DraftDocumentMutation) ResetField(name string) error {
	switch name {
	case draftdocument.FieldDraftID:
		m.ResetDraftID()
		return nil
	case draftdocument.FieldPartnerPosition:
		m.ResetPartnerPosition()
		return nil
	case draftdocument.FieldRole:
		m.ResetRole()
		return nil
	case draftdocument.FieldFilename:
		m.ResetFilename()
		return nil
	case draftdocument.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case draftdocument.FieldFileExt:
		m.ResetFileExt()
		return nil
	case draftdocument.FieldContentHash:
		m.ResetContentHash()
		return nil
	case draftdocument.FieldDocumentClass:
		m.ResetDocumentClass()
		return nil
	case draftdocument.FieldProvider:
		m.ResetProvider()
		return nil
	case draftdocument.FieldAttempts:
		m.ResetAttempts()
		return nil
	case draftdocument.FieldStatus:
		m.ResetStatus()
		return nil
	case draftdocument.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case draftdocument.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	case draftdocument.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown DraftDocument field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DraftDocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.draft != nil {
		edges = append(edges, draftdocument.EdgeDraft)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DraftDocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case draftdocument.EdgeDraft:
		if id := m.draft; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DraftDocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DraftDocumentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DraftDocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddraft {
		edges = append(edges, draftdocument.EdgeDraft)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DraftDocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case draftdocument.EdgeDraft:
		return m.cleareddraft
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DraftDocumentMutation) ClearEdge(name string) error {
	switch name {
	case draftdocument.EdgeDraft:
		m.ClearDraft()
		return nil
	}
	return fmt.Errorf("unknown DraftDocument unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DraftDocumentMutation) ResetEdge(name string) error {
	switch name {
	case draftdocument.EdgeDraft:
		m.ResetDraft()
		return nil
	}
	return fmt.Errorf("unknown DraftDocument edge %s", name)
}

// PartnerMutation represents an operation that mutates the Partner nodes in the graph.
type PartnerMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	position      *int
	addposition   *int
	fields        *map[string]string
	provenance    *map[string]string
	clearedFields map[string]struct{}
	draft         *uuid.UUID
	cleareddraft  bool
	done          bool
	oldValue      func(context.Context) (*Partner, error)
	predicates    []predicate.Partner
}

var _ ent.Mutation = (*PartnerMutation)(nil)

// partnerOption allows management of the mutation configuration using functional options.
type partnerOption func(*PartnerMutation)

// newPartnerMutation creates new mutation for the Partner entity.
func newPartnerMutation(c config, op Op, opts ...partnerOption) *PartnerMutation {
	m := &PartnerMutation{
		config:        c,
		op:            op,
		typ:           TypePartner,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPartnerID sets the ID field of the mutation.
func withPartnerID(id uuid.UUID) partnerOption {
	return func(m *PartnerMutation) {
		var (
			err   error
			once  sync.Once
			value *Partner
		)
		m.oldValue = func(ctx context.Context) (*Partner, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Partner.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPartner sets the old Partner of the mutation.
func withPartner(node *Partner) partnerOption {
	return func(m *PartnerMutation) {
		m.oldValue = func(context.Context) (*Partner, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PartnerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PartnerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Partner entities.
func (m *PartnerMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PartnerMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PartnerMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Partner.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDraftID sets the "draft_id" field.
func (m *PartnerMutation) SetDraftID(u uuid.UUID) {
	m.draft = &u
}

// DraftID returns the value of the "draft_id" field in the mutation.
func (m *PartnerMutation) DraftID() (r uuid.UUID, exists bool) {
	v := m.draft
	if v == nil {
		return
	}
	return *v, true
}

// OldDraftID returns the old "draft_id" field's value of the Partner entity.
// If the Partner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PartnerMutation) OldDraftID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDraftID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDraftID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDraftID: %w", err)
	}
	return oldValue.DraftID, nil
}

// ResetDraftID resets all changes to the "draft_id" field.
func (m *PartnerMutation) ResetDraftID() {
	m.draft = nil
}

// SetPosition sets the "position" field.
func (m *PartnerMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *PartnerMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the Partner entity.
// If the Partner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PartnerMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *PartnerMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *PartnerMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *PartnerMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetFields sets the "fields" field.
func (m *PartnerMutation) SetFields(value map[string]string) {
	m.fields = &value
}

// GetFields returns the value of the "fields" field in the mutation.
func (m *PartnerMutation) GetFields() (r map[string]string, exists bool) {
	v := m.fields
	if v == nil {
		return
	}
	return *v, true
}

// OldFields returns the old "fields" field's value of the Partner entity.
// If the Partner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PartnerMutation) OldFields(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFields: %w", err)
	}
	return oldValue.Fields, nil
}

// ClearFields clears the value of the "fields" field.
func (m *PartnerMutation) ClearFields() {
	m.fields = nil
	m.clearedFields[partner.FieldFields] = struct{}{}
}

// FieldsCleared returns if the "fields" field was cleared in this mutation.
func (m *PartnerMutation) FieldsCleared() bool {
	_, ok := m.clearedFields[partner.FieldFields]
	return ok
}

// ResetFields resets all changes to the "fields" field.
func (m *PartnerMutation) ResetFields() {
	m.fields = nil
	delete(m.clearedFields, partner.FieldFields)
}

// SetProvenance sets the "provenance" field.
func (m *PartnerMutation) SetProvenance(value map[string]string) {
	m.provenance = &value
}

// Provenance returns the value of the "provenance" field in the mutation.
func (m *PartnerMutation) Provenance() (r map[string]string, exists bool) {
	v := m.provenance
	if v == nil {
		return
	}
	return *v, true
}

// OldProvenance returns the old "provenance" field's value of the Partner entity.
// If the Partner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PartnerMutation) OldProvenance(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvenance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvenance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvenance: %w", err)
	}
	return oldValue.Provenance, nil
}

// ClearProvenance clears the value of the "provenance" field.
func (m *PartnerMutation) ClearProvenance() {
	m.provenance = nil
	m.clearedFields[partner.FieldProvenance] = struct{}{}
}

// ProvenanceCleared returns if the "provenance" field was cleared in this mutation.
func (m *PartnerMutation) ProvenanceCleared() bool {
	_, ok := m.clearedFields[partner.FieldProvenance]
	return ok
}

// ResetProvenance resets all changes to the "provenance" field.
func (m *PartnerMutation) ResetProvenance() {
	m.provenance = nil
	delete(m.clearedFields, partner.FieldProvenance)
}

// ClearDraft clears the "draft" edge to the ContractDraft entity.
func (m *PartnerMutation) ClearDraft() {
	m.cleareddraft = true
	m.clearedFields[partner.FieldDraftID] = struct{}{}
}

// DraftCleared reports if the "draft" edge to the ContractDraft entity was cleared.
func (m *PartnerMutation) DraftCleared() bool {
	return m.cleareddraft
}

// DraftIDs returns the "draft" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DraftID instead. It exists only for internal usage by the builders.
func (m *PartnerMutation) DraftIDs() (ids []uuid.UUID) {
	if id := m.draft; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDraft resets all changes to the "draft" edge.
func (m *PartnerMutation) ResetDraft() {
	m.draft = nil
	m.cleareddraft = false
}

// Where appends a list predicates to the PartnerMutation builder.
func (m *PartnerMutation) Where(ps ...predicate.Partner) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PartnerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PartnerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Partner, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PartnerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PartnerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Partner).
func (m *PartnerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PartnerMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.draft != nil {
		fields = append(fields, partner.FieldDraftID)
	}
	if m.position != nil {
		fields = append(fields, partner.FieldPosition)
	}
	if m.fields != nil {
		fields = append(fields, partner.FieldFields)
	}
	if m.provenance != nil {
		fields = append(fields, partner.FieldProvenance)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PartnerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case partner.FieldDraftID:
		return m.DraftID()
	case partner.FieldPosition:
		return m.Position()
	case partner.FieldFields:
		return m.GetFields()
	case partner.FieldProvenance:
		return m.Provenance()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PartnerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case partner.FieldDraftID:
		return m.OldDraftID(ctx)
	case partner.FieldPosition:
		return m.OldPosition(ctx)
	case partner.FieldFields:
		return m.OldFields(ctx)
	case partner.FieldProvenance:
		return m.OldProvenance(ctx)
	}
	return nil, fmt.Errorf("unknown Partner field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PartnerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case partner.FieldDraftID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDraftID(v)
		return nil
	case partner.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case partner.FieldFields:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFields(v)
		return nil
	case partner.FieldProvenance:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvenance(v)
		return nil
	}
	return fmt.Errorf("unknown Partner field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PartnerMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, partner.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PartnerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case partner.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PartnerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case partner.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown Partner numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PartnerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(partner.FieldFields) {
		fields = append(fields, partner.FieldFields)
	}
	if m.FieldCleared(partner.FieldProvenance) {
		fields = append(fields, partner.FieldProvenance)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PartnerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PartnerMutation) ClearField(name string) error {
	switch name {
	case partner.FieldFields:
		m.ClearFields()
		return nil
	case partner.FieldProvenance:
		m.ClearProvenance()
		return nil
	}
	return fmt.Errorf("unknown Partner nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PartnerMutation) ResetField(name string) error {
	switch name {
	case partner.FieldDraftID:
		m.ResetDraftID()
		return nil
	case partner.FieldPosition:
		m.ResetPosition()
		return nil
	case partner.FieldFields:
		m.ResetFields()
		return nil
	case partner.FieldProvenance:
		m.ResetProvenance()
		return nil
	}
	return fmt.Errorf("unknown Partner field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PartnerMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.draft != nil {
		edges = append(edges, partner.EdgeDraft)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PartnerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case partner.EdgeDraft:
		if id := m.draft; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PartnerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PartnerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PartnerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddraft {
		edges = append(edges, partner.EdgeDraft)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PartnerMutation) EdgeCleared(name string) bool {
	switch name {
	case partner.EdgeDraft:
		return m.cleareddraft
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PartnerMutation) ClearEdge(name string) error {
	switch name {
	case partner.EdgeDraft:
		m.ClearDraft()
		return nil
	}
	return fmt.Errorf("unknown Partner unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PartnerMutation) ResetEdge(name string) error {
	switch name {
	case partner.EdgeDraft:
		m.ResetDraft()
		return nil
	}
	return fmt.Errorf("unknown Partner edge %s", name)
}
