// Code generated by ent, DO NOT EDIT.

package partner

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/pcaldeira/contractdraft/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Partner {
	return predicate.Partner(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Partner {
	return predicate.Partner(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Partner {
	return predicate.Partner(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Partner {
	return predicate.Partner(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Partner {
	return predicate.Partner(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Partner {
	return predicate.Partner(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Partner {
	return predicate.Partner(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Partner {
	return predicate.Partner(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Partner {
	return predicate.Partner(sql.FieldLTE(FieldID, id))
}

// DraftID applies equality check predicate on the "draft_id" field. It's identical to DraftIDEQ.
func DraftID(v uuid.UUID) predicate.Partner {
	return predicate.Partner(sql.FieldEQ(FieldDraftID, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.Partner {
	return predicate.Partner(sql.FieldEQ(FieldPosition, v))
}

// DraftIDEQ applies the EQ predicate on the "draft_id" field.
func DraftIDEQ(v uuid.UUID) predicate.Partner {
	return predicate.Partner(sql.FieldEQ(FieldDraftID, v))
}

// DraftIDNEQ applies the NEQ predicate on the "draft_id" field.
func DraftIDNEQ(v uuid.UUID) predicate.Partner {
	return predicate.Partner(sql.FieldNEQ(FieldDraftID, v))
}

// DraftIDIn applies the In predicate on the "draft_id" field.
func DraftIDIn(vs ...uuid.UUID) predicate.Partner {
	return predicate.Partner(sql.FieldIn(FieldDraftID, vs...))
}

// DraftIDNotIn applies the NotIn predicate on the "draft_id" field.
func DraftIDNotIn(vs ...uuid.UUID) predicate.Partner {
	return predicate.Partner(sql.FieldNotIn(FieldDraftID, vs...))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.Partner {
	return predicate.Partner(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.Partner {
	return predicate.Partner(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.Partner {
	return predicate.Partner(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.Partner {
	return predicate.Partner(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.Partner {
	return predicate.Partner(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.Partner {
	return predicate.Partner(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.Partner {
	return predicate.Partner(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.Partner {
	return predicate.Partner(sql.FieldLTE(FieldPosition, v))
}

// FieldsIsNil applies the IsNil predicate on the "fields" field.
func FieldsIsNil() predicate.Partner {
	return predicate.Partner(sql.FieldIsNull(FieldFields))
}

// FieldsNotNil applies the NotNil predicate on the "fields" field.
func FieldsNotNil() predicate.Partner {
	return predicate.Partner(sql.FieldNotNull(FieldFields))
}

// ProvenanceIsNil applies the IsNil predicate on the "provenance" field.
func ProvenanceIsNil() predicate.Partner {
	return predicate.Partner(sql.FieldIsNull(FieldProvenance))
}

// ProvenanceNotNil applies the NotNil predicate on the "provenance" field.
func ProvenanceNotNil() predicate.Partner {
	return predicate.Partner(sql.FieldNotNull(FieldProvenance))
}

// HasDraft applies the HasEdge predicate on the "draft" edge.
func HasDraft() predicate.Partner {
	return predicate.Partner(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DraftTable, DraftColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDraftWith applies the HasEdge predicate on the "draft" edge with a given conditions (other predicates).
func HasDraftWith(preds ...predicate.ContractDraft) predicate.Partner {
	return predicate.Partner(func(s *sql.Selector) {
		step := newDraftStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Partner) predicate.Partner {
	return predicate.Partner(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Partner) predicate.Partner {
	return predicate.Partner(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Partner) predicate.Partner {
	return predicate.Partner(sql.NotPredicates(p))
}
