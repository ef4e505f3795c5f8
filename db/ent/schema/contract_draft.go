package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"

	"github.com/pcaldeira/contractdraft/constants"
	"github.com/pcaldeira/contractdraft/db/ent/schema/utils"
)

type ContractDraft struct{ ent.Schema }

func (ContractDraft) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "contract_drafts"},
	}
}

func (ContractDraft) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty(),
		field.String("status").
			Default(string(constants.DraftStatusDraft)).
			Validate(utils.EnumValidator(
				string(constants.DraftStatusDraft),
				string(constants.DraftStatusFinalized),
			)),
		// Canonical company fields and their provenance, keyed by field name.
		field.JSON("company_fields", map[string]string{}).Optional(),
		field.JSON("company_provenance", map[string]string{}).Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ContractDraft) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE draft -> MANY partners
		edge.To("partners", Partner.Type),
		// ONE draft -> MANY uploaded documents
		edge.To("documents", DraftDocument.Type),
	}
}
