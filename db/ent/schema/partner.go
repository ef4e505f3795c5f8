package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Partner struct{ ent.Schema }

func (Partner) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "draft_partners"},
	}
}

func (Partner) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("draft_id", uuid.UUID{}),
		field.Int("position").NonNegative(),
		field.JSON("fields", map[string]string{}).Optional(),
		field.JSON("provenance", map[string]string{}).Optional(),
	}
}

func (Partner) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY partners -> ONE draft (FK: draft_partners.draft_id)
		edge.From("draft", ContractDraft.Type).
			Ref("partners").
			Field("draft_id").
			Required().
			Unique(),
	}
}

func (Partner) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("draft_id", "position").Unique(),
	}
}
