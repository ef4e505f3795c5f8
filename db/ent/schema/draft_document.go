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

type DraftDocument struct{ ent.Schema }

func (DraftDocument) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "draft_documents"},
	}
}

func (DraftDocument) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("draft_id", uuid.UUID{}),
		// -1 marks a company document, >= 0 is a partner index.
		field.Int("partner_position").Default(-1),
		field.String("role").NotEmpty().
			Validate(utils.EnumValidator(constants.RolesAsStrings()...)),
		field.String("filename").NotEmpty(),
		field.String("source_path").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.Bytes("content_hash").MaxLen(32),
		field.String("document_class").Optional().Nillable(),
		field.String("provider").Optional().Nillable(),
		field.Int("attempts").Default(0),
		// Always written: PENDING on create, DONE/FAILED on processing.
		field.String("status").Optional(),
		field.String("error_message").Optional().Nillable(),
		field.Time("uploaded_at").Default(time.Now),
		field.Time("processed_at").Optional().Nillable(),
	}
}

func (DraftDocument) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("draft", ContractDraft.Type).
			Ref("documents").
			Field("draft_id").
			Unique().
			Required(),
	}
}
