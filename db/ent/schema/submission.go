package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/Qyuzet/onecarbon/constants"
	"github.com/Qyuzet/onecarbon/db/ent/schema/utils"
)

type Submission struct {
	ent.Schema
}

func (Submission) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "submissions"},
	}
}

func (Submission) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("archive_name").NotEmpty(),
		field.Int("archive_size").NonNegative(),
		field.Float("total_footprint").Min(0),
		field.Int("document_count").NonNegative(),
		field.String("status").
			Validate(utils.EnumValidator(constants.SubmissionStatuses...)).
			Default(string(constants.SubmissionAnalyzed)),
		field.Time("submitted_at").Default(time.Now),
	}
}

func (Submission) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE submission -> MANY documents
		edge.To("documents", Document.Type),
	}
}

func (Submission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("submitted_at"),
	}
}
