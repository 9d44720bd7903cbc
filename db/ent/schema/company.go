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
)

type Company struct {
	ent.Schema
}

func (Company) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "companies"},
	}
}

func (Company) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty(),
		field.Time("registered_at").Default(time.Now),
	}
}

func (Company) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE company -> MANY ledger entries
		edge.To("ledger_entries", LedgerEntry.Type),
	}
}

func (Company) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name").Unique(),
	}
}
