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

type LedgerEntry struct {
	ent.Schema
}

func (LedgerEntry) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ledger_entries"},
	}
}

func (LedgerEntry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("company_id", uuid.UUID{}),
		// integral deposits in document order; immutable once written
		field.JSON("deposits", []int64{}),
		field.String("transaction_id").NotEmpty(),
		field.Time("recorded_at").Default(time.Now),
	}
}

func (LedgerEntry) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY entries -> ONE company
		edge.From("company", Company.Type).
			Ref("ledger_entries").
			Field("company_id").
			Required().
			Unique(),
	}
}

func (LedgerEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id", "recorded_at"),
		index.Fields("transaction_id").Unique(),
	}
}
