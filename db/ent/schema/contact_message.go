package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type ContactMessage struct {
	ent.Schema
}

func (ContactMessage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "contact_messages"},
	}
}

func (ContactMessage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty(),
		field.String("email").NotEmpty(),
		field.Text("message").NotEmpty(),
		field.Time("received_at").Default(time.Now),
	}
}

func (ContactMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("received_at"),
	}
}
