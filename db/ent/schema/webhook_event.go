package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// WebhookEvent is the order webhook inbox: raw payloads with processing flags.
type WebhookEvent struct{ ent.Schema }

func (WebhookEvent) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "webhook_events"},
	}
}

func (WebhookEvent) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("shop").NotEmpty(),
		field.JSON("payload", json.RawMessage{}),
		field.Time("received_at").Default(time.Now),
		field.Bool("processed").Default(false),
		field.Time("processed_at").Optional().Nillable(),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
	}
}

func (WebhookEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("shop", "processed", "received_at"),
	}
}
