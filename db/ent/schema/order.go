package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Order is a persisted canonical order, possibly one split of a
// multi-primary webhook order.
type Order struct{ ent.Schema }

func (Order) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "orders"},
	}
}

func (Order) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("shop").NotEmpty(),
		field.String("order_number").NotEmpty(),
		field.String("customer_name").Optional(),
		field.String("customer_email").Optional().Nillable(),
		field.String("customer_phone").Optional().Nillable(),
		// Delivery fields stay free text: they come from note attributes
		// whose format the shop controls, not us.
		field.String("order_date").Optional(),
		field.String("delivery_date").Optional(),
		field.String("delivery_time").Optional(),
		field.String("delivery_method").Optional(),
		field.Float("total_price").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("notes").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Bool("is_split").Default(false),
		field.String("parent_order_number").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Order) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE order -> MANY items
		edge.To("items", OrderItem.Type),
	}
}

func (Order) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("shop", "order_number").Unique(),
		index.Fields("shop", "delivery_date"),
	}
}
