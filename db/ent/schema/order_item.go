package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/sugarloafbakes/orderpipe/constants"
	"github.com/sugarloafbakes/orderpipe/db/ent/schema/utils"
)

// OrderItem is one line of a persisted order.
type OrderItem struct{ ent.Schema }

func (OrderItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "order_items"},
	}
}

func (OrderItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK so we can index by order
		field.UUID("order_id", uuid.UUID{}),
		field.String("kind").NotEmpty().
			Validate(utils.EnumValidator(constants.ItemKinds...)),
		field.String("title").NotEmpty(),
		field.String("variant").Optional(),
		field.Int("quantity").Positive(),
		field.Float("price").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Strings("annotations").Optional(),
		field.JSON("properties", map[string]string{}).Optional(),
		// payload order, preserved so splits stay deterministic
		field.Int("position").NonNegative(),
	}
}

func (OrderItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("order", Order.Type).
			Ref("items").
			Field("order_id").
			Unique().
			Required(),
	}
}

func (OrderItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("order_id", "position"),
	}
}
