// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// OrdersColumns holds the columns for the "orders" table.
	OrdersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "shop", Type: field.TypeString},
		{Name: "order_number", Type: field.TypeString},
		{Name: "customer_name", Type: field.TypeString, Nullable: true},
		{Name: "customer_email", Type: field.TypeString, Nullable: true},
		{Name: "customer_phone", Type: field.TypeString, Nullable: true},
		{Name: "order_date", Type: field.TypeString, Nullable: true},
		{Name: "delivery_date", Type: field.TypeString, Nullable: true},
		{Name: "delivery_time", Type: field.TypeString, Nullable: true},
		{Name: "delivery_method", Type: field.TypeString, Nullable: true},
		{Name: "total_price", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "notes", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "is_split", Type: field.TypeBool, Default: false},
		{Name: "parent_order_number", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// OrdersTable holds the schema information for the "orders" table.
	OrdersTable = &schema.Table{
		Name:       "orders",
		Columns:    OrdersColumns,
		PrimaryKey: []*schema.Column{OrdersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "order_shop_order_number",
				Unique:  true,
				Columns: []*schema.Column{OrdersColumns[1], OrdersColumns[2]},
			},
			{
				Name:    "order_shop_delivery_date",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[1], OrdersColumns[7]},
			},
		},
	}
	// OrderItemsColumns holds the columns for the "order_items" table.
	OrderItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "kind", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "variant", Type: field.TypeString, Nullable: true},
		{Name: "quantity", Type: field.TypeInt},
		{Name: "price", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "annotations", Type: field.TypeJSON, Nullable: true},
		{Name: "properties", Type: field.TypeJSON, Nullable: true},
		{Name: "position", Type: field.TypeInt},
		{Name: "order_id", Type: field.TypeUUID},
	}
	// OrderItemsTable holds the schema information for the "order_items" table.
	OrderItemsTable = &schema.Table{
		Name:       "order_items",
		Columns:    OrderItemsColumns,
		PrimaryKey: []*schema.Column{OrderItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "order_items_orders_items",
				Columns:    []*schema.Column{OrderItemsColumns[9]},
				RefColumns: []*schema.Column{OrdersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "orderitem_order_id_position",
				Unique:  false,
				Columns: []*schema.Column{OrderItemsColumns[9], OrderItemsColumns[8]},
			},
		},
	}
	// WebhookEventsColumns holds the columns for the "webhook_events" table.
	WebhookEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "shop", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "received_at", Type: field.TypeTime},
		{Name: "processed", Type: field.TypeBool, Default: false},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
	}
	// WebhookEventsTable holds the schema information for the "webhook_events" table.
	WebhookEventsTable = &schema.Table{
		Name:       "webhook_events",
		Columns:    WebhookEventsColumns,
		PrimaryKey: []*schema.Column{WebhookEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "webhookevent_shop_processed_received_at",
				Unique:  false,
				Columns: []*schema.Column{WebhookEventsColumns[1], WebhookEventsColumns[4], WebhookEventsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		OrdersTable,
		OrderItemsTable,
		WebhookEventsTable,
	}
)

func init() {
	OrdersTable.Annotation = &entsql.Annotation{
		Table: "orders",
	}
	OrderItemsTable.ForeignKeys[0].RefTable = OrdersTable
	OrderItemsTable.Annotation = &entsql.Annotation{
		Table: "order_items",
	}
	WebhookEventsTable.Annotation = &entsql.Annotation{
		Table: "webhook_events",
	}
}
