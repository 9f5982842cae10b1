// Code generated by ent, DO NOT EDIT.

package order

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the order type in the database.
	Label = "order"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldShop holds the string denoting the shop field in the database.
	FieldShop = "shop"
	// FieldOrderNumber holds the string denoting the order_number field in the database.
	FieldOrderNumber = "order_number"
	// FieldCustomerName holds the string denoting the customer_name field in the database.
	FieldCustomerName = "customer_name"
	// FieldCustomerEmail holds the string denoting the customer_email field in the database.
	FieldCustomerEmail = "customer_email"
	// FieldCustomerPhone holds the string denoting the customer_phone field in the database.
	FieldCustomerPhone = "customer_phone"
	// FieldOrderDate holds the string denoting the order_date field in the database.
	FieldOrderDate = "order_date"
	// FieldDeliveryDate holds the string denoting the delivery_date field in the database.
	FieldDeliveryDate = "delivery_date"
	// FieldDeliveryTime holds the string denoting the delivery_time field in the database.
	FieldDeliveryTime = "delivery_time"
	// FieldDeliveryMethod holds the string denoting the delivery_method field in the database.
	FieldDeliveryMethod = "delivery_method"
	// FieldTotalPrice holds the string denoting the total_price field in the database.
	FieldTotalPrice = "total_price"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldIsSplit holds the string denoting the is_split field in the database.
	FieldIsSplit = "is_split"
	// FieldParentOrderNumber holds the string denoting the parent_order_number field in the database.
	FieldParentOrderNumber = "parent_order_number"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeItems holds the string denoting the items edge name in mutations.
	EdgeItems = "items"
	// Table holds the table name of the order in the database.
	Table = "orders"
	// ItemsTable is the table that holds the items relation/edge.
	ItemsTable = "order_items"
	// ItemsInverseTable is the table name for the OrderItem entity.
	// It exists in this package in order to avoid circular dependency with the "orderitem" package.
	ItemsInverseTable = "order_items"
	// ItemsColumn is the table column denoting the items relation/edge.
	ItemsColumn = "order_id"
)

// Columns holds all SQL columns for order fields.
var Columns = []string{
	FieldID,
	FieldShop,
	FieldOrderNumber,
	FieldCustomerName,
	FieldCustomerEmail,
	FieldCustomerPhone,
	FieldOrderDate,
	FieldDeliveryDate,
	FieldDeliveryTime,
	FieldDeliveryMethod,
	FieldTotalPrice,
	FieldNotes,
	FieldIsSplit,
	FieldParentOrderNumber,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ShopValidator is a validator for the "shop" field. It is called by the builders before save.
	ShopValidator func(string) error
	// OrderNumberValidator is a validator for the "order_number" field. It is called by the builders before save.
	OrderNumberValidator func(string) error
	// DefaultIsSplit holds the default value on creation for the "is_split" field.
	DefaultIsSplit bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Order queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByShop orders the results by the shop field.
func ByShop(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShop, opts...).ToFunc()
}

// ByOrderNumber orders the results by the order_number field.
func ByOrderNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderNumber, opts...).ToFunc()
}

// ByCustomerName orders the results by the customer_name field.
func ByCustomerName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerName, opts...).ToFunc()
}

// ByCustomerEmail orders the results by the customer_email field.
func ByCustomerEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerEmail, opts...).ToFunc()
}

// ByCustomerPhone orders the results by the customer_phone field.
func ByCustomerPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerPhone, opts...).ToFunc()
}

// ByOrderDate orders the results by the order_date field.
func ByOrderDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderDate, opts...).ToFunc()
}

// ByDeliveryDate orders the results by the delivery_date field.
func ByDeliveryDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveryDate, opts...).ToFunc()
}

// ByDeliveryTime orders the results by the delivery_time field.
func ByDeliveryTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveryTime, opts...).ToFunc()
}

// ByDeliveryMethod orders the results by the delivery_method field.
func ByDeliveryMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveryMethod, opts...).ToFunc()
}

// ByTotalPrice orders the results by the total_price field.
func ByTotalPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalPrice, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByIsSplit orders the results by the is_split field.
func ByIsSplit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsSplit, opts...).ToFunc()
}

// ByParentOrderNumber orders the results by the parent_order_number field.
func ByParentOrderNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentOrderNumber, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByItemsCount orders the results by items count.
func ByItemsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newItemsStep(), opts...)
	}
}

// ByItems orders the results by items terms.
func ByItems(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newItemsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newItemsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ItemsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
	)
}
