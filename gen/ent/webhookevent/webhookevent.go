// Code generated by ent, DO NOT EDIT.

package webhookevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the webhookevent type in the database.
	Label = "webhook_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldShop holds the string denoting the shop field in the database.
	FieldShop = "shop"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldReceivedAt holds the string denoting the received_at field in the database.
	FieldReceivedAt = "received_at"
	// FieldProcessed holds the string denoting the processed field in the database.
	FieldProcessed = "processed"
	// FieldProcessedAt holds the string denoting the processed_at field in the database.
	FieldProcessedAt = "processed_at"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// Table holds the table name of the webhookevent in the database.
	Table = "webhook_events"
)

// Columns holds all SQL columns for webhookevent fields.
var Columns = []string{
	FieldID,
	FieldShop,
	FieldPayload,
	FieldReceivedAt,
	FieldProcessed,
	FieldProcessedAt,
	FieldErrorMessage,
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
	// DefaultReceivedAt holds the default value on creation for the "received_at" field.
	DefaultReceivedAt func() time.Time
	// DefaultProcessed holds the default value on creation for the "processed" field.
	DefaultProcessed bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the WebhookEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByShop orders the results by the shop field.
func ByShop(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShop, opts...).ToFunc()
}

// ByReceivedAt orders the results by the received_at field.
func ByReceivedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReceivedAt, opts...).ToFunc()
}

// ByProcessed orders the results by the processed field.
func ByProcessed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessed, opts...).ToFunc()
}

// ByProcessedAt orders the results by the processed_at field.
func ByProcessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedAt, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}
