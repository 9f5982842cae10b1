// Code generated by ent, DO NOT EDIT.

package webhookevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/sugarloafbakes/orderpipe/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLTE(FieldID, id))
}

// Shop applies equality check predicate on the "shop" field. It's identical to ShopEQ.
func Shop(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldShop, v))
}

// ReceivedAt applies equality check predicate on the "received_at" field. It's identical to ReceivedAtEQ.
func ReceivedAt(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldReceivedAt, v))
}

// Processed applies equality check predicate on the "processed" field. It's identical to ProcessedEQ.
func Processed(v bool) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldProcessed, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldProcessedAt, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// ShopEQ applies the EQ predicate on the "shop" field.
func ShopEQ(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldShop, v))
}

// ShopNEQ applies the NEQ predicate on the "shop" field.
func ShopNEQ(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNEQ(FieldShop, v))
}

// ShopIn applies the In predicate on the "shop" field.
func ShopIn(vs ...string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldIn(FieldShop, vs...))
}

// ShopNotIn applies the NotIn predicate on the "shop" field.
func ShopNotIn(vs ...string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNotIn(FieldShop, vs...))
}

// ShopGT applies the GT predicate on the "shop" field.
func ShopGT(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGT(FieldShop, v))
}

// ShopGTE applies the GTE predicate on the "shop" field.
func ShopGTE(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGTE(FieldShop, v))
}

// ShopLT applies the LT predicate on the "shop" field.
func ShopLT(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLT(FieldShop, v))
}

// ShopLTE applies the LTE predicate on the "shop" field.
func ShopLTE(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLTE(FieldShop, v))
}

// ShopContains applies the Contains predicate on the "shop" field.
func ShopContains(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldContains(FieldShop, v))
}

// ShopHasPrefix applies the HasPrefix predicate on the "shop" field.
func ShopHasPrefix(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldHasPrefix(FieldShop, v))
}

// ShopHasSuffix applies the HasSuffix predicate on the "shop" field.
func ShopHasSuffix(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldHasSuffix(FieldShop, v))
}

// ShopEqualFold applies the EqualFold predicate on the "shop" field.
func ShopEqualFold(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEqualFold(FieldShop, v))
}

// ShopContainsFold applies the ContainsFold predicate on the "shop" field.
func ShopContainsFold(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldContainsFold(FieldShop, v))
}

// ReceivedAtEQ applies the EQ predicate on the "received_at" field.
func ReceivedAtEQ(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldReceivedAt, v))
}

// ReceivedAtNEQ applies the NEQ predicate on the "received_at" field.
func ReceivedAtNEQ(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNEQ(FieldReceivedAt, v))
}

// ReceivedAtIn applies the In predicate on the "received_at" field.
func ReceivedAtIn(vs ...time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldIn(FieldReceivedAt, vs...))
}

// ReceivedAtNotIn applies the NotIn predicate on the "received_at" field.
func ReceivedAtNotIn(vs ...time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNotIn(FieldReceivedAt, vs...))
}

// ReceivedAtGT applies the GT predicate on the "received_at" field.
func ReceivedAtGT(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGT(FieldReceivedAt, v))
}

// ReceivedAtGTE applies the GTE predicate on the "received_at" field.
func ReceivedAtGTE(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGTE(FieldReceivedAt, v))
}

// ReceivedAtLT applies the LT predicate on the "received_at" field.
func ReceivedAtLT(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLT(FieldReceivedAt, v))
}

// ReceivedAtLTE applies the LTE predicate on the "received_at" field.
func ReceivedAtLTE(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLTE(FieldReceivedAt, v))
}

// ProcessedEQ applies the EQ predicate on the "processed" field.
func ProcessedEQ(v bool) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldProcessed, v))
}

// ProcessedNEQ applies the NEQ predicate on the "processed" field.
func ProcessedNEQ(v bool) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNEQ(FieldProcessed, v))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLTE(FieldProcessedAt, v))
}

// ProcessedAtIsNil applies the IsNil predicate on the "processed_at" field.
func ProcessedAtIsNil() predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldIsNull(FieldProcessedAt))
}

// ProcessedAtNotNil applies the NotNil predicate on the "processed_at" field.
func ProcessedAtNotNil() predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNotNull(FieldProcessedAt))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.FieldContainsFold(FieldErrorMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WebhookEvent) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WebhookEvent) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WebhookEvent) predicate.WebhookEvent {
	return predicate.WebhookEvent(sql.NotPredicates(p))
}
