// Code generated by ent, DO NOT EDIT.

package order

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/sugarloafbakes/orderpipe/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldID, id))
}

// Shop applies equality check predicate on the "shop" field. It's identical to ShopEQ.
func Shop(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldShop, v))
}

// OrderNumber applies equality check predicate on the "order_number" field. It's identical to OrderNumberEQ.
func OrderNumber(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldOrderNumber, v))
}

// CustomerName applies equality check predicate on the "customer_name" field. It's identical to CustomerNameEQ.
func CustomerName(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCustomerName, v))
}

// CustomerEmail applies equality check predicate on the "customer_email" field. It's identical to CustomerEmailEQ.
func CustomerEmail(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCustomerEmail, v))
}

// CustomerPhone applies equality check predicate on the "customer_phone" field. It's identical to CustomerPhoneEQ.
func CustomerPhone(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCustomerPhone, v))
}

// OrderDate applies equality check predicate on the "order_date" field. It's identical to OrderDateEQ.
func OrderDate(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldOrderDate, v))
}

// DeliveryDate applies equality check predicate on the "delivery_date" field. It's identical to DeliveryDateEQ.
func DeliveryDate(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldDeliveryDate, v))
}

// DeliveryTime applies equality check predicate on the "delivery_time" field. It's identical to DeliveryTimeEQ.
func DeliveryTime(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldDeliveryTime, v))
}

// DeliveryMethod applies equality check predicate on the "delivery_method" field. It's identical to DeliveryMethodEQ.
func DeliveryMethod(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldDeliveryMethod, v))
}

// TotalPrice applies equality check predicate on the "total_price" field. It's identical to TotalPriceEQ.
func TotalPrice(v float64) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldTotalPrice, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldNotes, v))
}

// IsSplit applies equality check predicate on the "is_split" field. It's identical to IsSplitEQ.
func IsSplit(v bool) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldIsSplit, v))
}

// ParentOrderNumber applies equality check predicate on the "parent_order_number" field. It's identical to ParentOrderNumberEQ.
func ParentOrderNumber(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldParentOrderNumber, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCreatedAt, v))
}

// ShopEQ applies the EQ predicate on the "shop" field.
func ShopEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldShop, v))
}

// ShopNEQ applies the NEQ predicate on the "shop" field.
func ShopNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldShop, v))
}

// ShopIn applies the In predicate on the "shop" field.
func ShopIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldShop, vs...))
}

// ShopNotIn applies the NotIn predicate on the "shop" field.
func ShopNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldShop, vs...))
}

// ShopGT applies the GT predicate on the "shop" field.
func ShopGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldShop, v))
}

// ShopGTE applies the GTE predicate on the "shop" field.
func ShopGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldShop, v))
}

// ShopLT applies the LT predicate on the "shop" field.
func ShopLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldShop, v))
}

// ShopLTE applies the LTE predicate on the "shop" field.
func ShopLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldShop, v))
}

// ShopContains applies the Contains predicate on the "shop" field.
func ShopContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldShop, v))
}

// ShopHasPrefix applies the HasPrefix predicate on the "shop" field.
func ShopHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldShop, v))
}

// ShopHasSuffix applies the HasSuffix predicate on the "shop" field.
func ShopHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldShop, v))
}

// ShopEqualFold applies the EqualFold predicate on the "shop" field.
func ShopEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldShop, v))
}

// ShopContainsFold applies the ContainsFold predicate on the "shop" field.
func ShopContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldShop, v))
}

// OrderNumberEQ applies the EQ predicate on the "order_number" field.
func OrderNumberEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldOrderNumber, v))
}

// OrderNumberNEQ applies the NEQ predicate on the "order_number" field.
func OrderNumberNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldOrderNumber, v))
}

// OrderNumberIn applies the In predicate on the "order_number" field.
func OrderNumberIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldOrderNumber, vs...))
}

// OrderNumberNotIn applies the NotIn predicate on the "order_number" field.
func OrderNumberNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldOrderNumber, vs...))
}

// OrderNumberGT applies the GT predicate on the "order_number" field.
func OrderNumberGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldOrderNumber, v))
}

// OrderNumberGTE applies the GTE predicate on the "order_number" field.
func OrderNumberGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldOrderNumber, v))
}

// OrderNumberLT applies the LT predicate on the "order_number" field.
func OrderNumberLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldOrderNumber, v))
}

// OrderNumberLTE applies the LTE predicate on the "order_number" field.
func OrderNumberLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldOrderNumber, v))
}

// OrderNumberContains applies the Contains predicate on the "order_number" field.
func OrderNumberContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldOrderNumber, v))
}

// OrderNumberHasPrefix applies the HasPrefix predicate on the "order_number" field.
func OrderNumberHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldOrderNumber, v))
}

// OrderNumberHasSuffix applies the HasSuffix predicate on the "order_number" field.
func OrderNumberHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldOrderNumber, v))
}

// OrderNumberEqualFold applies the EqualFold predicate on the "order_number" field.
func OrderNumberEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldOrderNumber, v))
}

// OrderNumberContainsFold applies the ContainsFold predicate on the "order_number" field.
func OrderNumberContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldOrderNumber, v))
}

// CustomerNameEQ applies the EQ predicate on the "customer_name" field.
func CustomerNameEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCustomerName, v))
}

// CustomerNameNEQ applies the NEQ predicate on the "customer_name" field.
func CustomerNameNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldCustomerName, v))
}

// CustomerNameIn applies the In predicate on the "customer_name" field.
func CustomerNameIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldCustomerName, vs...))
}

// CustomerNameNotIn applies the NotIn predicate on the "customer_name" field.
func CustomerNameNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldCustomerName, vs...))
}

// CustomerNameGT applies the GT predicate on the "customer_name" field.
func CustomerNameGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldCustomerName, v))
}

// CustomerNameGTE applies the GTE predicate on the "customer_name" field.
func CustomerNameGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldCustomerName, v))
}

// CustomerNameLT applies the LT predicate on the "customer_name" field.
func CustomerNameLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldCustomerName, v))
}

// CustomerNameLTE applies the LTE predicate on the "customer_name" field.
func CustomerNameLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldCustomerName, v))
}

// CustomerNameContains applies the Contains predicate on the "customer_name" field.
func CustomerNameContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldCustomerName, v))
}

// CustomerNameHasPrefix applies the HasPrefix predicate on the "customer_name" field.
func CustomerNameHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldCustomerName, v))
}

// CustomerNameHasSuffix applies the HasSuffix predicate on the "customer_name" field.
func CustomerNameHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldCustomerName, v))
}

// CustomerNameIsNil applies the IsNil predicate on the "customer_name" field.
func CustomerNameIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldCustomerName))
}

// CustomerNameNotNil applies the NotNil predicate on the "customer_name" field.
func CustomerNameNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldCustomerName))
}

// CustomerNameEqualFold applies the EqualFold predicate on the "customer_name" field.
func CustomerNameEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldCustomerName, v))
}

// CustomerNameContainsFold applies the ContainsFold predicate on the "customer_name" field.
func CustomerNameContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldCustomerName, v))
}

// CustomerEmailEQ applies the EQ predicate on the "customer_email" field.
func CustomerEmailEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCustomerEmail, v))
}

// CustomerEmailNEQ applies the NEQ predicate on the "customer_email" field.
func CustomerEmailNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldCustomerEmail, v))
}

// CustomerEmailIn applies the In predicate on the "customer_email" field.
func CustomerEmailIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldCustomerEmail, vs...))
}

// CustomerEmailNotIn applies the NotIn predicate on the "customer_email" field.
func CustomerEmailNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldCustomerEmail, vs...))
}

// CustomerEmailGT applies the GT predicate on the "customer_email" field.
func CustomerEmailGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldCustomerEmail, v))
}

// CustomerEmailGTE applies the GTE predicate on the "customer_email" field.
func CustomerEmailGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldCustomerEmail, v))
}

// CustomerEmailLT applies the LT predicate on the "customer_email" field.
func CustomerEmailLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldCustomerEmail, v))
}

// CustomerEmailLTE applies the LTE predicate on the "customer_email" field.
func CustomerEmailLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldCustomerEmail, v))
}

// CustomerEmailContains applies the Contains predicate on the "customer_email" field.
func CustomerEmailContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldCustomerEmail, v))
}

// CustomerEmailHasPrefix applies the HasPrefix predicate on the "customer_email" field.
func CustomerEmailHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldCustomerEmail, v))
}

// CustomerEmailHasSuffix applies the HasSuffix predicate on the "customer_email" field.
func CustomerEmailHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldCustomerEmail, v))
}

// CustomerEmailIsNil applies the IsNil predicate on the "customer_email" field.
func CustomerEmailIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldCustomerEmail))
}

// CustomerEmailNotNil applies the NotNil predicate on the "customer_email" field.
func CustomerEmailNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldCustomerEmail))
}

// CustomerEmailEqualFold applies the EqualFold predicate on the "customer_email" field.
func CustomerEmailEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldCustomerEmail, v))
}

// CustomerEmailContainsFold applies the ContainsFold predicate on the "customer_email" field.
func CustomerEmailContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldCustomerEmail, v))
}

// CustomerPhoneEQ applies the EQ predicate on the "customer_phone" field.
func CustomerPhoneEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCustomerPhone, v))
}

// CustomerPhoneNEQ applies the NEQ predicate on the "customer_phone" field.
func CustomerPhoneNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldCustomerPhone, v))
}

// CustomerPhoneIn applies the In predicate on the "customer_phone" field.
func CustomerPhoneIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldCustomerPhone, vs...))
}

// CustomerPhoneNotIn applies the NotIn predicate on the "customer_phone" field.
func CustomerPhoneNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldCustomerPhone, vs...))
}

// CustomerPhoneGT applies the GT predicate on the "customer_phone" field.
func CustomerPhoneGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldCustomerPhone, v))
}

// CustomerPhoneGTE applies the GTE predicate on the "customer_phone" field.
func CustomerPhoneGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldCustomerPhone, v))
}

// CustomerPhoneLT applies the LT predicate on the "customer_phone" field.
func CustomerPhoneLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldCustomerPhone, v))
}

// CustomerPhoneLTE applies the LTE predicate on the "customer_phone" field.
func CustomerPhoneLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldCustomerPhone, v))
}

// CustomerPhoneContains applies the Contains predicate on the "customer_phone" field.
func CustomerPhoneContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldCustomerPhone, v))
}

// CustomerPhoneHasPrefix applies the HasPrefix predicate on the "customer_phone" field.
func CustomerPhoneHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldCustomerPhone, v))
}

// CustomerPhoneHasSuffix applies the HasSuffix predicate on the "customer_phone" field.
func CustomerPhoneHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldCustomerPhone, v))
}

// CustomerPhoneIsNil applies the IsNil predicate on the "customer_phone" field.
func CustomerPhoneIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldCustomerPhone))
}

// CustomerPhoneNotNil applies the NotNil predicate on the "customer_phone" field.
func CustomerPhoneNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldCustomerPhone))
}

// CustomerPhoneEqualFold applies the EqualFold predicate on the "customer_phone" field.
func CustomerPhoneEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldCustomerPhone, v))
}

// CustomerPhoneContainsFold applies the ContainsFold predicate on the "customer_phone" field.
func CustomerPhoneContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldCustomerPhone, v))
}

// OrderDateEQ applies the EQ predicate on the "order_date" field.
func OrderDateEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldOrderDate, v))
}

// OrderDateNEQ applies the NEQ predicate on the "order_date" field.
func OrderDateNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldOrderDate, v))
}

// OrderDateIn applies the In predicate on the "order_date" field.
func OrderDateIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldOrderDate, vs...))
}

// OrderDateNotIn applies the NotIn predicate on the "order_date" field.
func OrderDateNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldOrderDate, vs...))
}

// OrderDateGT applies the GT predicate on the "order_date" field.
func OrderDateGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldOrderDate, v))
}

// OrderDateGTE applies the GTE predicate on the "order_date" field.
func OrderDateGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldOrderDate, v))
}

// OrderDateLT applies the LT predicate on the "order_date" field.
func OrderDateLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldOrderDate, v))
}

// OrderDateLTE applies the LTE predicate on the "order_date" field.
func OrderDateLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldOrderDate, v))
}

// OrderDateContains applies the Contains predicate on the "order_date" field.
func OrderDateContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldOrderDate, v))
}

// OrderDateHasPrefix applies the HasPrefix predicate on the "order_date" field.
func OrderDateHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldOrderDate, v))
}

// OrderDateHasSuffix applies the HasSuffix predicate on the "order_date" field.
func OrderDateHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldOrderDate, v))
}

// OrderDateIsNil applies the IsNil predicate on the "order_date" field.
func OrderDateIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldOrderDate))
}

// OrderDateNotNil applies the NotNil predicate on the "order_date" field.
func OrderDateNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldOrderDate))
}

// OrderDateEqualFold applies the EqualFold predicate on the "order_date" field.
func OrderDateEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldOrderDate, v))
}

// OrderDateContainsFold applies the ContainsFold predicate on the "order_date" field.
func OrderDateContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldOrderDate, v))
}

// DeliveryDateEQ applies the EQ predicate on the "delivery_date" field.
func DeliveryDateEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldDeliveryDate, v))
}

// DeliveryDateNEQ applies the NEQ predicate on the "delivery_date" field.
func DeliveryDateNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldDeliveryDate, v))
}

// DeliveryDateIn applies the In predicate on the "delivery_date" field.
func DeliveryDateIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldDeliveryDate, vs...))
}

// DeliveryDateNotIn applies the NotIn predicate on the "delivery_date" field.
func DeliveryDateNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldDeliveryDate, vs...))
}

// DeliveryDateGT applies the GT predicate on the "delivery_date" field.
func DeliveryDateGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldDeliveryDate, v))
}

// DeliveryDateGTE applies the GTE predicate on the "delivery_date" field.
func DeliveryDateGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldDeliveryDate, v))
}

// DeliveryDateLT applies the LT predicate on the "delivery_date" field.
func DeliveryDateLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldDeliveryDate, v))
}

// DeliveryDateLTE applies the LTE predicate on the "delivery_date" field.
func DeliveryDateLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldDeliveryDate, v))
}

// DeliveryDateContains applies the Contains predicate on the "delivery_date" field.
func DeliveryDateContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldDeliveryDate, v))
}

// DeliveryDateHasPrefix applies the HasPrefix predicate on the "delivery_date" field.
func DeliveryDateHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldDeliveryDate, v))
}

// DeliveryDateHasSuffix applies the HasSuffix predicate on the "delivery_date" field.
func DeliveryDateHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldDeliveryDate, v))
}

// DeliveryDateIsNil applies the IsNil predicate on the "delivery_date" field.
func DeliveryDateIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldDeliveryDate))
}

// DeliveryDateNotNil applies the NotNil predicate on the "delivery_date" field.
func DeliveryDateNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldDeliveryDate))
}

// DeliveryDateEqualFold applies the EqualFold predicate on the "delivery_date" field.
func DeliveryDateEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldDeliveryDate, v))
}

// DeliveryDateContainsFold applies the ContainsFold predicate on the "delivery_date" field.
func DeliveryDateContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldDeliveryDate, v))
}

// DeliveryTimeEQ applies the EQ predicate on the "delivery_time" field.
func DeliveryTimeEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldDeliveryTime, v))
}

// DeliveryTimeNEQ applies the NEQ predicate on the "delivery_time" field.
func DeliveryTimeNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldDeliveryTime, v))
}

// DeliveryTimeIn applies the In predicate on the "delivery_time" field.
func DeliveryTimeIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldDeliveryTime, vs...))
}

// DeliveryTimeNotIn applies the NotIn predicate on the "delivery_time" field.
func DeliveryTimeNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldDeliveryTime, vs...))
}

// DeliveryTimeGT applies the GT predicate on the "delivery_time" field.
func DeliveryTimeGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldDeliveryTime, v))
}

// DeliveryTimeGTE applies the GTE predicate on the "delivery_time" field.
func DeliveryTimeGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldDeliveryTime, v))
}

// DeliveryTimeLT applies the LT predicate on the "delivery_time" field.
func DeliveryTimeLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldDeliveryTime, v))
}

// DeliveryTimeLTE applies the LTE predicate on the "delivery_time" field.
func DeliveryTimeLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldDeliveryTime, v))
}

// DeliveryTimeContains applies the Contains predicate on the "delivery_time" field.
func DeliveryTimeContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldDeliveryTime, v))
}

// DeliveryTimeHasPrefix applies the HasPrefix predicate on the "delivery_time" field.
func DeliveryTimeHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldDeliveryTime, v))
}

// DeliveryTimeHasSuffix applies the HasSuffix predicate on the "delivery_time" field.
func DeliveryTimeHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldDeliveryTime, v))
}

// DeliveryTimeIsNil applies the IsNil predicate on the "delivery_time" field.
func DeliveryTimeIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldDeliveryTime))
}

// DeliveryTimeNotNil applies the NotNil predicate on the "delivery_time" field.
func DeliveryTimeNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldDeliveryTime))
}

// DeliveryTimeEqualFold applies the EqualFold predicate on the "delivery_time" field.
func DeliveryTimeEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldDeliveryTime, v))
}

// DeliveryTimeContainsFold applies the ContainsFold predicate on the "delivery_time" field.
func DeliveryTimeContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldDeliveryTime, v))
}

// DeliveryMethodEQ applies the EQ predicate on the "delivery_method" field.
func DeliveryMethodEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldDeliveryMethod, v))
}

// DeliveryMethodNEQ applies the NEQ predicate on the "delivery_method" field.
func DeliveryMethodNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldDeliveryMethod, v))
}

// DeliveryMethodIn applies the In predicate on the "delivery_method" field.
func DeliveryMethodIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldDeliveryMethod, vs...))
}

// DeliveryMethodNotIn applies the NotIn predicate on the "delivery_method" field.
func DeliveryMethodNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldDeliveryMethod, vs...))
}

// DeliveryMethodGT applies the GT predicate on the "delivery_method" field.
func DeliveryMethodGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldDeliveryMethod, v))
}

// DeliveryMethodGTE applies the GTE predicate on the "delivery_method" field.
func DeliveryMethodGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldDeliveryMethod, v))
}

// DeliveryMethodLT applies the LT predicate on the "delivery_method" field.
func DeliveryMethodLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldDeliveryMethod, v))
}

// DeliveryMethodLTE applies the LTE predicate on the "delivery_method" field.
func DeliveryMethodLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldDeliveryMethod, v))
}

// DeliveryMethodContains applies the Contains predicate on the "delivery_method" field.
func DeliveryMethodContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldDeliveryMethod, v))
}

// DeliveryMethodHasPrefix applies the HasPrefix predicate on the "delivery_method" field.
func DeliveryMethodHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldDeliveryMethod, v))
}

// DeliveryMethodHasSuffix applies the HasSuffix predicate on the "delivery_method" field.
func DeliveryMethodHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldDeliveryMethod, v))
}

// DeliveryMethodIsNil applies the IsNil predicate on the "delivery_method" field.
func DeliveryMethodIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldDeliveryMethod))
}

// DeliveryMethodNotNil applies the NotNil predicate on the "delivery_method" field.
func DeliveryMethodNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldDeliveryMethod))
}

// DeliveryMethodEqualFold applies the EqualFold predicate on the "delivery_method" field.
func DeliveryMethodEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldDeliveryMethod, v))
}

// DeliveryMethodContainsFold applies the ContainsFold predicate on the "delivery_method" field.
func DeliveryMethodContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldDeliveryMethod, v))
}

// TotalPriceEQ applies the EQ predicate on the "total_price" field.
func TotalPriceEQ(v float64) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldTotalPrice, v))
}

// TotalPriceNEQ applies the NEQ predicate on the "total_price" field.
func TotalPriceNEQ(v float64) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldTotalPrice, v))
}

// TotalPriceIn applies the In predicate on the "total_price" field.
func TotalPriceIn(vs ...float64) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldTotalPrice, vs...))
}

// TotalPriceNotIn applies the NotIn predicate on the "total_price" field.
func TotalPriceNotIn(vs ...float64) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldTotalPrice, vs...))
}

// TotalPriceGT applies the GT predicate on the "total_price" field.
func TotalPriceGT(v float64) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldTotalPrice, v))
}

// TotalPriceGTE applies the GTE predicate on the "total_price" field.
func TotalPriceGTE(v float64) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldTotalPrice, v))
}

// TotalPriceLT applies the LT predicate on the "total_price" field.
func TotalPriceLT(v float64) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldTotalPrice, v))
}

// TotalPriceLTE applies the LTE predicate on the "total_price" field.
func TotalPriceLTE(v float64) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldTotalPrice, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldNotes, v))
}

// IsSplitEQ applies the EQ predicate on the "is_split" field.
func IsSplitEQ(v bool) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldIsSplit, v))
}

// IsSplitNEQ applies the NEQ predicate on the "is_split" field.
func IsSplitNEQ(v bool) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldIsSplit, v))
}

// ParentOrderNumberEQ applies the EQ predicate on the "parent_order_number" field.
func ParentOrderNumberEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldParentOrderNumber, v))
}

// ParentOrderNumberNEQ applies the NEQ predicate on the "parent_order_number" field.
func ParentOrderNumberNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldParentOrderNumber, v))
}

// ParentOrderNumberIn applies the In predicate on the "parent_order_number" field.
func ParentOrderNumberIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldParentOrderNumber, vs...))
}

// ParentOrderNumberNotIn applies the NotIn predicate on the "parent_order_number" field.
func ParentOrderNumberNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldParentOrderNumber, vs...))
}

// ParentOrderNumberGT applies the GT predicate on the "parent_order_number" field.
func ParentOrderNumberGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldParentOrderNumber, v))
}

// ParentOrderNumberGTE applies the GTE predicate on the "parent_order_number" field.
func ParentOrderNumberGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldParentOrderNumber, v))
}

// ParentOrderNumberLT applies the LT predicate on the "parent_order_number" field.
func ParentOrderNumberLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldParentOrderNumber, v))
}

// ParentOrderNumberLTE applies the LTE predicate on the "parent_order_number" field.
func ParentOrderNumberLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldParentOrderNumber, v))
}

// ParentOrderNumberContains applies the Contains predicate on the "parent_order_number" field.
func ParentOrderNumberContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldParentOrderNumber, v))
}

// ParentOrderNumberHasPrefix applies the HasPrefix predicate on the "parent_order_number" field.
func ParentOrderNumberHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldParentOrderNumber, v))
}

// ParentOrderNumberHasSuffix applies the HasSuffix predicate on the "parent_order_number" field.
func ParentOrderNumberHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldParentOrderNumber, v))
}

// ParentOrderNumberIsNil applies the IsNil predicate on the "parent_order_number" field.
func ParentOrderNumberIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldParentOrderNumber))
}

// ParentOrderNumberNotNil applies the NotNil predicate on the "parent_order_number" field.
func ParentOrderNumberNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldParentOrderNumber))
}

// ParentOrderNumberEqualFold applies the EqualFold predicate on the "parent_order_number" field.
func ParentOrderNumberEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldParentOrderNumber, v))
}

// ParentOrderNumberContainsFold applies the ContainsFold predicate on the "parent_order_number" field.
func ParentOrderNumberContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldParentOrderNumber, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldCreatedAt, v))
}

// HasItems applies the HasEdge predicate on the "items" edge.
func HasItems() predicate.Order {
	return predicate.Order(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasItemsWith applies the HasEdge predicate on the "items" edge with a given conditions (other predicates).
func HasItemsWith(preds ...predicate.OrderItem) predicate.Order {
	return predicate.Order(func(s *sql.Selector) {
		step := newItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Order) predicate.Order {
	return predicate.Order(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Order) predicate.Order {
	return predicate.Order(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Order) predicate.Order {
	return predicate.Order(sql.NotPredicates(p))
}
