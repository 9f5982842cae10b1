// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/sugarloafbakes/orderpipe/db/ent/schema"
	"github.com/sugarloafbakes/orderpipe/gen/ent/order"
	"github.com/sugarloafbakes/orderpipe/gen/ent/orderitem"
	"github.com/sugarloafbakes/orderpipe/gen/ent/webhookevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	orderFields := schema.Order{}.Fields()
	_ = orderFields
	// orderDescShop is the schema descriptor for shop field.
	orderDescShop := orderFields[1].Descriptor()
	// order.ShopValidator is a validator for the "shop" field. It is called by the builders before save.
	order.ShopValidator = orderDescShop.Validators[0].(func(string) error)
	// orderDescOrderNumber is the schema descriptor for order_number field.
	orderDescOrderNumber := orderFields[2].Descriptor()
	// order.OrderNumberValidator is a validator for the "order_number" field. It is called by the builders before save.
	order.OrderNumberValidator = orderDescOrderNumber.Validators[0].(func(string) error)
	// orderDescIsSplit is the schema descriptor for is_split field.
	orderDescIsSplit := orderFields[12].Descriptor()
	// order.DefaultIsSplit holds the default value on creation for the is_split field.
	order.DefaultIsSplit = orderDescIsSplit.Default.(bool)
	// orderDescCreatedAt is the schema descriptor for created_at field.
	orderDescCreatedAt := orderFields[14].Descriptor()
	// order.DefaultCreatedAt holds the default value on creation for the created_at field.
	order.DefaultCreatedAt = orderDescCreatedAt.Default.(func() time.Time)
	// orderDescID is the schema descriptor for id field.
	orderDescID := orderFields[0].Descriptor()
	// order.DefaultID holds the default value on creation for the id field.
	order.DefaultID = orderDescID.Default.(func() uuid.UUID)
	orderitemFields := schema.OrderItem{}.Fields()
	_ = orderitemFields
	// orderitemDescKind is the schema descriptor for kind field.
	orderitemDescKind := orderitemFields[2].Descriptor()
	// orderitem.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	orderitem.KindValidator = func() func(string) error {
		validators := orderitemDescKind.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(kind string) error {
			for _, fn := range fns {
				if err := fn(kind); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// orderitemDescTitle is the schema descriptor for title field.
	orderitemDescTitle := orderitemFields[3].Descriptor()
	// orderitem.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	orderitem.TitleValidator = orderitemDescTitle.Validators[0].(func(string) error)
	// orderitemDescQuantity is the schema descriptor for quantity field.
	orderitemDescQuantity := orderitemFields[5].Descriptor()
	// orderitem.QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	orderitem.QuantityValidator = orderitemDescQuantity.Validators[0].(func(int) error)
	// orderitemDescPosition is the schema descriptor for position field.
	orderitemDescPosition := orderitemFields[9].Descriptor()
	// orderitem.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	orderitem.PositionValidator = orderitemDescPosition.Validators[0].(func(int) error)
	// orderitemDescID is the schema descriptor for id field.
	orderitemDescID := orderitemFields[0].Descriptor()
	// orderitem.DefaultID holds the default value on creation for the id field.
	orderitem.DefaultID = orderitemDescID.Default.(func() uuid.UUID)
	webhookeventFields := schema.WebhookEvent{}.Fields()
	_ = webhookeventFields
	// webhookeventDescShop is the schema descriptor for shop field.
	webhookeventDescShop := webhookeventFields[1].Descriptor()
	// webhookevent.ShopValidator is a validator for the "shop" field. It is called by the builders before save.
	webhookevent.ShopValidator = webhookeventDescShop.Validators[0].(func(string) error)
	// webhookeventDescReceivedAt is the schema descriptor for received_at field.
	webhookeventDescReceivedAt := webhookeventFields[3].Descriptor()
	// webhookevent.DefaultReceivedAt holds the default value on creation for the received_at field.
	webhookevent.DefaultReceivedAt = webhookeventDescReceivedAt.Default.(func() time.Time)
	// webhookeventDescProcessed is the schema descriptor for processed field.
	webhookeventDescProcessed := webhookeventFields[4].Descriptor()
	// webhookevent.DefaultProcessed holds the default value on creation for the processed field.
	webhookevent.DefaultProcessed = webhookeventDescProcessed.Default.(bool)
	// webhookeventDescID is the schema descriptor for id field.
	webhookeventDescID := webhookeventFields[0].Descriptor()
	// webhookevent.DefaultID holds the default value on creation for the id field.
	webhookevent.DefaultID = webhookeventDescID.Default.(func() uuid.UUID)
}
