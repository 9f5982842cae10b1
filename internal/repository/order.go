package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sugarloafbakes/orderpipe/constants"
	"github.com/sugarloafbakes/orderpipe/gen/ent"
	"github.com/sugarloafbakes/orderpipe/gen/ent/order"
	"github.com/sugarloafbakes/orderpipe/internal/entity"
)

type OrderRepository interface {
	// CreateWithItems persists every split of one webhook record in a single
	// transaction: either all orders and their line items land, or none do.
	CreateWithItems(ctx context.Context, orders []entity.SplitOrder) ([]uuid.UUID, error)
	ListByShop(ctx context.Context, shop string, from, to *time.Time) ([]*entity.SplitOrder, error)
}

type orderRepository struct {
	ent *ent.Client
	log *slog.Logger
}

func NewOrderRepository(entc *ent.Client, logger *slog.Logger) OrderRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &orderRepository{ent: entc, log: logger}
}

func (r *orderRepository) CreateWithItems(ctx context.Context, orders []entity.SplitOrder) ([]uuid.UUID, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	ids, err := r.createAll(ctx, tx, orders)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.log.Error("order tx rollback failed", "error", rbErr)
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	r.log.Info("orders persisted", "count", len(ids))
	return ids, nil
}

func (r *orderRepository) createAll(ctx context.Context, tx *ent.Tx, orders []entity.SplitOrder) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(orders))
	for _, so := range orders {
		builder := tx.Order.Create().
			SetShop(so.Shop).
			SetOrderNumber(so.OrderNumber).
			SetCustomerName(so.CustomerName).
			SetOrderDate(so.OrderDate).
			SetDeliveryDate(so.DeliveryDate).
			SetDeliveryTime(so.DeliveryTime).
			SetDeliveryMethod(so.DeliveryMethod).
			SetTotalPrice(so.TotalPrice.InexactFloat64()).
			SetNotes(so.Notes).
			SetIsSplit(so.IsSplit)
		if so.CustomerEmail != "" {
			builder = builder.SetCustomerEmail(so.CustomerEmail)
		}
		if so.CustomerPhone != "" {
			builder = builder.SetCustomerPhone(so.CustomerPhone)
		}
		if so.ParentOrderNumber != "" {
			builder = builder.SetParentOrderNumber(so.ParentOrderNumber)
		}

		row, err := builder.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create order %s: %w", so.OrderNumber, err)
		}

		for pos, item := range so.Items {
			create := tx.OrderItem.Create().
				SetOrderID(row.ID).
				SetKind(string(item.Kind)).
				SetTitle(item.Title).
				SetQuantity(item.Quantity).
				SetPrice(item.Price.InexactFloat64()).
				SetPosition(pos)
			if item.Variant != "" {
				create = create.SetVariant(item.Variant)
			}
			if len(item.Annotations) > 0 {
				create = create.SetAnnotations(item.Annotations)
			}
			if len(item.Properties) > 0 {
				create = create.SetProperties(item.Properties)
			}
			if _, err := create.Save(ctx); err != nil {
				return nil, fmt.Errorf("create line item for order %s: %w", so.OrderNumber, err)
			}
		}
		ids = append(ids, row.ID)
	}
	return ids, nil
}

func (r *orderRepository) ListByShop(ctx context.Context, shop string, from, to *time.Time) ([]*entity.SplitOrder, error) {
	q := r.ent.Order.Query().Where(order.Shop(shop)).WithItems()
	if from != nil {
		q = q.Where(order.CreatedAtGTE(*from))
	}
	if to != nil {
		q = q.Where(order.CreatedAtLTE(*to))
	}
	rows, err := q.Order(ent.Asc(order.FieldCreatedAt)).All(ctx)
	if err != nil {
		r.log.Error("order list failed", "shop", shop, "error", err)
		return nil, err
	}

	out := make([]*entity.SplitOrder, len(rows))
	for i, row := range rows {
		out[i] = toSplitOrder(row)
	}
	return out, nil
}

func toSplitOrder(row *ent.Order) *entity.SplitOrder {
	so := &entity.SplitOrder{
		Order: entity.Order{
			Shop:           row.Shop,
			OrderNumber:    row.OrderNumber,
			CustomerName:   row.CustomerName,
			OrderDate:      row.OrderDate,
			DeliveryDate:   row.DeliveryDate,
			DeliveryTime:   row.DeliveryTime,
			DeliveryMethod: row.DeliveryMethod,
			TotalPrice:     decimal.NewFromFloat(row.TotalPrice),
			Notes:          row.Notes,
		},
		IsSplit: row.IsSplit,
	}
	if row.CustomerEmail != nil {
		so.CustomerEmail = *row.CustomerEmail
	}
	if row.CustomerPhone != nil {
		so.CustomerPhone = *row.CustomerPhone
	}
	if row.ParentOrderNumber != nil {
		so.ParentOrderNumber = *row.ParentOrderNumber
	}
	for _, item := range row.Edges.Items {
		so.Items = append(so.Items, entity.OrderItem{
			Kind:        constants.ItemKind(item.Kind),
			Title:       item.Title,
			Variant:     item.Variant,
			Quantity:    item.Quantity,
			Price:       decimal.NewFromFloat(item.Price),
			Annotations: item.Annotations,
			Properties:  item.Properties,
		})
	}
	return so
}
