// Package split decomposes a canonical order with multiple primary items
// into one order per primary. Secondary items always ride with the first
// primary, so the sum of split totals equals the sum of line totals.
package split

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sugarloafbakes/orderpipe/internal/entity"
)

// Error reports a split invariant violation, fatal for the record.
type Error struct {
	OrderNumber string
	Reason      string
}

func (e *Error) Error() string {
	return fmt.Sprintf("cannot split order %s: %s", e.OrderNumber, e.Reason)
}

// Split decomposes the order. With zero or one primary item the order passes
// through unchanged (no suffix, IsSplit=false). With N>1 primaries it yields
// N orders suffixed -A, -B, ... in payload order; split A carries every
// secondary item and is the parent of the whole group.
//
// A primary with quantity > 1 stays a single split with its quantity
// preserved; it is not fanned out into one split per unit.
func Split(order entity.Order) ([]entity.SplitOrder, error) {
	primaries := order.PrimaryItems()
	if len(primaries) <= 1 {
		return []entity.SplitOrder{{Order: order.Clone()}}, nil
	}
	secondaries := order.SecondaryItems()

	for _, p := range primaries {
		if p.Quantity < 1 {
			return nil, &Error{OrderNumber: order.OrderNumber, Reason: fmt.Sprintf("primary item %q has no quantity", p.Title)}
		}
		if p.Price.IsNegative() {
			return nil, &Error{OrderNumber: order.OrderNumber, Reason: fmt.Sprintf("primary item %q has negative price", p.Title)}
		}
	}

	parentNumber := order.OrderNumber + "-A"
	splits := make([]entity.SplitOrder, 0, len(primaries))

	for i, primary := range primaries {
		suffix := string(rune('A' + i))

		items := []entity.OrderItem{primary.Clone()}
		total := primary.LineTotal()
		if i == 0 {
			for _, sec := range secondaries {
				items = append(items, sec.Clone())
				total = total.Add(sec.LineTotal())
			}
		}

		child := order.Clone()
		child.OrderNumber = order.OrderNumber + "-" + suffix
		child.Items = items
		child.TotalPrice = total

		splits = append(splits, entity.SplitOrder{
			Order:             child,
			IsSplit:           true,
			ParentOrderNumber: parentNumber,
		})
	}

	return splits, nil
}

// TotalAcross sums the total price of a set of splits. Used to check price
// conservation against the input order.
func TotalAcross(splits []entity.SplitOrder) decimal.Decimal {
	sum := decimal.Zero
	for _, s := range splits {
		sum = sum.Add(s.TotalPrice)
	}
	return sum
}
