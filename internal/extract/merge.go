package extract

import (
	"fmt"

	"github.com/sugarloafbakes/orderpipe/internal/entity"
)

// Merge gap-fills a deterministic extraction with AI values. The trust model
// is asymmetric: deterministic values encode proven business rules and are
// never overwritten; AI may only fill fields the deterministic pass left
// empty. Every adopted value is recorded as a correction.
func Merge(det, ai entity.Order) (entity.Order, []string) {
	merged := det.Clone()
	var corrections []string

	fill := func(field string, dst *string, src string) {
		if *dst == "" && src != "" {
			*dst = src
			corrections = append(corrections, "Filled "+field+" from AI")
		}
	}

	fill("order_number", &merged.OrderNumber, ai.OrderNumber)
	fill("customer_name", &merged.CustomerName, ai.CustomerName)
	fill("customer_email", &merged.CustomerEmail, ai.CustomerEmail)
	fill("customer_phone", &merged.CustomerPhone, ai.CustomerPhone)
	fill("order_date", &merged.OrderDate, ai.OrderDate)
	fill("delivery_date", &merged.DeliveryDate, ai.DeliveryDate)
	fill("delivery_time", &merged.DeliveryTime, ai.DeliveryTime)
	fill("delivery_method", &merged.DeliveryMethod, ai.DeliveryMethod)
	fill("notes", &merged.Notes, ai.Notes)

	if merged.TotalPrice.IsZero() && !ai.TotalPrice.IsZero() {
		merged.TotalPrice = ai.TotalPrice
		corrections = append(corrections, "Filled total_price from AI")
	}

	if len(merged.Items) == 0 && len(ai.Items) > 0 {
		items := make([]entity.OrderItem, len(ai.Items))
		for i, it := range ai.Items {
			items[i] = it.Clone()
		}
		merged.Items = items
		corrections = append(corrections, "Adopted items from AI")
		return merged, corrections
	}

	// item-level gap fill, matched by index
	for i := range merged.Items {
		if i >= len(ai.Items) {
			break
		}
		src := ai.Items[i]
		dst := &merged.Items[i]
		fillItem := func(field string, d *string, s string) {
			if *d == "" && s != "" {
				*d = s
				corrections = append(corrections, fmt.Sprintf("Filled items[%d].%s from AI", i, field))
			}
		}
		fillItem("title", &dst.Title, src.Title)
		fillItem("variant", &dst.Variant, src.Variant)
		if dst.Quantity == 0 && src.Quantity > 0 {
			dst.Quantity = src.Quantity
			corrections = append(corrections, fmt.Sprintf("Filled items[%d].quantity from AI", i))
		}
		if dst.Price.IsZero() && !src.Price.IsZero() {
			dst.Price = src.Price
			corrections = append(corrections, fmt.Sprintf("Filled items[%d].price from AI", i))
		}
	}

	return merged, corrections
}
