package extract

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sugarloafbakes/orderpipe/constants"
	"github.com/sugarloafbakes/orderpipe/internal/entity"
)

// ExtractOrder applies the rule-based field mapping to a raw webhook
// payload. It is pure: no I/O, no randomness, same output for same input.
// Rule precedence is fixed and matches the prose embedded in the AI prompt.
func ExtractOrder(shop string, payload []byte) (entity.Order, error) {
	var raw rawPayload
	if err := json.Unmarshal(payload, &raw); err != nil {
		return entity.Order{}, &ExtractionError{Reason: "payload is not valid JSON: " + err.Error()}
	}
	if strings.TrimSpace(raw.Name) == "" {
		return entity.Order{}, &ExtractionError{Reason: "payload has no order name"}
	}
	if len(raw.LineItems) == 0 {
		return entity.Order{}, &ExtractionError{Reason: "payload has no line items"}
	}

	order := entity.Order{
		Shop:        shop,
		OrderNumber: strings.TrimPrefix(strings.TrimSpace(raw.Name), "#"),
		OrderDate:   strings.TrimSpace(raw.CreatedAt),
		Notes:       strings.TrimSpace(raw.Note),
	}

	// customer_name: shipping full name, else first + last from the record
	order.CustomerName = strings.TrimSpace(raw.ShippingAddress.Name)
	if order.CustomerName == "" {
		order.CustomerName = strings.TrimSpace(strings.TrimSpace(raw.Customer.FirstName) + " " + strings.TrimSpace(raw.Customer.LastName))
	}

	order.CustomerEmail = strings.TrimSpace(raw.Email)
	if order.CustomerEmail == "" {
		order.CustomerEmail = strings.TrimSpace(raw.Customer.Email)
	}

	// customer_phone: shipping phone, else customer record phone
	order.CustomerPhone = strings.TrimSpace(raw.ShippingAddress.Phone)
	if order.CustomerPhone == "" {
		order.CustomerPhone = strings.TrimSpace(raw.Customer.Phone)
	}

	order.DeliveryDate, order.DeliveryTime = deliveryDateTime(raw.NoteAttributes)
	order.DeliveryMethod = noteAttribute(raw.NoteAttributes, constants.DeliveryMethodKey)

	if raw.TotalPrice != "" {
		if total, err := decimal.NewFromString(strings.TrimSpace(raw.TotalPrice)); err == nil {
			order.TotalPrice = total
		}
	}

	items := make([]entity.OrderItem, 0, len(raw.LineItems))
	for _, li := range raw.LineItems {
		items = append(items, extractItem(li))
	}
	order.Items = items

	return order, nil
}

// deliveryDateTime locates the delivery note attribute and splits its value
// on the literal word "between": left part is the date, right part (if any)
// is the time window.
func deliveryDateTime(attrs []rawProperty) (date, timeWindow string) {
	v := noteAttribute(attrs, constants.DeliveryDateTimeKey)
	if v == "" {
		return "", ""
	}
	parts := strings.SplitN(v, constants.DeliveryTimeSeparator, 2)
	date = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		timeWindow = strings.TrimSpace(parts[1])
	}
	return date, timeWindow
}

func noteAttribute(attrs []rawProperty, key string) string {
	for _, a := range attrs {
		if a.Name == key {
			return a.String()
		}
	}
	return ""
}

func extractItem(li rawLineItem) entity.OrderItem {
	item := entity.OrderItem{
		Kind:     constants.ClassifyTitle(li.Title),
		Title:    li.Title,
		Variant:  strings.TrimSpace(li.VariantTitle),
		Quantity: li.Quantity,
	}
	if li.Price != "" {
		if p, err := decimal.NewFromString(strings.TrimSpace(li.Price)); err == nil {
			item.Price = p
		}
	}

	// annotations: the named lines, in order, skipping blanks
	for _, key := range constants.AnnotationKeys {
		if v := strings.TrimSpace(itemProperty(li.Properties, key)); v != "" {
			item.Annotations = append(item.Annotations, v)
		}
	}

	// properties: everything that isn't internal or blank
	props := make(map[string]string)
	for _, p := range li.Properties {
		if constants.IsInternalProperty(p.Name) {
			continue
		}
		v := p.String()
		if strings.TrimSpace(v) == "" {
			continue
		}
		props[p.Name] = v
	}
	if len(props) > 0 {
		item.Properties = props
	}
	return item
}

func itemProperty(props []rawProperty, key string) string {
	for _, p := range props {
		if p.Name == key {
			return p.String()
		}
	}
	return ""
}
