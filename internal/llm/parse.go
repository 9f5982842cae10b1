package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sugarloafbakes/orderpipe/constants"
	"github.com/sugarloafbakes/orderpipe/internal/entity"
)

// orderDoc mirrors the reply schema. Prices stay strings until converted.
type orderDoc struct {
	OrderNumber    string         `json:"order_number"`
	CustomerName   string         `json:"customer_name"`
	CustomerEmail  string         `json:"customer_email"`
	CustomerPhone  string         `json:"customer_phone"`
	OrderDate      string         `json:"order_date"`
	DeliveryDate   string         `json:"delivery_date"`
	DeliveryTime   string         `json:"delivery_time"`
	DeliveryMethod string         `json:"delivery_method"`
	TotalPrice     string         `json:"total_price"`
	Notes          string         `json:"notes"`
	Items          []orderItemDoc `json:"items"`
}

type orderItemDoc struct {
	Kind        string            `json:"kind"`
	Title       string            `json:"title"`
	Variant     string            `json:"variant"`
	Quantity    int               `json:"quantity"`
	Price       string            `json:"price"`
	Annotations []string          `json:"annotations"`
	Properties  map[string]string `json:"properties"`
}

// FirstJSONObject returns the first balanced JSON object embedded in text.
// Models often wrap JSON in prose or code fences; we only trust the braces.
func FirstJSONObject(text string) ([]byte, error) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return nil, &ParseError{Cause: ErrNoJSONObject}
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return []byte(text[start : i+1]), nil
			}
		}
	}
	return nil, &ParseError{Cause: ErrNoJSONObject}
}

// ParseOrderReply turns a raw model reply into a canonical order. It locates
// the first JSON object, sanitizes optional fields, validates against the
// reply schema, and converts. The returned strings list any sanitize fixes.
func ParseOrderReply(shop, text string) (entity.Order, []string, error) {
	raw, err := FirstJSONObject(text)
	if err != nil {
		return entity.Order{}, nil, err
	}

	cleaned, fixes, err := SanitizeOrderJSON(raw)
	if err != nil {
		return entity.Order{}, nil, &ParseError{Cause: fmt.Errorf("%w: %v", ErrInvalidJSON, err)}
	}

	if err := ValidateJSONAgainstSchema(BuildOrderJSONSchema(), cleaned); err != nil {
		return entity.Order{}, fixes, &ParseError{Cause: fmt.Errorf("%w: %v", ErrSchemaMismatch, err)}
	}

	var doc orderDoc
	if err := json.Unmarshal(cleaned, &doc); err != nil {
		return entity.Order{}, fixes, &ParseError{Cause: fmt.Errorf("%w: %v", ErrInvalidJSON, err)}
	}

	order, err := docToOrder(shop, doc)
	if err != nil {
		return entity.Order{}, fixes, &ParseError{Cause: err}
	}
	return order, fixes, nil
}

func docToOrder(shop string, doc orderDoc) (entity.Order, error) {
	total, err := decimal.NewFromString(doc.TotalPrice)
	if err != nil {
		return entity.Order{}, fmt.Errorf("total_price %q: %w", doc.TotalPrice, err)
	}

	items := make([]entity.OrderItem, 0, len(doc.Items))
	for i, it := range doc.Items {
		price, err := decimal.NewFromString(it.Price)
		if err != nil {
			return entity.Order{}, fmt.Errorf("items[%d].price %q: %w", i, it.Price, err)
		}
		kind := constants.ItemKind(strings.ToUpper(strings.TrimSpace(it.Kind)))
		if kind != constants.ItemKindPrimary && kind != constants.ItemKindSecondary {
			// Re-derive from the title rather than rejecting the whole reply.
			kind = constants.ClassifyTitle(it.Title)
		}
		ann := it.Annotations
		if len(ann) > constants.MaxAnnotations {
			ann = ann[:constants.MaxAnnotations]
		}
		props := make(map[string]string, len(it.Properties))
		for k, v := range it.Properties {
			if strings.TrimSpace(v) == "" || constants.IsInternalProperty(k) {
				continue
			}
			props[k] = v
		}
		if len(props) == 0 {
			props = nil
		}
		items = append(items, entity.OrderItem{
			Kind:        kind,
			Title:       it.Title,
			Variant:     it.Variant,
			Quantity:    it.Quantity,
			Price:       price,
			Annotations: ann,
			Properties:  props,
		})
	}

	return entity.Order{
		Shop:           shop,
		OrderNumber:    strings.TrimPrefix(strings.TrimSpace(doc.OrderNumber), "#"),
		CustomerName:   strings.TrimSpace(doc.CustomerName),
		CustomerEmail:  strings.TrimSpace(doc.CustomerEmail),
		CustomerPhone:  strings.TrimSpace(doc.CustomerPhone),
		OrderDate:      strings.TrimSpace(doc.OrderDate),
		DeliveryDate:   strings.TrimSpace(doc.DeliveryDate),
		DeliveryTime:   strings.TrimSpace(doc.DeliveryTime),
		DeliveryMethod: strings.TrimSpace(doc.DeliveryMethod),
		TotalPrice:     total,
		Notes:          strings.TrimSpace(doc.Notes),
		Items:          items,
	}, nil
}
