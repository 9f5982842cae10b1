package extract

import "encoding/json"

// Wire shapes for the order webhook payload. Only the fields the extraction
// rules read are declared; everything else in the payload is ignored.

type rawPayload struct {
	Name            string        `json:"name"` // order name, e.g. "#B21345"
	Email           string        `json:"email"`
	CreatedAt       string        `json:"created_at"`
	Note            string        `json:"note"`
	TotalPrice      string        `json:"total_price"`
	Customer        rawCustomer   `json:"customer"`
	ShippingAddress rawAddress    `json:"shipping_address"`
	NoteAttributes  []rawProperty `json:"note_attributes"`
	LineItems       []rawLineItem `json:"line_items"`
}

type rawCustomer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type rawAddress struct {
	Name  string `json:"name"` // full name
	Phone string `json:"phone"`
}

// rawProperty is a name/value pair used both for order note attributes and
// per-item properties.
type rawProperty struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

// String renders the value as a plain string whether the payload sent a
// JSON string or some other scalar. JSON null and absent values come back
// empty, not as the literal "null".
func (p rawProperty) String() string {
	if len(p.Value) == 0 || string(p.Value) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(p.Value, &s); err == nil {
		return s
	}
	return string(p.Value)
}

type rawLineItem struct {
	Title        string        `json:"title"`
	VariantTitle string        `json:"variant_title"`
	Quantity     int           `json:"quantity"`
	Price        string        `json:"price"`
	Properties   []rawProperty `json:"properties"`
}
