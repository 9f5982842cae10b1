package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/sugarloafbakes/orderpipe/constants"
)

// BuildOrderJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We embed it in the prompt and use it locally to validate the
// reply before trusting any field.
func BuildOrderJSONSchema() map[string]any {
	itemProps := map[string]any{
		"kind": map[string]any{
			"type": "string",
			"enum": []string{string(constants.ItemKindPrimary), string(constants.ItemKindSecondary)},
		},
		"title":    map[string]any{"type": "string", "minLength": 1},
		"variant":  map[string]any{"type": "string"},
		"quantity": map[string]any{"type": "integer", "minimum": 1},
		"price":    decimalProp(),
		"annotations": map[string]any{
			"type":     "array",
			"items":    map[string]any{"type": "string"},
			"maxItems": constants.MaxAnnotations,
		},
		"properties": map[string]any{
			"type":                 "object",
			"additionalProperties": map[string]any{"type": "string"},
		},
	}

	props := map[string]any{
		"order_number":    map[string]any{"type": "string", "minLength": 1},
		"customer_name":   map[string]any{"type": "string"},
		"customer_email":  map[string]any{"type": "string"},
		"customer_phone":  map[string]any{"type": "string"},
		"order_date":      map[string]any{"type": "string"},
		"delivery_date":   map[string]any{"type": "string"},
		"delivery_time":   map[string]any{"type": "string"},
		"delivery_method": map[string]any{"type": "string"},
		"total_price":     decimalProp(),
		"notes":           map[string]any{"type": "string"},
		"items": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties":           itemProps,
				"required":             []string{"kind", "title", "quantity", "price"},
			},
		},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             []string{"order_number", "total_price", "items"},
	}
}

func decimalProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^-?\d+(\.\d{1,2})?$`,
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
