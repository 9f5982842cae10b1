package llm

import (
	"encoding/json"
	"strings"

	"github.com/sugarloafbakes/orderpipe/constants"
)

// maxPayloadChars bounds how much raw webhook JSON we embed in a prompt.
const maxPayloadChars = 12000

// BuildSystemPrompt composes the fixed instruction block: role, the same
// extraction rules the deterministic path applies (in prose), and output
// hygiene. The prompt is deterministic for a given configuration so reruns
// are comparable.
func BuildSystemPrompt() string {
	parts := []string{
		"You are an order extraction engine for a bakery's e-commerce webhooks. Return ONLY JSON that matches the provided JSON Schema.",
		"Extraction rules, in order of precedence:",
		"1. 'order_number' is the order name with any leading '#' removed.",
		"2. 'customer_name' prefers the shipping address full name; if blank, join the customer record's first and last name with a single space.",
		"3. Find the note attribute named '" + constants.DeliveryDateTimeKey + "'. Split its value on the word '" + constants.DeliveryTimeSeparator + "': the left part (trimmed) is 'delivery_date'; if a right part exists it is 'delivery_time'.",
		"4. 'delivery_method' is the value of the note attribute named '" + constants.DeliveryMethodKey + "', unmodified.",
		"5. An item is kind PRIMARY when its title contains '" + constants.PrimaryKeyword + "' (case-insensitive); it is SECONDARY when the title contains a known accessory word (" + strings.Join(constants.SecondaryKeywords, ", ") + "); any other item is SECONDARY.",
		"6. Item 'annotations' are the values of the per-item properties named " + quoteJoin(constants.AnnotationKeys) + ", in that order, skipping blank or missing lines. Never emit more than 3.",
		"7. Copy the remaining item properties into 'properties', excluding blank values and any key containing: " + strings.Join(constants.PropertyDenylist, ", ") + ".",
		"8. 'customer_phone' is the shipping address phone, else the customer record phone, else omitted.",
		"Prices are decimal strings with at most 2 fraction digits. Quantities are integers >= 1.",
		"Never output null. If a field is not present, omit it.",
		"Never invent items: only emit items present in the payload's line items.",
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt packages the raw payload and the target schema.
func BuildUserPrompt(payload []byte) string {
	var b strings.Builder
	b.WriteString("Webhook payload JSON:\n")
	p := strings.TrimSpace(string(payload))
	if len(p) > maxPayloadChars {
		b.WriteString(p[:maxPayloadChars])
		b.WriteString("\n…(truncated)")
	} else {
		b.WriteString(p)
	}
	b.WriteString("\n\nJSON Schema for the reply:\n")
	b.WriteString(mustJSON(BuildOrderJSONSchema()))
	b.WriteString("\n\nReturn ONLY JSON that matches the schema.")
	return b.String()
}

// BuildExtractionPrompt is the single-message form used by providers that
// take one prompt string per round trip.
func BuildExtractionPrompt(payload []byte) string {
	return BuildSystemPrompt() + "\n\n" + BuildUserPrompt(payload)
}

func quoteJoin(keys []string) string {
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = "'" + k + "'"
	}
	return strings.Join(quoted, ", ")
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
