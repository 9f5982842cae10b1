package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	reDecimal = regexp.MustCompile(`^-?\d+(\.\d{1,2})?$`)

	// optional top-level scalars we may drop rather than fail the document
	optScalars = []string{
		"customer_name", "customer_email", "customer_phone",
		"order_date", "delivery_date", "delivery_time", "delivery_method", "notes",
	}
)

// SanitizeOrderJSON normalizes a model reply so the overall document can
// still validate: money emitted as numbers becomes 2-decimal strings,
// quantities emitted as floats become integers, and null/blank optionals are
// dropped. Required fields are left alone; if they are broken the schema
// check reports it.
func SanitizeOrderJSON(doc []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, nil, err
	}

	var fixes []string

	if fixed, changed := normalizeMoney(m, "total_price"); changed {
		fixes = append(fixes, fixed)
	}

	for _, k := range optScalars {
		if v, ok := m[k]; ok {
			switch t := v.(type) {
			case nil:
				delete(m, k)
				fixes = append(fixes, "dropped null "+k)
			case string:
				if strings.TrimSpace(t) == "" || strings.EqualFold(strings.TrimSpace(t), "null") {
					delete(m, k)
					fixes = append(fixes, "dropped blank "+k)
				}
			}
		}
	}

	if rawItems, ok := m["items"].([]any); ok {
		for i, ri := range rawItems {
			item, ok := ri.(map[string]any)
			if !ok {
				continue
			}
			if fixed, changed := normalizeMoney(item, "price"); changed {
				fixes = append(fixes, fmt.Sprintf("items[%d]: %s", i, fixed))
			}
			if q, ok := item["quantity"].(float64); ok && q != float64(int(q)) {
				item["quantity"] = int(q)
				fixes = append(fixes, fmt.Sprintf("items[%d]: truncated fractional quantity", i))
			}
			if v, ok := item["variant"]; ok && v == nil {
				delete(item, "variant")
			}
		}
	}

	b, err := json.Marshal(m)
	if err != nil {
		return nil, nil, err
	}
	return b, fixes, nil
}

// normalizeMoney coerces m[key] into a 2-decimal string when it arrived as a
// number or a loosely formatted string.
func normalizeMoney(m map[string]any, key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	switch t := v.(type) {
	case float64:
		m[key] = strconv.FormatFloat(t, 'f', 2, 64)
		return "reformatted numeric " + key, true
	case string:
		s := strings.TrimSpace(t)
		if reDecimal.MatchString(s) {
			if s != t {
				m[key] = s
				return "trimmed " + key, true
			}
			return "", false
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			m[key] = strconv.FormatFloat(f, 'f', 2, 64)
			return "reformatted " + key, true
		}
	}
	return "", false
}
