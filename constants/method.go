package constants

import "strings"

// ExtractionMethod selects which strategy turns a webhook payload into an order.
type ExtractionMethod string

const (
	MethodDeterministic ExtractionMethod = "deterministic" // rule-based only
	MethodAI            ExtractionMethod = "ai"            // LLM only
	MethodHybrid        ExtractionMethod = "hybrid"        // rules first, LLM fills gaps
)

// ExtractionMethods holds the allowed values for method fields.
var ExtractionMethods = []string{
	string(MethodDeterministic),
	string(MethodAI),
	string(MethodHybrid),
}

// ParseMethod normalizes a method string, falling back to the given default
// when the input is empty or unknown.
func ParseMethod(s string, def ExtractionMethod) ExtractionMethod {
	switch ExtractionMethod(strings.ToLower(strings.TrimSpace(s))) {
	case MethodDeterministic:
		return MethodDeterministic
	case MethodAI:
		return MethodAI
	case MethodHybrid:
		return MethodHybrid
	}
	return def
}
