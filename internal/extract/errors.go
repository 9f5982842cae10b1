package extract

import "fmt"

// ExtractionError means the payload lacks the minimum shape for the
// deterministic rules (no order name or no line items). It is a hard stop
// for the deterministic path, not a validation finding.
type ExtractionError struct {
	Reason string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed: %s", e.Reason)
}
