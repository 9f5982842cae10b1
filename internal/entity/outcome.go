package entity

import (
	"time"

	"github.com/sugarloafbakes/orderpipe/constants"
)

// ExtractionOutcome reports how a canonical order was produced.
type ExtractionOutcome struct {
	Order            Order                      `json:"order"`
	Method           constants.ExtractionMethod `json:"method"`
	AIUsed           bool                       `json:"ai_used"`
	Corrections      []string                   `json:"corrections,omitempty"`
	ValidationIssues []string                   `json:"validation_issues,omitempty"`
	Elapsed          time.Duration              `json:"elapsed"`
	EstimatedCostUSD float64                    `json:"estimated_cost_usd,omitempty"`
}
