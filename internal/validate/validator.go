// Package validate checks canonical orders for completeness and quality.
// Findings are advisory: they drive the AI gap-fill step in hybrid mode and
// are reported on outcomes, but validation itself never fails a record.
package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sugarloafbakes/orderpipe/internal/entity"
)

// Config controls which required-field checks run. Structural checks are
// unconditional. The zero value requires everything (the default posture).
type Config struct {
	SkipCustomerName bool
	SkipDeliveryDate bool
	SkipItems        bool
}

type Validator struct {
	cfg Config
}

func New(cfg Config) *Validator {
	return &Validator{cfg: cfg}
}

// Validate enumerates issues with the order. It returns an empty slice for a
// clean order and never returns an error.
func (v *Validator) Validate(order entity.Order) []string {
	var issues []string

	if !v.cfg.SkipCustomerName && strings.TrimSpace(order.CustomerName) == "" {
		issues = append(issues, "customer_name is missing")
	}
	if !v.cfg.SkipDeliveryDate && strings.TrimSpace(order.DeliveryDate) == "" {
		issues = append(issues, "delivery_date is missing")
	}
	if !v.cfg.SkipItems && len(order.Items) == 0 {
		issues = append(issues, "order has no items")
	}

	// structural checks, independent of configuration
	if strings.Contains(order.OrderNumber, "#") {
		issues = append(issues, "order_number still contains '#'")
	}
	if name := strings.TrimSpace(order.CustomerName); name != "" && utf8.RuneCountInString(name) < 2 {
		issues = append(issues, "customer_name is shorter than 2 characters")
	}
	for i, item := range order.Items {
		if strings.TrimSpace(item.Title) == "" {
			issues = append(issues, fmt.Sprintf("items[%d] has no title", i))
		}
		if item.Kind == "" {
			issues = append(issues, fmt.Sprintf("items[%d] has no classification", i))
		}
		if item.Quantity <= 0 {
			issues = append(issues, fmt.Sprintf("items[%d] has non-positive quantity", i))
		}
	}

	return issues
}
