package constants

import "strings"

// ItemKind classifies a line item within an order.
type ItemKind string

// Stable values (store these exact strings in DB).
const (
	ItemKindPrimary   ItemKind = "PRIMARY"   // the product that drives splitting (a cake)
	ItemKindSecondary ItemKind = "SECONDARY" // add-ons that ride with the first primary
)

// ItemKinds holds the allowed values for the kind field on OrderItem.
var ItemKinds = []string{string(ItemKindPrimary), string(ItemKindSecondary)}

// PrimaryKeyword marks a line item as primary when its title contains it.
const PrimaryKeyword = "cake"

// SecondaryKeywords are known accessory markers. An item whose title matches
// none of the keyword lists still defaults to secondary.
var SecondaryKeywords = []string{
	"candle",
	"topper",
	"knife",
	"sparkler",
	"balloon",
	"card",
}

// ClassifyTitle maps an item title to its kind. Matching is case-insensitive.
func ClassifyTitle(title string) ItemKind {
	t := strings.ToLower(title)
	if strings.Contains(t, PrimaryKeyword) {
		return ItemKindPrimary
	}
	return ItemKindSecondary
}

// Annotation property keys, in display order. Values of these per-item
// properties become the free-text annotation lines (e.g. cake writing).
var AnnotationKeys = []string{
	"Line 1",
	"Line 2 (Line 2)",
	"Line 3 (Line 3)",
}

// MaxAnnotations caps the number of annotation lines carried per item.
const MaxAnnotations = 3

// PropertyDenylist holds substrings that mark an item property as internal.
// Properties whose key contains any of these are never copied onto orders.
var PropertyDenylist = []string{
	"_raw",
	"_internal",
	"_gwp",
	"_delivery_id",
}

// IsInternalProperty reports whether a property key is on the denylist.
func IsInternalProperty(key string) bool {
	k := strings.ToLower(key)
	for _, marker := range PropertyDenylist {
		if strings.Contains(k, marker) {
			return true
		}
	}
	return false
}

// Note-attribute keys carrying delivery details on the raw payload.
const (
	DeliveryDateTimeKey = "Delivery Date and Time"
	DeliveryMethodKey   = "Delivery Method"
)

// DeliveryTimeSeparator splits the delivery note value into date and time.
const DeliveryTimeSeparator = "between"
