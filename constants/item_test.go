package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyTitle(t *testing.T) {
	tests := []struct {
		title string
		want  ItemKind
	}{
		{"Chocolate Fudge Cake", ItemKindPrimary},
		{"CAKE of the month", ItemKindPrimary},
		{"Cupcake Dozen", ItemKindPrimary}, // substring match is intentional
		{"Birthday Candle Set", ItemKindSecondary},
		{"Greeting Card", ItemKindSecondary},
		{"", ItemKindSecondary},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyTitle(tt.title), "title %q", tt.title)
	}
}

func TestIsInternalProperty(t *testing.T) {
	assert.True(t, IsInternalProperty("_raw_design_id"))
	assert.True(t, IsInternalProperty("builder_internal_state"))
	assert.True(t, IsInternalProperty("_gwp_flag"))
	assert.True(t, IsInternalProperty("shopify_delivery_id"))
	assert.False(t, IsInternalProperty("Colour"))
	assert.False(t, IsInternalProperty("Line 1"))
}

func TestParseMethod(t *testing.T) {
	assert.Equal(t, MethodAI, ParseMethod(" AI ", MethodHybrid))
	assert.Equal(t, MethodDeterministic, ParseMethod("deterministic", MethodHybrid))
	assert.Equal(t, MethodHybrid, ParseMethod("", MethodHybrid))
	assert.Equal(t, MethodHybrid, ParseMethod("nonsense", MethodHybrid))
}
