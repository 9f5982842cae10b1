package llm

// Rough per-1K-token USD prices for cost estimates on extraction outcomes.
// These are estimates for reporting, not billing.
var modelPricesPer1K = map[string]struct{ in, out float64 }{
	"gpt-4o-mini":      {0.00015, 0.0006},
	"gpt-4o":           {0.0025, 0.01},
	"gemini-2.0-flash": {0.0001, 0.0004},
}

const defaultPricePer1KIn = 0.001
const defaultPricePer1KOut = 0.002

// EstimateCostUSD approximates a call's cost from character counts using the
// ~4 chars/token heuristic.
func EstimateCostUSD(model string, promptChars, replyChars int) float64 {
	in, out := defaultPricePer1KIn, defaultPricePer1KOut
	if p, ok := modelPricesPer1K[model]; ok {
		in, out = p.in, p.out
	}
	promptTokens := float64(promptChars) / 4
	replyTokens := float64(replyChars) / 4
	return promptTokens/1000*in + replyTokens/1000*out
}
