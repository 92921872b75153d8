// Package llm provides the LLM gateway: provider clients, cost-optimized
// model selection with a single fallback, response caching, and usage
// accounting.
package llm

// ProviderName identifies an LLM provider.
type ProviderName string

// Supported providers.
const (
	ProviderAnthropic ProviderName = "anthropic"
	ProviderGemini    ProviderName = "gemini"
)

// Default models per provider, chosen for cost.
const (
	DefaultAnthropicModel  = "claude-3-haiku-20240307"
	AnthropicFallbackModel = "claude-3-5-sonnet-20241022"
	DefaultGeminiModel     = "gemini-2.5-flash-lite"
	GeminiFallbackModel    = "gemini-2.5-flash"
)

// Environment variable names for provider credentials.
const (
	EnvAnthropicAPIKey = "ANTHROPIC_API_KEY"
	EnvGeminiAPIKey    = "GEMINI_API_KEY"
)

// ModelPrice is the per-million-token price for one model.
type ModelPrice struct {
	InputUSD  float64
	OutputUSD float64
}

// pricing is the static per-model price table in USD per 1M tokens.
// Unknown models price as zero with a logged warning, never an error.
var pricing = map[string]ModelPrice{
	"claude-3-haiku-20240307":    {InputUSD: 0.25, OutputUSD: 1.25},
	"claude-3-5-sonnet-20241022": {InputUSD: 3.0, OutputUSD: 15.0},
	"claude-3-opus-20240229":     {InputUSD: 15.0, OutputUSD: 75.0},
	"gemini-2.5-flash-lite":      {InputUSD: 0.10, OutputUSD: 0.40},
	"gemini-2.5-flash":           {InputUSD: 0.30, OutputUSD: 2.50},
	"gemini-2.5-pro":             {InputUSD: 1.25, OutputUSD: 10.0},
}

// PriceFor returns the price entry for a model and whether it is known.
func PriceFor(model string) (ModelPrice, bool) {
	p, ok := pricing[model]
	return p, ok
}

// Cost computes the dollar cost of a call from its token counts.
func Cost(model string, inputTokens, outputTokens int) (float64, bool) {
	price, ok := PriceFor(model)
	if !ok {
		return 0, false
	}
	in := float64(inputTokens) / 1_000_000 * price.InputUSD
	out := float64(outputTokens) / 1_000_000 * price.OutputUSD
	return in + out, true
}
