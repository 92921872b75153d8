package llm

import "context"

// PromptKind tags a request with the task it serves. Response handling
// branches on this tag, never on prompt text.
type PromptKind string

// Prompt kinds used by the pipeline.
const (
	KindContentCustomization PromptKind = "content_customization"
	KindTemplateGeneration   PromptKind = "template_generation"
	KindGeneral              PromptKind = "general"
)

// Request is one gateway call.
type Request struct {
	Prompt      string
	Kind        PromptKind
	MaxTokens   int
	Temperature float64
}

// LLMResult is the outcome of a gateway call. Expected failures (network,
// auth, rate limits, missing credentials) surface here with Success=false;
// the gateway never panics or returns them as errors.
type LLMResult struct {
	Success    bool    `json:"success"`
	Content    string  `json:"content"`
	Model      string  `json:"model"`
	TokensUsed int     `json:"tokens_used"`
	CostUSD    float64 `json:"cost_usd"`
	Cached     bool    `json:"cached"`
	Error      string  `json:"error,omitempty"`
}

// ProviderResponse is a raw completion from a provider client.
type ProviderResponse struct {
	Content      string
	InputTokens  int
	OutputTokens int
}

// Provider is a single LLM backend the gateway can route to.
type Provider interface {
	// Name identifies the provider.
	Name() ProviderName
	// Model returns the model this provider instance targets.
	Model() string
	// Complete sends a prompt and returns the completion. Errors are
	// transport/API failures; the gateway converts them to failed results.
	Complete(ctx context.Context, prompt string, maxTokens int, temperature float64) (ProviderResponse, error)
}
