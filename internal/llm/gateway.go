package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

const (
	// cacheSize bounds the response cache. Entries never expire; identical
	// requests within a process lifetime reuse the first response.
	cacheSize = 512

	defaultMaxTokens   = 1500
	defaultTemperature = 0.3
)

// Gateway routes prompts to a primary provider with a single fallback retry,
// caches identical requests, and accounts token cost. Safe for concurrent
// use: the cache and counters sit behind a mutex, and concurrent identical
// requests collapse into one provider invocation.
type Gateway struct {
	primary  Provider
	fallback Provider

	cache  *lru.Cache[string, LLMResult]
	flight singleflight.Group
	logger *slog.Logger

	mu    sync.Mutex
	stats UsageStats
}

// NewGateway builds a gateway over the given providers. Either provider may
// be nil; with no primary every call fails gracefully.
func NewGateway(primary, fallback Provider, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	cache, err := lru.New[string, LLMResult](cacheSize)
	if err != nil {
		// lru.New only fails on a non-positive size constant.
		panic(fmt.Sprintf("failed to create response cache: %v", err))
	}
	return &Gateway{
		primary:  primary,
		fallback: fallback,
		cache:    cache,
		logger:   logger,
	}
}

// NewGatewayFromEnv wires providers from ANTHROPIC_API_KEY and
// GEMINI_API_KEY. The cheapest available provider becomes primary. With no
// keys at all the gateway still constructs; every call then returns a failed
// result rather than crashing the process.
func NewGatewayFromEnv(ctx context.Context, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}

	var primary, fallback Provider

	if key := os.Getenv(EnvAnthropicAPIKey); key != "" {
		primary = NewAnthropicClient(key, DefaultAnthropicModel)
	}
	if key := os.Getenv(EnvGeminiAPIKey); key != "" {
		gemini, err := NewGeminiClient(ctx, key, DefaultGeminiModel)
		if err != nil {
			logger.Warn("failed to initialize Gemini client", "error", err)
		} else if primary == nil {
			primary = gemini
		} else {
			fallback = gemini
		}
	}

	if primary == nil {
		logger.Warn("no LLM API keys configured; all calls will fail gracefully",
			"anthropic_env", EnvAnthropicAPIKey, "gemini_env", EnvGeminiAPIKey)
	}

	return NewGateway(primary, fallback, logger)
}

// Call sends the request to the primary provider, retrying once against the
// fallback on failure. Results are cached by (prompt, model, max_tokens);
// cache hits do not touch the usage counters. Call never returns an error
// for provider failures: inspect LLMResult.Success.
func (g *Gateway) Call(ctx context.Context, req Request) LLMResult {
	if req.MaxTokens <= 0 {
		req.MaxTokens = defaultMaxTokens
	}
	if req.Temperature <= 0 {
		req.Temperature = defaultTemperature
	}

	if g.primary == nil {
		return LLMResult{
			Success: false,
			Error:   "no LLM provider configured (missing API keys)",
		}
	}

	key := cacheKey(req.Prompt, g.primary.Model(), req.MaxTokens)

	g.mu.Lock()
	if cached, ok := g.cache.Get(key); ok {
		g.mu.Unlock()
		cached.Cached = true
		return cached
	}
	g.mu.Unlock()

	// Concurrent identical requests share one provider invocation. The cache
	// is re-checked inside the flight: a caller that missed the cache but
	// joined after an earlier flight completed must not invoke again.
	v, _, shared := g.flight.Do(key, func() (any, error) {
		g.mu.Lock()
		if cached, ok := g.cache.Get(key); ok {
			g.mu.Unlock()
			cached.Cached = true
			return cached, nil
		}
		g.mu.Unlock()

		result := g.invoke(ctx, req)
		if result.Success {
			g.mu.Lock()
			g.stats.record(result.Model, result.TokensUsed, result.CostUSD)
			g.cache.Add(key, result)
			g.mu.Unlock()
		}
		return result, nil
	})

	result := v.(LLMResult)
	if shared {
		result.Cached = true
	}
	return result
}

// invoke tries the primary provider, then the fallback exactly once. There
// is no retry beyond that: the fallback's own failure surfaces to the caller.
func (g *Gateway) invoke(ctx context.Context, req Request) LLMResult {
	resp, err := g.primary.Complete(ctx, req.Prompt, req.MaxTokens, req.Temperature)
	if err == nil {
		return g.buildResult(g.primary.Model(), resp)
	}

	g.logger.Warn("primary provider failed",
		"provider", g.primary.Name(), "kind", req.Kind, "error", err)

	if g.fallback == nil {
		return LLMResult{
			Success: false,
			Model:   g.primary.Model(),
			Error:   err.Error(),
		}
	}

	resp, fbErr := g.fallback.Complete(ctx, req.Prompt, req.MaxTokens, req.Temperature)
	if fbErr != nil {
		g.logger.Warn("fallback provider failed",
			"provider", g.fallback.Name(), "kind", req.Kind, "error", fbErr)
		return LLMResult{
			Success: false,
			Model:   g.fallback.Model(),
			Error:   fmt.Sprintf("primary: %v; fallback: %v", err, fbErr),
		}
	}

	return g.buildResult(g.fallback.Model(), resp)
}

func (g *Gateway) buildResult(model string, resp ProviderResponse) LLMResult {
	cost, known := Cost(model, resp.InputTokens, resp.OutputTokens)
	if !known {
		g.logger.Warn("unknown model for pricing, treating cost as zero", "model", model)
	}
	return LLMResult{
		Success:    true,
		Content:    resp.Content,
		Model:      model,
		TokensUsed: resp.InputTokens + resp.OutputTokens,
		CostUSD:    cost,
	}
}

// Snapshot returns a copy of the cumulative usage statistics.
func (g *Gateway) Snapshot() UsageStats {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stats.clone()
}

// Reset zeroes the usage statistics. The response cache is left intact.
func (g *Gateway) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stats = UsageStats{}
}

// CacheLen reports how many responses are currently cached.
func (g *Gateway) CacheLen() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cache.Len()
}

func cacheKey(prompt, model string, maxTokens int) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%s\x00%d", prompt, model, maxTokens)
	return hex.EncodeToString(h.Sum(nil))
}
