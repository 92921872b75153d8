package customize

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/application-customizer/internal/llm"
	"github.com/jonathan/application-customizer/internal/types"
)

// scriptedProvider returns a fixed completion for every prompt.
type scriptedProvider struct {
	content string
	err     error
}

func (s *scriptedProvider) Name() llm.ProviderName { return llm.ProviderAnthropic }
func (s *scriptedProvider) Model() string          { return llm.DefaultAnthropicModel }

func (s *scriptedProvider) Complete(_ context.Context, _ string, _ int, _ float64) (llm.ProviderResponse, error) {
	if s.err != nil {
		return llm.ProviderResponse{}, s.err
	}
	return llm.ProviderResponse{Content: s.content, InputTokens: 800, OutputTokens: 400}, nil
}

// memorySink records persistence calls in memory.
type memorySink struct {
	mu       sync.Mutex
	appID    uuid.UUID
	saved    []*types.GeneratedContent
	usage    int
	appCalls int
}

func newMemorySink() *memorySink {
	return &memorySink{appID: uuid.New()}
}

func (m *memorySink) FindOrCreateApplication(_ context.Context, _, _, _ string) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.appCalls++
	return m.appID, nil
}

func (m *memorySink) SaveGeneratedContent(_ context.Context, gc *types.GeneratedContent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = append(m.saved, gc)
	return nil
}

func (m *memorySink) TrackLLMUsage(_ context.Context, _ uuid.UUID, _ string, _ int, _ float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.usage++
	return nil
}

const llmResponse = "```json\n" + `{
	"customized_sections": {
		"domain_focus": "Payments infrastructure focus for Adyen",
		"key_achievement_reframed": "Cut settlement latency by 40% at Mollie",
		"technical_skills_emphasis": "Go, PostgreSQL, Kafka",
		"business_impact_framing": "Efficiency gains with measurable results",
		"experience_positioning": "Five years of platform work at Mollie"
	},
	"country_adaptations": {"tone_adjustments": "Direct tone applied"},
	"rule_compliance": {"jargon_removed": "yes"}
}` + "\n```"

func newTestCustomizer(provider llm.Provider, sink Sink) (*Customizer, *llm.Gateway) {
	gateway := llm.NewGateway(provider, nil, nil)
	req := testRequest()
	return NewCustomizer(gateway, req.Profile, sink, nil), gateway
}

func TestCustomize_LLMPath(t *testing.T) {
	sink := newMemorySink()
	customizer, gateway := newTestCustomizer(&scriptedProvider{content: llmResponse}, sink)

	result, err := customizer.Customize(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, MethodLLM, result.GenerationMethod)
	assert.NotEmpty(t, result.GeneratedAt)
	assert.Equal(t, "Payments infrastructure focus for Adyen",
		result.CustomizedSections[types.SectionDomainFocus])

	require.NotNil(t, result.ValidationResults)
	require.NotNil(t, result.QualityScores)
	require.NotNil(t, result.FactValidation)
	assert.Equal(t, 10, result.ValidationResults.ComplianceScore)
	assert.True(t, result.FactValidation.IsValid)

	// Persistence and usage accounting both fired.
	assert.Len(t, sink.saved, 1)
	assert.Equal(t, 1, sink.usage)
	assert.Equal(t, MethodLLM, sink.saved[0].GenerationMethod)
	assert.Equal(t, 1, gateway.Snapshot().TotalRequests)
}

func TestCustomize_ViolatingResponseGetsFixed(t *testing.T) {
	response := "```json\n" + `{
		"customized_sections": {
			"domain_focus": "We leverage payments infrastructure at Mollie",
			"key_achievement_reframed": "Cut latency by 40%",
			"technical_skills_emphasis": "Go",
			"business_impact_framing": "Results",
			"experience_positioning": "Platform work"
		}
	}` + "\n```"

	customizer, _ := newTestCustomizer(&scriptedProvider{content: response}, nil)

	result, err := customizer.Customize(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, MethodLLM, result.GenerationMethod)
	assert.True(t, result.ValidationResults.HasViolations)
	assert.Equal(t, 9, result.ValidationResults.ComplianceScore)
	assert.Contains(t, result.CustomizedSections[types.SectionDomainFocus], "use")
	assert.NotContains(t, result.CustomizedSections[types.SectionDomainFocus], "leverage")
}

func TestCustomize_FallbackOnProviderFailure(t *testing.T) {
	sink := newMemorySink()
	customizer, gateway := newTestCustomizer(&scriptedProvider{err: errors.New("api down")}, sink)

	result, err := customizer.Customize(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, MethodFallback, result.GenerationMethod)
	require.NotNil(t, result.QualityScores)
	assert.Equal(t, 10.0, result.QualityScores.RuleCompliance)

	// No spend, no usage rows; the finished content is still persisted.
	assert.Equal(t, 0, gateway.Snapshot().TotalRequests)
	assert.Equal(t, 0, sink.usage)
	assert.Len(t, sink.saved, 1)
	assert.Equal(t, MethodFallback, sink.saved[0].GenerationMethod)
}

func TestCustomize_FallbackOnUnparseableResponse(t *testing.T) {
	customizer, _ := newTestCustomizer(&scriptedProvider{content: "I cannot answer that."}, nil)

	result, err := customizer.Customize(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, MethodFallback, result.GenerationMethod)
}

func TestCustomize_NoProvidersConfigured(t *testing.T) {
	customizer, gateway := newTestCustomizer(nil, nil)

	result, err := customizer.Customize(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, MethodFallback, result.GenerationMethod)
	stats := gateway.Snapshot()
	assert.Equal(t, 0, stats.TotalRequests)
	assert.Zero(t, stats.TotalCostUSD)
}

func TestCustomize_MissingInputs(t *testing.T) {
	customizer, _ := newTestCustomizer(&scriptedProvider{content: llmResponse}, nil)

	_, err := customizer.Customize(context.Background(), Request{})
	assert.Error(t, err)
}

func TestCustomize_CachedRepeatDoesNotTrackUsageTwice(t *testing.T) {
	sink := newMemorySink()
	customizer, gateway := newTestCustomizer(&scriptedProvider{content: llmResponse}, sink)

	_, err := customizer.Customize(context.Background(), testRequest())
	require.NoError(t, err)
	_, err = customizer.Customize(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, gateway.Snapshot().TotalRequests)
	assert.Equal(t, 1, sink.usage)
	assert.Len(t, sink.saved, 2)
}

func TestCustomizeBatch_ContinuesPastFailures(t *testing.T) {
	customizer, _ := newTestCustomizer(&scriptedProvider{content: llmResponse}, nil)

	good := testRequest()
	bad := Request{Country: "netherlands", ContentType: types.ContentResume}

	results := customizer.CustomizeBatch(context.Background(), []Request{good, bad, good})

	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)
	assert.NoError(t, results[2].Err)
	assert.NotNil(t, results[0].Customization)
	assert.Nil(t, results[1].Customization)
	assert.Equal(t, MethodLLM, results[2].Customization.GenerationMethod)
}
