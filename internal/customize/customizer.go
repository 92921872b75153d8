package customize

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/application-customizer/internal/enforcement"
	"github.com/jonathan/application-customizer/internal/facts"
	"github.com/jonathan/application-customizer/internal/llm"
	"github.com/jonathan/application-customizer/internal/parsing"
	"github.com/jonathan/application-customizer/internal/rendering"
	"github.com/jonathan/application-customizer/internal/rules"
	"github.com/jonathan/application-customizer/internal/schemas"
	"github.com/jonathan/application-customizer/internal/scoring"
	"github.com/jonathan/application-customizer/internal/types"
)

// Generation methods recorded on the customization.
const (
	MethodLLM      = "llm"
	MethodFallback = "fallback"
)

// Sink persists pipeline results. All sink writes from the customizer are
// fire-and-forget: failures are logged, never returned.
type Sink interface {
	FindOrCreateApplication(ctx context.Context, company, roleTitle, country string) (uuid.UUID, error)
	SaveGeneratedContent(ctx context.Context, gc *types.GeneratedContent) error
	TrackLLMUsage(ctx context.Context, applicationID uuid.UUID, model string, tokens int, costUSD float64) error
}

// Customizer runs the full pipeline for one user profile.
type Customizer struct {
	gateway   *llm.Gateway
	validator *facts.Validator
	sink      Sink
	logger    *slog.Logger
}

// NewCustomizer builds a customizer bound to one profile. sink may be nil to
// disable persistence.
func NewCustomizer(gateway *llm.Gateway, profile *types.UserProfile, sink Sink, logger *slog.Logger) *Customizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Customizer{
		gateway:   gateway,
		validator: facts.NewValidator(profile),
		sink:      sink,
		logger:    logger,
	}
}

// Validator exposes the fact validator bound to the profile.
func (c *Customizer) Validator() *facts.Validator {
	return c.validator
}

// Customize generates customized content for one request. The LLM path runs
// prompt → gateway → parse → enforce → fact-check → score; when the gateway
// fails or the response cannot be parsed, a static rule-compliant fallback
// flows through the same enforcement and scoring so every result carries
// validation and quality data.
func (c *Customizer) Customize(ctx context.Context, req Request) (*types.Customization, error) {
	if req.Analysis == nil || req.Profile == nil {
		return nil, fmt.Errorf("customize: analysis and profile are required")
	}
	if !req.ContentType.Valid() {
		req.ContentType = types.DefaultContentType
	}
	country, exact := rules.ForCountry(req.Country)
	if !exact {
		c.logger.Warn("unknown country, using default rules",
			"requested", req.Country, "default", rules.DefaultCountry)
	}

	raw, method := c.generate(ctx, req)

	enforced, validation := enforcement.Enforce(raw, country, req.ContentType)
	enforced.GenerationMethod = method
	enforced.GeneratedAt = time.Now().UTC().Format(time.RFC3339)

	enforced.FactValidation = c.validator.ValidateContent(strings.Join(enforced.TextLeaves(), " "))
	enforced.QualityScores = scoring.Score(enforced, country, validation)

	c.persist(ctx, req, country, enforced)

	return enforced, nil
}

// generate runs the LLM path and degrades to the fallback customization on
// any failure.
func (c *Customizer) generate(ctx context.Context, req Request) (*types.Customization, string) {
	prompt := BuildPrompt(req, c.validator)

	result := c.gateway.Call(ctx, llm.Request{
		Prompt: prompt,
		Kind:   llm.KindContentCustomization,
	})
	if !result.Success {
		c.logger.Warn("LLM call failed, using fallback customization",
			"company", req.Analysis.Company, "error", result.Error)
		return FallbackCustomization(req), MethodFallback
	}

	parsed, err := parsing.Parse(result.Content)
	if err != nil {
		c.logger.Warn("failed to parse LLM response, using fallback customization",
			"company", req.Analysis.Company, "error", err)
		return FallbackCustomization(req), MethodFallback
	}

	// Schema conformance is advisory: a shape mismatch is logged but the
	// parsed content still flows through enforcement.
	if err := schemas.ValidateCustomization(parsed); err != nil {
		c.logger.Warn("LLM response does not conform to customization schema", "error", err)
	}

	c.trackUsage(ctx, req, result)

	return parsed, MethodLLM
}

// persist writes the finished customization to the sink. Failures never
// propagate to the caller.
func (c *Customizer) persist(ctx context.Context, req Request, country rules.CountryRuleSet, result *types.Customization) {
	if c.sink == nil {
		return
	}

	appID, err := c.sink.FindOrCreateApplication(ctx, req.Analysis.Company, req.Analysis.RoleTitle, country.Name)
	if err != nil {
		c.logger.Warn("failed to record application", "company", req.Analysis.Company, "error", err)
		return
	}

	gc := &types.GeneratedContent{
		ApplicationID:    appID.String(),
		ContentType:      req.ContentType,
		Content:          rendering.SanitizeForRender(strings.Join(result.TextLeaves(), "\n\n")),
		QualityScore:     result.QualityScores.OverallQuality,
		GenerationMethod: result.GenerationMethod,
	}
	if err := c.sink.SaveGeneratedContent(ctx, gc); err != nil {
		c.logger.Warn("failed to save generated content", "application_id", appID, "error", err)
	}
}

// trackUsage records real API spend for a successful, uncached LLM call.
func (c *Customizer) trackUsage(ctx context.Context, req Request, result llm.LLMResult) {
	if c.sink == nil || result.Cached {
		return
	}
	appID, err := c.sink.FindOrCreateApplication(ctx, req.Analysis.Company, req.Analysis.RoleTitle, req.Country)
	if err != nil {
		c.logger.Warn("failed to record application for usage tracking", "error", err)
		return
	}
	if err := c.sink.TrackLLMUsage(ctx, appID, result.Model, result.TokensUsed, result.CostUSD); err != nil {
		c.logger.Warn("failed to track LLM usage", "application_id", appID, "error", err)
	}
}
