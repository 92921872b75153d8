package customize

import (
	"fmt"
	"strings"

	"github.com/jonathan/application-customizer/internal/types"
)

// FallbackCustomization builds a static, rule-compliant customization from
// profile and analysis data alone. It is used whenever the LLM path fails;
// the text deliberately avoids every phrase the validator flags.
func FallbackCustomization(req Request) *types.Customization {
	analysis := req.Analysis
	profile := req.Profile

	achievement := "Delivered measurable results in previous roles"
	if top := profile.TopAchievements(1); len(top) > 0 {
		achievement = top[0]
	}

	var employer string
	if recent := profile.RecentExperience(1); len(recent) > 0 {
		employer = recent[0].Company
	}

	technical := profile.Skills.Technical
	if len(technical) > 5 {
		technical = technical[:5]
	}

	positioning := fmt.Sprintf("Ready to apply direct experience to the %s role at %s", analysis.RoleTitle, analysis.Company)
	if employer != "" {
		positioning = fmt.Sprintf("Experience at %s maps directly to the %s role at %s",
			employer, analysis.RoleTitle, analysis.Company)
	}

	return &types.Customization{
		CustomizedSections: map[string]string{
			types.SectionDomainFocus: fmt.Sprintf("Focused on %s work relevant to %s",
				analysis.DomainFocus, analysis.Company),
			types.SectionKeyAchievementReframed:  achievement,
			types.SectionTechnicalSkillsEmphasis: strings.Join(technical, ", "),
			types.SectionBusinessImpactFraming: fmt.Sprintf("Direct business impact through %s experience",
				analysis.DomainFocus),
			types.SectionExperiencePositioning: positioning,
		},
		CountryAdaptations: map[string]string{
			"tone_adjustments": "Standard professional tone applied",
		},
		RuleCompliance: map[string]string{
			"generation": "Static fallback content built from profile facts only",
		},
		GenerationMethod: MethodFallback,
	}
}
