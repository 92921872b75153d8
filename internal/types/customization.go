package types

import "sort"

// Customization is the work-in-progress result for one
// (job, country, content type) request. The three string maps come from the
// LLM; ValidationResults, QualityScores and FactValidation are computed by
// the pipeline. A Customization is never returned to a caller without
// ValidationResults and QualityScores attached.
type Customization struct {
	CustomizedSections map[string]string `json:"customized_sections"`
	CountryAdaptations map[string]string `json:"country_adaptations"`
	RuleCompliance     map[string]string `json:"rule_compliance"`

	ValidationResults *ValidationResult `json:"validation_results,omitempty"`
	QualityScores     *QualityScores    `json:"quality_scores,omitempty"`
	FactValidation    *FactValidation   `json:"fact_validation,omitempty"`

	GenerationMethod string `json:"generation_method,omitempty"`
	GeneratedAt      string `json:"generated_at,omitempty"`
	AutoFixesApplied int    `json:"auto_fixes_applied,omitempty"`
}

// Section names the LLM is asked to fill in customized_sections.
const (
	SectionDomainFocus             = "domain_focus"
	SectionKeyAchievementReframed  = "key_achievement_reframed"
	SectionTechnicalSkillsEmphasis = "technical_skills_emphasis"
	SectionBusinessImpactFraming   = "business_impact_framing"
	SectionExperiencePositioning   = "experience_positioning"
)

// Clone returns a deep copy of the customization. Enforcement mutates the
// copy, never the original.
func (c *Customization) Clone() *Customization {
	clone := *c
	clone.CustomizedSections = cloneStringMap(c.CustomizedSections)
	clone.CountryAdaptations = cloneStringMap(c.CountryAdaptations)
	clone.RuleCompliance = cloneStringMap(c.RuleCompliance)
	return &clone
}

// TextLeaves returns every string value held in the customization's content
// maps, in a deterministic order. This is the corpus rule validation scans.
func (c *Customization) TextLeaves() []string {
	var leaves []string
	for _, m := range []map[string]string{c.CustomizedSections, c.CountryAdaptations, c.RuleCompliance} {
		for _, key := range sortedKeys(m) {
			leaves = append(leaves, m[key])
		}
	}
	return leaves
}

func cloneStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
