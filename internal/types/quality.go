package types

// QualityScores holds the five quality dimensions, each in [0,10], plus the
// overall mean. A scoring pass produces a new value; scores are never
// mutated after computation.
type QualityScores struct {
	RuleCompliance         float64 `json:"rule_compliance"`
	HumanVoice             float64 `json:"human_voice"`
	CountryAppropriateness float64 `json:"country_appropriateness"`
	Specificity            float64 `json:"specificity"`
	FactualAccuracy        float64 `json:"factual_accuracy"`
	OverallQuality         float64 `json:"overall_quality"`
}

// GeneratedContent is the record emitted to the persistence sink after a
// customization completes. The sink write is fire-and-forget.
type GeneratedContent struct {
	ApplicationID    string      `json:"application_id"`
	ContentType      ContentType `json:"content_type"`
	Content          string      `json:"content"`
	QualityScore     float64     `json:"quality_score"`
	GenerationMethod string      `json:"generation_method"`
}
