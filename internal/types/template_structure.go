package types

// TemplateStructure is optional guidance from the upstream dynamic template
// generator. It influences section ordering and emphasis in the prompt but is
// advisory only; it is never validated against the generated content.
type TemplateStructure struct {
	SectionOrder      []string          `json:"section_order,omitempty"`
	ContentEmphasis   ContentEmphasis   `json:"content_emphasis"`
	RoleSpecificFocus RoleSpecificFocus `json:"role_specific_focus"`
}

// ContentEmphasis names the themes the template wants highlighted.
type ContentEmphasis struct {
	TopPriority     string   `json:"top_priority,omitempty"`
	KeyMetrics      []string `json:"key_metrics_to_highlight,omitempty"`
	SkillsToFeature []string `json:"skills_to_feature,omitempty"`
}

// RoleSpecificFocus splits emphasis between technical and business framing.
type RoleSpecificFocus struct {
	TechnicalEmphasis string `json:"technical_emphasis,omitempty"`
	BusinessEmphasis  string `json:"business_emphasis,omitempty"`
}
