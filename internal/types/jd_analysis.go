package types

// JDAnalysis is the parsed representation of a job posting, produced by an
// upstream analyzer. It is consumed read-only by every downstream step.
type JDAnalysis struct {
	Company                string   `json:"company"`
	RoleTitle              string   `json:"role_title"`
	DomainFocus            string   `json:"domain_focus"`
	Industry               string   `json:"industry"`
	Seniority              string   `json:"seniority"`
	RequiredSkills         []string `json:"required_skills,omitempty"`
	PreferredSkills        []string `json:"preferred_skills,omitempty"`
	ExperienceYears        string   `json:"experience_years,omitempty"`
	RegulatoryRequirements []string `json:"regulatory_requirements,omitempty"`
	Confidence             float64  `json:"confidence"`
	AnalysisCostUSD        float64  `json:"analysis_cost_usd"`

	Positioning PositioningStrategy `json:"positioning_strategy"`
}

// PositioningStrategy captures how the candidate should be framed for a role.
type PositioningStrategy struct {
	KeyStrengths       []string `json:"key_strengths_to_emphasize,omitempty"`
	ExperienceFraming  string   `json:"experience_framing,omitempty"`
	CulturalAdaptation string   `json:"cultural_adaptation,omitempty"`
}
