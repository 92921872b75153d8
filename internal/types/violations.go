package types

// ValidationResult reports rule violations found in a Customization.
// Violations holds the pre-fix list: it is preserved unchanged as an audit
// trail even after auto-fix runs. ViolationsAfterFix is recomputed on the
// fixed content so callers can choose which view they need.
type ValidationResult struct {
	HasViolations      bool     `json:"has_violations"`
	Violations         []string `json:"violations"`
	ViolationsAfterFix []string `json:"violations_after_fix"`
	Warnings           []string `json:"warnings"`
	TotalViolations    int      `json:"total_violations"`
	ComplianceScore    int      `json:"compliance_score"`
}

// FactValidation is the result of checking generated text against the
// candidate's ground-truth profile.
type FactValidation struct {
	IsValid     bool            `json:"is_valid"`
	Violations  []FactViolation `json:"violations"`
	Suggestions []string        `json:"suggestions,omitempty"`
}

// FactViolation describes one claim that cannot be traced to the profile.
type FactViolation struct {
	Type     string `json:"type"`
	Found    string `json:"found,omitempty"`
	Expected string `json:"expected,omitempty"`
}
