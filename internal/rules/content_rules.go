package rules

import "regexp"

// ForbiddenPhrases are corporate buzzwords that must never appear in
// generated content.
var ForbiddenPhrases = []string{
	"leverage", "utilize", "drive results", "synergize", "ideate",
	"actualize", "operationalize", "streamline", "optimize",
	"comprehensive", "extensive", "robust", "strategic",
	"innovative", "cutting-edge", "dynamic", "scalable",
}

// LLMRedFlags are phrasings that read as machine-generated.
var LLMRedFlags = []string{
	"delve into", "furthermore", "however", "moreover",
	"in conclusion", "to summarize", "it is worth noting",
	"esteemed organization", "valuable addition to your team",
	"proven track record",
}

// HedgingPhrases are flagged when the target country expects high directness.
var HedgingPhrases = []string{
	"perhaps", "maybe", "i believe", "i think", "possibly",
}

// PlaceholderPatterns match template text the LLM failed to fill in.
var PlaceholderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\[Your Name\]`),
	regexp.MustCompile(`(?i)\[Company\]`),
	regexp.MustCompile(`(?i)\[Role\]`),
	regexp.MustCompile(`(?i)\[Date\]`),
	regexp.MustCompile(`(?i)\[Skill\]`),
	regexp.MustCompile(`(?i)\[Experience\]`),
	regexp.MustCompile(`<[^>]*>`),
	regexp.MustCompile(`\{[^}]*\}`),
}

// ForbiddenReplacements maps corporate buzzwords to plain alternatives.
// Phrases without an entry are reported but left unfixed.
var ForbiddenReplacements = map[string]string{
	"leverage":      "use",
	"utilize":       "use",
	"optimize":      "improve",
	"streamline":    "simplify",
	"comprehensive": "complete",
	"extensive":     "wide",
	"robust":        "strong",
	"strategic":     "planned",
}

// RedFlagReplacements maps machine-sounding phrases to natural alternatives.
var RedFlagReplacements = map[string]string{
	"delve into":            "explore",
	"furthermore":           "also",
	"moreover":              "also",
	"in conclusion":         "finally",
	"esteemed organization": "company",
	"proven track record":   "experience",
}

// FormattingRules describes the structural requirements for one content type.
type FormattingRules struct {
	Structure        []string
	RequiredElements []string
	Tone             string
}

var formattingRules = map[string]FormattingRules{
	"resume": {
		Structure:        []string{"summary", "experience", "education", "skills"},
		RequiredElements: []string{"quantified achievements", "action verbs", "relevant keywords"},
		Tone:             "professional",
	},
	"cover_letter": {
		Structure:        []string{"opening", "body_paragraph_1", "body_paragraph_2", "closing"},
		RequiredElements: []string{"specific role mention", "company research", "value proposition"},
		Tone:             "direct_personal",
	},
	"linkedin_message": {
		Structure:        []string{"greeting", "connection_reason", "value_proposition", "call_to_action"},
		RequiredElements: []string{"personal connection", "mutual benefit", "clear next step"},
		Tone:             "professional_casual",
	},
	"email_template": {
		Structure:        []string{"greeting", "introduction", "attachment_mention", "closing"},
		RequiredElements: []string{"clear subject line", "role reference", "polite closing"},
		Tone:             "professional_direct",
	},
}

// FormattingFor returns the structural requirements for a content type.
// Unknown content types get the resume rules.
func FormattingFor(contentType string) FormattingRules {
	if fr, ok := formattingRules[contentType]; ok {
		return fr
	}
	return formattingRules["resume"]
}
