package rules

import "strings"

// toneReplacement is one literal substitution applied during tone adaptation.
// Replacements are ordered; none of the outputs contain their own pattern, so
// applying a pass twice leaves already-adapted text unchanged.
type toneReplacement struct {
	old string
	new string
}

var directReplacements = []toneReplacement{
	{"I would like to", "I will"},
	{"I believe that I can", "I can"},
	{"I think I would be", "I am"},
	{"perhaps ", ""},
	{"maybe ", ""},
	{"I hope to", "I will"},
}

var modestReplacements = []toneReplacement{
	{"excellent", "strong"},
	{"outstanding", "solid"},
	{"exceptional", "good"},
	{"amazing", "effective"},
	{"incredible", "significant"},
}

var directFriendlyReplacements = []toneReplacement{
	{"Dear Sir/Madam", "Hi there"},
	{"Dear Sir or Madam", "Hi there"},
	{"I would like to", "I want to"},
}

var formalReplacements = []toneReplacement{
	{"Hi there", "Dear"},
	{"Hi,", "Dear,"},
	{"Thanks", "Thank you"},
	{"I'm", "I am"},
	{"We're", "We are"},
	{"Can't", "Cannot"},
}

var formalWarmReplacements = []toneReplacement{
	{"I am writing to", "I am delighted to write to"},
	{"Hi there", "Dear"},
}

// AdaptTone rewrites content toward the target country's preferred register.
// The pass is idempotent: adapting already-adapted text is a no-op.
func AdaptTone(content, country string) string {
	switch strings.ToLower(strings.TrimSpace(country)) {
	case "netherlands":
		return applyReplacements(content, directReplacements)
	case "finland", "sweden":
		return applyReplacements(content, modestReplacements)
	case "denmark":
		return applyReplacements(content, directFriendlyReplacements)
	case "portugal":
		return applyReplacements(content, formalReplacements)
	case "ireland":
		return applyReplacements(content, formalWarmReplacements)
	}
	return content
}

func applyReplacements(content string, reps []toneReplacement) string {
	for _, r := range reps {
		content = strings.ReplaceAll(content, r.old, r.new)
	}
	return content
}
