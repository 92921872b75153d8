package enforcement

import (
	"regexp"

	"github.com/jonathan/application-customizer/internal/rules"
	"github.com/jonathan/application-customizer/internal/types"
)

// phraseFixers holds a compiled case-insensitive matcher per fixable phrase.
// Built once; the rule tables are static.
var phraseFixers = buildPhraseFixers()

type phraseFixer struct {
	pattern     *regexp.Regexp
	replacement string
}

func buildPhraseFixers() []phraseFixer {
	var fixers []phraseFixer
	for _, table := range []map[string]string{rules.ForbiddenReplacements, rules.RedFlagReplacements} {
		for phrase, replacement := range table {
			fixers = append(fixers, phraseFixer{
				pattern:     regexp.MustCompile(`(?i)` + regexp.QuoteMeta(phrase)),
				replacement: replacement,
			})
		}
	}
	return fixers
}

// applyFixes substitutes known replacements for every fixable phrase across
// all text leaves of the customization and returns the number of
// substitutions performed. Phrases without a mapping are left in place:
// auto-fix is best-effort, not guaranteed to zero out violations.
func applyFixes(c *types.Customization) int {
	fixes := fixLeaves(c.CustomizedSections)
	fixes += fixLeaves(c.CountryAdaptations)
	fixes += fixLeaves(c.RuleCompliance)
	return fixes
}

func fixLeaves(m map[string]string) int {
	fixes := 0
	for key, text := range m {
		for _, f := range phraseFixers {
			matches := len(f.pattern.FindAllStringIndex(text, -1))
			if matches == 0 {
				continue
			}
			text = f.pattern.ReplaceAllString(text, f.replacement)
			fixes += matches
		}
		m[key] = text
	}
	return fixes
}
