package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormattingFor_KnownTypes(t *testing.T) {
	coverLetter := FormattingFor("cover_letter")
	assert.Equal(t, "direct_personal", coverLetter.Tone)
	assert.Contains(t, coverLetter.Structure, "opening")
	assert.Contains(t, coverLetter.RequiredElements, "value proposition")

	linkedin := FormattingFor("linkedin_message")
	assert.Equal(t, "professional_casual", linkedin.Tone)
	assert.Contains(t, linkedin.Structure, "call_to_action")
}

func TestFormattingFor_UnknownTypeGetsResumeRules(t *testing.T) {
	unknown := FormattingFor("press_release")
	resume := FormattingFor("resume")
	assert.Equal(t, resume, unknown)
}

func TestReplacementMapsCoverKnownPhrases(t *testing.T) {
	// Every replacement key must also be a detectable phrase; otherwise the
	// fixer would rewrite text the validator never flagged.
	for phrase := range ForbiddenReplacements {
		assert.Contains(t, ForbiddenPhrases, phrase)
	}
	for phrase := range RedFlagReplacements {
		assert.Contains(t, LLMRedFlags, phrase)
	}
}

func TestReplacementsDoNotReintroduceViolations(t *testing.T) {
	check := func(replacement string) {
		lower := strings.ToLower(replacement)
		for _, phrase := range ForbiddenPhrases {
			assert.NotContains(t, lower, strings.ToLower(phrase), "replacement %q", replacement)
		}
		for _, flag := range LLMRedFlags {
			assert.NotContains(t, lower, strings.ToLower(flag), "replacement %q", replacement)
		}
	}
	for _, r := range ForbiddenReplacements {
		check(r)
	}
	for _, r := range RedFlagReplacements {
		check(r)
	}
}

func TestPlaceholderPatterns(t *testing.T) {
	matches := func(text string) bool {
		for _, p := range PlaceholderPatterns {
			if p.MatchString(text) {
				return true
			}
		}
		return false
	}

	assert.True(t, matches("Sincerely, [Your Name]"))
	assert.True(t, matches("applying for [role] at the company"))
	assert.True(t, matches("Contact me at <email>"))
	assert.False(t, matches("Led a team of 12 engineers at Acme"))
}
