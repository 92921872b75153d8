// Package rendering prepares generated content for presentation. Raw LLM
// output accumulates markdown artifacts (stray horizontal rules, duplicated
// bullets, inconsistent glyphs); sanitization is one explicit pass with a
// fixed, ordered list of transformations rather than cleanup scattered
// through the generators.
package rendering

import (
	"regexp"
	"strings"
)

type transform struct {
	name    string
	pattern *regexp.Regexp
	replace string
}

// transforms run in order. Order matters: bullet normalization must happen
// before duplicate-bullet collapsing.
var transforms = []transform{
	{"strip-horizontal-rules", regexp.MustCompile(`(?m)^\s*(-{3,}|\*{3,}|_{3,})\s*$\n?`), ""},
	{"strip-escaped-rules", regexp.MustCompile(`\\n-{3,}`), ""},
	{"normalize-bullets", regexp.MustCompile(`(?m)^\s*[-*+]\s+`), "• "},
	{"collapse-duplicate-bullets", regexp.MustCompile(`(?m)^(• .*)\n\1(\n|$)`), "$1$2"},
	{"strip-bold-markers", regexp.MustCompile(`\*\*([^*]+)\*\*`), "$1"},
	{"collapse-blank-lines", regexp.MustCompile(`\n{3,}`), "\n\n"},
	{"trim-trailing-space", regexp.MustCompile(`(?m)[ \t]+$`), ""},
}

// SanitizeForRender applies the fixed transformation sequence and trims the
// result. Safe to apply to already-sanitized text.
func SanitizeForRender(text string) string {
	for _, t := range transforms {
		text = t.pattern.ReplaceAllString(text, t.replace)
	}
	return strings.TrimSpace(text)
}

// TransformNames lists the sanitization steps in application order.
func TransformNames() []string {
	names := make([]string, len(transforms))
	for i, t := range transforms {
		names[i] = t.name
	}
	return names
}
