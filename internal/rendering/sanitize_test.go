package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeForRender_StripsHorizontalRules(t *testing.T) {
	input := "Experience\n---\nBuilt things\n*****\nMore things"
	out := SanitizeForRender(input)

	assert.NotContains(t, out, "---")
	assert.NotContains(t, out, "*****")
	assert.Contains(t, out, "Built things")
}

func TestSanitizeForRender_NormalizesBullets(t *testing.T) {
	input := "- first point\n* second point\n+ third point"
	out := SanitizeForRender(input)

	assert.Equal(t, "• first point\n• second point\n• third point", out)
}

func TestSanitizeForRender_CollapsesDuplicateBullets(t *testing.T) {
	input := "- shipped the feature\n- shipped the feature\n- wrote the docs"
	out := SanitizeForRender(input)

	assert.Equal(t, "• shipped the feature\n• wrote the docs", out)
}

func TestSanitizeForRender_StripsBoldMarkers(t *testing.T) {
	out := SanitizeForRender("Led the **payments** team to a **40%** improvement")
	assert.Equal(t, "Led the payments team to a 40% improvement", out)
}

func TestSanitizeForRender_CollapsesBlankLines(t *testing.T) {
	out := SanitizeForRender("para one\n\n\n\n\npara two")
	assert.Equal(t, "para one\n\npara two", out)
}

func TestSanitizeForRender_TrimsTrailingSpace(t *testing.T) {
	out := SanitizeForRender("line one   \nline two\t\n")
	assert.Equal(t, "line one\nline two", out)
}

func TestSanitizeForRender_Idempotent(t *testing.T) {
	inputs := []string{
		"- a\n- a\n---\n**bold** text\n\n\n\nend  ",
		"plain text with no artifacts",
		"",
	}
	for _, input := range inputs {
		once := SanitizeForRender(input)
		assert.Equal(t, once, SanitizeForRender(once), "input %q", input)
	}
}

func TestTransformNames_Ordered(t *testing.T) {
	names := TransformNames()
	assert.Equal(t, "strip-horizontal-rules", names[0])
	assert.Contains(t, names, "normalize-bullets")
	assert.Contains(t, names, "collapse-duplicate-bullets")

	// Bullet normalization must precede duplicate collapsing.
	var normIdx, collapseIdx int
	for i, n := range names {
		switch n {
		case "normalize-bullets":
			normIdx = i
		case "collapse-duplicate-bullets":
			collapseIdx = i
		}
	}
	assert.Less(t, normIdx, collapseIdx)
}
