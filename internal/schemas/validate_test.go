package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDoc() map[string]any {
	return map[string]any{
		"customized_sections": map[string]any{
			"domain_focus":              "Payments",
			"key_achievement_reframed":  "Cut latency by 40%",
			"technical_skills_emphasis": "Go, PostgreSQL",
			"business_impact_framing":   "Saved costs",
			"experience_positioning":    "Senior platform work",
		},
	}
}

func TestValidateCustomization_Valid(t *testing.T) {
	assert.NoError(t, ValidateCustomization(validDoc()))
}

func TestValidateCustomization_ValidBytes(t *testing.T) {
	doc := `{"customized_sections": {
		"domain_focus": "a", "key_achievement_reframed": "b",
		"technical_skills_emphasis": "c", "business_impact_framing": "d",
		"experience_positioning": "e"}}`
	assert.NoError(t, ValidateCustomization([]byte(doc)))
	assert.NoError(t, ValidateCustomization(doc))
}

func TestValidateCustomization_MissingSection(t *testing.T) {
	doc := validDoc()
	sections := doc["customized_sections"].(map[string]any)
	delete(sections, "experience_positioning")

	err := ValidateCustomization(doc)
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.NotEmpty(t, verr.Errors)
	assert.Contains(t, err.Error(), "experience_positioning")
}

func TestValidateCustomization_WrongType(t *testing.T) {
	doc := validDoc()
	doc["customized_sections"].(map[string]any)["domain_focus"] = 42

	err := ValidateCustomization(doc)
	require.Error(t, err)

	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestValidateCustomization_MissingSectionsEntirely(t *testing.T) {
	err := ValidateCustomization(map[string]any{"country_adaptations": map[string]any{}})
	require.Error(t, err)
}
