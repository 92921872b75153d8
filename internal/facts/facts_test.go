package facts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/application-customizer/internal/types"
)

func testProfile() *types.UserProfile {
	return &types.UserProfile{
		PersonalInfo: types.PersonalInfo{
			Name:  "Maria Jansen",
			Email: "maria@example.com",
			Phone: "+31 6 1234 5678",
		},
		Experience: []types.ExperienceEntry{
			{
				Role:    "Senior Engineer",
				Company: "Adyen",
				Highlights: []string{
					"Cut settlement latency by 40%",
					"Processed 2B requests yearly",
				},
			},
			{Role: "Engineer", Company: "Booking.com"},
		},
		Education: []types.EducationEntry{
			{Institution: "TU Delft", Degree: "MSc Computer Science"},
		},
		KeyAchievements: []string{"Scaled the platform to 10k+ merchants"},
	}
}

func TestNewValidator_ExtractsGroundTruth(t *testing.T) {
	v := NewValidator(testProfile())
	truth := v.Truth()

	assert.Equal(t, "Maria Jansen", truth.Name)
	assert.Equal(t, []string{"Adyen", "Booking.com"}, truth.Companies)
	assert.Equal(t, []string{"TU Delft"}, truth.Education)
	assert.Contains(t, truth.Metrics, "40%")
	assert.Contains(t, truth.Metrics, "2B")
	assert.Contains(t, truth.Metrics, "10k")
}

func TestValidateContent_Clean(t *testing.T) {
	v := NewValidator(testProfile())

	result := v.ValidateContent("At Adyen I cut settlement latency by 40%")

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Violations)
}

func TestValidateContent_FabricatedCompany(t *testing.T) {
	v := NewValidator(testProfile())

	result := v.ValidateContent("While at TechCorp and Adyen I shipped payment rails")

	assert.False(t, result.IsValid)
	require.Len(t, result.Violations, 1)
	assert.Equal(t, "fabricated_company", result.Violations[0].Type)
	assert.Equal(t, "TechCorp", result.Violations[0].Found)
	assert.Contains(t, result.Violations[0].Expected, "Adyen")
}

func TestValidateContent_MissingRealCompany(t *testing.T) {
	v := NewValidator(testProfile())

	result := v.ValidateContent("An experienced engineer looking for new challenges")

	require.NotEmpty(t, result.Violations)
	assert.Equal(t, "missing_real_company", result.Violations[0].Type)
	assert.NotEmpty(t, result.Suggestions)
}

func TestValidateContent_NoCompaniesInProfile(t *testing.T) {
	profile := testProfile()
	profile.Experience = nil
	v := NewValidator(profile)

	result := v.ValidateContent("General introduction text")
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Violations)
}

func TestConstraintsPrompt(t *testing.T) {
	v := NewValidator(testProfile())
	prompt := v.ConstraintsPrompt()

	assert.Contains(t, prompt, "Maria Jansen")
	assert.Contains(t, prompt, "maria@example.com")
	assert.Contains(t, prompt, "Adyen, Booking.com")
	assert.Contains(t, prompt, "TU Delft")
	assert.Contains(t, prompt, "40%")
	assert.Contains(t, prompt, "NEVER FABRICATE")
}
