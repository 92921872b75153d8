package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentType_Valid(t *testing.T) {
	for _, ct := range AllContentTypes() {
		assert.True(t, ct.Valid(), string(ct))
	}
	assert.False(t, ContentType("press_release").Valid())
	assert.False(t, ContentType("").Valid())
}

func TestContentType_LengthUnit(t *testing.T) {
	assert.Equal(t, "characters", ContentLinkedInMessage.LengthUnit())
	assert.Equal(t, "words total", ContentCoverLetter.LengthUnit())
	assert.Equal(t, "words", ContentType("unknown").LengthUnit())
}

func TestCustomization_Clone(t *testing.T) {
	original := &Customization{
		CustomizedSections: map[string]string{SectionDomainFocus: "payments"},
		CountryAdaptations: map[string]string{"tone_adjustments": "direct"},
	}

	clone := original.Clone()
	clone.CustomizedSections[SectionDomainFocus] = "changed"
	clone.CountryAdaptations["tone_adjustments"] = "changed"

	assert.Equal(t, "payments", original.CustomizedSections[SectionDomainFocus])
	assert.Equal(t, "direct", original.CountryAdaptations["tone_adjustments"])
}

func TestCustomization_CloneNilMaps(t *testing.T) {
	clone := (&Customization{}).Clone()
	assert.Nil(t, clone.CustomizedSections)
	assert.Nil(t, clone.CountryAdaptations)
}

func TestCustomization_TextLeavesDeterministic(t *testing.T) {
	c := &Customization{
		CustomizedSections: map[string]string{
			"b_section": "second",
			"a_section": "first",
		},
		CountryAdaptations: map[string]string{"z": "fourth", "a": "third"},
	}

	leaves := c.TextLeaves()
	require.Equal(t, []string{"first", "second", "third", "fourth"}, leaves)

	for i := 0; i < 10; i++ {
		assert.Equal(t, leaves, c.TextLeaves())
	}
}

func TestUserProfile_RecentExperience(t *testing.T) {
	p := &UserProfile{Experience: []ExperienceEntry{
		{Company: "newest"}, {Company: "middle"}, {Company: "oldest"},
	}}

	recent := p.RecentExperience(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "newest", recent[0].Company)

	assert.Len(t, p.RecentExperience(10), 3)
}

func TestUserProfile_TopAchievements(t *testing.T) {
	p := &UserProfile{KeyAchievements: []string{"a", "b", "c"}}
	assert.Equal(t, []string{"a", "b"}, p.TopAchievements(2))
	assert.Len(t, p.TopAchievements(5), 3)
}
