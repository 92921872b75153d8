// Package rules holds the static content and country rule tables consumed by
// prompt building, enforcement and scoring. Everything here is configuration:
// nothing is computed at runtime beyond lookups.
package rules

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed countries.yaml
var countriesYAML []byte

// DefaultCountry is used when an unknown country is requested.
const DefaultCountry = "netherlands"

// CountryRuleSet is the cultural tone and formatting configuration for one
// target country.
type CountryRuleSet struct {
	Name            string        `yaml:"name"`
	ResumeFormat    ResumeFormat  `yaml:"resume_format"`
	Tone            ToneRules     `yaml:"tone"`
	CoverLetter     ContentLimits `yaml:"cover_letter"`
	LinkedInMessage ContentLimits `yaml:"linkedin_message"`
	EmailTemplate   ContentLimits `yaml:"email_template"`
	CulturalNotes   []string      `yaml:"cultural_notes"`
}

// ResumeFormat holds country-specific resume layout expectations.
type ResumeFormat struct {
	MaxPages      int      `yaml:"max_pages"`
	IncludePhoto  bool     `yaml:"include_photo"`
	DateFormat    string   `yaml:"date_format"`
	SectionsOrder []string `yaml:"sections_order"`
}

// ToneRules describes how content should read for a country.
type ToneRules struct {
	Directness string   `yaml:"directness"`
	Formality  string   `yaml:"formality"`
	KeyValues  []string `yaml:"key_values"`
	Avoid      []string `yaml:"avoid"`
}

// ContentLimits holds per-content-type length and style limits.
type ContentLimits struct {
	MaxLength int      `yaml:"max_length"`
	MaxChars  int      `yaml:"max_chars"`
	Style     string   `yaml:"style"`
	Emphasis  []string `yaml:"emphasis"`
}

var (
	loadOnce  sync.Once
	countries map[string]CountryRuleSet
	loadErr   error
)

func loadCountries() {
	loadOnce.Do(func() {
		countries = make(map[string]CountryRuleSet)
		if err := yaml.Unmarshal(countriesYAML, &countries); err != nil {
			loadErr = fmt.Errorf("failed to parse embedded country rules: %w", err)
		}
	})
}

// ForCountry returns the rule set for the given country. Lookup is
// case-insensitive. Unknown countries fall back to the Netherlands rules;
// the second return value reports whether the lookup was exact.
func ForCountry(country string) (CountryRuleSet, bool) {
	loadCountries()
	if loadErr != nil {
		// The embedded table failing to parse is a build defect; surface a
		// zero-value set with the fallback flag so callers can degrade.
		return CountryRuleSet{}, false
	}

	key := strings.ToLower(strings.TrimSpace(country))
	if rs, ok := countries[key]; ok {
		return rs, true
	}
	return countries[DefaultCountry], false
}

// SupportedCountries lists every country with a rule set, sorted.
func SupportedCountries() []string {
	loadCountries()
	names := make([]string, 0, len(countries))
	for name := range countries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LimitsFor returns the length/style limits for a content type, if the
// country defines any.
func (rs CountryRuleSet) LimitsFor(contentType string) (ContentLimits, bool) {
	switch contentType {
	case "cover_letter":
		return rs.CoverLetter, rs.CoverLetter.MaxLength > 0 || rs.CoverLetter.Style != ""
	case "linkedin_message":
		return rs.LinkedInMessage, rs.LinkedInMessage.MaxChars > 0 || rs.LinkedInMessage.Style != ""
	case "email_template":
		return rs.EmailTemplate, rs.EmailTemplate.MaxLength > 0 || rs.EmailTemplate.Style != ""
	}
	return ContentLimits{}, false
}
