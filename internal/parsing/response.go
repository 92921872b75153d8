// Package parsing extracts structured customizations from raw LLM output.
// LLMs wrap JSON in code fences and prose even when told not to; the parser
// tolerates both and falls back to JSON repair before giving up.
package parsing

import (
	"encoding/json"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/jonathan/application-customizer/internal/types"
)

// ParsedCustomization mirrors the JSON object the LLM is asked to return.
type ParsedCustomization struct {
	CustomizedSections map[string]string `json:"customized_sections"`
	CountryAdaptations map[string]string `json:"country_adaptations"`
	RuleCompliance     map[string]string `json:"rule_compliance"`
}

// Parse locates and decodes the JSON object in raw LLM text. A ```json fence
// takes precedence; otherwise the first '{' through the last '}' is used.
// If plain decoding fails, the candidate is run through JSON repair once.
// Returns a *ParseError when no customization can be recovered.
func Parse(raw string) (*types.Customization, error) {
	candidate := extractJSON(raw)
	if candidate == "" {
		return nil, &ParseError{Message: "no JSON object found in LLM response"}
	}

	var parsed ParsedCustomization
	if err := json.Unmarshal([]byte(candidate), &parsed); err != nil {
		repaired, repErr := jsonrepair.JSONRepair(candidate)
		if repErr != nil {
			return nil, &ParseError{Message: "failed to decode customization JSON", Cause: err}
		}
		if err := json.Unmarshal([]byte(repaired), &parsed); err != nil {
			return nil, &ParseError{Message: "failed to decode repaired customization JSON", Cause: err}
		}
	}

	if len(parsed.CustomizedSections) == 0 {
		return nil, &ParseError{Message: "customization JSON has no customized_sections"}
	}

	return &types.Customization{
		CustomizedSections: parsed.CustomizedSections,
		CountryAdaptations: parsed.CountryAdaptations,
		RuleCompliance:     parsed.RuleCompliance,
	}, nil
}

// extractJSON returns the best JSON candidate substring of raw.
func extractJSON(raw string) string {
	if idx := strings.Index(raw, "```json"); idx >= 0 {
		rest := raw[idx+len("```json"):]
		if end := strings.Index(rest, "```"); end >= 0 {
			return strings.TrimSpace(rest[:end])
		}
		return strings.TrimSpace(rest)
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < start {
		return ""
	}
	return raw[start : end+1]
}
