package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// NormalizationConfig holds the abbreviation and typo correction data used to
// clean up free-text school searches.
type NormalizationConfig struct {
	Abbreviations map[string]string `json:"abbreviations"`
	Typos         map[string]string `json:"typos"`
	TypeAliases   map[string]string `json:"typeAliases"`
}

// DefaultNormalizationConfig covers the K-12 shorthand parents actually type.
// A JSON config file can replace it wholesale.
func DefaultNormalizationConfig() *NormalizationConfig {
	return &NormalizationConfig{
		Abbreviations: map[string]string{
			"es":   "elementary school",
			"ms":   "middle school",
			"hs":   "high school",
			"jhs":  "junior high school",
			"elem": "elementary",
			"sch":  "school",
		},
		Typos: map[string]string{
			"elementry":  "elementary",
			"elemantary": "elementary",
			"shool":      "school",
			"schol":      "school",
			"acadamy":    "academy",
			"midle":      "middle",
			"carter":     "charter",
		},
		TypeAliases: map[string]string{
			"public school":  "public",
			"private school": "private",
			"independent":    "private",
			"parochial":      "private",
			"charter school": "charter",
			"magnet school":  "magnet",
		},
	}
}

// SearchTermNormalizer cleans free-text search terms before they reach the
// query layer.
type SearchTermNormalizer struct {
	config *NormalizationConfig
}

// NewSearchTermNormalizer creates a normalizer with the built-in tables.
func NewSearchTermNormalizer() *SearchTermNormalizer {
	return &SearchTermNormalizer{config: DefaultNormalizationConfig()}
}

// NewSearchTermNormalizerFromFile creates a normalizer from a JSON config
// file.
func NewSearchTermNormalizerFromFile(configPath string) (*SearchTermNormalizer, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config NormalizationConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &SearchTermNormalizer{config: &config}, nil
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// Normalize trims and collapses whitespace, fixes known typos, and expands
// whole-word abbreviations. Tokens outside the tables pass through with
// their case intact.
func (n *SearchTermNormalizer) Normalize(term string) string {
	term = whitespaceRe.ReplaceAllString(strings.TrimSpace(term), " ")
	if term == "" {
		return ""
	}

	tokens := strings.Split(term, " ")
	for i, token := range tokens {
		key := strings.ToLower(token)
		if correct, ok := n.config.Typos[key]; ok {
			tokens[i] = correct
			continue
		}
		if expanded, ok := n.config.Abbreviations[key]; ok {
			tokens[i] = expanded
		}
	}

	return strings.Join(tokens, " ")
}

// CanonicalSchoolType maps a school type label or alias to its canonical
// filter value. Unknown labels come back lowercased and trimmed.
func (n *SearchTermNormalizer) CanonicalSchoolType(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if canonical, ok := n.config.TypeAliases[value]; ok {
		return canonical
	}
	return value
}
