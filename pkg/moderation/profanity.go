package moderation

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultBlocklist is used when no blocklist file is configured.
var DefaultBlocklist = []string{
	"fuck", "shit", "bitch", "ass", "damn", "hell", "crap",
	"bastard", "dick", "cock", "pussy", "slut", "whore", "fag",
	"nigger", "nigga", "retard", "rape", "nazi", "hitler",
}

// Common look-alike characters.
var substitutions = map[rune]string{
	'a': "[a@4]",
	'e': "[e3]",
	'i': "[i1!]",
	'o': "[o0]",
	's': "[s$5]",
}

// Spaces, hyphens and underscores may be inserted between letters.
const separator = `[\s\-_]*`

// ProfanityFilter matches blocked words as whole words, ignoring case,
// look-alike characters, separators and stretched letters ("fuuuck").
type ProfanityFilter struct {
	pattern *regexp.Regexp
}

// NewProfanityFilter compiles the word list into a single pattern.
func NewProfanityFilter(words []string) (*ProfanityFilter, error) {
	alternatives := make([]string, 0, len(words))
	for _, word := range words {
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" {
			continue
		}
		alternatives = append(alternatives, wordPattern(word))
	}

	if len(alternatives) == 0 {
		return &ProfanityFilter{}, nil
	}

	pattern, err := regexp.Compile(`(?i)\b(?:` + strings.Join(alternatives, "|") + `)\b`)
	if err != nil {
		return nil, fmt.Errorf("couldn't compile the blocklist: %w", err)
	}

	return &ProfanityFilter{pattern: pattern}, nil
}

// MustDefaultProfanityFilter builds the filter for DefaultBlocklist.
func MustDefaultProfanityFilter() *ProfanityFilter {
	filter, err := NewProfanityFilter(DefaultBlocklist)
	if err != nil {
		panic(err)
	}
	return filter
}

// wordPattern builds the expression for a single word.
func wordPattern(word string) string {
	parts := make([]string, 0, len(word))
	for _, char := range word {
		class, ok := substitutions[char]
		if !ok {
			class = regexp.QuoteMeta(string(char))
		}
		parts = append(parts, class+"+")
	}
	return strings.Join(parts, separator)
}

// Contains reports whether the text has any blocked word.
func (f *ProfanityFilter) Contains(text string) bool {
	if f == nil || f.pattern == nil {
		return false
	}
	return f.pattern.MatchString(text)
}

type blocklistFile struct {
	Words []string `yaml:"words"`
}

// LoadBlocklist reads a YAML file with a top level "words" list.
func LoadBlocklist(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read the blocklist file: %w", err)
	}

	var file blocklistFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("couldn't parse the blocklist file: %w", err)
	}

	if len(file.Words) == 0 {
		return nil, fmt.Errorf("blocklist file %s has no words", path)
	}

	return file.Words, nil
}
