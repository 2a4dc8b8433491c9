package skills

import (
	"regexp"
	"sort"
	"strings"
)

// Extractor scans free text for vocabulary terms. The alternation pattern is
// compiled once at construction; construct a single Extractor at startup and
// share it across requests.
type Extractor struct {
	pattern *regexp.Regexp
}

// NewExtractor builds an Extractor over the default Vocabulary.
func NewExtractor() *Extractor {
	return NewExtractorWithVocabulary(Vocabulary)
}

// NewExtractorWithVocabulary builds an Extractor over a custom term list.
// Terms are matched literally, case-insensitively, and whole-word on both
// sides, so "java" does not match inside "javascript".
func NewExtractorWithVocabulary(vocab []string) *Extractor {
	quoted := make([]string, 0, len(vocab))
	for _, term := range vocab {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(term))
	}
	pattern := regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`)
	return &Extractor{pattern: pattern}
}

// Extract returns the vocabulary terms present in text, lower-cased,
// de-duplicated, and sorted alphabetically. Empty text yields an empty set.
func (e *Extractor) Extract(text string) []string {
	matches := e.pattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return []string{}
	}
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		lower := strings.ToLower(m)
		if _, ok := seen[lower]; ok {
			continue
		}
		seen[lower] = struct{}{}
		out = append(out, lower)
	}
	sort.Strings(out)
	return out
}
