package feedback

import (
	"regexp"
	"strings"
)

var (
	sentenceEnders = regexp.MustCompile(`[。！？；]`)
	newlineRuns    = regexp.MustCompile(`\n+`)
)

// PhraseExtractor splits open-text feedback into sentence segments and
// keeps the ones that mention a pain-point trigger.
type PhraseExtractor struct {
	triggers   []string
	maxPhrases int
}

// NewPhraseExtractor creates an extractor capped at maxPhrases results.
func NewPhraseExtractor(maxPhrases int) *PhraseExtractor {
	return &PhraseExtractor{triggers: PainPointTriggers, maxPhrases: maxPhrases}
}

// Extract returns trigger-bearing segments in text order. Segments are
// split on Chinese sentence enders and newlines, trimmed, and kept when
// at least 4 runes long. Segments sharing the same first 50 runes count
// as duplicates; the first occurrence wins.
func (e *PhraseExtractor) Extract(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	raw := sentenceEnders.ReplaceAllString(text, "\n")
	raw = strings.TrimSpace(newlineRuns.ReplaceAllString(raw, "\n"))

	var out []string
	seen := make(map[string]bool)
	for _, segment := range strings.Split(raw, "\n") {
		if len(out) >= e.maxPhrases {
			break
		}
		segment = strings.TrimSpace(segment)
		if len([]rune(segment)) < 4 {
			continue
		}
		if !e.hasTrigger(segment) {
			continue
		}
		key := prefixRunes(segment, 50)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, segment)
	}
	return out
}

func (e *PhraseExtractor) hasTrigger(segment string) bool {
	for _, t := range e.triggers {
		if strings.Contains(segment, t) {
			return true
		}
	}
	return false
}

// prefixRunes returns the first n runes of s.
func prefixRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
