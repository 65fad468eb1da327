package feedback

import "sort"

// ThemeSummary is one theme's rollup: how many extracted phrases landed
// in it and up to a few representative phrasings.
type ThemeSummary struct {
	Theme           string   `json:"theme"`
	Count           int      `json:"count"`
	Representatives []string `json:"representatives"`
}

// Summarizer groups pain-point phrases by theme and produces ranked
// theme summaries.
type Summarizer struct {
	classifier *ThemeClassifier
	deduper    *Deduplicator
}

// NewSummarizer creates a summarizer.
func NewSummarizer(classifier *ThemeClassifier, deduper *Deduplicator) *Summarizer {
	return &Summarizer{classifier: classifier, deduper: deduper}
}

// Summarize buckets every phrase under its theme, counts them before
// deduplication, and sorts themes by count descending with insertion
// order breaking ties. Phrases without a trigger are dropped silently.
func (s *Summarizer) Summarize(phrases []string) []ThemeSummary {
	if len(phrases) == 0 {
		return nil
	}
	byTheme := make(map[string][]string)
	var order []string
	for _, p := range phrases {
		theme, ok := s.classifier.Theme(p)
		if !ok {
			continue
		}
		if _, seen := byTheme[theme]; !seen {
			order = append(order, theme)
		}
		byTheme[theme] = append(byTheme[theme], p)
	}

	out := make([]ThemeSummary, 0, len(order))
	for _, theme := range order {
		bucket := byTheme[theme]
		out = append(out, ThemeSummary{
			Theme:           theme,
			Count:           len(bucket),
			Representatives: s.deduper.Representatives(bucket),
		})
	}
	// Stable sort keeps insertion order for equal counts.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
