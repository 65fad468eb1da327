package feedback

import (
	"sort"
	"strings"
)

// Deduplicator collapses near-duplicate phrases inside one theme and
// keeps a few representative ones, preferring longer phrasings.
type Deduplicator struct {
	threshold float64
	maxKept   int
}

// NewDeduplicator creates a deduplicator. threshold is the rune-set
// overlap ratio above which two phrases count as duplicates; maxKept
// caps the representatives per theme.
func NewDeduplicator(threshold float64, maxKept int) *Deduplicator {
	return &Deduplicator{threshold: threshold, maxKept: maxKept}
}

// Representatives scans phrases longest first and keeps each one that
// is not a duplicate of an already kept phrase, stopping at maxKept.
// Trimmed phrases under 3 runes are skipped. Two phrases are duplicates
// when one contains the other or their rune sets overlap at or above
// the threshold.
func (d *Deduplicator) Representatives(phrases []string) []string {
	if len(phrases) == 0 {
		return nil
	}
	sorted := make([]string, len(phrases))
	copy(sorted, phrases)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len([]rune(sorted[i])) > len([]rune(sorted[j]))
	})

	var kept []string
	for _, p := range sorted {
		clean := strings.TrimSpace(p)
		if len([]rune(clean)) < 3 {
			continue
		}
		if d.isDuplicate(clean, kept) {
			continue
		}
		kept = append(kept, clean)
		if len(kept) >= d.maxKept {
			break
		}
	}
	return kept
}

func (d *Deduplicator) isDuplicate(phrase string, kept []string) bool {
	for _, k := range kept {
		if strings.Contains(k, phrase) || strings.Contains(phrase, k) {
			return true
		}
		if runeSetOverlap(phrase, k) >= d.threshold {
			return true
		}
	}
	return false
}

// runeSetOverlap is |A∩B| / max(|A|, |B|, 1) over distinct runes.
func runeSetOverlap(a, b string) float64 {
	setA := runeSet(a)
	setB := runeSet(b)
	shared := 0
	for r := range setA {
		if setB[r] {
			shared++
		}
	}
	denom := len(setA)
	if len(setB) > denom {
		denom = len(setB)
	}
	if denom < 1 {
		denom = 1
	}
	return float64(shared) / float64(denom)
}

func runeSet(s string) map[rune]bool {
	set := make(map[rune]bool, len(s))
	for _, r := range s {
		set[r] = true
	}
	return set
}
