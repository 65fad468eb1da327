package feedback

import (
	"reflect"
	"testing"
)

func TestRepresentativesKeepsLongestDistinctPhrases(t *testing.T) {
	deduper := NewDeduplicator(0.55, 2)

	phrases := []string{"需要加强沟通", "需要加强团队内部沟通", "完全不同的一句话在这里"}
	got := deduper.Representatives(phrases)
	// Longest first; the short variant is a substring of the longer one
	// and is dropped.
	want := []string{"完全不同的一句话在这里", "需要加强团队内部沟通"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRepresentativesDropsHighOverlap(t *testing.T) {
	deduper := NewDeduplicator(0.55, 3)

	// Same rune set in a different arrangement, neither a substring.
	phrases := []string{"沟通需要加强了", "加强需要沟通了"}
	got := deduper.Representatives(phrases)
	if len(got) != 1 {
		t.Errorf("expected 1 representative, got %v", got)
	}
}

func TestRepresentativesSkipsTinyPhrases(t *testing.T) {
	deduper := NewDeduplicator(0.55, 2)

	got := deduper.Representatives([]string{"难", "沟通", "需要更多辅导"})
	want := []string{"需要更多辅导"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRepresentativesEmptyInput(t *testing.T) {
	deduper := NewDeduplicator(0.55, 2)
	if got := deduper.Representatives(nil); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestRuneSetOverlap(t *testing.T) {
	// 4 shared distinct runes out of max(5, 5).
	if got := runeSetOverlap("沟通需要多", "沟通需要很"); got != 0.8 {
		t.Errorf("expected 0.8, got %v", got)
	}
	if got := runeSetOverlap("", ""); got != 0 {
		t.Errorf("expected 0 for empty strings, got %v", got)
	}
}
