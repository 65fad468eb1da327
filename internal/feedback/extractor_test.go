package feedback

import (
	"reflect"
	"testing"
)

func TestExtractSplitsOnSentenceEnders(t *testing.T) {
	extractor := NewPhraseExtractor(30)

	got := extractor.Extract("沟通不足，需要提升。时间不够，压力很大！")
	want := []string{"沟通不足，需要提升", "时间不够，压力很大"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestExtractDropsShortAndTriggerlessSegments(t *testing.T) {
	extractor := NewPhraseExtractor(30)

	// "很好" is under 4 runes, "今天天气不错" has no trigger.
	got := extractor.Extract("很好。今天天气不错。希望有更多的练习机会。")
	want := []string{"希望有更多的练习机会"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestExtractDeduplicatesByPrefix(t *testing.T) {
	extractor := NewPhraseExtractor(30)

	got := extractor.Extract("需要更多沟通。需要更多沟通。需要更多辅导。")
	want := []string{"需要更多沟通", "需要更多辅导"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestExtractHonorsPhraseCap(t *testing.T) {
	extractor := NewPhraseExtractor(2)

	got := extractor.Extract("需要更多沟通。希望加强辅导。团队压力很大。")
	if len(got) != 2 {
		t.Errorf("expected 2 phrases, got %v", got)
	}
}

func TestExtractEmptyInput(t *testing.T) {
	extractor := NewPhraseExtractor(30)
	if got := extractor.Extract("   \n  "); got != nil {
		t.Errorf("expected nil for blank input, got %v", got)
	}
}

func TestExtractCollapsesNewlineRuns(t *testing.T) {
	extractor := NewPhraseExtractor(30)

	got := extractor.Extract("需要更多沟通\n\n\n希望加强辅导")
	want := []string{"需要更多沟通", "希望加强辅导"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
