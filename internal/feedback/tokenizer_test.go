package feedback

import (
	"reflect"
	"testing"
)

func TestTokenizeHanBigrams(t *testing.T) {
	got := tokenize("沟通能力")
	want := []string{"沟通", "通能", "能力"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenizeSingleHanRun(t *testing.T) {
	got := tokenize("难")
	want := []string{"难"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenizeMixedScript(t *testing.T) {
	got := tokenize("学习OKR方法")
	want := []string{"学习", "OKR", "方法"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenizePunctuationSplitsRuns(t *testing.T) {
	got := tokenize("沟通，辅导")
	want := []string{"沟通", "辅导"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCountFiltersStopwordsAndRanks(t *testing.T) {
	counter := NewKeywordCounter(10)

	freqs := counter.Count([]string{"沟通不足", "沟通压力", "希望改善"})
	if len(freqs) == 0 {
		t.Fatal("expected some keywords")
	}
	if freqs[0].Word != "沟通" || freqs[0].Count != 2 {
		t.Errorf("expected 沟通 x2 first, got %+v", freqs[0])
	}
	for _, f := range freqs {
		if StopwordsCN[f.Word] || (len([]rune(f.Word)) == 1 && SingleCharStop[f.Word]) {
			t.Errorf("stopword %q leaked into results", f.Word)
		}
	}
}

func TestCountHonorsTopN(t *testing.T) {
	counter := NewKeywordCounter(1)

	freqs := counter.Count([]string{"沟通不足", "沟通压力"})
	if len(freqs) != 1 {
		t.Errorf("expected 1 keyword, got %v", freqs)
	}
}

func TestCountEmptyInput(t *testing.T) {
	counter := NewKeywordCounter(10)
	if got := counter.Count(nil); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}
