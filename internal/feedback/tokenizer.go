package feedback

import (
	"sort"
	"strings"
	"unicode"
)

// KeywordFrequency is one token and how often it occurred across the
// pain-point phrases.
type KeywordFrequency struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// KeywordCounter tokenizes pain-point phrases into Chinese word
// candidates and counts them. Tokens come from contiguous Han runs:
// every overlapping bigram within a run plus single characters for
// runs of length one. Latin or digit runs are kept whole.
type KeywordCounter struct {
	topN int
}

// NewKeywordCounter creates a counter returning the topN tokens.
func NewKeywordCounter(topN int) *KeywordCounter {
	return &KeywordCounter{topN: topN}
}

// Count joins the phrases, tokenizes, filters stopwords, and returns
// tokens by count descending. Ties break by first occurrence so the
// output is deterministic.
func (c *KeywordCounter) Count(phrases []string) []KeywordFrequency {
	if len(phrases) == 0 {
		return nil
	}
	combined := strings.Join(phrases, " ")

	counts := make(map[string]int)
	var order []string
	record := func(token string) {
		if !keepToken(token) {
			return
		}
		if counts[token] == 0 {
			order = append(order, token)
		}
		counts[token]++
	}
	for _, token := range tokenize(combined) {
		record(token)
	}

	out := make([]KeywordFrequency, 0, len(order))
	for _, token := range order {
		out = append(out, KeywordFrequency{Word: token, Count: counts[token]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if len(out) > c.topN {
		out = out[:c.topN]
	}
	return out
}

// keepToken filters stopwords. Multi-rune tokens go through the general
// stopword list, single runes through the stricter single-character one.
func keepToken(token string) bool {
	runes := []rune(token)
	switch {
	case len(runes) == 0:
		return false
	case len(runes) == 1:
		return !SingleCharStop[token] && !StopwordsCN[token]
	default:
		return !StopwordsCN[token]
	}
}

// tokenize splits text into candidate tokens. Han runs yield their
// overlapping bigrams, or the lone character for single-rune runs;
// letter and digit runs are emitted whole.
func tokenize(text string) []string {
	var tokens []string
	var han []rune
	var word []rune

	flushHan := func() {
		if len(han) == 1 {
			tokens = append(tokens, string(han))
		} else {
			for i := 0; i+1 < len(han); i++ {
				tokens = append(tokens, string(han[i:i+2]))
			}
		}
		han = han[:0]
	}
	flushWord := func() {
		if len(word) > 0 {
			tokens = append(tokens, string(word))
			word = word[:0]
		}
	}

	for _, r := range text {
		switch {
		case unicode.Is(unicode.Han, r):
			flushWord()
			han = append(han, r)
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if len(han) > 0 {
				flushHan()
			}
			word = append(word, r)
		default:
			if len(han) > 0 {
				flushHan()
			}
			flushWord()
		}
	}
	if len(han) > 0 {
		flushHan()
	}
	flushWord()
	return tokens
}
