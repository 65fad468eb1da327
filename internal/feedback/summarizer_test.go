package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestSummarizer() *Summarizer {
	return NewSummarizer(NewThemeClassifier(), NewDeduplicator(0.55, 2))
}

func TestSummarizeGroupsAndRanksThemes(t *testing.T) {
	summarizer := newTestSummarizer()

	phrases := []string{
		"带团队的压力很大",
		"工作压力让我焦虑",
		"希望有更多的案例",
		"今天天气不错没有任何线索词在内",
	}
	summaries := summarizer.Summarize(phrases)

	assert.Len(t, summaries, 2)
	assert.Equal(t, "压力与心态", summaries[0].Theme)
	assert.Equal(t, 2, summaries[0].Count)
	assert.Equal(t, "期待与需求", summaries[1].Theme)
	assert.Equal(t, 1, summaries[1].Count)
}

func TestSummarizeCountsBeforeDeduplication(t *testing.T) {
	summarizer := newTestSummarizer()

	phrases := []string{"需要加强沟通", "需要加强沟通的能力", "需要加强团队内部沟通"}
	summaries := summarizer.Summarize(phrases)

	assert.Len(t, summaries, 1)
	// All three phrases count even though fewer representatives survive.
	assert.Equal(t, 3, summaries[0].Count)
	assert.LessOrEqual(t, len(summaries[0].Representatives), 2)
}

func TestSummarizeTiesKeepInsertionOrder(t *testing.T) {
	summarizer := newTestSummarizer()

	phrases := []string{"带团队的压力很大", "希望有更多的案例"}
	summaries := summarizer.Summarize(phrases)

	assert.Len(t, summaries, 2)
	assert.Equal(t, "压力与心态", summaries[0].Theme)
	assert.Equal(t, "期待与需求", summaries[1].Theme)
}

func TestSummarizeEmptyInput(t *testing.T) {
	summarizer := newTestSummarizer()
	assert.Nil(t, summarizer.Summarize(nil))
}
