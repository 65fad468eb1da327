package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"surveyscope/domain/survey"
)

func anomalyFixture(rows []survey.ScoredRow) *survey.ScoredTable {
	return &survey.ScoredTable{
		Columns: []string{"q1", "q2", "q3"},
		Tags: map[string]survey.ColumnTag{
			"q1": {Dimension: "辅导"},
			"q2": {Dimension: "辅导"},
			"q3": {Dimension: "沟通"},
		},
		Rows: rows,
	}
}

func TestDetectFlagsUniformRespondents(t *testing.T) {
	detector := NewAnomalyDetector()
	table := anomalyFixture([]survey.ScoredRow{
		// All fives: flagged.
		{"q1": survey.NewScore(5), "q2": survey.NewScore(5), "q3": survey.NewScore(5)},
		// Mixed values: not flagged.
		{"q1": survey.NewScore(3), "q2": survey.NewScore(3), "q3": survey.NewScore(4)},
		// Single answered question counts as uniform.
		{"q1": survey.NewScore(4), "q2": survey.MissingScore(), "q3": survey.MissingScore()},
		// Nothing answered: never flagged.
		{"q1": survey.MissingScore(), "q2": survey.MissingScore(), "q3": survey.MissingScore()},
	})
	names := []string{"张三", "李四", "王五", "赵六"}
	departments := []string{"研发", "市场", "", "销售"}

	records := detector.Detect(table, names, departments)

	assert.Len(t, records, 2)
	assert.Equal(t, 0, records[0].RowIndex)
	assert.Equal(t, 5.0, records[0].UniformScore)
	assert.Equal(t, "张三", records[0].Respondent)
	assert.Equal(t, "研发", records[0].Department)
	assert.Equal(t, "该伙伴所有题目均为 5.0 分，建议管理者关注。", records[0].Note)

	assert.Equal(t, 2, records[1].RowIndex)
	assert.Equal(t, 4.0, records[1].UniformScore)
	assert.Equal(t, "该伙伴所有题目均为 4.0 分，建议管理者关注。", records[1].Note)
}

func TestDetectUniformWithGapsStillFlags(t *testing.T) {
	detector := NewAnomalyDetector()
	table := anomalyFixture([]survey.ScoredRow{
		{"q1": survey.NewScore(3), "q2": survey.MissingScore(), "q3": survey.NewScore(3)},
	})

	records := detector.Detect(table, nil, nil)

	assert.Len(t, records, 1)
	assert.Equal(t, 3.0, records[0].UniformScore)
	assert.Empty(t, records[0].Respondent)
}

func TestDetectEmptyTable(t *testing.T) {
	detector := NewAnomalyDetector()
	records := detector.Detect(anomalyFixture(nil), nil, nil)
	assert.Empty(t, records)
}
