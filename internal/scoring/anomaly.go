package scoring

import (
	"fmt"

	"surveyscope/domain/survey"
)

// AnomalyDetector flags straight-line respondents: at least one answered
// question and exactly one distinct value among the answers.
type AnomalyDetector struct{}

// NewAnomalyDetector creates an anomaly detector.
func NewAnomalyDetector() *AnomalyDetector {
	return &AnomalyDetector{}
}

// Detect scans every respondent and returns the flagged ones in row
// order. Respondents who answered nothing are never flagged.
func (d *AnomalyDetector) Detect(table *survey.ScoredTable, names, departments []string) []survey.AnomalyRecord {
	records := make([]survey.AnomalyRecord, 0)
	for i, row := range table.Rows {
		uniform, ok := uniformValue(table.Columns, row)
		if !ok {
			continue
		}
		rec := survey.AnomalyRecord{
			RowIndex:     i,
			UniformScore: uniform,
			Note:         fmt.Sprintf("该伙伴所有题目均为 %.1f 分，建议管理者关注。", uniform),
		}
		if i < len(names) {
			rec.Respondent = names[i]
		}
		if i < len(departments) {
			rec.Department = departments[i]
		}
		records = append(records, rec)
	}
	return records
}

// uniformValue reports the single distinct answered value, if any.
func uniformValue(columns []string, row survey.ScoredRow) (float64, bool) {
	var value float64
	count := 0
	for _, col := range columns {
		s := row[col]
		if !s.Valid {
			continue
		}
		if count == 0 {
			value = s.Value
		} else if s.Value != value {
			return 0, false
		}
		count++
	}
	if count == 0 {
		return 0, false
	}
	return value, true
}
