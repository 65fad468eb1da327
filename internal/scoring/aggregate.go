package scoring

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"surveyscope/domain/survey"
)

// AggregationEngine computes per-person and population score aggregates.
// Missing answers are skipped, never imputed; an aggregate over zero
// answered questions is NaN.
type AggregationEngine struct{}

// NewAggregationEngine creates an aggregation engine.
func NewAggregationEngine() *AggregationEngine {
	return &AggregationEngine{}
}

// PersonDimensionScore is the mean of one respondent's answered questions
// within a dimension. NaN when the respondent answered none of them.
func (e *AggregationEngine) PersonDimensionScore(table *survey.ScoredTable, rowIndex int, dimension string) float64 {
	row := table.Rows[rowIndex]
	sum, count := 0.0, 0
	for _, col := range table.DimensionColumns(dimension) {
		if s := row[col]; s.Valid {
			sum += s.Value
			count++
		}
	}
	if count == 0 {
		return math.NaN()
	}
	return sum / float64(count)
}

// PersonTotalScore is the flat mean over all answered bound questions,
// not a mean of dimension means. Dimensions with more questions weigh
// more, matching a straight per-question average.
func (e *AggregationEngine) PersonTotalScore(table *survey.ScoredTable, rowIndex int) float64 {
	row := table.Rows[rowIndex]
	sum, count := 0.0, 0
	for _, col := range table.Columns {
		if s := row[col]; s.Valid {
			sum += s.Value
			count++
		}
	}
	if count == 0 {
		return math.NaN()
	}
	return sum / float64(count)
}

// PopulationBehaviorAverage is the mean of one column's answered scores
// across all respondents. NaN when nobody answered the question.
func (e *AggregationEngine) PopulationBehaviorAverage(table *survey.ScoredTable, column string) float64 {
	values := make([]float64, 0, table.RowCount())
	for _, row := range table.Rows {
		if s := row[column]; s.Valid {
			values = append(values, s.Value)
		}
	}
	if len(values) == 0 {
		return math.NaN()
	}
	return stat.Mean(values, nil)
}

// PopulationDimensionAverage is the mean of every respondent's
// dimension score, skipping respondents with no answered question in
// the dimension. Each respondent weighs equally regardless of how many
// of the dimension's questions they answered.
func (e *AggregationEngine) PopulationDimensionAverage(table *survey.ScoredTable, dimension string) float64 {
	values := make([]float64, 0, table.RowCount())
	for i := range table.Rows {
		if v := e.PersonDimensionScore(table, i, dimension); !math.IsNaN(v) {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return math.NaN()
	}
	return stat.Mean(values, nil)
}

// PersonTotals returns every respondent's total score in row order.
func (e *AggregationEngine) PersonTotals(table *survey.ScoredTable) []float64 {
	totals := make([]float64, table.RowCount())
	for i := range table.Rows {
		totals[i] = e.PersonTotalScore(table, i)
	}
	return totals
}
