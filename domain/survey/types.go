package survey

// RawRow represents one respondent's answers as header -> raw cell text.
type RawRow map[string]string

// RawTable is the uniform in-memory form of an uploaded survey export.
// Row order is respondent order and is preserved through every pipeline.
type RawTable struct {
	Headers []string
	Rows    []RawRow
}

// ColumnCount returns the number of columns in the table.
func (t *RawTable) ColumnCount() int { return len(t.Headers) }

// RowCount returns the number of respondent rows.
func (t *RawTable) RowCount() int { return len(t.Rows) }

// Score is an explicit optional 1-5 value. Missing answers (blank cells or
// labels outside the score map) carry Valid=false rather than a NaN
// sentinel; NaN only appears in computed aggregates.
type Score struct {
	Value float64
	Valid bool
}

// MissingScore returns the missing value.
func MissingScore() Score { return Score{} }

// NewScore returns a present score.
func NewScore(v float64) Score { return Score{Value: v, Valid: true} }

// ColumnTag binds a scored column to its dimension and behavior.
type ColumnTag struct {
	Dimension string
	Behavior  string
}

// ScoredRow maps a bound column header to the respondent's score.
type ScoredRow map[string]Score

// ScoredTable holds only the catalog-matched columns, coerced to scores.
// Columns are kept in catalog-declaration order; every column has exactly
// one tag.
type ScoredTable struct {
	Columns []string
	Tags    map[string]ColumnTag
	Rows    []ScoredRow
}

// RowCount returns the number of respondent rows.
func (t *ScoredTable) RowCount() int { return len(t.Rows) }

// DimensionColumns returns the bound columns tagged with the given
// dimension, in column order.
func (t *ScoredTable) DimensionColumns(dimension string) []string {
	var cols []string
	for _, col := range t.Columns {
		if t.Tags[col].Dimension == dimension {
			cols = append(cols, col)
		}
	}
	return cols
}

// AnomalyRecord flags a respondent whose answered questions are all the
// same value, suggesting low-effort responding.
type AnomalyRecord struct {
	RowIndex     int     `json:"row_index"`
	Respondent   string  `json:"respondent"`
	Department   string  `json:"department,omitempty"`
	UniformScore float64 `json:"uniform_score"`
	Note         string  `json:"note"`
}
