package scoring

import (
	"strings"

	"surveyscope/domain/survey"
	"surveyscope/internal/errors"
)

// ResponseCleaner binds raw survey columns to the question catalog and
// coerces the label answers to numeric scores.
type ResponseCleaner struct {
	catalog survey.Catalog
	scale   survey.ScoreScale
}

// NewResponseCleaner creates a cleaner for the given catalog and scale.
func NewResponseCleaner(catalog survey.Catalog, scale survey.ScoreScale) *ResponseCleaner {
	return &ResponseCleaner{catalog: catalog, scale: scale}
}

// Clean binds columns and coerces scores. Catalog entries are scanned in
// declared order; each entry matches the first header containing its
// keyword. When two keywords point at the same header the earlier entry
// keeps it and the later one binds nothing, even if another header would
// have matched. Unbound columns are dropped, unmatched entries are
// skipped. The only fatal condition is zero bound columns.
func (c *ResponseCleaner) Clean(table *survey.RawTable) (*survey.ScoredTable, error) {
	if table == nil || table.RowCount() == 0 {
		return nil, errors.EmptyTable("survey table has no respondent rows")
	}

	scored := &survey.ScoredTable{
		Tags: make(map[string]survey.ColumnTag),
	}
	for _, entry := range c.catalog {
		for _, header := range table.Headers {
			if !strings.Contains(strings.TrimSpace(header), entry.Keyword) {
				continue
			}
			if _, bound := scored.Tags[header]; !bound {
				scored.Columns = append(scored.Columns, header)
				scored.Tags[header] = survey.ColumnTag{
					Dimension: entry.Dimension,
					Behavior:  entry.Behavior,
				}
			}
			break
		}
	}

	if len(scored.Columns) == 0 {
		return nil, errors.NoMatchingColumns()
	}

	scored.Rows = make([]survey.ScoredRow, 0, table.RowCount())
	for _, raw := range table.Rows {
		row := make(survey.ScoredRow, len(scored.Columns))
		for _, col := range scored.Columns {
			row[col] = c.coerce(raw[col])
		}
		scored.Rows = append(scored.Rows, row)
	}
	return scored, nil
}

// coerce maps one cell to a score. Anything outside the scale, including
// blanks, is a missing score rather than an error.
func (c *ResponseCleaner) coerce(cell string) survey.Score {
	label := strings.TrimSpace(cell)
	if label == "" {
		return survey.MissingScore()
	}
	if value, ok := c.scale[label]; ok {
		return survey.NewScore(value)
	}
	return survey.MissingScore()
}
