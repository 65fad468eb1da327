package report

import (
	"time"

	"surveyscope/domain/survey"
	"surveyscope/internal/feedback"
)

// PersonScore holds one respondent's aggregated scores. Total and the
// dimension entries are nil when the respondent answered nothing in
// scope; JSON renders those as null.
type PersonScore struct {
	RowIndex   int                 `json:"row_index"`
	Name       string              `json:"name"`
	Department string              `json:"department,omitempty"`
	Total      *float64            `json:"total"`
	Dimensions map[string]*float64 `json:"dimensions"`
	Behaviors  []BehaviorScore     `json:"behaviors,omitempty"`
}

// BehaviorScore is one respondent's score on a single behavior item,
// in the same label order as the population behavior series.
type BehaviorScore struct {
	Label string   `json:"label"`
	Score *float64 `json:"score"`
}

// DimensionAverage is the pooled population mean for one dimension.
type DimensionAverage struct {
	Dimension string  `json:"dimension"`
	Average   float64 `json:"average"`
}

// BehaviorAverage is the population mean for one behavior item,
// labeled "维度-行为" for display series.
type BehaviorAverage struct {
	Label     string  `json:"label"`
	Dimension string  `json:"dimension"`
	Behavior  string  `json:"behavior"`
	Average   float64 `json:"average"`
}

// VoteCount is one label and its tally in a distribution.
type VoteCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// OpenTextAnalysis is the mining result for one open-feedback column.
type OpenTextAnalysis struct {
	Column   string                      `json:"column"`
	Phrases  []string                    `json:"phrases"`
	Themes   []feedback.ThemeSummary     `json:"themes"`
	Keywords []feedback.KeywordFrequency `json:"keywords"`
}

// ScoreSummary describes the distribution of person total scores.
// Computed over respondents with at least one answered question.
type ScoreSummary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Report is the full analysis of one survey upload.
type Report struct {
	ID              string                 `json:"id"`
	TableHash       string                 `json:"table_hash"`
	CreatedAt       time.Time              `json:"created_at"`
	RespondentCount int                    `json:"respondent_count"`
	PersonScores    []PersonScore          `json:"person_scores"`
	Dimensions      []DimensionAverage     `json:"dimensions"`
	Behaviors       []BehaviorAverage      `json:"behaviors"`
	TotalSummary    ScoreSummary           `json:"total_summary"`
	TopPerformers   []PersonScore          `json:"top_performers"`
	LowPerformers   []PersonScore          `json:"low_performers"`
	Anomalies       []survey.AnomalyRecord `json:"anomalies"`
	OpenText        []OpenTextAnalysis     `json:"open_text"`
	ModuleVotes     []VoteCount            `json:"module_votes"`
	TenureVotes     []VoteCount            `json:"tenure_votes"`
	TeamSizeVotes   []VoteCount            `json:"team_size_votes"`
	Insight         string                 `json:"insight"`
}
