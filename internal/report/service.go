package report

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"surveyscope/domain/survey"
	"surveyscope/internal"
	"surveyscope/internal/config"
	apperrors "surveyscope/internal/errors"
	"surveyscope/internal/feedback"
	"surveyscope/internal/scoring"
)

// Service turns a raw survey table into a full analysis report. Results
// are cached by table content hash, so re-uploading the same export is
// free, and concurrent uploads of the same table share one computation.
type Service struct {
	catalog  survey.Catalog
	scale    survey.ScoreScale
	cleaner  *scoring.ResponseCleaner
	engine   *scoring.AggregationEngine
	detector *scoring.AnomalyDetector

	extractor  *feedback.PhraseExtractor
	summarizer *feedback.Summarizer
	keywords   *feedback.KeywordCounter

	logger *internal.Logger

	mu      sync.RWMutex
	byHash  map[survey.TableHash]*Report
	byID    map[string]*Report
	inliner singleflight.Group
}

// NewService wires the scoring and feedback pipelines with the default
// catalog and scale.
func NewService(cfg *config.Config, logger *internal.Logger) *Service {
	catalog := survey.DefaultCatalog()
	scale := survey.DefaultScoreScale()
	return &Service{
		catalog:  catalog,
		scale:    scale,
		cleaner:  scoring.NewResponseCleaner(catalog, scale),
		engine:   scoring.NewAggregationEngine(),
		detector: scoring.NewAnomalyDetector(),
		extractor: feedback.NewPhraseExtractor(
			cfg.Analysis.MaxPhrases),
		summarizer: feedback.NewSummarizer(
			feedback.NewThemeClassifier(),
			feedback.NewDeduplicator(cfg.Analysis.DedupThreshold, cfg.Analysis.MaxRepresentatives)),
		keywords: feedback.NewKeywordCounter(cfg.Analysis.TopKeywords),
		logger:   logger,
		byHash:   make(map[survey.TableHash]*Report),
		byID:     make(map[string]*Report),
	}
}

// Analyze computes (or returns the cached) report for a table.
func (s *Service) Analyze(ctx context.Context, table *survey.RawTable) (*Report, error) {
	hash := survey.ComputeTableHash(table)

	s.mu.RLock()
	if cached, ok := s.byHash[hash]; ok {
		s.mu.RUnlock()
		s.logger.Debug("report cache hit for table %s", hash)
		return cached, nil
	}
	s.mu.RUnlock()

	result, err, _ := s.inliner.Do(string(hash), func() (interface{}, error) {
		return s.build(ctx, table, hash)
	})
	if err != nil {
		return nil, err
	}
	return result.(*Report), nil
}

// GetReport returns a previously computed report by ID.
func (s *Service) GetReport(id string) (*Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if report, ok := s.byID[id]; ok {
		return report, nil
	}
	return nil, apperrors.NotFound(fmt.Sprintf("report %s", id))
}

// ListReports returns all cached reports, newest first.
func (s *Service) ListReports() []*Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reports := make([]*Report, 0, len(s.byID))
	for _, r := range s.byID {
		reports = append(reports, r)
	}
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})
	return reports
}

func (s *Service) build(ctx context.Context, table *survey.RawTable, hash survey.TableHash) (*Report, error) {
	start := time.Now()
	report := &Report{
		ID:              uuid.New().String(),
		TableHash:       hash.String(),
		CreatedAt:       time.Now(),
		RespondentCount: table.RowCount(),
	}

	names := s.respondentNames(table)
	departments := columnValues(table, survey.DepartmentColumn)

	var scored *survey.ScoredTable
	g, _ := errgroup.WithContext(ctx)

	// Scoring pipeline: clean, aggregate, detect anomalies.
	g.Go(func() error {
		st, err := s.cleaner.Clean(table)
		if err != nil {
			return err
		}
		scored = st
		report.PersonScores = s.personScores(st, names, departments)
		report.Dimensions = s.dimensionAverages(st)
		report.Behaviors = s.behaviorAverages(st)
		report.TotalSummary = s.totalSummary(report.PersonScores)
		report.TopPerformers, report.LowPerformers = rankPerformers(report.PersonScores, 3)
		report.Anomalies = s.detector.Detect(st, names, departments)
		report.Insight = s.insight(report.Dimensions)
		return nil
	})

	// Feedback pipeline: mine open-text columns, independent of scoring.
	g.Go(func() error {
		report.OpenText = s.mineOpenText(table)
		report.ModuleVotes = s.moduleVotes(table)
		report.TenureVotes = s.distribution(table, survey.TenureColumn, "带团队", "多久")
		report.TeamSizeVotes = s.distribution(table, survey.TeamSizeColumn, "汇报", "伙伴")
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.byHash[hash] = report
	s.byID[report.ID] = report
	s.mu.Unlock()

	s.logger.Info("report %s built for %d respondents (%d bound columns) in %s",
		report.ID, table.RowCount(), len(scored.Columns), time.Since(start).Round(time.Millisecond))
	return report, nil
}

// respondentNames reads the first present name column, falling back to
// 学员N for rows without a usable name.
func (s *Service) respondentNames(table *survey.RawTable) []string {
	var nameCol string
	for _, candidate := range survey.NameColumns {
		if hasHeader(table, candidate) {
			nameCol = candidate
			break
		}
	}
	names := make([]string, table.RowCount())
	for i, row := range table.Rows {
		name := ""
		if nameCol != "" {
			name = strings.TrimSpace(row[nameCol])
		}
		if name == "" {
			name = fmt.Sprintf("学员%d", i+1)
		}
		names[i] = name
	}
	return names
}

func (s *Service) personScores(table *survey.ScoredTable, names, departments []string) []PersonScore {
	persons := make([]PersonScore, table.RowCount())
	for i := range table.Rows {
		dims := make(map[string]*float64, len(survey.DimensionOrder))
		for _, dim := range survey.DimensionOrder {
			if len(table.DimensionColumns(dim)) == 0 {
				continue
			}
			dims[dim] = floatPtr(s.engine.PersonDimensionScore(table, i, dim))
		}
		behaviors := make([]BehaviorScore, 0, len(table.Columns))
		for _, col := range table.Columns {
			tag := table.Tags[col]
			var score *float64
			if v := table.Rows[i][col]; v.Valid {
				score = floatPtr(v.Value)
			}
			behaviors = append(behaviors, BehaviorScore{
				Label: fmt.Sprintf("%s-%s", tag.Dimension, tag.Behavior),
				Score: score,
			})
		}
		person := PersonScore{
			RowIndex:   i,
			Total:      floatPtr(s.engine.PersonTotalScore(table, i)),
			Dimensions: dims,
			Behaviors:  behaviors,
		}
		if i < len(names) {
			person.Name = names[i]
		}
		if i < len(departments) {
			person.Department = departments[i]
		}
		persons[i] = person
	}
	return persons
}

// dimensionAverages keeps the fixed dimension order and drops
// dimensions with no answered question in the whole table.
func (s *Service) dimensionAverages(table *survey.ScoredTable) []DimensionAverage {
	out := make([]DimensionAverage, 0, len(survey.DimensionOrder))
	for _, dim := range survey.DimensionOrder {
		avg := s.engine.PopulationDimensionAverage(table, dim)
		if math.IsNaN(avg) {
			continue
		}
		out = append(out, DimensionAverage{Dimension: dim, Average: avg})
	}
	return out
}

func (s *Service) behaviorAverages(table *survey.ScoredTable) []BehaviorAverage {
	out := make([]BehaviorAverage, 0, len(table.Columns))
	for _, col := range table.Columns {
		avg := s.engine.PopulationBehaviorAverage(table, col)
		if math.IsNaN(avg) {
			continue
		}
		tag := table.Tags[col]
		out = append(out, BehaviorAverage{
			Label:     fmt.Sprintf("%s-%s", tag.Dimension, tag.Behavior),
			Dimension: tag.Dimension,
			Behavior:  tag.Behavior,
			Average:   avg,
		})
	}
	return out
}

func (s *Service) totalSummary(persons []PersonScore) ScoreSummary {
	totals := make([]float64, 0, len(persons))
	for _, p := range persons {
		if p.Total != nil {
			totals = append(totals, *p.Total)
		}
	}
	if len(totals) == 0 {
		return ScoreSummary{}
	}
	mean, _ := stats.Mean(totals)
	median, _ := stats.Median(totals)
	stdDev, _ := stats.StandardDeviation(totals)
	min, _ := stats.Min(totals)
	max, _ := stats.Max(totals)
	return ScoreSummary{
		Count:  len(totals),
		Mean:   mean,
		Median: median,
		StdDev: stdDev,
		Min:    min,
		Max:    max,
	}
}

// insight reproduces the overview conclusion: best and weakest
// dimension, overall average, and whether the spread warrants focus.
func (s *Service) insight(dims []DimensionAverage) string {
	if len(dims) == 0 {
		return ""
	}
	best, worst := dims[0], dims[0]
	sum := 0.0
	for _, d := range dims {
		sum += d.Average
		if d.Average > best.Average {
			best = d
		}
		if d.Average < worst.Average {
			worst = d
		}
	}
	overall := sum / float64(len(dims))
	text := fmt.Sprintf("表现最佳：%s（%.2f 分），可总结经验、固化做法。最需关注：%s（%.2f 分），建议在培训中优先加强。整体：各维度全员平均 %.2f 分。",
		best.Dimension, best.Average, worst.Dimension, worst.Average, overall)
	gap := best.Average - worst.Average
	if gap < 0.5 {
		text += "各维度相对均衡。"
	} else {
		text += fmt.Sprintf("最高与最低相差 %.2f 分，可重点补足短板。", gap)
	}
	return text
}

// mineOpenText runs the pain-point pipeline over each open-feedback
// column. Configured columns win; otherwise columns are discovered by
// header heuristics.
func (s *Service) mineOpenText(table *survey.RawTable) []OpenTextAnalysis {
	columns := s.openTextColumns(table)
	out := make([]OpenTextAnalysis, 0, len(columns))
	for _, col := range columns {
		var parts []string
		for _, row := range table.Rows {
			cell := strings.TrimSpace(row[col])
			// Placeholder answers carry no feedback.
			if cell == "" || cell == "无" || cell == "-" || cell == "—" {
				continue
			}
			parts = append(parts, cell)
		}
		phrases := s.extractor.Extract(strings.Join(parts, " "))
		out = append(out, OpenTextAnalysis{
			Column:   col,
			Phrases:  phrases,
			Themes:   s.summarizer.Summarize(phrases),
			Keywords: s.keywords.Count(phrases),
		})
	}
	return out
}

func (s *Service) openTextColumns(table *survey.RawTable) []string {
	var configured []string
	for _, col := range survey.OpenQuestionColumns {
		if hasHeader(table, col) {
			configured = append(configured, col)
		}
	}
	if len(configured) > 0 {
		return configured
	}
	// Header punctuation varies between exports, so fall back to the
	// first header matching the usual phrasings.
	for _, header := range table.Headers {
		if (strings.Contains(header, "培训") && strings.Contains(header, "期待")) ||
			strings.Contains(header, "开放") || strings.Contains(header, "反馈") {
			return []string{header}
		}
	}
	return nil
}

// moduleVotes tallies the multi-select learning-module question. Cells
// are split on the usual Chinese and ASCII separators; only tokens that
// exactly match a dimension name count.
func (s *Service) moduleVotes(table *survey.RawTable) []VoteCount {
	col := survey.LearningModuleColumn
	if !hasHeader(table, col) {
		col = findHeader(table, "技能模块", "深入")
	}
	if col == "" {
		return nil
	}
	valid := make(map[string]bool, len(survey.DimensionOrder))
	for _, dim := range survey.DimensionOrder {
		valid[dim] = true
	}
	counts := make(map[string]int)
	var order []string
	replacer := strings.NewReplacer("，", "\t", "、", "\t", "；", "\t", ";", "\t", ",", "\t", "\n", "\t")
	for _, row := range table.Rows {
		for _, part := range strings.Split(replacer.Replace(row[col]), "\t") {
			token := strings.TrimSpace(part)
			if !valid[token] {
				continue
			}
			if counts[token] == 0 {
				order = append(order, token)
			}
			counts[token]++
		}
	}
	return sortedVotes(counts, order)
}

// distribution tallies a single-answer column's values. Blank answers
// count under 未填写.
func (s *Service) distribution(table *survey.RawTable, exact string, fallbackParts ...string) []VoteCount {
	col := exact
	if !hasHeader(table, col) {
		col = findHeader(table, fallbackParts...)
	}
	if col == "" {
		return nil
	}
	counts := make(map[string]int)
	var order []string
	for _, row := range table.Rows {
		label := strings.TrimSpace(row[col])
		if label == "" {
			label = "未填写"
		}
		if counts[label] == 0 {
			order = append(order, label)
		}
		counts[label]++
	}
	return sortedVotes(counts, order)
}

func sortedVotes(counts map[string]int, order []string) []VoteCount {
	votes := make([]VoteCount, 0, len(order))
	for _, label := range order {
		votes = append(votes, VoteCount{Label: label, Count: counts[label]})
	}
	sort.SliceStable(votes, func(i, j int) bool {
		return votes[i].Count > votes[j].Count
	})
	return votes
}

// rankPerformers returns the top and bottom n respondents by total,
// skipping those with no total. Ties keep row order.
func rankPerformers(persons []PersonScore, n int) (top, low []PersonScore) {
	ranked := make([]PersonScore, 0, len(persons))
	for _, p := range persons {
		if p.Total != nil {
			ranked = append(ranked, p)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return *ranked[i].Total > *ranked[j].Total
	})
	if len(ranked) < n {
		n = len(ranked)
	}
	top = append(top, ranked[:n]...)
	for i := len(ranked) - 1; i >= len(ranked)-n; i-- {
		low = append(low, ranked[i])
	}
	return top, low
}

func columnValues(table *survey.RawTable, header string) []string {
	if !hasHeader(table, header) {
		return nil
	}
	values := make([]string, table.RowCount())
	for i, row := range table.Rows {
		values[i] = strings.TrimSpace(row[header])
	}
	return values
}

func hasHeader(table *survey.RawTable, header string) bool {
	for _, h := range table.Headers {
		if h == header {
			return true
		}
	}
	return false
}

// findHeader returns the first header containing every part.
func findHeader(table *survey.RawTable, parts ...string) string {
	for _, header := range table.Headers {
		all := true
		for _, part := range parts {
			if !strings.Contains(header, part) {
				all = false
				break
			}
		}
		if all {
			return header
		}
	}
	return ""
}

// floatPtr maps NaN to nil so reports marshal cleanly.
func floatPtr(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}
