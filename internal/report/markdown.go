package report

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// RenderMarkdown renders a report as a markdown document for export or
// terminal display.
func RenderMarkdown(r *Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# 新经理管理行为调研报告\n\n")
	fmt.Fprintf(&b, "- 报告编号：%s\n", r.ID)
	fmt.Fprintf(&b, "- 生成时间：%s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "- 样本人数：%d\n\n", r.RespondentCount)

	if len(r.Dimensions) > 0 {
		b.WriteString("## 维度平均分\n\n")
		b.WriteString("| 维度 | 全员平均分 |\n|---|---|\n")
		for _, d := range r.Dimensions {
			fmt.Fprintf(&b, "| %s | %.2f |\n", d.Dimension, d.Average)
		}
		b.WriteString("\n")
	}

	if r.Insight != "" {
		b.WriteString("## 简要洞察\n\n")
		b.WriteString(r.Insight)
		b.WriteString("\n\n")
	}

	if len(r.Behaviors) > 0 {
		b.WriteString("## 行为项平均分\n\n")
		b.WriteString("| 行为项 | 平均分 |\n|---|---|\n")
		for _, be := range r.Behaviors {
			fmt.Fprintf(&b, "| %s | %.2f |\n", be.Label, be.Average)
		}
		b.WriteString("\n")
	}

	if r.TotalSummary.Count > 0 {
		b.WriteString("## 总分分布\n\n")
		fmt.Fprintf(&b, "均值 %.2f，中位数 %.2f，标准差 %.2f，最低 %.2f，最高 %.2f（有效样本 %d 人）。\n\n",
			r.TotalSummary.Mean, r.TotalSummary.Median, r.TotalSummary.StdDev,
			r.TotalSummary.Min, r.TotalSummary.Max, r.TotalSummary.Count)
	}

	writeRanked := func(title string, persons []PersonScore) {
		if len(persons) == 0 {
			return
		}
		fmt.Fprintf(&b, "## %s\n\n", title)
		for _, p := range persons {
			if p.Total == nil {
				continue
			}
			fmt.Fprintf(&b, "- %s：%.2f 分\n", p.Name, *p.Total)
		}
		b.WriteString("\n")
	}
	writeRanked("总分前列", r.TopPerformers)
	writeRanked("总分靠后", r.LowPerformers)

	if len(r.Anomalies) > 0 {
		b.WriteString("## 作答提醒\n\n")
		for _, a := range r.Anomalies {
			fmt.Fprintf(&b, "- %s：%s\n", a.Respondent, a.Note)
		}
		b.WriteString("\n")
	}

	for _, ot := range r.OpenText {
		fmt.Fprintf(&b, "## 开放反馈：%s\n\n", ot.Column)
		if len(ot.Themes) == 0 {
			b.WriteString("未提取到有效的痛点表述。\n\n")
			continue
		}
		for _, theme := range ot.Themes {
			fmt.Fprintf(&b, "### %s（%d 条）\n\n", theme.Theme, theme.Count)
			for _, rep := range theme.Representatives {
				fmt.Fprintf(&b, "- %s\n", rep)
			}
			b.WriteString("\n")
		}
		if len(ot.Keywords) > 0 {
			b.WriteString("高频词：")
			parts := make([]string, 0, len(ot.Keywords))
			for _, kw := range ot.Keywords {
				parts = append(parts, fmt.Sprintf("%s(%d)", kw.Word, kw.Count))
			}
			b.WriteString(strings.Join(parts, "、"))
			b.WriteString("\n\n")
		}
	}

	writeVotes := func(title string, votes []VoteCount) {
		if len(votes) == 0 {
			return
		}
		fmt.Fprintf(&b, "## %s\n\n", title)
		for _, v := range votes {
			fmt.Fprintf(&b, "- %s：%d\n", v.Label, v.Count)
		}
		b.WriteString("\n")
	}
	writeVotes("希望深入学习的技能模块", r.ModuleVotes)
	writeVotes("管理年限分布", r.TenureVotes)
	writeVotes("团队规模分布", r.TeamSizeVotes)

	return b.String()
}

// RenderHTML converts the markdown report to an HTML fragment.
func RenderHTML(r *Report) []byte {
	extensions := parser.CommonExtensions | parser.Tables
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse([]byte(RenderMarkdown(r)))

	opts := html.RendererOptions{Flags: html.CommonFlags}
	renderer := html.NewRenderer(opts)
	return markdown.Render(doc, renderer)
}
