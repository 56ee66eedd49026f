package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"

	dm "github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/model"
)

const (
	reportTemperature float32 = 0.3
	reportMaxTokens           = 2000
	// 进入提示词的搜索结果上限
	reportMaxSources = 4
	reportDateLayout = "January 02, 2006"
)

// Synthesize 基于搜索摘要生成 markdown 报告，模型输出原样返回
func (e *Engine) Synthesize(ctx context.Context, question string, results []dm.SearchResult, analysis dm.Classification, templateKey dm.Category) (string, error) {
	prompt := buildReportPrompt(question, results, analysis, Template(templateKey), e.now().Format(reportDateLayout))
	return e.generate(ctx, prompt,
		model.WithTemperature(reportTemperature),
		model.WithMaxTokens(reportMaxTokens))
}

func buildReportPrompt(question string, results []dm.SearchResult, analysis dm.Classification, tpl dm.ReportTemplate, date string) string {
	// 空摘要跳过，但仍占用编号
	var research strings.Builder
	for i, r := range results {
		if i >= reportMaxSources {
			break
		}
		if r.Snippet == "" {
			continue
		}
		fmt.Fprintf(&research, "\n**Source %d:** %s\n%s\n*From: %s*\n", i+1, r.Title, r.Snippet, r.Source)
	}

	analysisType := analysis.AnalysisType
	if analysisType == "" {
		analysisType = "Strategic analysis"
	}

	var sb strings.Builder
	sb.WriteString("You are a senior Amazon strategy consultant. Create a comprehensive, professional strategy report.\n\n")
	fmt.Fprintf(&sb, "REPORT TYPE: %s\n", tpl.Title)
	fmt.Fprintf(&sb, "DATE: %s\n", date)
	fmt.Fprintf(&sb, "CLIENT QUESTION: %s\n\n", question)
	fmt.Fprintf(&sb, "ANALYSIS FRAMEWORK: %s\n", analysisType)
	fmt.Fprintf(&sb, "KEY FOCUS AREAS: %s\n", strings.Join(analysis.FocusAreas, ", "))
	fmt.Fprintf(&sb, "REPORT SECTIONS: %s\n\n", strings.Join(tpl.Sections[:], "; "))
	fmt.Fprintf(&sb, "MARKET RESEARCH DATA:\n%s\n", research.String())

	sb.WriteString("Create a detailed report with these sections:\n\n")
	fmt.Fprintf(&sb, "# %s\n*Generated on %s*\n\n", tpl.Title, date)
	sb.WriteString(`## 🎯 EXECUTIVE SUMMARY
• [Key insight 1 - most important finding]
• [Key insight 2 - critical opportunity or challenge]
• [Key insight 3 - strategic implication]

`)
	fmt.Fprintf(&sb, "## 🔍 %s\n[Detailed analysis of first focus area with specific data points]\n\n", strings.ToUpper(tpl.Sections[0]))
	fmt.Fprintf(&sb, "## 📊 %s\n[Second major section with actionable insights]\n\n", strings.ToUpper(tpl.Sections[1]))
	fmt.Fprintf(&sb, "## 💡 %s\n[Third section focusing on opportunities and strategies]\n\n", strings.ToUpper(tpl.Sections[2]))
	fmt.Fprintf(&sb, "## 🚀 %s\n", strings.ToUpper(tpl.Sections[3]))
	sb.WriteString(`1. **Immediate Actions (Next 30 days)**
   - [Specific action item]
   - [Specific action item]

2. **Strategic Initiatives (Next 90 days)**
   - [Strategic initiative]
   - [Strategic initiative]

3. **Long-term Strategy (6+ months)**
   - [Long-term strategic direction]
   - [Long-term strategic direction]

## 📈 KEY METRICS TO TRACK
• [Specific metric 1]
• [Specific metric 2]
• [Specific metric 3]

## ⚠️ POTENTIAL RISKS & MITIGATION
• **Risk:** [Potential challenge] | **Mitigation:** [How to address]
• **Risk:** [Potential challenge] | **Mitigation:** [How to address]

Use specific data from the research. Be actionable and strategic. Focus on Amazon marketplace dynamics.
`)
	return sb.String()
}
