package export

import (
	"fmt"
	"strings"

	dm "github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/model"
)

const (
	// 导出文件中附带的来源数量上限
	maxSources = 5
	// 文件名中保留的问题字符数
	filenameRunes  = 30
	filenamePrefix = "amazon_strategy_report_"
)

// Markdown 报告正文，有来源时追加 Research Sources 小节
func Markdown(result *dm.ResearchResult) string {
	if len(result.Sources) == 0 {
		return result.Report
	}

	var sb strings.Builder
	sb.WriteString(result.Report)
	sb.WriteString("\n\n## Research Sources\n")
	for i, src := range result.Sources {
		if i >= maxSources {
			break
		}
		fmt.Fprintf(&sb, "%d. %s\n", i+1, src)
	}
	return sb.String()
}

// Filename 取问题前 30 个字符，空格替换为下划线
func Filename(question string) string {
	r := []rune(question)
	if len(r) > filenameRunes {
		r = r[:filenameRunes]
	}
	return filenamePrefix + strings.ReplaceAll(string(r), " ", "_") + ".md"
}
