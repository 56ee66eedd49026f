package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	dm "github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/model"
)

func TestFilename(t *testing.T) {
	cases := []struct {
		question string
		want     string
	}{
		{
			"What is the best ad strategy for skincare brands in 2024 on Amazon marketplaces today?",
			"amazon_strategy_report_What_is_the_best_ad_strategy_f.md",
		},
		{"short one", "amazon_strategy_report_short_one.md"},
		{"", "amazon_strategy_report_.md"},
		{"亚马逊 护肤品 广告策略", "amazon_strategy_report_亚马逊_护肤品_广告策略.md"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Filename(tc.question))
	}
}

func TestMarkdown(t *testing.T) {
	result := &dm.ResearchResult{
		Report: "# Report",
		Sources: []string{
			"https://a.example", "https://b.example", "https://c.example",
			"https://d.example", "https://e.example", "https://f.example",
		},
	}
	got := Markdown(result)

	assert.True(t, strings.HasPrefix(got, "# Report\n\n## Research Sources\n1. https://a.example\n"))
	assert.Contains(t, got, "5. https://e.example\n")
	assert.NotContains(t, got, "f.example")
}

func TestMarkdownWithoutSources(t *testing.T) {
	assert.Equal(t, "body", Markdown(&dm.ResearchResult{Report: "body"}))
	assert.Equal(t, "body", Markdown(&dm.ResearchResult{Report: "body", Sources: []string{}}))
}
