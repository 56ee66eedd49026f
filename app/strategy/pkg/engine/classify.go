package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"

	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/logger"
	dm "github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/model"
)

const classifyTemperature float32 = 0.1

const classifyPromptTpl = `Analyze this Amazon strategy question and choose the SINGLE best category.

Question: %s

Choose ONE category:
- competition (for competitor analysis, market leaders)
- advertising (for Amazon ads, PPC strategies)
- trends (for market trends, consumer behavior)
- pricing (for pricing strategies, price analysis)
- reviews (for customer feedback, reviews)
- general (for broad strategy questions)

Return only valid JSON with ONE category chosen:
{
    "category": "competition",
    "search_terms": ["supplement brands", "Amazon competitors", "market leaders"],
    "focus_areas": ["competitive analysis", "market positioning", "differentiation"],
    "analysis_type": "competitive landscape analysis",
    "key_questions": ["Who are the top competitors?", "What are their strengths?", "Where are the gaps?"]
}`

// Classify 调用 LLM 对问题分类。LLM 调用失败直接返回错误；
// 返回内容无法解析或分类不合法时整体回退为 general。
func (e *Engine) Classify(ctx context.Context, question string) (dm.Classification, error) {
	content, err := e.generate(ctx, fmt.Sprintf(classifyPromptTpl, question),
		model.WithTemperature(classifyTemperature))
	if err != nil {
		return dm.Classification{}, err
	}

	analysis, err := parseClassification(content)
	if err != nil {
		logger.Log.Warnf("分类结果无法使用，回退为 general: %v", err)
		return fallbackClassification(question), nil
	}
	return analysis, nil
}

func parseClassification(content string) (dm.Classification, error) {
	var analysis dm.Classification
	if err := json.Unmarshal([]byte(cleanJSON(content)), &analysis); err != nil {
		return dm.Classification{}, fmt.Errorf("json unmarshal: %w", err)
	}
	if !analysis.Category.Valid() {
		return dm.Classification{}, fmt.Errorf("unknown category %q", analysis.Category)
	}
	return analysis, nil
}

func fallbackClassification(question string) dm.Classification {
	return dm.Classification{
		Category:     dm.CategoryGeneral,
		SearchTerms:  []string{question},
		FocusAreas:   []string{"market analysis", "opportunities", "strategy"},
		AnalysisType: "General Amazon strategy analysis",
		KeyQuestions: []string{question},
	}
}

// cleanJSON 去掉模型常见的 markdown 代码块包裹
func cleanJSON(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
