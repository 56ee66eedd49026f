package model

import "time"

// Category 问题分类标签
type Category string

const (
	CategoryCompetition Category = "competition"
	CategoryAdvertising Category = "advertising"
	CategoryTrends      Category = "trends"
	CategoryPricing     Category = "pricing"
	CategoryReviews     Category = "reviews"
	CategoryGeneral     Category = "general"
)

// Categories 全部合法分类，顺序与分类提示词一致
var Categories = []Category{
	CategoryCompetition,
	CategoryAdvertising,
	CategoryTrends,
	CategoryPricing,
	CategoryReviews,
	CategoryGeneral,
}

// Valid 判断分类是否属于固定的六个标签
func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// Depth 研究深度
type Depth string

const (
	DepthQuick         Depth = "Quick Analysis"
	DepthDeepDive      Depth = "Deep Dive"
	DepthComprehensive Depth = "Comprehensive Report"
)

// Depths 可选的研究深度
var Depths = []Depth{DepthQuick, DepthDeepDive, DepthComprehensive}

// Valid 判断深度是否为已知标签
func (d Depth) Valid() bool {
	switch d {
	case DepthQuick, DepthDeepDive, DepthComprehensive:
		return true
	}
	return false
}

// Classification LLM 对问题的结构化分类
type Classification struct {
	Category     Category `json:"category"`
	SearchTerms  []string `json:"search_terms"`
	FocusAreas   []string `json:"focus_areas"`
	AnalysisType string   `json:"analysis_type"`
	KeyQuestions []string `json:"key_questions"`
}

// SearchResult 归一化后的搜索结果
type SearchResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
	Source  string `json:"source"`
}

// ReportTemplate 报告模板：标题 + 四个章节
type ReportTemplate struct {
	Title    string
	Sections [4]string
}

// ResearchResult 一次研究的完整结果
type ResearchResult struct {
	RunID          string         `json:"run_id"`
	Question       string         `json:"question"`
	Depth          Depth          `json:"depth"`
	Analysis       Classification `json:"analysis"`
	SearchResults  []SearchResult `json:"search_results"`
	Report         string         `json:"report"`
	Sources        []string       `json:"sources"`
	ReportType     Category       `json:"report_type"`
	TemplateUsed   string         `json:"template_used"`
	FailedSearches int            `json:"failed_searches"`
	GeneratedAt    time.Time      `json:"generated_at"`
}
