package domain

import (
	"time"

	"github.com/go-kratos/kratos/v2/errors"

	dm "github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/model"
)

// ErrArchiveDisabled 未配置数据库时归档相关操作返回该错误
var ErrArchiveDisabled = errors.ServiceUnavailable("ARCHIVE_DISABLED", "report archive is not configured")

// Report 归档的研究报告
type Report struct {
	ID             int64
	RunID          string
	Question       string
	Depth          string
	Category       string
	TemplateUsed   string
	Markdown       string
	Sources        []string
	Analysis       dm.Classification
	FailedSearches int
	CreatedAt      time.Time
}

// ReportSummary 报告列表项
type ReportSummary struct {
	ID           int64
	Question     string
	Depth        string
	Category     string
	TemplateUsed string
	SourceCount  int
	CreatedAt    time.Time
}

// Research 一次研究请求的输出，缓存中也保存该结构
type Research struct {
	ReportID int64              `json:"report_id"`
	Cached   bool               `json:"-"`
	Result   *dm.ResearchResult `json:"result"`
}

// NewReport 由研究结果生成归档对象
func NewReport(r *dm.ResearchResult) *Report {
	return &Report{
		RunID:          r.RunID,
		Question:       r.Question,
		Depth:          string(r.Depth),
		Category:       string(r.ReportType),
		TemplateUsed:   r.TemplateUsed,
		Markdown:       r.Report,
		Sources:        r.Sources,
		Analysis:       r.Analysis,
		FailedSearches: r.FailedSearches,
		CreatedAt:      r.GeneratedAt,
	}
}

// Result 将归档报告还原为研究结果，用于导出
func (r *Report) Result() *dm.ResearchResult {
	return &dm.ResearchResult{
		RunID:          r.RunID,
		Question:       r.Question,
		Depth:          dm.Depth(r.Depth),
		Analysis:       r.Analysis,
		Report:         r.Markdown,
		Sources:        r.Sources,
		ReportType:     dm.Category(r.Category),
		TemplateUsed:   r.TemplateUsed,
		FailedSearches: r.FailedSearches,
		GeneratedAt:    r.CreatedAt,
	}
}
