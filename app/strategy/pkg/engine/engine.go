package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/config"
	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/llm"
	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/logger"
	dm "github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/model"
	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/search"
	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/search/factory"
)

// Engine 研究编排引擎：分类 -> 搜索 -> 生成报告
type Engine struct {
	chatModel model.BaseChatModel
	searcher  search.Searcher
	limiter   *rate.Limiter
	language  string
	country   string
	fetch     func(ctx context.Context, url string) (string, error)
	now       func() time.Time
}

// NewEngine 使用已创建好的模型与搜索客户端组装引擎
func NewEngine(cfg *config.Config, chatModel model.BaseChatModel, searcher search.Searcher) *Engine {
	e := &Engine{
		chatModel: chatModel,
		searcher:  searcher,
		limiter:   newLimiter(cfg.Concurrency),
		language:  cfg.Search.Language,
		country:   cfg.Search.Country,
		now:       time.Now,
	}
	if e.language == "" {
		e.language = "en"
	}
	if e.country == "" {
		e.country = "us"
	}
	if cfg.Search.EnrichEmptySnippets {
		e.fetch = fetchAndCleanContent
	}
	return e
}

// NewEngineFromConfig 根据配置初始化 LLM 与搜索客户端，调用前应已解析密钥
func NewEngineFromConfig(ctx context.Context, cfg *config.Config) (*Engine, error) {
	chatModel, err := llm.NewChatModel(ctx, cfg.LLM)
	if err != nil {
		return nil, err
	}

	searcher, err := factory.NewSearcher(cfg)
	if err != nil {
		return nil, fmt.Errorf("搜索客户端初始化失败: %w", err)
	}

	return NewEngine(cfg, chatModel, searcher), nil
}

func newLimiter(c config.ConcurrencyConfig) *rate.Limiter {
	if c.RPM <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	burst := c.QPS
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(float64(c.RPM)/60.0), burst)
}

// RunOptions 运行选项
type RunOptions struct {
	Depth            dm.Depth
	ProgressCallback func(status string, progress int)
}

func (o RunOptions) progress(status string, progress int) {
	if o.ProgressCallback != nil {
		o.ProgressCallback(status, progress)
	}
}

// plannedSearches 研究深度对应的计划搜索次数，未知深度按 Deep Dive 处理
func plannedSearches(depth dm.Depth) int {
	switch depth {
	case dm.DepthQuick:
		return 2
	case dm.DepthComprehensive:
		return 4
	default:
		return 3
	}
}

// ResearchAndAnalyze 执行一次完整的研究流程。
// 搜索失败只降低报告质量；分类或生成报告时的 LLM 错误直接返回。
func (e *Engine) ResearchAndAnalyze(ctx context.Context, question string, opts RunOptions) (*dm.ResearchResult, error) {
	depth := opts.Depth
	if depth == "" {
		depth = dm.DepthDeepDive
	}
	runID := uuid.NewString()
	logger.Log.Infof("开始研究 [%s] depth=%s: %s", runID, depth, question)

	opts.progress("analyzing question", 15)
	analysis, err := e.Classify(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("classify question: %w", err)
	}
	logger.Log.Infof("问题分类 [%s]: %s, search terms=%v", runID, analysis.Category, analysis.SearchTerms)

	opts.progress("searching market data", 35)
	planned := plannedSearches(depth)
	terms := analysis.SearchTerms

	var results []dm.SearchResult
	failed := 0
	collect := func(out SearchOutcome, keep int) {
		if out.Failed() {
			failed++
			logger.Log.Warnf("搜索失败 [%s] query=%q: %v", runID, out.Query, out.Err)
			return
		}
		results = append(results, out.Take(keep)...)
	}

	primary := question
	if len(terms) > 0 {
		primary = terms[0]
	}
	collect(e.Search(ctx, primary, analysis.Category, 3), 3)

	if planned >= 3 && len(terms) > 1 {
		collect(e.Search(ctx, terms[1], dm.CategoryGeneral, 2), 2)
	}
	if planned >= 4 && len(terms) > 2 {
		collect(e.Search(ctx, terms[2], analysis.Category, 2), 2)
	}

	opts.progress("generating report", 65)
	report, err := e.Synthesize(ctx, question, results, analysis, analysis.Category)
	if err != nil {
		return nil, fmt.Errorf("generate report: %w", err)
	}

	sources := make([]string, 0, len(results))
	for _, r := range results {
		if r.Link != "" {
			sources = append(sources, r.Link)
		}
	}

	opts.progress("completed", 100)
	logger.Log.Infof("研究完成 [%s]: %d sources, %d failed searches", runID, len(sources), failed)

	return &dm.ResearchResult{
		RunID:          runID,
		Question:       question,
		Depth:          depth,
		Analysis:       analysis,
		SearchResults:  results,
		Report:         report,
		Sources:        sources,
		ReportType:     analysis.Category,
		TemplateUsed:   Template(analysis.Category).Title,
		FailedSearches: failed,
		GeneratedAt:    e.now(),
	}, nil
}

func (e *Engine) generate(ctx context.Context, prompt string, opts ...model.Option) (string, error) {
	if err := e.limiter.Wait(ctx); err != nil {
		return "", err
	}

	resp, err := e.chatModel.Generate(ctx, []*schema.Message{schema.UserMessage(prompt)}, opts...)
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}
