package usecase

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/internal/domain"
	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/internal/repo"
	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/engine"
	dm "github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/model"
)

// TroubleshootingTips 研究失败时随错误返回给调用方
var TroubleshootingTips = []string{
	"Check your internet connection",
	"Verify API keys are configured correctly",
	"Try a simpler question to test the system",
	"Contact support if the issue persists",
}

// Researcher 研究引擎
type Researcher interface {
	ResearchAndAnalyze(ctx context.Context, question string, opts engine.RunOptions) (*dm.ResearchResult, error)
}

type notReady struct {
	err error
}

// NotReady 返回一个始终报错的 Researcher，用于凭证缺失等启动期配置错误
func NotReady(err error) Researcher {
	return notReady{err: err}
}

func (n notReady) ResearchAndAnalyze(context.Context, string, engine.RunOptions) (*dm.ResearchResult, error) {
	return nil, n.err
}

// ResearchUseCase 研究请求业务逻辑
type ResearchUseCase struct {
	researcher Researcher
	reports    repo.ReportRepo
	cache      repo.ResultCache
	log        *log.Helper
}

// NewResearchUseCase 创建研究业务逻辑实例
func NewResearchUseCase(researcher Researcher, reports repo.ReportRepo, cache repo.ResultCache, logger log.Logger) *ResearchUseCase {
	return &ResearchUseCase{
		researcher: researcher,
		reports:    reports,
		cache:      cache,
		log:        log.NewHelper(logger),
	}
}

// Ready 引擎不可用时返回原因
func (uc *ResearchUseCase) Ready() error {
	if nr, ok := uc.researcher.(notReady); ok {
		return nr.err
	}
	return nil
}

// ParseDepth 空值视为 Deep Dive
func ParseDepth(depth string) (dm.Depth, error) {
	d := dm.Depth(strings.TrimSpace(depth))
	if d == "" {
		return dm.DepthDeepDive, nil
	}
	if !d.Valid() {
		return "", errors.BadRequest("INVALID_DEPTH", "depth must be one of Quick Analysis, Deep Dive, Comprehensive Report")
	}
	return d, nil
}

// Research 校验输入并执行研究。归档与缓存失败只记录日志。
func (uc *ResearchUseCase) Research(ctx context.Context, question, depth string) (*domain.Research, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, errors.BadRequest("EMPTY_QUESTION", "please enter a question")
	}
	d, err := ParseDepth(depth)
	if err != nil {
		return nil, err
	}
	if err := uc.Ready(); err != nil {
		return nil, errors.ServiceUnavailable("AGENT_NOT_READY", err.Error())
	}

	if cached, ok, err := uc.cache.Get(ctx, question, d); err != nil {
		uc.log.Warnf("cache lookup failed: %v", err)
	} else if ok {
		uc.log.Infof("cache hit for %q (%s)", question, d)
		return cached, nil
	}

	result, err := uc.researcher.ResearchAndAnalyze(ctx, question, engine.RunOptions{
		Depth: d,
		ProgressCallback: func(status string, progress int) {
			uc.log.Debugf("research progress %d%%: %s", progress, status)
		},
	})
	if err != nil {
		uc.log.Errorf("research failed: %v", err)
		return nil, errors.InternalServer("REPORT_FAILED", err.Error()).
			WithCause(err).
			WithMetadata(map[string]string{"tips": strings.Join(TroubleshootingTips, "; ")})
	}

	research := &domain.Research{Result: result}
	id, err := uc.reports.SaveReport(ctx, domain.NewReport(result))
	switch {
	case err == nil:
		research.ReportID = id
	case stderrors.Is(err, domain.ErrArchiveDisabled):
	default:
		uc.log.Warnf("archive report %s failed: %v", result.RunID, err)
	}

	// 有搜索失败的结果不入缓存，下次重新研究
	if result.FailedSearches > 0 {
		uc.log.Infof("skip caching %s: %d searches failed", result.RunID, result.FailedSearches)
		return research, nil
	}
	if err := uc.cache.Set(ctx, question, d, research); err != nil {
		uc.log.Warnf("cache store failed: %v", err)
	}
	return research, nil
}
