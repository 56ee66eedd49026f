package usecase

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/internal/domain"
	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/internal/repo"
	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/export"
)

// HistoryUseCase 归档报告查询
type HistoryUseCase struct {
	repo repo.ReportRepo
	log  *log.Helper
}

// NewHistoryUseCase 创建归档查询实例
func NewHistoryUseCase(repo repo.ReportRepo, logger log.Logger) *HistoryUseCase {
	return &HistoryUseCase{repo: repo, log: log.NewHelper(logger)}
}

// List 分页列出报告摘要
func (uc *HistoryUseCase) List(ctx context.Context, page, pageSize int) ([]*domain.ReportSummary, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return uc.repo.ListReports(ctx, page, pageSize)
}

// Get 根据ID获取报告
func (uc *HistoryUseCase) Get(ctx context.Context, id int64) (*domain.Report, error) {
	return uc.repo.GetReport(ctx, id)
}

// Export 返回报告的导出文件名和 markdown 内容
func (uc *HistoryUseCase) Export(ctx context.Context, id int64) (string, string, error) {
	r, err := uc.repo.GetReport(ctx, id)
	if err != nil {
		return "", "", err
	}
	return export.Filename(r.Question), export.Markdown(r.Result()), nil
}
