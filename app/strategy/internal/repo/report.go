package repo

import (
	"context"

	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/internal/domain"
	dm "github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/model"
)

// ReportRepo 报告归档仓库接口
type ReportRepo interface {
	// SaveReport 保存报告，返回归档ID
	SaveReport(ctx context.Context, report *domain.Report) (int64, error)
	// ListReports 分页获取报告摘要，按创建时间倒序
	ListReports(ctx context.Context, page, pageSize int) ([]*domain.ReportSummary, int, error)
	// GetReport 根据ID获取报告详情
	GetReport(ctx context.Context, id int64) (*domain.Report, error)
}

// ResultCache 研究结果缓存，以 深度+问题 为键
type ResultCache interface {
	Get(ctx context.Context, question string, depth dm.Depth) (*domain.Research, bool, error)
	Set(ctx context.Context, question string, depth dm.Depth, research *domain.Research) error
}
