package data

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/lib/pq"

	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/internal/domain"
	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/internal/repo"
)

type reportRepo struct {
	data *Data
	log  *log.Helper
}

// NewReportRepo 创建基于 PostgreSQL 的报告仓库
func NewReportRepo(data *Data, logger log.Logger) repo.ReportRepo {
	return &reportRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *reportRepo) SaveReport(ctx context.Context, report *domain.Report) (int64, error) {
	if !r.data.ArchiveEnabled() {
		return 0, domain.ErrArchiveDisabled
	}

	analysis, err := json.Marshal(report.Analysis)
	if err != nil {
		return 0, err
	}

	var id int64
	err = r.data.db.QueryRowContext(ctx, `
		INSERT INTO research_reports
			(run_id, question, depth, category, template_used, report, sources, analysis, failed_searches, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		report.RunID, report.Question, report.Depth, report.Category, report.TemplateUsed,
		report.Markdown, pq.Array(report.Sources), analysis, report.FailedSearches, report.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *reportRepo) ListReports(ctx context.Context, page, pageSize int) ([]*domain.ReportSummary, int, error) {
	if !r.data.ArchiveEnabled() {
		return nil, 0, domain.ErrArchiveDisabled
	}
	offset := (page - 1) * pageSize

	rows, err := r.data.db.QueryContext(ctx, `
		SELECT id, question, depth, category, template_used, cardinality(sources), created_at
		FROM research_reports
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var summaries []*domain.ReportSummary
	for rows.Next() {
		s := &domain.ReportSummary{}
		if err := rows.Scan(&s.ID, &s.Question, &s.Depth, &s.Category, &s.TemplateUsed, &s.SourceCount, &s.CreatedAt); err != nil {
			return nil, 0, err
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.data.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM research_reports`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return summaries, total, nil
}

func (r *reportRepo) GetReport(ctx context.Context, id int64) (*domain.Report, error) {
	if !r.data.ArchiveEnabled() {
		return nil, domain.ErrArchiveDisabled
	}

	rp := &domain.Report{}
	var sources pq.StringArray
	var analysis []byte
	err := r.data.db.QueryRowContext(ctx, `
		SELECT id, run_id, question, depth, category, template_used, report, sources, analysis, failed_searches, created_at
		FROM research_reports
		WHERE id = $1`, id,
	).Scan(&rp.ID, &rp.RunID, &rp.Question, &rp.Depth, &rp.Category, &rp.TemplateUsed,
		&rp.Markdown, &sources, &analysis, &rp.FailedSearches, &rp.CreatedAt)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFound("REPORT_NOT_FOUND", "report not found")
		}
		return nil, err
	}

	rp.Sources = sources
	if len(analysis) > 0 {
		if err := json.Unmarshal(analysis, &rp.Analysis); err != nil {
			r.log.Warnf("report %d has malformed analysis: %v", id, err)
		}
	}
	return rp, nil
}
