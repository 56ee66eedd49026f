package service

import (
	"context"
	"mime"
	"strconv"
	"time"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/internal/domain"
	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/internal/usecase"
	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/export"
)

const timeLayout = "2006-01-02 15:04:05"

// ResearchRequest 研究请求
type ResearchRequest struct {
	Question string `json:"question"`
	Depth    string `json:"depth"`
}

// ResearchReply 研究结果，包含导出所需的文件名与内容
type ResearchReply struct {
	RunID          string   `json:"run_id"`
	ReportID       int64    `json:"report_id"`
	Question       string   `json:"question"`
	Depth          string   `json:"depth"`
	Category       string   `json:"category"`
	TemplateUsed   string   `json:"template_used"`
	Report         string   `json:"report"`
	Sources        []string `json:"sources"`
	SourceCount    int      `json:"source_count"`
	FailedSearches int      `json:"failed_searches"`
	Cached         bool     `json:"cached"`
	GeneratedAt    string   `json:"generated_at"`
	ExportFilename string   `json:"export_filename"`
	ExportMarkdown string   `json:"export_markdown"`
}

type ReportSummary struct {
	ID           int64  `json:"id"`
	Question     string `json:"question"`
	Depth        string `json:"depth"`
	Category     string `json:"category"`
	TemplateUsed string `json:"template_used"`
	SourceCount  int    `json:"source_count"`
	CreatedAt    string `json:"created_at"`
}

type ListReportsReply struct {
	Reports []*ReportSummary `json:"reports"`
	Total   int              `json:"total"`
}

type ReportReply struct {
	ID             int64    `json:"id"`
	RunID          string   `json:"run_id"`
	Question       string   `json:"question"`
	Depth          string   `json:"depth"`
	Category       string   `json:"category"`
	TemplateUsed   string   `json:"template_used"`
	Report         string   `json:"report"`
	Sources        []string `json:"sources"`
	FailedSearches int      `json:"failed_searches"`
	CreatedAt      string   `json:"created_at"`
	ExportFilename string   `json:"export_filename"`
}

type HealthReply struct {
	Status     string `json:"status"`
	AgentReady bool   `json:"agent_ready"`
	Reason     string `json:"reason,omitempty"`
}

// StrategyService 策略助手 HTTP 服务
type StrategyService struct {
	ucResearch *usecase.ResearchUseCase
	ucHistory  *usecase.HistoryUseCase
	log        *log.Helper
}

func NewStrategyService(ucResearch *usecase.ResearchUseCase, ucHistory *usecase.HistoryUseCase, logger log.Logger) *StrategyService {
	return &StrategyService{
		ucResearch: ucResearch,
		ucHistory:  ucHistory,
		log:        log.NewHelper(logger),
	}
}

// RegisterHTTPServer 注册 API 路由
func RegisterHTTPServer(srv *http.Server, s *StrategyService) {
	r := srv.Route("/")
	r.POST("/v1/research", s.Research)
	r.GET("/v1/reports", s.ListReports)
	r.GET("/v1/reports/{id}", s.GetReport)
	r.GET("/v1/reports/{id}/download", s.DownloadReport)
	r.GET("/healthz", s.Health)
}

func (s *StrategyService) Research(ctx http.Context) error {
	var in ResearchRequest
	if err := ctx.Bind(&in); err != nil {
		return errors.BadRequest("INVALID_BODY", err.Error())
	}
	h := ctx.Middleware(func(c context.Context, req interface{}) (interface{}, error) {
		return s.research(c, req.(*ResearchRequest))
	})
	out, err := h(ctx, &in)
	if err != nil {
		return err
	}
	return ctx.Result(200, out)
}

func (s *StrategyService) research(ctx context.Context, req *ResearchRequest) (*ResearchReply, error) {
	research, err := s.ucResearch.Research(ctx, req.Question, req.Depth)
	if err != nil {
		return nil, err
	}
	r := research.Result
	return &ResearchReply{
		RunID:          r.RunID,
		ReportID:       research.ReportID,
		Question:       r.Question,
		Depth:          string(r.Depth),
		Category:       string(r.ReportType),
		TemplateUsed:   r.TemplateUsed,
		Report:         r.Report,
		Sources:        r.Sources,
		SourceCount:    len(r.Sources),
		FailedSearches: r.FailedSearches,
		Cached:         research.Cached,
		GeneratedAt:    formatTime(r.GeneratedAt),
		ExportFilename: export.Filename(r.Question),
		ExportMarkdown: export.Markdown(r),
	}, nil
}

func (s *StrategyService) ListReports(ctx http.Context) error {
	q := ctx.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("page_size"))

	reports, total, err := s.ucHistory.List(ctx, page, pageSize)
	if err != nil {
		return err
	}

	list := make([]*ReportSummary, 0, len(reports))
	for _, r := range reports {
		list = append(list, &ReportSummary{
			ID:           r.ID,
			Question:     r.Question,
			Depth:        r.Depth,
			Category:     r.Category,
			TemplateUsed: r.TemplateUsed,
			SourceCount:  r.SourceCount,
			CreatedAt:    formatTime(r.CreatedAt),
		})
	}
	return ctx.Result(200, &ListReportsReply{Reports: list, Total: total})
}

func (s *StrategyService) GetReport(ctx http.Context) error {
	id, err := reportID(ctx)
	if err != nil {
		return err
	}
	r, err := s.ucHistory.Get(ctx, id)
	if err != nil {
		return err
	}
	return ctx.Result(200, toReportReply(r))
}

func (s *StrategyService) DownloadReport(ctx http.Context) error {
	id, err := reportID(ctx)
	if err != nil {
		return err
	}
	name, content, err := s.ucHistory.Export(ctx, id)
	if err != nil {
		return err
	}
	ctx.Response().Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	return ctx.Blob(200, "text/markdown; charset=utf-8", []byte(content))
}

func (s *StrategyService) Health(ctx http.Context) error {
	reply := &HealthReply{Status: "ok", AgentReady: true}
	if err := s.ucResearch.Ready(); err != nil {
		reply.Status = "degraded"
		reply.AgentReady = false
		reply.Reason = err.Error()
	}
	return ctx.Result(200, reply)
}

func reportID(ctx http.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Vars().Get("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.BadRequest("INVALID_ID", "report id must be a positive integer")
	}
	return id, nil
}

func toReportReply(r *domain.Report) *ReportReply {
	return &ReportReply{
		ID:             r.ID,
		RunID:          r.RunID,
		Question:       r.Question,
		Depth:          r.Depth,
		Category:       r.Category,
		TemplateUsed:   r.TemplateUsed,
		Report:         r.Markdown,
		Sources:        r.Sources,
		FailedSearches: r.FailedSearches,
		CreatedAt:      formatTime(r.CreatedAt),
		ExportFilename: export.Filename(r.Question),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(timeLayout)
}
