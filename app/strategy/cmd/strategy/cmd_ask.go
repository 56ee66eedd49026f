package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	klog "github.com/go-kratos/kratos/v2/log"
	"github.com/spf13/cobra"

	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/internal/conf"
	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/internal/data"
	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/internal/usecase"
	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/config"
	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/engine"
	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/export"
	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/logger"
	dm "github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/model"
)

const shownSources = 5

// askOptions ask 命令的参数
type askOptions struct {
	*rootOptions
	depth string
	save  string
	raw   bool
}

// newResearcher 测试中可替换
var newResearcher = func(ctx context.Context, cfg *config.Config) (usecase.Researcher, error) {
	return engine.NewEngineFromConfig(ctx, cfg)
}

// newAskCmd 对一个问题执行完整研究
func newAskCmd(root *rootOptions) *cobra.Command {
	opts := &askOptions{rootOptions: root}
	cmd := &cobra.Command{
		Use:   "ask QUESTION",
		Short: "Research a question and print the strategy report",
		Long: `Research an Amazon strategy question and print the generated report.

Depth controls how many searches are run:
  Quick Analysis       - 1 search
  Deep Dive            - up to 2 searches (default)
  Comprehensive Report - up to 3 searches`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd, args, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.depth, "depth", "d", "Deep Dive", "analysis depth")
	cmd.Flags().StringVar(&opts.save, "save", "", "directory to write the markdown export to")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "print markdown without terminal rendering")
	return cmd
}

func runAsk(cmd *cobra.Command, args []string, opts *askOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()
	question := strings.TrimSpace(strings.Join(args, " "))
	if question == "" {
		return fmt.Errorf("please enter a question to research")
	}
	if _, err := usecase.ParseDepth(opts.depth); err != nil {
		return fmt.Errorf("invalid depth %q: use Quick Analysis, Deep Dive or Comprehensive Report", opts.depth)
	}

	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	if err := config.ResolveCredentials(cfg, os.LookupEnv); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	researcher, err := newResearcher(ctx, cfg)
	if err != nil {
		return err
	}

	kl := klog.NewFilter(klog.NewStdLogger(cmd.ErrOrStderr()), klog.FilterLevel(klog.LevelWarn))
	d, cleanup, err := data.NewData(dataConf(cfg), kl)
	if err != nil {
		return err
	}
	defer cleanup()

	uc := usecase.NewResearchUseCase(
		progressPrinter{inner: researcher, out: out},
		data.NewReportRepo(d, kl),
		data.NewResultCache(d, kl),
		kl,
	)

	fmt.Fprintf(out, "🔍 Researching: %s\n", question)
	research, err := uc.Research(ctx, question, opts.depth)
	if err != nil {
		return fmt.Errorf("error generating report: %w", err)
	}
	result := research.Result

	fmt.Fprintln(out, "✅ Analysis complete!")
	fmt.Fprintln(out)
	if err := printReport(out, result.Report, opts.raw); err != nil {
		return err
	}

	fmt.Fprintf(out, "📋 Report type: %s\n", result.TemplateUsed)
	fmt.Fprintf(out, "🔗 Sources found: %d\n", len(result.Sources))
	fmt.Fprintf(out, "🎯 Depth: %s\n", result.Depth)
	if research.Cached {
		fmt.Fprintln(out, "♻️  Served from cache")
	}
	if research.ReportID > 0 {
		fmt.Fprintf(out, "🗄️  Archived as report #%d\n", research.ReportID)
	}
	if len(result.Sources) > 0 {
		fmt.Fprintln(out, "\n📚 Research Sources")
		for i, src := range result.Sources {
			if i >= shownSources {
				break
			}
			fmt.Fprintf(out, "%d. %s\n", i+1, src)
		}
	}

	if opts.save != "" {
		if err := os.MkdirAll(opts.save, 0755); err != nil {
			return err
		}
		path := filepath.Join(opts.save, export.Filename(result.Question))
		if err := os.WriteFile(path, []byte(export.Markdown(result)), 0644); err != nil {
			return fmt.Errorf("save report: %w", err)
		}
		fmt.Fprintf(out, "\n📄 Saved report to %s\n", path)
	}
	return nil
}

func printReport(out io.Writer, report string, raw bool) error {
	if raw {
		_, err := fmt.Fprintln(out, report)
		return err
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return err
	}
	rendered, err := renderer.Render(report)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, rendered)
	return err
}

// dataConf 将 CLI 的数据库与缓存配置转换为数据层配置，未配置的部分保持为空
func dataConf(cfg *config.Config) *conf.Data {
	c := &conf.Data{}
	if cfg.DB.Host != "" {
		c.Database = &conf.Database{Driver: "postgres", Source: cfg.DB.DSN()}
	}
	if cfg.Cache.Addr != "" {
		c.Redis = &conf.Redis{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			Db:       int32(cfg.Cache.DB),
		}
		if cfg.Cache.TTL > 0 {
			c.Redis.Ttl = fmt.Sprintf("%ds", cfg.Cache.TTL)
		}
	}
	return c
}

// progressPrinter 在终端输出研究进度
type progressPrinter struct {
	inner usecase.Researcher
	out   io.Writer
}

func (p progressPrinter) ResearchAndAnalyze(ctx context.Context, question string, opts engine.RunOptions) (*dm.ResearchResult, error) {
	next := opts.ProgressCallback
	opts.ProgressCallback = func(status string, progress int) {
		fmt.Fprintf(p.out, "[%3d%%] %s\n", progress, status)
		if next != nil {
			next(status, progress)
		}
	}
	return p.inner.ResearchAndAnalyze(ctx, question, opts)
}
