package server

import (
	"context"
	"os"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/internal/conf"
	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/internal/usecase"
	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/config"
	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/engine"
	slogger "github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/logger"
)

// NewStrategyEngine 初始化研究引擎。
// 凭证缺失或客户端初始化失败不会阻止服务启动，研究接口返回 503。
func NewStrategyEngine(c *conf.Strategy, logger log.Logger) (usecase.Researcher, func(), error) {
	helper := log.NewHelper(logger)
	cfg := toConfig(c)

	if err := slogger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		helper.Errorf("Failed to init strategy logger: %v", err)
		_ = slogger.InitLogger("info", "") // 降级处理
	}

	if err := config.ResolveCredentials(cfg, os.LookupEnv); err != nil {
		helper.Errorf("Configuration error, research disabled: %v", err)
		return usecase.NotReady(err), func() {}, nil
	}

	eng, err := engine.NewEngineFromConfig(context.Background(), cfg)
	if err != nil {
		helper.Errorf("Failed to init engine, research disabled: %v", err)
		return usecase.NotReady(err), func() {}, nil
	}

	cleanup := func() {
		helper.Info("Cleaning up strategy engine")
	}
	return eng, cleanup, nil
}

// toConfig 将 internal/conf.Strategy 转换为 pkg/config.Config
func toConfig(c *conf.Strategy) *config.Config {
	cfg := &config.Config{}
	if c == nil {
		return cfg
	}
	cfg.SecretsFile = c.SecretsFile
	if c.Llm != nil {
		cfg.LLM = config.LLMConfig{
			Provider: c.Llm.Provider,
			BaseURL:  c.Llm.BaseUrl,
			APIKey:   c.Llm.ApiKey,
			Model:    c.Llm.Model,
		}
	}
	if s := c.Search; s != nil {
		cfg.Search.Provider = s.Provider
		cfg.Search.Language = s.Language
		cfg.Search.Country = s.Country
		cfg.Search.EnrichEmptySnippets = s.EnrichEmptySnippets
		if s.Serpapi != nil {
			cfg.Search.SerpAPI = config.SerpAPIConfig{APIKey: s.Serpapi.ApiKey, BaseURL: s.Serpapi.BaseUrl}
		}
		if s.Tavily != nil {
			cfg.Search.Tavily = config.TavilyConfig{APIKey: s.Tavily.ApiKey}
		}
		if s.Searxng != nil {
			cfg.Search.SearXNG = config.SearXNGConfig{BaseURL: s.Searxng.BaseUrl, Timeout: int(s.Searxng.Timeout)}
		}
	}
	if c.Log != nil {
		cfg.Log = config.LogConfig{Level: c.Log.Level, File: c.Log.File}
	}
	if c.Concurrency != nil {
		cfg.Concurrency = config.ConcurrencyConfig{
			QPS: int(c.Concurrency.Qps),
			RPM: int(c.Concurrency.Rpm),
		}
	}
	return cfg
}
