package factory

import (
	"fmt"

	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/config"
	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/search"
	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/searxng"
	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/serpapi"
	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/tavily"
)

// NewSearcher 根据配置创建搜索实例，调用前应已执行 config.ResolveCredentials
func NewSearcher(cfg *config.Config) (search.Searcher, error) {
	switch provider := cfg.SearchProvider(); provider {
	case config.ProviderSerpAPI:
		if cfg.Search.SerpAPI.APIKey == "" {
			return nil, fmt.Errorf("serpapi api key is missing")
		}
		return serpapi.NewClient(cfg.Search.SerpAPI.APIKey, cfg.Search.SerpAPI.BaseURL), nil

	case config.ProviderTavily:
		if cfg.Search.Tavily.APIKey == "" {
			return nil, fmt.Errorf("tavily api key is missing")
		}
		return tavily.NewClient(cfg.Search.Tavily.APIKey), nil

	case config.ProviderSearXNG:
		baseURL := cfg.Search.SearXNG.BaseURL
		if baseURL == "" {
			return nil, fmt.Errorf("searxng base url is missing")
		}
		return searxng.NewClient(baseURL, cfg.Search.SearXNG.Timeout), nil

	default:
		return nil, fmt.Errorf("unknown search provider: %s", provider)
	}
}
