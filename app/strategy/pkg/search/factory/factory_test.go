package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/config"
	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/searxng"
	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/serpapi"
	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/tavily"
)

func TestNewSearcher(t *testing.T) {
	cfg := &config.Config{}
	cfg.Search.SerpAPI.APIKey = "serp"
	s, err := NewSearcher(cfg)
	require.NoError(t, err)
	assert.IsType(t, &serpapi.Client{}, s)

	cfg = &config.Config{}
	cfg.Search.Provider = "tavily"
	cfg.Search.Tavily.APIKey = "tvly"
	s, err = NewSearcher(cfg)
	require.NoError(t, err)
	assert.IsType(t, &tavily.Client{}, s)

	cfg = &config.Config{}
	cfg.Search.Provider = "searxng"
	cfg.Search.SearXNG.BaseURL = "http://localhost:8888"
	s, err = NewSearcher(cfg)
	require.NoError(t, err)
	assert.IsType(t, &searxng.Client{}, s)
}

func TestNewSearcherErrors(t *testing.T) {
	_, err := NewSearcher(&config.Config{})
	assert.ErrorContains(t, err, "serpapi api key is missing")

	cfg := &config.Config{}
	cfg.Search.Provider = "bing"
	_, err = NewSearcher(cfg)
	assert.ErrorContains(t, err, "unknown search provider: bing")
}
