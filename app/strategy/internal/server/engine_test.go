package server

import (
	"testing"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/internal/conf"
	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/engine"
)

func clearCredentialEnv(t *testing.T) {
	for _, name := range []string{"OPENAI_API_KEY", "GEMINI_API_KEY", "SERPAPI_API_KEY", "TAVILY_API_KEY"} {
		t.Setenv(name, "")
	}
}

func TestNewStrategyEngineNotReady(t *testing.T) {
	clearCredentialEnv(t)

	researcher, cleanup, err := NewStrategyEngine(&conf.Strategy{}, log.DefaultLogger)
	require.NoError(t, err)
	defer cleanup()

	_, err = researcher.ResearchAndAnalyze(t.Context(), "q", engine.RunOptions{})
	assert.ErrorContains(t, err, "OPENAI_API_KEY")
}

func TestNewStrategyEngineReady(t *testing.T) {
	clearCredentialEnv(t)

	researcher, cleanup, err := NewStrategyEngine(&conf.Strategy{
		Llm:    &conf.LLM{ApiKey: "sk-test", Model: "gpt-4"},
		Search: &conf.Search{Serpapi: &conf.SerpAPI{ApiKey: "serp-test"}},
	}, log.DefaultLogger)
	require.NoError(t, err)
	defer cleanup()

	_, ok := researcher.(*engine.Engine)
	assert.True(t, ok)
}

func TestToConfig(t *testing.T) {
	cfg := toConfig(&conf.Strategy{
		SecretsFile: "secrets.yaml",
		Llm:         &conf.LLM{Provider: "gemini", Model: "gemini-2.0-flash"},
		Search: &conf.Search{
			Provider: "searxng",
			Language: "de",
			Country:  "de",
			Searxng:  &conf.SearXNG{BaseUrl: "http://searx.local", Timeout: 20},
		},
		Log:         &conf.Log{Level: "debug"},
		Concurrency: &conf.Concurrency{Qps: 2, Rpm: 30},
	})

	assert.Equal(t, "secrets.yaml", cfg.SecretsFile)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "searxng", cfg.Search.Provider)
	assert.Equal(t, "de", cfg.Search.Language)
	assert.Equal(t, "http://searx.local", cfg.Search.SearXNG.BaseURL)
	assert.Equal(t, 20, cfg.Search.SearXNG.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 30, cfg.Concurrency.RPM)

	assert.NotNil(t, toConfig(nil))
}
