package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMissingCredential 启动时缺少必需的 API 密钥
var ErrMissingCredential = errors.New("missing credential")

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	ProviderSerpAPI = "serpapi"
	ProviderTavily  = "tavily"
	ProviderSearXNG = "searxng"
)

// LLMProvider 返回生效的 LLM 提供方，默认 openai
func (c *Config) LLMProvider() string {
	if p := strings.ToLower(strings.TrimSpace(c.LLM.Provider)); p != "" {
		return p
	}
	return ProviderOpenAI
}

// SearchProvider 返回生效的搜索提供方，默认 serpapi
func (c *Config) SearchProvider() string {
	if p := strings.ToLower(strings.TrimSpace(c.Search.Provider)); p != "" {
		return p
	}
	return ProviderSerpAPI
}

// LLMKeyName 当前 LLM 提供方对应的密钥名
func (c *Config) LLMKeyName() string {
	if c.LLMProvider() == ProviderGemini {
		return "GEMINI_API_KEY"
	}
	return "OPENAI_API_KEY"
}

// SearchKeyName 当前搜索提供方对应的密钥名，searxng 不需要密钥时返回空串
func (c *Config) SearchKeyName() string {
	switch c.SearchProvider() {
	case ProviderTavily:
		return "TAVILY_API_KEY"
	case ProviderSearXNG:
		return ""
	default:
		return "SERPAPI_API_KEY"
	}
}

// LoadSecrets 读取扁平的 YAML 密钥文件 (KEY: value)
func LoadSecrets(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	secrets := map[string]string{}
	if err := yaml.Unmarshal(data, &secrets); err != nil {
		return nil, fmt.Errorf("parse secrets file: %w", err)
	}
	return secrets, nil
}

// ResolveCredentials 按 环境变量 -> 密钥文件 -> 配置文件 的顺序解析密钥并回填到 cfg。
// lookupEnv 为 nil 时使用 os.LookupEnv。
func ResolveCredentials(cfg *Config, lookupEnv func(string) (string, bool)) error {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}

	var secrets map[string]string
	if cfg.SecretsFile != "" {
		s, err := LoadSecrets(cfg.SecretsFile)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		secrets = s
	}

	resolve := func(name, inline string) (string, error) {
		if v, ok := lookupEnv(name); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v), nil
		}
		if v := strings.TrimSpace(secrets[name]); v != "" {
			return v, nil
		}
		if v := strings.TrimSpace(inline); v != "" {
			return v, nil
		}
		return "", fmt.Errorf("%w: %s", ErrMissingCredential, name)
	}

	llmKey, err := resolve(cfg.LLMKeyName(), cfg.LLM.APIKey)
	if err != nil {
		return err
	}
	cfg.LLM.APIKey = llmKey

	switch cfg.SearchProvider() {
	case ProviderTavily:
		key, err := resolve(cfg.SearchKeyName(), cfg.Search.Tavily.APIKey)
		if err != nil {
			return err
		}
		cfg.Search.Tavily.APIKey = key
	case ProviderSearXNG:
		if cfg.Search.SearXNG.BaseURL == "" {
			return fmt.Errorf("%w: search.searxng.base_url", ErrMissingCredential)
		}
	default:
		key, err := resolve(cfg.SearchKeyName(), cfg.Search.SerpAPI.APIKey)
		if err != nil {
			return err
		}
		cfg.Search.SerpAPI.APIKey = key
	}

	return nil
}
