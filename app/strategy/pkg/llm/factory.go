package llm

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"

	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/config"
	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/llm/gemini"
)

// DefaultOpenAIModel 未配置模型时使用
const DefaultOpenAIModel = "gpt-4"

// NewChatModel 根据配置创建对话模型
func NewChatModel(ctx context.Context, cfg config.LLMConfig) (model.BaseChatModel, error) {
	provider := (&config.Config{LLM: cfg}).LLMProvider()

	switch provider {
	case config.ProviderOpenAI:
		modelName := cfg.Model
		if modelName == "" {
			modelName = DefaultOpenAIModel
		}
		cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
			BaseURL: cfg.BaseURL,
			APIKey:  cfg.APIKey,
			Model:   modelName,
		})
		if err != nil {
			return nil, fmt.Errorf("LLM 初始化失败: %w", err)
		}
		return cm, nil

	case config.ProviderGemini:
		cm, err := gemini.NewChatModel(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, fmt.Errorf("LLM 初始化失败: %w", err)
		}
		return cm, nil

	default:
		return nil, fmt.Errorf("unknown llm provider: %s", provider)
	}
}
