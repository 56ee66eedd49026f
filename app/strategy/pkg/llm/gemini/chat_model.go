package gemini

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// ChatModel 基于 Google GenAI 的 eino ChatModel 适配，仅支持非流式调用
type ChatModel struct {
	client *genai.Client
	model  string
}

var _ model.BaseChatModel = (*ChatModel)(nil)

// NewChatModel 创建 Gemini 对话模型
func NewChatModel(ctx context.Context, apiKey, modelName string) (*ChatModel, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if modelName == "" {
		modelName = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &ChatModel{client: client, model: modelName}, nil
}

// Generate 实现 model.BaseChatModel
func (m *ChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	modelName, contents, cfg := buildRequest(m.model, input, opts...)

	resp, err := m.client.Models.GenerateContent(ctx, modelName, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	return schema.AssistantMessage(resp.Text(), nil), nil
}

// Stream 暂不支持
func (m *ChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("gemini: streaming is not supported")
}

// buildRequest 将 eino 消息与通用选项转换为 GenAI 请求
func buildRequest(defaultName string, input []*schema.Message, opts ...model.Option) (string, []*genai.Content, *genai.GenerateContentConfig) {
	name := defaultName
	options := model.GetCommonOptions(&model.Options{Model: &name}, opts...)

	cfg := &genai.GenerateContentConfig{}
	if options.Temperature != nil {
		t := *options.Temperature
		cfg.Temperature = &t
	}
	if options.MaxTokens != nil {
		cfg.MaxOutputTokens = int32(*options.MaxTokens)
	}

	contents := make([]*genai.Content, 0, len(input))
	for _, msg := range input {
		switch msg.Role {
		case schema.System:
			cfg.SystemInstruction = genai.NewContentFromText(msg.Content, genai.RoleUser)
		case schema.Assistant:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleUser))
		}
	}

	return *options.Model, contents, cfg
}
