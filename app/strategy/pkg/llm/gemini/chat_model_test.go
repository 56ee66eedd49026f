package gemini

import (
	"context"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestBuildRequest(t *testing.T) {
	input := []*schema.Message{
		schema.SystemMessage("be terse"),
		schema.UserMessage("classify this"),
		schema.AssistantMessage("ok", nil),
	}

	name, contents, cfg := buildRequest("gemini-2.0-flash", input,
		model.WithTemperature(0.3), model.WithMaxTokens(2000))

	assert.Equal(t, "gemini-2.0-flash", name)
	require.Len(t, contents, 2)
	assert.Equal(t, string(genai.RoleUser), contents[0].Role)
	assert.Equal(t, "classify this", contents[0].Parts[0].Text)
	assert.Equal(t, string(genai.RoleModel), contents[1].Role)
	require.NotNil(t, cfg.SystemInstruction)
	assert.Equal(t, "be terse", cfg.SystemInstruction.Parts[0].Text)
	require.NotNil(t, cfg.Temperature)
	assert.InDelta(t, 0.3, *cfg.Temperature, 1e-6)
	assert.Equal(t, int32(2000), cfg.MaxOutputTokens)
}

func TestBuildRequestModelOverride(t *testing.T) {
	name, _, cfg := buildRequest("gemini-2.0-flash", nil, model.WithModel("gemini-2.5-pro"))
	assert.Equal(t, "gemini-2.5-pro", name)
	assert.Nil(t, cfg.Temperature)
	assert.Zero(t, cfg.MaxOutputTokens)
}

func TestNewChatModelRequiresKey(t *testing.T) {
	_, err := NewChatModel(context.Background(), "", "")
	assert.ErrorContains(t, err, "api key is required")
}
