// Package openai implements generation.Generator on top of the OpenAI chat
// completions API. OpenAI-compatible gateways are reached through
// LLMConfig.OpenAIBaseURL.
package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/lesson-plan-api/internal/config"
	"github.com/phrazzld/lesson-plan-api/internal/generation"
	goopenai "github.com/sashabaranov/go-openai"
)

// DefaultModel is used when no model name is configured.
const DefaultModel = goopenai.GPT4

// Generator sends lesson plan prompts to an OpenAI chat model.
type Generator struct {
	logger *slog.Logger
	client *goopenai.Client
	model  string
}

// NewGenerator creates a Generator from the LLM configuration.
func NewGenerator(logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("%w: openai API key cannot be empty", generation.ErrInvalidConfig)
	}

	clientConfig := goopenai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientConfig.BaseURL = cfg.OpenAIBaseURL
	}

	model := cfg.ModelName
	if model == "" {
		model = DefaultModel
	}

	return &Generator{
		logger: logger,
		client: goopenai.NewClientWithConfig(clientConfig),
		model:  model,
	}, nil
}

// Generate submits a system + user exchange and returns the first choice.
func (g *Generator) Generate(ctx context.Context, req generation.Request) (*generation.Response, error) {
	messages := []goopenai.ChatCompletionMessage{
		{Role: goopenai.ChatMessageRoleSystem, Content: req.System},
		{Role: goopenai.ChatMessageRoleUser, Content: req.Prompt},
	}

	g.logger.DebugContext(ctx, "calling chat completions",
		"model", g.model,
		"max_tokens", req.MaxTokens,
		"temperature", req.Temperature)

	resp, err := g.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:       g.model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: float32(req.Temperature),
	})
	if err != nil {
		return nil, mapOpenAIError(err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", generation.ErrInvalidResponse)
	}

	choice := resp.Choices[0]
	if choice.FinishReason == goopenai.FinishReasonContentFilter {
		return nil, fmt.Errorf("%w: finish reason %s", generation.ErrContentBlocked, choice.FinishReason)
	}

	g.logger.DebugContext(ctx, "chat completion finished",
		"model", resp.Model,
		"finish_reason", choice.FinishReason,
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens)

	model := resp.Model
	if model == "" {
		model = g.model
	}

	return &generation.Response{
		Text:  choice.Message.Content,
		Model: model,
	}, nil
}

// ModelID returns the configured model name.
func (g *Generator) ModelID() string {
	return g.model
}

func mapOpenAIError(err error) error {
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) {
		return generation.FromStatus(apiErr.HTTPStatusCode, err)
	}
	var reqErr *goopenai.RequestError
	if errors.As(err, &reqErr) {
		return generation.FromStatus(reqErr.HTTPStatusCode, err)
	}
	return generation.FromStatus(0, err)
}
