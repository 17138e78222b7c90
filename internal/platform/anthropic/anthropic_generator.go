// Package anthropic implements generation.Generator with the Anthropic
// Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/phrazzld/lesson-plan-api/internal/config"
	"github.com/phrazzld/lesson-plan-api/internal/generation"
)

// DefaultModel is used when no model name is configured.
const DefaultModel = "claude-haiku-4-5-20251001"

// Generator sends lesson plan prompts to a Claude model.
type Generator struct {
	logger *slog.Logger
	client *anthropicsdk.Client
	model  string
}

// NewGenerator creates a Generator from the LLM configuration. Extra request
// options are appended after the API key.
func NewGenerator(logger *slog.Logger, cfg config.LLMConfig, opts ...option.RequestOption) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.AnthropicAPIKey == "" {
		return nil, fmt.Errorf("%w: anthropic API key cannot be empty", generation.ErrInvalidConfig)
	}

	client := anthropicsdk.NewClient(append([]option.RequestOption{
		option.WithAPIKey(cfg.AnthropicAPIKey),
		// One upstream call per request.
		option.WithMaxRetries(0),
	}, opts...)...)

	model := cfg.ModelName
	if model == "" {
		model = DefaultModel
	}

	return &Generator{
		logger: logger,
		client: &client,
		model:  model,
	}, nil
}

// Generate sends the prompt as a single user message and concatenates the
// text blocks of the reply.
func (g *Generator) Generate(ctx context.Context, req generation.Request) (*generation.Response, error) {
	params := anthropicsdk.MessageNewParams{
		Model:     anthropicsdk.Model(g.model),
		MaxTokens: int64(req.MaxTokens),
		Messages: []anthropicsdk.MessageParam{
			anthropicsdk.NewUserMessage(anthropicsdk.NewTextBlock(req.Prompt)),
		},
		Temperature: anthropicsdk.Float(req.Temperature),
	}
	if req.System != "" {
		params.System = []anthropicsdk.TextBlockParam{{Text: req.System}}
	}

	g.logger.DebugContext(ctx, "calling messages API", "model", g.model)

	msg, err := g.client.Messages.New(ctx, params)
	if err != nil {
		return nil, mapAnthropicError(err)
	}

	if msg.StopReason == anthropicsdk.StopReasonRefusal {
		return nil, fmt.Errorf("%w: model refused the request", generation.ErrContentBlocked)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return nil, fmt.Errorf("%w: no text content in response", generation.ErrInvalidResponse)
	}

	g.logger.DebugContext(ctx, "messages API call finished",
		"stop_reason", msg.StopReason,
		"input_tokens", msg.Usage.InputTokens,
		"output_tokens", msg.Usage.OutputTokens)

	return &generation.Response{
		Text:  text.String(),
		Model: string(msg.Model),
	}, nil
}

// ModelID returns the configured model name.
func (g *Generator) ModelID() string {
	return g.model
}

func mapAnthropicError(err error) error {
	var apiErr *anthropicsdk.Error
	if errors.As(err, &apiErr) {
		return generation.FromStatus(apiErr.StatusCode, err)
	}
	return generation.FromStatus(0, err)
}
