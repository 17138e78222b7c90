package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/lesson-plan-api/internal/config"
	"github.com/phrazzld/lesson-plan-api/internal/generation"
	"google.golang.org/genai"
)

// DefaultModel is used when no model name is configured.
const DefaultModel = "gemini-2.0-flash"

// GeminiGenerator implements the generation.Generator interface using
// Google's Gemini API.
type GeminiGenerator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// client is the Gemini API client for making requests
	client *genai.Client

	// model is the name of the Gemini model to use
	model string
}

// NewGeminiGenerator creates a new instance of GeminiGenerator with the provided dependencies.
//
// Parameters:
//   - ctx: Context for the operation, which can be used for cancellation
//   - logger: A structured logger for operation logging
//   - config: LLM configuration containing API key and model name
//
// Returns:
//   - A properly initialized GeminiGenerator or an error if initialization fails
func NewGeminiGenerator(ctx context.Context, logger *slog.Logger, config config.LLMConfig) (*GeminiGenerator, error) {
	return newGeminiGenerator(ctx, logger, config, genai.HTTPOptions{})
}

func newGeminiGenerator(
	ctx context.Context,
	logger *slog.Logger,
	config config.LLMConfig,
	httpOptions genai.HTTPOptions,
) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if config.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      config.GeminiAPIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: httpOptions,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	model := config.ModelName
	if model == "" {
		model = DefaultModel
	}

	return &GeminiGenerator{
		logger: logger,
		client: client,
		model:  model,
	}, nil
}

// Generate sends the system instruction and prompt to Gemini and returns the
// text of the first candidate. It makes exactly one API call.
func (g *GeminiGenerator) Generate(ctx context.Context, req generation.Request) (*generation.Response, error) {
	temperature := float32(req.Temperature)
	contentConfig := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(req.MaxTokens),
		Temperature:     &temperature,
	}
	if req.System != "" {
		contentConfig.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}

	g.logger.DebugContext(ctx, "Making Gemini API call",
		"model", g.model,
		"prompt_length", len(req.Prompt))

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.Prompt), contentConfig)
	if err != nil {
		return nil, mapGeminiError(err)
	}

	switch {
	case resp == nil:
		return nil, fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	case resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "":
		return nil, fmt.Errorf("%w: prompt blocked (%s)",
			generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
	case len(resp.Candidates) == 0:
		return nil, fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	case resp.Candidates[0].FinishReason == genai.FinishReasonSafety:
		return nil, fmt.Errorf("%w: content blocked by safety filters", generation.ErrContentBlocked)
	case resp.Candidates[0].Content == nil:
		return nil, fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	if resp.UsageMetadata != nil {
		g.logger.DebugContext(ctx, "Gemini API call successful",
			"prompt_tokens", resp.UsageMetadata.PromptTokenCount,
			"candidate_tokens", resp.UsageMetadata.CandidatesTokenCount)
	}

	return &generation.Response{
		Text:  resp.Text(),
		Model: g.model,
	}, nil
}

// ModelID returns the configured Gemini model name.
func (g *GeminiGenerator) ModelID() string {
	return g.model
}

func mapGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return generation.FromStatus(apiErr.Code, err)
	}
	return generation.FromStatus(0, err)
}
