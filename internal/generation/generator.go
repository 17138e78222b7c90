package generation

import (
	"context"
)

// Request is a single two-turn exchange: a fixed system instruction followed
// by the user prompt.
type Request struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// Response holds the text of the first completion returned by the provider.
type Response struct {
	Text  string
	Model string
}

// Generator defines the interface for generating text from a prompt.
// This interface serves as a boundary between the application core and
// external AI/LLM services, following the hexagonal architecture pattern.
// Implementations must be safe for concurrent use.
type Generator interface {
	// Generate sends the request to the model and returns the first completion.
	// Errors wrap one of the sentinels in errors.go.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this generator is configured to use.
	ModelID() string
}
