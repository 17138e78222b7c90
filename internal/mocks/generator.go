package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/lesson-plan-api/internal/generation"
)

// DefaultModelID is reported by MockGenerator when Model is empty.
const DefaultModelID = "mock-model"

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateFn allows test cases to mock the Generate behavior
	GenerateFn func(ctx context.Context, req generation.Request) (*generation.Response, error)

	// Default response values
	Text  string
	Model string
	Err   error

	// Call tracking for verification
	GenerateCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times Generate was called
		Count int

		// Requests contains all requests passed to Generate calls
		Requests []generation.Request

		// Contexts contains all contexts passed to Generate calls
		Contexts []context.Context
	}
}

// Generate implements the generation.Generator interface
func (m *MockGenerator) Generate(ctx context.Context, req generation.Request) (*generation.Response, error) {
	m.GenerateCalls.mu.Lock()
	m.GenerateCalls.Count++
	m.GenerateCalls.Requests = append(m.GenerateCalls.Requests, req)
	m.GenerateCalls.Contexts = append(m.GenerateCalls.Contexts, ctx)
	m.GenerateCalls.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, req)
	}

	if m.Err != nil {
		return nil, m.Err
	}
	return &generation.Response{Text: m.Text, Model: m.ModelID()}, nil
}

// ModelID implements the generation.Generator interface
func (m *MockGenerator) ModelID() string {
	if m.Model == "" {
		return DefaultModelID
	}
	return m.Model
}

// CallCount returns the number of Generate calls so far.
func (m *MockGenerator) CallCount() int {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()
	return m.GenerateCalls.Count
}

// LastRequest returns the most recent request, or false if Generate was never called.
func (m *MockGenerator) LastRequest() (generation.Request, bool) {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()
	if len(m.GenerateCalls.Requests) == 0 {
		return generation.Request{}, false
	}
	return m.GenerateCalls.Requests[len(m.GenerateCalls.Requests)-1], true
}

// NewMockGeneratorWithText creates a MockGenerator that returns the specified completion
func NewMockGeneratorWithText(text string) *MockGenerator {
	return &MockGenerator{
		Text: text,
	}
}

// NewMockGeneratorWithError creates a MockGenerator that returns the specified error
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{
		Err: err,
	}
}

// MockGeneratorThatFails creates a MockGenerator that simulates a generation failure
func MockGeneratorThatFails() *MockGenerator {
	return &MockGenerator{
		Err: generation.ErrGenerationFailed,
	}
}

// MockGeneratorWithContentBlocked creates a MockGenerator that simulates content being blocked
func MockGeneratorWithContentBlocked() *MockGenerator {
	return &MockGenerator{
		Err: generation.ErrContentBlocked,
	}
}

// Reset resets the call tracking state
func (m *MockGenerator) Reset() {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()

	m.GenerateCalls.Count = 0
	m.GenerateCalls.Requests = nil
	m.GenerateCalls.Contexts = nil
}
