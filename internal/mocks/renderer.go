package mocks

import (
	"context"
	"sync"
)

// MockRenderer implements service.Renderer for testing
type MockRenderer struct {
	RenderFn func(ctx context.Context, text string) ([]byte, error)

	Output []byte
	Err    error

	mu    sync.Mutex
	texts []string
}

// Render implements service.Renderer
func (m *MockRenderer) Render(ctx context.Context, text string) ([]byte, error) {
	m.mu.Lock()
	m.texts = append(m.texts, text)
	m.mu.Unlock()

	if m.RenderFn != nil {
		return m.RenderFn(ctx, text)
	}
	return m.Output, m.Err
}

// Calls returns the texts passed to Render, in order.
func (m *MockRenderer) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.texts...)
}
