package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/phrazzld/lesson-plan-api/internal/config"
	"github.com/phrazzld/lesson-plan-api/internal/generation"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testConfig returns a valid configuration using the OpenAI provider.
func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "info"},
		LLM: config.LLMConfig{
			Provider:     config.ProviderOpenAI,
			OpenAIAPIKey: "test-key",
			MaxTokens:    500,
			Temperature:  0.7,
			SystemPrompt: config.DefaultSystemPrompt,
		},
		Export: config.ExportConfig{
			FontFamily: "Helvetica",
			FontSize:   12,
			Margin:     40,
			Compress:   true,
		},
	}
}

// newTestRouter builds the full router around gen.
func newTestRouter(t *testing.T, gen generation.Generator) http.Handler {
	t.Helper()
	app, err := newApplicationWithGenerator(testConfig(), discardLogger(), gen)
	require.NoError(t, err)
	return app.setupRouter()
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// unsetEnv removes key for the duration of the test and restores it afterwards.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}
