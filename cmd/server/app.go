package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/lesson-plan-api/internal/config"
	"github.com/phrazzld/lesson-plan-api/internal/generation"
	"github.com/phrazzld/lesson-plan-api/internal/platform/anthropic"
	"github.com/phrazzld/lesson-plan-api/internal/platform/gemini"
	"github.com/phrazzld/lesson-plan-api/internal/platform/openai"
	"github.com/phrazzld/lesson-plan-api/internal/platform/pdf"
	"github.com/phrazzld/lesson-plan-api/internal/service"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	generator         generation.Generator
	lessonPlanService service.LessonPlanService
	exportService     service.ExportService
}

// newApplication creates the generator for the configured provider and wires
// the services around it.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	generator, err := newGenerator(ctx, cfg.LLM, logger.With("component", "llm_generator"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	logger.Info("LLM generator initialized successfully",
		"provider", cfg.LLM.Provider,
		"model", generator.ModelID())

	return newApplicationWithGenerator(cfg, logger, generator)
}

// newApplicationWithGenerator wires the services around an existing generator.
func newApplicationWithGenerator(
	cfg *config.Config,
	logger *slog.Logger,
	generator generation.Generator,
) (*application, error) {
	app := &application{
		config:    cfg,
		logger:    logger,
		generator: generator,
	}

	prompts, err := service.NewPromptBuilder(cfg.LLM.PromptTemplatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load prompt template: %w", err)
	}

	app.lessonPlanService, err = service.NewLessonPlanService(generator, prompts, cfg.LLM, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create lesson plan service: %w", err)
	}

	renderer := pdf.NewRenderer(logger.With("component", "pdf_renderer"), pdf.OptionsFromConfig(cfg.Export))
	app.exportService, err = service.NewExportService(renderer, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create export service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// newGenerator selects the provider adapter named by cfg.Provider.
func newGenerator(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (generation.Generator, error) {
	var (
		generator generation.Generator
		err       error
	)
	switch cfg.Provider {
	case config.ProviderOpenAI:
		generator, err = openai.NewGenerator(logger, cfg)
	case config.ProviderGemini:
		generator, err = gemini.NewGeminiGenerator(ctx, logger, cfg)
	case config.ProviderAnthropic:
		generator, err = anthropic.NewGenerator(logger, cfg)
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", generation.ErrInvalidConfig, cfg.Provider)
	}
	if err != nil {
		return nil, err
	}
	return generator, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
// The provider clients hold no resources that need closing.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed")
}
