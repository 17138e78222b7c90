package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/phrazzld/lesson-plan-api/internal/config"
	"github.com/phrazzld/lesson-plan-api/internal/domain"
	"github.com/phrazzld/lesson-plan-api/internal/generation"
)

// LessonPlanService turns form parameters into a generated lesson plan.
type LessonPlanService interface {
	// GeneratePlan builds the prompt for req and returns the model's completion.
	GeneratePlan(ctx context.Context, req domain.LessonPlanRequest) (*domain.GeneratedPlan, error)
}

type lessonPlanServiceImpl struct {
	generator generation.Generator
	prompts   *PromptBuilder
	cfg       config.LLMConfig
	logger    *slog.Logger
}

// NewLessonPlanService creates a new LessonPlanService.
// It returns an error if any of the required dependencies are nil.
func NewLessonPlanService(
	generator generation.Generator,
	prompts *PromptBuilder,
	cfg config.LLMConfig,
	logger *slog.Logger,
) (LessonPlanService, error) {
	if generator == nil {
		return nil, &ServiceError{
			Service:   "lesson plan",
			Operation: "create_service",
			Message:   "generator cannot be nil",
		}
	}
	if prompts == nil {
		return nil, &ServiceError{
			Service:   "lesson plan",
			Operation: "create_service",
			Message:   "prompt builder cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &lessonPlanServiceImpl{
		generator: generator,
		prompts:   prompts,
		cfg:       cfg,
		logger:    logger.With("component", "lesson_plan_service"),
	}, nil
}

// GeneratePlan makes exactly one generator call. Failures are not retried.
func (s *lessonPlanServiceImpl) GeneratePlan(
	ctx context.Context,
	req domain.LessonPlanRequest,
) (*domain.GeneratedPlan, error) {
	prompt, err := s.prompts.Build(req)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to build prompt", "error", err)
		return nil, NewServiceError("lesson plan", "generate_plan", "failed to build prompt", err)
	}

	// The prompt carries user-supplied text verbatim.
	s.logger.InfoContext(ctx, "generated prompt", "prompt", prompt)

	if s.cfg.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(s.cfg.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	start := time.Now()
	resp, err := s.generator.Generate(ctx, generation.Request{
		System:      s.cfg.SystemPrompt,
		Prompt:      prompt,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "lesson plan generation failed",
			"error", err,
			"model", s.generator.ModelID(),
			"rate_limited", errors.Is(err, generation.ErrRateLimited),
			"content_blocked", errors.Is(err, generation.ErrContentBlocked),
			"duration_ms", time.Since(start).Milliseconds())
		return nil, NewServiceError("lesson plan", "generate_plan", "model call failed", err)
	}

	s.logger.InfoContext(ctx, "lesson plan generated successfully",
		"model", resp.Model,
		"length", len(resp.Text),
		"duration_ms", time.Since(start).Milliseconds())

	return &domain.GeneratedPlan{
		Text:  resp.Text,
		Model: resp.Model,
	}, nil
}
