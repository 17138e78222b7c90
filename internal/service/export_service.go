package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/lesson-plan-api/internal/domain"
)

// Renderer draws plain text onto a PDF canvas. pdf.Renderer implements it.
type Renderer interface {
	Render(ctx context.Context, text string) ([]byte, error)
}

// ExportService renders lesson plan text into downloadable documents.
type ExportService interface {
	// Export returns domain.ErrEmptyLessonPlan for empty text.
	Export(ctx context.Context, text string) (*domain.ExportedDocument, error)
}

type exportServiceImpl struct {
	renderer Renderer
	logger   *slog.Logger
}

// NewExportService creates a new ExportService.
func NewExportService(renderer Renderer, logger *slog.Logger) (ExportService, error) {
	if renderer == nil {
		return nil, &ServiceError{
			Service:   "export",
			Operation: "create_service",
			Message:   "renderer cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &exportServiceImpl{
		renderer: renderer,
		logger:   logger.With("component", "export_service"),
	}, nil
}

// Export checks for text before any canvas is allocated.
func (s *exportServiceImpl) Export(ctx context.Context, text string) (*domain.ExportedDocument, error) {
	if text == "" {
		s.logger.WarnContext(ctx, "no lesson plan provided")
		return nil, domain.ErrEmptyLessonPlan
	}

	content, err := s.renderer.Render(ctx, text)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to render lesson plan", "error", err)
		return nil, NewServiceError("export", "export", "failed to render PDF", err)
	}

	s.logger.InfoContext(ctx, "PDF generated successfully", "bytes", len(content))

	return domain.NewExportedDocument(content), nil
}
