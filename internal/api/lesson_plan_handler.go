package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/lesson-plan-api/internal/api/shared"
	"github.com/phrazzld/lesson-plan-api/internal/domain"
	"github.com/phrazzld/lesson-plan-api/internal/service"
)

// LessonPlanHandler handles the generate and download endpoints.
type LessonPlanHandler struct {
	plans   service.LessonPlanService
	exports service.ExportService
	logger  *slog.Logger
}

// NewLessonPlanHandler creates a new LessonPlanHandler
func NewLessonPlanHandler(
	plans service.LessonPlanService,
	exports service.ExportService,
	logger *slog.Logger,
) *LessonPlanHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LessonPlanHandler{
		plans:   plans,
		exports: exports,
		logger:  logger.With("component", "lesson_plan_handler"),
	}
}

// Generate handles POST /generate requests
func (h *LessonPlanHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req domain.LessonPlanRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		HandleDecodeError(w, r, err)
		return
	}

	plan, err := h.plans.GeneratePlan(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateResponse{LessonPlan: plan.Text})
}

// Download handles POST /download requests
func (h *LessonPlanHandler) Download(w http.ResponseWriter, r *http.Request) {
	var req DownloadRequest
	// A missing body is the same as a missing lesson_plan.
	if err := shared.DecodeJSON(w, r, &req); err != nil && !errors.Is(err, shared.ErrEmptyBody) {
		HandleDecodeError(w, r, err)
		return
	}

	doc, err := h.exports.Export(r.Context(), req.LessonPlan)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	h.logger.DebugContext(r.Context(), "sending lesson plan PDF",
		"bytes", len(doc.Content),
		"trace_id", shared.GetTraceID(r.Context()))

	shared.RespondWithAttachment(w, r, doc.Filename, doc.ContentType, doc.Content)
}
