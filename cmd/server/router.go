package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/lesson-plan-api/internal/api"
	apiMiddleware "github.com/phrazzld/lesson-plan-api/internal/api/middleware"
	"github.com/phrazzld/lesson-plan-api/internal/web"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	r.NotFound(api.NotFound)
	r.MethodNotAllowed(api.MethodNotAllowed)

	lessonPlanHandler := api.NewLessonPlanHandler(app.lessonPlanService, app.exportService, app.logger)

	r.Get("/", web.Index)
	r.Post("/generate", lessonPlanHandler.Generate)
	r.Post("/download", lessonPlanHandler.Download)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
