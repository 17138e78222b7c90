// Package web serves the static lesson plan form.
package web

import (
	_ "embed"
	"log/slog"
	"net/http"
	"strconv"
)

//go:embed static/index.html
var indexHTML []byte

// Index handles GET / by writing the embedded form page.
func Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(indexHTML)))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(indexHTML); err != nil {
		slog.ErrorContext(r.Context(), "failed to write index page", "error", err)
	}
}
