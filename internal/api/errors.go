package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/lesson-plan-api/internal/api/shared"
	"github.com/phrazzld/lesson-plan-api/internal/domain"
	"github.com/phrazzld/lesson-plan-api/internal/redact"
)

// Client-facing messages for input errors.
const (
	MsgNoLessonPlan     = "No lesson plan provided"
	MsgInvalidRequest   = "Invalid request format"
	MsgRequestTooLarge  = "Request body too large"
	MsgUnexpectedError  = "An unexpected error occurred"
	MsgRouteNotFound    = "Not found"
	MsgMethodNotAllowed = "Method not allowed"
)

// MapErrorToStatusCode maps service errors to HTTP status codes. Anything
// that is not a client input error is a 500, whatever the upstream cause.
func MapErrorToStatusCode(err error) int {
	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.Is(err, domain.ErrEmptyLessonPlan),
		errors.Is(err, domain.ErrInvalidFormat),
		errors.Is(err, shared.ErrEmptyBody):
		return http.StatusBadRequest

	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge

	default:
		return http.StatusInternalServerError
	}
}

// GetErrorMessage returns the message shown to the client. Input errors get
// a fixed message; other failures are described with secrets redacted.
func GetErrorMessage(err error) string {
	if err == nil {
		return MsgUnexpectedError
	}

	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.Is(err, domain.ErrEmptyLessonPlan):
		return MsgNoLessonPlan

	case errors.Is(err, domain.ErrInvalidFormat),
		errors.Is(err, shared.ErrEmptyBody):
		return MsgInvalidRequest

	case errors.As(err, &maxBytesErr):
		return MsgRequestTooLarge

	default:
		return redact.Error(err)
	}
}

// HandleAPIError writes the error response for err and logs it.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	var opts []shared.ResponseOption
	if errors.Is(err, domain.ErrEmptyLessonPlan) {
		opts = append(opts, shared.WithElevatedLogLevel())
	}
	shared.RespondWithErrorAndLog(w, r, status, GetErrorMessage(err), err, opts...)
}

// HandleDecodeError writes the response for a request body that could not be
// decoded. Syntax and type errors are reported as invalid format.
func HandleDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) || errors.Is(err, shared.ErrEmptyBody) {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
}

// NotFound responds with a JSON 404 for unknown routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, MsgRouteNotFound)
}

// MethodNotAllowed responds with a JSON 405.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
}
