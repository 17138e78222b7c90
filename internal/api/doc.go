// Package api adapts HTTP requests to the lesson plan and export services.
// It decodes request bodies, calls the services and maps their errors to
// status codes in a single place (errors.go).
package api
