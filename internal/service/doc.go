// Package service contains the application use cases: generating a lesson
// plan from form parameters and exporting lesson plan text as a PDF.
//
// Services depend on ports (generation.Generator, Renderer) rather than on
// concrete providers, so that cmd/server can choose the implementations and
// tests can substitute the doubles in internal/mocks.
package service
