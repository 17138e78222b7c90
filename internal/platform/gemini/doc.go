// Package gemini provides an implementation of the generation.Generator interface
// that uses Google's Gemini API for generating lesson plans.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the lesson plan service to Google's external Gemini AI service.
// The system instruction is sent as Gemini's SystemInstruction and the prompt
// as a single user turn. Provider errors are translated to the sentinels of
// the generation package; no retries are attempted.
//
// The package depends on the google.golang.org/genai client library for
// communicating with the Gemini API.
package gemini
