// Package generation defines the port between the lesson plan service and
// the external LLM providers used for content generation. Provider adapters
// in internal/platform implement the Generator interface so the service never
// depends on a specific API.
package generation
