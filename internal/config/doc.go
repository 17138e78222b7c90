// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). It provides type-safe
// access to the server, LLM and export settings while keeping configuration
// details separate from the handlers and services that use them.
package config
