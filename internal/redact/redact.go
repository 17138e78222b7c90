// Package redact scrubs credentials and other sensitive fragments from
// strings before they are logged or returned in error responses. Upstream
// model providers sometimes echo part of the API key or the request URL in
// their error messages, and those messages are shown to the caller.
package redact

import (
	"regexp"
	"strings"
)

// Constants for redaction placeholders
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
	// keep reports whether the match starting at start should be left alone.
	keep func(input string, start int) bool
}

// Rules are applied in order; earlier replacements are not revisited by
// later patterns.
var rules = []rule{
	// Stack trace fragments
	{pattern: regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`), placeholder: "[STACK_TRACE_REDACTED]"},

	// Provider API keys: OpenAI and Anthropic (sk-...), Google (AIza...)
	{pattern: regexp.MustCompile(`\bsk-[A-Za-z0-9_\-]{16,}`), placeholder: RedactedKeyPlaceholder},
	{pattern: regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`), placeholder: RedactedKeyPlaceholder},

	// JWT token pattern - matches the standard three-part base64url-encoded JWT token format
	{pattern: regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`), placeholder: "[REDACTED_JWT]"},

	// Bearer tokens and key/value credentials
	{pattern: regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/=]{8,}`), placeholder: RedactedCredentialPlaceholder},
	{
		pattern:     regexp.MustCompile(`(?i)(api[_-]?key|token|secret|access[_-]?key|auth)(\s*[:=]\s*['"]?)[A-Za-z0-9_\-.~+/]{8,}`),
		placeholder: RedactedKeyPlaceholder,
	},
	{pattern: regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]?['"]?)[^'"&\s]{3,}`), placeholder: RedactedCredentialPlaceholder},
	{pattern: regexp.MustCompile(`(AKIA|AccessKey(Id)?)([^a-zA-Z0-9])?[A-Z0-9]{8,}`), placeholder: RedactedKeyPlaceholder},

	// URL query strings; the scheme, host and path stay readable
	{pattern: regexp.MustCompile(`\b([a-z][a-z0-9+.-]*://[^\s"'?]+)\?[^\s"']+`), placeholder: "${1}?" + RedactionPlaceholder},

	// File paths, except the path part of a URL
	{pattern: regexp.MustCompile(`(/[\w.-]+){2,}`), placeholder: RedactedPathPlaceholder, keep: insideURL},
	{pattern: regexp.MustCompile(`[A-Za-z]:\\[^\\]+(\\[^\\]+)+`), placeholder: RedactedPathPlaceholder},

	// Email addresses
	{pattern: regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`), placeholder: "[REDACTED_EMAIL]"},
}

// insideURL reports whether a path match begins right after "scheme:/".
func insideURL(input string, start int) bool {
	return strings.HasSuffix(input[:start], ":/")
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.apply(result)
	}

	return result
}

func (r rule) apply(input string) string {
	if r.keep == nil {
		return r.pattern.ReplaceAllString(input, r.placeholder)
	}

	var b strings.Builder
	last := 0
	for _, loc := range r.pattern.FindAllStringIndex(input, -1) {
		if r.keep(input, loc[0]) {
			continue
		}
		b.WriteString(input[last:loc[0]])
		b.WriteString(r.placeholder)
		last = loc[1]
	}
	b.WriteString(input[last:])
	return b.String()
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
