// Package gemini implements [banter.Generator] for the Google Gemini API.
//
// It wraps the google.golang.org/genai SDK, translating between banter's
// domain types and the Gemini API types. Responses are handled as an
// explicit set of documented variants (reply text, blocked prompt, stopped
// candidate, empty candidate) with named errors for each failure — no
// shape-probing.
package gemini

const (
	defaultModel     = "gemini-2.5-flash"
	defaultMaxTokens = 8192
)
