package banter

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the app
// automatically matches any color scheme.
type Theme struct {
	UserMsg int // user message accent
	Error   int // error messages and failed-generation turns
	Success int // success indicators
	Muted   int // status bar, placeholders, typing indicator
	CodeBg  int // code block background
	Accent  int // headings, links, active session marker
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		UserMsg: 4,
		Error:   1,
		Success: 2,
		Muted:   8,
		CodeBg:  0,
		Accent:  5,
	}
}
