package banter

// Limits bounds session-list and history growth. The per-session message cap
// and the generation context window are independent knobs with no documented
// relationship; they are kept separate on purpose.
type Limits struct {
	MaxSessions   int // session-list cap; creating beyond it evicts the oldest
	MaxMessages   int // per-session sliding window over message history
	ContextWindow int // recent messages serialized into the generation prompt
}

// DefaultLimits returns the standard caps.
func DefaultLimits() Limits {
	return Limits{
		MaxSessions:   10,
		MaxMessages:   50,
		ContextWindow: 10,
	}
}

// normalize replaces non-positive fields with their defaults.
func (l Limits) normalize() Limits {
	d := DefaultLimits()
	if l.MaxSessions <= 0 {
		l.MaxSessions = d.MaxSessions
	}
	if l.MaxMessages <= 0 {
		l.MaxMessages = d.MaxMessages
	}
	if l.ContextWindow <= 0 {
		l.ContextWindow = d.ContextWindow
	}
	return l
}
