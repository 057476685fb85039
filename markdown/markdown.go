// Package markdown converts sessions to and from a plain markdown
// transcript for backup and restore. The format is a level-1 heading with
// the title followed by one "**User**:"/"**AI**:" paragraph per message.
//
// The round-trip is lossy on purpose: images are not embedded, multi-line
// message text flattens on re-import, and a message whose own text starts
// with a speaker prefix will be picked up as a message line. Import accepts
// anything that yields at least one message and ignores the rest.
package markdown

import (
	"strings"
	"time"

	"github.com/banterhq/banter"
)

// ImportedTitle is the fallback title when a transcript has no heading.
const ImportedTitle = "Imported Chat"

const (
	userPrefix      = "**User**:"
	assistantPrefix = "**AI**:"
)

// Export renders the session as a markdown transcript. Images are omitted;
// the output is text-only.
func Export(s banter.Session) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(s.Title)
	b.WriteString("\n")
	for _, m := range s.Messages {
		b.WriteString("\n")
		if m.Role == banter.RoleAssistant {
			b.WriteString(assistantPrefix)
		} else {
			b.WriteString(userPrefix)
		}
		b.WriteString(" ")
		b.WriteString(m.Content)
		b.WriteString("\n")
	}
	return b.String()
}

// Import parses a markdown transcript into a new session with a fresh ID
// and the current timestamp. The first "# " line sets the title; lines
// starting with the speaker prefixes become messages in encountered order.
// It fails with ErrNoMessages when no message lines are found — the sole
// validity criterion; surrounding text is ignored, not rejected.
func Import(text string) (banter.Session, error) {
	s := banter.NewSession()
	s.Title = ImportedTitle

	titleSet := false
	now := time.Now()
	for _, line := range strings.Split(text, "\n") {
		switch {
		case !titleSet && strings.HasPrefix(line, "# "):
			s.Title = strings.TrimSpace(strings.TrimPrefix(line, "# "))
			titleSet = true
		case strings.HasPrefix(line, userPrefix):
			s.Messages = append(s.Messages, banter.Message{
				Role:      banter.RoleUser,
				Content:   strings.TrimSpace(strings.TrimPrefix(line, userPrefix)),
				Timestamp: now,
			})
		case strings.HasPrefix(line, assistantPrefix):
			s.Messages = append(s.Messages, banter.Message{
				Role:      banter.RoleAssistant,
				Content:   strings.TrimSpace(strings.TrimPrefix(line, assistantPrefix)),
				Timestamp: now,
			})
		}
	}
	if len(s.Messages) == 0 {
		return banter.Session{}, banter.ErrNoMessages
	}
	return s, nil
}
