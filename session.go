package banter

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultTitle is the sentinel title a session carries until its first user
// message derives a real one.
const DefaultTitle = "New Chat"

// imageTitle is the derived title when the first user message has no text.
const imageTitle = "Image chat"

// titleLimit is the maximum derived-title length in runes before truncation.
const titleLimit = 30

// Session is one named, ordered conversation thread.
type Session struct {
	ID        string // assigned at creation, never reassigned
	Title     string
	Messages  []Message
	CreatedAt time.Time
}

// NewSession creates an empty session with a fresh unique ID, the default
// title sentinel, and the current timestamp.
func NewSession() Session {
	return Session{
		ID:        uuid.NewString(),
		Title:     DefaultTitle,
		CreatedAt: time.Now(),
	}
}

// Append adds a message and trims the history to the most recent max
// messages. The oldest messages are evicted first.
func (s *Session) Append(msg Message, max int) {
	s.Messages = append(s.Messages, msg)
	if max > 0 && len(s.Messages) > max {
		s.Messages = append([]Message(nil), s.Messages[len(s.Messages)-max:]...)
	}
}

// DeriveTitle sets the title from the first user message. It applies at most
// once per session: only when the session has no messages yet and the title
// is still the default sentinel. Text is truncated to 30 runes with an
// ellipsis marker; an image-only message falls back to a fixed label.
func (s *Session) DeriveTitle(msg Message) {
	if len(s.Messages) != 0 || s.Title != DefaultTitle {
		return
	}
	text := strings.TrimSpace(msg.Content)
	if text == "" {
		if msg.Image != nil {
			s.Title = imageTitle
		}
		return
	}
	runes := []rune(text)
	if len(runes) > titleLimit {
		s.Title = string(runes[:titleLimit]) + "..."
		return
	}
	s.Title = text
}

// Clone returns a deep copy of the session. The message slice is copied so
// callers cannot alias the receiver's history; Image pointers are shared
// because images are immutable once attached.
func (s Session) Clone() Session {
	out := s
	out.Messages = append([]Message(nil), s.Messages...)
	return out
}
