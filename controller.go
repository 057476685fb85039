package banter

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// ErrorReply is the assistant turn appended when generation fails. Failures
// are surfaced in the transcript, never propagated raw.
const ErrorReply = "Sorry, something went wrong. Please try again."

// BusyNotice is the synchronous response to a send attempted while another
// generation is in flight. The second attempt is rejected, not queued.
const BusyNotice = "Please wait for the current response to finish."

// Controller owns the in-memory session list and the active-session pointer.
// It applies append/trim/title policies, invokes the Generator, and
// reconciles results back into the Store.
//
// All list mutations happen under one mutex as whole-list functional updates.
// At most one generation call is in flight at a time, guarded by a
// single-slot semaphore; a second attempt fails fast with ErrBusy.
type Controller struct {
	mu       sync.Mutex
	sessions []Session // newest first
	active   int

	store  Store
	gen    Generator
	limits Limits
	model  string

	gate chan struct{} // capacity 1; holds a token while generating
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithLimits overrides the default session and history caps.
func WithLimits(l Limits) ControllerOption {
	return func(c *Controller) { c.limits = l.normalize() }
}

// WithModel sets the model ID passed to the generator. Empty string means
// the generator uses its default model.
func WithModel(model string) ControllerOption {
	return func(c *Controller) { c.model = model }
}

// NewController loads persisted sessions from the store and returns a ready
// controller. A missing, corrupt, or unreadable store fails soft: the
// controller starts with an empty list. The list is never left empty — a
// fresh session is synthesized (and persisted) when none exist.
func NewController(store Store, gen Generator, opts ...ControllerOption) *Controller {
	c := &Controller{
		store:  store,
		gen:    gen,
		limits: DefaultLimits(),
		gate:   make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(c)
	}

	sessions, err := store.Load()
	if err != nil {
		sessions = nil
	}
	c.sessions = sessions
	if len(c.sessions) == 0 {
		c.sessions = []Session{NewSession()}
		_ = c.saveLocked()
	}
	return c
}

// Sessions returns a copy of the session list, newest first.
func (c *Controller) Sessions() []Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Session, len(c.sessions))
	for i, s := range c.sessions {
		out[i] = s.Clone()
	}
	return out
}

// Active returns a copy of the active session.
func (c *Controller) Active() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessions[c.active].Clone()
}

// ActiveID returns the active session's ID.
func (c *Controller) ActiveID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessions[c.active].ID
}

// Model returns the model ID passed to the generator.
func (c *Controller) Model() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.model
}

// SetModel changes the model ID for subsequent sends.
func (c *Controller) SetModel(model string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.model = model
}

// Generating reports whether a generation call is in flight.
func (c *Controller) Generating() bool {
	return len(c.gate) > 0
}

// NewSession prepends a fresh session, evicting the oldest beyond the
// session cap, and makes it active.
func (c *Controller) NewSession() (Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := NewSession()
	c.prependLocked(s)
	return s.Clone(), c.saveLocked()
}

// AddSession prepends an existing session (e.g. an imported transcript)
// under the same cap-and-activate policy as NewSession.
func (c *Controller) AddSession(s Session) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prependLocked(s)
	return c.saveLocked()
}

func (c *Controller) prependLocked(s Session) {
	c.sessions = append([]Session{s}, c.sessions...)
	if len(c.sessions) > c.limits.MaxSessions {
		c.sessions = c.sessions[:c.limits.MaxSessions]
	}
	c.active = 0
}

// SelectSession makes the session with the given ID active.
func (c *Controller) SelectSession(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, s := range c.sessions {
		if s.ID == id {
			c.active = i
			return nil
		}
	}
	return fmt.Errorf("select %q: %w", id, ErrSessionNotFound)
}

// DeleteSession removes the session with the given ID. Deleting the sole
// remaining session replaces it with a fresh one — the list never empties.
// If the deleted session was active, the first session becomes active.
func (c *Controller) DeleteSession(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := -1
	for i, s := range c.sessions {
		if s.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("delete %q: %w", id, ErrSessionNotFound)
	}
	if len(c.sessions) == 1 {
		c.sessions = []Session{NewSession()}
		c.active = 0
		return c.saveLocked()
	}
	c.sessions = append(c.sessions[:idx:idx], c.sessions[idx+1:]...)
	switch {
	case c.active == idx:
		c.active = 0
	case c.active > idx:
		c.active--
	}
	return c.saveLocked()
}

// RenameSession sets the session's title verbatim.
func (c *Controller) RenameSession(id, title string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.sessions {
		if c.sessions[i].ID == id {
			c.sessions[i].Title = title
			return c.saveLocked()
		}
	}
	return fmt.Errorf("rename %q: %w", id, ErrSessionNotFound)
}

// ClearActive empties the active session's message list. The title is kept.
func (c *Controller) ClearActive() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[c.active].Messages = nil
	return c.saveLocked()
}

// Send appends the user's message to the active session, asks the generator
// for a reply, and appends the outcome as the assistant turn. It blocks
// until the exchange completes; run it off the UI goroutine.
//
// A send attempted while another is in flight returns ErrBusy immediately
// without appending anything. Generation failures do not return an error:
// the fixed ErrorReply is appended instead. The user message is persisted
// before the request is issued, so an interruption mid-request leaves the
// user's turn visible with no reply.
func (c *Controller) Send(ctx context.Context, text string, image *Image) error {
	text = strings.TrimSpace(text)
	req := GenerateRequest{Prompt: text, Image: image}
	if err := req.Validate(); err != nil {
		return err
	}

	select {
	case c.gate <- struct{}{}:
	default:
		return ErrBusy
	}
	defer func() { <-c.gate }()

	c.mu.Lock()
	active := &c.sessions[c.active]
	sessionID := active.ID
	prompt := buildPrompt(active.Messages, text, c.limits.ContextWindow)
	active.DeriveTitle(Message{Role: RoleUser, Content: text, Image: image})
	active.Append(Message{Role: RoleUser, Content: text, Image: image, Timestamp: time.Now()}, c.limits.MaxMessages)
	saveErr := c.saveLocked()
	req.Prompt = prompt
	req.Model = c.model
	c.mu.Unlock()
	if saveErr != nil {
		return saveErr
	}

	reply, genErr := c.gen.Generate(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	target := c.findLocked(sessionID)
	if target == nil {
		// Session was deleted while generating; drop the reply.
		return nil
	}
	msg := Message{Role: RoleAssistant, Timestamp: time.Now()}
	if genErr != nil {
		msg.Content = ErrorReply
	} else {
		msg.Content = strings.TrimSpace(reply)
	}
	target.Append(msg, c.limits.MaxMessages)
	return c.saveLocked()
}

func (c *Controller) findLocked(id string) *Session {
	for i := range c.sessions {
		if c.sessions[i].ID == id {
			return &c.sessions[i]
		}
	}
	return nil
}

// saveLocked persists the full list. Callers hold c.mu.
func (c *Controller) saveLocked() error {
	out := make([]Session, len(c.sessions))
	for i, s := range c.sessions {
		out[i] = s.Clone()
	}
	if err := c.store.Save(out); err != nil {
		return fmt.Errorf("save sessions: %w", err)
	}
	return nil
}

// buildPrompt serializes the most recent window messages preceding a send as
// alternating "User:"/"AI:" lines followed by the new user text. The window
// caps request size independently of the history cap.
func buildPrompt(history []Message, text string, window int) string {
	if len(history) > window {
		history = history[len(history)-window:]
	}
	var b strings.Builder
	for _, m := range history {
		if m.Role == RoleAssistant {
			b.WriteString("AI: ")
		} else {
			b.WriteString("User: ")
		}
		b.WriteString(m.Content)
		b.WriteByte('\n')
	}
	b.WriteString(text)
	return b.String()
}
