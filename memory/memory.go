// Package memory provides the default process-scoped session store. State
// lives only as long as the process, the moral equivalent of tab-scoped
// browser storage — a privacy choice, not an accident. Durable persistence
// is a separate opt-in backend.
package memory

import (
	"sync"

	"github.com/banterhq/banter"
	"github.com/banterhq/banter/json"
)

// Interface compliance check.
var _ banter.Store = (*Store)(nil)

// Store keeps the session list as one serialized value, so Load always
// returns fresh copies and callers can never alias stored state. A payload
// that fails to decode degrades to an empty list rather than an error.
type Store struct {
	mu   sync.Mutex
	data []byte
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{}
}

// Load returns the stored session list, or nil when nothing has been saved.
func (s *Store) Load() ([]banter.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, nil
	}
	sessions, err := json.UnmarshalSessions(s.data)
	if err != nil {
		return nil, nil
	}
	return sessions, nil
}

// Save replaces the stored session list.
func (s *Store) Save(sessions []banter.Session) error {
	data, err := json.MarshalSessions(sessions)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	return nil
}

// Close discards the stored state.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	return nil
}
