package banter

// Store persists the full session list. Save is a whole-list replace with
// last-writer-wins semantics; there are no partial writes. Implementations
// decide durability: the default store is process-scoped (state dies with
// the process, a deliberate privacy choice), durable backends are opt-in.
type Store interface {
	Load() ([]Session, error)
	Save(sessions []Session) error
	Close() error
}
