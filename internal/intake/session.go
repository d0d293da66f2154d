package intake

import "sync"

// NotProvided is the sentinel stored when the user skips an optional field.
const NotProvided = "Не указано"

// Session is the per-user record of collected intake answers and the
// current conversation stage. It lives for the process lifetime and is
// never persisted.
type Session struct {
	Stage       Stage
	Name        string
	Category    string
	Platform    string
	OrderNumber string
	Contact     string
	Email       string
	Birthday    string

	// Instructions references the platform guide messages currently on
	// screen, kept only so they can be deleted on re-selection.
	Instructions []MessageRef
}

// Store keeps exactly one session per Telegram user id. Implementations
// must be safe for concurrent use by different users.
type Store interface {
	// Get returns the user's session, or false when none exists yet.
	Get(userID int64) (*Session, bool)
	// Put installs the session for a user, replacing any previous one.
	Put(userID int64, s *Session)
	// Update applies fn to the stored session under the store lock and
	// reports whether a session existed.
	Update(userID int64, fn func(*Session)) bool
}

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

// NewMemoryStore constructs the in-memory Store used in production: a
// keyed map with no eviction and no TTL, wiped on restart.
func NewMemoryStore() Store {
	return &memoryStore{sessions: make(map[int64]*Session)}
}

func (m *memoryStore) Get(userID int64) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[userID]
	return s, ok
}

func (m *memoryStore) Put(userID int64, s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[userID] = s
}

func (m *memoryStore) Update(userID int64, fn func(*Session)) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[userID]
	if !ok {
		return false
	}
	fn(s)
	return true
}
