// Package profile holds the player identity shown next to the game:
// a nickname and an age, stored per session and read once when a session starts.
package profile

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Fallback values used when a field was never entered.
const (
	DefaultNickname = "Player"
	DefaultAge      = "Unknown"
)

// Profile is the player's self-declared identity.
type Profile struct {
	Nickname string `yaml:"nickname"`
	Age      string `yaml:"age"`
}

// Default returns the fallback profile.
func Default() Profile {
	return Profile{Nickname: DefaultNickname, Age: DefaultAge}
}

// WithDefaults trims both fields and replaces blank ones with the fallback values.
func (p Profile) WithDefaults() Profile {
	p.Nickname = strings.TrimSpace(p.Nickname)
	p.Age = strings.TrimSpace(p.Age)
	if p.Nickname == "" {
		p.Nickname = DefaultNickname
	}
	if p.Age == "" {
		p.Age = DefaultAge
	}
	return p
}

// Source looks up the profile stored for a session.
type Source interface {
	LoadProfile(sessionID string) (Profile, bool, error)
}

// Store is a Source that can also be written to.
type Store interface {
	Source
	SaveProfile(sessionID string, p Profile) error
	ClearProfile(sessionID string) error
}

// Resolve returns the session's profile with fallbacks applied.
// A nil source, a lookup error or a missing record all yield Default().
func Resolve(src Source, sessionID string) Profile {
	if src == nil {
		return Default()
	}
	p, ok, err := src.LoadProfile(sessionID)
	if err != nil || !ok {
		return Default()
	}
	return p.WithDefaults()
}

// NewSessionID returns a fresh identifier for a play session.
func NewSessionID() string {
	return uuid.NewString()
}

// Memory is an in-process Store, used when no database is available.
type Memory struct {
	mu       sync.Mutex
	profiles map[string]Profile
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{profiles: make(map[string]Profile)}
}

// LoadProfile implements Source.
func (m *Memory) LoadProfile(sessionID string) (Profile, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.profiles[sessionID]
	return p, ok, nil
}

// SaveProfile stores p for the session, replacing any previous value.
func (m *Memory) SaveProfile(sessionID string, p Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.profiles[sessionID] = p
	return nil
}

// ClearProfile forgets the session's profile.
func (m *Memory) ClearProfile(sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.profiles, sessionID)
	return nil
}
