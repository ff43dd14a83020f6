// Package session keeps per-login working state in process memory. The
// database only sees portfolio data on explicit save; everything else a
// user does between login and logout lives here.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"portfoliomaker/internal/models"
)

var ErrNoSession = errors.New("session not found")

// Artifact kinds stored per session.
const (
	ArtifactResume      = "resume"
	ArtifactCoverLetter = "cover_letter"
)

// State is an immutable snapshot of one session. Mutators return a new
// State, so readers holding an old snapshot never observe partial writes.
type State struct {
	Username  string
	SessionID string
	Profile   models.ProfileRecord
	Links     models.LinksData
	Artifacts map[string]string
	CreatedAt time.Time
}

// WithProfile returns a copy carrying the freshly submitted profile and
// the analyzer output for its links. Existing artifacts are kept; they
// describe the profile they were generated from, not the current one.
func (s State) WithProfile(profile models.ProfileRecord, links models.LinksData) State {
	next := s.clone()
	next.Profile = profile
	next.Links = links
	return next
}

// WithArtifact returns a copy with the generated content stored under kind.
func (s State) WithArtifact(kind, content string) State {
	next := s.clone()
	next.Artifacts[kind] = content
	return next
}

func (s State) clone() State {
	next := s
	next.Artifacts = make(map[string]string, len(s.Artifacts))
	for k, v := range s.Artifacts {
		next.Artifacts[k] = v
	}
	return next
}

type entry struct {
	state   State
	expires time.Time
}

// Manager owns all live sessions. Entries expire ttl after their last
// write; expired entries are dropped lazily on read and by SweepLoop.
type Manager struct {
	mu   sync.RWMutex
	ttl  time.Duration
	byID map[string]entry
	now  func() time.Time
}

func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		ttl:  ttl,
		byID: make(map[string]entry),
		now:  time.Now,
	}
}

// Create registers a new session for the user, seeded with the portfolio
// loaded from storage.
func (m *Manager) Create(username string, profile models.ProfileRecord) State {
	state := State{
		Username:  username,
		SessionID: uuid.NewString(),
		Profile:   profile,
		Artifacts: make(map[string]string),
		CreatedAt: m.now(),
	}
	m.Put(state)
	return state
}

// Put stores the snapshot and refreshes its expiry.
func (m *Manager) Put(state State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[state.SessionID] = entry{state: state, expires: m.now().Add(m.ttl)}
}

// Get returns the current snapshot or ErrNoSession when the id is unknown
// or expired.
func (m *Manager) Get(sessionID string) (State, error) {
	m.mu.RLock()
	e, exists := m.byID[sessionID]
	m.mu.RUnlock()
	if !exists {
		return State{}, ErrNoSession
	}
	if m.now().After(e.expires) {
		m.Delete(sessionID)
		return State{}, ErrNoSession
	}
	return e.state, nil
}

func (m *Manager) Delete(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, sessionID)
}

// Count reports live sessions, counting entries past their expiry as gone.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	now := m.now()
	n := 0
	for _, e := range m.byID {
		if !now.After(e.expires) {
			n++
		}
	}
	return n
}

func (m *Manager) sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	for id, e := range m.byID {
		if now.After(e.expires) {
			delete(m.byID, id)
		}
	}
}

// SweepLoop drops expired sessions on a fixed interval until ctx ends.
func (m *Manager) SweepLoop(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.sweep()
		}
	}
}
