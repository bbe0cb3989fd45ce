// internal/store/memory.go
//
// In-memory session store for games served over HTTP.
//
// Characteristics:
//   - Stores *game.Game objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Finished games are evicted after a grace period so the map stays bounded.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/wordle-helper/internal/game"
)

var ErrNotFound = errors.New("game not found")

// Store defines the persistence interface for game sessions.
type Store interface {
	// Save persists or updates a game state.
	Save(ctx context.Context, g *game.Game) error

	// Get retrieves a game by ID. Returns ErrNotFound if missing.
	Get(ctx context.Context, id string) (*game.Game, error)

	// Delete forgets a game. Deleting a missing ID is not an error.
	Delete(ctx context.Context, id string) error

	// Len reports how many sessions are held.
	Len() int
}

type entry struct {
	g       *game.Game
	touched time.Time
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex     // guards games map
	games map[string]entry // keyed by Game.ID
	ttl   time.Duration    // idle lifetime of a session; 0 keeps forever
	now   func() time.Time
}

// NewMemoryStore constructs a new in-memory Store. Sessions idle longer than
// ttl are dropped on the next Save.
func NewMemoryStore(ttl time.Duration) Store {
	return &memory{games: make(map[string]entry), ttl: ttl, now: time.Now}
}

// Save adds or updates the game in the map.
func (m *memory) Save(ctx context.Context, g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	m.games[g.ID] = entry{g: g, touched: now}
	if m.ttl > 0 {
		for id, e := range m.games {
			if now.Sub(e.touched) > m.ttl {
				delete(m.games, id)
			}
		}
	}
	return nil
}

// Get looks up a game by ID.
func (m *memory) Get(ctx context.Context, id string) (*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.games[id]; ok {
		return e.g, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
	return nil
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
