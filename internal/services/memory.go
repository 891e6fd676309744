package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/emberhall/mystery-engine/pkg/state"
)

const sweepInterval = 5 * time.Minute

// MemoryStore implements Store with an in-process map. Used when no
// Redis URL is configured, and in tests. Sessions expire after the
// configured TTL, measured from the last write, via a background
// sweep.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*state.Session
	ttl      time.Duration
	logger   *slog.Logger
	stop     chan struct{}
	stopOnce sync.Once
}

// Ensure MemoryStore implements Store interface
var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(ttl time.Duration, logger *slog.Logger) *MemoryStore {
	m := &MemoryStore{
		sessions: make(map[uuid.UUID]*state.Session),
		ttl:      ttl,
		logger:   logger,
		stop:     make(chan struct{}),
	}

	if ttl > 0 {
		go m.sweepLoop()
	}
	return m
}

func (m *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

func (m *MemoryStore) SaveSession(ctx context.Context, s *state.Session) error {
	s.UpdatedAt = time.Now().UTC()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s.Clone()
	return nil
}

func (m *MemoryStore) LoadSession(ctx context.Context, id uuid.UUID) (*state.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	return s.Clone(), nil
}

func (m *MemoryStore) DeleteSession(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// Len reports the number of stored sessions.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *MemoryStore) Close() error {
	m.stopOnce.Do(func() { close(m.stop) })
	return nil
}

func (m *MemoryStore) sweepLoop() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.sweep(time.Now().UTC())
		}
	}
}

func (m *MemoryStore) sweep(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, s := range m.sessions {
		if now.Sub(s.UpdatedAt) > m.ttl {
			delete(m.sessions, id)
			m.logger.Debug("Expired session swept", "id", id)
		}
	}
}
