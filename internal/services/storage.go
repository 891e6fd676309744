package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/emberhall/mystery-engine/pkg/state"
)

// HealthChecker defines basic health check capabilities
type HealthChecker interface {
	// Ping tests the service connection
	Ping(ctx context.Context) error
}

// Closer defines cleanup capabilities
type Closer interface {
	// Close closes the service connection
	Close() error
}

// Store defines the interface for session persistence
type Store interface {
	HealthChecker
	Closer

	// SaveSession saves a session under its own ID
	SaveSession(ctx context.Context, s *state.Session) error

	// LoadSession retrieves a session by ID
	// Returns nil if the session doesn't exist
	LoadSession(ctx context.Context, id uuid.UUID) (*state.Session, error)

	// DeleteSession removes a session by ID
	DeleteSession(ctx context.Context, id uuid.UUID) error
}
