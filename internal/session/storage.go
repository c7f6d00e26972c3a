package session

import (
	"context"

	"github.com/mealdesk/admin-gateway/internal/upstream"
)

// Storage defines the session storage API
type Storage interface {
	// GetByRawToken retrieves a session by its raw (prior hashing) gateway token
	GetByRawToken(ctx context.Context, rawToken string) (*Session, error)

	// Create creates a new session holding the platform-issued bearer credential and
	// actor profile and returns the raw gateway token
	Create(ctx context.Context, bearer string, actor upstream.Superadmin, expires int64) (string, error)

	// TerminateByRawToken terminates a session by its raw gateway token
	TerminateByRawToken(ctx context.Context, rawToken string) error

	// TerminateByActorID terminates all sessions of a specific actor
	TerminateByActorID(ctx context.Context, actorID string) error

	// TerminateExpired terminates all sessions that are expired
	TerminateExpired(ctx context.Context) (int, error)
}
