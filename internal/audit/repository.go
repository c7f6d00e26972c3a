package audit

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the audit log repository API
type Repository interface {
	// Get retrieves multiple audit entries, newest first
	Get(ctx context.Context, offset, limit uint64) ([]*Entry, uint64, error)

	// GetByID retrieves an audit entry by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*Entry, error)

	// Record persists a new audit entry
	Record(ctx context.Context, create *Create) (*Entry, error)
}

// Create is used to record a new audit entry
type Create struct {
	ActorID   string
	Resource  string
	Action    string
	TargetID  string
	Succeeded bool
	Message   string
}
