package storage

import (
	"context"

	"github.com/mealdesk/admin-gateway/internal/audit"
)

// Driver represents a storage driver for the gateway's own durable state.
// Domain data stays with the upstream platform API; the gateway only persists the
// superadmin action trail.
type Driver interface {
	// Initialize initializes the storage driver (i.e. opens a database connection)
	Initialize(ctx context.Context) error

	// AuditLog provides an audit log repository implementation
	AuditLog() audit.Repository

	// Close closes the storage driver (i.e. closes a database connection)
	Close()
}
