package audit

import "github.com/google/uuid"

// Entry represents a single recorded superadmin action.
// Every mutation attempt is recorded, regardless of whether the platform accepted it.
type Entry struct {
	ID        uuid.UUID `json:"id"`
	ActorID   string    `json:"actor_id"`
	Resource  string    `json:"resource"`
	Action    string    `json:"action"`
	TargetID  string    `json:"target_id"`
	Succeeded bool      `json:"succeeded"`
	Message   string    `json:"message"`
	CreatedAt int64     `json:"created_at"`
}

// Actions recorded in the audit log
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionLogin  = "login"
	ActionLogout = "logout"
)
