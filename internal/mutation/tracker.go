package mutation

import (
	"errors"

	"github.com/mealdesk/admin-gateway/internal/hashmap"
)

// Actions a tracker distinguishes
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// ErrPending is returned when a mutation is begun while the same one is still in flight.
// It implements the duplicate-submission guard: the triggering control stays disabled
// until the platform acknowledged or rejected the write.
var ErrPending = errors.New("mutation: already pending")

// Tracker tracks the lifecycle of mutations: Idle -> Pending -> (Succeeded | Failed) -> Idle.
// Both terminal outcomes immediately return the slot to Idle; the tracker deliberately
// keeps no memory of past mutations.
// Writes are pessimistic: nothing is applied locally before the platform confirms.
type Tracker struct {
	pending *hashmap.NormalMap[string, struct{}]
}

// NewTracker creates a new empty mutation tracker
func NewTracker() *Tracker {
	return &Tracker{
		pending: hashmap.NewNormal[string, struct{}](),
	}
}

// Begin transitions a mutation slot from Idle to Pending.
// It fails with ErrPending if the same mutation is already in flight.
func (tracker *Tracker) Begin(resource, action, target string) error {
	key := slotKey(resource, action, target)

	conflict := false
	tracker.pending.BootstrappedManipulation(func(underlying map[string]struct{}) {
		if _, ok := underlying[key]; ok {
			conflict = true
			return
		}
		underlying[key] = struct{}{}
	})

	if conflict {
		return ErrPending
	}
	return nil
}

// Finish transitions a pending mutation to its terminal outcome and back to Idle.
// Finishing a slot that is not pending is a no-op so late responses stay harmless.
func (tracker *Tracker) Finish(resource, action, target string) {
	tracker.pending.Unset(slotKey(resource, action, target))
}

// Pending reports whether the given mutation is currently in flight
func (tracker *Tracker) Pending(resource, action, target string) bool {
	return tracker.pending.Has(slotKey(resource, action, target))
}

func slotKey(resource, action, target string) string {
	return resource + "/" + action + "/" + target
}
