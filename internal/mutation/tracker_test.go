package mutation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_RejectsDuplicateSubmission(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Begin("contacts", ActionUpdate, "c1"))
	assert.True(t, tracker.Pending("contacts", ActionUpdate, "c1"))

	assert.ErrorIs(t, tracker.Begin("contacts", ActionUpdate, "c1"), ErrPending)
}

func TestTracker_SlotsAreIndependent(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Begin("contacts", ActionUpdate, "c1"))

	// other targets, actions and resources stay unaffected
	assert.NoError(t, tracker.Begin("contacts", ActionUpdate, "c2"))
	assert.NoError(t, tracker.Begin("contacts", ActionDelete, "c1"))
	assert.NoError(t, tracker.Begin("products", ActionUpdate, "c1"))
}

func TestTracker_FinishReturnsToIdle(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Begin("contacts", ActionCreate, ""))
	tracker.Finish("contacts", ActionCreate, "")

	assert.False(t, tracker.Pending("contacts", ActionCreate, ""))
	// no memory of the previous outcome
	assert.NoError(t, tracker.Begin("contacts", ActionCreate, ""))
}

func TestTracker_FinishWithoutBeginIsHarmless(t *testing.T) {
	tracker := NewTracker()
	tracker.Finish("contacts", ActionDelete, "late")
	assert.False(t, tracker.Pending("contacts", ActionDelete, "late"))
}
