package hashmap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpiringMap_LookupTreatsExpiredValuesAsAbsent(t *testing.T) {
	obj := NewExpiring[string, int](time.Minute)
	obj.Set("key", 7)

	val, ok := obj.Lookup("key")
	require.True(t, ok)
	assert.Equal(t, 7, val)

	// age the entry past its lifetime
	entry, _ := obj.normal.Lookup("key")
	entry.inserted = time.Now().Add(-2 * time.Minute)

	_, ok = obj.Lookup("key")
	assert.False(t, ok)
	assert.False(t, obj.Has("key"))
	assert.Zero(t, obj.Get("key"))
}

func TestExpiringMap_BootstrappedManipulation(t *testing.T) {
	obj := NewExpiring[string, int](time.Minute)
	obj.Set("keep", 1)
	obj.Set("drop", 2)

	before, _ := obj.normal.Lookup("keep")
	inserted := before.inserted

	obj.BootstrappedManipulation(func(underlying map[string]int) {
		underlying["keep"] = 10
		delete(underlying, "drop")
		underlying["added"] = 3
	})

	// deleted keys stay deleted
	_, ok := obj.Lookup("drop")
	assert.False(t, ok)
	assert.Equal(t, 2, obj.Size())

	// surviving keys keep their value and their original insertion time
	val, ok := obj.Lookup("keep")
	require.True(t, ok)
	assert.Equal(t, 10, val)
	after, _ := obj.normal.Lookup("keep")
	assert.Equal(t, inserted, after.inserted)

	// added keys are stamped fresh
	val, ok = obj.Lookup("added")
	require.True(t, ok)
	assert.Equal(t, 3, val)
}
