package collection

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealdesk/admin-gateway/internal/upstream"
)

type cachedRecord struct {
	ID   string
	Name string
}

func keyOf(record cachedRecord) string {
	return record.ID
}

func TestCache_SnapshotFetchesOnceUntilInvalidated(t *testing.T) {
	fetches := 0
	cache := New(func(_ context.Context, _ *upstream.Scope) ([]cachedRecord, error) {
		fetches++
		return []cachedRecord{{ID: "r1"}, {ID: "r2"}}, nil
	}, keyOf)

	ctx := context.Background()

	records, err := cache.Snapshot(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, 1, fetches)

	_, err = cache.Snapshot(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, fetches, "a non-stale cache must not refetch")

	cache.Invalidate()
	_, err = cache.Snapshot(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, fetches, "an invalidated cache must refetch")
}

func TestCache_FailedFetchKeepsLastKnownGood(t *testing.T) {
	responses := [][]cachedRecord{{{ID: "r1"}}, nil}
	errs := []error{nil, errors.New("upstream down")}
	call := 0
	cache := New(func(_ context.Context, _ *upstream.Scope) ([]cachedRecord, error) {
		defer func() { call++ }()
		return responses[call], errs[call]
	}, keyOf)

	ctx := context.Background()

	_, err := cache.Snapshot(ctx, nil)
	require.NoError(t, err)

	cache.Invalidate()
	_, err = cache.Snapshot(ctx, nil)
	require.Error(t, err)

	records, authoritative := cache.Peek()
	assert.False(t, authoritative)
	require.Len(t, records, 1)
	assert.Equal(t, "r1", records[0].ID)
}

func TestCache_Find(t *testing.T) {
	cache := New(func(_ context.Context, _ *upstream.Scope) ([]cachedRecord, error) {
		return []cachedRecord{{ID: "r1", Name: "first"}, {ID: "r2", Name: "second"}}, nil
	}, keyOf)

	_, err := cache.Snapshot(context.Background(), nil)
	require.NoError(t, err)

	record, ok := cache.Find("r2")
	require.True(t, ok)
	assert.Equal(t, "second", record.Name)

	_, ok = cache.Find("r3")
	assert.False(t, ok)
}

func TestCache_PeekOnEmptyCache(t *testing.T) {
	cache := New(func(_ context.Context, _ *upstream.Scope) ([]cachedRecord, error) {
		return nil, nil
	}, keyOf)

	records, authoritative := cache.Peek()
	assert.Empty(t, records)
	assert.False(t, authoritative)
}
