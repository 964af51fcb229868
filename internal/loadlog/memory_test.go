package loadlog

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRecentNewestFirst(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		rec := NewRecord(base.Add(time.Duration(i) * time.Minute))
		rec.Status = StatusOK
		rec.Users = i
		require.NoError(t, m.Insert(ctx, rec))
	}

	recs, err := m.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, 2, recs[0].Users)
	assert.Equal(t, 1, recs[1].Users)
}

func TestMemoryIsBounded(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	for i := 0; i < maxLimit+25; i++ {
		rec := NewRecord(time.Now())
		rec.Error = fmt.Sprint(i)
		require.NoError(t, m.Insert(ctx, rec))
	}

	recs, err := m.Recent(ctx, 1000)
	require.NoError(t, err)
	assert.Len(t, recs, maxLimit)
	assert.Equal(t, fmt.Sprint(maxLimit+24), recs[0].Error)
}

func TestMemoryGet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	rec := NewRecord(time.Now())
	require.NoError(t, m.Insert(ctx, rec))

	// stored copies are independent of the caller's record
	rec.Status = StatusFailed

	got, err := m.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, Status(""), got.Status)

	_, err = m.Get(ctx, "nope")
	assert.ErrorIs(t, err, ErrLoadNotFound)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, defaultLimit, clampLimit(0))
	assert.Equal(t, defaultLimit, clampLimit(-4))
	assert.Equal(t, 7, clampLimit(7))
	assert.Equal(t, maxLimit, clampLimit(500))
}

func TestNewRecordIDsAreUnique(t *testing.T) {
	a, b := NewRecord(time.Now()), NewRecord(time.Now())
	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, a.ID, 36)
}
