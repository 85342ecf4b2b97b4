package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedValue struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", cachedValue{Name: "Lively", Count: 3}, time.Minute))

	var got cachedValue
	hit, err := c.Get(ctx, "k", &got)

	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, cachedValue{Name: "Lively", Count: 3}, got)
}

func TestMemoryCache_Expiry(t *testing.T) {
	now := time.Date(2024, 5, 1, 22, 0, 0, 0, time.UTC)
	c := NewMemoryCache().WithClock(func() time.Time { return now })
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", 1, 5*time.Minute))

	now = now.Add(5 * time.Minute)
	var got int
	hit, err := c.Get(ctx, "k", &got)

	require.NoError(t, err)
	assert.False(t, hit)
	assert.Zero(t, c.Len())
}

func TestMemoryCache_Delete(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "a", 1, 0))
	require.NoError(t, c.Set(ctx, "b", 2, 0))

	require.NoError(t, c.Delete(ctx, "a", "missing"))

	var got int
	hit, _ := c.Get(ctx, "a", &got)
	assert.False(t, hit)
	hit, _ = c.Get(ctx, "b", &got)
	assert.True(t, hit)
	assert.Equal(t, 2, got)
}
