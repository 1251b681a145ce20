package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackingCache_SetThenGet(t *testing.T) {
	mr := miniredis.RunT(t)
	defer mr.Close()

	cache, err := NewTrackingCache("redis://" + mr.Addr())
	require.NoError(t, err)
	defer cache.Close()

	ctx := context.Background()
	payload := []byte(`{"status":"AWAITING_PICKUP"}`)

	err = cache.Set(ctx, "TRK-ABC123", payload, 10*time.Second)
	assert.NoError(t, err)

	got, found, err := cache.Get(ctx, "TRK-ABC123")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload, got)
}

func TestTrackingCache_MissIsNotAnError(t *testing.T) {
	mr := miniredis.RunT(t)
	defer mr.Close()

	cache, err := NewTrackingCache("redis://" + mr.Addr())
	require.NoError(t, err)
	defer cache.Close()

	got, found, err := cache.Get(context.Background(), "TRK-MISSING")
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestTrackingCache_EntryExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	defer mr.Close()

	cache, err := NewTrackingCache("redis://" + mr.Addr())
	require.NoError(t, err)
	defer cache.Close()

	ctx := context.Background()

	err = cache.Set(ctx, "TRK-TTL", []byte("payload"), 1*time.Second)
	require.NoError(t, err)

	_, found, err := cache.Get(ctx, "TRK-TTL")
	require.NoError(t, err)
	assert.True(t, found)

	mr.FastForward(2 * time.Second)

	_, found, err = cache.Get(ctx, "TRK-TTL")
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestTrackingCache_KeysAreNamespaced(t *testing.T) {
	mr := miniredis.RunT(t)
	defer mr.Close()

	cache, err := NewTrackingCache("redis://" + mr.Addr())
	require.NoError(t, err)
	defer cache.Close()

	err = cache.Set(context.Background(), "TRK-NS", []byte("payload"), 0)
	require.NoError(t, err)

	assert.True(t, mr.Exists("tracking:TRK-NS"))
}

func TestTrackingCache_Ping(t *testing.T) {
	mr := miniredis.RunT(t)
	defer mr.Close()

	cache, err := NewTrackingCache("redis://" + mr.Addr())
	require.NoError(t, err)
	defer cache.Close()

	assert.NoError(t, cache.Ping(context.Background()))
}

func TestTrackingCache_InvalidURL(t *testing.T) {
	_, err := NewTrackingCache("invalid://url")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse Redis URL")
}
