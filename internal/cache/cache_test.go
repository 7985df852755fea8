package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSetRoundTrip(t *testing.T) {
	c := New(true)
	etag := c.Set("roster:1", []byte(`{"players":[]}`), time.Minute)

	data, gotETag, ok := c.Get("roster:1")
	require.True(t, ok)
	assert.Equal(t, []byte(`{"players":[]}`), data)
	assert.Equal(t, etag, gotETag)
}

func TestExpiredEntryNotReturned(t *testing.T) {
	c := New(true)
	c.Set("matchups", []byte(`[]`), -time.Second)

	_, _, ok := c.Get("matchups")
	assert.False(t, ok)
}

func TestDisabledCacheIsNoOp(t *testing.T) {
	c := New(false)
	etag := c.Set("k", []byte("v"), time.Minute)
	assert.NotEmpty(t, etag, "disabled cache still computes etags")

	_, _, ok := c.Get("k")
	assert.False(t, ok)
}

func TestKeyIncludesParams(t *testing.T) {
	assert.Equal(t, "cap:12:2025", Key("cap", 12, 2025))
	assert.NotEqual(t, Key("cap", 12), Key("cap", 13))
}

func TestETagStableAndMatchable(t *testing.T) {
	a := ComputeETag([]byte("payload"))
	b := ComputeETag([]byte("payload"))
	assert.Equal(t, a, b)

	assert.True(t, CheckETagMatch(a, b))
	assert.True(t, CheckETagMatch("*", b))
	assert.False(t, CheckETagMatch("", b))
	assert.False(t, CheckETagMatch(ComputeETag([]byte("other")), b))
}

func TestEvictRemovesExpired(t *testing.T) {
	c := New(true)
	c.Set("stale", []byte("x"), -time.Second)
	c.Set("fresh", []byte("y"), time.Minute)
	c.evict()

	stats := c.Stats()
	assert.Equal(t, 1, stats["total_keys"])
	assert.Equal(t, 1, stats["active_keys"])
}
