package redisstore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyResetToken(t *testing.T) {
	assert.Equal(t, "pwd:reset:token:abc", keyResetToken("abc"))
}

func TestResetIndexAgainstRedis(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = rdb.Close() })

	idx := NewResetIndex(rdb)
	ctx := context.Background()

	require.NoError(t, idx.Put(ctx, "tok", 42, time.Minute))
	id, ok, err := idx.Lookup(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 42, id)

	require.NoError(t, idx.Delete(ctx, "tok"))
	_, ok, err = idx.Lookup(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, ok)
}
