package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daily-report-bot/internal/config"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client, err := Connect(context.Background(), config.Redis{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestConnectFails(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := Connect(ctx, config.Redis{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}

func TestReminderLog(t *testing.T) {
	ctx := context.Background()
	mr, client := setupRedis(t)
	log := NewReminderLog(client)

	_, ok, err := log.Last(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	at := time.Date(2026, 10, 14, 14, 0, 0, 0, time.UTC)
	require.NoError(t, log.Record(ctx, 1, at, "2026-10-14"))
	require.NoError(t, log.Record(ctx, 1, at.Add(time.Hour), "2026-10-14"))

	last, ok, err := log.Last(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, last.Equal(at.Add(time.Hour)))

	n, err := log.Count(ctx, 1, "2026-10-14")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = log.Count(ctx, 1, "2026-10-15")
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.Equal(t, reminderTTL, mr.TTL(countKey(1, "2026-10-14")))
}

func TestGenerationGuard(t *testing.T) {
	ctx := context.Background()
	mr, client := setupRedis(t)
	guard := NewGenerationGuard(client)

	ok, err := guard.Acquire(ctx, "weekly:100", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = guard.Acquire(ctx, "weekly:100", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	mr.FastForward(2 * time.Minute)
	ok, err = guard.Acquire(ctx, "weekly:100", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, guard.Release(ctx, "weekly:100"))
	ok, err = guard.Acquire(ctx, "weekly:100", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}
