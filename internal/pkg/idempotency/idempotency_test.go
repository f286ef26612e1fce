package idempotency

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func newTracker(t *testing.T) (*StateTracker, *redis.Client) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	ctr, err := tcredis.Run(ctx, "redis:7-alpine")
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	uri, err := ctr.ConnectionString(ctx)
	require.NoError(t, err)

	opts, err := redis.ParseURL(uri)
	require.NoError(t, err)

	client := redis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })

	return New(client), client
}

func TestStateTracker_Exec(t *testing.T) {
	tracker, client := newTracker(t)
	ctx := context.Background()

	calls := 0
	fn := func(context.Context) error {
		calls++
		return nil
	}

	require.NoError(t, tracker.Exec(ctx, "k1", fn))
	assert.ErrorIs(t, tracker.Exec(ctx, "k1", fn), ErrAlreadyCompleted)
	assert.Equal(t, 1, calls)

	val, err := client.Get(ctx, "idempotency:k1").Result()
	require.NoError(t, err)
	assert.Equal(t, StateCompleted.String(), val)
}

func TestStateTracker_FailureReleasesKey(t *testing.T) {
	tracker, _ := newTracker(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := tracker.Exec(ctx, "k2", func(context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)

	assert.NoError(t, tracker.Exec(ctx, "k2", func(context.Context) error { return nil }))
}

func TestStateTracker_InProgress(t *testing.T) {
	tracker, client := newTracker(t)
	ctx := context.Background()

	state, err := tracker.Acquire(ctx, "k3", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, StateNone, state)

	err = tracker.Exec(ctx, "k3", func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrAlreadyInProgress)

	require.NoError(t, client.Set(ctx, "idempotency:k4", "garbage", time.Minute).Err())
	_, err = tracker.Acquire(ctx, "k4", time.Minute)
	assert.ErrorIs(t, err, ErrInvalidState)
}
