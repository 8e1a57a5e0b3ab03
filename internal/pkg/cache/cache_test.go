package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrFetch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := New[string, int]()
	calls := 0
	fetch := func(ctx context.Context, key string) (int, error) {
		calls++
		return len(key), nil
	}

	v, err := c.GetOrFetch(ctx, "salon", fetch)
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.Equal(t, 1, calls)

	// second read served from cache
	v, err = c.GetOrFetch(ctx, "salon", fetch)
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.Equal(t, 1, calls)
}

func TestGetOrFetch_ErrorNotCached(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := New[string, int]()
	boom := errors.New("boom")
	calls := 0

	_, err := c.GetOrFetch(ctx, "k", func(ctx context.Context, key string) (int, error) {
		calls++
		return 0, boom
	})
	assert.ErrorIs(t, err, boom)

	v, err := c.GetOrFetch(ctx, "k", func(ctx context.Context, key string) (int, error) {
		calls++
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 2, calls)
}

func TestInvalidate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := New[string, string]()
	value := "old"
	fetch := func(ctx context.Context, key string) (string, error) {
		return value, nil
	}

	v, _ := c.GetOrFetch(ctx, "k", fetch)
	assert.Equal(t, "old", v)

	value = "new"
	v, _ = c.GetOrFetch(ctx, "k", fetch)
	assert.Equal(t, "old", v, "stale until invalidated")

	c.Invalidate("k")
	v, _ = c.GetOrFetch(ctx, "k", fetch)
	assert.Equal(t, "new", v)
}
