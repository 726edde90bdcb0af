package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nravi/optionpulse/pkg/config"
)

func disabledCache(t *testing.T) *Cache {
	t.Helper()
	client, err := New(&config.Config{})
	require.NoError(t, err)
	return NewCache(client, "test")
}

func TestCache_DisabledGetMisses(t *testing.T) {
	cache := disabledCache(t)

	var dest float64
	found, err := cache.Get(context.Background(), "some-key", &dest)

	require.NoError(t, err)
	assert.False(t, found)
}

// With Redis disabled GetOrSet degrades to a plain call-through
func TestCache_DisabledGetOrSetCallsThrough(t *testing.T) {
	cache := disabledCache(t)

	calls := 0
	var dest float64
	err := cache.GetOrSet(context.Background(), "vix:^INDIAVIX", &dest, time.Minute, func() (interface{}, error) {
		calls++
		return 14.25, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 14.25, dest)
	assert.Equal(t, 1, calls)

	// Nothing was cached, so the next call fetches again
	err = cache.GetOrSet(context.Background(), "vix:^INDIAVIX", &dest, time.Minute, func() (interface{}, error) {
		calls++
		return 14.30, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 14.30, dest)
	assert.Equal(t, 2, calls)
}

func TestCache_GetOrSetPropagatesFetchError(t *testing.T) {
	cache := disabledCache(t)

	var dest float64
	err := cache.GetOrSet(context.Background(), "key", &dest, time.Minute, func() (interface{}, error) {
		return nil, errors.New("fetch failed")
	})

	assert.Error(t, err)
}

func TestCacheKeys(t *testing.T) {
	assert.Equal(t, "vix:^INDIAVIX", VolatilityKey("^INDIAVIX"))
	assert.Equal(t, "changes:basket", ChangesKey("basket"))
	assert.Equal(t, "oi:^NSEI", OIRatioKey("^NSEI"))
}
