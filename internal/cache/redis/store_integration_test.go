//go:build integration

package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	cacheredis "github.com/Gunvolt24/wb_shop/internal/cache/redis"
	"github.com/Gunvolt24/wb_shop/internal/testutil"
)

func newStoreTC(t *testing.T, defaultTTL time.Duration) (context.Context, *cacheredis.Store) {
	t.Helper()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancelStart)

	rd, stop, err := testutil.StartRedisTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stop(context.Background()) })

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	store, err := cacheredis.NewStore(ctx, cacheredis.Config{Addr: rd.Addr}, defaultTTL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return ctx, store
}

func TestRedisStore_SetGetDelete_TC(t *testing.T) {
	t.Parallel()
	ctx, store := newStoreTC(t, time.Minute)

	// промах до записи
	_, found, err := store.Get(ctx, "product-42")
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, store.Set(ctx, "product-42", []byte(`{"id":"42"}`), 0))

	got, found, err := store.Get(ctx, "product-42")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []byte(`{"id":"42"}`), got)

	has, err := store.Has(ctx, "product-42")
	require.NoError(t, err)
	require.True(t, has)

	// пакетное удаление, в том числе несуществующих ключей
	require.NoError(t, store.Set(ctx, "all-products", []byte("[]"), 0))
	require.NoError(t, store.Delete(ctx, "product-42", "all-products", "no-such-key"))

	_, found, err = store.Get(ctx, "product-42")
	require.NoError(t, err)
	require.False(t, found)
	has, err = store.Has(ctx, "all-products")
	require.NoError(t, err)
	require.False(t, has)
}

func TestRedisStore_TTLExpiry_TC(t *testing.T) {
	t.Parallel()
	ctx, store := newStoreTC(t, time.Minute)

	require.NoError(t, store.Set(ctx, "latest-products", []byte("[]"), 500*time.Millisecond))

	_, found, err := store.Get(ctx, "latest-products")
	require.NoError(t, err)
	require.True(t, found)

	time.Sleep(700 * time.Millisecond)

	_, found, err = store.Get(ctx, "latest-products")
	require.NoError(t, err)
	require.False(t, found)
}

func TestRedisStore_FailFastOnBadAddr_TC(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := cacheredis.NewStore(ctx, cacheredis.Config{Addr: "127.0.0.1:1"}, time.Minute)
	require.Error(t, err)
}
