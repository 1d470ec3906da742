package kv

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newRedisRepo(t *testing.T) (*RedisRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisRepository(client, DefaultRedisPrefix), mr
}

func TestRedisRepository_Contract(t *testing.T) {
	runContract(t, func(t *testing.T) Repository {
		r, _ := newRedisRepo(t)
		return r
	})
}

func TestRedisRepository_UsesPrefix(t *testing.T) {
	r, mr := newRedisRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "gym_users", []byte("[]")))

	got, err := mr.Get("gym:gym_users")
	require.NoError(t, err)
	require.Equal(t, "[]", got)
}

func TestRedisRepository_DeleteKeepsForeignKeys(t *testing.T) {
	r, mr := newRedisRepo(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("key", "keep"))
	require.NoError(t, r.Set(ctx, "key", []byte("1")))
	require.NoError(t, r.Delete(ctx, "key"))

	require.True(t, mr.Exists("key"))
	require.False(t, mr.Exists("gym:key"))
}

func TestRedisRepository_ServerDown(t *testing.T) {
	r, mr := newRedisRepo(t)
	mr.Close()
	ctx := context.Background()

	_, err := r.Get(ctx, "k")
	require.ErrorContains(t, err, "failed to get kv[k]")
	require.ErrorContains(t, r.Set(ctx, "k", []byte("v")), "failed to set kv[k]")
	require.ErrorContains(t, r.Delete(ctx, "k"), "failed to delete kv")
}
