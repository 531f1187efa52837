package adapter

import (
	"context"
	"testing"
	"time"

	"horror-oracle/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCacheAdapter_GetHit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(client)

	mock.ExpectGet("oracle:session:user-1").SetVal(`{"id":"quiz-1"}`)

	val, err := cache.Get(context.Background(), "oracle:session:user-1")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"quiz-1"}`, val)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_MissTranslatesToCacheMiss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(client)

	mock.ExpectGet("oracle:session:ghost").RedisNil()

	_, err := cache.Get(context.Background(), "oracle:session:ghost")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_SetWithExpiration(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(client)

	mock.ExpectSet("oracle:session:user-1", "payload", 30*time.Minute).SetVal("OK")

	err := cache.Set(context.Background(), "oracle:session:user-1", "payload", 30*time.Minute)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_Delete(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(client)

	mock.ExpectDel("oracle:session:user-1").SetVal(1)

	err := cache.Delete(context.Background(), "oracle:session:user-1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemoryCacheAdapter_RoundTrip(t *testing.T) {
	cache := NewMemoryCacheAdapter()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", "v", 0))

	val, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)

	require.NoError(t, cache.Delete(ctx, "k"))
	_, err = cache.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestMemoryCacheAdapter_Expiration(t *testing.T) {
	cache := NewMemoryCacheAdapter()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", "v", time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	_, err := cache.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestMemoryCacheAdapter_DeleteMissingIsNoError(t *testing.T) {
	cache := NewMemoryCacheAdapter()
	assert.NoError(t, cache.Delete(context.Background(), "never-set"))
}
