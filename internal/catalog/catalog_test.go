package catalog

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) *redis.Client {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestSeedAndList(t *testing.T) {
	rdb := setupRedis(t)
	ctx := context.Background()

	require.NoError(t, Seed(ctx, rdb))

	products, err := List(ctx, rdb)
	require.NoError(t, err)
	assert.Len(t, products, len(seed))
}

func TestListReseedsAfterExpiry(t *testing.T) {
	rdb := setupRedis(t)
	ctx := context.Background()

	// clé absente : List doit re-seeder au lieu d'échouer
	products, err := List(ctx, rdb)
	require.NoError(t, err)
	assert.NotEmpty(t, products)
}

func TestFind(t *testing.T) {
	rdb := setupRedis(t)
	ctx := context.Background()
	require.NoError(t, Seed(ctx, rdb))

	p, err := Find(ctx, rdb, "coffee-1kg")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Café des Honde Valley", p.Name)

	p, err = Find(ctx, rdb, "zzz")
	require.NoError(t, err)
	assert.Nil(t, p)
}
