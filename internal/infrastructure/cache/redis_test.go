package cache

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisFromURL(t *testing.T) {
	server := miniredis.RunT(t)

	rdb, err := NewRedisFromURL(context.Background(), "redis://"+server.Addr()+"/0")
	require.NoError(t, err)
	assert.NoError(t, rdb.Set(context.Background(), "k", "v", 0).Err())
	assert.NoError(t, Close(rdb))
}

func TestNewRedisFromURL_BadURL(t *testing.T) {
	_, err := NewRedisFromURL(context.Background(), "http://not-redis")
	assert.ErrorContains(t, err, "invalid REDIS_URL")
}

func TestClose_Nil(t *testing.T) {
	assert.NoError(t, Close(nil))
}
