package redis

import (
	"testing"

	"videolocale-go/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	opts, err := options(&config.RedisConfig{Host: "cache", Port: 6380, DB: 2, PoolSize: 4})
	require.NoError(t, err)
	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 4, opts.PoolSize)

	opts, err = options(&config.RedisConfig{URL: "redis://:secret@dokku-redis:6379/1", Host: "ignored", Port: 1})
	require.NoError(t, err)
	assert.Equal(t, "dokku-redis:6379", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 1, opts.DB)

	_, err = options(&config.RedisConfig{URL: "http://nope"})
	assert.Error(t, err)
}

func TestInitAndClose(t *testing.T) {
	mr := miniredis.RunT(t)

	require.NoError(t, Init(&config.RedisConfig{URL: "redis://" + mr.Addr()}))
	assert.NotNil(t, Get())
	assert.NoError(t, Close())
}
