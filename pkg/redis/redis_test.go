package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsFromURL(t *testing.T) {
	cfg := &Config{URL: "redis://:pw@cache.internal:6380/2", DialTimeout: 2 * time.Second}

	opts, err := cfg.options()
	require.NoError(t, err)

	assert.Equal(t, "cache.internal:6380", opts.Addr)
	assert.Equal(t, "pw", opts.Password)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 2*time.Second, opts.DialTimeout)
}

func TestNewRejectsBadURL(t *testing.T) {
	_, err := (&Config{URL: "http://not-redis"}).New(context.Background())
	assert.Error(t, err)
}

func TestNewFailsWhenUnreachable(t *testing.T) {
	cfg := &Config{URL: "redis://127.0.0.1:1/0", DialTimeout: 200 * time.Millisecond}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := cfg.New(ctx)
	assert.Error(t, err)
}
