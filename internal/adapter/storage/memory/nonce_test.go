package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNonceStore_CheckAndSet(t *testing.T) {
	ctx := context.Background()
	now := time.Unix(1_700_000_000, 0)
	s := NewNonceStore()
	s.now = func() time.Time { return now }

	ok, err := s.CheckAndSet(ctx, "0xAbC", "n1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.CheckAndSet(ctx, "0xabc", "n1", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "replay with different casing must be rejected")

	ok, err = s.CheckAndSet(ctx, "0xdef", "n1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "nonces are scoped per principal")

	now = now.Add(2 * time.Minute)
	ok, err = s.CheckAndSet(ctx, "0xabc", "n1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "expired nonce is accepted again")
}

func TestNonceStore_Sweep(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	s := NewNonceStore()
	s.now = func() time.Time { return now }

	_, _ = s.CheckAndSet(context.Background(), "0xabc", "old", time.Second)
	now = now.Add(time.Minute)
	s.sweep(now)

	assert.Empty(t, s.seen)
}
