package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSessionStore_RevokeEIsRevoked(t *testing.T) {
	s := NewSessionStore(time.Hour)
	defer s.Close()
	ctx := context.Background()

	ok, err := s.IsRevoked(ctx, "fp-1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Revoke(ctx, "fp-1", time.Now().Add(time.Minute)))
	ok, err = s.IsRevoked(ctx, "fp-1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSessionStore_EntradaVencidaNoCuenta(t *testing.T) {
	s := NewSessionStore(time.Hour)
	defer s.Close()
	ctx := context.Background()

	require.NoError(t, s.Revoke(ctx, "fp-viejo", time.Now().Add(-time.Second)))
	ok, err := s.IsRevoked(ctx, "fp-viejo")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionStore_SweepDescartaVencidas(t *testing.T) {
	s := NewSessionStore(time.Hour)
	defer s.Close()
	ctx := context.Background()

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	require.NoError(t, s.Revoke(ctx, "a", now.Add(-time.Minute)))
	require.NoError(t, s.Revoke(ctx, "b", now.Add(time.Minute)))

	s.sweep()
	assert.Equal(t, 1, s.Len())
	ok, _ := s.IsRevoked(ctx, "b")
	assert.True(t, ok)
}

func TestSessionStore_JanitorBarrePeriodicamente(t *testing.T) {
	s := NewSessionStore(5 * time.Millisecond)
	defer s.Close()

	require.NoError(t, s.Revoke(context.Background(), "x", time.Now().Add(-time.Second)))
	assert.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, 5*time.Millisecond)
}

func TestSessionStore_CloseIdempotente(t *testing.T) {
	s := NewSessionStore(time.Millisecond)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
}
