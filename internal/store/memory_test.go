package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-helper/internal/game"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)

	_, err := s.Get(ctx, "nope")
	require.ErrorIs(t, err, ErrNotFound)

	g := &game.Game{ID: "g1", Answer: "CRANE"}
	require.NoError(t, s.Save(ctx, g))
	got, err := s.Get(ctx, "g1")
	require.NoError(t, err)
	assert.Same(t, g, got)
	assert.Equal(t, 1, s.Len())

	require.NoError(t, s.Delete(ctx, "g1"))
	require.NoError(t, s.Delete(ctx, "g1"))
	_, err = s.Get(ctx, "g1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreEvictsIdleSessions(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemoryStore(time.Hour).(*memory)
	m.now = func() time.Time { return clock }

	require.NoError(t, m.Save(ctx, &game.Game{ID: "old"}))
	clock = clock.Add(2 * time.Hour)
	require.NoError(t, m.Save(ctx, &game.Game{ID: "new"}))

	_, err := m.Get(ctx, "old")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = m.Get(ctx, "new")
	require.NoError(t, err)
}
