package store

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgclark/wordle-solver/internal/session"
)

func TestMemoryStoreSaveGet(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	sess := session.New([]string{"crane", "slimy"}, "", zerolog.Nop())
	require.NoError(t, m.Save(ctx, sess))

	got, err := m.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Same(t, sess, got)
}

func TestMemoryStoreGetMissing(t *testing.T) {
	m := NewMemoryStore()
	_, err := m.Get(context.Background(), "no-such-id")
	assert.Error(t, err)
}

func TestMemoryStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	sess := session.New([]string{"crane"}, "", zerolog.Nop())
	require.NoError(t, m.Save(ctx, sess))

	sess.Attempts = 3
	require.NoError(t, m.Save(ctx, sess))

	got, err := m.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Attempts)
}
