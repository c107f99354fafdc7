package httpctx_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dtroode/bookreview-server/internal/api/http/httpctx"
)

func TestManager_RoundTrip(t *testing.T) {
	t.Parallel()

	m := httpctx.NewManager()

	ctx := m.SetUsernameToContext(context.Background(), "alice")

	username, ok := m.GetUsernameFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "alice", username)
}

func TestManager_GetUsernameFromContext_Missing(t *testing.T) {
	t.Parallel()

	m := httpctx.NewManager()

	username, ok := m.GetUsernameFromContext(context.Background())
	assert.False(t, ok)
	assert.Empty(t, username)
}

func TestManager_GetUsernameFromContext_Empty(t *testing.T) {
	t.Parallel()

	m := httpctx.NewManager()

	ctx := m.SetUsernameToContext(context.Background(), "")

	_, ok := m.GetUsernameFromContext(ctx)
	assert.False(t, ok)
}
