package runlog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAndRecent(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	base := time.Now().Add(-time.Hour)

	first, err := store.Record(ctx, Run{Command: "check", StartedAt: base, Errors: 2, Warnings: 1})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	_, err = store.Record(ctx, Run{Command: "verify", StartedAt: base.Add(time.Minute), Note: "clean"})
	require.NoError(t, err)

	runs, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Equal(t, "verify", runs[0].Command)
	assert.Equal(t, "clean", runs[0].Note)
	assert.Equal(t, "check", runs[1].Command)
	assert.Equal(t, 2, runs[1].Errors)
	assert.Equal(t, 1, runs[1].Warnings)
}

func TestRecord_RequiresCommand(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	_, err = store.Record(context.Background(), Run{})
	require.Error(t, err)
}

func TestRecent_Limit(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, err := store.Record(ctx, Run{Command: "check"})
		require.NoError(t, err)
	}

	runs, err := store.Recent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestOpen_PersistsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")

	store, err := Open(path)
	require.NoError(t, err)
	_, err = store.Record(context.Background(), Run{Command: "sync"})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	runs, err := reopened.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "sync", runs[0].Command)
}
