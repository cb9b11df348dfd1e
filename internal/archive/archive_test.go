package archive

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTestArchive(t *testing.T) *Archive {
	t.Helper()
	a, err := Open(filepath.Join(t.TempDir(), "arggen.db"))
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func TestOpenIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "arggen.db")

	a, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, a.Close())

	// Reopening must not reapply migrations.
	a, err = Open(path)
	require.NoError(t, err)
	require.NoError(t, a.Close())
}

func TestRecordAndGetRun(t *testing.T) {
	a := openTestArchive(t)
	ctx := context.Background()

	id, err := a.RecordRun(ctx, Run{
		Language: "en",
		Count:    100,
		Pairs:    true,
		Seed:     42,
		Preset:   "balanced",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	run, err := a.GetRun(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "en", run.Language)
	require.Equal(t, 100, run.Count)
	require.True(t, run.Pairs)
	require.Equal(t, uint64(42), run.Seed)
	require.Equal(t, "balanced", run.Preset)
	require.False(t, run.CreatedAt.IsZero())

	_, err = a.GetRun(ctx, "missing")
	require.ErrorIs(t, err, ErrRunNotFound)
}

func TestHashRoundTrip(t *testing.T) {
	a := openTestArchive(t)
	ctx := context.Background()

	runID, err := a.RecordRun(ctx, Run{Language: "en", Count: 2})
	require.NoError(t, err)

	h1 := HashText("If it rains, the ground is wet.")
	h2 := HashText("Either the door is open or the light is on.")

	seen, err := a.SeenHash(ctx, h1)
	require.NoError(t, err)
	require.False(t, seen)

	require.NoError(t, a.MarkHashes(ctx, runID, map[string]string{
		h1: "Modus Ponens",
		h2: "Disjunctive Syllogism",
	}))

	seen, err = a.SeenHash(ctx, h1)
	require.NoError(t, err)
	require.True(t, seen)

	// Re-marking the same hash is a no-op, not an error.
	require.NoError(t, a.MarkHashes(ctx, runID, map[string]string{h1: "Modus Ponens"}))

	stats, err := a.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, stats.Runs)
	require.Equal(t, 2, stats.Arguments)
	require.Equal(t, 1, stats.PerRule["Modus Ponens"])
}

func TestPrune(t *testing.T) {
	a := openTestArchive(t)
	ctx := context.Background()

	old := Run{Language: "en", Count: 1, CreatedAt: time.Now().UTC().Add(-48 * time.Hour)}
	oldID, err := a.RecordRun(ctx, old)
	require.NoError(t, err)
	require.NoError(t, a.MarkHashes(ctx, oldID, map[string]string{HashText("old text"): "Modus Ponens"}))

	freshID, err := a.RecordRun(ctx, Run{Language: "en", Count: 1})
	require.NoError(t, err)

	removed, err := a.Prune(ctx, time.Now().UTC().Add(-24*time.Hour))
	require.NoError(t, err)
	require.Equal(t, int64(1), removed)

	_, err = a.GetRun(ctx, oldID)
	require.ErrorIs(t, err, ErrRunNotFound)
	_, err = a.GetRun(ctx, freshID)
	require.NoError(t, err)

	seen, err := a.SeenHash(ctx, HashText("old text"))
	require.NoError(t, err)
	require.False(t, seen)
}
