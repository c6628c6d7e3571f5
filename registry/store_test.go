package registry_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ergmee/registry"
)

func openStore(t *testing.T) *registry.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "runs.db")
	s, err := registry.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.Close()) })

	return s
}

func TestStore_StartAndFinishRun(t *testing.T) {
	s := openStore(t)
	runID := uuid.New()
	started := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.StartRun(runID, 1, "config.txt", started))

	run, err := s.GetRun(runID)
	require.NoError(t, err)
	require.Equal(t, registry.StatusRunning, run.Status)
	require.Nil(t, run.FinishedAt)
	require.Equal(t, 1, run.TaskID)

	finished := started.Add(5 * time.Minute)
	require.NoError(t, s.FinishRun(runID, finished, registry.StatusDone, []string{"Arc", "Reciprocity"}, []float64{-1.5, 0.3}))

	run, err = s.GetRun(runID)
	require.NoError(t, err)
	require.Equal(t, registry.StatusDone, run.Status)
	require.NotNil(t, run.FinishedAt)
	require.JSONEq(t, `{"Arc": -1.5, "Reciprocity": 0.3}`, run.FinalThetaJSON)
}

func TestStore_GetRun_NotFound(t *testing.T) {
	s := openStore(t)
	_, err := s.GetRun(uuid.New())
	require.ErrorIs(t, err, registry.ErrRunNotFound)
}

func TestStore_ListRuns_OrderedByStartedAtDesc(t *testing.T) {
	s := openStore(t)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	first := uuid.New()
	second := uuid.New()
	require.NoError(t, s.StartRun(first, 1, "a.txt", base))
	require.NoError(t, s.StartRun(second, 2, "b.txt", base.Add(time.Hour)))

	runs, err := s.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	require.Equal(t, second, runs[0].RunID)
	require.Equal(t, first, runs[1].RunID)
}

func TestStore_FinishRun_FailedStatusHasNoTheta(t *testing.T) {
	s := openStore(t)
	runID := uuid.New()
	started := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.StartRun(runID, 3, "c.txt", started))

	require.NoError(t, s.FinishRun(runID, started.Add(time.Minute), registry.StatusFailed, nil, nil))

	run, err := s.GetRun(runID)
	require.NoError(t, err)
	require.Equal(t, registry.StatusFailed, run.Status)
	require.Empty(t, run.FinalThetaJSON)
}
