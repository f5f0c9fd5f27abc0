package missions

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyops/missiond/internal/domain"
	"github.com/skyops/missiond/internal/infrastructure/memory"
)

func newSimFixture(seed int64) (*Simulate, *memory.MissionStore, *memory.SimulationLog) {
	store := memory.NewMissionStore()
	log := memory.NewSimulationLog()
	sim := NewSimulate(store, log, rand.New(rand.NewSource(seed)))
	return sim, store, log
}

func TestSimulate_GeneratedFields(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sim, _, _ := newSimFixture(42)

	run, err := sim.Execute(ctx, 100)
	require.NoError(t, err)
	require.Len(t, run.Missions, 100)
	assert.Equal(t, 1, run.SimulationID)
	assert.Equal(t, 100, run.RequestedCount)
	assert.NotEmpty(t, run.GeneratedAt)

	for i, m := range run.Missions {
		assert.Equal(t, fmt.Sprintf("M%d", 1001+i), m.MissionID)
		assert.True(t, m.SensorType.Valid(), "sensor %q", m.SensorType)
		assert.True(t, m.Status.Valid(), "status %q", m.Status)
		assert.True(t, m.StartTime >= "2025-01-01T00:00:00Z" && m.StartTime < "2026-01-01T00:00:00Z",
			"start_time %q outside 2025", m.StartTime)
		assert.GreaterOrEqual(t, m.GPSLat, 4.0)
		assert.LessOrEqual(t, m.GPSLat, 6.0)
		assert.GreaterOrEqual(t, m.GPSLon, -75.5)
		assert.LessOrEqual(t, m.GPSLon, -73.5)
		assert.GreaterOrEqual(t, m.Progress, 0)
		assert.LessOrEqual(t, m.Progress, 100)

		// end_time present iff completed, and strictly after start.
		if m.Status == domain.StatusCompleted {
			require.NotEmpty(t, m.EndTime)
			assert.Greater(t, m.EndTime, m.StartTime)
		} else {
			assert.Empty(t, m.EndTime)
		}
	}
}

func TestSimulate_Deterministic(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	simA, _, _ := newSimFixture(7)
	simB, _, _ := newSimFixture(7)

	runA, err := simA.Execute(ctx, 20)
	require.NoError(t, err)
	runB, err := simB.Execute(ctx, 20)
	require.NoError(t, err)
	assert.Equal(t, runA.Missions, runB.Missions)
}

func TestSimulate_AppendsToLog(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sim, store, _ := newSimFixture(1)

	first, err := sim.Execute(ctx, 3)
	require.NoError(t, err)
	second, err := sim.Execute(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, first.SimulationID)
	assert.Equal(t, 2, second.SimulationID)

	// Missions from both runs landed in the store with contiguous IDs.
	all, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "M1004", all[3].MissionID)
}

func TestSimulate_ListRunsOrdered(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := memory.NewMissionStore()
	log := memory.NewSimulationLog()
	sim := NewSimulate(store, log, rand.New(rand.NewSource(9)))
	listRuns := NewListRuns(log)

	for i := 0; i < 4; i++ {
		_, err := sim.Execute(ctx, 2)
		require.NoError(t, err)
	}
	runs, err := listRuns.Execute(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 4)
	for i, run := range runs {
		assert.Equal(t, i+1, run.SimulationID)
		assert.Equal(t, 2, run.RequestedCount)
	}
}

func TestSimulate_ConcurrentRunsAllocateUniqueIDs(t *testing.T) {
	t.Parallel()

	const workers = 10
	const perRun = 20
	ctx := context.Background()
	store := memory.NewMissionStore()
	log := memory.NewSimulationLog()
	sim := NewSimulate(store, log, rand.New(rand.NewSource(3)))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := sim.Execute(ctx, perRun)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	all, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, workers*perRun)
	seen := make(map[string]bool, len(all))
	for _, m := range all {
		require.False(t, seen[m.MissionID], "duplicate id %s", m.MissionID)
		seen[m.MissionID] = true
	}
}
