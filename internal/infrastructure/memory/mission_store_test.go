package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyops/missiond/internal/domain"
	domerrors "github.com/skyops/missiond/internal/domain/errors"
)

func validMission() domain.Mission {
	return domain.Mission{
		SensorType: domain.SensorThermal,
		StartTime:  "2025-03-15T10:00:00Z",
		GPSLat:     4.5,
		GPSLon:     -74.1,
		Status:     domain.StatusPending,
		Progress:   10,
	}
}

func TestMissionStore_InsertAllocatesDenseIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewMissionStore()
	for i := 1; i <= 5; i++ {
		m := validMission()
		require.NoError(t, s.Insert(ctx, &m))
		assert.Equal(t, fmt.Sprintf("M%d", 1000+i), m.MissionID)
	}
}

func TestMissionStore_ConcurrentInsertUniqueIDs(t *testing.T) {
	t.Parallel()

	const n = 200
	ctx := context.Background()
	s := NewMissionStore()

	var wg sync.WaitGroup
	ids := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m := validMission()
			if err := s.Insert(ctx, &m); err == nil {
				ids <- m.MissionID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		require.False(t, seen[id], "duplicate mission id %s", id)
		seen[id] = true
	}
	require.Len(t, seen, n)
	// Dense allocation: every ID in M1001..M1000+n was handed out exactly once.
	for i := 1; i <= n; i++ {
		assert.True(t, seen[fmt.Sprintf("M%d", 1000+i)])
	}
}

func TestMissionStore_DuplicateExplicitID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewMissionStore()
	m := validMission()
	require.NoError(t, s.Insert(ctx, &m))

	dup := validMission()
	dup.MissionID = m.MissionID
	err := s.Insert(ctx, &dup)
	require.ErrorIs(t, err, domerrors.ErrDuplicateMissionID)
}

func TestMissionStore_RejectsInvalidRecords(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewMissionStore()

	tests := []struct {
		name   string
		mutate func(*domain.Mission)
	}{
		{"bad sensor", func(m *domain.Mission) { m.SensorType = "sonar" }},
		{"bad status", func(m *domain.Mission) { m.Status = "archived" }},
		{"lat out of range", func(m *domain.Mission) { m.GPSLat = 91 }},
		{"lon out of range", func(m *domain.Mission) { m.GPSLon = -181 }},
		{"progress out of range", func(m *domain.Mission) { m.Progress = 101 }},
		{"bad start time", func(m *domain.Mission) { m.StartTime = "yesterday" }},
		{"completed without end time", func(m *domain.Mission) { m.Status = domain.StatusCompleted }},
		{"end time on pending", func(m *domain.Mission) { m.EndTime = "2025-03-15T11:00:00Z" }},
		{"end time before start", func(m *domain.Mission) {
			m.Status = domain.StatusCompleted
			m.EndTime = "2025-03-15T09:00:00Z"
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMission()
			tt.mutate(&m)
			require.Error(t, s.Insert(ctx, &m))
		})
	}

	all, err := s.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "rejected records must not be stored")
}

func TestMissionStore_GetAndSnapshot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewMissionStore()
	m := validMission()
	require.NoError(t, s.Insert(ctx, &m))

	got, err := s.Get(ctx, m.MissionID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, m, *got)

	missing, err := s.Get(ctx, "M9999")
	require.NoError(t, err)
	assert.Nil(t, missing)

	// Snapshot semantics: inserts after All are invisible to the snapshot.
	snapshot, err := s.All(ctx)
	require.NoError(t, err)
	later := validMission()
	require.NoError(t, s.Insert(ctx, &later))
	assert.Len(t, snapshot, 1)
}
