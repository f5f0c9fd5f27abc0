package missions

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/skyops/missiond/internal/application/ports"
	"github.com/skyops/missiond/internal/domain"
)

// Field distributions for synthetic missions.
var (
	simYearStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	simYearEnd   = time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
)

const (
	simLatMin = 4.0
	simLatMax = 6.0
	simLonMin = -75.5
	simLonMax = -73.5

	simMaxFlightMinutes = 180
)

// Simulate generates synthetic missions and records each batch as one
// simulation run. The random source is injected so tests can seed it; access
// to it is serialized because *rand.Rand is not safe for concurrent use.
type Simulate struct {
	missions ports.MissionRepository
	log      ports.SimulationLog

	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func NewSimulate(missions ports.MissionRepository, log ports.SimulationLog, rng *rand.Rand) *Simulate {
	return &Simulate{
		missions: missions,
		log:      log,
		rng:      rng,
		now:      time.Now,
	}
}

func (uc *Simulate) Execute(ctx context.Context, count int) (*domain.SimulationRun, error) {
	generated := make([]domain.Mission, 0, count)
	for i := 0; i < count; i++ {
		m := uc.synthesize()
		// Insert allocates the mission ID atomically with the append.
		if err := uc.missions.Insert(ctx, &m); err != nil {
			return nil, err
		}
		generated = append(generated, m)
	}
	run := &domain.SimulationRun{
		RequestedCount: count,
		GeneratedAt:    uc.now().UTC().Format(domain.TimeLayout),
		Missions:       generated,
	}
	if err := uc.log.Append(ctx, run); err != nil {
		return nil, err
	}
	return run, nil
}

// synthesize draws one mission with no ID; the store assigns it on insert.
func (uc *Simulate) synthesize() domain.Mission {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	start := simYearStart.Add(time.Duration(uc.rng.Float64() * float64(simYearEnd.Sub(simYearStart)))).Truncate(time.Second)
	status := domain.MissionStatuses[uc.rng.Intn(len(domain.MissionStatuses))]
	m := domain.Mission{
		SensorType: domain.SensorTypes[uc.rng.Intn(len(domain.SensorTypes))],
		StartTime:  start.Format(domain.TimeLayout),
		GPSLat:     round6(simLatMin + uc.rng.Float64()*(simLatMax-simLatMin)),
		GPSLon:     round6(simLonMin + uc.rng.Float64()*(simLonMax-simLonMin)),
		Status:     status,
		Progress:   uc.rng.Intn(101),
	}
	if status == domain.StatusCompleted {
		flight := time.Duration(1+uc.rng.Intn(simMaxFlightMinutes)) * time.Minute
		m.EndTime = start.Add(flight).Format(domain.TimeLayout)
	}
	return m
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

// ListRuns returns the simulation log in creation order.
type ListRuns struct {
	log ports.SimulationLog
}

func NewListRuns(log ports.SimulationLog) *ListRuns {
	return &ListRuns{log: log}
}

func (uc *ListRuns) Execute(ctx context.Context) ([]domain.SimulationRun, error) {
	return uc.log.List(ctx)
}
