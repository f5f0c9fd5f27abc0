package memory

import (
	"context"
	"sync"

	"github.com/skyops/missiond/internal/application/ports"
	"github.com/skyops/missiond/internal/domain"
)

// SimulationLog is the in-memory append-only record of simulation runs.
type SimulationLog struct {
	mu   sync.RWMutex
	runs []domain.SimulationRun
}

func NewSimulationLog() *SimulationLog {
	return &SimulationLog{}
}

// Append assigns the next simulation ID and stores the run.
func (s *SimulationLog) Append(ctx context.Context, run *domain.SimulationRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	run.SimulationID = len(s.runs) + 1
	s.runs = append(s.runs, *run)
	return nil
}

// List returns a snapshot copy of all runs in creation order.
func (s *SimulationLog) List(ctx context.Context) ([]domain.SimulationRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.SimulationRun, len(s.runs))
	copy(out, s.runs)
	return out, nil
}

var _ ports.SimulationLog = (*SimulationLog)(nil)
