package memory

import (
	"context"
	"sync"

	"github.com/skyops/missiond/internal/application/ports"
	"github.com/skyops/missiond/internal/domain"
)

// ObservationLog stores uploaded observations in arrival order. It is
// deliberately independent of the mission store: an observation's mission_id
// is recorded as received, with no referential check.
type ObservationLog struct {
	mu  sync.RWMutex
	obs []domain.Observation
}

func NewObservationLog() *ObservationLog {
	return &ObservationLog{}
}

func (s *ObservationLog) Append(ctx context.Context, o domain.Observation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.obs = append(s.obs, o)
	return nil
}

func (s *ObservationLog) List(ctx context.Context) ([]domain.Observation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Observation, len(s.obs))
	copy(out, s.obs)
	return out, nil
}

var _ ports.ObservationLog = (*ObservationLog)(nil)
