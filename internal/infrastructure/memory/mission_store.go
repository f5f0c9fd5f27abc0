package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/skyops/missiond/internal/application/ports"
	"github.com/skyops/missiond/internal/domain"
	domerrors "github.com/skyops/missiond/internal/domain/errors"
)

// idBase offsets mission numbering: the first mission is M1001.
const idBase = 1000

// MissionStore is an in-memory ports.MissionRepository. IDs are allocated
// from a monotonic counter under the store lock, so allocation and insertion
// are one atomic step and concurrent inserts always get distinct, densely
// increasing IDs.
type MissionStore struct {
	mu    sync.RWMutex
	byID  map[string]domain.Mission
	order []string // mission IDs in insertion order
}

func NewMissionStore() *MissionStore {
	return &MissionStore{byID: make(map[string]domain.Mission)}
}

// Insert validates the mission and appends it. A mission with no ID gets the
// next allocated one; a mission carrying an ID already present is rejected
// with ErrDuplicateMissionID.
func (s *MissionStore) Insert(ctx context.Context, mission *domain.Mission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if mission.MissionID == "" {
		mission.MissionID = fmt.Sprintf("M%d", idBase+len(s.order)+1)
	}
	if _, exists := s.byID[mission.MissionID]; exists {
		return domerrors.ErrDuplicateMissionID
	}
	if err := mission.Validate(); err != nil {
		return err
	}
	s.byID[mission.MissionID] = *mission
	s.order = append(s.order, mission.MissionID)
	return nil
}

func (s *MissionStore) Get(ctx context.Context, missionID string) (*domain.Mission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.byID[missionID]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

// All returns a snapshot copy in insertion order. Inserts that land after the
// copy is taken are not visible to the returned slice.
func (s *MissionStore) All(ctx context.Context) ([]domain.Mission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Mission, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out, nil
}

var _ ports.MissionRepository = (*MissionStore)(nil)
