package missions

import (
	"context"

	"github.com/skyops/missiond/internal/application/ports"
	"github.com/skyops/missiond/internal/domain"
	domerrors "github.com/skyops/missiond/internal/domain/errors"
)

// Status looks up a single mission by ID.
type Status struct {
	missions ports.MissionRepository
}

func NewStatus(missions ports.MissionRepository) *Status {
	return &Status{missions: missions}
}

func (uc *Status) Execute(ctx context.Context, missionID string) (*domain.Mission, error) {
	m, err := uc.missions.Get(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domerrors.ErrMissionNotFound
	}
	return m, nil
}
