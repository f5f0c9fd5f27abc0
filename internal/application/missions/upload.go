package missions

import (
	"context"

	"github.com/skyops/missiond/internal/application/ports"
	"github.com/skyops/missiond/internal/domain"
)

// Upload appends a sensor observation to the observation log. The referenced
// mission_id is recorded as-is: observations may arrive for missions the
// store has never seen, and that decoupling is intentional.
type Upload struct {
	observations ports.ObservationLog
}

func NewUpload(observations ports.ObservationLog) *Upload {
	return &Upload{observations: observations}
}

func (uc *Upload) Execute(ctx context.Context, obs domain.Observation) error {
	return uc.observations.Append(ctx, obs)
}
