package ports

import (
	"context"

	"github.com/skyops/missiond/internal/domain"
)

// UserRepository defines storage for operator accounts. GetByEmail returns
// (nil, nil) when there is no such user.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// MissionRepository defines storage for mission records. Insert allocates the
// next mission ID when the record carries none; allocation and insertion are
// atomic, so concurrent inserts never collide. Get returns (nil, nil) when the
// ID is unknown. All returns a point-in-time snapshot in insertion order.
type MissionRepository interface {
	Insert(ctx context.Context, mission *domain.Mission) error
	Get(ctx context.Context, missionID string) (*domain.Mission, error)
	All(ctx context.Context) ([]domain.Mission, error)
}

// SimulationLog is the append-only record of simulation runs. Append assigns
// the monotonic simulation ID.
type SimulationLog interface {
	Append(ctx context.Context, run *domain.SimulationRun) error
	List(ctx context.Context) ([]domain.SimulationRun, error)
}

// ObservationLog stores uploaded sensor observations, independent of the
// mission store.
type ObservationLog interface {
	Append(ctx context.Context, obs domain.Observation) error
	List(ctx context.Context) ([]domain.Observation, error)
}
