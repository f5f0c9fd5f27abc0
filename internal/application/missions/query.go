package missions

import (
	"context"
	"math"

	"github.com/skyops/missiond/internal/application/ports"
	"github.com/skyops/missiond/internal/domain"
)

// gpsTolerance is the proximity window for lat/lon filters, roughly 111 m.
const gpsTolerance = 0.001

// Filters holds the recognized query predicates. A nil field imposes no
// constraint; set fields combine by logical AND.
type Filters struct {
	StartDate  *string  `json:"start_date"`
	SensorType *string  `json:"sensor_type"`
	Lat        *float64 `json:"lat"`
	Lon        *float64 `json:"lon"`
}

type QueryResult struct {
	Filters    Filters
	TotalFound int
	Results    []domain.Mission
}

// Query filters a snapshot of the mission store. Each predicate is applied
// independently, so the result is a pure intersection regardless of order.
type Query struct {
	missions ports.MissionRepository
}

func NewQuery(missions ports.MissionRepository) *Query {
	return &Query{missions: missions}
}

func (uc *Query) Execute(ctx context.Context, f Filters) (*QueryResult, error) {
	snapshot, err := uc.missions.All(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]domain.Mission, 0, len(snapshot))
	for _, m := range snapshot {
		if f.StartDate != nil && m.StartTime < *f.StartDate {
			continue
		}
		if f.SensorType != nil && string(m.SensorType) != *f.SensorType {
			continue
		}
		if f.Lat != nil && math.Abs(m.GPSLat-*f.Lat) > gpsTolerance {
			continue
		}
		if f.Lon != nil && math.Abs(m.GPSLon-*f.Lon) > gpsTolerance {
			continue
		}
		results = append(results, m)
	}
	return &QueryResult{Filters: f, TotalFound: len(results), Results: results}, nil
}
