package domain

import (
	"fmt"
	"time"
)

// SensorType identifies the payload carried on a mission.
type SensorType string

const (
	SensorThermal       SensorType = "thermal"
	SensorMultispectral SensorType = "multispectral"
	SensorLidar         SensorType = "lidar"
)

// SensorTypes lists every valid sensor type.
var SensorTypes = []SensorType{SensorThermal, SensorMultispectral, SensorLidar}

func (s SensorType) Valid() bool {
	switch s {
	case SensorThermal, SensorMultispectral, SensorLidar:
		return true
	}
	return false
}

// MissionStatus is the lifecycle state assigned once at creation. There is no
// transition graph; missions are never mutated after insertion.
type MissionStatus string

const (
	StatusPending    MissionStatus = "pending"
	StatusProcessing MissionStatus = "processing"
	StatusCompleted  MissionStatus = "completed"
)

// MissionStatuses lists every valid status.
var MissionStatuses = []MissionStatus{StatusPending, StatusProcessing, StatusCompleted}

func (s MissionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted:
		return true
	}
	return false
}

// TimeLayout renders mission timestamps: ISO-8601 UTC, whole seconds, Z suffix.
const TimeLayout = "2006-01-02T15:04:05Z"

// Mission is a flight record. MissionID is allocated by the mission store in
// strictly increasing order (M1001, M1002, ...) and never reused. StartTime
// and EndTime are kept as rendered strings so date filtering is a plain
// lexicographic comparison.
type Mission struct {
	MissionID  string        `json:"mission_id"`
	SensorType SensorType    `json:"sensor_type"`
	StartTime  string        `json:"start_time"`
	GPSLat     float64       `json:"gps_lat"`
	GPSLon     float64       `json:"gps_lon"`
	Status     MissionStatus `json:"status"`
	Progress   int           `json:"progress"`
	EndTime    string        `json:"end_time,omitempty"`
}

// Validate checks field ranges and the end-time/status invariant. The mission
// store rejects records that fail here, so callers cannot smuggle malformed
// entries past the boundary.
func (m *Mission) Validate() error {
	if !m.SensorType.Valid() {
		return fmt.Errorf("invalid sensor_type %q", m.SensorType)
	}
	if !m.Status.Valid() {
		return fmt.Errorf("invalid status %q", m.Status)
	}
	if _, err := time.Parse(TimeLayout, m.StartTime); err != nil {
		return fmt.Errorf("invalid start_time %q: %w", m.StartTime, err)
	}
	if m.GPSLat < -90 || m.GPSLat > 90 {
		return fmt.Errorf("gps_lat %v out of range", m.GPSLat)
	}
	if m.GPSLon < -180 || m.GPSLon > 180 {
		return fmt.Errorf("gps_lon %v out of range", m.GPSLon)
	}
	if m.Progress < 0 || m.Progress > 100 {
		return fmt.Errorf("progress %d out of range", m.Progress)
	}
	if m.Status == StatusCompleted {
		if m.EndTime == "" {
			return fmt.Errorf("completed mission missing end_time")
		}
		if _, err := time.Parse(TimeLayout, m.EndTime); err != nil {
			return fmt.Errorf("invalid end_time %q: %w", m.EndTime, err)
		}
		if m.EndTime <= m.StartTime {
			return fmt.Errorf("end_time %q not after start_time %q", m.EndTime, m.StartTime)
		}
	} else if m.EndTime != "" {
		return fmt.Errorf("end_time set on %s mission", m.Status)
	}
	return nil
}

// SimulationRun is one entry in the append-only simulation log: the batch of
// missions produced by a single simulate call. SimulationID is monotonic.
type SimulationRun struct {
	SimulationID   int       `json:"simulation_id"`
	RequestedCount int       `json:"missions_generated"`
	GeneratedAt    string    `json:"timestamp"`
	Missions       []Mission `json:"missions"`
}

// Observation is an uploaded sensor reading. Its MissionID is deliberately
// not checked against the mission store; observations may reference missions
// the system has not yet seen.
type Observation struct {
	MissionID  string   `json:"mission_id"`
	Timestamp  string   `json:"timestamp"`
	GPSLat     float64  `json:"gps_lat"`
	GPSLon     float64  `json:"gps_lon"`
	GPSAlt     *float64 `json:"gps_alt,omitempty"`
	SensorType string   `json:"sensor_type"`
	DataURL    string   `json:"data_url,omitempty"`
}
