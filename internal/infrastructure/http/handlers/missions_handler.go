package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/skyops/missiond/internal/application/missions"
	"github.com/skyops/missiond/internal/domain"
	domerrors "github.com/skyops/missiond/internal/domain/errors"
	"github.com/skyops/missiond/internal/infrastructure/http/middleware"
)

// maxSimulateCount caps one simulate call; the store is unbounded process
// memory, so a runaway count would otherwise pin the process.
const maxSimulateCount = 10000

// MissionsHandler handles mission status, data upload, query and simulation.
// All routes sit behind the auth middleware.
type MissionsHandler struct {
	upload   *missions.Upload
	status   *missions.Status
	query    *missions.Query
	simulate *missions.Simulate
	listRuns *missions.ListRuns
	validate *validator.Validate
	log      zerolog.Logger
}

func NewMissionsHandler(upload *missions.Upload, status *missions.Status, query *missions.Query, simulate *missions.Simulate, listRuns *missions.ListRuns, log zerolog.Logger) *MissionsHandler {
	return &MissionsHandler{
		upload:   upload,
		status:   status,
		query:    query,
		simulate: simulate,
		listRuns: listRuns,
		validate: validator.New(),
		log:      log,
	}
}

func (h *MissionsHandler) Upload(w http.ResponseWriter, r *http.Request) {
	var body struct {
		MissionID  string   `json:"mission_id" validate:"required"`
		Timestamp  string   `json:"timestamp" validate:"required"`
		GPSLat     float64  `json:"gps_lat" validate:"gte=-90,lte=90"`
		GPSLon     float64  `json:"gps_lon" validate:"gte=-180,lte=180"`
		GPSAlt     *float64 `json:"gps_alt"`
		SensorType string   `json:"sensor_type" validate:"required"`
		DataURL    string   `json:"data_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}
	obs := domain.Observation{
		MissionID:  body.MissionID,
		Timestamp:  body.Timestamp,
		GPSLat:     body.GPSLat,
		GPSLon:     body.GPSLon,
		GPSAlt:     body.GPSAlt,
		SensorType: body.SensorType,
		DataURL:    body.DataURL,
	}
	if err := h.upload.Execute(r.Context(), obs); err != nil {
		h.log.Error().Err(err).Msg("upload failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "success",
		"message":  "Data received successfully",
		"received": obs,
	})
}

func (h *MissionsHandler) Status(w http.ResponseWriter, r *http.Request) {
	missionID := chi.URLParam(r, "missionID")
	m, err := h.status.Execute(r.Context(), missionID)
	if err != nil {
		if errors.Is(err, domerrors.ErrMissionNotFound) {
			writeErr(w, http.StatusNotFound, "mission '"+missionID+"' not found")
			return
		}
		h.log.Error().Err(err).Msg("mission status failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *MissionsHandler) Query(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var f missions.Filters
	if v := q.Get("start_date"); v != "" {
		f.StartDate = &v
	}
	if v := q.Get("sensor_type"); v != "" {
		f.SensorType = &v
	}
	if v := q.Get("lat"); v != "" {
		lat, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "invalid lat")
			return
		}
		f.Lat = &lat
	}
	if v := q.Get("lon"); v != "" {
		lon, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "invalid lon")
			return
		}
		f.Lon = &lon
	}
	result, err := h.query.Execute(r.Context(), f)
	if err != nil {
		h.log.Error().Err(err).Msg("query failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"filters_applied": result.Filters,
		"total_found":     result.TotalFound,
		"results":         result.Results,
	})
}

func (h *MissionsHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	count, err := strconv.Atoi(chi.URLParam(r, "num"))
	if err != nil || count < 0 {
		writeErr(w, http.StatusBadRequest, "invalid mission count")
		return
	}
	if count > maxSimulateCount {
		writeErr(w, http.StatusBadRequest, "mission count too large")
		return
	}
	run, err := h.simulate.Execute(r.Context(), count)
	if err != nil {
		// A duplicate ID here means the allocator broke; fail the request,
		// not the process.
		h.log.Error().Err(err).Msg("simulate failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	middleware.RecordMissionsGenerated(len(run.Missions))
	h.log.Info().Int("simulation_id", run.SimulationID).Int("count", count).Msg("simulation completed")
	writeJSON(w, http.StatusOK, run)
}

func (h *MissionsHandler) Simulations(w http.ResponseWriter, r *http.Request) {
	runs, err := h.listRuns.Execute(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list simulations failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, runs)
}
