package handlers

import "net/http"

// HealthHandler serves /health. All stores live in process memory, so there
// is nothing external to probe; a response is the health check.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
