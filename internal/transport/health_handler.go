// Package transport exposes HTTP handlers.
package transport

import (
	"encoding/json"
	"net/http"
)

// HealthResponse is the body returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// HealthHandler reports process liveness.
type HealthHandler struct{}

// NewHealthHandler returns a HealthHandler instance.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// ServeHTTP answers GET and HEAD with {"status":"ok"}.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_ = json.NewEncoder(w).Encode(HealthResponse{Status: "ok"})
}
