package server

import (
	"encoding/json"
	"net/http"
)

// handleHealth reports process and database health. The database probe runs a
// trivial query; a failure degrades the whole response to 500.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":   "healthy",
		"database": "unhealthy",
	}
	status := http.StatusOK

	if err := s.portfolioDB.QuickCheck(r.Context()); err != nil {
		s.log.Error().Err(err).Msg("Health check failed")
		response["status"] = "unhealthy"
		response["database_error"] = err.Error()
		status = http.StatusInternalServerError
	} else {
		response["database"] = "healthy"
	}

	s.writeJSON(w, status, response)
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
