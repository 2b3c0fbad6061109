package api

import (
	"net/http"
)

// handleHealth is a liveness probe. The service keeps no state worth
// checking, so a running process is a healthy one.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
