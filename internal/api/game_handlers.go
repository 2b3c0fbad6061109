package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/movetable/internal/logger"
)

// handleGameMoves returns the move details of a game as JSON.
func (s *Server) handleGameMoves(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	log := logger.FromContext(r.Context()).WithField("game_id", id)
	log.Debug("fetching moves")

	summary, err := s.ViewerService.Game(r.Context(), id)
	if err != nil {
		s.handleError(w, r, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
