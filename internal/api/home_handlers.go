package api

import (
	"context"
	"net/http"

	"github.com/vytor/movetable/internal/errors"
	"github.com/vytor/movetable/internal/inflight"
	"github.com/vytor/movetable/internal/logger"
	"github.com/vytor/movetable/internal/render"
)

const indexPage = "pages/index.html"

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	logger.FromContext(r.Context()).Debug("rendering home page")
	s.render(w, r, http.StatusOK, indexPage, nil)
}

// handleMoves runs one submission of the form. A newer submission from the
// same session cancels this one, and the cancelled request renders nothing.
func (s *Server) handleMoves(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		s.handleError(w, r, errors.NewBadRequestError("invalid form submission"), nil)
		return
	}
	rawURL := r.PostForm.Get("url")
	data := pageData{"url": rawURL}

	ctx, done := s.Registry.Begin(r.Context(), sessionFromContext(r.Context()))
	defer done()

	summary, err := s.ViewerService.Submit(ctx, rawURL)
	if err == nil && inflight.Superseded(ctx) {
		err = errors.NewSupersededError(context.Cause(ctx))
	}
	if err != nil {
		s.handleError(w, r, err, data)
		return
	}

	table, err := render.Table(summary.Moves)
	if err != nil {
		s.handleError(w, r, errors.NewInternalError(err), data)
		return
	}

	log.WithField("game_id", summary.GameID).Debug("rendering %d moves", len(summary.Moves))
	data["game"] = summary
	data["table"] = table
	s.render(w, r, http.StatusOK, indexPage, data)
}
