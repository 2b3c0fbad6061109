package api

import (
	stderrors "errors"
	"net/http"

	"github.com/vytor/movetable/internal/errors"
	"github.com/vytor/movetable/internal/logger"
)

// handleError centralizes error handling for HTTP responses. HTML requests
// get the page back with the error region filled and no table.
func (s *Server) handleError(w http.ResponseWriter, r *http.Request, err error, data pageData) {
	log := logger.FromContext(r.Context())

	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		appErr = errors.NewInternalError(err)
	}

	// Log based on status code
	if appErr.Status >= 500 {
		log.Error("server error: %v", appErr)
	} else if appErr.Status >= 400 {
		log.Warn("client error: %v", appErr)
	} else {
		log.Debug("error: %v", appErr)
	}

	if wantsJSON(r) {
		writeJSON(w, appErr.Status, map[string]any{
			"error": map[string]any{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	// a replaced submission's page is never shown
	if appErr.Code == errors.ErrCodeSuperseded {
		w.WriteHeader(appErr.Status)
		return
	}

	if data == nil {
		data = pageData{}
	}
	data["error"] = appErr.Message
	delete(data, "game")
	delete(data, "table")
	s.render(w, r, appErr.Status, indexPage, data)
}
