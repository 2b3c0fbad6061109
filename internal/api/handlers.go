package api

import (
	"bytes"
	"html/template"
	"net/http"
	"time"

	"github.com/vytor/movetable/internal/inflight"
	"github.com/vytor/movetable/internal/logger"
	"github.com/vytor/movetable/internal/services"
)

type Server struct {
	ViewerService      services.ViewerService
	Registry           *inflight.Registry
	Templates          *template.Template
	RequestTimeout     time.Duration
	CORSAllowedOrigins []string
}

type pageData map[string]any

// render executes a page template into a buffer first so a template failure
// still produces a clean 500.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, data pageData) {
	if data == nil {
		data = pageData{}
	}
	if _, ok := data["url"]; !ok {
		data["url"] = ""
	}

	log := logger.FromContext(r.Context())
	var buf bytes.Buffer
	if err := s.Templates.ExecuteTemplate(&buf, name, data); err != nil {
		log.Error("failed to render template %s: %v", name, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
