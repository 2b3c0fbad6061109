package api

import (
	"embed"
	"html/template"

	"github.com/vytor/movetable/internal/lichess"
)

//go:embed templates
var templateFS embed.FS

func LoadTemplates() (*template.Template, error) {
	funcs := template.FuncMap{
		// gameURL links back to the game on Lichess
		"gameURL": func(id string) string {
			return lichess.HostPrefix + id
		},
	}

	return template.New("base").Funcs(funcs).ParseFS(templateFS,
		"templates/layouts/*.html",
		"templates/pages/*.html",
	)
}
