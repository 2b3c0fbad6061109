// Package render turns move-detail sequences into HTML fragments.
package render

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/vytor/movetable/internal/models"
)

// NoMovesNotice is rendered instead of an empty table.
const NoMovesNotice = `<p class="notice">No moves found.</p>`

// Columns is the fixed header order of the move table.
var Columns = []string{"Turn", "Piece", "Color", "From", "To", "Notation", "Position after"}

var funcs = template.FuncMap{
	"upper": func(p models.PieceType) string { return strings.ToUpper(string(p)) },
}

// html/template escapes every field, so notation or FEN text from a hostile
// PGN cannot inject markup.
var tableTmpl = template.Must(template.New("moves").Funcs(funcs).Parse(`<table class="moves">
  <thead>
    <tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
  </thead>
  <tbody>
{{- range .Moves}}
    <tr>
      <td>{{.Turn}}</td>
      <td>{{upper .Piece}}</td>
      <td>{{.Side}}</td>
      <td>{{.From}}</td>
      <td>{{.To}}</td>
      <td>{{.Notation}}</td>
      <td><code>{{.PositionAfter}}</code></td>
    </tr>
{{- end}}
  </tbody>
</table>`))

// Table renders one row per move, or the "no moves found" notice.
func Table(moves []models.MoveRecord) (template.HTML, error) {
	if len(moves) == 0 {
		return template.HTML(NoMovesNotice), nil
	}

	var buf bytes.Buffer
	err := tableTmpl.Execute(&buf, struct {
		Columns []string
		Moves   []models.MoveRecord
	}{Columns, moves})
	if err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
