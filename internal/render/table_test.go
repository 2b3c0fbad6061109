package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/movetable/internal/models"
	"github.com/vytor/movetable/internal/render"
)

func sampleMoves() []models.MoveRecord {
	return []models.MoveRecord{
		{Turn: 1, Piece: models.Pawn, Side: models.White, From: "e2", To: "e4", Notation: "e4",
			PositionAfter: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1"},
		{Turn: 1, Piece: models.Pawn, Side: models.Black, From: "e7", To: "e5", Notation: "e5",
			PositionAfter: "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2"},
		{Turn: 2, Piece: models.Knight, Side: models.White, From: "g1", To: "f3", Notation: "Nf3",
			PositionAfter: "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2"},
	}
}

func TestTable_EmptyRendersNotice(t *testing.T) {
	for _, moves := range [][]models.MoveRecord{nil, {}} {
		out, err := render.Table(moves)
		require.NoError(t, err)
		assert.Equal(t, render.NoMovesNotice, string(out))
		assert.NotContains(t, string(out), "<table")
	}
}

func TestTable_HeaderOrder(t *testing.T) {
	out, err := render.Table(sampleMoves())
	require.NoError(t, err)

	html := string(out)
	last := -1
	for _, col := range []string{"Turn", "Piece", "Color", "From", "To", "Notation", "Position after"} {
		idx := strings.Index(html, "<th>"+col+"</th>")
		require.GreaterOrEqual(t, idx, 0, "missing column %s", col)
		assert.Greater(t, idx, last, "column %s out of order", col)
		last = idx
	}
}

func TestTable_OneRowPerMove(t *testing.T) {
	out, err := render.Table(sampleMoves())
	require.NoError(t, err)

	html := string(out)
	// one header row plus one row per move
	assert.Equal(t, 4, strings.Count(html, "<tr>"))
	assert.Contains(t, html, "<td>N</td>")
	assert.Contains(t, html, "<td>P</td>")
	assert.Contains(t, html, "<td>white</td>")
	assert.Contains(t, html, "<td>black</td>")
	assert.Contains(t, html, "<td>Nf3</td>")
	assert.Contains(t, html, "<code>rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2</code>")
}

func TestTable_EscapesFields(t *testing.T) {
	moves := []models.MoveRecord{{
		Turn:          1,
		Piece:         "<b>",
		Side:          models.White,
		From:          "e2",
		To:            "e4",
		Notation:      `<script>alert("x")</script>`,
		PositionAfter: `"><img src=x onerror=alert(1)>`,
	}}

	out, err := render.Table(moves)
	require.NoError(t, err)

	html := string(out)
	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "<img")
	assert.NotContains(t, html, "<B>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "&lt;B&gt;")
}
