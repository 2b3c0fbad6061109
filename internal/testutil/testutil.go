package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// ScholarsMatePGN is a complete seven-ply game as Lichess exports it.
const ScholarsMatePGN = `[Event "Casual Blitz game"]
[Site "https://lichess.org/abcdefgh"]
[Date "2024.05.01"]
[White "alice"]
[Black "bob"]
[Result "1-0"]
[ECO "C20"]
[Opening "King's Pawn Game: Wayward Queen Attack"]

1. e4 e5 2. Qh5 Nc6 3. Bc4 Nf6 4. Qxf7# 1-0
`

// ScholarsMateFinalFEN is the position after the last ply of ScholarsMatePGN.
const ScholarsMateFinalFEN = "r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4"

// LichessServer is a fake PGN export endpoint.
type LichessServer struct {
	*httptest.Server

	mu       sync.Mutex
	games    map[string]string
	requests []string
}

// NewLichessServer serves the given id → PGN map at /game/export/{id}.pgn
// and answers 404 for anything else. It is closed when the test ends.
func NewLichessServer(t *testing.T, games map[string]string) *LichessServer {
	t.Helper()
	ls := &LichessServer{games: games}
	ls.Server = httptest.NewServer(http.HandlerFunc(ls.serve))
	t.Cleanup(ls.Close)
	return ls
}

func (ls *LichessServer) serve(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/game/export/"), ".pgn")

	ls.mu.Lock()
	ls.requests = append(ls.requests, id)
	body, ok := ls.games[id]
	ls.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/x-chess-pgn")
	w.Write([]byte(body))
}

// Requests returns the game ids requested so far.
func (ls *LichessServer) Requests() []string {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return append([]string(nil), ls.requests...)
}
