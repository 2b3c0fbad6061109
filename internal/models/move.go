package models

// PieceType is the engine's lower-case piece letter.
type PieceType string

const (
	Pawn   PieceType = "p"
	Knight PieceType = "n"
	Bishop PieceType = "b"
	Rook   PieceType = "r"
	Queen  PieceType = "q"
	King   PieceType = "k"
)

// Side is the color that made a move.
type Side string

const (
	White Side = "white"
	Black Side = "black"
)

// SideForPly returns the side to move at the zero-based ply index.
func SideForPly(index int) Side {
	if index%2 == 0 {
		return White
	}
	return Black
}

// TurnForPly returns the full-move number for the zero-based ply index.
func TurnForPly(index int) int {
	return index/2 + 1
}

// Ply is a single move as reported by the chess engine.
type Ply struct {
	Piece PieceType `json:"piece"`
	Side  Side      `json:"side"`
	From  string    `json:"from"`
	To    string    `json:"to"`
	SAN   string    `json:"san"`
	UCI   string    `json:"uci"`
}

// MoveRecord is one row of the move-detail table.
type MoveRecord struct {
	Turn          int       `json:"turn"`
	Piece         PieceType `json:"piece"`
	Side          Side      `json:"color"`
	From          string    `json:"from"`
	To            string    `json:"to"`
	Notation      string    `json:"san"`
	PositionAfter string    `json:"fen"`
}
