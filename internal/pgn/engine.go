package pgn

import "github.com/vytor/movetable/internal/models"

// Engine is the rules-aware chess engine the extractor relies on.
//
// An instance either loads a PGN (and then reports its plies through History)
// or has plies applied to it one at a time, reporting the resulting position
// as a FEN string.
type Engine interface {
	Load(pgnText string) error
	History() []models.Ply
	// StartPosition is the FEN the loaded game starts from.
	StartPosition() string
	// Reset puts the engine at the given FEN, or the standard start when fen is "".
	Reset(fen string) error
	Apply(ply models.Ply) error
	Position() string
}

// EngineFactory creates a fresh, independent Engine.
type EngineFactory func() Engine
