package pgn

import (
	"context"
	"fmt"

	"github.com/vytor/movetable/internal/errors"
	"github.com/vytor/movetable/internal/logger"
	"github.com/vytor/movetable/internal/models"
)

// Extractor turns PGN text into per-move records.
//
// Move metadata is read from one engine instance that loads the whole game.
// Positions are recomputed by replaying every ply, in order, on a second
// instance; each position depends on all plies before it.
type Extractor struct {
	newEngine EngineFactory
}

// NewExtractor returns an Extractor backed by the given engine factory.
// A nil factory selects the corentings/chess engine.
func NewExtractor(factory EngineFactory) *Extractor {
	if factory == nil {
		factory = NewChessEngine
	}
	return &Extractor{newEngine: factory}
}

// Extract replays the game and returns one MoveRecord per ply, in play order.
// A game with tag pairs but no moves yields an empty, non-nil slice.
func (x *Extractor) Extract(ctx context.Context, pgnText string) ([]models.MoveRecord, error) {
	moves, _, err := x.extract(ctx, pgnText)
	return moves, err
}

// ExtractGame is Extract plus the game summary read from the tag pairs.
func (x *Extractor) ExtractGame(ctx context.Context, gameID, pgnText string) (*models.GameSummary, error) {
	moves, reader, err := x.extract(ctx, pgnText)
	if err != nil {
		return nil, err
	}

	headers := ParsePGNHeaders(pgnText)
	summary := &models.GameSummary{
		GameID: gameID,
		White:  headers["White"],
		Black:  headers["Black"],
		Result: headers["Result"],
		Event:  headers["Event"],
		Date:   headers["Date"],
		Moves:  moves,
	}
	summary.ECOCode, summary.Opening = DetectOpening(reader, headers)
	return summary, nil
}

func (x *Extractor) extract(ctx context.Context, pgnText string) ([]models.MoveRecord, Engine, error) {
	log := logger.FromContext(ctx).WithPrefix("pgn")

	reader := x.newEngine()
	if err := reader.Load(pgnText); err != nil {
		log.Warn("failed to load pgn: %v", err)
		return nil, nil, errors.NewParseError(err)
	}
	history := reader.History()
	log.Debug("loaded game with %d plies", len(history))

	replay := x.newEngine()
	if err := replay.Reset(reader.StartPosition()); err != nil {
		log.Warn("failed to set start position: %v", err)
		return nil, nil, errors.NewParseError(err)
	}

	moves := make([]models.MoveRecord, 0, len(history))
	for i, ply := range history {
		if err := replay.Apply(ply); err != nil {
			log.Warn("replay failed at ply %d (%s): %v", i+1, ply.SAN, err)
			return nil, nil, errors.NewParseError(fmt.Errorf("ply %d %s: %w", i+1, ply.SAN, err))
		}
		moves = append(moves, models.MoveRecord{
			Turn:          models.TurnForPly(i),
			Piece:         ply.Piece,
			Side:          models.SideForPly(i),
			From:          ply.From,
			To:            ply.To,
			Notation:      ply.SAN,
			PositionAfter: replay.Position(),
		})
	}

	return moves, reader, nil
}

// openingNamer is implemented by engines that know opening names.
type openingNamer interface {
	Opening() (code, title string)
}

// DetectOpening prefers the engine's ECO book and falls back to the ECO and
// Opening tag pairs Lichess writes into its exports.
func DetectOpening(engine Engine, headers map[string]string) (code, title string) {
	if namer, ok := engine.(openingNamer); ok {
		code, title = namer.Opening()
	}
	if code == "" {
		code = headers["ECO"]
	}
	if title == "" {
		title = headers["Opening"]
	}
	return code, title
}
