package pgn

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/corentings/chess/v2"
	"github.com/corentings/chess/v2/opening"
	"github.com/vytor/movetable/internal/models"
)

var (
	ErrEmptyPGN     = errors.New("pgn text is empty")
	ErrNotLoaded    = errors.New("engine has no game")
	ErrMalformedTag = errors.New("malformed tag pair")
)

// ChessEngine implements Engine on top of github.com/corentings/chess/v2.
type ChessEngine struct {
	game     *chess.Game
	startFEN string
}

// NewChessEngine returns an engine at the standard starting position.
func NewChessEngine() Engine {
	return &ChessEngine{game: chess.NewGame()}
}

var _ Engine = (*ChessEngine)(nil)

func (e *ChessEngine) Load(pgnText string) error {
	if strings.TrimSpace(pgnText) == "" {
		return ErrEmptyPGN
	}
	headers := ParsePGNHeaders(pgnText)

	// The library refuses tag pairs without a movetext; a game that has not
	// started yet is still a valid, empty game.
	if hasNoMoves(pgnText) {
		if err := checkTagLines(pgnText); err != nil {
			return err
		}
		if err := e.Reset(headers["FEN"]); err != nil {
			return err
		}
		return nil
	}

	opt, err := chess.PGN(strings.NewReader(pgnText))
	if err != nil {
		return err
	}
	e.game = chess.NewGame(opt)
	e.startFEN = headers["FEN"]
	return nil
}

func (e *ChessEngine) History() []models.Ply {
	if e.game == nil {
		return nil
	}
	positions := e.game.Positions()
	if len(positions) == 0 {
		return nil
	}

	moves := e.game.Moves()
	plies := make([]models.Ply, 0, len(moves))
	pos := positions[0]
	for _, mv := range moves {
		piece := pos.Board().Piece(mv.S1())
		plies = append(plies, models.Ply{
			Piece: pieceLetter(piece.Type()),
			Side:  sideOf(piece.Color()),
			From:  squareToString(mv.S1()),
			To:    squareToString(mv.S2()),
			SAN:   chess.AlgebraicNotation{}.Encode(pos, mv),
			UCI:   MoveToUCI(mv),
		})
		pos = pos.Update(mv)
	}
	return plies
}

func (e *ChessEngine) StartPosition() string {
	return e.startFEN
}

func (e *ChessEngine) Reset(fen string) error {
	if fen == "" {
		e.game = chess.NewGame()
		e.startFEN = ""
		return nil
	}
	opt, err := chess.FEN(fen)
	if err != nil {
		return fmt.Errorf("start position %q: %w", fen, err)
	}
	e.game = chess.NewGame(opt)
	e.startFEN = fen
	return nil
}

func (e *ChessEngine) Apply(ply models.Ply) error {
	if e.game == nil {
		return ErrNotLoaded
	}
	mv, err := chess.UCINotation{}.Decode(e.game.Position(), ply.UCI)
	if err != nil {
		return fmt.Errorf("decode %s: %w", ply.UCI, err)
	}
	if err := e.game.Move(mv, nil); err != nil {
		return fmt.Errorf("apply %s: %w", ply.UCI, err)
	}
	return nil
}

func (e *ChessEngine) Position() string {
	if e.game == nil {
		return ""
	}
	return e.game.Position().String()
}

var ecoBook = sync.OnceValue(opening.NewBookECO)

// Opening names the opening of the loaded game from the ECO book.
func (e *ChessEngine) Opening() (code, title string) {
	if e.game == nil || len(e.game.Moves()) == 0 {
		return "", ""
	}
	book := ecoBook()
	if book == nil {
		return "", ""
	}
	if o := book.Find(e.game.Moves()); o != nil {
		return o.Code(), o.Title()
	}
	return "", ""
}

// checkTagLines rejects lines that start a tag pair but do not parse as one.
func checkTagLines(pgnText string) error {
	for _, line := range strings.Split(pgnText, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[") && !headerRe.MatchString(line) {
			return fmt.Errorf("%w: %s", ErrMalformedTag, line)
		}
	}
	return nil
}

func pieceLetter(pt chess.PieceType) models.PieceType {
	switch pt {
	case chess.Pawn:
		return models.Pawn
	case chess.Knight:
		return models.Knight
	case chess.Bishop:
		return models.Bishop
	case chess.Rook:
		return models.Rook
	case chess.Queen:
		return models.Queen
	case chess.King:
		return models.King
	default:
		return ""
	}
}

func sideOf(c chess.Color) models.Side {
	if c == chess.Black {
		return models.Black
	}
	return models.White
}
