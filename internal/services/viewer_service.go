package services

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/vytor/movetable/internal/errors"
	"github.com/vytor/movetable/internal/inflight"
	"github.com/vytor/movetable/internal/lichess"
	"github.com/vytor/movetable/internal/logger"
	"github.com/vytor/movetable/internal/models"
	"github.com/vytor/movetable/internal/pgn"
)

// ViewerService runs the resolve → fetch → extract pipeline.
type ViewerService interface {
	// Submit resolves a Lichess game URL and returns the game's move details.
	Submit(ctx context.Context, rawURL string) (*models.GameSummary, error)
	// Game does the same for a bare game id.
	Game(ctx context.Context, gameID string) (*models.GameSummary, error)
}

type viewerService struct {
	client    lichess.ClientInterface
	extractor *pgn.Extractor
}

// NewViewerService creates a new ViewerService
func NewViewerService(client lichess.ClientInterface, extractor *pgn.Extractor) ViewerService {
	if extractor == nil {
		extractor = pgn.NewExtractor(nil)
	}
	return &viewerService{
		client:    client,
		extractor: extractor,
	}
}

func (s *viewerService) Submit(ctx context.Context, rawURL string) (*models.GameSummary, error) {
	log := logger.FromContext(ctx)

	ref, err := lichess.ResolveGameURL(rawURL)
	if err != nil {
		log.Debug("rejected url %q: %v", rawURL, err)
		return nil, err
	}
	return s.load(ctx, ref.GameID)
}

func (s *viewerService) Game(ctx context.Context, gameID string) (*models.GameSummary, error) {
	if err := lichess.ValidateGameID(gameID); err != nil {
		return nil, err
	}
	return s.load(ctx, gameID)
}

func (s *viewerService) load(ctx context.Context, gameID string) (*models.GameSummary, error) {
	log := logger.FromContext(ctx).WithField("game_id", gameID)
	start := time.Now()

	text, err := s.client.FetchPGN(ctx, gameID)
	if err != nil {
		return nil, classifyFetchError(ctx, err)
	}

	summary, err := s.extractor.ExtractGame(ctx, gameID, text)
	if err != nil {
		log.Warn("failed to extract moves: %v", err)
		return nil, err
	}

	log.Info("extracted %d moves in %v", len(summary.Moves), time.Since(start))
	return summary, nil
}

// classifyFetchError maps a fetch failure onto the error taxonomy.
func classifyFetchError(ctx context.Context, err error) error {
	if inflight.Superseded(ctx) {
		return errors.NewSupersededError(err)
	}

	var statusErr *lichess.StatusError
	if stderrors.As(err, &statusErr) {
		return errors.NewHTTPError(statusErr.StatusCode, statusErr.Reason)
	}
	return errors.NewNetworkError(err)
}
