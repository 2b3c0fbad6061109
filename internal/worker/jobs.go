package worker

import (
	"context"

	"github.com/vytor/movetable/internal/lichess"
)

// FetchPGNJob downloads the PGN export of one game.
type FetchPGNJob struct {
	Client lichess.ClientInterface
	GameID string

	PGN string
}

func (j *FetchPGNJob) Name() string { return "fetch_pgn" }

func (j *FetchPGNJob) Run(ctx context.Context) error {
	text, err := j.Client.FetchPGN(ctx, j.GameID)
	if err != nil {
		return err
	}
	j.PGN = text
	return nil
}

// PooledClient runs every fetch on a Pool, which caps the number of
// concurrent requests made to Lichess.
type PooledClient struct {
	next lichess.ClientInterface
	pool *Pool
}

func NewPooledClient(next lichess.ClientInterface, pool *Pool) *PooledClient {
	return &PooledClient{next: next, pool: pool}
}

func (c *PooledClient) FetchPGN(ctx context.Context, gameID string) (string, error) {
	job := &FetchPGNJob{Client: c.next, GameID: gameID}
	if err := c.pool.Do(ctx, job); err != nil {
		return "", err
	}
	return job.PGN, nil
}
