// Package inflight tracks the running submission of each session so that a
// newer submission replaces an older one instead of racing it.
package inflight

import (
	"context"
	"errors"
	"sync"

	"github.com/vytor/movetable/internal/logger"
)

// ErrSuperseded is the cancellation cause of a replaced submission.
var ErrSuperseded = errors.New("superseded by a newer submission")

type entry struct {
	id     uint64
	cancel context.CancelCauseFunc
}

// Registry holds at most one in-flight submission per key.
type Registry struct {
	mu     sync.Mutex
	active map[string]entry
	nextID uint64
	log    *logger.Logger
}

func NewRegistry() *Registry {
	return &Registry{
		active: make(map[string]entry),
		log:    logger.Default().WithPrefix("inflight"),
	}
}

// Begin registers a submission for key and returns its context. Any earlier
// submission for the same key is cancelled with ErrSuperseded. The returned
// done func must be called when the submission finishes.
func (r *Registry) Begin(ctx context.Context, key string) (context.Context, func()) {
	ctx, cancel := context.WithCancelCause(ctx)

	r.mu.Lock()
	r.nextID++
	id := r.nextID
	prev, had := r.active[key]
	r.active[key] = entry{id: id, cancel: cancel}
	r.mu.Unlock()

	if had {
		r.log.WithField("session", key).Debug("cancelling submission %d for submission %d", prev.id, id)
		prev.cancel(ErrSuperseded)
	}

	done := func() {
		r.mu.Lock()
		if cur, ok := r.active[key]; ok && cur.id == id {
			delete(r.active, key)
		}
		r.mu.Unlock()
		cancel(context.Canceled)
	}
	return ctx, done
}

// Active returns the number of sessions with a submission in flight.
func (r *Registry) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.active)
}

// Superseded reports whether ctx was cancelled by a newer submission.
func Superseded(ctx context.Context) bool {
	return errors.Is(context.Cause(ctx), ErrSuperseded)
}
