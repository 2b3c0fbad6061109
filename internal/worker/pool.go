package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/vytor/movetable/internal/logger"
)

// ErrPoolStopped is returned by Do once the pool has been stopped.
var ErrPoolStopped = errors.New("worker pool stopped")

type Job interface {
	Run(context.Context) error
	Name() string
}

type task struct {
	ctx  context.Context
	job  Job
	done chan error
}

// Pool runs jobs on a fixed number of workers. Callers block in Do until
// their job has run, so the pool bounds how much work is in flight.
type Pool struct {
	tasks    chan task
	quit     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	workers  int
	log      *logger.Logger
}

func NewPool(workers, queueSize int) *Pool {
	if workers <= 0 {
		workers = 2
	}
	if queueSize <= 0 {
		queueSize = 64
	}
	log := logger.Default().WithPrefix("worker-pool")
	log.Debug("creating worker pool with %d workers and queue size %d", workers, queueSize)
	return &Pool{
		tasks:   make(chan task, queueSize),
		quit:    make(chan struct{}),
		workers: workers,
		log:     log,
	}
}

func (p *Pool) Start(ctx context.Context) {
	p.log.Info("starting worker pool with %d workers", p.workers)
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.work(ctx, i+1)
	}
}

func (p *Pool) work(ctx context.Context, id int) {
	defer p.wg.Done()
	workerLog := p.log.WithField("worker_id", id)
	workerLog.Debug("worker started")

	for {
		select {
		case <-ctx.Done():
			workerLog.Debug("worker shutting down (context cancelled)")
			return
		case <-p.quit:
			workerLog.Debug("worker shutting down (pool stopped)")
			return
		case t := <-p.tasks:
			t.done <- run(t, id)
		}
	}
}

func run(t task, workerID int) error {
	// the caller gave up while the job was queued
	if err := t.ctx.Err(); err != nil {
		return err
	}

	jobLog := logger.FromContext(t.ctx).WithFields(map[string]any{
		"worker_id": workerID,
		"job":       t.job.Name(),
	})
	jobLog.Debug("starting job")
	start := time.Now()

	err := t.job.Run(logger.NewContext(t.ctx, jobLog))
	if err != nil {
		jobLog.Debug("job failed after %v: %v", time.Since(start), err)
	} else {
		jobLog.Debug("job completed in %v", time.Since(start))
	}
	return err
}

// Do queues job and waits for it to finish. It returns early with the
// context's error if ctx ends first.
func (p *Pool) Do(ctx context.Context, job Job) error {
	t := task{ctx: ctx, job: job, done: make(chan error, 1)}

	select {
	case p.tasks <- t:
	case <-ctx.Done():
		return ctx.Err()
	case <-p.quit:
		return ErrPoolStopped
	}

	select {
	case err := <-t.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-p.quit:
		return ErrPoolStopped
	}
}

// Stop halts the workers and waits for them to exit. Jobs still queued
// are abandoned and their callers get ErrPoolStopped.
func (p *Pool) Stop() {
	p.log.Info("stopping worker pool")
	p.stopOnce.Do(func() { close(p.quit) })
	p.wg.Wait()
	p.log.Info("worker pool stopped")
}

// QueueSize returns the current number of pending jobs.
func (p *Pool) QueueSize() int {
	return len(p.tasks)
}
