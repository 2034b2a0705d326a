// Package worker provides the bounded goroutine pool used for per-locale fan-out.
//
// Naked goroutines are not used in locheck: concurrent work goes through a
// Pool with context propagation and unified panic recovery.
//
// Import Path: wsl-ui.dev/locheck/internal/pkg/worker
package worker

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"wsl-ui.dev/locheck/internal/pkg/logger"
)

// ErrPoolClosed is returned when submitting to a released pool.
var ErrPoolClosed = errors.New("worker pool is closed")

// Task is a context-aware task function.
type Task func(ctx context.Context)

// Pool wraps ants.Pool with context-aware batch submission.
type Pool struct {
	pool *ants.Pool
	name string
}

// DefaultSize returns the pool size used when configuration leaves it unset.
func DefaultSize() int {
	return runtime.NumCPU()
}

// NewPool creates a named pool with at most size concurrent workers.
func NewPool(name string, size int) (*Pool, error) {
	if size <= 0 {
		size = DefaultSize()
	}

	panicHandler := func(p interface{}) {
		logger.Error("Worker panic recovered",
			zap.String("pool", name),
			zap.Any("panic", p),
			zap.Stack("stack"),
		)
	}

	antsPool, err := ants.NewPool(size,
		ants.WithPanicHandler(panicHandler),
		ants.WithNonblocking(false),
		ants.WithExpiryDuration(5*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s pool: %w", name, err)
	}
	return &Pool{pool: antsPool, name: name}, nil
}

// RunAll submits every task and blocks until all submitted tasks have
// returned. The first submission error stops further submission; tasks
// already running are still awaited. Tasks dequeued after ctx is cancelled
// are skipped and ctx.Err() is returned.
func (p *Pool) RunAll(ctx context.Context, tasks []Task) error {
	var wg sync.WaitGroup
	var submitErr error
	for _, task := range tasks {
		if err := ctx.Err(); err != nil {
			submitErr = err
			break
		}
		task := task
		wg.Add(1)
		err := p.pool.Submit(func() {
			// Done must run even when the task panics or is skipped.
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				logger.Debug("Task skipped: context cancelled",
					zap.String("pool", p.name),
					zap.Error(err),
				)
				return
			}
			task(ctx)
		})
		if err != nil {
			wg.Done()
			if errors.Is(err, ants.ErrPoolClosed) {
				err = ErrPoolClosed
			}
			submitErr = err
			break
		}
	}
	wg.Wait()
	if submitErr == nil {
		submitErr = ctx.Err()
	}
	return submitErr
}

// Release shuts the pool down, waiting a bounded time for running tasks.
func (p *Pool) Release() {
	const releaseTimeout = 10 * time.Second
	if err := p.pool.ReleaseTimeout(releaseTimeout); err != nil {
		logger.Warn("Worker pool release timeout",
			zap.String("pool", p.name),
			zap.Error(err),
		)
	}
}

// Metrics returns pool counters for debug logging.
func (p *Pool) Metrics() map[string]int {
	return map[string]int{
		"running": p.pool.Running(),
		"free":    p.pool.Free(),
		"cap":     p.pool.Cap(),
	}
}
