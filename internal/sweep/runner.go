package sweep

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"elgamal/internal/domain"
)

// Result is the outcome of one task.
type Result struct {
	Bits   int
	Report domain.Report
	Err    error
}

// Sink receives results one at a time; calls are serialised.
type Sink func(Result)

// Summary counts task outcomes. Skipped tasks were planned but never ran
// because the sweep was cancelled or stopped early.
type Summary struct {
	Planned   int
	Completed int
	Failed    int
	Skipped   int
}

// Runner executes a Plan against a RunService.
type Runner struct {
	svc         domain.RunService
	workers     int
	stopOnError bool
	log         zerolog.Logger
}

// NewRunner returns a Runner with at most workers concurrent runs (minimum 1).
func NewRunner(svc domain.RunService, workers int, stopOnError bool, log zerolog.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{
		svc:         svc,
		workers:     workers,
		stopOnError: stopOnError,
		log:         log.With().Str("component", "sweep").Logger(),
	}
}

// Run executes every bit length in plan. With stopOnError the first failure
// cancels the remaining tasks and is returned; otherwise failures are logged,
// counted and the sweep carries on. A cancelled ctx stops scheduling and its
// error is returned.
func (r *Runner) Run(ctx context.Context, plan Plan, message []byte, sink Sink) (Summary, error) {
	bits, err := plan.Bits()
	if err != nil {
		return Summary{}, err
	}
	sum := Summary{Planned: len(bits)}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	var mu sync.Mutex
	record := func(res Result) {
		mu.Lock()
		defer mu.Unlock()
		if res.Err != nil {
			sum.Failed++
		} else {
			sum.Completed++
		}
		if sink != nil {
			sink(res)
		}
	}

	r.log.Info().Stringer("plan", plan).Int("workers", r.workers).Msg("sweep started")
	for _, b := range bits {
		if gctx.Err() != nil {
			break
		}
		b := b
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			report, err := r.svc.Run(gctx, b, message)
			if err != nil && gctx.Err() != nil && errors.Is(err, gctx.Err()) {
				// Cancelled mid-run by a sibling failure or the caller.
				return nil
			}
			record(Result{Bits: b, Report: report, Err: err})
			if err != nil {
				r.log.Warn().Err(err).Int("bits", b).Msg("run failed")
				if r.stopOnError {
					return err
				}
			}
			return nil
		})
	}
	err = g.Wait()

	sum.Skipped = sum.Planned - sum.Completed - sum.Failed
	if err == nil {
		err = ctx.Err()
	}
	r.log.Info().
		Int("completed", sum.Completed).
		Int("failed", sum.Failed).
		Int("skipped", sum.Skipped).
		Msg("sweep finished")
	return sum, err
}
