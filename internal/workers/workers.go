package workers

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-paste-decrypt/internal/logger"
)

// Pool runs workers with at most limit of them active at a time.
type Pool struct {
	limit  int
	logger *logger.Logger
}

// NewPool returns a pool running up to limit workers concurrently. A limit
// below one is treated as one.
func NewPool(limit int, logger *logger.Logger) *Pool {
	if limit < 1 {
		limit = 1
	}
	return &Pool{limit: limit, logger: logger}
}

// Run executes every worker and blocks until all of them have returned.
// The result has one entry per worker, in the same order: a failing worker
// never cancels the others. Workers not yet started when ctx is done are
// skipped and report ctx.Err(). A panicking worker reports an error.
func (p *Pool) Run(ctx context.Context, workers ...Worker) []error {
	errs := make([]error, len(workers))

	var g errgroup.Group
	g.SetLimit(p.limit)

	for i, w := range workers {
		if w == nil {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			errs[i] = p.runOne(ctx, i, w)
			return nil
		})
	}
	_ = g.Wait()

	return errs
}

func (p *Pool) runOne(ctx context.Context, i int, w Worker) (err error) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error().
				Str("func", "Pool.Run").
				Int("worker", i).
				Interface("panic", r).
				Msg("worker panicked")
			err = fmt.Errorf("worker %d panicked: %v", i, r)
		}
	}()

	return w.Run(ctx)
}
