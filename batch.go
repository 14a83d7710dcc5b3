package primestep

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// Query is one Step request.
type Query struct {
	Gap  int64
	Low  int64
	High int64
}

// StepBatch answers queries concurrently against the shared table, running
// at most WithWorkers of them at once. Results are positional.
//
// The first failing query cancels the ones not yet started and its error is
// returned.
func (s *Sieve) StepBatch(ctx context.Context, queries []Query) ([]Pair, error) {
	start := time.Now()
	results := make([]Pair, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.workers)

	for i, q := range queries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p, err := s.Step(q.Gap, q.Low, q.High)
			if err != nil {
				return fmt.Errorf("query %d (%d, %d, %d): %w", i, q.Gap, q.Low, q.High, err)
			}
			results[i] = p
			return nil
		})
	}

	err := g.Wait()
	s.opts.logger.LogBatch(ctx, len(queries), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return results, nil
}
