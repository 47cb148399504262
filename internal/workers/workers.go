package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
}

func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Add appends workers to the set. It must not be called concurrently with
// Run.
func (w *Workers) Add(workers ...Worker) {
	w.workers = append(w.workers, workers...)
}

// Run starts every worker and blocks until all of them return. The first
// failure cancels the others; its error is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(gctx)
		})
	}
	return g.Wait()
}
