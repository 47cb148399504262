package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-shadow-sync/internal/logger"
)

// DefaultResyncInterval is used when Start is given a non-positive interval.
const DefaultResyncInterval = 5 * time.Minute

type resyncJob struct {
	refresher Refresher
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewResyncJob creates a job that calls refresher.Refresh on a ticker. The
// job is idle until Start is called.
func NewResyncJob(refresher Refresher, logger *logger.Logger) ResyncJob {
	return &resyncJob{refresher: refresher, logger: logger}
}

// Start implements ResyncJob. It stops any previously running job, then
// launches a background goroutine that calls Refresh every interval. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *resyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultResyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.refresher.Refresh(jobCtx); err != nil && jobCtx.Err() == nil {
					j.logger.Warn().Err(err).Str("func", "resyncJob.Start").Msg("resync failed")
				}
			}
		}
	}()
}

// Stop implements ResyncJob. It cancels the background goroutine and blocks
// until it has exited. Safe to call when the job is not running.
func (j *resyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
