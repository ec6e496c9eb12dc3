package service

import (
	"context"
	"sync"
	"time"
)

type shareJob struct {
	sharing SharingService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewShareJob creates a shareJob that calls sharing.ShareVault on a ticker.
// The job is idle until Start is called.
func NewShareJob(sharing SharingService) ShareJob {
	return &shareJob{sharing: sharing}
}

// Start implements ShareJob. It stops any previously running job, then
// launches a background goroutine that reconciles the push form every
// interval. If interval is zero or negative it defaults to 5 minutes. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *shareJob) Start(ctx context.Context, pushFormID string, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
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
				_ = j.sharing.ShareVault(jobCtx, pushFormID)
			}
		}
	}()
}

// Stop implements ShareJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the
// job is not running (no-op in that case).
func (j *shareJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
