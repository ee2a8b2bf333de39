package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-scim-owner/models"
)

// DefaultRefreshInterval is used when Start is given a non-positive interval.
const DefaultRefreshInterval = 5 * time.Minute

type refreshJob struct {
	client DirectoryClient

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a job that calls client.FetchAll on a ticker. The job
// is idle until Start is called.
func NewRefreshJob(client DirectoryClient) BackgroundJob {
	return &refreshJob{client: client}
}

// Start implements BackgroundJob. onResult is called from the job goroutine
// and may be nil. The goroutine exits when ctx is cancelled or Stop is called.
func (j *refreshJob) Start(ctx context.Context, interval time.Duration, onResult func([]models.Member, error)) {
	if interval <= 0 {
		interval = DefaultRefreshInterval
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
				members, err := j.client.FetchAll(jobCtx)
				if jobCtx.Err() != nil {
					return
				}
				if onResult != nil {
					onResult(members, err)
				}
			}
		}
	}()
}

// Stop implements BackgroundJob.
func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
