package rollup

import (
	"context"
	"log"
	"time"

	"complyscore/internal/ports"
)

// Processor performs the work for one claimed rollup job.
type Processor interface {
	Process(ctx context.Context) error
}

// RefreshProcessor recomputes the aggregate rollup from stored reports.
type RefreshProcessor struct{ Rollups ports.RollupRepository }

func (p RefreshProcessor) Process(ctx context.Context) error {
	return p.Rollups.Refresh(ctx)
}

// Run starts worker goroutines that claim rollup jobs and process them. It
// returns immediately; workers stop when ctx is cancelled.
func Run(ctx context.Context, repo ports.JobRepository, processor Processor, concurrency int, pollInterval time.Duration) {
	if concurrency < 1 {
		return
	}
	jobsCh := make(chan ports.RollupJob, concurrency)

	// dispatcher loop
	go func() {
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				close(jobsCh)
				return
			case <-ticker.C:
				for {
					job, found, err := repo.ClaimNext(ctx)
					if err != nil {
						log.Printf("job claim error: %v", err)
						break
					}
					if !found {
						break
					}
					jobsCh <- job
				}
			}
		}
	}()

	// workers
	for i := 0; i < concurrency; i++ {
		go func(idx int) {
			for job := range jobsCh {
				if err := processor.Process(ctx); err != nil {
					_ = repo.MarkFailed(ctx, job.ID, err.Error())
					log.Printf("worker %d: job %s failed: %v", idx, job.ID, err)
					continue
				}
				if err := repo.MarkCompleted(ctx, job.ID); err != nil {
					log.Printf("worker %d: complete err: %v", idx, err)
				}
			}
		}(i)
	}
}
