package ports

import "context"

// RollupJob is one queued request to refresh the aggregate rollup.
type RollupJob struct {
	ID string
}

// JobRepository supports enqueuing, claiming, and resolving rollup jobs.
type JobRepository interface {
	Enqueue(ctx context.Context) (jobID string, err error)
	ClaimNext(ctx context.Context) (job RollupJob, found bool, err error)
	MarkCompleted(ctx context.Context, jobID string) error
	MarkFailed(ctx context.Context, jobID string, reason string) error
}
