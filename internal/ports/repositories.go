package ports

import (
	"context"

	"complyscore/internal/domain"
)

// ReportRepository stores and fetches assessment reports.
type ReportRepository interface {
	Save(ctx context.Context, report domain.Report) (reportID string, err error)
	Get(ctx context.Context, reportID string) (domain.Report, error)
	GetByShareToken(ctx context.Context, shareToken string) (domain.Report, error)
	ListRecent(ctx context.Context, limit int) ([]domain.ReportSummary, error)
}

// RollupRepository maintains the aggregate view the admin console reads.
type RollupRepository interface {
	Refresh(ctx context.Context) error
	GetStats(ctx context.Context) (domain.AggregateStats, error)
}
