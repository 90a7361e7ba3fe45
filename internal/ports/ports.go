package ports

import (
	"context"

	"complyscore/internal/domain"
)

// Assessments scores and persists questionnaire submissions.
type Assessments interface {
	Submit(ctx context.Context, ownerID, companyWebsite string, answers, followUps map[int]string) (domain.Report, error)
	Get(ctx context.Context, reportID string) (domain.Report, error)
	GetShared(ctx context.Context, shareToken string) (domain.Report, error)
}

// Admin exposes operator views over stored reports.
type Admin interface {
	ListReports(ctx context.Context, limit int) ([]domain.ReportSummary, error)
	Stats(ctx context.Context) (domain.AggregateStats, error)
}
