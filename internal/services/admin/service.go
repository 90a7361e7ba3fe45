package admin

import (
	"context"
	"errors"

	"complyscore/internal/domain"
	"complyscore/internal/ports"
)

const defaultListLimit = 50

// Service serves the operator views: recent reports and aggregate stats.
type Service struct {
	reports ports.ReportRepository
	rollups ports.RollupRepository
}

func New(reports ports.ReportRepository, rollups ports.RollupRepository) *Service {
	return &Service{reports: reports, rollups: rollups}
}

func (s *Service) ListReports(ctx context.Context, limit int) ([]domain.ReportSummary, error) {
	if limit < 1 {
		limit = defaultListLimit
	}
	return s.reports.ListRecent(ctx, limit)
}

// Stats returns the aggregate rollup. When no rollup exists yet (fresh
// database, or the workers are disabled) it refreshes inline once.
func (s *Service) Stats(ctx context.Context) (domain.AggregateStats, error) {
	stats, err := s.rollups.GetStats(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		if err := s.rollups.Refresh(ctx); err != nil {
			return domain.AggregateStats{}, err
		}
		return s.rollups.GetStats(ctx)
	}
	return stats, err
}
