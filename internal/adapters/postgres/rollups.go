package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"complyscore/internal/domain"
)

// Refresh recomputes the aggregate snapshot from all stored reports. Category
// averages come from unnesting the persisted result JSON, so the rollup never
// drifts from what the engine actually produced.
func (db *DB) Refresh(ctx context.Context) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO report_rollups (id, report_count, average_overall, category_averages, refreshed_at)
		SELECT 1,
		       count(*),
		       COALESCE(avg(overall_score), 0),
		       COALESCE((
		           SELECT jsonb_object_agg(category, avg_score)
		           FROM (
		               SELECT cs->>'category' AS category, avg((cs->>'score')::numeric) AS avg_score
		               FROM reports, jsonb_array_elements(result->'categoryScores') cs
		               GROUP BY 1
		           ) per_category
		       ), '{}'::jsonb),
		       now()
		FROM reports
		ON CONFLICT (id) DO UPDATE SET
		    report_count = EXCLUDED.report_count,
		    average_overall = EXCLUDED.average_overall,
		    category_averages = EXCLUDED.category_averages,
		    refreshed_at = EXCLUDED.refreshed_at
	`)
	return err
}

func (db *DB) GetStats(ctx context.Context) (domain.AggregateStats, error) {
	var stats domain.AggregateStats
	err := db.Pool.QueryRow(ctx, `
		SELECT report_count, average_overall, category_averages, refreshed_at
		FROM report_rollups
		WHERE id = 1
	`).Scan(&stats.ReportCount, &stats.AverageOverall, &stats.CategoryAverages, &stats.RefreshedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.AggregateStats{}, domain.ErrNotFound
	}
	return stats, err
}
