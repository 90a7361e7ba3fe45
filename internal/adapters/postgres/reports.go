package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"complyscore/internal/domain"
)

// Save inserts a report and returns its generated id.
func (db *DB) Save(ctx context.Context, report domain.Report) (string, error) {
	var id string
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO reports (owner_id, company_domain, share_token, answers, follow_ups, result, overall_score)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, report.OwnerID, report.CompanyDomain, report.ShareToken,
		report.Answers, report.FollowUps, report.Result, report.Result.OverallScore).Scan(&id)
	return id, err
}

func (db *DB) Get(ctx context.Context, reportID string) (domain.Report, error) {
	return db.getReport(ctx, `WHERE id = $1`, reportID)
}

func (db *DB) GetByShareToken(ctx context.Context, shareToken string) (domain.Report, error) {
	return db.getReport(ctx, `WHERE share_token = $1`, shareToken)
}

func (db *DB) getReport(ctx context.Context, where string, arg any) (domain.Report, error) {
	var r domain.Report
	err := db.Pool.QueryRow(ctx, `
		SELECT id, owner_id, company_domain, share_token, answers, follow_ups, result, created_at
		FROM reports `+where,
		arg).Scan(&r.ID, &r.OwnerID, &r.CompanyDomain, &r.ShareToken,
		&r.Answers, &r.FollowUps, &r.Result, &r.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Report{}, domain.ErrNotFound
	}
	return r, err
}

func (db *DB) ListRecent(ctx context.Context, limit int) ([]domain.ReportSummary, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, owner_id, company_domain, overall_score, created_at
		FROM reports
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.ReportSummary{}
	for rows.Next() {
		var s domain.ReportSummary
		if err := rows.Scan(&s.ID, &s.OwnerID, &s.CompanyDomain, &s.OverallScore, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
