package domain

import (
	"errors"
	"time"

	"complyscore/internal/scoring"
)

// ErrNotFound is returned by repositories and services when a report, share
// token, or rollup does not exist.
var ErrNotFound = errors.New("not found")

// Report is a persisted assessment: the raw answers, the computed result,
// and enough metadata to list and share it.
type Report struct {
	ID            string                   `json:"id"`
	OwnerID       string                   `json:"ownerId,omitempty"`
	CompanyDomain string                   `json:"companyDomain,omitempty"`
	Answers       map[int]string           `json:"answers"`
	FollowUps     map[int]string           `json:"followUpAnswers"`
	Result        scoring.ComplianceResult `json:"result"`
	ShareToken    string                   `json:"shareToken"`
	CreatedAt     time.Time                `json:"createdAt"`
}

// ReportSummary is the listing shape for the admin console.
type ReportSummary struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"ownerId,omitempty"`
	CompanyDomain string    `json:"companyDomain,omitempty"`
	OverallScore  int       `json:"overallScore"`
	CreatedAt     time.Time `json:"createdAt"`
}

// AggregateStats is the rolled-up view across all stored reports.
type AggregateStats struct {
	ReportCount      int                `json:"reportCount"`
	AverageOverall   float64            `json:"averageOverall"`
	CategoryAverages map[string]float64 `json:"categoryAverages"`
	RefreshedAt      time.Time          `json:"refreshedAt"`
}
