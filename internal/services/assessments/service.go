package assessments

import (
	"context"
	"log"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/net/publicsuffix"

	"complyscore/internal/domain"
	"complyscore/internal/ports"
	"complyscore/internal/scoring"
)

// Service orchestrates an assessment run: score the answers, mint a share
// token, persist the report, and queue an aggregate refresh.
type Service struct {
	reports ports.ReportRepository
	jobs    ports.JobRepository
}

func New(reports ports.ReportRepository, jobs ports.JobRepository) *Service {
	return &Service{reports: reports, jobs: jobs}
}

// Submit scores the answers and persists the resulting report. ownerID is an
// opaque already-authenticated identity; empty means anonymous.
func (s *Service) Submit(ctx context.Context, ownerID, companyWebsite string, answers, followUps map[int]string) (domain.Report, error) {
	report := domain.Report{
		OwnerID:       ownerID,
		CompanyDomain: registrableDomain(companyWebsite),
		Answers:       answers,
		FollowUps:     followUps,
		Result:        scoring.Score(answers, followUps),
		ShareToken:    uuid.NewString(),
	}

	id, err := s.reports.Save(ctx, report)
	if err != nil {
		return domain.Report{}, err
	}
	report.ID = id

	// Aggregates refresh in the background; a failed enqueue never fails the
	// submission itself.
	if _, err := s.jobs.Enqueue(ctx); err != nil {
		log.Printf("rollup enqueue error: %v", err)
	}
	return report, nil
}

func (s *Service) Get(ctx context.Context, reportID string) (domain.Report, error) {
	return s.reports.Get(ctx, reportID)
}

func (s *Service) GetShared(ctx context.Context, shareToken string) (domain.Report, error) {
	return s.reports.GetByShareToken(ctx, shareToken)
}

// registrableDomain normalises an optional website to its eTLD+1 so the admin
// console can group reports by company. Empty or unparseable input yields "".
func registrableDomain(rawurl string) string {
	if rawurl == "" {
		return ""
	}
	if !strings.Contains(rawurl, "://") {
		rawurl = "https://" + rawurl
	}
	u, err := url.Parse(rawurl)
	if err != nil {
		return ""
	}
	host := u.Hostname()
	registrable, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		registrable = host
	}
	return strings.ToLower(registrable)
}
