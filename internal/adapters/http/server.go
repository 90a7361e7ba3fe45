package httpadapter

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"complyscore/internal/catalog"
	"complyscore/internal/domain"
	"complyscore/internal/ports"
	"complyscore/internal/scoring"
)

// ownerHeader carries the opaque already-authenticated caller identity.
// Empty means the submission is anonymous.
const ownerHeader = "X-Owner-Id"

type Server struct {
	assessments ports.Assessments
	admin       ports.Admin
}

func New(assessments ports.Assessments, admin ports.Admin) *Server {
	return &Server{assessments: assessments, admin: admin}
}

// Routes returns the chi router with all endpoints mounted.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealthz)
	r.Route("/api", func(r chi.Router) {
		r.Get("/questions", s.handleQuestions)
		r.Post("/assessments", s.handleSubmit)
		r.Get("/reports/{id}", s.handleGetReport)
		r.Get("/shared/{token}", s.handleGetShared)
		r.Route("/admin", func(r chi.Router) {
			r.Get("/reports", s.handleAdminReports)
			r.Get("/stats", s.handleAdminStats)
		})
	})
	return r
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Questions())
}

type submitRequest struct {
	Answers         map[int]string `json:"answers"`
	FollowUpAnswers map[int]string `json:"followUpAnswers"`
	CompanyWebsite  string         `json:"companyWebsite"`
}

type reportResponse struct {
	ReportID   string                    `json:"reportId"`
	ShareToken string                    `json:"shareToken,omitempty"`
	Result     scoring.ComplianceResult  `json:"result"`
	Categories []scoring.CategoryDisplay `json:"categories"`
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if req.Answers == nil {
		req.Answers = map[int]string{}
	}

	report, err := s.assessments.Submit(r.Context(), r.Header.Get(ownerHeader),
		req.CompanyWebsite, req.Answers, req.FollowUpAnswers)
	if err != nil {
		writeInternal(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toReportResponse(report, true))
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.assessments.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toReportResponse(report, true))
}

func (s *Server) handleGetShared(w http.ResponseWriter, r *http.Request) {
	report, err := s.assessments.GetShared(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		writeLookupError(w, err)
		return
	}
	// Shared view omits the share token itself.
	writeJSON(w, http.StatusOK, toReportResponse(report, false))
}

func (s *Server) handleAdminReports(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	summaries, err := s.admin.ListReports(r.Context(), limit)
	if err != nil {
		writeInternal(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleAdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.admin.Stats(r.Context())
	if err != nil {
		writeInternal(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func toReportResponse(report domain.Report, includeToken bool) reportResponse {
	resp := reportResponse{
		ReportID:   report.ID,
		Result:     report.Result,
		Categories: scoring.FormatCategories(report.Result),
	}
	if includeToken {
		resp.ShareToken = report.ShareToken
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("response encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, "report not found")
		return
	}
	writeInternal(w, err)
}

func writeInternal(w http.ResponseWriter, err error) {
	log.Printf("internal error: %v", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}
