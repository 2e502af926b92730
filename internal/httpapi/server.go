// Package httpapi exposes the journey-plan service over HTTP.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/expoflow/gulfood-journey/internal/journey"
	"github.com/expoflow/gulfood-journey/internal/report"
	"github.com/expoflow/gulfood-journey/internal/store"
)

// Server wires the store, the generation pipeline, and the PDF renderer
// behind the public routes. Planner may be nil when no API key is
// configured; the generate endpoint then answers 503.
type Server struct {
	store    *store.Store
	planner  *journey.Planner
	renderer report.Renderer
}

func NewServer(st *store.Store, planner *journey.Planner, renderer report.Renderer) http.Handler {
	s := &Server{store: st, planner: planner, renderer: renderer}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/journey/generate", s.handleGenerate)
	mux.HandleFunc("/api/journey/", s.handleGetJourney)
	mux.HandleFunc("/api/exhibitors", s.handleExhibitors)
	mux.HandleFunc("/api/leads", s.handleLeads)
	mux.HandleFunc("/api/referrals/", s.handleReferrals)
	mux.HandleFunc("/api/reports/generate", s.handleReportGenerate)
	mux.HandleFunc("/api/analytics/summary", s.handleAnalytics)
	mux.HandleFunc("/healthz", s.handleHealth)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": msg})
}

func methodOnly(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	return true
}

// planResponse is the wire shape shared by generate and read-back: the plan
// row's fields at the top level plus the enrichment keys.
type planResponse struct {
	store.JourneyPlan
	Highlights        []journey.Highlight      `json:"highlights"`
	Categories        []string                 `json:"categories"`
	MatchedExhibitors []store.MatchedExhibitor `json:"matchedExhibitors"`
	MatchedSessions   []any                    `json:"matchedSessions"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodPost) {
		return
	}
	if s.planner == nil {
		writeError(w, http.StatusServiceUnavailable, "plan generation is not configured")
		return
	}
	var profile journey.VisitorProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res, err := s.planner.Generate(r.Context(), profile)
	if err != nil {
		var se *journey.StepError
		switch {
		case errors.As(err, &se) && se.Step == "validate":
			writeError(w, http.StatusBadRequest, se.Err.Error())
		case journey.IsTransportError(err):
			log.Printf("generate: upstream failure: %v", err)
			writeError(w, http.StatusServiceUnavailable, "the planning service is temporarily unavailable")
		default:
			log.Printf("generate: %v", err)
			writeError(w, http.StatusInternalServerError, "plan generation failed")
		}
		return
	}
	writeJSON(w, http.StatusOK, toPlanResponse(res.Plan, res.Highlights, res.Categories, res.MatchedExhibitors))
}

func (s *Server) handleGetJourney(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	token := strings.TrimPrefix(r.URL.Path, "/api/journey/")
	if token == "" || strings.Contains(token, "/") {
		writeError(w, http.StatusNotFound, "journey plan not found")
		return
	}
	plan, err := s.store.GetJourneyPlanByToken(token)
	if err != nil {
		log.Printf("get journey %s: %v", token, err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if plan == nil {
		writeError(w, http.StatusNotFound, "journey plan not found")
		return
	}
	writeJSON(w, http.StatusOK, toPlanResponse(*plan, nil, plan.Categories, plan.ReportData.Exhibitors))
}

func toPlanResponse(plan store.JourneyPlan, highlights []journey.Highlight, categories []string, matches []store.MatchedExhibitor) planResponse {
	if highlights == nil {
		highlights = []journey.Highlight{}
	}
	if categories == nil {
		categories = []string{}
	}
	if matches == nil {
		matches = []store.MatchedExhibitor{}
	}
	return planResponse{
		JourneyPlan:       plan,
		Highlights:        highlights,
		Categories:        categories,
		MatchedExhibitors: matches,
		MatchedSessions:   []any{},
	}
}

func (s *Server) handleExhibitors(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	sector := strings.TrimSpace(r.URL.Query().Get("sector"))
	exhibitors, err := s.store.ListExhibitors(sector)
	if err != nil {
		log.Printf("list exhibitors: %v", err)
		writeError(w, http.StatusInternalServerError, "catalog unavailable")
		return
	}
	if exhibitors == nil {
		exhibitors = []store.Exhibitor{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"exhibitors": exhibitors, "count": len(exhibitors)})
}

func (s *Server) handleLeads(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodPost) {
		return
	}
	var in store.Lead
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(in.Email) == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}
	if existing, err := s.store.GetLeadByEmail(in.Email); err != nil {
		log.Printf("lead lookup: %v", err)
		writeError(w, http.StatusInternalServerError, "lead capture failed")
		return
	} else if existing != nil {
		writeJSON(w, http.StatusOK, map[string]any{"lead": existing, "created": false})
		return
	}
	if in.CapturedVia == "" {
		in.CapturedVia = "direct"
	}
	lead, err := s.store.CreateLead(in)
	if err != nil {
		log.Printf("create lead: %v", err)
		writeError(w, http.StatusInternalServerError, "lead capture failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"lead": lead, "created": true})
}

func (s *Server) handleReferrals(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	code := strings.TrimPrefix(r.URL.Path, "/api/referrals/")
	if code == "" || strings.Contains(code, "/") {
		writeError(w, http.StatusNotFound, "referral code not found")
		return
	}
	count, leads, err := s.store.LeadsByReferral(code, 20)
	if err != nil {
		log.Printf("referrals %s: %v", code, err)
		writeError(w, http.StatusInternalServerError, "referral lookup failed")
		return
	}
	if leads == nil {
		leads = []store.Lead{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"referralCode": code, "count": count, "recentLeads": leads})
}

func (s *Server) handleReportGenerate(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodPost) {
		return
	}
	if s.renderer == nil {
		writeError(w, http.StatusServiceUnavailable, "report rendering is not configured")
		return
	}
	var in struct {
		JourneyPlanID int64 `json:"journeyPlanId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if in.JourneyPlanID == 0 {
		writeError(w, http.StatusBadRequest, "journeyPlanId is required")
		return
	}
	plan, err := s.store.GetJourneyPlan(in.JourneyPlanID)
	if err != nil {
		log.Printf("report plan lookup %d: %v", in.JourneyPlanID, err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if plan == nil {
		writeError(w, http.StatusNotFound, "journey plan not found")
		return
	}
	pdf, err := s.renderer.Render(r.Context(), *plan)
	if err != nil {
		log.Printf("render plan %d: %v", plan.ID, err)
		writeError(w, http.StatusInternalServerError, "report rendering failed")
		return
	}
	filename := report.Filename(*plan)
	if _, err := s.store.RecordGeneratedReport(plan.ID, filename, "application/pdf"); err != nil {
		// The download still succeeds; only the audit row is lost.
		log.Printf("record report for plan %d: %v", plan.ID, err)
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	summary, err := s.store.Analytics()
	if err != nil {
		log.Printf("analytics: %v", err)
		writeError(w, http.StatusInternalServerError, "analytics unavailable")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	if err := s.store.Ping(); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{"status": "degraded", "error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":           "ok",
		"plannerAvailable": s.planner != nil,
	})
}
