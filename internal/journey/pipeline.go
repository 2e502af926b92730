package journey

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/expoflow/gulfood-journey/internal/store"
)

// StepError tags a failure with the pipeline step it happened in so callers
// and logs can tell catalog problems from model problems.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string { return fmt.Sprintf("%s: %v", e.Step, e.Err) }
func (e *StepError) Unwrap() error { return e.Err }

// Planner runs the full generation pipeline: catalog sampling, AI evaluation,
// match resolution, narrative generation, lead capture, and persistence.
type Planner struct {
	store *store.Store
	eval  *Evaluator
	narr  *NarrativeGenerator
}

func NewPlanner(st *store.Store, caller LLMCaller) *Planner {
	return &Planner{
		store: st,
		eval:  NewEvaluator(caller),
		narr:  NewNarrativeGenerator(caller),
	}
}

// ValidateProfile is the request-level gate; everything past it is best
// effort rather than rejection.
func ValidateProfile(p VisitorProfile) error {
	if strings.TrimSpace(p.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if strings.TrimSpace(p.Organization) == "" {
		return fmt.Errorf("organization is required")
	}
	if strings.TrimSpace(p.Role) == "" {
		return fmt.Errorf("role is required")
	}
	return nil
}

// Generate produces and persists one journey plan. The evaluation step is a
// single model call: a transport or parse failure there fails the whole
// request. The narrative step never fails.
func (p *Planner) Generate(ctx context.Context, profile VisitorProfile) (PlanResult, error) {
	if err := ValidateProfile(profile); err != nil {
		return PlanResult{}, &StepError{Step: "validate", Err: err}
	}

	exhibitors, err := p.store.ListExhibitors("")
	if err != nil {
		return PlanResult{}, &StepError{Step: "catalog", Err: err}
	}
	sample := SampleExhibitors(FilterSelfExhibitors(profile.Organization, exhibitors))

	eval, err := p.eval.Evaluate(ctx, profile, sample)
	if err != nil {
		return PlanResult{}, &StepError{Step: "evaluate", Err: err}
	}

	matches := ResolveMatches(eval.TopExhibitors, sample)
	categories := MatchCategories(matches)

	narrative := p.narr.Generate(ctx, profile, eval.OverallRelevanceScore, len(matches), len(categories))

	leadID := p.captureLead(profile)

	matchedIDs := make([]int64, 0, len(matches))
	for _, m := range matches {
		matchedIDs = append(matchedIDs, m.ID)
	}

	plan := store.JourneyPlan{
		LeadID:              leadID,
		Name:                profile.Name,
		Email:               profile.Email,
		Organization:        profile.Organization,
		Role:                profile.Role,
		InterestCategories:  profile.InterestCategories,
		AttendanceIntents:   profile.AttendanceIntents,
		SessionID:           profile.SessionID,
		RelevanceScore:      eval.OverallRelevanceScore,
		GeneralOverview:     narrative.GeneralOverview,
		ScoreJustification:  narrative.ScoreJustification,
		Benefits:            narrative.Benefits,
		Recommendations:     narrative.Recommendations,
		MatchedExhibitorIDs: matchedIDs,
		MatchedSessionIDs:   []int64{},
		Categories:          categories,
		ReportData: store.ReportData{
			Exhibitors: matches,
			Sessions:   []any{},
			Categories: categories,
		},
	}
	saved, err := p.store.CreateJourneyPlan(plan)
	if err != nil {
		return PlanResult{}, &StepError{Step: "persist", Err: err}
	}

	return PlanResult{
		Plan:              saved,
		Highlights:        eval.Highlights,
		Categories:        categories,
		MatchedExhibitors: matches,
	}, nil
}

// captureLead links the submission to a lead. An existing lead with the same
// e-mail is always reused; a new one is created only when a name was
// supplied. Lead capture is best effort: a failure here is logged but never
// fails plan generation.
func (p *Planner) captureLead(profile VisitorProfile) *int64 {
	if existing, err := p.store.GetLeadByEmail(profile.Email); err != nil {
		log.Printf("lead lookup failed for %s: %v", profile.Email, err)
		return nil
	} else if existing != nil {
		return &existing.ID
	}
	if strings.TrimSpace(profile.Name) == "" {
		return nil
	}
	lead, err := p.store.CreateLead(store.Lead{
		Name:         profile.Name,
		Email:        profile.Email,
		Organization: profile.Organization,
		Category:     "Visitor",
		CapturedVia:  "direct",
	})
	if err != nil {
		log.Printf("lead capture failed for %s: %v", profile.Email, err)
		return nil
	}
	return &lead.ID
}
