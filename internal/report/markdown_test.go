package report

import (
	"strings"
	"testing"
	"time"

	"github.com/expoflow/gulfood-journey/internal/store"
)

func planFixture() store.JourneyPlan {
	return store.JourneyPlan{
		ID:                 7,
		Token:              "tok",
		Name:               "Amna Khalid",
		Email:              "amna@gulftrading.example",
		Organization:       "Gulf Trading Co",
		Role:               "Procurement Manager",
		InterestCategories: []string{"Dairy", "Beverages"},
		AttendanceIntents:  []string{"Source new products"},
		RelevanceScore:     85,
		GeneralOverview:    "A focused week of sourcing.",
		ScoreJustification: "Strong overlap with the dairy halls.",
		Benefits:           []string{"b1", "b2", "b3", "b4"},
		Recommendations:    []string{"r1", "r2", "r3"},
		ReportData: store.ReportData{
			Exhibitors: []store.MatchedExhibitor{
				{
					Exhibitor:  store.Exhibitor{ID: 1, Name: "Al Rawabi Dairy Company", Sector: "Dairy", Country: "UAE", Booth: "H1-A10"},
					MatchScore: 95,
					Reason:     "Fresh dairy | direct supplier",
				},
			},
			Sessions:   []any{},
			Categories: []string{"Dairy"},
		},
		CreatedAt: time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestBuildMarkdownSections(t *testing.T) {
	md := BuildMarkdown(planFixture())
	for _, want := range []string{
		"# Your Gulfood 2026 Journey Plan",
		"Prepared for **Amna Khalid** of Gulf Trading Co",
		"- Role: Procurement Manager",
		"- Interests: Dairy, Beverages",
		"## Event Fit: 85/100",
		"Strong overlap with the dairy halls.",
		"## Why Attend",
		"## Recommended Exhibitors",
		"| Al Rawabi Dairy Company | Dairy | UAE | H1-A10 | 95% |",
		"## Planning Recommendations",
		"1. r1",
		"January 10, 2026",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown missing %q\n%s", want, md)
		}
	}
}

func TestBuildMarkdownEscapesTableCells(t *testing.T) {
	md := BuildMarkdown(planFixture())
	if !strings.Contains(md, `Fresh dairy \| direct supplier`) {
		t.Fatal("pipe in reason should be escaped in the table")
	}
}

func TestBuildMarkdownAnonymousPlan(t *testing.T) {
	plan := planFixture()
	plan.Name = ""
	md := BuildMarkdown(plan)
	if !strings.Contains(md, "Prepared for **Gulf Trading Co**") {
		t.Fatal("nameless plans should fall back to the organization")
	}
	if strings.Contains(md, "Amna") {
		t.Fatal("removed name should not appear")
	}
}

func TestFilename(t *testing.T) {
	for _, tc := range []struct {
		org  string
		want string
	}{
		{"Gulf Trading Co", "gulfood-2026-journey-gulf-trading-co.pdf"},
		{"  Émirats & Co.  ", "gulfood-2026-journey-mirats-co.pdf"},
		{"", "gulfood-2026-journey-visitor.pdf"},
		{"!!!", "gulfood-2026-journey-visitor.pdf"},
	} {
		plan := store.JourneyPlan{Organization: tc.org}
		if got := Filename(plan); got != tc.want {
			t.Fatalf("Filename(%q) = %q, want %q", tc.org, got, tc.want)
		}
	}
}
