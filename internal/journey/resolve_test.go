package journey

import (
	"testing"

	"github.com/expoflow/gulfood-journey/internal/store"
)

func TestResolveMatchesDropsUnknownIDs(t *testing.T) {
	sample := exhibitorFixture(3)
	ranked := []RankedExhibitor{
		{ExhibitorID: 2, MatchScore: 95, PersonalizedReason: "strong dairy overlap"},
		{ExhibitorID: 999, MatchScore: 90, PersonalizedReason: "invented"},
		{ExhibitorID: 1, MatchScore: 80, PersonalizedReason: "sourcing fit"},
	}
	got := ResolveMatches(ranked, sample)
	if len(got) != 2 {
		t.Fatalf("expected 2 resolved matches, got %d", len(got))
	}
	if got[0].ID != 2 || got[1].ID != 1 {
		t.Fatalf("model ordering not preserved: %v", got)
	}
	if got[0].Name != "Exhibitor 2" {
		t.Fatalf("catalog fields not joined: %v", got[0])
	}
}

func TestResolveMatchesDefaultsBlankReason(t *testing.T) {
	got := ResolveMatches([]RankedExhibitor{{ExhibitorID: 1, MatchScore: 70, PersonalizedReason: "  "}}, exhibitorFixture(1))
	if len(got) != 1 || got[0].Reason != defaultMatchReason {
		t.Fatalf("blank reason should default, got %v", got)
	}
}

func TestResolveMatchesClampsScore(t *testing.T) {
	got := ResolveMatches([]RankedExhibitor{{ExhibitorID: 1, MatchScore: 250, PersonalizedReason: "r"}}, exhibitorFixture(1))
	if got[0].MatchScore != 100 {
		t.Fatalf("match score not clamped: %d", got[0].MatchScore)
	}
}

func TestMatchCategoriesFirstSeenOrder(t *testing.T) {
	matches := []store.MatchedExhibitor{
		{Exhibitor: store.Exhibitor{ID: 1, Sector: "Beverages"}},
		{Exhibitor: store.Exhibitor{ID: 2, Sector: "Dairy"}},
		{Exhibitor: store.Exhibitor{ID: 3, Sector: "Beverages"}},
		{Exhibitor: store.Exhibitor{ID: 4, Sector: ""}},
	}
	got := MatchCategories(matches)
	if len(got) != 2 || got[0] != "Beverages" || got[1] != "Dairy" {
		t.Fatalf("unexpected categories: %v", got)
	}
}
