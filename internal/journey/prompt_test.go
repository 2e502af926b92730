package journey

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/expoflow/gulfood-journey/internal/store"
)

func exhibitorFixture(n int) []store.Exhibitor {
	out := make([]store.Exhibitor, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, store.Exhibitor{
			ID:          int64(i),
			Name:        fmt.Sprintf("Exhibitor %d", i),
			Sector:      "Dairy",
			Country:     "UAE",
			Description: "Supplier of dairy products.",
		})
	}
	return out
}

func TestFilterSelfExhibitors(t *testing.T) {
	exhibitors := []store.Exhibitor{
		{ID: 1, Name: "Al Rawabi Dairy Company"},
		{ID: 2, Name: "Emirates Snack Foods"},
	}
	got := FilterSelfExhibitors("al rawabi dairy company LLC", exhibitors)
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected only exhibitor 2 to survive, got %v", got)
	}
}

func TestFilterSelfExhibitorsSubstringBothDirections(t *testing.T) {
	exhibitors := []store.Exhibitor{
		{ID: 1, Name: "Nestlé Middle East FZE"},
		{ID: 2, Name: "Barakat Group"},
	}
	// Visitor org shorter than the catalog name.
	got := FilterSelfExhibitors("Nestlé", exhibitors)
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected exhibitor 1 removed, got %v", got)
	}
}

func TestFilterSelfExhibitorsEmptyOrg(t *testing.T) {
	exhibitors := exhibitorFixture(3)
	if got := FilterSelfExhibitors("   ", exhibitors); len(got) != 3 {
		t.Fatalf("blank organization should filter nothing, got %d", len(got))
	}
}

func TestSampleExhibitorsCap(t *testing.T) {
	if got := SampleExhibitors(exhibitorFixture(75)); len(got) != MaxPromptExhibitors {
		t.Fatalf("expected %d sampled, got %d", MaxPromptExhibitors, len(got))
	}
	if got := SampleExhibitors(exhibitorFixture(12)); len(got) != 12 {
		t.Fatalf("small catalogs pass through, got %d", len(got))
	}
}

func TestTruncateDescription(t *testing.T) {
	long := strings.Repeat("a", 300)
	got := truncateDescription(long)
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
	if len(got) > descriptionLimit+3 {
		t.Fatalf("truncated description too long: %d", len(got))
	}
	short := "Brief."
	if truncateDescription(short) != short {
		t.Fatal("short descriptions should be untouched")
	}
}

func TestTruncateDescriptionRuneBoundary(t *testing.T) {
	// Three-byte runes leave the cut offset mid-rune; the cut must back off
	// to a boundary instead of emitting invalid bytes.
	long := strings.Repeat("美", 120)
	got := truncateDescription(long)
	if !utf8.ValidString(got) {
		t.Fatalf("truncation produced invalid UTF-8: %q", got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
}

func TestBuildEvaluationPromptContents(t *testing.T) {
	profile := VisitorProfile{
		Email:              "buyer@example.com",
		Organization:       "Gulf Trading Co",
		Role:               "Procurement Manager",
		InterestCategories: []string{"Dairy", "Beverages"},
		AttendanceIntents:  []string{"Source new products"},
	}
	sample := exhibitorFixture(2)
	prompt := BuildEvaluationPrompt(profile, sample)
	for _, want := range []string{
		"Gulf Trading Co",
		"Procurement Manager",
		"Dairy, Beverages",
		"Source new products",
		"ID 1: Exhibitor 1",
		"ID 2: Exhibitor 2",
		"overallRelevanceScore",
		"topExhibitors",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("evaluation prompt missing %q", want)
		}
	}
}

func TestBuildEvaluationPromptEmptyLists(t *testing.T) {
	profile := VisitorProfile{Organization: "Acme", Role: "CEO"}
	prompt := BuildEvaluationPrompt(profile, nil)
	if !strings.Contains(prompt, "none given") {
		t.Fatal("empty interest lists should render as none given")
	}
}

func TestBuildNarrativePromptBands(t *testing.T) {
	profile := VisitorProfile{Organization: "Acme", Role: "CEO"}
	for score, band := range map[int]string{95: "excellent", 60: "good", 30: "fair", 5: "limited"} {
		prompt := BuildNarrativePrompt(profile, score, 8, 3)
		if !strings.Contains(prompt, "fit band: "+band) {
			t.Fatalf("score %d: expected band %q in prompt", score, band)
		}
	}
}

func TestScoreBandBoundaries(t *testing.T) {
	for _, tc := range []struct {
		score int
		want  string
	}{
		{100, "excellent"}, {80, "excellent"}, {79, "good"}, {50, "good"},
		{49, "fair"}, {20, "fair"}, {19, "limited"}, {0, "limited"},
	} {
		if got := scoreBand(tc.score); got != tc.want {
			t.Fatalf("scoreBand(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}
