package journey

import (
	"strings"

	"github.com/expoflow/gulfood-journey/internal/store"
)

// ResolveMatches joins the model's ranking back to the exhibitor records it
// was shown. IDs that do not appear in the sample are dropped silently; the
// model's ordering is preserved for the survivors.
func ResolveMatches(ranked []RankedExhibitor, sample []store.Exhibitor) []store.MatchedExhibitor {
	byID := make(map[int64]store.Exhibitor, len(sample))
	for _, ex := range sample {
		byID[ex.ID] = ex
	}
	matches := make([]store.MatchedExhibitor, 0, len(ranked))
	for _, r := range ranked {
		ex, ok := byID[r.ExhibitorID]
		if !ok {
			continue
		}
		reason := strings.TrimSpace(r.PersonalizedReason)
		if reason == "" {
			reason = defaultMatchReason
		}
		matches = append(matches, store.MatchedExhibitor{
			Exhibitor:  ex,
			MatchScore: clamp(r.MatchScore, 0, 100),
			Reason:     reason,
		})
	}
	return matches
}

// MatchCategories lists the distinct sectors of the matched exhibitors in
// first-seen order.
func MatchCategories(matches []store.MatchedExhibitor) []string {
	seen := make(map[string]bool, len(matches))
	categories := make([]string, 0, len(matches))
	for _, m := range matches {
		if m.Sector == "" || seen[m.Sector] {
			continue
		}
		seen[m.Sector] = true
		categories = append(categories, m.Sector)
	}
	return categories
}
