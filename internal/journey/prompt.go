package journey

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/expoflow/gulfood-journey/internal/store"
)

const evaluationRubric = `Score the visitor's overall relevance to a food and beverage trade show
using this rubric. Base the score on the organization and role, not on
enthusiasm or list length.

80-100  The organization is a food or beverage company (producer, processor,
        distributor, retailer, foodservice operator) or a direct buyer role.
50-79   The organization is food-adjacent (packaging, logistics, ingredients,
        hospitality, equipment, certification) with clear sourcing overlap.
20-49   The organization is tangential (general retail, finance, media,
        consulting) with only partial relevance to the show.
0-19    The organization is unrelated to food and beverage.`

const evaluationSchema = `Required JSON schema:
{
  "overallRelevanceScore": "int 0-100",
  "scoreReasoning": "string",
  "highlights": [
    {"icon":"map-pin|users|lightbulb|globe|award|star","title":"string","description":"string"}
  ],
  "topExhibitors": [
    {"exhibitorId":"int, MUST be an ID from the exhibitor list","matchScore":"int 0-100","personalizedReason":"string"}
  ]
}
Rules:
- highlights must contain 4-5 entries.
- topExhibitors must contain exactly 10 entries, ranked best match first.
- exhibitorId values must come from the exhibitor list above. Never invent IDs.`

const narrativeSchema = `Required JSON schema:
{
  "generalOverview": "string, 2-3 sentences",
  "scoreJustification": "string, 1-2 sentences",
  "benefits": ["string (4-5 entries)"],
  "recommendations": ["string (3-4 entries)"]
}`

// FilterSelfExhibitors removes catalog entries whose name overlaps the
// visitor's own organization name, so a company never sees itself ranked as a
// match. Overlap is a case-insensitive substring test in either direction.
func FilterSelfExhibitors(organization string, exhibitors []store.Exhibitor) []store.Exhibitor {
	org := strings.ToLower(strings.TrimSpace(organization))
	if org == "" {
		return exhibitors
	}
	out := make([]store.Exhibitor, 0, len(exhibitors))
	for _, e := range exhibitors {
		name := strings.ToLower(strings.TrimSpace(e.Name))
		if name != "" && (strings.Contains(org, name) || strings.Contains(name, org)) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// SampleExhibitors bounds the prompt to the first MaxPromptExhibitors
// entries. The evaluator can only rank what it was shown; IDs outside the
// sample never resolve.
func SampleExhibitors(exhibitors []store.Exhibitor) []store.Exhibitor {
	if len(exhibitors) > MaxPromptExhibitors {
		return exhibitors[:MaxPromptExhibitors]
	}
	return exhibitors
}

func truncateDescription(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= descriptionLimit {
		return s
	}
	// Cut at a rune boundary so multi-byte text never yields an invalid
	// sequence.
	cut := descriptionLimit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return strings.TrimSpace(s[:cut]) + "..."
}

func exhibitorLines(sample []store.Exhibitor) string {
	var b strings.Builder
	for _, e := range sample {
		fmt.Fprintf(&b, "ID %d: %s - %s - %s\n", e.ID, e.Name, e.Sector, truncateDescription(e.Description))
	}
	return b.String()
}

// BuildEvaluationPrompt assembles the single evaluation prompt: profile,
// rubric, bounded exhibitor sample, and output schema. Pure string
// construction with no failure mode.
func BuildEvaluationPrompt(profile VisitorProfile, sample []store.Exhibitor) string {
	return fmt.Sprintf(
		`Evaluate this Gulfood 2026 visitor and rank the most relevant exhibitors for them.

Visitor profile:
- Organization: %s
- Role: %s
- Interest categories: %s
- Attendance intents: %s

%s

Exhibitor list (%d entries):
%s
%s`,
		profile.Organization,
		profile.Role,
		joinOrNone(profile.InterestCategories),
		joinOrNone(profile.AttendanceIntents),
		evaluationRubric,
		len(sample),
		exhibitorLines(sample),
		evaluationSchema,
	)
}

// BuildNarrativePrompt assembles the second prompt from the profile plus the
// computed score and counts. It deliberately omits the match list; the
// narrative speaks to the visit as a whole.
func BuildNarrativePrompt(profile VisitorProfile, score, matchCount, categoryCount int) string {
	return fmt.Sprintf(
		`Write personalized visit-planning content for a Gulfood 2026 visitor.

Visitor profile:
- Organization: %s
- Role: %s
- Interest categories: %s
- Attendance intents: %s

Computed relevance score: %d out of 100 (fit band: %s).
Matched exhibitors: %d across %d sectors.

Frame the tone according to the fit: "excellent" should be enthusiastic and
specific, "good" confident, "fair" measured, "limited" honest about the
narrower overlap while still helpful.

%s`,
		profile.Organization,
		profile.Role,
		joinOrNone(profile.InterestCategories),
		joinOrNone(profile.AttendanceIntents),
		score,
		scoreBand(score),
		matchCount,
		categoryCount,
		narrativeSchema,
	)
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "none given"
	}
	return strings.Join(values, ", ")
}
