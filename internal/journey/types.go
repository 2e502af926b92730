package journey

import "github.com/expoflow/gulfood-journey/internal/store"

const (
	// MaxPromptExhibitors bounds the catalog sample embedded in the
	// evaluation prompt.
	MaxPromptExhibitors = 50

	// MaxMatches bounds how many ranked exhibitors survive repair.
	MaxMatches = 10

	// MinHighlights is the floor enforced by the repair step.
	MinHighlights = 4

	descriptionLimit = 160
)

// Interest categories offered to visitors. The list mirrors the show's hall
// taxonomy; the server treats it as advisory rather than enforcing it.
var InterestCategories = []string{
	"Dairy",
	"Beverages",
	"Meat & Poultry",
	"Pulses, Grains & Cereals",
	"Fats & Oils",
	"Snacks & Confectionery",
	"Health & Wellness",
	"World Food",
	"Seafood",
	"Food Service",
	"Bakery",
	"Food Tech",
}

// Attendance intents offered to visitors. "Other" may be replaced by free
// text on submission.
var AttendanceIntents = []string{
	"Source new products",
	"Meet suppliers",
	"Explore market trends",
	"Attend conferences",
	"Network with industry peers",
	"Other",
}

// HighlightIcon names the evaluator may use. Anything else is coerced to
// IconStar during repair.
type HighlightIcon string

const (
	IconMapPin    HighlightIcon = "map-pin"
	IconUsers     HighlightIcon = "users"
	IconLightbulb HighlightIcon = "lightbulb"
	IconGlobe     HighlightIcon = "globe"
	IconAward     HighlightIcon = "award"
	IconStar      HighlightIcon = "star"
)

func validIcon(v HighlightIcon) bool {
	switch v {
	case IconMapPin, IconUsers, IconLightbulb, IconGlobe, IconAward, IconStar:
		return true
	default:
		return false
	}
}

// VisitorProfile is the request-scoped submission that drives one plan.
type VisitorProfile struct {
	Name               string   `json:"name,omitempty"`
	Email              string   `json:"email"`
	Organization       string   `json:"organization"`
	Role               string   `json:"role"`
	InterestCategories []string `json:"interestCategories"`
	AttendanceIntents  []string `json:"attendanceIntents"`
	SessionID          string   `json:"sessionId,omitempty"`
}

type Highlight struct {
	Icon        HighlightIcon `json:"icon"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
}

type RankedExhibitor struct {
	ExhibitorID        int64  `json:"exhibitorId"`
	MatchScore         int    `json:"matchScore"`
	PersonalizedReason string `json:"personalizedReason"`
}

// Evaluation is the first LLM call's output, validated and repaired before
// anything downstream consumes it.
type Evaluation struct {
	OverallRelevanceScore int               `json:"overallRelevanceScore"`
	ScoreReasoning        string            `json:"scoreReasoning"`
	Highlights            []Highlight       `json:"highlights"`
	TopExhibitors         []RankedExhibitor `json:"topExhibitors"`
}

// Narrative is the second LLM call's output, or the deterministic fallback
// when that call fails.
type Narrative struct {
	GeneralOverview    string   `json:"generalOverview"`
	ScoreJustification string   `json:"scoreJustification"`
	Benefits           []string `json:"benefits"`
	Recommendations    []string `json:"recommendations"`
}

// PlanResult is the full outcome of one generate invocation: the persisted
// row plus the response-only enrichments.
type PlanResult struct {
	Plan              store.JourneyPlan
	Highlights        []Highlight
	Categories        []string
	MatchedExhibitors []store.MatchedExhibitor
}

// defaultHighlights backfills structurally thin evaluator output, in this
// fixed order.
var defaultHighlights = []Highlight{
	{Icon: IconMapPin, Title: "Product Discovery Zone", Description: "Walk curated halls of new product launches across every food and beverage category."},
	{Icon: IconUsers, Title: "Industry Networking Hub", Description: "Meet buyers, distributors, and producers from over 120 countries in dedicated networking lounges."},
	{Icon: IconLightbulb, Title: "Innovation Showcase", Description: "See alt-proteins, food tech, and packaging innovation shaping the next decade of the industry."},
	{Icon: IconGlobe, Title: "International Trade Pavilions", Description: "Explore national pavilions presenting regional specialities and export-ready suppliers."},
	{Icon: IconAward, Title: "Gulfood Awards Ceremony", Description: "Celebrate the year's most outstanding products, innovations, and industry leaders."},
}

const defaultMatchReason = "Relevant exhibitor for your profile based on sector and sourcing interests."

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// scoreBand maps a relevance score to the tone label used by the narrative
// prompt and fallback templates. Bands follow the evaluation rubric.
func scoreBand(score int) string {
	switch {
	case score >= 80:
		return "excellent"
	case score >= 50:
		return "good"
	case score >= 20:
		return "fair"
	default:
		return "limited"
	}
}
