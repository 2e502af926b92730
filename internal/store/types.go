package store

import "time"

// Exhibitor is the catalog's read-only projection of an exhibiting company.
// IDs are stable and serve as the join key between AI ranking output and
// catalog truth; nothing downstream ever invents exhibitor data.
type Exhibitor struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Sector      string `db:"sector" json:"sector"`
	Country     string `db:"country" json:"country"`
	Description string `db:"description" json:"description"`
	Booth       string `db:"booth" json:"booth"`
}

// MatchedExhibitor is an exhibitor enriched with the per-visitor match score
// and reason produced by the evaluator.
type MatchedExhibitor struct {
	Exhibitor
	MatchScore int    `json:"matchScore"`
	Reason     string `json:"reason"`
}

type Lead struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	Organization string    `db:"organization" json:"organization"`
	Category     string    `db:"category" json:"category"`
	CapturedVia  string    `db:"captured_via" json:"capturedVia"`
	ReferralCode string    `db:"referral_code" json:"referralCode,omitempty"`
	CreatedAt    time.Time `db:"-" json:"createdAt"`
}

// ReportData is the denormalized snapshot written alongside a journey plan so
// a later PDF export can render without re-joining the catalog.
type ReportData struct {
	Exhibitors []MatchedExhibitor `json:"exhibitors"`
	Sessions   []any              `json:"sessions"`
	Categories []string           `json:"categories"`
}

// JourneyPlan is the durable record of one "Generate My Journey Plan"
// submission. Rows are insert-only; there is no update path.
type JourneyPlan struct {
	ID                  int64      `json:"id"`
	Token               string     `json:"token"`
	LeadID              *int64     `json:"leadId"`
	Name                string     `json:"name,omitempty"`
	Email               string     `json:"email"`
	Organization        string     `json:"organization"`
	Role                string     `json:"role"`
	InterestCategories  []string   `json:"interestCategories"`
	AttendanceIntents   []string   `json:"attendanceIntents"`
	SessionID           string     `json:"sessionId,omitempty"`
	RelevanceScore      int        `json:"relevanceScore"`
	GeneralOverview     string     `json:"generalOverview"`
	ScoreJustification  string     `json:"scoreJustification"`
	Benefits            []string   `json:"benefits"`
	Recommendations     []string   `json:"recommendations"`
	MatchedExhibitorIDs []int64    `json:"matchedExhibitorIds"`
	MatchedSessionIDs   []int64    `json:"matchedSessionIds"`
	Categories          []string   `json:"categories"`
	ReportData          ReportData `json:"reportData"`
	CreatedAt           time.Time  `json:"createdAt"`
}

// GeneratedReport records one PDF export of a journey plan.
type GeneratedReport struct {
	ID            string    `json:"id"`
	JourneyPlanID int64     `json:"journeyPlanId"`
	Filename      string    `json:"filename"`
	ContentType   string    `json:"contentType"`
	CreatedAt     time.Time `json:"createdAt"`
}

// AnalyticsSummary is the organizer dashboard rollup.
type AnalyticsSummary struct {
	LeadCount            int            `json:"leadCount"`
	JourneyPlanCount     int            `json:"journeyPlanCount"`
	AverageRelevance     float64        `json:"averageRelevance"`
	GeneratedReportCount int            `json:"generatedReportCount"`
	SectorDistribution   map[string]int `json:"sectorDistribution"`
}
