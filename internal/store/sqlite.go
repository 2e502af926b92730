package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Store is the SQLite-backed persistence layer for the exhibitor catalog,
// captured leads, journey plans, and generated report records. All JSON-shaped
// columns are stored as TEXT; timestamps as RFC3339Nano text.
type Store struct {
	db *sqlx.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS exhibitors (
	id          INTEGER PRIMARY KEY,
	name        TEXT NOT NULL,
	sector      TEXT NOT NULL,
	country     TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	booth       TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS leads (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	name          TEXT NOT NULL DEFAULT '',
	email         TEXT NOT NULL UNIQUE,
	organization  TEXT NOT NULL DEFAULT '',
	category      TEXT NOT NULL DEFAULT '',
	captured_via  TEXT NOT NULL DEFAULT '',
	referral_code TEXT NOT NULL DEFAULT '',
	created_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS journey_plans (
	id                    INTEGER PRIMARY KEY AUTOINCREMENT,
	token                 TEXT NOT NULL UNIQUE,
	lead_id               INTEGER,
	name                  TEXT NOT NULL DEFAULT '',
	email                 TEXT NOT NULL,
	organization          TEXT NOT NULL,
	role                  TEXT NOT NULL,
	interest_categories   TEXT NOT NULL DEFAULT '[]',
	attendance_intents    TEXT NOT NULL DEFAULT '[]',
	session_id            TEXT NOT NULL DEFAULT '',
	relevance_score       INTEGER NOT NULL,
	general_overview      TEXT NOT NULL DEFAULT '',
	score_justification   TEXT NOT NULL DEFAULT '',
	benefits              TEXT NOT NULL DEFAULT '[]',
	recommendations       TEXT NOT NULL DEFAULT '[]',
	matched_exhibitor_ids TEXT NOT NULL DEFAULT '[]',
	matched_session_ids   TEXT NOT NULL DEFAULT '[]',
	categories            TEXT NOT NULL DEFAULT '[]',
	report_data           TEXT NOT NULL DEFAULT '{}',
	created_at            TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS generated_reports (
	id              TEXT PRIMARY KEY,
	journey_plan_id INTEGER NOT NULL,
	filename        TEXT NOT NULL,
	content_type    TEXT NOT NULL,
	created_at      TEXT NOT NULL
);
`

func Open(dbPath string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Ping() error {
	return s.db.Ping()
}

// --- helpers ---

func timeToString(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(v string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, v)
	return t
}

func marshalJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// --- exhibitors ---

// SeedExhibitors inserts the given catalog only when the table is empty, so a
// pre-populated database is never clobbered on restart.
func (s *Store) SeedExhibitors(exhibitors []Exhibitor) error {
	var count int
	if err := s.db.Get(&count, "SELECT COUNT(*) FROM exhibitors"); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, e := range exhibitors {
		if _, err := s.db.Exec(
			`INSERT INTO exhibitors (id, name, sector, country, description, booth) VALUES (?, ?, ?, ?, ?, ?)`,
			e.ID, e.Name, e.Sector, e.Country, e.Description, e.Booth,
		); err != nil {
			return fmt.Errorf("seed exhibitor %d: %w", e.ID, err)
		}
	}
	return nil
}

// ListExhibitors returns the whole catalog ordered by id, optionally filtered
// to one sector. No pagination; the table is small by design.
func (s *Store) ListExhibitors(sector string) ([]Exhibitor, error) {
	var out []Exhibitor
	if strings.TrimSpace(sector) != "" {
		if err := s.db.Select(&out, "SELECT * FROM exhibitors WHERE sector = ? ORDER BY id", sector); err != nil {
			return nil, err
		}
		return out, nil
	}
	if err := s.db.Select(&out, "SELECT * FROM exhibitors ORDER BY id"); err != nil {
		return nil, err
	}
	return out, nil
}

// --- leads ---

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// GetLeadByEmail returns nil when no lead with the e-mail exists.
func (s *Store) GetLeadByEmail(email string) (*Lead, error) {
	row := s.db.QueryRow(
		`SELECT id, name, email, organization, category, captured_via, referral_code, created_at FROM leads WHERE email = ?`,
		normalizeEmail(email),
	)
	lead, err := scanLead(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

func (s *Store) CreateLead(lead Lead) (Lead, error) {
	lead.Email = normalizeEmail(lead.Email)
	if lead.Email == "" {
		return Lead{}, fmt.Errorf("lead email is required")
	}
	lead.CreatedAt = time.Now().UTC()
	res, err := s.db.Exec(
		`INSERT INTO leads (name, email, organization, category, captured_via, referral_code, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		lead.Name, lead.Email, lead.Organization, lead.Category, lead.CapturedVia, lead.ReferralCode, timeToString(lead.CreatedAt),
	)
	if err != nil {
		return Lead{}, fmt.Errorf("insert lead: %w", err)
	}
	lead.ID, err = res.LastInsertId()
	if err != nil {
		return Lead{}, err
	}
	return lead, nil
}

// LeadsByReferral returns the number of leads captured under a referral code
// and the most recent ones, newest first.
func (s *Store) LeadsByReferral(code string, limit int) (int, []Lead, error) {
	if limit <= 0 {
		limit = 20
	}
	var count int
	if err := s.db.Get(&count, "SELECT COUNT(*) FROM leads WHERE referral_code = ?", code); err != nil {
		return 0, nil, err
	}
	rows, err := s.db.Query(
		`SELECT id, name, email, organization, category, captured_via, referral_code, created_at FROM leads WHERE referral_code = ? ORDER BY id DESC LIMIT ?`,
		code, limit,
	)
	if err != nil {
		return 0, nil, err
	}
	defer rows.Close()
	var leads []Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return 0, nil, err
		}
		leads = append(leads, lead)
	}
	return count, leads, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(r rowScanner) (Lead, error) {
	var lead Lead
	var createdAt string
	if err := r.Scan(&lead.ID, &lead.Name, &lead.Email, &lead.Organization, &lead.Category, &lead.CapturedVia, &lead.ReferralCode, &createdAt); err != nil {
		return Lead{}, err
	}
	lead.CreatedAt = parseTime(createdAt)
	return lead, nil
}

// --- journey plans ---

// CreateJourneyPlan writes one plan row and returns it with the generated id
// and public token filled in.
func (s *Store) CreateJourneyPlan(plan JourneyPlan) (JourneyPlan, error) {
	plan.Token = uuid.NewString()
	plan.CreatedAt = time.Now().UTC()
	var leadID any
	if plan.LeadID != nil {
		leadID = *plan.LeadID
	}
	res, err := s.db.Exec(
		`INSERT INTO journey_plans (token, lead_id, name, email, organization, role,
			interest_categories, attendance_intents, session_id, relevance_score,
			general_overview, score_justification, benefits, recommendations,
			matched_exhibitor_ids, matched_session_ids, categories, report_data, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		plan.Token, leadID, plan.Name, normalizeEmail(plan.Email), plan.Organization, plan.Role,
		marshalJSON(plan.InterestCategories), marshalJSON(plan.AttendanceIntents), plan.SessionID, plan.RelevanceScore,
		plan.GeneralOverview, plan.ScoreJustification, marshalJSON(plan.Benefits), marshalJSON(plan.Recommendations),
		marshalJSON(plan.MatchedExhibitorIDs), marshalJSON(plan.MatchedSessionIDs), marshalJSON(plan.Categories),
		marshalJSON(plan.ReportData), timeToString(plan.CreatedAt),
	)
	if err != nil {
		return JourneyPlan{}, fmt.Errorf("insert journey plan: %w", err)
	}
	plan.ID, err = res.LastInsertId()
	if err != nil {
		return JourneyPlan{}, err
	}
	return plan, nil
}

// GetJourneyPlan looks up a plan by numeric id.
func (s *Store) GetJourneyPlan(id int64) (*JourneyPlan, error) {
	return s.getPlanWhere("id = ?", id)
}

// GetJourneyPlanByToken looks up a plan by its public token.
func (s *Store) GetJourneyPlanByToken(token string) (*JourneyPlan, error) {
	return s.getPlanWhere("token = ?", token)
}

func (s *Store) getPlanWhere(where string, arg any) (*JourneyPlan, error) {
	row := s.db.QueryRow(
		`SELECT id, token, lead_id, name, email, organization, role,
			interest_categories, attendance_intents, session_id, relevance_score,
			general_overview, score_justification, benefits, recommendations,
			matched_exhibitor_ids, matched_session_ids, categories, report_data, created_at
		FROM journey_plans WHERE `+where, arg,
	)
	var plan JourneyPlan
	var leadID sql.NullInt64
	var interests, intents, benefits, recs, matchedIDs, sessionIDs, categories, reportData, createdAt string
	err := row.Scan(&plan.ID, &plan.Token, &leadID, &plan.Name, &plan.Email, &plan.Organization, &plan.Role,
		&interests, &intents, &plan.SessionID, &plan.RelevanceScore,
		&plan.GeneralOverview, &plan.ScoreJustification, &benefits, &recs,
		&matchedIDs, &sessionIDs, &categories, &reportData, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if leadID.Valid {
		plan.LeadID = &leadID.Int64
	}
	_ = json.Unmarshal([]byte(interests), &plan.InterestCategories)
	_ = json.Unmarshal([]byte(intents), &plan.AttendanceIntents)
	_ = json.Unmarshal([]byte(benefits), &plan.Benefits)
	_ = json.Unmarshal([]byte(recs), &plan.Recommendations)
	_ = json.Unmarshal([]byte(matchedIDs), &plan.MatchedExhibitorIDs)
	_ = json.Unmarshal([]byte(sessionIDs), &plan.MatchedSessionIDs)
	_ = json.Unmarshal([]byte(categories), &plan.Categories)
	_ = json.Unmarshal([]byte(reportData), &plan.ReportData)
	if plan.MatchedSessionIDs == nil {
		plan.MatchedSessionIDs = []int64{}
	}
	plan.CreatedAt = parseTime(createdAt)
	return &plan, nil
}

// --- generated reports ---

func (s *Store) RecordGeneratedReport(planID int64, filename, contentType string) (GeneratedReport, error) {
	rec := GeneratedReport{
		ID:            uuid.NewString(),
		JourneyPlanID: planID,
		Filename:      filename,
		ContentType:   contentType,
		CreatedAt:     time.Now().UTC(),
	}
	_, err := s.db.Exec(
		`INSERT INTO generated_reports (id, journey_plan_id, filename, content_type, created_at) VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.JourneyPlanID, rec.Filename, rec.ContentType, timeToString(rec.CreatedAt),
	)
	if err != nil {
		return GeneratedReport{}, fmt.Errorf("insert generated report: %w", err)
	}
	return rec, nil
}

// --- analytics ---

func (s *Store) Analytics() (AnalyticsSummary, error) {
	out := AnalyticsSummary{SectorDistribution: map[string]int{}}
	if err := s.db.Get(&out.LeadCount, "SELECT COUNT(*) FROM leads"); err != nil {
		return out, err
	}
	if err := s.db.Get(&out.JourneyPlanCount, "SELECT COUNT(*) FROM journey_plans"); err != nil {
		return out, err
	}
	if err := s.db.Get(&out.GeneratedReportCount, "SELECT COUNT(*) FROM generated_reports"); err != nil {
		return out, err
	}
	var avg sql.NullFloat64
	if err := s.db.Get(&avg, "SELECT AVG(relevance_score) FROM journey_plans"); err != nil {
		return out, err
	}
	if avg.Valid {
		out.AverageRelevance = avg.Float64
	}

	rows, err := s.db.Query("SELECT categories FROM journey_plans")
	if err != nil {
		return out, err
	}
	defer rows.Close()
	for rows.Next() {
		var blob string
		if err := rows.Scan(&blob); err != nil {
			return out, err
		}
		var sectors []string
		_ = json.Unmarshal([]byte(blob), &sectors)
		for _, sec := range sectors {
			out.SectorDistribution[sec]++
		}
	}
	return out, rows.Err()
}
