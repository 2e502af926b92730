// Package report turns a stored journey plan into a printable PDF document.
package report

import (
	"fmt"
	"strings"

	"github.com/expoflow/gulfood-journey/internal/store"
)

// BuildMarkdown renders the plan as the markdown document the PDF pipeline
// consumes. It reads only the plan row and its report_data snapshot, never
// the live catalog, so old plans print exactly as they were generated.
func BuildMarkdown(plan store.JourneyPlan) string {
	var b strings.Builder

	b.WriteString("# Your Gulfood 2026 Journey Plan\n\n")
	if plan.Name != "" {
		fmt.Fprintf(&b, "Prepared for **%s**", sanitize(plan.Name))
		if plan.Organization != "" {
			fmt.Fprintf(&b, " of %s", sanitize(plan.Organization))
		}
		b.WriteString("\n\n")
	} else if plan.Organization != "" {
		fmt.Fprintf(&b, "Prepared for **%s**\n\n", sanitize(plan.Organization))
	}
	fmt.Fprintf(&b, "- Role: %s\n", sanitize(plan.Role))
	if len(plan.InterestCategories) > 0 {
		fmt.Fprintf(&b, "- Interests: %s\n", sanitize(strings.Join(plan.InterestCategories, ", ")))
	}
	if len(plan.AttendanceIntents) > 0 {
		fmt.Fprintf(&b, "- Goals: %s\n", sanitize(strings.Join(plan.AttendanceIntents, ", ")))
	}
	fmt.Fprintf(&b, "- Generated: %s\n\n", plan.CreatedAt.Format("January 2, 2006"))

	fmt.Fprintf(&b, "## Event Fit: %d/100\n\n", plan.RelevanceScore)
	if plan.ScoreJustification != "" {
		fmt.Fprintf(&b, "%s\n\n", sanitize(plan.ScoreJustification))
	}
	if plan.GeneralOverview != "" {
		b.WriteString("## Overview\n\n")
		fmt.Fprintf(&b, "%s\n\n", sanitize(plan.GeneralOverview))
	}

	if len(plan.Benefits) > 0 {
		b.WriteString("## Why Attend\n\n")
		for _, benefit := range plan.Benefits {
			fmt.Fprintf(&b, "- %s\n", sanitize(benefit))
		}
		b.WriteString("\n")
	}

	if len(plan.ReportData.Exhibitors) > 0 {
		b.WriteString("## Recommended Exhibitors\n\n")
		b.WriteString("| Exhibitor | Sector | Country | Booth | Match | Why |\n")
		b.WriteString("|---|---|---|---|---|---|\n")
		for _, m := range plan.ReportData.Exhibitors {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %d%% | %s |\n",
				sanitizeCell(m.Name), sanitizeCell(m.Sector), sanitizeCell(m.Country),
				sanitizeCell(m.Booth), m.MatchScore, sanitizeCell(m.Reason))
		}
		b.WriteString("\n")
	}

	if len(plan.ReportData.Categories) > 0 {
		b.WriteString("## Sectors To Cover\n\n")
		for _, c := range plan.ReportData.Categories {
			fmt.Fprintf(&b, "- %s\n", sanitize(c))
		}
		b.WriteString("\n")
	}

	if len(plan.Recommendations) > 0 {
		b.WriteString("## Planning Recommendations\n\n")
		for i, rec := range plan.Recommendations {
			fmt.Fprintf(&b, "%d. %s\n", i+1, sanitize(rec))
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\nGulfood 2026 · Dubai World Trade Centre · 26–30 January 2026\n")
	return b.String()
}

func sanitize(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
}

// sanitizeCell additionally escapes pipes so free text cannot break the
// table column structure.
func sanitizeCell(s string) string {
	return strings.ReplaceAll(sanitize(s), "|", "\\|")
}

// Filename names the downloaded attachment for a plan.
func Filename(plan store.JourneyPlan) string {
	base := strings.TrimSpace(plan.Organization)
	if base == "" {
		base = "visitor"
	}
	slug := make([]rune, 0, len(base))
	for _, r := range strings.ToLower(base) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			slug = append(slug, r)
		case r == ' ' || r == '-' || r == '_':
			slug = append(slug, '-')
		}
	}
	out := strings.Trim(strings.Join(strings.FieldsFunc(string(slug), func(r rune) bool { return r == '-' }), "-"), "-")
	if out == "" {
		out = "visitor"
	}
	return fmt.Sprintf("gulfood-2026-journey-%s.pdf", out)
}
