// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/sportify/transfer-scout/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintNeedProfile outputs a human-readable summary of a club's need profile.
func (p *Printer) PrintNeedProfile(need *types.ClubNeedProfile) {
	if need == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Positions: %s\n", strings.Join(need.PositionsRequired, ", ")))

	if need.AgeMin != nil || need.AgeMax != nil {
		sb.WriteString("Age:       ")
		if need.AgeMin != nil {
			sb.WriteString(fmt.Sprintf("%d", *need.AgeMin))
		} else {
			sb.WriteString("any")
		}
		sb.WriteString(" - ")
		if need.AgeMax != nil {
			sb.WriteString(fmt.Sprintf("%d", *need.AgeMax))
		} else {
			sb.WriteString("any")
		}
		sb.WriteString("\n")
	}

	if need.BudgetMaxEUR != nil {
		sb.WriteString(fmt.Sprintf("Budget:    up to %s\n", formatEUR(*need.BudgetMaxEUR)))
	}
	if need.PreferredFoot != nil {
		sb.WriteString(fmt.Sprintf("Foot:      %s\n", *need.PreferredFoot))
	}
	if need.TacticalStyle != "" {
		sb.WriteString(fmt.Sprintf("Style:     %s\n", need.TacticalStyle))
	}
	if need.UrgencyLevel != "" {
		sb.WriteString(fmt.Sprintf("Urgency:   %s\n", need.UrgencyLevel))
	}

	p.printBox("CLUB NEED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs the top ranked recommendations with score
// breakdowns and leading reasons.
func (p *Printer) PrintRecommendations(recs []types.Recommendation) {
	if len(recs) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total recommendations: %d\n\n", len(recs)))

	count := min(len(recs), maxItemsToShow)
	for i := 0; i < count; i++ {
		rec := recs[i]
		name := rec.PlayerName
		if name == "" {
			name = rec.PlayerID.String()
		}
		sb.WriteString(fmt.Sprintf("#%d  %s", rec.RankPosition, name))
		if rec.PrimaryPosition != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", rec.PrimaryPosition))
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("    Score: %.3f", rec.FinalScore))
		sb.WriteString(fmt.Sprintf("  fit=%.2f perf=%.2f avail=%.2f\n",
			rec.FitScore, rec.PerformanceScore, rec.AvailabilityScore))
		if len(rec.Explanation.TopReasons) > 0 {
			reason := rec.Explanation.TopReasons[0]
			if len(reason) > 48 {
				reason = reason[:45] + "..."
			}
			sb.WriteString(fmt.Sprintf("    %s\n", reason))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(recs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(recs)-maxItemsToShow))
	}

	p.printBox("TOP RECOMMENDATIONS", sb.String())
}

// PrintIngestSummary outputs a short summary line after a news ingestion run.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintIngestSummary(sources int, elapsed string) {
	fmt.Fprintf(p.out, "Ingested news from %d sources in %s\n", sources, elapsed)
}

// formatEUR renders a euro amount with thousands separators.
func formatEUR(v int64) string {
	s := fmt.Sprintf("%d", v)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return "€" + strings.Join(parts, ",")
}
