package engine

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/sportify/transfer-scout/internal/types"
)

// recentSignalLimit caps how many signals an explanation carries for
// traceability.
const recentSignalLimit = 5

// explain builds the structured justification for one scored candidate.
// It is a pure function of its inputs plus a read of recent signals; a
// failed signal read degrades to a generic explanation rather than
// failing the run.
func (e *Engine) explain(ctx context.Context, sc *types.ScoredCandidate, need *types.ClubNeedProfile) types.Explanation {
	expl := types.Explanation{
		TopReasons: []string{
			fmt.Sprintf("Position match: %s", sc.Candidate.PrimaryPosition),
			fmt.Sprintf("Age fit: %d (target: %s)", sc.Candidate.Age, ageRangeLabel(need)),
			fmt.Sprintf("Recent form score: %d%%", roundPercent(sc.PerformanceScore)),
			fmt.Sprintf("Market value: %s", FormatEUR(sc.Candidate.MarketValueEUR)),
		},
		StatsEvidence: types.StatsEvidence{
			FitScore:          roundPercent(sc.FitScore),
			PerformanceScore:  roundPercent(sc.PerformanceScore),
			AvailabilityScore: roundPercent(sc.AvailabilityScore),
		},
		GeneratedAt: time.Now().UTC(),
	}

	signals, err := e.store.PlayerSignals(ctx, sc.Candidate.ID, recentSignalLimit)
	if err != nil {
		log.Printf("Warning: signal lookup failed for %s, using generic explanation: %v", sc.Candidate.ID, err)
		expl.TopReasons = append(expl.TopReasons, "Signal history unavailable")
		return expl
	}

	for _, s := range signals {
		expl.RecentSignals = append(expl.RecentSignals, types.SignalEvidence{
			Type:      s.Type,
			Evidence:  s.Evidence,
			Timestamp: s.CreatedAt,
		})
		if s.Type == types.SignalInjury || s.Type == types.SignalSuspension {
			expl.RiskIndicators = append(expl.RiskIndicators, fmt.Sprintf("%s: %s", capitalize(s.Type), s.Evidence))
		}
	}

	return expl
}

// ageRangeLabel renders the profile's age bounds for a reason line.
func ageRangeLabel(need *types.ClubNeedProfile) string {
	switch {
	case need.AgeMin != nil && need.AgeMax != nil:
		return fmt.Sprintf("%d-%d", *need.AgeMin, *need.AgeMax)
	case need.AgeMin != nil:
		return fmt.Sprintf("%d+", *need.AgeMin)
	case need.AgeMax != nil:
		return fmt.Sprintf("up to %d", *need.AgeMax)
	default:
		return "any age"
	}
}

// FormatEUR renders a monetary value with thousands separators, e.g.
// €85,000,000.
func FormatEUR(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	digits := fmt.Sprintf("%d", v)
	var sb strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(d)
	}
	return sign + "€" + sb.String()
}

func roundPercent(score float64) int {
	return int(math.Round(score * 100))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
