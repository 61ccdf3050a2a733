package engine

import (
	"github.com/sportify/transfer-scout/internal/types"
)

// MaxCandidates is the hard cap on the filtered candidate set.
const MaxCandidates = 500

// FilterCandidates narrows the player pool to candidates satisfying all
// constraints present on the need profile. Absent constraints impose no
// filter; an empty result is a valid outcome, not an error. The relative
// order of the pool is preserved.
func FilterCandidates(pool []types.PlayerCandidate, need *types.ClubNeedProfile) []types.PlayerCandidate {
	candidates := make([]types.PlayerCandidate, 0, len(pool))
	for _, c := range pool {
		if !matchesNeed(&c, need) {
			continue
		}
		candidates = append(candidates, c)
		if len(candidates) == MaxCandidates {
			break
		}
	}
	return candidates
}

// matchesNeed checks every hard constraint present on the profile.
func matchesNeed(c *types.PlayerCandidate, need *types.ClubNeedProfile) bool {
	if !c.IsAvailable {
		return false
	}

	if len(need.PositionsRequired) > 0 && !matchesPosition(c, need.PositionsRequired) {
		return false
	}

	if need.AgeMin != nil && c.Age < *need.AgeMin {
		return false
	}
	if need.AgeMax != nil && c.Age > *need.AgeMax {
		return false
	}

	// budget_min_eur is informational only and deliberately not enforced,
	// so undervalued players are never excluded.
	if need.BudgetMaxEUR != nil && c.MarketValueEUR > *need.BudgetMaxEUR {
		return false
	}

	if need.PreferredFoot != nil && c.PreferredFoot != *need.PreferredFoot && c.PreferredFoot != types.FootBoth {
		return false
	}

	return true
}

// matchesPosition reports whether the candidate's primary position is in
// the required set, or any secondary position intersects it.
func matchesPosition(c *types.PlayerCandidate, required []string) bool {
	if containsPosition(required, c.PrimaryPosition) {
		return true
	}
	for _, sec := range c.SecondaryPositions {
		if containsPosition(required, sec) {
			return true
		}
	}
	return false
}

func containsPosition(set []string, pos string) bool {
	for _, p := range set {
		if p == pos {
			return true
		}
	}
	return false
}
