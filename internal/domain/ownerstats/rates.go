package ownerstats

import (
	"math"
	"sort"

	"github.com/okian/draftintel/internal/domain/types"
)

// roundHalfUp rounds .5 toward +Inf, matching how the dashboard has always
// rounded percentages.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// percent returns round(100*part/total), or 0 when total is 0.
func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return roundHalfUp(float64(part) / float64(total) * 100)
}

// derive fills the per-owner rates once all picks are folded.
func derive(owners []types.OwnerRecord) {
	for i := range owners {
		o := &owners[i]
		o.TotalPicks = len(o.Picks)
		o.HitRate = percent(o.Hits, o.TotalPicks)
		o.RetentionRate = percent(o.Retained, o.TotalPicks)
		if o.TotalPicks > 0 {
			o.AvgPointsPerPick = roundHalfUp(o.TotalPoints / float64(o.TotalPicks))
		}
	}
}

// rank orders owners by hit rate, best first, keeping first-seen order on
// ties, and numbers them from 1.
func rank(owners []types.OwnerRecord) {
	sort.SliceStable(owners, func(i, j int) bool {
		return owners[i].HitRate > owners[j].HitRate
	})
	for i := range owners {
		owners[i].LeagueRank = i + 1
	}
}

// leagueAverages returns the mean hit rate and mean retention rate.
func leagueAverages(owners []types.OwnerRecord) (hit, retention float64) {
	if len(owners) == 0 {
		return 0, 0
	}
	var h, r int
	for _, o := range owners {
		h += o.HitRate
		r += o.RetentionRate
	}
	n := float64(len(owners))
	return float64(h) / n, float64(r) / n
}
