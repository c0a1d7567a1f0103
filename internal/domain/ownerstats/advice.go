package ownerstats

import (
	"fmt"

	"github.com/okian/draftintel/internal/domain/types"
)

// Fixed advisory lines.
const (
	TopThreeStrength   = "You're a top-3 drafter in your league!"
	TradePicksAdvice   = "Consider trading future picks to more successful drafters in your league"
	ProvenPlayerAdvice = "Focus on trading for proven players rather than relying on your draft picks"
)

const topTier = 3

// advise writes strengths, weaknesses and trade recommendations for rec,
// comparing it against every ranked owner. Averages stay unrounded for the
// comparison and are rounded only in the text.
func advise(rec *types.OwnerRecord, owners []types.OwnerRecord) {
	a := types.NewAdvisory()
	avgHit, avgRetention := leagueAverages(owners)

	if float64(rec.HitRate) > avgHit {
		a.Strengths = append(a.Strengths,
			fmt.Sprintf("Your %d%% hit rate is above league average (%d%%)", rec.HitRate, roundHalfUp(avgHit)))
	} else {
		a.Weaknesses = append(a.Weaknesses,
			fmt.Sprintf("Your %d%% hit rate is below league average (%d%%)", rec.HitRate, roundHalfUp(avgHit)))
		a.TradeRecommendations = append(a.TradeRecommendations, TradePicksAdvice)
	}

	if float64(rec.RetentionRate) > avgRetention {
		a.Strengths = append(a.Strengths,
			fmt.Sprintf("You retain players well (%d%% vs %d%% avg)", rec.RetentionRate, roundHalfUp(avgRetention)))
	} else {
		a.Weaknesses = append(a.Weaknesses,
			fmt.Sprintf("You drop picks too quickly (%d%% retention vs %d%% avg)", rec.RetentionRate, roundHalfUp(avgRetention)))
	}

	switch {
	case rec.LeagueRank <= topTier:
		a.Strengths = append(a.Strengths, TopThreeStrength)
	case rec.LeagueRank >= len(owners)-2:
		a.TradeRecommendations = append(a.TradeRecommendations, ProvenPlayerAdvice)
	}

	rec.Advisory = a
}
