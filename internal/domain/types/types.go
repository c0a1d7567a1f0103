// Package types contains the result shapes returned by the analyzer.
package types

import "github.com/okian/draftintel/internal/domain/model"

// OwnerRecord is one owner's draft performance. Field names follow the JSON
// contract consumed by the dashboard.
type OwnerRecord struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	IsYou       bool         `json:"isYou"`
	Picks       []model.Pick `json:"picks"`
	Hits        int          `json:"hits"`
	Retained    int          `json:"retained"`
	TotalPoints float64      `json:"totalPoints"`

	TotalPicks       int `json:"totalPicks"`
	HitRate          int `json:"hitRate"`
	RetentionRate    int `json:"retentionRate"`
	AvgPointsPerPick int `json:"avgPointsPerPick"`
	LeagueRank       int `json:"leagueRank"`

	// Advisory is set only on the current user's record. Its fields are
	// promoted into the record's JSON object when present.
	*Advisory
}

// Advisory is the personalized commentary for the current user.
type Advisory struct {
	Strengths            []string `json:"strengths"`
	Weaknesses           []string `json:"weaknesses"`
	TradeRecommendations []string `json:"tradeRecommendations"`
}

// NewAdvisory returns an advisory with empty, non-nil lists so they encode
// as [] rather than null.
func NewAdvisory() *Advisory {
	return &Advisory{
		Strengths:            []string{},
		Weaknesses:           []string{},
		TradeRecommendations: []string{},
	}
}

// Report is the payload of one analysis.
type Report struct {
	League     model.League  `json:"league"`
	Drafts     []model.Draft `json:"drafts"`
	OwnerStats []OwnerRecord `json:"ownerStats"`
	UserStats  *OwnerRecord  `json:"userStats,omitempty"`
}
