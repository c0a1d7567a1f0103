package service

import (
	"github.com/okian/draftintel/internal/adapters/sleeper"
	"github.com/okian/draftintel/internal/config"
)

// NewFromConfig builds a Service backed by the Sleeper client described by
// cfg. Extra options are applied last.
func NewFromConfig(cfg *config.Config, opts ...Option) *Service {
	client := sleeper.NewClient(
		sleeper.WithBaseURL(cfg.BaseURL),
		sleeper.WithTimeout(cfg.HTTPTimeout()),
		sleeper.WithUserAgent(cfg.UserAgent),
	)
	base := []Option{
		WithRetriever(client),
		WithUserID(cfg.UserID),
		WithLeagueID(cfg.LeagueID),
		WithFetchConcurrency(cfg.FetchConcurrency),
	}
	return New(append(base, opts...)...)
}
