// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/draftintel/internal/config"
	"github.com/okian/draftintel/internal/domain/model"
	"github.com/okian/draftintel/internal/domain/ownerstats"
	"github.com/okian/draftintel/internal/domain/types"
	"github.com/okian/draftintel/pkg/logger"
	"github.com/okian/draftintel/pkg/metrics"
)

// Retriever reads league data from the upstream fantasy API.
type Retriever interface {
	League(ctx context.Context, leagueID string) (model.League, error)
	Users(ctx context.Context, leagueID string) ([]model.User, error)
	Rosters(ctx context.Context, leagueID string) ([]model.Roster, error)
	Drafts(ctx context.Context, leagueID string) ([]model.Draft, error)
	DraftPicks(ctx context.Context, draftID string) ([]model.Pick, error)
}

// Service runs draft analyses for one league and one current user.
type Service struct {
	mu sync.RWMutex

	retriever        Retriever
	userID           string
	leagueID         string
	fetchConcurrency int

	// Run statistics
	analyses     int64
	failures     int64
	lastRunID    string
	lastDuration time.Duration
	lastOwners   int
	lastDrafts   int
	lastError    string
	lastFinished time.Time

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithRetriever sets the upstream data source.
func WithRetriever(r Retriever) Option {
	return func(s *Service) {
		if r != nil {
			s.retriever = r
		}
	}
}

// WithUserID sets the user treated as "you".
func WithUserID(id string) Option {
	return func(s *Service) {
		if id != "" {
			s.userID = id
		}
	}
}

// WithLeagueID sets the league to analyze.
func WithLeagueID(id string) Option {
	return func(s *Service) {
		if id != "" {
			s.leagueID = id
		}
	}
}

// WithFetchConcurrency bounds parallel draft pick fetches.
func WithFetchConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.fetchConcurrency = n
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		userID:           config.DefaultUserID,
		leagueID:         config.DefaultLeagueID,
		fetchConcurrency: 1,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Named("service")
	}

	return s
}

// Analyze retrieves the league, its users, rosters, drafts and every draft's
// picks, then builds the ranked owner report. Any retrieval failure fails the
// whole run.
func (s *Service) Analyze(ctx context.Context) (types.Report, error) {
	const op = "service.analyze"
	if s.retriever == nil {
		return types.Report{}, fmt.Errorf("%s: %w: %w", op, ErrAnalyze, ErrNoRetriever)
	}

	runID := uuid.NewString()
	log := s.logger.With(logger.String("run_id", runID), logger.String("league_id", s.leagueID))
	start := time.Now()
	log.Info(ctx, "analysis started")

	report, res, err := s.analyze(ctx)
	elapsed := time.Since(start)
	s.finish(runID, elapsed, report, err)

	if err != nil {
		_ = metrics.RecordAnalysis(metrics.OutcomeFailure, float64(elapsed.Milliseconds()))
		log.Error(ctx, "analysis failed", logger.Error(err), logger.Duration("elapsed", elapsed))
		return types.Report{}, fmt.Errorf("%s: %w: %w", op, ErrAnalyze, err)
	}

	_ = metrics.RecordAnalysis(metrics.OutcomeSuccess, float64(elapsed.Milliseconds()))
	metrics.RecordPicksFolded(res.Folded)
	metrics.RecordPicksSkipped(metrics.SkipNoRoster, res.SkippedNoRoster)
	metrics.RecordPicksSkipped(metrics.SkipUnknownRoster, res.SkippedUnknownRoster)
	metrics.UpdateOwners(len(report.OwnerStats))
	metrics.UpdateDrafts(len(report.Drafts))

	log.Info(ctx, "analysis finished",
		logger.Int("drafts", len(report.Drafts)),
		logger.Int("owners", len(report.OwnerStats)),
		logger.Int("picks_folded", res.Folded),
		logger.Bool("user_found", report.UserStats != nil),
		logger.Duration("elapsed", elapsed),
	)
	return report, nil
}

func (s *Service) analyze(ctx context.Context) (types.Report, ownerstats.Result, error) {
	league, err := s.retriever.League(ctx, s.leagueID)
	if err != nil {
		return types.Report{}, ownerstats.Result{}, err
	}
	users, err := s.retriever.Users(ctx, s.leagueID)
	if err != nil {
		return types.Report{}, ownerstats.Result{}, err
	}
	rosters, err := s.retriever.Rosters(ctx, s.leagueID)
	if err != nil {
		return types.Report{}, ownerstats.Result{}, err
	}
	drafts, err := s.retriever.Drafts(ctx, s.leagueID)
	if err != nil {
		return types.Report{}, ownerstats.Result{}, err
	}

	ids := make([]string, len(drafts))
	for i, d := range drafts {
		ids[i] = d.ID
	}

	res, err := ownerstats.Aggregate(ctx, ownerstats.Input{
		DraftIDs:      ids,
		Picks:         s.retriever,
		Rosters:       rosters,
		Users:         users,
		CurrentUserID: s.userID,
	}, ownerstats.WithConcurrency(s.fetchConcurrency))
	if err != nil {
		return types.Report{}, ownerstats.Result{}, err
	}

	if drafts == nil {
		drafts = []model.Draft{}
	}
	owners := res.Owners
	if owners == nil {
		owners = []types.OwnerRecord{}
	}
	return types.Report{
		League:     league,
		Drafts:     drafts,
		OwnerStats: owners,
		UserStats:  res.User(),
	}, res, nil
}

func (s *Service) finish(runID string, elapsed time.Duration, report types.Report, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.analyses++
	s.lastRunID = runID
	s.lastDuration = elapsed
	s.lastFinished = time.Now()
	if err != nil {
		s.failures++
		s.lastError = err.Error()
		return
	}
	s.lastError = ""
	s.lastOwners = len(report.OwnerStats)
	s.lastDrafts = len(report.Drafts)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"leagueId":         s.leagueID,
		"userId":           s.userID,
		"fetchConcurrency": s.fetchConcurrency,
		"analyses":         s.analyses,
		"failures":         s.failures,
	}

	if s.analyses > 0 {
		stats["lastRunId"] = s.lastRunID
		stats["lastDurationMs"] = s.lastDuration.Milliseconds()
		stats["lastOwners"] = s.lastOwners
		stats["lastDrafts"] = s.lastDrafts
		stats["lastFinishedAt"] = s.lastFinished.UTC().Format(time.RFC3339)
		if s.lastError != "" {
			stats["lastError"] = s.lastError
		}
	}

	return stats
}
