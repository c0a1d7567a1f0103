// Package ownerstats folds draft picks into per-owner statistics, ranks the
// owners by hit rate and writes advisory text for the current user.
package ownerstats

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/okian/draftintel/internal/domain/model"
	"github.com/okian/draftintel/internal/domain/types"
)

// PickSource resolves a draft id to its picks in draft order.
type PickSource interface {
	DraftPicks(ctx context.Context, draftID string) ([]model.Pick, error)
}

// PickSourceFunc adapts a function to PickSource.
type PickSourceFunc func(ctx context.Context, draftID string) ([]model.Pick, error)

// DraftPicks calls f.
func (f PickSourceFunc) DraftPicks(ctx context.Context, draftID string) ([]model.Pick, error) {
	return f(ctx, draftID)
}

// Input is everything one aggregation pass reads.
type Input struct {
	DraftIDs      []string
	Picks         PickSource
	Rosters       []model.Roster
	Users         []model.User
	CurrentUserID string
}

// Result is the ranked owner list plus fold counters.
type Result struct {
	Owners []types.OwnerRecord

	Folded               int
	SkippedNoRoster      int
	SkippedUnknownRoster int
}

// User returns the current user's record, or nil when the user owns no
// roster that made a pick.
func (r Result) User() *types.OwnerRecord {
	for i := range r.Owners {
		if r.Owners[i].IsYou {
			return &r.Owners[i]
		}
	}
	return nil
}

// Aggregate fetches every draft's picks, folds them into owner records,
// derives rates, ranks owners by hit rate and annotates the current user.
// Any fetch error aborts the pass; nothing partial is returned.
func Aggregate(ctx context.Context, in Input, opts ...Option) (Result, error) {
	const op = "ownerstats.aggregate"
	if in.Picks == nil {
		return Result{}, fmt.Errorf("%s: %w", op, ErrNoPickSource)
	}
	s := settings{concurrency: 1}
	for _, opt := range opts {
		opt(&s)
	}

	perDraft, err := fetchAll(ctx, in.Picks, in.DraftIDs, s.concurrency)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", op, err)
	}

	f := newFolder(in.Rosters, in.Users, in.CurrentUserID)
	for _, picks := range perDraft {
		for _, p := range picks {
			f.fold(p)
		}
	}

	owners := f.records()
	derive(owners)
	rank(owners)
	for i := range owners {
		if owners[i].IsYou {
			advise(&owners[i], owners)
			break
		}
	}

	return Result{
		Owners:               owners,
		Folded:               f.folded,
		SkippedNoRoster:      f.noRoster,
		SkippedUnknownRoster: f.unknownRoster,
	}, nil
}

// fetchAll returns picks indexed like draftIDs. With limit 1 the drafts are
// fetched one after another.
func fetchAll(ctx context.Context, src PickSource, draftIDs []string, limit int) ([][]model.Pick, error) {
	out := make([][]model.Pick, len(draftIDs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, id := range draftIDs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			picks, err := src.DraftPicks(gctx, id)
			if err != nil {
				return fmt.Errorf("%w: draft %s: %w", ErrFetchPicks, id, err)
			}
			out[i] = picks
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// folder accumulates picks per owner in first-seen order.
type folder struct {
	rosters       map[int]*model.Roster
	users         map[string]*model.User
	currentUserID string

	order  []string
	owners map[string]*types.OwnerRecord

	folded        int
	noRoster      int
	unknownRoster int
}

func newFolder(rosters []model.Roster, users []model.User, currentUserID string) *folder {
	f := &folder{
		rosters:       make(map[int]*model.Roster, len(rosters)),
		users:         make(map[string]*model.User, len(users)),
		currentUserID: currentUserID,
		owners:        make(map[string]*types.OwnerRecord),
	}
	// first match wins, like a linear search
	for i := range rosters {
		if _, ok := f.rosters[rosters[i].RosterID]; !ok {
			f.rosters[rosters[i].RosterID] = &rosters[i]
		}
	}
	for i := range users {
		if _, ok := f.users[users[i].UserID]; !ok {
			f.users[users[i].UserID] = &users[i]
		}
	}
	return f
}

func (f *folder) fold(p model.Pick) {
	if !p.HasRoster() {
		f.noRoster++
		return
	}
	roster, ok := f.rosters[p.RosterID]
	if !ok {
		f.unknownRoster++
		return
	}

	rec, ok := f.owners[roster.OwnerID]
	if !ok {
		rec = &types.OwnerRecord{
			ID:    roster.OwnerID,
			Name:  f.users[roster.OwnerID].Name(),
			IsYou: f.currentUserID != "" && roster.OwnerID == f.currentUserID,
			Picks: []model.Pick{},
		}
		f.owners[roster.OwnerID] = rec
		f.order = append(f.order, roster.OwnerID)
	}

	// Retention is checked against today's roster whatever the draft year,
	// and a hit is currently the same thing as a retained pick.
	retained := roster.Holds(p.PlayerID)
	hit := retained

	rec.Picks = append(rec.Picks, p)
	if hit {
		rec.Hits++
	}
	if retained {
		rec.Retained++
	}
	f.folded++
}

func (f *folder) records() []types.OwnerRecord {
	out := make([]types.OwnerRecord, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, *f.owners[id])
	}
	return out
}
