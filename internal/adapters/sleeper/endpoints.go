package sleeper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/okian/draftintel/internal/domain/model"
)

// Metrics labels, one per upstream endpoint.
const (
	endpointLeague  = "league"
	endpointUsers   = "users"
	endpointRosters = "rosters"
	endpointDrafts  = "drafts"
	endpointPicks   = "picks"
)

// League fetches /league/{league_id}. The object is returned undecoded.
func (c *Client) League(ctx context.Context, leagueID string) (model.League, error) {
	var raw json.RawMessage
	if err := c.getJSON(ctx, endpointLeague, fmt.Sprintf("/league/%s", url.PathEscape(leagueID)), &raw); err != nil {
		return nil, err
	}
	return model.League(raw), nil
}

// Users fetches /league/{league_id}/users.
func (c *Client) Users(ctx context.Context, leagueID string) ([]model.User, error) {
	var users []model.User
	if err := c.getJSON(ctx, endpointUsers, fmt.Sprintf("/league/%s/users", url.PathEscape(leagueID)), &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Rosters fetches /league/{league_id}/rosters.
func (c *Client) Rosters(ctx context.Context, leagueID string) ([]model.Roster, error) {
	var rosters []model.Roster
	if err := c.getJSON(ctx, endpointRosters, fmt.Sprintf("/league/%s/rosters", url.PathEscape(leagueID)), &rosters); err != nil {
		return nil, err
	}
	return rosters, nil
}

// Drafts fetches /league/{league_id}/drafts.
func (c *Client) Drafts(ctx context.Context, leagueID string) ([]model.Draft, error) {
	var drafts []model.Draft
	if err := c.getJSON(ctx, endpointDrafts, fmt.Sprintf("/league/%s/drafts", url.PathEscape(leagueID)), &drafts); err != nil {
		return nil, err
	}
	return drafts, nil
}

// DraftPicks fetches /draft/{draft_id}/picks.
func (c *Client) DraftPicks(ctx context.Context, draftID string) ([]model.Pick, error) {
	var picks []model.Pick
	if err := c.getJSON(ctx, endpointPicks, fmt.Sprintf("/draft/%s/picks", url.PathEscape(draftID)), &picks); err != nil {
		return nil, err
	}
	return picks, nil
}
