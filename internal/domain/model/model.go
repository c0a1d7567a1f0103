// Package model contains the league data records read from the Sleeper API.
//
// Picks and drafts keep the raw upstream object so that responses can pass
// them through unchanged; only the fields the analyzer needs are decoded.
package model

import (
	"encoding/json"
	"fmt"
)

// League is the league metadata object, passed through verbatim.
type League = json.RawMessage

// User is one league member.
type User struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Username    string `json:"username"`
}

// Name resolves the label shown for an owner: display name, then username,
// then "Unknown".
func (u *User) Name() string {
	switch {
	case u == nil:
		return UnknownOwner
	case u.DisplayName != "":
		return u.DisplayName
	case u.Username != "":
		return u.Username
	default:
		return UnknownOwner
	}
}

// UnknownOwner labels owners missing from the user list.
const UnknownOwner = "Unknown"

// Roster is one team's current holdings.
type Roster struct {
	RosterID int      `json:"roster_id"`
	OwnerID  string   `json:"owner_id"`
	Players  []string `json:"players"`
}

// Holds reports whether playerID is on the roster today.
func (r *Roster) Holds(playerID string) bool {
	for _, p := range r.Players {
		if p == playerID {
			return true
		}
	}
	return false
}

// Draft is one draft of the league. ID is the upstream draft_id.
type Draft struct {
	ID  string
	raw json.RawMessage
}

// UnmarshalJSON keeps the whole object and extracts draft_id.
func (d *Draft) UnmarshalJSON(b []byte) error {
	var head struct {
		DraftID string `json:"draft_id"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return fmt.Errorf("decode draft: %w", err)
	}
	d.ID = head.DraftID
	d.raw = append(d.raw[:0], b...)
	return nil
}

// MarshalJSON re-emits the upstream object.
func (d Draft) MarshalJSON() ([]byte, error) {
	if len(d.raw) == 0 {
		return json.Marshal(map[string]string{"draft_id": d.ID})
	}
	return d.raw, nil
}

// Pick is one draft selection. RosterID 0 means the pick has no roster
// (null upstream).
type Pick struct {
	RosterID int
	PlayerID string
	DraftID  string
	Round    int
	PickNo   int
	raw      json.RawMessage
}

type pickFields struct {
	RosterID *int   `json:"roster_id"`
	PlayerID string `json:"player_id"`
	DraftID  string `json:"draft_id"`
	Round    int    `json:"round"`
	PickNo   int    `json:"pick_no"`
}

// UnmarshalJSON keeps the whole object and extracts the fields used for
// attribution.
func (p *Pick) UnmarshalJSON(b []byte) error {
	var f pickFields
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("decode pick: %w", err)
	}
	*p = Pick{
		PlayerID: f.PlayerID,
		DraftID:  f.DraftID,
		Round:    f.Round,
		PickNo:   f.PickNo,
		raw:      append(json.RawMessage(nil), b...),
	}
	if f.RosterID != nil {
		p.RosterID = *f.RosterID
	}
	return nil
}

// MarshalJSON re-emits the upstream object, or the known fields when the pick
// was built in code.
func (p Pick) MarshalJSON() ([]byte, error) {
	if len(p.raw) > 0 {
		return p.raw, nil
	}
	f := pickFields{PlayerID: p.PlayerID, DraftID: p.DraftID, Round: p.Round, PickNo: p.PickNo}
	if p.RosterID != 0 {
		id := p.RosterID
		f.RosterID = &id
	}
	return json.Marshal(f)
}

// HasRoster reports whether the pick is attributed to any roster.
func (p Pick) HasRoster() bool { return p.RosterID != 0 }
