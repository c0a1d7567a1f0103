package ownerstats

import "errors"

// Sentinel kinds for aggregation errors.
var (
	ErrNoPickSource = errors.New("ownerstats: no pick source")
	ErrFetchPicks   = errors.New("ownerstats: fetch draft picks failed")
)
