package service

import "errors"

// Sentinel error kinds for this package.
var (
	ErrAnalyze     = errors.New("analyze failed")
	ErrNoRetriever = errors.New("no league data retriever configured")
)
