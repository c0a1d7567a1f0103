package ownerstats

// Option applies a configuration option to an aggregation run.
type Option func(*settings)

type settings struct {
	concurrency int
}

// WithConcurrency bounds how many drafts have their picks fetched at once.
// Values below 2 keep the fetch sequential. Fold order never changes.
func WithConcurrency(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.concurrency = n
		}
	}
}
