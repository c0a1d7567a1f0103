package sleeper

import "errors"

// Sentinel kinds for retrieval errors. Every failure of an upstream call
// matches ErrRetrieval; ErrStatus additionally marks non-2xx responses.
var (
	ErrRetrieval = errors.New("sleeper: retrieval failed")
	ErrStatus    = errors.New("sleeper: unexpected status")
)
