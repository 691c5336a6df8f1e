package domain

import "errors"

// Sentinel errors used throughout the application.
// Handlers translate these to HTTP status codes via a single mapError function.
var (
	ErrMissingText    = errors.New("missing 'text' in request body")
	ErrBodyTooLarge   = errors.New("request body too large")
	ErrScorerFailed   = errors.New("sentiment scorer failed")
	ErrUpstreamStatus = errors.New("unexpected upstream status")
)
