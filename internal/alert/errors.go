package alert

import "errors"

var (
	ErrFetchFailed = errors.New("failed to fetch alerts")
	ErrReadFailed  = errors.New("failed to acknowledge alerts")
	// ErrStaleResult is returned when a fetch resolves after the store was reset.
	ErrStaleResult = errors.New("fetch result discarded after reset")
)
