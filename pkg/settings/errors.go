package settings

import "errors"

// Fetch failures. All of them mean "no configuration available" to the store.
var (
	ErrNoFetcher       = errors.New("settings fetcher not configured")
	ErrFetchTimeout    = errors.New("settings fetch timed out")
	ErrEmptyDocument   = errors.New("settings document is empty")
	ErrUnexpectedCode  = errors.New("unexpected settings response status")
	ErrMalformedBody   = errors.New("malformed settings response")
	ErrRequestRejected = errors.New("settings endpoint reported failure")
)
