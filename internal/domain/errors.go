package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrFetch indicates a page of photos could not be fetched. Transport
	// failures, non-2xx statuses and malformed bodies all map to it.
	ErrFetch = errors.New("failed to fetch photos")

	// ErrUnknownSource indicates the configured photo source is not supported
	ErrUnknownSource = errors.New("unknown photo source")
)
