package provider

import (
	"context"
	"errors"
)

// Record is one raw customer-shaped object as received from a provider, before
// normalization. It may be partial: any key, at any level, can be missing.
type Record = map[string]any

var (
	// ErrMissingURL means no endpoint URL is configured.
	ErrMissingURL = errors.New("provider api url is not configured")
	// ErrUpstreamStatus means the remote endpoint answered with a non-success status.
	ErrUpstreamStatus = errors.New("provider returned a non-success status")
	// ErrMalformedPayload means the response did not carry a list of records.
	ErrMalformedPayload = errors.New("provider returned a malformed payload")
)

// DataProvider fetches raw customer records from some source. It may return
// fewer or more than count records; any failure is reported as an error with no
// partial result.
type DataProvider interface {
	Fetch(ctx context.Context, count int) ([]Record, error)
}
