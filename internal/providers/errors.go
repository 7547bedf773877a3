package providers

import (
	"errors"
	"fmt"
)

// ErrLocationNotFound is returned by Resolve when the geocoder yields no candidate.
var ErrLocationNotFound = errors.New("location not found")

// UpstreamError reports a non-success status from the weather provider.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("weather provider returned status code: %d", e.StatusCode)
}
