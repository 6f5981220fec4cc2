package musicbrainz

import (
	"errors"
	"fmt"
	"net/http"
)

// ServiceError reports a failed call to the MusicBrainz API: a transport
// failure, an undecodable body, or a non-200 status.
type ServiceError struct {
	Op         string // "search artists", "lookup artist"
	StatusCode int    // 0 when no response was received
	Body       string
	Err        error
}

func (e *ServiceError) Error() string {
	if e.StatusCode != 0 {
		if e.Body != "" {
			return fmt.Sprintf("%s: API status %d: %s", e.Op, e.StatusCode, e.Body)
		}
		return fmt.Sprintf("%s: API status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// IsRateLimited reports whether err is a MusicBrainz rejection for exceeding
// the request rate. MusicBrainz answers those with 503.
func IsRateLimited(err error) bool {
	var se *ServiceError
	if !errors.As(err, &se) {
		return false
	}
	return se.StatusCode == http.StatusServiceUnavailable || se.StatusCode == http.StatusTooManyRequests
}
