// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"fmt"

	"github.com/llehouerou/backtrack/internal/musicbrainz"
)

// Op represents an operation that can fail.
type Op string

// Operation constants.
const (
	OpConfigLoad    Op = "load configuration"
	OpArtistFind    Op = "find artist"
	OpTributeLookup Op = "look up tribute artists"
)

// rateLimitHint is appended when MusicBrainz rejected the request rate.
const rateLimitHint = " (MusicBrainz is rate limiting requests; try a larger min_gap_seconds)"

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err) + hint(err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err) + hint(err)
}

func hint(err error) string {
	if musicbrainz.IsRateLimited(err) {
		return rateLimitHint
	}
	return ""
}
