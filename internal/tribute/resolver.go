// Package tribute resolves artist names to MusicBrainz IDs and lists the
// tribute acts related to an artist.
package tribute

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/llehouerou/backtrack/internal/musicbrainz"
	"github.com/llehouerou/backtrack/internal/ratelimit"
)

// Client defines the MusicBrainz calls used by the resolver.
// This interface allows for easy mocking in tests.
type Client interface {
	SearchArtists(ctx context.Context, query string, limit int) ([]musicbrainz.Artist, error)
	LookupArtist(ctx context.Context, mbid string, includes ...string) (*musicbrainz.ArtistDetails, error)
}

// Artist is a tribute act found through an artist relation.
type Artist struct {
	ID   string
	Name string
}

// Resolver issues throttled MusicBrainz requests on behalf of callers.
type Resolver struct {
	client  Client
	limiter *ratelimit.Limiter
	log     zerolog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for skipped-record tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Resolver) {
		r.log = l
	}
}

// NewResolver creates a resolver. Every request waits on limiter first,
// so the limiter should be shared with anything else calling MusicBrainz.
// A nil limiter gets a private one with the default gap.
func NewResolver(client Client, limiter *ratelimit.Limiter, opts ...Option) *Resolver {
	if limiter == nil {
		limiter = ratelimit.New(ratelimit.DefaultGap)
	}
	r := &Resolver{
		client:  client,
		limiter: limiter,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FindArtistID returns the MBID of the best search match for name.
// found is false when name is blank, nothing matches, or the match has no ID.
// Request failures are wrapped with the name; errors.As still reaches the
// underlying *musicbrainz.ServiceError.
func (r *Resolver) FindArtistID(ctx context.Context, name string) (id string, found bool, err error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false, nil
	}

	r.limiter.Acquire()
	artists, err := r.client.SearchArtists(ctx, name, 1)
	if err != nil {
		return "", false, fmt.Errorf("find artist %q: %w", name, err)
	}
	if len(artists) == 0 || artists[0].ID == "" {
		return "", false, nil
	}
	return artists[0].ID, true, nil
}

// TributeArtists returns the artists linked to originalID by a relation whose
// type mentions "tribute", in the order the service lists them, without
// duplicates. The result is never nil when err is nil. Request failures are
// wrapped like in FindArtistID.
func (r *Resolver) TributeArtists(ctx context.Context, originalID string) ([]Artist, error) {
	if originalID == "" {
		return []Artist{}, nil
	}

	r.limiter.Acquire()
	details, err := r.client.LookupArtist(ctx, originalID, musicbrainz.IncludeArtistRels)
	if err != nil {
		return nil, fmt.Errorf("get tribute artists for %s: %w", originalID, err)
	}
	if details == nil {
		return []Artist{}, nil
	}
	return r.filterTributes(details.Relations), nil
}

// filterTributes keeps tribute relations whose related artist has both an ID
// and a name. The first occurrence of each ID wins.
func (r *Resolver) filterTributes(relations []musicbrainz.Relation) []Artist {
	result := []Artist{}
	seen := make(map[string]struct{})

	for i := range relations {
		rel := &relations[i]
		if !IsTributeRelation(rel.Type) {
			continue
		}

		other := rel.Artist
		if other == nil {
			r.log.Debug().Str("type", rel.Type).Msg("skipping tribute relation without artist")
			continue
		}
		if other.ID == "" || other.Name == "" {
			r.log.Debug().
				Str("type", rel.Type).
				Str("id", other.ID).
				Str("name", other.Name).
				Msg("skipping tribute relation with incomplete artist")
			continue
		}

		if _, dup := seen[other.ID]; dup {
			continue
		}
		seen[other.ID] = struct{}{}
		result = append(result, Artist{ID: other.ID, Name: other.Name})
	}

	return result
}

// IsTributeRelation reports whether a relation type label denotes a tribute,
// e.g. "tribute" or "is a tribute to". Matching ignores case.
func IsTributeRelation(relType string) bool {
	return strings.Contains(strings.ToLower(relType), "tribute")
}
