// Package musicbrainz provides a client for the MusicBrainz API.
package musicbrainz

// Include names accepted by LookupArtist.
const (
	IncludeArtistRels = "artist-rels"
	IncludeAliases    = "aliases"
	IncludeTags       = "tags"
)

// Artist represents a MusicBrainz artist search result.
type Artist struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	SortName       string `json:"sort-name"`
	Type           string `json:"type"` // Person, Group, etc.
	Country        string `json:"country"`
	Score          int    `json:"score"` // Search relevance score (0-100)
	Disambiguation string `json:"disambiguation"`
	BeginYear      string // Extracted from life-span
	EndYear        string // Extracted from life-span
}

// ArtistDetails is a single artist fetched by MBID, with any requested includes.
type ArtistDetails struct {
	Artist
	Relations []Relation
}

// Relation links the looked-up artist to another entity.
type Relation struct {
	Type       string // free-text label, e.g. "tribute", "member of band"
	TypeID     string
	Direction  string // "forward" or "backward"
	TargetType string // "artist" for artist-rels
	Artist     *RelatedArtist
}

// RelatedArtist is the artist on the other side of a relation.
// Any field may be empty when the service omits it.
type RelatedArtist struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	SortName       string `json:"sort-name"`
	Disambiguation string `json:"disambiguation"`
}

// artistSearchResponse is the raw response from MusicBrainz artist search.
type artistSearchResponse struct {
	Count   int            `json:"count"`
	Offset  int            `json:"offset"`
	Artists []artistResult `json:"artists"`
}

// artistResult is a single artist from search results.
type artistResult struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	SortName       string    `json:"sort-name"`
	Type           string    `json:"type"`
	Country        string    `json:"country"`
	Score          int       `json:"score"`
	Disambiguation string    `json:"disambiguation"`
	LifeSpan       *lifeSpan `json:"life-span"`
}

type lifeSpan struct {
	Begin string `json:"begin"`
	End   string `json:"end"`
}

// artistLookupResponse is the response when fetching a single artist.
type artistLookupResponse struct {
	artistResult
	Relations []relationResult `json:"relations"`
}

// relationResult is a raw relation from a lookup with inc=*-rels.
type relationResult struct {
	Type       string         `json:"type"`
	TypeID     string         `json:"type-id"`
	Direction  string         `json:"direction"`
	TargetType string         `json:"target-type"`
	Artist     *RelatedArtist `json:"artist"`
}
