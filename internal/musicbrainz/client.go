package musicbrainz

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultBaseURL = "https://musicbrainz.org/ws/2"
	defaultTimeout = 30 * time.Second

	// maxErrorBody bounds how much of a failed response is kept in errors.
	maxErrorBody = 512
)

// Client provides access to the MusicBrainz API.
// It does not throttle on its own; callers share a ratelimit.Limiter.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	log        zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithUserAgent sets the identifying User-Agent MusicBrainz requires,
// formatted as "app/version ( contact )".
func WithUserAgent(app, version, contact string) Option {
	return func(c *Client) {
		c.userAgent = UserAgent(app, version, contact)
	}
}

// WithBaseURL points the client at another WS/2 endpoint, such as a mirror.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimSuffix(u, "/")
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// NewClient creates a new MusicBrainz API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    defaultBaseURL,
		userAgent:  UserAgent("", "", ""),
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// UserAgent builds a MusicBrainz-style User-Agent string.
// Empty parts are left out.
func UserAgent(app, version, contact string) string {
	if app == "" {
		app = "backtrack"
	}
	ua := app
	if version != "" {
		ua += "/" + version
	}
	if contact != "" {
		ua += " ( " + contact + " )"
	}
	return ua
}

// SearchArtists searches for artists matching the query, best match first.
func (c *Client) SearchArtists(ctx context.Context, query string, limit int) ([]Artist, error) {
	const op = "search artists"

	params := url.Values{}
	params.Set("query", query)
	params.Set("fmt", "json")
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	reqURL := fmt.Sprintf("%s/artist?%s", c.baseURL, params.Encode())

	var result artistSearchResponse
	if err := c.getJSON(ctx, op, reqURL, &result); err != nil {
		return nil, err
	}

	return convertArtists(result.Artists), nil
}

// LookupArtist fetches a single artist by MBID. Includes such as
// IncludeArtistRels add related data to the response.
func (c *Client) LookupArtist(ctx context.Context, mbid string, includes ...string) (*ArtistDetails, error) {
	const op = "lookup artist"

	params := url.Values{}
	params.Set("fmt", "json")
	if len(includes) > 0 {
		params.Set("inc", strings.Join(includes, "+"))
	}

	reqURL := fmt.Sprintf("%s/artist/%s?%s", c.baseURL, url.PathEscape(mbid), params.Encode())

	var result artistLookupResponse
	if err := c.getJSON(ctx, op, reqURL, &result); err != nil {
		return nil, err
	}

	return convertArtistDetails(&result), nil
}

// getJSON performs a GET and decodes a 200 response into out.
func (c *Client) getJSON(ctx context.Context, op, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return &ServiceError{Op: op, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	c.log.Debug().Str("op", op).Str("url", reqURL).Msg("musicbrainz request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ServiceError{Op: op, Err: fmt.Errorf("execute request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.log.Debug().Str("op", op).Int("status", resp.StatusCode).Msg("musicbrainz request failed")
		return &ServiceError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ServiceError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// convertArtists converts raw API results to Artist structs.
func convertArtists(results []artistResult) []Artist {
	artists := make([]Artist, 0, len(results))
	for i := range results {
		artists = append(artists, convertArtist(&results[i]))
	}
	return artists
}

func convertArtist(r *artistResult) Artist {
	a := Artist{
		ID:             r.ID,
		Name:           r.Name,
		SortName:       r.SortName,
		Type:           r.Type,
		Country:        r.Country,
		Score:          r.Score,
		Disambiguation: r.Disambiguation,
	}
	if r.LifeSpan != nil {
		a.BeginYear = extractYear(r.LifeSpan.Begin)
		a.EndYear = extractYear(r.LifeSpan.End)
	}
	return a
}

// convertArtistDetails converts a raw lookup response, keeping relation
// order as returned by the service.
func convertArtistDetails(r *artistLookupResponse) *ArtistDetails {
	details := &ArtistDetails{
		Artist:    convertArtist(&r.artistResult),
		Relations: make([]Relation, 0, len(r.Relations)),
	}
	for _, rel := range r.Relations {
		details.Relations = append(details.Relations, Relation(rel))
	}
	return details
}

// extractYear returns the year portion of a date string (YYYY-MM-DD or YYYY).
func extractYear(date string) string {
	if len(date) >= 4 {
		return date[:4]
	}
	return date
}
