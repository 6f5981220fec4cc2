// Command backtrack looks up an artist on MusicBrainz and lists the tribute
// acts linked to it.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/llehouerou/backtrack/internal/config"
	"github.com/llehouerou/backtrack/internal/errmsg"
	"github.com/llehouerou/backtrack/internal/musicbrainz"
	"github.com/llehouerou/backtrack/internal/ratelimit"
	"github.com/llehouerou/backtrack/internal/tribute"
)

const (
	originalArtist = "David Bowie"
	maxListed      = 10
)

// styles renders demo output for one writer; colors are dropped when the
// writer is not a terminal.
type styles struct {
	heading lipgloss.Style
	id      lipgloss.Style
	warn    lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		heading: r.NewStyle().Bold(true),
		id:      r.NewStyle().Foreground(lipgloss.Color("240")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		fail(logger, errmsg.Format(errmsg.OpConfigLoad, err), err)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}
	logger = logger.Level(level)

	if err := run(context.Background(), os.Stdout, cfg, logger); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer, cfg *config.Config, logger zerolog.Logger) error {
	st := newStyles(out)
	mb := cfg.MusicBrainz
	client := musicbrainz.NewClient(
		musicbrainz.WithUserAgent(mb.AppName, mb.AppVersion, mb.ContactEmail),
		musicbrainz.WithBaseURL(mb.BaseURL),
		musicbrainz.WithLogger(logger),
	)
	limiter := ratelimit.New(mb.MinGap())
	resolver := tribute.NewResolver(client, limiter, tribute.WithLogger(logger))

	logger.Debug().
		Str("base_url", mb.BaseURL).
		Dur("min_gap", limiter.Gap()).
		Msg("musicbrainz client ready")

	mbid, found, err := resolver.FindArtistID(ctx, originalArtist)
	if err != nil {
		report(logger, errmsg.FormatWith(errmsg.OpArtistFind, originalArtist, err), err)
		return err
	}
	fmt.Fprintln(out, st.heading.Render(originalArtist+" MBID:"), mbid)

	if !found {
		fmt.Fprintln(out, st.warn.Render("Could not find the artist MBID."))
		return nil
	}

	tributes, err := resolver.TributeArtists(ctx, mbid)
	if err != nil {
		report(logger, errmsg.FormatWith(errmsg.OpTributeLookup, mbid, err), err)
		return err
	}

	fmt.Fprintln(out, st.heading.Render("Found tributes:"), len(tributes))
	for _, t := range tributes[:min(len(tributes), maxListed)] {
		fmt.Fprintln(out, "-", t.Name, st.id.Render(t.ID))
	}
	return nil
}

func report(logger zerolog.Logger, msg string, err error) {
	fmt.Fprintln(os.Stderr, msg)
	logger.Error().Err(err).Msg("request failed")
}

func fail(logger zerolog.Logger, msg string, err error) {
	report(logger, msg, err)
	os.Exit(1)
}
