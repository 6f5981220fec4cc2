package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "backtrack"

// Defaults applied before any file or environment source.
const (
	DefaultAppName       = "BACKTRACK"
	DefaultAppVersion    = "0.1"
	DefaultContactEmail  = "no-reply@example.com"
	DefaultMinGapSeconds = 1.1
	DefaultBaseURL       = "https://musicbrainz.org/ws/2"
	DefaultLogLevel      = "info"
)

type Config struct {
	// MusicBrainz request identity and throttling
	MusicBrainz MusicBrainzConfig `koanf:"musicbrainz"`

	LogLevel string `koanf:"log_level"` // zerolog level name: debug, info, warn, error
}

// MusicBrainzConfig holds the User-Agent parts and request spacing.
type MusicBrainzConfig struct {
	AppName       string  `koanf:"app_name"`
	AppVersion    string  `koanf:"app_version"`
	ContactEmail  string  `koanf:"contact_email"`
	MinGapSeconds float64 `koanf:"min_gap_seconds"` // minimum seconds between requests (default: 1.1)
	BaseURL       string  `koanf:"base_url"`
}

// envKeys maps recognised environment variables to config keys.
var envKeys = map[string]string{
	"MB_APP_NAME":         "musicbrainz.app_name",
	"MB_APP_VERSION":      "musicbrainz.app_version",
	"MB_CONTACT_EMAIL":    "musicbrainz.contact_email",
	"MB_MIN_GAP_SECONDS":  "musicbrainz.min_gap_seconds",
	"MB_BASE_URL":         "musicbrainz.base_url",
	"BACKTRACK_LOG_LEVEL": "log_level",
}

// Default returns the configuration used when no source overrides anything.
func Default() *Config {
	return &Config{
		MusicBrainz: MusicBrainzConfig{
			AppName:       DefaultAppName,
			AppVersion:    DefaultAppVersion,
			ContactEmail:  DefaultContactEmail,
			MinGapSeconds: DefaultMinGapSeconds,
			BaseURL:       DefaultBaseURL,
		},
		LogLevel: DefaultLogLevel,
	}
}

// Load reads config files then environment variables, later sources winning.
func Load() (*Config, error) {
	return load(getConfigPaths())
}

func load(configPaths []string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	// Environment overrides files
	if err := k.Load(env.ProviderWithValue("", ".", envValue), nil); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Blank values fall back to defaults
	cfg.applyDefaults()

	// Normalize base URL (remove trailing slash)
	cfg.MusicBrainz.BaseURL = strings.TrimSuffix(cfg.MusicBrainz.BaseURL, "/")

	return cfg, nil
}

// envValue translates an environment variable to a config key and value.
// Unrecognised or empty variables map to "" and are ignored by the provider.
func envValue(name, value string) (string, any) {
	if strings.TrimSpace(value) == "" {
		return "", nil
	}
	return envKeys[name], value
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/backtrack/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func (c *Config) applyDefaults() {
	mb := &c.MusicBrainz
	if strings.TrimSpace(mb.AppName) == "" {
		mb.AppName = DefaultAppName
	}
	if strings.TrimSpace(mb.AppVersion) == "" {
		mb.AppVersion = DefaultAppVersion
	}
	if strings.TrimSpace(mb.ContactEmail) == "" {
		mb.ContactEmail = DefaultContactEmail
	}
	if mb.MinGapSeconds <= 0 {
		mb.MinGapSeconds = DefaultMinGapSeconds
	}
	if strings.TrimSpace(mb.BaseURL) == "" {
		mb.BaseURL = DefaultBaseURL
	}
	if strings.TrimSpace(c.LogLevel) == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// MinGap returns the configured request spacing as a duration.
func (m MusicBrainzConfig) MinGap() time.Duration {
	secs := m.MinGapSeconds
	if secs <= 0 {
		secs = DefaultMinGapSeconds
	}
	return time.Duration(secs * float64(time.Second))
}
