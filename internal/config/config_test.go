//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for name := range envKeys {
		t.Setenv(name, "")
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) != 2 {
		t.Fatalf("getConfigPaths() returned %d paths, want 2", len(paths))
	}

	// First path should live under the XDG config dir
	if filepath.Base(filepath.Dir(paths[0])) != appName {
		t.Errorf("first config path = %q, want it under %q", paths[0], appName)
	}

	// Last path should be local config.toml
	lastPath := paths[len(paths)-1]
	if lastPath != "config.toml" {
		t.Errorf("last config path = %q, want %q", lastPath, "config.toml")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := load([]string{filepath.Join(t.TempDir(), "missing.toml")})
	if err != nil {
		t.Fatalf("load() error: %v", err)
	}

	want := Default()
	if cfg.MusicBrainz != want.MusicBrainz {
		t.Errorf("MusicBrainz = %+v, want %+v", cfg.MusicBrainz, want.MusicBrainz)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
}

func TestLoad_FilePriority(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	user := writeConfig(t, dir, "user.toml", `
log_level = "debug"

[musicbrainz]
app_name = "UserApp"
contact_email = "user@example.com"
min_gap_seconds = 2.5
`)
	local := writeConfig(t, dir, "local.toml", `
[musicbrainz]
app_name = "LocalApp"
base_url = "http://localhost:5000/ws/2/"
`)

	cfg, err := load([]string{user, local})
	if err != nil {
		t.Fatalf("load() error: %v", err)
	}

	mb := cfg.MusicBrainz
	if mb.AppName != "LocalApp" {
		t.Errorf("AppName = %q, want LocalApp (last file wins)", mb.AppName)
	}
	if mb.ContactEmail != "user@example.com" {
		t.Errorf("ContactEmail = %q, want user@example.com", mb.ContactEmail)
	}
	if mb.AppVersion != DefaultAppVersion {
		t.Errorf("AppVersion = %q, want default %q", mb.AppVersion, DefaultAppVersion)
	}
	if mb.MinGapSeconds != 2.5 {
		t.Errorf("MinGapSeconds = %v, want 2.5", mb.MinGapSeconds)
	}
	if mb.BaseURL != "http://localhost:5000/ws/2" {
		t.Errorf("BaseURL = %q, want trailing slash trimmed", mb.BaseURL)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.toml", `
[musicbrainz]
app_name = "FileApp"
app_version = "9.9"
`)

	t.Setenv("MB_APP_NAME", "EnvApp")
	t.Setenv("MB_CONTACT_EMAIL", "env@example.com")
	t.Setenv("MB_MIN_GAP_SECONDS", "3")
	t.Setenv("BACKTRACK_LOG_LEVEL", "warn")

	cfg, err := load([]string{path})
	if err != nil {
		t.Fatalf("load() error: %v", err)
	}

	mb := cfg.MusicBrainz
	if mb.AppName != "EnvApp" {
		t.Errorf("AppName = %q, want EnvApp", mb.AppName)
	}
	if mb.AppVersion != "9.9" {
		t.Errorf("AppVersion = %q, want 9.9 from file", mb.AppVersion)
	}
	if mb.ContactEmail != "env@example.com" {
		t.Errorf("ContactEmail = %q, want env@example.com", mb.ContactEmail)
	}
	if mb.MinGapSeconds != 3 {
		t.Errorf("MinGapSeconds = %v, want 3", mb.MinGapSeconds)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
}

func TestLoad_InvalidFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, t.TempDir(), "config.toml", "[musicbrainz\napp_name = ")

	if _, err := load([]string{path}); err == nil {
		t.Error("load() expected error for malformed TOML")
	}
}

func TestEnvValue(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"MB_APP_NAME", "musicbrainz.app_name"},
		{"MB_APP_VERSION", "musicbrainz.app_version"},
		{"MB_CONTACT_EMAIL", "musicbrainz.contact_email"},
		{"MB_MIN_GAP_SECONDS", "musicbrainz.min_gap_seconds"},
		{"MB_BASE_URL", "musicbrainz.base_url"},
		{"BACKTRACK_LOG_LEVEL", "log_level"},
		{"HOME", ""},
		{"mb_app_name", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, _ := envValue(tt.name, "x")
			if key != tt.expected {
				t.Errorf("envValue(%q) key = %q, want %q", tt.name, key, tt.expected)
			}
		})
	}

	// Empty values are skipped so they cannot blank out file settings
	if key, _ := envValue("MB_APP_NAME", " "); key != "" {
		t.Errorf("envValue with blank value key = %q, want empty", key)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{
		MusicBrainz: MusicBrainzConfig{
			AppName:       "  ",
			MinGapSeconds: -1,
		},
	}
	cfg.applyDefaults()

	if cfg.MusicBrainz != Default().MusicBrainz {
		t.Errorf("MusicBrainz = %+v, want defaults", cfg.MusicBrainz)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
}

func TestMusicBrainzConfig_MinGap(t *testing.T) {
	tests := []struct {
		name     string
		secs     float64
		expected time.Duration
	}{
		{"default", DefaultMinGapSeconds, 1100 * time.Millisecond},
		{"whole seconds", 2, 2 * time.Second},
		{"fractional", 0.25, 250 * time.Millisecond},
		{"zero falls back", 0, 1100 * time.Millisecond},
		{"negative falls back", -3, 1100 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MusicBrainzConfig{MinGapSeconds: tt.secs}
			if got := m.MinGap(); got != tt.expected {
				t.Errorf("MinGap() = %v, want %v", got, tt.expected)
			}
		})
	}
}
