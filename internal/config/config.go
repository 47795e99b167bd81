package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	DataDir string `toml:"data_dir"`
	LogDir  string `toml:"log_dir"`
}

// Letterboxd contains configuration for the watchlist site.
type Letterboxd struct {
	BaseURL string `toml:"base_url"`
	Profile string `toml:"profile"`
}

// Allocine contains configuration for the showtime site and its catalog.
type Allocine struct {
	BaseURL      string `toml:"base_url"`
	ShowtimesURL string `toml:"showtimes_url"`
	City         string `toml:"city"`
	FilmsPath    string `toml:"films_path"`
	CitiesPath   string `toml:"cities_path"`
	CatalogPages int    `toml:"catalog_pages"`
}

// Subscriber contains the per-user delivery and filtering preferences.
type Subscriber struct {
	Email       string   `toml:"email"`
	ZipPrefixes []string `toml:"zip_prefixes"`
	WindowDays  int      `toml:"window_days"`
	Locale      string   `toml:"locale"`
}

// SMTP contains configuration for digest delivery.
type SMTP struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Sender   string `toml:"sender"`
	Password string `toml:"password"`
}

// Fetch contains outbound HTTP retry and throttling settings.
type Fetch struct {
	RetryMax        int `toml:"retry_max"`
	TimeoutSeconds  int `toml:"timeout_seconds"`
	MinDelaySeconds int `toml:"min_delay_seconds"`
	MaxDelaySeconds int `toml:"max_delay_seconds"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for Cinewatch.
//
// Configuration sections by subsystem:
//   - Paths: data and log directories
//   - Letterboxd: watchlist profile and site endpoint
//   - Allocine: showtime feed endpoints, city, and catalog documents
//   - Subscriber: digest recipient, zip prefixes, date window, locale
//   - SMTP: digest delivery credentials
//   - Fetch: retry budget and polite request delays
//   - Logging: log format and level
type Config struct {
	Paths      Paths      `toml:"paths"`
	Letterboxd Letterboxd `toml:"letterboxd"`
	Allocine   Allocine   `toml:"allocine"`
	Subscriber Subscriber `toml:"subscriber"`
	SMTP       SMTP       `toml:"smtp"`
	Fetch      Fetch      `toml:"fetch"`
	Logging    Logging    `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/cinewatch/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("cinewatch.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories a run writes into.
func (c *Config) EnsureDirectories() error {
	dirs := []string{
		c.Paths.DataDir,
		c.Paths.LogDir,
		c.WatchlistDir(),
		c.ProgrammeDir(),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// WatchlistDir returns the directory holding watchlist snapshot exports.
func (c *Config) WatchlistDir() string {
	return filepath.Join(c.Paths.DataDir, "watchlist_films")
}

// ProgrammeDir returns the directory holding programme snapshot exports.
func (c *Config) ProgrammeDir() string {
	return filepath.Join(c.Paths.DataDir, "cinema_programme")
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
