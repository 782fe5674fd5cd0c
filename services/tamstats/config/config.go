package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const (
	// EnvironmentProduction posts to the Dashing server on port 80
	EnvironmentProduction = "production"
	// EnvironmentDevelopment posts to the Dashing server on port 3030
	EnvironmentDevelopment = "development"

	// DefaultDashingHost is the Dashing server used when none is provided
	DefaultDashingHost = "dashing.local"
	// DefaultWidget is the Dashing widget the series is posted to
	DefaultWidget = "sabresessions"
	// DefaultNumPoints is the number of history values plotted
	DefaultNumPoints = 12
	// DefaultInterval keeps every value of the selected history
	DefaultInterval = 1

	defaultHeader          = "# Time, TAM Sessions"
	defaultFieldIndex      = 56
	defaultFetchTimeout    = 30
	defaultPublishTimeout  = 10
	historyFileExtension   = ".history"
	dashingHostPlainPrefix = "http://"
)

var environmentPorts = map[string]string{
	EnvironmentProduction:  "80",
	EnvironmentDevelopment: "3030",
}

// ErrBadEnvironment signals an unknown Dashing environment name
var ErrBadEnvironment = errors.New("bad environment setting")

// ErrMissingAuthToken signals that no Dashing authentication token was provided
var ErrMissingAuthToken = errors.New("missing Dashing authentication token")

// ErrMissingEndpoint signals that no HTTP endpoint for the metric lookup was provided
var ErrMissingEndpoint = errors.New("missing HTTP endpoint")

// ErrInvalidNumPoints signals a number of points lower than 1
var ErrInvalidNumPoints = errors.New("number of points should be at least 1")

// ErrInvalidInterval signals a skip interval lower than 1
var ErrInvalidInterval = errors.New("skip interval should be at least 1")

// RunConfig holds everything a single job run needs. It maps to the optional config.toml file
type RunConfig struct {
	DashingHost             string `toml:"DashingHost"`
	DashingPort             string `toml:"-"`
	Environment             string `toml:"Environment"`
	Widget                  string `toml:"Widget"`
	AuthToken               string `toml:"AuthToken"`
	HTTPEndpoint            string `toml:"HTTPEndpoint"`
	LoginKey                string `toml:"LoginKey"`
	FieldIndex              int    `toml:"FieldIndex"`
	ValuePath               string `toml:"ValuePath"`
	NumPoints               int    `toml:"NumPoints"`
	Interval                int    `toml:"Interval"`
	SkipLookup              bool   `toml:"SkipLookup"`
	HistoryFile             string `toml:"HistoryFile"`
	Header                  string `toml:"Header"`
	FetchTimeoutInSeconds   uint32 `toml:"FetchTimeoutInSeconds"`
	PublishTimeoutInSeconds uint32 `toml:"PublishTimeoutInSeconds"`
}

// DefaultRunConfig returns the configuration used when nothing else is provided. The history file
// sits next to the program, e.g. /usr/local/bin/tamstats -> /usr/local/bin/tamstats.history
func DefaultRunConfig(programName string) RunConfig {
	return RunConfig{
		DashingHost:             DefaultDashingHost,
		Environment:             EnvironmentProduction,
		Widget:                  DefaultWidget,
		FieldIndex:              defaultFieldIndex,
		NumPoints:               DefaultNumPoints,
		Interval:                DefaultInterval,
		HistoryFile:             DefaultHistoryFile(programName),
		Header:                  defaultHeader,
		FetchTimeoutInSeconds:   defaultFetchTimeout,
		PublishTimeoutInSeconds: defaultPublishTimeout,
	}
}

// DefaultHistoryFile derives the history file path from the program path by replacing its extension. The
// directory is kept so the file does not depend on the working directory of the caller
func DefaultHistoryFile(programName string) string {
	base := filepath.Base(programName)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	return filepath.Join(filepath.Dir(programName), base+historyFileExtension)
}

// LoadConfig parses a TOML file on top of the provided configuration. Keys missing from the file keep
// the values already present in cfg
func LoadConfig(path string, cfg RunConfig) (RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	err = toml.Unmarshal(data, &cfg)
	if err != nil {
		return RunConfig{}, fmt.Errorf("failed to decode config file: %w", err)
	}

	return cfg, nil
}

// PortForEnvironment maps a Dashing environment name to its HTTP port
func PortForEnvironment(environment string) (string, error) {
	port, ok := environmentPorts[environment]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrBadEnvironment, environment)
	}

	return port, nil
}

// Validate checks the configuration and fills the derived fields. The environment is checked first so
// that a bad environment is reported before anything else
func (cfg RunConfig) Validate() (RunConfig, error) {
	port, err := PortForEnvironment(cfg.Environment)
	if err != nil {
		return RunConfig{}, err
	}
	cfg.DashingPort = port
	cfg.DashingHost = strings.TrimPrefix(strings.TrimSpace(cfg.DashingHost), dashingHostPlainPrefix)
	cfg.AuthToken = strings.TrimSpace(cfg.AuthToken)

	if len(cfg.AuthToken) == 0 {
		return RunConfig{}, ErrMissingAuthToken
	}
	if len(strings.TrimSpace(cfg.HTTPEndpoint)) == 0 {
		return RunConfig{}, ErrMissingEndpoint
	}
	if cfg.NumPoints < 1 {
		return RunConfig{}, fmt.Errorf("%w, got %d", ErrInvalidNumPoints, cfg.NumPoints)
	}
	if cfg.Interval < 1 {
		return RunConfig{}, fmt.Errorf("%w, got %d", ErrInvalidInterval, cfg.Interval)
	}
	if cfg.FieldIndex < 0 {
		return RunConfig{}, fmt.Errorf("invalid field index %d", cfg.FieldIndex)
	}
	if len(cfg.HistoryFile) == 0 {
		return RunConfig{}, errors.New("empty history file path")
	}
	if !strings.HasPrefix(cfg.Header, "#") {
		return RunConfig{}, fmt.Errorf("history header should start with '#', got %q", cfg.Header)
	}
	if strings.ContainsAny(cfg.Header, "\r\n") {
		return RunConfig{}, fmt.Errorf("history header should be a single line, got %q", cfg.Header)
	}

	return cfg, nil
}
