// MovieLens - Ratings Dataset Acquisition for Recommender Training
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens

package movielens

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/movielens/internal/logging"
	"github.com/tomtom215/movielens/internal/validation"
)

// envPrefix namespaces the environment variables read by LoadConfig.
const envPrefix = "MOVIELENS_"

// ConfigPathEnvVar names an optional YAML config file for LoadConfig.
// When set, the file must exist.
const ConfigPathEnvVar = "MOVIELENS_CONFIG"

// Config controls how the ratings dataset is located, fetched, and
// logged about. The zero value plus DefaultConfig's logging settings
// is a fully working configuration.
type Config struct {
	// CacheDir is the base data directory. Empty means the
	// MOVIELENS_DATA environment variable, then ~/movielens_data.
	CacheDir string `koanf:"data" validate:"-"`

	// SourcePath, when set, loads the named ratings file directly and
	// never touches the cache, the network, or the archive.
	SourcePath string `koanf:"source" validate:"-"`

	// DownloadURL overrides the canonical GroupLens archive URL.
	// Useful for mirrors and for tests.
	DownloadURL string `koanf:"url" validate:"omitempty,url"`

	// HTTPTimeout caps the whole archive download, connection time
	// included. Zero means no limit, which is the safe default for a
	// multi-hundred-megabyte archive on a slow link.
	HTTPTimeout time.Duration `koanf:"http_timeout" validate:"min=0"`

	// DownloadRateLimit caps download throughput in bytes per second.
	// Zero means unthrottled.
	DownloadRateLimit int64 `koanf:"rate_limit" validate:"min=0"`

	// Log configures the process-wide logger for the fetch.
	Log logging.Config `koanf:"log"`
}

// DefaultConfig returns the configuration used when nothing is
// overridden: dataset cached under the default data directory,
// canonical download URL, no throttling, info-level JSON logs.
func DefaultConfig() Config {
	return Config{
		Log: logging.DefaultConfig(),
	}
}

// Validate checks the configuration against its declared constraints.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// LoadConfig builds a Config from layered sources, lowest priority
// first:
//  1. Defaults from DefaultConfig
//  2. The YAML file named by MOVIELENS_CONFIG, if that variable is set
//  3. MOVIELENS_* environment variables
//
// The result is validated before it is returned.
func LoadConfig() (*Config, error) {
	return loadConfig(os.Getenv(ConfigPathEnvVar))
}

// LoadConfigFile is LoadConfig with an explicit YAML file layered
// between defaults and environment variables. The file must exist.
func LoadConfigFile(path string) (*Config, error) {
	return loadConfig(path)
}

func loadConfig(configPath string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults from struct
	defaults := DefaultConfig()
	if err := k.Load(structs.Provider(&defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: optional YAML config file
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables (highest priority)
	if err := k.Load(env.Provider(envPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// envTransformFunc maps environment variable names to koanf config
// paths:
//
//	MOVIELENS_DATA         -> data
//	MOVIELENS_HTTP_TIMEOUT -> http_timeout
//	MOVIELENS_LOG_LEVEL    -> log.level
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	if after, ok := strings.CutPrefix(key, "log_"); ok {
		return "log." + after
	}
	return key
}
