// Package config loads deskpilot's runtime configuration.
//
// Sources, later ones winning:
//   - built-in defaults
//   - <data dir>/config.toml
//   - environment variables (a .env file is loaded into the environment first)
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"deskpilot/internal/utils"
)

const FileName = "config.toml"

const (
	EnvDataDir             = "DESKPILOT_DATA_DIR"
	EnvLogLevel            = "DESKPILOT_LOG_LEVEL"
	EnvLogFormat           = "DESKPILOT_LOG_FORMAT"
	EnvEnforceCommandLists = "DESKPILOT_ENFORCE_COMMAND_LISTS"
	EnvCommandHistory      = "DESKPILOT_COMMAND_HISTORY"
	EnvSearchEndpoint      = "DESKPILOT_SEARCH_ENDPOINT"
)

type Config struct {
	DataDir   string `toml:"data_dir"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`

	// EnforceCommandLists makes the executor honour the whitelist and
	// blacklist stored in settings. Off by default.
	EnforceCommandLists bool `toml:"enforce_command_lists"`

	CommandHistory     bool `toml:"command_history"`
	HistoryOutputLimit int  `toml:"history_output_limit"`

	Search SearchConfig `toml:"search"`
}

type SearchConfig struct {
	Endpoint     string `toml:"endpoint"`
	DefaultLimit int    `toml:"default_limit"`
	CacheTTL     string `toml:"cache_ttl"`
	Timeout      string `toml:"timeout"`
}

func Default() Config {
	return Config{
		DataDir:            DefaultDataDir(),
		LogLevel:           "info",
		LogFormat:          "text",
		CommandHistory:     true,
		HistoryOutputLimit: 4000,
		Search: SearchConfig{
			Endpoint:     "https://api.search.brave.com/res/v1/web/search",
			DefaultLimit: 5,
			CacheTTL:     "5m",
			Timeout:      "15s",
		},
	}
}

// Load builds the configuration. dataDirOverride, when non-empty, takes
// precedence over every other data directory source.
func Load(dataDirOverride string) (Config, error) {
	if err := utils.LoadEnv(); err != nil {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	if v := os.Getenv(EnvDataDir); v != "" {
		cfg.DataDir = v
	}
	if dataDirOverride != "" {
		cfg.DataDir = dataDirOverride
	}
	dataDir := cfg.DataDir

	path := filepath.Join(dataDir, FileName)
	if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	// The data dir chosen above decides where config.toml lives; a data_dir
	// inside the file only applies when nothing more specific was given.
	if os.Getenv(EnvDataDir) != "" || dataDirOverride != "" {
		cfg.DataDir = dataDir
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv(EnvSearchEndpoint); v != "" {
		cfg.Search.Endpoint = v
	}
	for name, dst := range map[string]*bool{
		EnvEnforceCommandLists: &cfg.EnforceCommandLists,
		EnvCommandHistory:      &cfg.CommandHistory,
	} {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*dst = b
	}
	return nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return errors.New("data_dir is required")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be 'text' or 'json', got %q", c.LogFormat)
	}
	if c.HistoryOutputLimit <= 0 {
		return errors.New("history_output_limit must be positive")
	}
	if c.Search.DefaultLimit <= 0 {
		return errors.New("search.default_limit must be positive")
	}
	if _, err := c.SearchCacheTTL(); err != nil {
		return err
	}
	if _, err := c.SearchTimeout(); err != nil {
		return err
	}
	return nil
}

func (c Config) SearchCacheTTL() (time.Duration, error) {
	d, err := time.ParseDuration(c.Search.CacheTTL)
	if err != nil {
		return 0, fmt.Errorf("search.cache_ttl: %w", err)
	}
	return d, nil
}

func (c Config) SearchTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.Search.Timeout)
	if err != nil {
		return 0, fmt.Errorf("search.timeout: %w", err)
	}
	return d, nil
}
