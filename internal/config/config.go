// Package config loads trackle's settings from flag defaults, an optional
// YAML file, TRACKLE_* environment variables and explicit flags, in that
// order of precedence (later wins).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	envPrefix   = "TRACKLE_"
	defaultFile = "trackle.yaml"
	// ConfigFlag names the flag holding an explicit config file path.
	ConfigFlag = "config"
)

// Config holds all application configuration.
type Config struct {
	DB       string `koanf:"db" validate:"required"`
	ReposDir string `koanf:"repos_dir" validate:"required"`
	// Seed fixes the random study order; 0 draws a new order each session.
	Seed uint64    `koanf:"seed"`
	Log  LogConfig `koanf:"log"`
}

// LogConfig controls the zerolog output.
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Format string `koanf:"format" validate:"oneof=pretty json"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"db":         "db",
	"repos-dir":  "repos_dir",
	"seed":       "seed",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// envKeys maps lowercased variable names without the prefix to config keys.
var envKeys = map[string]string{
	"db":         "db",
	"repos_dir":  "repos_dir",
	"seed":       "seed",
	"log_level":  "log.level",
	"log_format": "log.format",
}

// DataDir is the default home of the database and repository checkouts.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".trackle"
	}
	return filepath.Join(home, ".trackle")
}

// RegisterFlags defines the configuration flags and their defaults on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	dir := DataDir()
	fs.String(ConfigFlag, "", "Path to a YAML config file (default ./trackle.yaml or ~/.trackle/trackle.yaml)")
	fs.String("db", filepath.Join(dir, "trackle.db"), "Path to the SQLite database file")
	fs.String("repos-dir", filepath.Join(dir, "repos"), "Directory for git import checkouts")
	fs.Uint64("seed", 0, "Seed for the random study order (0 = new order each run)")
	fs.String("log-level", "warn", "Log level: trace, debug, info, warn, error")
	fs.String("log-format", "pretty", "Log format: pretty or json")
}

// Load builds the Config from the sources registered on fs.
func Load(fs *pflag.FlagSet) (*Config, error) {
	_ = godotenv.Load() // .env is optional

	k := koanf.New(".")

	path, explicit := configPath(fs)
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
			}
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return envKeys[strings.ToLower(strings.TrimPrefix(s, envPrefix))]
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	err = k.Load(posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return "", nil
		}
		return key, posflag.FlagVal(fs, f)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load flags: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// configPath returns the file to read and whether the user named it.
func configPath(fs *pflag.FlagSet) (string, bool) {
	if p, err := fs.GetString(ConfigFlag); err == nil && p != "" {
		return p, true
	}
	if p := os.Getenv(envPrefix + "CONFIG"); p != "" {
		return p, true
	}
	if _, err := os.Stat(defaultFile); err == nil {
		return defaultFile, false
	}
	return filepath.Join(DataDir(), defaultFile), false
}
