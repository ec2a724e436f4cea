// Package config resolves the command line configuration from flags,
// MAZEFINDER_* environment variables and an optional .env file.
//
// Precedence, highest first: changed flag, environment, .env file, default.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/katalvlaran/mazefinder/internal/logging"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "MAZEFINDER"

// Configuration keys, shared with the cobra flag names.
const (
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"
	KeyFile      = "file"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds the resolved settings.
type Config struct {
	LogLevel  string // logrus level name
	LogFormat string // logging.FormatText or logging.FormatJSON
	File      string // default maze file, may be empty
}

// Load reads envFiles into the process environment (missing files are
// skipped; with no names ".env" is tried), then resolves each key through v.
// Flags should already be bound to v under the Key* names.
func Load(v *viper.Viper, envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalid, f, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, logging.FormatText)
	v.SetDefault(KeyFile, "")

	cfg := Config{
		LogLevel:  strings.ToLower(v.GetString(KeyLogLevel)),
		LogFormat: strings.ToLower(v.GetString(KeyLogFormat)),
		File:      v.GetString(KeyFile),
	}

	return cfg, cfg.Validate()
}

// Validate checks the log format; the level is checked by logging.New.
func (c Config) Validate() error {
	switch c.LogFormat {
	case logging.FormatText, logging.FormatJSON:
		return nil
	default:
		return fmt.Errorf("%w: log format %q: must be one of [%s %s]",
			ErrInvalid, c.LogFormat, logging.FormatText, logging.FormatJSON)
	}
}
