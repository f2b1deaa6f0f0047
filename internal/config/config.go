// Package config resolves rangecalc settings from flags, the environment and
// an optional config file.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/garethgeorge/rangecalc/internal/logging"
	"github.com/garethgeorge/rangecalc/internal/rangefmt"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "RANGECALC"

	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
	KeyColor     = "color"
	KeySeparator = "separator"
	KeyStats     = "stats"
	KeyDigest    = "digest"
)

type Config struct {
	LogLevel  string
	LogFormat string
	Color     rangefmt.ColorMode
	Separator string
	Stats     bool
	Digest    bool
}

// New returns a viper instance with defaults and environment binding in place.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyLogLevel, logrus.InfoLevel.String())
	v.SetDefault(KeyLogFormat, logging.FormatText)
	v.SetDefault(KeyColor, string(rangefmt.ColorAuto))
	v.SetDefault(KeySeparator, rangefmt.DefaultSeparator)
	v.SetDefault(KeyStats, false)
	v.SetDefault(KeyDigest, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile loads path into v. With an empty path it looks for rangecalc.yaml in
// the user config directory and the working directory, and a missing file is fine.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		return errors.Wrapf(v.ReadInConfig(), "read config %s", path)
	}

	v.SetConfigName("rangecalc")
	v.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "rangecalc"))
	}
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "read config")
	}
	return nil
}

// Load validates the settings held by v.
func Load(v *viper.Viper) (Config, error) {
	color, err := rangefmt.ParseColorMode(v.GetString(KeyColor))
	if err != nil {
		return Config{}, errors.Wrap(err, KeyColor)
	}
	level := v.GetString(KeyLogLevel)
	if _, err := logrus.ParseLevel(level); err != nil {
		return Config{}, errors.Wrap(err, KeyLogLevel)
	}
	format := strings.ToLower(v.GetString(KeyLogFormat))
	if format != logging.FormatText && format != logging.FormatJSON {
		return Config{}, errors.Errorf("%s: unknown log format %q", KeyLogFormat, format)
	}
	return Config{
		LogLevel:  level,
		LogFormat: format,
		Color:     color,
		Separator: v.GetString(KeySeparator),
		Stats:     v.GetBool(KeyStats),
		Digest:    v.GetBool(KeyDigest),
	}, nil
}
