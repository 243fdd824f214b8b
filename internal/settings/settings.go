// Package settings builds command configuration and loggers.
package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EnvPrefix   = "DRILLS"
	KeyLogLevel = "log-level"
	KeyConfig   = "config"
)

// New returns a viper instance seeded with defaults. Keys can be overridden
// through DRILLS_-prefixed environment variables, with dashes mapped to
// underscores (log-level -> DRILLS_LOG_LEVEL). When DRILLS_CONFIG names a
// file it is read as well.
func New(defaults map[string]any) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(KeyLogLevel, "info")
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fn := v.GetString(KeyConfig); fn != "" {
		v.SetConfigFile(fn)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config %q: %w", fn, err)
			}
		}
	}
	return v, nil
}

// Logger builds a logger at the given level. "debug" selects the
// development encoder; everything else logs JSON.
func Logger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	cfg := zap.NewProductionConfig()
	if lvl == zapcore.DebugLevel {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
