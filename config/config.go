package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/logtap/logtap/logger"
	"github.com/logtap/logtap/router"
)

const envPrefix = "LOGTAP"

// fileConfig mirrors the serializable subset of logger.Config.
// Writers and callbacks are wired by the caller after loading.
type fileConfig struct {
	Targets         []router.Target `mapstructure:"targets"`
	LogLocation     string          `mapstructure:"logLocation"`
	Format          string          `mapstructure:"format"`
	ConsoleNoFormat bool            `mapstructure:"consoleNoFormat"`
	Color           bool            `mapstructure:"color"`
	Trace           bool            `mapstructure:"trace"`
	KeepLast        int             `mapstructure:"keepLast"`
	Debug           bool            `mapstructure:"debug"`
	DebugLevel      int             `mapstructure:"debugLevel"`
}

// Load reads a logger configuration from the given file. The format
// follows the file extension (yaml, json, or toml). Keys outside the
// recognized set are ignored rather than rejected, and LOGTAP_
// environment variables override scalar keys present in the file
// (LOGTAP_DEBUG, LOGTAP_KEEPLAST, ...).
func Load(path string) (logger.Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return logger.Config{}, fmt.Errorf("reading logger config: %w", err)
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return logger.Config{}, fmt.Errorf("decoding logger config: %w", err)
	}

	return logger.Config{
		Targets:         fc.Targets,
		LogLocation:     fc.LogLocation,
		Format:          fc.Format,
		ConsoleNoFormat: fc.ConsoleNoFormat,
		Color:           fc.Color,
		Trace:           fc.Trace,
		KeepLast:        fc.KeepLast,
		Debug:           fc.Debug,
		DebugLevel:      fc.DebugLevel,
	}, nil
}

// New is a convenience that loads the file and constructs the logger
// in one step.
func New(path string) (*logger.Logger, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	return logger.New(cfg), nil
}
