// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gitlab.com/fisherprime/strtotime"
	"gitlab.com/fisherprime/strtotime/batch"
	"gitlab.com/fisherprime/strtotime/zone"
)

// Settings is the command's configuration, merged from flags, STRTOTIME_* variables & the config file.
type Settings struct {
	Abbreviations map[string]int `yaml:"abbreviations" mapstructure:"abbreviations"`
	Location      string         `yaml:"location" mapstructure:"location"`
	Format        string         `yaml:"format" mapstructure:"format"`
	CacheTTL      time.Duration  `yaml:"cache_ttl" mapstructure:"cache_ttl"`
	PoolSize      int            `yaml:"pool_size" mapstructure:"pool_size"`
	Debug         bool           `yaml:"debug" mapstructure:"debug"`
}

const defFormat = "rfc3339"

// DefSettings obtains the command's default Settings.
func DefSettings() Settings {
	return Settings{
		Abbreviations: map[string]int{},
		Format:        defFormat,
		CacheTTL:      zone.DefTTL,
		PoolSize:      batch.DefPoolSize,
	}
}

func setDefaults() {
	def := DefSettings()

	viper.SetDefault("abbreviations", def.Abbreviations)
	viper.SetDefault("location", def.Location)
	viper.SetDefault("format", def.Format)
	viper.SetDefault("cache_ttl", def.CacheTTL)
	viper.SetDefault("pool_size", def.PoolSize)
	viper.SetDefault("debug", def.Debug)
}

func loadSettings() (s Settings, err error) {
	s = DefSettings()
	if err = viper.Unmarshal(&s); err != nil {
		err = fmt.Errorf("error reading configuration: %w", err)
	}

	return
}

// newLogger creates the command's logger, debug messages are only emitted in debug mode.
func newLogger(s Settings) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if s.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	return logger
}

// newParser creates a Parser for the Settings.
func newParser(s Settings, logger logrus.FieldLogger) (*strtotime.Parser, error) {
	abbreviations := zone.DefAbbreviations().With(s.Abbreviations)
	resolver := zone.NewCache(zone.Chain{abbreviations, zone.Locations{}}, s.CacheTTL, zone.DefCleanupInterval)

	opts := []strtotime.Option{
		strtotime.WithConfig(&strtotime.Config{Logger: logger, Debug: s.Debug}),
		strtotime.WithZoneResolver(resolver),
	}

	if s.Location != "" {
		loc, err := time.LoadLocation(s.Location)
		if err != nil {
			return nil, fmt.Errorf("error loading location: %w", err)
		}
		opts = append(opts, strtotime.WithLocation(loc))
	}

	return strtotime.New(opts...), nil
}

// reference resolves the --ref expression against the current time.
func reference(p *strtotime.Parser) (time.Time, error) {
	now := time.Now()
	if refExpr == "" {
		return now, nil
	}

	res, err := p.Resolve(refExpr, now)
	if err != nil {
		return time.Time{}, fmt.Errorf("error resolving reference time: %w", err)
	}

	return res.Time, nil
}
