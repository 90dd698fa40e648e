// SPDX-License-Identifier: MIT
package strtotime

import (
	"time"

	"github.com/sirupsen/logrus"
	"gitlab.com/fisherprime/strtotime/lexer"
	"gitlab.com/fisherprime/strtotime/zone"
)

type (
	// Config defines configuration options shared by [Parser]s.
	Config struct {
		// Logger for [Parser] messages.
		//
		// Preferring a public field to allow for sharing.
		Logger logrus.FieldLogger
		Debug  bool
	}

	// Option defines the Parser functional option type.
	Option func(*Parser)
)

var defConfig = DefConfig()

// DefConfig obtains the package's [Parser] default options.
func DefConfig() *Config {
	return &Config{
		Logger: logrus.New(),
		Debug:  false,
	}
}

// Validate fills in missing options with their defaults.
func (c *Config) Validate() *Config {
	if c == nil {
		return DefConfig()
	}
	if c.Logger == nil {
		c.Logger = logrus.New()
	}

	return c
}

// WithConfig configures the [Parser] [Config].
func WithConfig(cfg *Config) Option {
	return func(p *Parser) { p.cfg = cfg.Validate() }
}

// WithZoneResolver configures the resolver for named timezones.
func WithZoneResolver(resolver zone.Resolver) Option {
	return func(p *Parser) {
		if resolver != nil {
			p.zones = resolver
		}
	}
}

// WithLocation configures the location of results lacking an explicit zone.
//
// The reference time's location is used otherwise.
func WithLocation(loc *time.Location) Option {
	return func(p *Parser) { p.location = loc }
}

// WithScanner configures the [lexer.Scanner].
func WithScanner(scanner *lexer.Scanner) Option {
	return func(p *Parser) {
		if scanner != nil {
			p.scanner = scanner
		}
	}
}
