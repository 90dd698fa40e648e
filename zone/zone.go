// SPDX-License-Identifier: MIT

// Package zone resolves timezone names to UTC offsets for the date parser.
package zone

import (
	"strings"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type (
	// Resolver maps a timezone name to its offset from UTC, (in minutes) at some instant.
	//
	// Implementations must be safe for concurrent read-only use.
	Resolver interface {
		Offset(name string, at time.Time) (minutes int, ok bool)
	}

	// Func adapts a function to a Resolver.
	Func func(name string, at time.Time) (minutes int, ok bool)

	// Abbreviations is a Resolver over a fixed table of upper-case abbreviations.
	Abbreviations map[string]int

	// Locations is a Resolver over the host's IANA time zone database.
	Locations struct{}

	// Chain is a Resolver trying each Resolver in turn, the first to succeed wins.
	Chain []Resolver
)

var abbreviations = Abbreviations{
	"UTC": 0, "UT": 0, "GMT": 0, "Z": 0, "WET": 0,
	"WEST": 60, "BST": 60, "CET": 60, "MET": 60, "WAT": 60,
	"CEST": 120, "MEST": 120, "EET": 120, "SAST": 120, "CAT": 120,
	"EEST": 180, "MSK": 180, "EAT": 180, "AST": -240, "ADT": -180,
	"GST": 240, "PKT": 300, "IST": 330, "NPT": 345, "ICT": 420, "WIB": 420,
	"HKT": 480, "SGT": 480, "AWST": 480, "PHT": 480,
	"JST": 540, "KST": 540, "ACST": 570, "ACDT": 630,
	"AEST": 600, "AEDT": 660, "NZST": 720, "NZDT": 780,
	"HST": -600, "AKST": -540, "AKDT": -480,
	"PST": -480, "PDT": -420, "MST": -420, "MDT": -360,
	"CST": -360, "CDT": -300, "EST": -300, "EDT": -240,
	"NST": -210, "NDT": -150, "BRT": -180, "ART": -180,
}

// Offset is the Resolver implementation for Func.
func (f Func) Offset(name string, at time.Time) (int, bool) { return f(name, at) }

// DefAbbreviations obtains a copy of the built-in abbreviation table.
func DefAbbreviations() Abbreviations { return maps.Clone(abbreviations) }

// With obtains a copy of the table extended with, or overridden by entries.
func (a Abbreviations) With(entries map[string]int) Abbreviations {
	table := maps.Clone(a)
	if table == nil {
		table = make(Abbreviations, len(entries))
	}

	for name, minutes := range entries {
		table[normalize(name)] = minutes
	}

	return table
}

// Names lists the table's abbreviations in order.
func (a Abbreviations) Names() (names []string) {
	names = maps.Keys(a)
	slices.Sort(names)

	return
}

// Offset is the Resolver implementation for Abbreviations.
func (a Abbreviations) Offset(name string, _ time.Time) (minutes int, ok bool) {
	minutes, ok = a[normalize(name)]
	return
}

// Offset is the Resolver implementation for Locations.
//
// The offset is that in effect at the instant; names lacking a '/' are only accepted for "UTC" &
// "Local" to keep abbreviations out of the database lookup.
func (Locations) Offset(name string, at time.Time) (minutes int, ok bool) {
	name = strings.Trim(name, "()")
	if !strings.Contains(name, "/") && name != "UTC" && name != "Local" {
		return
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return
	}
	_, seconds := at.In(loc).Zone()

	return seconds / 60, true
}

// Offset is the Resolver implementation for Chain.
func (c Chain) Offset(name string, at time.Time) (minutes int, ok bool) {
	for _, r := range c {
		if r == nil {
			continue
		}
		if minutes, ok = r.Offset(name, at); ok {
			return
		}
	}

	return
}

// normalize trims enclosing parentheses & upper-cases an abbreviation.
func normalize(name string) string { return strings.ToUpper(strings.Trim(name, "() \t")) }
