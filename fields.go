// SPDX-License-Identifier: MIT
package strtotime

import (
	"fmt"
	"strings"
	"time"

	"gitlab.com/fisherprime/strtotime/zone"
)

type (
	// reader extracts field values from a token's text.
	//
	// The grammar has already validated the text's shape, readers skip anything they do not expect.
	reader struct {
		text string
		pos  int
	}

	// relUnit is the delta a relative unit adds per amount.
	relUnit struct {
		field      relField
		multiplier int
	}

	relField int
)

const (
	relSeconds relField = iota
	relMinutes
	relHours
	relDays
	relMonths
	relYears
)

// maxTimestampDigits keeps timestamps within an int64.
const maxTimestampDigits = 18

var months = map[string]int{
	"january": 1, "february": 2, "march": 3, "april": 4, "may": 5, "june": 6, "july": 7,
	"august": 8, "september": 9, "october": 10, "november": 11, "december": 12,

	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "jun": 6, "jul": 7, "aug": 8, "sep": 9, "sept": 9,
	"oct": 10, "nov": 11, "dec": 12,

	"i": 1, "ii": 2, "iii": 3, "iv": 4, "v": 5, "vi": 6, "vii": 7, "viii": 8, "ix": 9, "x": 10,
	"xi": 11, "xii": 12,
}

var weekdays = map[string]int{
	"sunday": 0, "monday": 1, "tuesday": 2, "wednesday": 3, "thursday": 4, "friday": 5, "saturday": 6,
	"sun": 0, "mon": 1, "tue": 2, "wed": 3, "thu": 4, "fri": 5, "sat": 6,
}

var relativeTexts = map[string]int{
	"last": -1, "previous": -1, "this": 0, "next": 1, "first": 1,
	"second": 2, "third": 3, "fourth": 4, "fifth": 5, "sixth": 6, "seventh": 7,
	"eight": 8, "eighth": 8, "ninth": 9, "tenth": 10, "eleventh": 11, "twelfth": 12,
}

var relUnits = map[string]relUnit{
	"sec": {relSeconds, 1}, "second": {relSeconds, 1},
	"min": {relMinutes, 1}, "minute": {relMinutes, 1},
	"hour": {relHours, 1},
	"day":  {relDays, 1}, "week": {relDays, 7},
	"fortnight": {relDays, 14}, "forthnight": {relDays, 14},
	"month": {relMonths, 1},
	"year":  {relYears, 1},
}

func newReader(text string) *reader { return &reader{text: text} }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isLetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

func (r *reader) done() bool { return r.pos >= len(r.text) }

func (r *reader) peek() byte {
	if r.done() {
		return 0
	}

	return r.text[r.pos]
}

// skip consumes any of the characters.
func (r *reader) skip(chars string) {
	for !r.done() && strings.IndexByte(chars, r.text[r.pos]) >= 0 {
		r.pos++
	}
}

// rest obtains the unread text, trimmed.
func (r *reader) rest() string { return strings.TrimSpace(r.text[r.pos:]) }

// unsigned reads up to maxDigits digits, skipping leading non-digits.
func (r *reader) unsigned(maxDigits int) (n int, ok bool) {
	for !r.done() && !isDigit(r.text[r.pos]) {
		r.pos++
	}

	start := r.pos
	for !r.done() && r.pos-start < maxDigits && isDigit(r.text[r.pos]) {
		n = n*10 + int(r.text[r.pos]-'0')
		r.pos++
	}

	return n, r.pos > start
}

// signed reads an integer after a run of signs, an odd number of '-' negating it.
func (r *reader) signed(maxDigits int) (n int, ok bool) {
	for !r.done() && !isDigit(r.text[r.pos]) && r.text[r.pos] != '+' && r.text[r.pos] != '-' {
		r.pos++
	}

	negative := false
	for !r.done() && (r.text[r.pos] == '+' || r.text[r.pos] == '-') {
		if r.text[r.pos] == '-' {
			negative = !negative
		}
		r.pos++
	}

	if n, ok = r.unsigned(maxDigits); negative {
		n = -n
	}

	return
}

// fraction reads the digits after a '.', as a fraction of one.
//
// Digits beyond maxDigits are consumed but ignored.
func (r *reader) fraction(maxDigits int) float64 {
	r.skip(".")

	n, scale := 0, 1
	for digits := 0; !r.done() && isDigit(r.text[r.pos]); digits++ {
		if digits < maxDigits {
			n = n*10 + int(r.text[r.pos]-'0')
			scale *= 10
		}
		r.pos++
	}

	return float64(n) / float64(scale)
}

// word reads a run of letters, skipping leading blanks.
func (r *reader) word() string {
	r.skip(" \t")

	start := r.pos
	for !r.done() && isLetter(r.text[r.pos]) {
		r.pos++
	}

	return r.text[start:r.pos]
}

// zoneName reads a timezone name, IANA names included.
func (r *reader) zoneName() string {
	r.skip(" \t(")

	start := r.pos
	for !r.done() && (isLetter(r.text[r.pos]) || r.text[r.pos] == '_' || r.text[r.pos] == '/') {
		r.pos++
	}
	name := r.text[start:r.pos]
	r.skip(")")

	return name
}

// month reads a month name, Roman numeral or number.
func (r *reader) month() (m int, ok bool) {
	r.skip(" \t-./")

	if isDigit(r.peek()) {
		return r.unsigned(2)
	}

	m, ok = months[strings.ToLower(r.word())]

	return
}

// skipDaySuffix consumes an English ordinal suffix.
func (r *reader) skipDaySuffix() {
	if r.pos+2 > len(r.text) {
		return
	}

	switch strings.ToLower(r.text[r.pos : r.pos+2]) {
	case "st", "nd", "rd", "th":
		r.pos += 2
	}
}

// year reads a year, expanding two-digit years.
func (r *reader) year(maxDigits int) (int, bool) {
	start := r.pos
	y, ok := r.unsigned(maxDigits)
	if !ok {
		return 0, false
	}

	digits := 0
	for _, c := range []byte(r.text[start:r.pos]) {
		if isDigit(c) {
			digits++
		}
	}

	if digits <= 2 {
		y = processYear(y)
	}

	return y, true
}

// processYear maps two-digit years onto 1970-2069.
func processYear(y int) int {
	switch {
	case y < 70:
		return y + 2000
	case y < 100:
		return y + 1900
	default:
		return y
	}
}

// meridian applies an "am"/"pm" marker to a 12-hour clock hour.
func (r *reader) meridian(hour int) (int, error) {
	r.skip(" \t")

	switch c := r.peek(); c {
	case 'a', 'A':
		if hour == 12 {
			hour = 0
		}
	case 'p', 'P':
		if hour != 12 {
			hour += 12
		}
	default:
		return hour, ErrMissingMeridian
	}
	r.pos++
	r.skip(".mM")

	return hour, nil
}

// tzCorrection reads a signed "H", "HH", "HMM", "HHMM" or "H:MM"/"HH:MM" offset, in minutes.
func (r *reader) tzCorrection() (minutes int, ok bool) {
	negative := r.peek() == '-'
	r.pos++

	start := r.pos
	for !r.done() && isDigit(r.text[r.pos]) && r.pos-start < 4 {
		r.pos++
	}
	digits := r.text[start:r.pos]

	var hours int
	switch len(digits) {
	case 1, 2:
		hours = atoi(digits)
		if r.peek() == ':' {
			r.pos++
			minutes, _ = r.unsigned(2)
		}
	case 3:
		hours, minutes = atoi(digits[:1]), atoi(digits[1:])
	case 4:
		hours, minutes = atoi(digits[:2]), atoi(digits[2:])
	default:
		return 0, false
	}

	if minutes = hours*60 + minutes; negative {
		minutes = -minutes
	}

	return minutes, true
}

func atoi(digits string) (n int) {
	for index := range digits {
		n = n*10 + int(digits[index]-'0')
	}

	return
}

// timeZone reads an offset or zone name into d.
//
// Unknown names are soft errors, the expression remains valid.
func (r *reader) timeZone(d *DateInfo, resolver zone.Resolver, at time.Time) bool {
	r.skip(" \t(")

	if rest := strings.ToLower(r.text[r.pos:]); len(rest) > 3 &&
		(strings.HasPrefix(rest, "gmt") || strings.HasPrefix(rest, "utc")) && (rest[3] == '+' || rest[3] == '-') {
		r.pos += 3
	}

	if c := r.peek(); c == '+' || c == '-' {
		minutes, ok := r.tzCorrection()
		if !ok {
			d.SoftErrors++
			return false
		}
		d.Zone = Zone{Name: formatOffset(minutes), Offset: minutes, Set: true}

		return true
	}

	name := r.zoneName()
	minutes, ok := 0, false
	if name != "" && resolver != nil {
		minutes, ok = resolver.Offset(name, at)
	}
	if !ok {
		d.SoftErrors++
		return false
	}
	d.Zone = Zone{Name: name, Offset: minutes, Set: true}

	return true
}

// formatOffset renders minutes east of UTC as "+HH:MM".
func formatOffset(minutes int) string {
	sign := '+'
	if minutes < 0 {
		sign, minutes = '-', -minutes
	}

	return fmt.Sprintf("%c%02d:%02d", sign, minutes/60, minutes%60)
}

// relativeText maps an ordinal or "next"/"last"/"this" to an amount & weekday behavior.
func relativeText(word string) (amount int, behavior WeekdayBehavior, ok bool) {
	word = strings.ToLower(word)
	if amount, ok = relativeTexts[word]; !ok {
		return
	}

	behavior = WeekdayExactOffset
	if word == "this" {
		behavior = WeekdayNextOrSame
	}

	return
}

// setRelative adds amount of unit to the deltas, a weekday unit setting the weekday relative.
func (d *DateInfo) setRelative(unit string, amount int, behavior WeekdayBehavior) bool {
	unit = strings.ToLower(unit)

	if dow, ok := weekdays[unit]; ok {
		d.haveWeekday = true
		d.unsetTime()

		d.Relative.Weekday = dow
		d.Relative.WeekdayCount += amount
		d.Relative.Behavior = behavior

		return true
	}

	u, ok := relUnits[strings.TrimSuffix(unit, "s")]
	if !ok {
		return false
	}

	delta := amount * u.multiplier
	switch u.field {
	case relSeconds:
		d.Relative.Seconds += delta
	case relMinutes:
		d.Relative.Minutes += delta
	case relHours:
		d.Relative.Hours += delta
	case relDays:
		d.Relative.Days += delta
	case relMonths:
		d.Relative.Months += delta
	case relYears:
		d.Relative.Years += delta
	}

	return true
}
