// SPDX-License-Identifier: MIT

// Package strtotime parses free-form English date/time expressions relative to a reference time.
//
// An expression is scanned into tokens, each token adds absolute fields, deltas or a zone to a
// [DateInfo] & the DateInfo is then resolved against the reference time:
//
//	res, err := strtotime.Resolve("next friday 10:00 +02:00", time.Now())
package strtotime

import (
	"math"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"gitlab.com/fisherprime/strtotime/lexer"
	"gitlab.com/fisherprime/strtotime/zone"
)

type (
	// Parser parses & resolves date/time expressions.
	//
	// A Parser holds no per-expression state, it is safe for concurrent use.
	Parser struct {
		cfg      *Config
		scanner  *lexer.Scanner
		zones    zone.Resolver
		location *time.Location
	}

	// Result is a resolved expression.
	Result struct {
		Time time.Time `yaml:"time"`
		Info *DateInfo `yaml:"info"`

		// SoftErrors counts the non-fatal failures, such as unknown zone names.
		SoftErrors int `yaml:"soft_errors"`
	}
)

var defParser = New()

// New creates a Parser.
func New(opts ...Option) *Parser {
	p := &Parser{
		cfg:     defConfig,
		scanner: lexer.Default(),
		zones:   zone.Default(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Config retrieves the [Parser]'s Config.
func (p *Parser) Config() *Config { return p.cfg }

// Parse an expression into a DateInfo, resolving zone names as at ref.
func Parse(input string, ref time.Time) (*DateInfo, error) { return defParser.Parse(input, ref) }

// Resolve an expression against ref.
func Resolve(input string, ref time.Time, opts ...Option) (*Result, error) {
	p := defParser
	if len(opts) > 0 {
		p = New(opts...)
	}

	return p.Resolve(input, ref)
}

// Parse an expression into a DateInfo, resolving zone names as at ref.
func (p *Parser) Parse(input string, ref time.Time) (info *DateInfo, err error) {
	info = &DateInfo{}

	if strings.TrimSpace(input) == "" {
		err = &LexicalError{Pos: 0, Err: ErrEmptyInput}
		return
	}

	defer func() {
		if err != nil && p.cfg.Debug {
			p.cfg.Logger.Debugf("parse %q: %v\n%s", input, err, spew.Sdump(info))
		}
	}()

	s := &scope{info: info, zones: p.zones, at: ref}
	c := lexer.NewCursorString(input)

	for {
		item := p.scanner.Next(c)

		switch item.ID {
		case lexer.ItemEOF:
			return
		case lexer.ItemError:
			err = &LexicalError{Pos: item.Pos, Err: item.Err}
			return
		}

		if err = s.apply(item); err != nil {
			return
		}
	}
}

// Resolve an expression against ref.
func (p *Parser) Resolve(input string, ref time.Time) (res *Result, err error) {
	info, err := p.Parse(input, ref)
	if err != nil {
		return
	}

	t, err := p.resolve(info, ref)
	if err != nil {
		if p.cfg.Debug {
			p.cfg.Logger.Debugf("resolve %q: %v\n%s", input, err, spew.Sdump(info))
		}
		return
	}

	res = &Result{Time: t, Info: info, SoftErrors: info.SoftErrors}

	return
}

// resolve merges a DateInfo with ref, validates it & applies its deltas.
func (p *Parser) resolve(d *DateInfo, ref time.Time) (t time.Time, err error) {
	loc := ref.Location()
	if p.location != nil {
		loc = p.location
	}
	// Missing fields come from ref's wall clock, a parsed zone only reinterprets them.
	base := ref.In(loc)
	if d.Zone.Set {
		loc = time.FixedZone(d.Zone.Name, d.Zone.Offset*60)
	}

	if d.HaveDate() && !d.HaveTime() {
		d.resetTime()
	}

	year, month, day, err := mergeDate(d, base)
	if err != nil {
		return
	}
	hour, minute, second, nsec, err := mergeTime(d, base)
	if err != nil {
		return
	}

	r := d.Relative
	year, month, day = addMonths(year, month, day, r.Years*12+r.Months)

	t = time.Date(year, time.Month(month), day+r.Days, hour+r.Hours, minute+r.Minutes, second+r.Seconds, nsec, loc)

	if d.HaveWeekday() {
		t = t.AddDate(0, 0, weekdayShift(int(t.Weekday()), r))
	}

	return
}

// mergeDate fills in the date fields missing from ref, validating those set.
func mergeDate(d *DateInfo, base time.Time) (year, month, day int, err error) {
	year, month, day = base.Year(), int(base.Month()), base.Day()
	if d.Year.Set {
		year = d.Year.Value
	}
	if d.Month.Set {
		if month = d.Month.Value; month < 1 || month > 12 {
			return 0, 0, 0, &RangeError{Field: FieldMonth, Value: month}
		}
	}

	if d.DayOfYear {
		if day = d.Day.Value; day < 1 || day > daysInYear(year) {
			return 0, 0, 0, &RangeError{Field: FieldDayOfYear, Value: day}
		}
		normal := time.Date(year, time.January, day, 0, 0, 0, 0, time.UTC)

		return normal.Year(), int(normal.Month()), normal.Day(), nil
	}

	if !d.Day.Set {
		// A day from ref may not exist in a parsed month.
		return year, month, clamp(day, 1, daysInMonth(year, month)), nil
	}
	if day = d.Day.Value; day < 1 || day > daysInMonth(year, month) {
		return 0, 0, 0, &RangeError{Field: FieldDay, Value: day}
	}

	return
}

// mergeTime fills in the time fields missing from ref, validating those set.
func mergeTime(d *DateInfo, base time.Time) (hour, minute, second, nsec int, err error) {
	hour, minute, second, nsec = base.Hour(), base.Minute(), base.Second(), base.Nanosecond()

	if d.Hour.Set {
		if hour = d.Hour.Value; hour > 24 {
			return 0, 0, 0, 0, &RangeError{Field: FieldHour, Value: hour}
		}
	}
	if d.Minute.Set {
		if minute = d.Minute.Value; minute > 59 {
			return 0, 0, 0, 0, &RangeError{Field: FieldMinute, Value: minute}
		}
	}
	if d.Second.Set {
		if second = d.Second.Value; second > 60 {
			return 0, 0, 0, 0, &RangeError{Field: FieldSecond, Value: second}
		}
		nsec = int(math.Round(d.Fraction * float64(time.Second)))
	}

	return
}

// weekdayShift obtains the days from the current weekday to the relative's target.
func weekdayShift(current int, r Relative) int {
	forward := mod(r.Weekday-current, 7)
	backward := mod(current-r.Weekday, 7)

	if r.Behavior != WeekdayExactOffset || r.WeekdayCount == 0 {
		if r.WeekdayCount < 0 {
			return -backward
		}
		return forward
	}

	if r.WeekdayCount > 0 {
		if forward == 0 {
			forward = 7
		}
		return forward + (r.WeekdayCount-1)*7
	}

	if backward == 0 {
		backward = 7
	}

	return -backward + (r.WeekdayCount+1)*7
}

// Unix obtains the result as seconds since the epoch.
func (r *Result) Unix() int64 { return r.Time.Unix() }

// String is the fmt.Stringer implementation for Result.
func (r *Result) String() string { return r.Time.Format(time.RFC3339Nano) }
