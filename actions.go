// SPDX-License-Identifier: MIT
package strtotime

import (
	"fmt"
	"time"

	"gitlab.com/fisherprime/strtotime/lexer"
	"gitlab.com/fisherprime/strtotime/zone"
)

type (
	// scope is the context shared by the actions of a single expression.
	scope struct {
		info  *DateInfo
		zones zone.Resolver
		// at is the instant zone names are resolved for.
		at time.Time
	}

	// action applies a token's effect to the scope's DateInfo.
	action func(s *scope, r *reader, pos int) error
)

// Digits of a second's fraction retained by the fractional rules.
const fracDigits = 9

var actions = map[lexer.RuleID]action{
	lexer.RuleYesterday: func(s *scope, _ *reader, _ int) error {
		s.info.haveRelative = true
		s.info.unsetTime()
		s.info.Relative.Days--
		return nil
	},
	lexer.RuleNow: func(*scope, *reader, int) error { return nil },
	lexer.RuleNoon: func(s *scope, _ *reader, pos int) error {
		s.info.unsetTime()
		if err := s.info.setTime(pos); err != nil {
			return err
		}
		s.info.Hour.set(12)
		return nil
	},
	lexer.RuleMidnight: func(s *scope, _ *reader, _ int) error {
		s.info.unsetTime()
		return nil
	},
	lexer.RuleTomorrow: func(s *scope, _ *reader, _ int) error {
		s.info.haveRelative = true
		s.info.unsetTime()
		s.info.Relative.Days++
		return nil
	},
	lexer.RuleTimestamp:         timestamp,
	lexer.RuleTime12:            time12,
	lexer.RuleTime24:            time24,
	lexer.RuleTime24Zone:        time24,
	lexer.RuleGNUNoColon:        gnuNoColon,
	lexer.RuleISONoColon:        isoNoColon,
	lexer.RuleAmerican:          american,
	lexer.RuleISODate4:          dateYMD,
	lexer.RuleGNUDateShort:      dateYMD,
	lexer.RuleDateFull:          dateDMY,
	lexer.RulePointedDate4:      dateDMY,
	lexer.RulePointedDate2:      dateDMY,
	lexer.RuleDateNoDay:         dateNoDay,
	lexer.RuleDateNoDayRev:      dateNoDayRev,
	lexer.RuleGNUDateShorter:    dateNoDayRev,
	lexer.RuleDateTextual:       dateTextual,
	lexer.RuleDateNoYear:        dateNoYear,
	lexer.RuleDateNoYearRev:     dateNoYearRev,
	lexer.RuleDateNoColon:       dateYMD,
	lexer.RuleXMLRPCSOAP:        xmlrpcSOAP,
	lexer.RulePgYearday:         pgYearday,
	lexer.RuleISOWeekDay:        isoWeek,
	lexer.RuleISOWeek:           isoWeek,
	lexer.RulePgTextShort:       dateTextual,
	lexer.RulePgTextReverse:     pgTextReverse,
	lexer.RuleCLF:               clf,
	lexer.RuleYear4:             year4,
	lexer.RuleAgo:               ago,
	lexer.RuleRelativeText:      relativeTextual,
	lexer.RuleWeekday:           weekday,
	lexer.RuleMonth:             monthOnly,
	lexer.RuleTimezone:          timezone,
	lexer.RuleShortdateWithTime: shortdateWithTime,
	lexer.RuleRelative:          relative,
}

// apply dispatches an Item to its rule's action.
func (s *scope) apply(item lexer.Item) error {
	act, ok := actions[item.Rule]
	if !ok {
		return &LexicalError{Pos: item.Pos, Err: fmt.Errorf("%w: %s", lexer.ErrUnknownTokens, item.Rule)}
	}

	return act(s, newReader(item.Val), item.Pos)
}

// zoneIfAny reads a trailing zone, if the token has one.
func (s *scope) zoneIfAny(r *reader, pos int) error {
	if r.rest() == "" {
		return nil
	}
	if err := s.info.setZone(pos); err != nil {
		return err
	}
	r.timeZone(s.info, s.zones, s.at)

	return nil
}

// clock reads "H:MM[:SS[.frac]]" or "HHMMSS" into the time fields.
func (s *scope) clock(r *reader) {
	d := s.info

	h, _ := r.unsigned(2)
	d.Hour.set(h)
	i, _ := r.unsigned(2)
	d.Minute.set(i)

	// Compact forms run the seconds straight after the minutes.
	if c := r.peek(); c == ':' || c == '.' || isDigit(c) {
		sec, _ := r.unsigned(2)
		d.Second.set(sec)

		if r.peek() == '.' {
			d.Fraction = r.fraction(fracDigits)
		}
	}
}

func timestamp(s *scope, r *reader, pos int) error {
	d := s.info
	if err := d.setZone(pos); err != nil {
		return err
	}

	n, _ := r.signed(maxTimestampDigits)
	if isDigit(r.peek()) {
		return &RangeError{Field: FieldTimestamp, Value: n}
	}

	d.haveDate, d.haveTime = 0, 0
	d.haveRelative = true
	d.Year.set(1970)
	d.Month.set(1)
	d.Day.set(1)
	d.resetTime()
	d.Relative.Seconds += n
	d.Zone = Zone{Name: "UTC", Set: true}

	return nil
}

func time12(s *scope, r *reader, pos int) (err error) {
	d := s.info
	if err = d.setTime(pos); err != nil {
		return
	}

	h, _ := r.unsigned(2)
	if c := r.peek(); c == ':' || c == '.' {
		i, _ := r.unsigned(2)
		d.Minute.set(i)

		if c = r.peek(); c == ':' || c == '.' {
			sec, _ := r.unsigned(2)
			d.Second.set(sec)
		}
	}

	if h, err = r.meridian(h); err != nil {
		return &LexicalError{Pos: pos, Err: err}
	}
	d.Hour.set(h)

	return
}

func time24(s *scope, r *reader, pos int) error {
	if err := s.info.setTime(pos); err != nil {
		return err
	}
	s.clock(r)

	return s.zoneIfAny(r, pos)
}

// gnuNoColon reads "HHMM" as a time, or as a year once a time is set.
func gnuNoColon(s *scope, r *reader, pos int) error {
	d := s.info

	switch d.haveTime {
	case 0:
		d.resetTime()
		h, _ := r.unsigned(2)
		d.Hour.set(h)
		i, _ := r.unsigned(2)
		d.Minute.set(i)
	case 1:
		if d.Year.Set && d.HaveDate() {
			return &SemanticConflictError{Field: FieldYear, Pos: pos}
		}
		y, _ := r.unsigned(4)
		d.Year.set(y)
	default:
		return &SemanticConflictError{Field: FieldTime, Pos: pos}
	}
	d.haveTime++

	return nil
}

func isoNoColon(s *scope, r *reader, pos int) error {
	d := s.info
	if err := d.setTime(pos); err != nil {
		return err
	}

	h, _ := r.unsigned(2)
	d.Hour.set(h)
	i, _ := r.unsigned(2)
	d.Minute.set(i)
	sec, _ := r.unsigned(2)
	d.Second.set(sec)

	return s.zoneIfAny(r, pos)
}

func american(s *scope, r *reader, pos int) error {
	d := s.info
	if err := d.setDate(pos); err != nil {
		return err
	}

	m, _ := r.unsigned(2)
	d.Month.set(m)
	day, _ := r.unsigned(2)
	d.Day.set(day)
	r.skipDaySuffix()

	if r.peek() == '/' {
		y, _ := r.year(4)
		d.Year.set(y)
	}

	return nil
}

// dateYMD reads year, month & day.
func dateYMD(s *scope, r *reader, pos int) error {
	d := s.info
	if err := d.setDate(pos); err != nil {
		return err
	}

	y, _ := r.year(4)
	d.Year.set(y)
	m, _ := r.unsigned(2)
	d.Month.set(m)
	day, _ := r.unsigned(2)
	d.Day.set(day)

	return nil
}

// dateDMY reads day, month (numeric or textual) & year.
func dateDMY(s *scope, r *reader, pos int) error {
	d := s.info
	if err := d.setDate(pos); err != nil {
		return err
	}

	day, _ := r.unsigned(2)
	d.Day.set(day)
	r.skipDaySuffix()
	m, _ := r.month()
	d.Month.set(m)
	y, _ := r.year(4)
	d.Year.set(y)

	return nil
}

func dateNoDay(s *scope, r *reader, pos int) error {
	d := s.info
	if err := d.setDate(pos); err != nil {
		return err
	}

	m, _ := r.month()
	d.Month.set(m)
	y, _ := r.year(4)
	d.Year.set(y)
	d.Day.set(1)

	return nil
}

func dateNoDayRev(s *scope, r *reader, pos int) error {
	d := s.info
	if err := d.setDate(pos); err != nil {
		return err
	}

	y, _ := r.unsigned(4)
	d.Year.set(y)
	m, _ := r.month()
	d.Month.set(m)
	d.Day.set(1)

	return nil
}

func dateTextual(s *scope, r *reader, pos int) error {
	d := s.info
	if err := d.setDate(pos); err != nil {
		return err
	}

	m, _ := r.month()
	d.Month.set(m)
	day, _ := r.unsigned(2)
	d.Day.set(day)
	r.skipDaySuffix()

	// "Mar 15" is also scanned by this rule, the digits being taken as the day.
	if y, ok := r.year(4); ok {
		d.Year.set(y)
	}

	return nil
}

func dateNoYear(s *scope, r *reader, pos int) error {
	d := s.info
	if err := d.setDate(pos); err != nil {
		return err
	}

	m, _ := r.month()
	d.Month.set(m)
	day, _ := r.unsigned(2)
	d.Day.set(day)

	return nil
}

func dateNoYearRev(s *scope, r *reader, pos int) error {
	d := s.info
	if err := d.setDate(pos); err != nil {
		return err
	}

	day, _ := r.unsigned(2)
	d.Day.set(day)
	r.skipDaySuffix()
	m, _ := r.month()
	d.Month.set(m)

	return nil
}

func pgTextReverse(s *scope, r *reader, pos int) error {
	d := s.info
	if err := d.setDate(pos); err != nil {
		return err
	}

	y, _ := r.year(4)
	d.Year.set(y)
	m, _ := r.month()
	d.Month.set(m)
	day, _ := r.unsigned(2)
	d.Day.set(day)

	return nil
}

func xmlrpcSOAP(s *scope, r *reader, pos int) error {
	d := s.info
	if err := d.setDate(pos); err != nil {
		return err
	}
	if err := d.setTime(pos); err != nil {
		return err
	}

	y, _ := r.unsigned(4)
	d.Year.set(y)
	m, _ := r.unsigned(2)
	d.Month.set(m)
	day, _ := r.unsigned(2)
	d.Day.set(day)
	s.clock(r)

	return s.zoneIfAny(r, pos)
}

// pgYearday reads "YYYY.DDD", the day being an ordinal day of the year.
func pgYearday(s *scope, r *reader, pos int) error {
	d := s.info
	if err := d.setDate(pos); err != nil {
		return err
	}

	y, _ := r.unsigned(4)
	d.Year.set(y)
	doy, _ := r.unsigned(3)
	d.Day.set(doy)
	d.Month.set(1)
	d.DayOfYear = true

	return nil
}

// isoWeek reads "YYYY-Www[-D]" as January 1st plus a day delta.
func isoWeek(s *scope, r *reader, pos int) error {
	d := s.info
	if err := d.setDate(pos); err != nil {
		return err
	}
	d.haveRelative = true

	y, _ := r.unsigned(4)
	w, _ := r.unsigned(2)
	isoDay, ok := r.unsigned(1)
	if !ok {
		isoDay = 1
	}

	d.Year.set(y)
	d.Month.set(1)
	d.Day.set(1)
	d.Relative.Days += weekToDay(y, w, isoDay)

	return nil
}

// clf reads the Common Log Format "DD/Mon/YYYY:HH:MM:SS ±HHMM".
func clf(s *scope, r *reader, pos int) error {
	d := s.info
	if err := d.setTime(pos); err != nil {
		return err
	}
	if err := d.setDate(pos); err != nil {
		return err
	}

	day, _ := r.unsigned(2)
	d.Day.set(day)
	m, _ := r.month()
	d.Month.set(m)
	y, _ := r.unsigned(4)
	d.Year.set(y)

	h, _ := r.unsigned(2)
	d.Hour.set(h)
	i, _ := r.unsigned(2)
	d.Minute.set(i)
	sec, _ := r.unsigned(2)
	d.Second.set(sec)

	if err := d.setZone(pos); err != nil {
		return err
	}
	r.timeZone(d, s.zones, s.at)

	return nil
}

// year4 fills in a year missing from an earlier date.
func year4(s *scope, r *reader, pos int) error {
	d := s.info
	if d.Year.Set && d.HaveDate() {
		return &SemanticConflictError{Field: FieldYear, Pos: pos}
	}

	y, _ := r.unsigned(4)
	d.Year.set(y)

	return nil
}

func ago(s *scope, _ *reader, _ int) error {
	s.info.negate()
	return nil
}

func relativeTextual(s *scope, r *reader, pos int) error {
	d := s.info
	d.haveRelative = true

	amount, behavior, _ := relativeText(r.word())
	if unit := r.word(); !d.setRelative(unit, amount, behavior) {
		return &LexicalError{Pos: pos, Err: fmt.Errorf("%w: %q", lexer.ErrUnknownTokens, unit)}
	}

	return nil
}

func relative(s *scope, r *reader, pos int) error {
	d := s.info
	d.haveRelative = true

	amount, _ := r.signed(maxTimestampDigits)
	if isDigit(r.peek()) {
		return &RangeError{Field: FieldRelative, Value: amount}
	}
	if unit := r.word(); !d.setRelative(unit, amount, WeekdayExactOffset) {
		return &LexicalError{Pos: pos, Err: fmt.Errorf("%w: %q", lexer.ErrUnknownTokens, unit)}
	}

	return nil
}

// weekday moves to the named day, keeping the current day if it matches.
func weekday(s *scope, r *reader, _ int) error {
	d := s.info
	d.haveRelative = true

	count := d.Relative.WeekdayCount
	d.setRelative(r.word(), 0, WeekdayNextOrSame)
	if count == 0 {
		d.Relative.WeekdayCount = 1
	}

	return nil
}

func monthOnly(s *scope, r *reader, pos int) error {
	d := s.info
	if err := d.setDate(pos); err != nil {
		return err
	}

	m, _ := r.month()
	d.Month.set(m)

	return nil
}

func timezone(s *scope, r *reader, pos int) error {
	if err := s.info.setZone(pos); err != nil {
		return err
	}
	r.timeZone(s.info, s.zones, s.at)

	return nil
}

func shortdateWithTime(s *scope, r *reader, pos int) error {
	d := s.info
	if err := d.setDate(pos); err != nil {
		return err
	}

	m, _ := r.month()
	d.Month.set(m)
	day, _ := r.unsigned(2)
	d.Day.set(day)
	r.skipDaySuffix()

	if err := d.setTime(pos); err != nil {
		return err
	}
	s.clock(r)

	return s.zoneIfAny(r, pos)
}
