// SPDX-License-Identifier: MIT
package strtotime

type (
	// Field is an absolute date/time component, unset until a token writes it.
	Field struct {
		Value int  `yaml:"value"`
		Set   bool `yaml:"set"`
	}

	// WeekdayBehavior selects how a weekday relative moves the date.
	WeekdayBehavior int

	// Relative holds the deltas applied to the absolute fields.
	//
	// Deltas accumulate, they are never overwritten.
	Relative struct {
		Years   int `yaml:"years"`
		Months  int `yaml:"months"`
		Days    int `yaml:"days"`
		Hours   int `yaml:"hours"`
		Minutes int `yaml:"minutes"`
		Seconds int `yaml:"seconds"`

		// Weekday is the target day, 0 being Sunday.
		Weekday      int             `yaml:"weekday"`
		WeekdayCount int             `yaml:"weekday_count"`
		Behavior     WeekdayBehavior `yaml:"behavior"`
	}

	// Zone is an explicit UTC offset, in minutes east of UTC.
	Zone struct {
		Name   string `yaml:"name,omitempty"`
		Offset int    `yaml:"offset"`
		Set    bool   `yaml:"set"`
	}

	// DateInfo accumulates the effects of the tokens of a single expression.
	DateInfo struct {
		Year   Field `yaml:"year"`
		Month  Field `yaml:"month"`
		Day    Field `yaml:"day"`
		Hour   Field `yaml:"hour"`
		Minute Field `yaml:"minute"`
		Second Field `yaml:"second"`

		// Fraction of a second in [0, 1).
		Fraction float64 `yaml:"fraction"`

		Relative Relative `yaml:"relative"`
		Zone     Zone     `yaml:"zone"`

		// SoftErrors counts non-fatal failures, such as unknown timezone names.
		SoftErrors int `yaml:"soft_errors"`

		// DayOfYear marks Day as an ordinal day of Year, with Month fixed at 1.
		DayOfYear bool `yaml:"day_of_year"`

		haveDate, haveTime, haveZone int
		haveRelative, haveWeekday    bool
	}
)

// Weekday behaviors.
const (
	WeekdayNone WeekdayBehavior = iota
	// WeekdayNextOrSame accepts the current day when it matches.
	WeekdayNextOrSame
	// WeekdayExactOffset moves by whole occurrences, never accepting the current day.
	WeekdayExactOffset
)

var behaviorNames = map[WeekdayBehavior]string{
	WeekdayNone:        "none",
	WeekdayNextOrSame:  "next_or_same",
	WeekdayExactOffset: "exact_offset",
}

// String is the fmt.Stringer implementation for WeekdayBehavior.
func (b WeekdayBehavior) String() string { return behaviorNames[b] }

// MarshalYAML is the yaml.Marshaler implementation for WeekdayBehavior.
func (b WeekdayBehavior) MarshalYAML() (interface{}, error) { return b.String(), nil }

// HaveDate reports whether a token set the date.
func (d *DateInfo) HaveDate() bool { return d.haveDate > 0 }

// HaveTime reports whether a token set the time of day.
func (d *DateInfo) HaveTime() bool { return d.haveTime > 0 }

// HaveZone reports whether a token set the zone.
func (d *DateInfo) HaveZone() bool { return d.haveZone > 0 }

// HaveRelative reports whether a token set any delta.
func (d *DateInfo) HaveRelative() bool { return d.haveRelative }

// HaveWeekday reports whether a token set a weekday relative.
func (d *DateInfo) HaveWeekday() bool { return d.haveWeekday }

func (f *Field) set(value int) { f.Value, f.Set = value, true }

// setDate guards the date fields, these are written once per expression.
func (d *DateInfo) setDate(pos int) error {
	if d.haveDate > 0 {
		return &SemanticConflictError{Field: FieldDate, Pos: pos}
	}
	d.haveDate++

	return nil
}

// setTime guards the time fields, resetting them to midnight.
func (d *DateInfo) setTime(pos int) error {
	if d.haveTime > 0 {
		return &SemanticConflictError{Field: FieldTime, Pos: pos}
	}
	d.haveTime++
	d.resetTime()

	return nil
}

func (d *DateInfo) setZone(pos int) error {
	if d.haveZone > 0 {
		return &SemanticConflictError{Field: FieldZone, Pos: pos}
	}
	d.haveZone++

	return nil
}

// unsetTime resets the time to midnight, allowing a later token to set it.
func (d *DateInfo) unsetTime() {
	d.resetTime()
	d.haveTime = 0
}

func (d *DateInfo) resetTime() {
	d.Hour.set(0)
	d.Minute.set(0)
	d.Second.set(0)
	d.Fraction = 0
}

// negate inverts every delta accumulated so far.
func (d *DateInfo) negate() {
	r := &d.Relative
	r.Years, r.Months, r.Days = -r.Years, -r.Months, -r.Days
	r.Hours, r.Minutes, r.Seconds = -r.Hours, -r.Minutes, -r.Seconds
	r.WeekdayCount = -r.WeekdayCount
}
