// SPDX-License-Identifier: MIT
package strtotime

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"gitlab.com/fisherprime/strtotime/zone"
)

func TestReader_unsigned(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		maxDigits int
		want      int
		wantOK    bool
		wantPos   int
	}{
		{name: "leading junk", text: "T134530", maxDigits: 2, want: 13, wantOK: true, wantPos: 3},
		{name: "limit", text: "20240315", maxDigits: 4, want: 2024, wantOK: true, wantPos: 4},
		{name: "short", text: "/7", maxDigits: 2, want: 7, wantOK: true, wantPos: 2},
		{name: "none", text: "abc", maxDigits: 2, wantPos: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newReader(tt.text)

			got, ok := r.unsigned(tt.maxDigits)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("reader.unsigned() = %d, %v, want %d, %v", got, ok, tt.want, tt.wantOK)
			}
			if r.pos != tt.wantPos {
				t.Errorf("reader.unsigned() pos = %d, want %d", r.pos, tt.wantPos)
			}
		})
	}
}

func TestReader_signed(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"+1", 1},
		{"-1", -1},
		{"--1", 1},
		{"+-+ 3", -3},
		{"@-86400", -86400},
		{"12", 12},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got, _ := newReader(tt.text).signed(maxTimestampDigits); got != tt.want {
				t.Errorf("reader.signed() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestReader_month(t *testing.T) {
	tests := []struct {
		text   string
		want   int
		wantOK bool
	}{
		{"March", 3, true},
		{"-sept", 9, true},
		{" XII", 12, true},
		{"/iv/", 4, true},
		{".07", 7, true},
		{"13", 13, true},
		{"foo", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := newReader(tt.text).month()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("reader.month() = %d, %v, want %d, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestReader_fraction(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{".5", 0.5},
		{".25", 0.25},
		{".1250000000001", 0.125},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := newReader(tt.text).fraction(fracDigits); got != tt.want {
				t.Errorf("reader.fraction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReader_skipDaySuffix(t *testing.T) {
	for _, text := range []string{"st", "ND", "rd", "th"} {
		r := newReader(text)
		if r.skipDaySuffix(); !r.done() {
			t.Errorf("reader.skipDaySuffix(%q) left %q", text, r.text[r.pos:])
		}
	}

	r := newReader("t")
	if r.skipDaySuffix(); r.pos != 0 {
		t.Errorf("reader.skipDaySuffix(%q) moved to %d", "t", r.pos)
	}
}

func TestProcessYear(t *testing.T) {
	tests := []struct {
		y, want int
	}{
		{0, 2000},
		{69, 2069},
		{70, 1970},
		{99, 1999},
		{100, 100},
		{2024, 2024},
	}

	for _, tt := range tests {
		if got := processYear(tt.y); got != tt.want {
			t.Errorf("processYear(%d) = %d, want %d", tt.y, got, tt.want)
		}
	}
}

func TestReader_meridian(t *testing.T) {
	tests := []struct {
		text    string
		hour    int
		want    int
		wantErr error
	}{
		{"am", 12, 0, nil},
		{"pm", 12, 12, nil},
		{"a.m.", 9, 9, nil},
		{" P.M.", 9, 21, nil},
		{"", 9, 9, ErrMissingMeridian},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := newReader(tt.text).meridian(tt.hour)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("reader.meridian() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("reader.meridian() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestReader_timeZone(t *testing.T) {
	at := time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC)
	resolver := zone.Abbreviations{"EST": -300}

	tests := []struct {
		text           string
		want           Zone
		wantSoftErrors int
	}{
		{text: "+2", want: Zone{Name: "+02:00", Offset: 120, Set: true}},
		{text: "-07", want: Zone{Name: "-07:00", Offset: -420, Set: true}},
		{text: "+530", want: Zone{Name: "+05:30", Offset: 330, Set: true}},
		{text: "-0700", want: Zone{Name: "-07:00", Offset: -420, Set: true}},
		{text: "+5:45", want: Zone{Name: "+05:45", Offset: 345, Set: true}},
		{text: "GMT+0100", want: Zone{Name: "+01:00", Offset: 60, Set: true}},
		{text: "utc-3", want: Zone{Name: "-03:00", Offset: -180, Set: true}},
		{text: "(EST)", want: Zone{Name: "EST", Offset: -300, Set: true}},
		{text: "est", want: Zone{Name: "est", Offset: -300, Set: true}},
		{text: "XYZ", wantSoftErrors: 1},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			d := &DateInfo{}

			ok := newReader(tt.text).timeZone(d, resolver, at)
			if ok != (tt.wantSoftErrors == 0) {
				t.Errorf("reader.timeZone() = %v", ok)
			}
			if !reflect.DeepEqual(d.Zone, tt.want) {
				t.Errorf("reader.timeZone() zone = %+v, want %+v", d.Zone, tt.want)
			}
			if d.SoftErrors != tt.wantSoftErrors {
				t.Errorf("reader.timeZone() soft errors = %d, want %d", d.SoftErrors, tt.wantSoftErrors)
			}
		})
	}
}

func TestDateInfo_setRelative(t *testing.T) {
	d := &DateInfo{}

	units := []struct {
		unit   string
		amount int
	}{
		{"secs", 2}, {"minute", 3}, {"hours", 4}, {"day", 1}, {"weeks", 2},
		{"fortnight", 1}, {"month", -1}, {"years", 5},
	}
	for _, u := range units {
		if !d.setRelative(u.unit, u.amount, WeekdayExactOffset) {
			t.Fatalf("DateInfo.setRelative(%q) = false", u.unit)
		}
	}

	want := Relative{Years: 5, Months: -1, Days: 29, Hours: 4, Minutes: 3, Seconds: 2}
	if !reflect.DeepEqual(d.Relative, want) {
		t.Errorf("DateInfo.setRelative() = %+v, want %+v", d.Relative, want)
	}

	if d.setRelative("decade", 1, WeekdayExactOffset) {
		t.Errorf("DateInfo.setRelative(%q) = true, want false", "decade")
	}

	if d.setRelative("Friday", 2, WeekdayExactOffset); !d.HaveWeekday() || d.Relative.Weekday != 5 ||
		d.Relative.WeekdayCount != 2 || d.Relative.Behavior != WeekdayExactOffset {
		t.Errorf("DateInfo.setRelative(%q) = %+v", "Friday", d.Relative)
	}
}

func TestRelativeText(t *testing.T) {
	tests := []struct {
		word         string
		wantAmount   int
		wantBehavior WeekdayBehavior
	}{
		{"next", 1, WeekdayExactOffset},
		{"first", 1, WeekdayExactOffset},
		{"Last", -1, WeekdayExactOffset},
		{"previous", -1, WeekdayExactOffset},
		{"this", 0, WeekdayNextOrSame},
		{"twelfth", 12, WeekdayExactOffset},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			amount, behavior, ok := relativeText(tt.word)
			if !ok || amount != tt.wantAmount || behavior != tt.wantBehavior {
				t.Errorf("relativeText() = %d, %v, %v, want %d, %v", amount, behavior, ok, tt.wantAmount, tt.wantBehavior)
			}
		})
	}
}
