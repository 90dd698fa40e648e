// SPDX-License-Identifier: MIT
package lexer

import (
	"errors"
	"reflect"
	"testing"

	"github.com/sirupsen/logrus"
)

// token is the comparable part of an Item.
type token struct {
	Rule RuleID
	Val  string
}

func tokens(items []Item) (list []token) {
	for _, item := range items {
		if item.ID == ItemEOF || item.ID == ItemError {
			continue
		}
		list = append(list, token{item.Rule, item.Val})
	}

	return
}

func TestScanner_Items(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token
	}{
		{name: "iso date", input: "2004-12-31", want: []token{{RuleISODate4, "2004-12-31"}}},
		{name: "two digit year date", input: "03-07-31", want: []token{{RuleGNUDateShort, "03-07-31"}}},
		{
			name:  "relative weekday",
			input: "last Monday",
			want:  []token{{RuleRelativeText, "last Monday"}},
		},
		{
			name:  "date & time",
			input: "01-jan-70 01:00",
			want:  []token{{RuleDateFull, "01-jan-70"}, {RuleTime24, "01:00"}},
		},
		{
			name:  "rfc 2822",
			input: "Thu, 31 Jul 2003 13:02:39 -0700",
			want: []token{
				{RuleWeekday, "Thu"},
				{RuleDateFull, "31 Jul 2003"},
				{RuleTime24Zone, "13:02:39 -0700"},
			},
		},
		{
			name:  "relative run",
			input: "+1 week 2 days",
			want:  []token{{RuleRelative, "+1 week"}, {RuleRelative, " 2 days"}},
		},
		{name: "signs & blanks", input: "- 1week", want: []token{{RuleRelative, "- 1week"}}},
		{name: "timestamp", input: "@86400", want: []token{{RuleTimestamp, "@86400"}}},
		{name: "iso week", input: "2024-W10-5", want: []token{{RuleISOWeekDay, "2024-W10-5"}}},
		{name: "year day", input: "2024.060", want: []token{{RulePgYearday, "2024.060"}}},
		{
			// Equal lengths, the earlier rule wins.
			name:  "tie break",
			input: "2024 2024",
			want:  []token{{RuleGNUNoColon, "2024"}, {RuleGNUNoColon, "2024"}},
		},
		{name: "year only", input: "1999", want: []token{{RuleYear4, "1999"}}},
		{
			name:  "unknown zone",
			input: "10:00 XYZ",
			want:  []token{{RuleTime24, "10:00"}, {RuleTimezone, "XYZ"}},
		},
		{
			name:  "lower-case words after a time",
			input: "10:00:00 next friday",
			want:  []token{{RuleTime24, "10:00:00"}, {RuleRelativeText, "next friday"}},
		},
		{
			name:  "ago",
			input: "3 days ago",
			want:  []token{{RuleRelative, "3 days"}, {RuleAgo, "ago"}},
		},
		{name: "meridian", input: "10.30 p.m.", want: []token{{RuleTime12, "10.30 p.m."}}},
		{
			name:  "ctime",
			input: "Sat Aug 28 02:55:50 1999",
			want: []token{
				{RuleWeekday, "Sat"},
				{RuleShortdateWithTime, "Aug 28 02:55:50"},
				{RuleYear4, "1999"},
			},
		},
		{
			name:  "soap",
			input: "2024-03-15T13:45:30.5+02:00",
			want:  []token{{RuleXMLRPCSOAP, "2024-03-15T13:45:30.5+02:00"}},
		},
		{
			name:  "common log format",
			input: "10/Oct/2000:13:55:36 -0700",
			want:  []token{{RuleCLF, "10/Oct/2000:13:55:36 -0700"}},
		},
		{
			name:  "iana zone",
			input: "10:00 Europe/Paris",
			want:  []token{{RuleTime24, "10:00"}, {RuleTimezone, "Europe/Paris"}},
		},
		{name: "month only", input: "february", want: []token{{RuleMonth, "february"}}},
		{
			name:  "keywords",
			input: "today 1230",
			want:  []token{{RuleMidnight, "today"}, {RuleGNUNoColon, "1230"}},
		},
	}

	s := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := s.Items(NewCursorString(tt.input))

			if last := items[len(items)-1]; last.ID != ItemEOF {
				t.Fatalf("Scanner.Items() last = %v (%v), want %v", last.ID, last.Err, ItemEOF)
			}
			if got := tokens(items); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Scanner.Items() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScanner_Next_error(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantPos int
	}{
		{name: "punctuation", input: "!!", wantPos: 0},
		{name: "hour out of range", input: "25:00", wantPos: 0},
		{name: "after a valid token", input: "10:00 §", wantPos: 6},
	}

	s := New(WithDebug(true), WithLogger(logrus.New()))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := s.Items(NewCursorString(tt.input))

			last := items[len(items)-1]
			if last.ID != ItemError {
				t.Fatalf("Scanner.Items() last = %v, want %v", last.ID, ItemError)
			}
			if !errors.Is(last.Err, ErrUnknownTokens) {
				t.Errorf("Scanner.Items() error = %v, want %v", last.Err, ErrUnknownTokens)
			}
			if last.Pos != tt.wantPos {
				t.Errorf("Scanner.Items() error position = %d, want %d", last.Pos, tt.wantPos)
			}
		})
	}
}

func TestScanner_Next_positions(t *testing.T) {
	s := Default()
	c := NewCursorString("  tomorrow, noon")

	first := s.Next(c)
	if first.Rule != RuleTomorrow || first.Pos != 2 || first.Len != len("tomorrow") {
		t.Errorf("Scanner.Next() = %+v, want tomorrow at 2", first)
	}

	second := s.Next(c)
	if second.Rule != RuleNoon || second.Pos != 12 {
		t.Errorf("Scanner.Next() = %+v, want noon at 12", second)
	}

	if eof := s.Next(c); eof.ID != ItemEOF || eof.Pos != 16 {
		t.Errorf("Scanner.Next() = %+v, want EOF at 16", eof)
	}
}

func BenchmarkScanner_Items(b *testing.B) {
	src := "Thu, 31 Jul 2003 13:02:39 -0700 +1 week 2 days ago"

	s := New(WithLogger(logrus.New()))

	b.ReportAllocs()
	b.SetBytes(int64(len(src)))
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		b.StopTimer()
		c := NewCursorString(src)
		b.StartTimer()

		for {
			if item := s.Next(c); item.ID == ItemEOF || item.ID == ItemError {
				break
			}
		}
	}
}
