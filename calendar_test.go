// SPDX-License-Identifier: MIT
package strtotime

import (
	"testing"
	"time"
)

func TestWeekToDay(t *testing.T) {
	tests := []struct {
		name               string
		year, week, isoDay int
		wantMonth, wantDay int
		wantYear           int
	}{
		{name: "monday start", year: 2024, week: 1, isoDay: 1, wantYear: 2024, wantMonth: 1, wantDay: 1},
		{name: "friday start", year: 2021, week: 1, isoDay: 1, wantYear: 2021, wantMonth: 1, wantDay: 4},
		{name: "thursday start", year: 2026, week: 1, isoDay: 1, wantYear: 2025, wantMonth: 12, wantDay: 29},
		{name: "sunday start", year: 2023, week: 1, isoDay: 1, wantYear: 2023, wantMonth: 1, wantDay: 2},
		{name: "saturday start", year: 2022, week: 1, isoDay: 1, wantYear: 2022, wantMonth: 1, wantDay: 3},
		{name: "mid year", year: 2024, week: 10, isoDay: 5, wantYear: 2024, wantMonth: 3, wantDay: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset := weekToDay(tt.year, tt.week, tt.isoDay)
			got := time.Date(tt.year, time.January, 1+offset, 0, 0, 0, 0, time.UTC)

			if got.Year() != tt.wantYear || int(got.Month()) != tt.wantMonth || got.Day() != tt.wantDay {
				t.Errorf("weekToDay() = %d (%v), want %04d-%02d-%02d", offset, got, tt.wantYear, tt.wantMonth, tt.wantDay)
			}

			// ISO weeks always start on a Monday.
			if tt.isoDay == 1 && got.Weekday() != time.Monday {
				t.Errorf("weekToDay() = %v, a %v", got, got.Weekday())
			}
		})
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name                  string
		year, month, day, add int
		want                  [3]int
	}{
		{name: "clamp", year: 2024, month: 1, day: 31, add: 1, want: [3]int{2024, 2, 29}},
		{name: "clamp non leap", year: 2023, month: 1, day: 31, add: 1, want: [3]int{2023, 2, 28}},
		{name: "year rollover", year: 2024, month: 11, day: 30, add: 3, want: [3]int{2025, 2, 28}},
		{name: "backwards", year: 2024, month: 3, day: 31, add: -1, want: [3]int{2024, 2, 29}},
		{name: "backwards over a year", year: 2024, month: 1, day: 15, add: -13, want: [3]int{2022, 12, 15}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, m, d := addMonths(tt.year, tt.month, tt.day, tt.add)
			if got := [3]int{y, m, d}; got != tt.want {
				t.Errorf("addMonths() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, wantDiv, wantMod int
	}{
		{7, 3, 2, 1},
		{-7, 3, -3, 2},
		{-1, 7, -1, 6},
		{-7, 7, -1, 0},
		{0, 7, 0, 0},
	}

	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.wantDiv {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.wantDiv)
		}
		if got := mod(tt.a, tt.b); got != tt.wantMod {
			t.Errorf("mod(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.wantMod)
		}
	}
}

func TestWeekdayShift(t *testing.T) {
	// Thursday.
	const current = 4

	tests := []struct {
		name string
		rel  Relative
		want int
	}{
		{name: "next or same, same day", rel: Relative{Weekday: 4, WeekdayCount: 1, Behavior: WeekdayNextOrSame}, want: 0},
		{name: "next or same, later", rel: Relative{Weekday: 1, WeekdayCount: 1, Behavior: WeekdayNextOrSame}, want: 4},
		{name: "previous or same", rel: Relative{Weekday: 1, WeekdayCount: -1, Behavior: WeekdayNextOrSame}, want: -3},
		{name: "next, same day", rel: Relative{Weekday: 4, WeekdayCount: 1, Behavior: WeekdayExactOffset}, want: 7},
		{name: "second", rel: Relative{Weekday: 5, WeekdayCount: 2, Behavior: WeekdayExactOffset}, want: 8},
		{name: "last, same day", rel: Relative{Weekday: 4, WeekdayCount: -1, Behavior: WeekdayExactOffset}, want: -7},
		{name: "two back", rel: Relative{Weekday: 3, WeekdayCount: -2, Behavior: WeekdayExactOffset}, want: -8},
		{name: "zero count", rel: Relative{Weekday: 4, Behavior: WeekdayExactOffset}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := weekdayShift(current, tt.rel); got != tt.want {
				t.Errorf("weekdayShift() = %d, want %d", got, tt.want)
			}
		})
	}
}
