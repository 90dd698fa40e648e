// SPDX-License-Identifier: MIT
package strtotime

import (
	"time"

	"golang.org/x/exp/constraints"
)

// floorDiv divides rounding towards negative infinity.
func floorDiv[T constraints.Signed](a, b T) T {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}

// mod obtains the remainder of floorDiv, with the sign of b.
func mod[T constraints.Signed](a, b T) T { return a - floorDiv(a, b)*b }

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

func isLeap(year int) bool { return year%4 == 0 && (year%100 != 0 || year%400 == 0) }

func daysInYear(year int) int {
	if isLeap(year) {
		return 366
	}

	return 365
}

// daysInMonth for a month in the proleptic Gregorian calendar.
func daysInMonth(year, month int) int {
	switch month {
	case 2:
		if isLeap(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

// dayOfWeek obtains the weekday, 0 being Sunday.
func dayOfWeek(year, month, day int) int {
	return int(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Weekday())
}

// weekToDay obtains the offset, (in days) from January 1st of the year to an ISO-8601 week date.
//
// Week 1 holds the year's first Thursday; isoDay 1 is Monday & 7 is Sunday.
func weekToDay(year, week, isoDay int) int {
	dow := dayOfWeek(year, 1, 1)

	day := -dow
	if dow > 4 {
		day = 7 - dow
	}

	return day + (week-1)*7 + isoDay
}

// addMonths shifts a (year, month) pair, clamping the day to the resulting month's length.
func addMonths(year, month, day, months int) (int, int, int) {
	total := year*12 + (month - 1) + months
	year, month = floorDiv(total, 12), mod(total, 12)+1

	return year, month, clamp(day, 1, daysInMonth(year, month))
}
