// SPDX-License-Identifier: MIT
package strtotime

import (
	"errors"
	"fmt"
)

// Fields named by SemanticConflictError & RangeError.
const (
	FieldDate      = "date"
	FieldTime      = "time"
	FieldZone      = "zone"
	FieldYear      = "year"
	FieldMonth     = "month"
	FieldDay       = "day"
	FieldDayOfYear = "day of year"
	FieldHour      = "hour"
	FieldMinute    = "minute"
	FieldSecond    = "second"
	FieldTimestamp = "timestamp"
	FieldRelative  = "relative"
)

// Errors encountered when parsing a date/time expression.
var (
	ErrLexical          = errors.New("unrecognized input")
	ErrSemanticConflict = errors.New("field set twice")
	ErrRange            = errors.New("value out of range")

	ErrEmptyInput      = errors.New("empty input")
	ErrMissingMeridian = errors.New("missing meridian")
)

type (
	// LexicalError reports input no grammar rule recognizes.
	LexicalError struct {
		Err error
		Pos int
	}

	// SemanticConflictError reports a field group set by more than one token.
	SemanticConflictError struct {
		Field string
		Pos   int
	}

	// RangeError reports a field holding an impossible value.
	RangeError struct {
		Field string
		Value int
	}
)

// Error is the error implementation for LexicalError.
func (e *LexicalError) Error() string {
	return fmt.Sprintf("%v at %d: %v", ErrLexical, e.Pos, e.Err)
}

// Unwrap exposes both ErrLexical & the underlying error to errors.Is.
func (e *LexicalError) Unwrap() []error { return []error{ErrLexical, e.Err} }

// Error is the error implementation for SemanticConflictError.
func (e *SemanticConflictError) Error() string {
	return fmt.Sprintf("%s %v (at %d)", e.Field, ErrSemanticConflict, e.Pos)
}

// Unwrap is the errors.Unwrap implementation for SemanticConflictError.
func (e *SemanticConflictError) Unwrap() error { return ErrSemanticConflict }

// Error is the error implementation for RangeError.
func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %v: %d", e.Field, ErrRange, e.Value)
}

// Unwrap is the errors.Unwrap implementation for RangeError.
func (e *RangeError) Unwrap() error { return ErrRange }
