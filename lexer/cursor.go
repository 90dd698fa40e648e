// SPDX-License-Identifier: MIT
package lexer

// REF: https://gitlab.com/fisherprime/go-ddbms/-/blob/master/internal/v1/lexer.go

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

type (
	// Cursor is a growable read-ahead window over some input.
	//
	// A Cursor is owned by a single scan, it is not safe for concurrent use.
	Cursor struct {
		// source is the input source.
		source io.RuneReader

		// buffer is a slice of runes read from the source & not yet discarded.
		buffer []rune
		// index is the current buffer position.
		//
		// When this value reaches the length of buffer, the buffer is populated from the source.
		index int

		// offset is the position, (in bytes) of buffer[0] in the input.
		offset int
	}

	// lookahead reads runes from a Cursor without updating its index.
	lookahead struct {
		c *Cursor
		n int
	}
)

const defBufferSize = 32

// Cursor errors.
var (
	ErrInvalidPeekLength = fmt.Errorf("invalid peek length")
	ErrInvalidAdvance    = fmt.Errorf("invalid advance amount")
)

// NewCursor creates a Cursor for the source.
func NewCursor(source io.RuneReader) *Cursor {
	return &Cursor{
		source: source,
		buffer: make([]rune, 0, defBufferSize),
	}
}

// NewCursorString creates a Cursor for an input string.
func NewCursorString(input string) *Cursor { return NewCursor(strings.NewReader(input)) }

// Pos obtains the current position, (in bytes) in the input.
func (c *Cursor) Pos() (pos int) {
	pos = c.offset
	for _, r := range c.buffer[:c.index] {
		pos += runeLen(r)
	}

	return
}

// EOF checks whether the input is exhausted.
func (c *Cursor) EOF() bool {
	if c.index < len(c.buffer) {
		return false
	}

	return c.Source(0) < 1
}

// PeekN return the next N runes, without updating the index.
//
// This operation will return a shorter slice if the the end of the source is reached.
func (c *Cursor) PeekN(n int) (list []rune, err error) {
	if n < 1 {
		err = fmt.Errorf("%w: %d", ErrInvalidPeekLength, n)
		return
	}

	if short := c.index + n - len(c.buffer); short > 0 {
		c.Source(short)
	}

	limit := c.index + n
	if limit > len(c.buffer) {
		limit = len(c.buffer)
	}
	if limit <= c.index {
		err = io.EOF
		return
	}

	list = c.buffer[c.index:limit]

	return
}

// Advance moves the index N runes forward.
func (c *Cursor) Advance(n int) (err error) {
	if n < 0 {
		err = fmt.Errorf("%w: %d", ErrInvalidAdvance, n)
		return
	}

	if short := c.index + n - len(c.buffer); short > 0 && c.Source(short) < short {
		err = fmt.Errorf("%w: %d past the end of input", ErrInvalidAdvance, n)
		return
	}
	c.index += n

	return
}

// Discard the buffer content before the current index.
func (c *Cursor) Discard() {
	c.offset = c.Pos()
	c.buffer = c.buffer[c.index:]
	c.index = 0
}

// Lookahead obtains an io.RuneReader reading forward from the current index.
//
// Reading from the io.RuneReader grows the buffer but leaves the index untouched.
func (c *Cursor) Lookahead() io.RuneReader { return &lookahead{c: c} }

// Text obtains the N runes from the current index as a string.
func (c *Cursor) Text(n int) string {
	list, err := c.PeekN(n)
	if err != nil {
		return ""
	}

	return string(list)
}

// Runes converts a byte length, measured from the current index, to a rune count.
func (c *Cursor) Runes(byteLen int) (n int) {
	for size := 0; size < byteLen; n++ {
		if c.index+n >= len(c.buffer) && c.Source(0) < 1 {
			break
		}
		size += runeLen(c.buffer[c.index+n])
	}

	return
}

// Source runes from the source reader.
func (c *Cursor) Source(amount int) (sourced int) {
	if c.source == nil {
		return
	}
	if amount < defBufferSize {
		amount = defBufferSize
	}

	buffer := make([]rune, amount)
	for ; sourced < amount; sourced++ {
		// NOTE: Function cost reduced by swapping the error check's condition.
		if r, _, err := c.source.ReadRune(); err == nil {
			buffer[sourced] = r
			continue
		}

		// Error can only be io.EOF
		break
	}

	c.buffer = append(c.buffer, buffer[:sourced]...)

	return
}

// ReadRune is the io.RuneReader implementation for lookahead.
func (l *lookahead) ReadRune() (r rune, size int, err error) {
	at := l.c.index + l.n
	if at >= len(l.c.buffer) && l.c.Source(0) < 1 {
		err = io.EOF
		return
	}

	r = l.c.buffer[at]
	size = runeLen(r)
	l.n++

	return
}

// runeLen obtains the encoded length of a rune, invalid runes are replaced by utf8.RuneError.
func runeLen(r rune) int {
	if n := utf8.RuneLen(r); n > 0 {
		return n
	}

	return utf8.RuneLen(utf8.RuneError)
}
