// SPDX-License-Identifier: MIT
package lexer

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
)

func TestCursor_PeekN(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		n       int
		want    []rune
		wantErr error
	}{
		{name: "valid", input: "noon", n: 2, want: []rune("no")},
		{name: "short", input: "no", n: 5, want: []rune("no")},
		{name: "empty", input: "", n: 1, wantErr: io.EOF},
		{name: "invalid length", input: "noon", n: 0, wantErr: ErrInvalidPeekLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursorString(tt.input)

			got, err := c.PeekN(tt.n)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Cursor.PeekN() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Cursor.PeekN() = %q, want %q", string(got), string(tt.want))
			}
			if c.Pos() != 0 {
				t.Errorf("Cursor.PeekN() moved the cursor to %d", c.Pos())
			}
		})
	}
}

func TestCursor_Advance(t *testing.T) {
	c := NewCursorString("12 März")

	if err := c.Advance(4); err != nil {
		t.Fatalf("Cursor.Advance() error = %v", err)
	}
	if got := c.Text(1); got != "ä" {
		t.Errorf("Cursor.Text() = %q, want %q", got, "ä")
	}
	if err := c.Advance(1); err != nil {
		t.Fatalf("Cursor.Advance() error = %v", err)
	}
	// Positions are in bytes, 'ä' is 2 bytes long.
	if got := c.Pos(); got != 6 {
		t.Errorf("Cursor.Pos() = %d, want 6", got)
	}

	c.Discard()
	if got := c.Pos(); got != 6 {
		t.Errorf("Cursor.Pos() after Discard = %d, want 6", got)
	}
	if got := c.Runes(2); got != 2 {
		t.Errorf("Cursor.Runes() = %d, want 2", got)
	}

	if err := c.Advance(-1); !errors.Is(err, ErrInvalidAdvance) {
		t.Errorf("Cursor.Advance() error = %v, want %v", err, ErrInvalidAdvance)
	}
	if err := c.Advance(5); !errors.Is(err, ErrInvalidAdvance) {
		t.Errorf("Cursor.Advance() error = %v, want %v", err, ErrInvalidAdvance)
	}
	if err := c.Advance(2); err != nil {
		t.Errorf("Cursor.Advance() error = %v", err)
	}
	if !c.EOF() {
		t.Errorf("Cursor.EOF() = false, want true")
	}
	if got := c.Text(1); got != "" {
		t.Errorf("Cursor.Text() = %q at the end of input", got)
	}
}

func TestCursor_Lookahead(t *testing.T) {
	input := strings.Repeat("a", defBufferSize*2+3)
	c := NewCursorString(input)

	var read int
	la := c.Lookahead()
	for {
		if _, _, err := la.ReadRune(); err != nil {
			break
		}
		read++
	}

	if read != len(input) {
		t.Errorf("lookahead.ReadRune() read %d runes, want %d", read, len(input))
	}
	if c.Pos() != 0 {
		t.Errorf("lookahead moved the cursor to %d", c.Pos())
	}
	if got := c.Runes(3); got != 3 {
		t.Errorf("Cursor.Runes() = %d, want 3", got)
	}
}
