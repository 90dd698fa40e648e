// SPDX-License-Identifier: MIT
package lexer

// REF: https://github.com/sh4t/sql-parser
// REF: https://gitlab.com/fisherprime/go-ddbms/-/blob/master/internal/v1/lexer.go

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

type (
	// Scanner classifies date/time expressions using an ordered rule table.
	//
	// A Scanner holds no per-input state, the Cursor passed to Next does; a single Scanner is safe for
	// concurrent use.
	Scanner struct {
		debug  bool
		logger logrus.FieldLogger

		rules []rule
	}

	// Option defines the Scanner functional option type
	Option func(*Scanner)
)

const (
	// errorContext limits the input quoted in ItemError messages.
	errorContext = 32
)

// Scanning errors.
var (
	ErrUnknownTokens = fmt.Errorf("unknown tokens")
)

var defScanner = New()

// New creates a Scanner over the built-in grammar.
func New(opts ...Option) *Scanner {
	s := &Scanner{
		logger: logrus.New(),
		rules:  defRules,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Default obtains the package's Scanner.
func Default() *Scanner { return defScanner }

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(s *Scanner) { s.debug = debug } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Scanner) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Logger obtains the logger.
func (s *Scanner) Logger() logrus.FieldLogger { return s.logger }

// Next scans the Item at the Cursor's position, advancing the Cursor past it.
//
// Every rule is tried at the current position, the longest match wins & ties go to the rule declared
// first. Separators are consumed silently.
func (s *Scanner) Next(c *Cursor) (item Item) {
	for {
		c.Discard()

		pos := c.Pos()
		if c.EOF() {
			return Item{ID: ItemEOF, Pos: pos}
		}

		best, bestLen := -1, 0
		for index := range s.rules {
			loc := s.rules[index].re.FindReaderIndex(c.Lookahead())
			if loc == nil || loc[1] <= bestLen {
				continue
			}
			best, bestLen = index, loc[1]
		}

		if best < 0 {
			context := c.Text(errorContext)
			if s.debug {
				s.logger.Debugf("scanner: no rule matches %q at %d", context, pos)
			}

			return Item{
				ID:  ItemError,
				Pos: pos,
				Val: context,
				Err: fmt.Errorf("%w: %q at %d", ErrUnknownTokens, context, pos),
			}
		}

		n := c.Runes(bestLen)
		val := c.Text(n)
		if err := c.Advance(n); err != nil {
			return Item{ID: ItemError, Pos: pos, Val: val, Err: err}
		}

		matched := s.rules[best]
		if matched.id == itemSkip {
			continue
		}

		if s.debug {
			// Debug operation makes this operation un-inlinable.
			s.logger.Debugf("scanner: %s (%s) %q at %d", matched.id, matched.rule, val, pos)
		}

		return Item{
			ID:   matched.id,
			Rule: matched.rule,
			Val:  val,
			Pos:  pos,
			Len:  bestLen,
		}
	}
}

// Items scans the Cursor's input until an ItemEOF or ItemError, which is included as the last Item.
func (s *Scanner) Items(c *Cursor) (items []Item) {
	for {
		item := s.Next(c)
		items = append(items, item)

		if item.ID == ItemEOF || item.ID == ItemError {
			return
		}
	}
}
