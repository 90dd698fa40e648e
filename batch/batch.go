// SPDX-License-Identifier: MIT

// Package batch resolves many date/time expressions concurrently against a shared reference time.
package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"
	"gitlab.com/fisherprime/strtotime"
)

type (
	// Resolver resolves batches of expressions with a bounded goroutine pool.
	Resolver struct {
		parser   *strtotime.Parser
		logger   logrus.FieldLogger
		poolSize int
	}

	// Outcome is the resolution of one expression, at its input index.
	Outcome struct {
		Result *strtotime.Result `yaml:"result,omitempty"`
		Err    error             `yaml:"-"`
		Input  string            `yaml:"input"`
		Index  int               `yaml:"index"`
	}

	// Option defines the Resolver functional option type.
	Option func(*Resolver)
)

// DefPoolSize is the default number of concurrent resolutions.
const DefPoolSize = 8

// Batch errors.
var (
	ErrPanicked = errors.New("resolution panicked")
)

// New creates a Resolver.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		parser:   strtotime.New(),
		logger:   logrus.New(),
		poolSize: DefPoolSize,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// WithParser configures the [strtotime.Parser].
func WithParser(parser *strtotime.Parser) Option {
	return func(r *Resolver) {
		if parser != nil {
			r.parser = parser
		}
	}
}

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithPoolSize configures the number of concurrent resolutions.
func WithPoolSize(size int) Option {
	return func(r *Resolver) {
		if size > 0 {
			r.poolSize = size
		}
	}
}

// Resolve every input against ref, the outcomes share the inputs' order.
//
// Failed expressions are reported in their Outcome, not as the returned error; the returned error is
// the context's, once cancelled, in which case the unresolved Outcomes carry it too.
func (r *Resolver) Resolve(ctx context.Context, inputs []string, ref time.Time) (outcomes []Outcome, stats Stats, err error) {
	outcomes = make([]Outcome, len(inputs))
	for index, input := range inputs {
		outcomes[index] = Outcome{Index: index, Input: input}
	}
	if len(inputs) < 1 {
		return
	}

	pool, err := ants.NewPool(r.poolSize, ants.WithLogger(r.logger))
	if err != nil {
		err = fmt.Errorf("batch pool: %w", err)
		return
	}
	defer pool.Release()

	counter := &counter{}

	var wg sync.WaitGroup
	for index := range inputs {
		if err = ctx.Err(); err != nil {
			break
		}

		out := &outcomes[index]
		wg.Add(1)
		if err = pool.Submit(func() {
			defer wg.Done()
			r.resolveOne(ctx, out, ref, counter)
		}); err != nil {
			wg.Done()
			err = fmt.Errorf("batch submit: %w", err)
			break
		}
	}
	wg.Wait()

	if err != nil {
		for index := range outcomes {
			if outcomes[index].Result == nil && outcomes[index].Err == nil {
				outcomes[index].Err = err
				counter.Record(&outcomes[index])
			}
		}
	}
	stats = counter.Stats()

	return
}

// resolveOne fills in an Outcome, recovering from panics.
func (r *Resolver) resolveOne(ctx context.Context, out *Outcome, ref time.Time, counter *counter) {
	defer func() {
		if p := recover(); p != nil {
			out.Err = fmt.Errorf("%w: %v", ErrPanicked, p)
		}
		counter.Record(out)
	}()

	if out.Err = ctx.Err(); out.Err != nil {
		return
	}

	if out.Result, out.Err = r.parser.Resolve(out.Input, ref); out.Err != nil {
		r.logger.Debugf("batch: %q (%d): %v", out.Input, out.Index, out.Err)
	}
}
