// SPDX-License-Identifier: MIT
package batch

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"gitlab.com/fisherprime/strtotime"
)

var ref = time.Date(2024, time.March, 14, 15, 30, 45, 0, time.UTC)

func TestResolver_Resolve(t *testing.T) {
	inputs := []string{"2004-12-31", "!!", "next friday", "10:00 XYZ", "2024-13-40", "+1 day"}

	r := New(WithPoolSize(3), WithLogger(logrus.New()), WithParser(strtotime.New()))

	outcomes, stats, err := r.Resolve(context.Background(), inputs, ref)
	if err != nil {
		t.Fatalf("Resolver.Resolve() error = %v", err)
	}
	if len(outcomes) != len(inputs) {
		t.Fatalf("Resolver.Resolve() = %d outcomes, want %d", len(outcomes), len(inputs))
	}

	for index, o := range outcomes {
		if o.Index != index || o.Input != inputs[index] {
			t.Errorf("Resolver.Resolve() outcome %d = %d %q, out of order", index, o.Index, o.Input)
		}

		want, wantErr := strtotime.Resolve(inputs[index], ref)
		if (o.Err != nil) != (wantErr != nil) {
			t.Errorf("Resolver.Resolve() %q error = %v, want %v", o.Input, o.Err, wantErr)
			continue
		}
		if wantErr == nil && !o.Result.Time.Equal(want.Time) {
			t.Errorf("Resolver.Resolve() %q = %v, want %v", o.Input, o.Result.Time, want.Time)
		}
	}

	if want := (Stats{Resolved: 4, Failed: 2, SoftErrors: 1}); stats != want {
		t.Errorf("Resolver.Resolve() stats = %+v, want %+v", stats, want)
	}
}

func TestResolver_Resolve_many(t *testing.T) {
	inputs := make([]string, 200)
	for index := range inputs {
		inputs[index] = fmt.Sprintf("+%d days", index)
	}

	outcomes, stats, err := New().Resolve(context.Background(), inputs, ref)
	if err != nil {
		t.Fatalf("Resolver.Resolve() error = %v", err)
	}

	for index, o := range outcomes {
		if want := ref.AddDate(0, 0, index); o.Err != nil || !o.Result.Time.Equal(want) {
			t.Errorf("Resolver.Resolve() %q = %v (%v), want %v", o.Input, o.Result, o.Err, want)
		}
	}
	if stats.Resolved != len(inputs) {
		t.Errorf("Resolver.Resolve() resolved = %d, want %d", stats.Resolved, len(inputs))
	}
}

func TestResolver_Resolve_cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inputs := []string{"now", "tomorrow"}

	outcomes, stats, err := New().Resolve(ctx, inputs, ref)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Resolver.Resolve() error = %v, want %v", err, context.Canceled)
	}

	for _, o := range outcomes {
		if !errors.Is(o.Err, context.Canceled) {
			t.Errorf("Resolver.Resolve() %q error = %v, want %v", o.Input, o.Err, context.Canceled)
		}
	}
	if want := (Stats{Failed: len(inputs)}); stats != want {
		t.Errorf("Resolver.Resolve() stats = %+v, want %+v", stats, want)
	}
}

func TestResolver_Resolve_empty(t *testing.T) {
	outcomes, stats, err := New().Resolve(context.Background(), nil, ref)
	if err != nil || len(outcomes) != 0 || stats != (Stats{}) {
		t.Errorf("Resolver.Resolve() = %v, %+v, %v", outcomes, stats, err)
	}
}
