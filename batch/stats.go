// SPDX-License-Identifier: MIT
package batch

import "sync"

type (
	// Stats summarizes a batch.
	Stats struct {
		Resolved   int `yaml:"resolved"`
		Failed     int `yaml:"failed"`
		SoftErrors int `yaml:"soft_errors"`
	}

	// counter is a thread-safe Stats accumulator.
	counter struct {
		m   sync.Mutex
		val Stats
	}
)

// Record an Outcome.
func (c *counter) Record(out *Outcome) {
	c.m.Lock()
	defer c.m.Unlock()

	if out.Err != nil {
		c.val.Failed++
		return
	}

	c.val.Resolved++
	if out.Result != nil {
		c.val.SoftErrors += out.Result.SoftErrors
	}
}

// Stats returns the current totals.
func (c *counter) Stats() Stats {
	c.m.Lock()
	defer c.m.Unlock()
	return c.val
}
