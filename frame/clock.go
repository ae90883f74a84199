// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"time"
)

// Clock converts host frame times into elapsed seconds since
// the first frame it observed.
type Clock struct {
	start   time.Duration
	started bool
}

// Elapsed returns the seconds elapsed between the first call and now.
// The first call always returns 0. Elapsed never decreases as long as
// host times are monotonic.
func (c *Clock) Elapsed(now time.Duration) float32 {
	if !c.started {
		c.start = now
		c.started = true
	}
	d := now - c.start
	if d < 0 {
		return 0
	}
	return float32(d.Seconds())
}

// Started returns whether the clock has observed a frame.
func (c *Clock) Started() bool {
	return c.started
}
